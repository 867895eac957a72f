package service

import (
	"database/sql"
	"errors"
	"fmt"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/repository"
	"time"
)

const bestBeforeLayout = "2006-01-02"

// StorageService manages cellar entries. Quantity adjustments run inside a
// database transaction with a row lock so concurrent consumers cannot drive
// the quantity negative.
type StorageService struct {
	db   *sql.DB
	repo repository.IStorageRepository
}

func NewStorageService(db *sql.DB, repo repository.IStorageRepository) *StorageService {
	return &StorageService{db: db, repo: repo}
}

func (s *StorageService) CreateStorage(req model.StorageRequest) (*model.Storage, error) {
	bestBefore, err := time.Parse(bestBeforeLayout, req.BestBefore)
	if err != nil {
		return nil, fmt.Errorf("invalid best_before date: %w", err)
	}

	storage := &model.Storage{
		BeerID:      req.BeerID,
		ContainerID: req.ContainerID,
		Quantity:    req.Quantity,
		BestBefore:  bestBefore,
	}
	if err := s.repo.CreateStorage(storage); err != nil {
		return nil, mapConstraintError(err)
	}
	return storage, nil
}

func (s *StorageService) GetStorage(id int) (*model.Storage, error) {
	storage, err := s.repo.GetStorageByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return storage, nil
}

func (s *StorageService) ListStorages(params model.ListParams) ([]*model.Storage, error) {
	return s.repo.ListStorages(params)
}

func (s *StorageService) ListStoragesByBeer(beerID int) ([]*model.Storage, error) {
	return s.repo.ListStoragesByBeer(beerID)
}

func (s *StorageService) UpdateStorage(id int, req model.StorageRequest) (*model.Storage, error) {
	bestBefore, err := time.Parse(bestBeforeLayout, req.BestBefore)
	if err != nil {
		return nil, fmt.Errorf("invalid best_before date: %w", err)
	}

	storage := &model.Storage{
		ID:          id,
		BeerID:      req.BeerID,
		ContainerID: req.ContainerID,
		Quantity:    req.Quantity,
		BestBefore:  bestBefore,
	}
	if err := s.repo.UpdateStorage(storage); err != nil {
		return nil, mapConstraintError(err)
	}
	return s.GetStorage(id)
}

func (s *StorageService) DeleteStorage(id int) error {
	return mapNotFound(s.repo.DeleteStorage(id))
}

// ConsumeFromStorage decrements the stored quantity by amount inside a
// transaction. Fails with ErrInsufficientQuantity when the cellar does not
// hold that many.
func (s *StorageService) ConsumeFromStorage(id, amount int) (*model.Storage, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Log.WithError(err).Error("Failed to roll back storage transaction")
		}
	}()

	storage, err := s.repo.GetStorageForUpdate(tx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if storage.Quantity < amount {
		return nil, ErrInsufficientQuantity
	}

	storage.Quantity -= amount
	if err := s.repo.UpdateStorageQuantity(tx, id, storage.Quantity); err != nil {
		return nil, mapNotFound(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return storage, nil
}
