package repository

import (
	"database/sql"
	"go-beer-cellar-api/model"
)

// IStorageRepository defines the contract for cellar storage operations.
type IStorageRepository interface {
	CreateStorage(storage *model.Storage) error
	GetStorageByID(id int) (*model.Storage, error)
	ListStorages(params model.ListParams) ([]*model.Storage, error)
	ListStoragesByBeer(beerID int) ([]*model.Storage, error)
	UpdateStorage(storage *model.Storage) error
	DeleteStorage(id int) error
	GetStorageForUpdate(tx *sql.Tx, id int) (*model.Storage, error)
	UpdateStorageQuantity(tx *sql.Tx, id, quantity int) error
}

type StorageRepository struct {
	DB *sql.DB
}

func NewStorageRepository(db *sql.DB) *StorageRepository {
	return &StorageRepository{DB: db}
}

func (r *StorageRepository) CreateStorage(storage *model.Storage) error {
	query := `INSERT INTO storages (beer_id, container_id, quantity, best_before)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.DB.QueryRow(query, storage.BeerID, storage.ContainerID, storage.Quantity, storage.BestBefore).
		Scan(&storage.ID, &storage.CreatedAt)
}

func (r *StorageRepository) GetStorageByID(id int) (*model.Storage, error) {
	storage := &model.Storage{}
	query := `SELECT id, beer_id, container_id, quantity, best_before, created_at FROM storages WHERE id = $1`
	err := r.DB.QueryRow(query, id).
		Scan(&storage.ID, &storage.BeerID, &storage.ContainerID, &storage.Quantity, &storage.BestBefore, &storage.CreatedAt)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

func (r *StorageRepository) ListStorages(params model.ListParams) ([]*model.Storage, error) {
	query := `SELECT id, beer_id, container_id, quantity, best_before, created_at
		FROM storages ORDER BY best_before ` + sortOrder(params.Order) + ` LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(query, params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStorages(rows)
}

func (r *StorageRepository) ListStoragesByBeer(beerID int) ([]*model.Storage, error) {
	query := `SELECT id, beer_id, container_id, quantity, best_before, created_at
		FROM storages WHERE beer_id = $1 ORDER BY best_before ASC`
	rows, err := r.DB.Query(query, beerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStorages(rows)
}

func (r *StorageRepository) UpdateStorage(storage *model.Storage) error {
	query := `UPDATE storages SET beer_id = $1, container_id = $2, quantity = $3, best_before = $4 WHERE id = $5`
	result, err := r.DB.Exec(query, storage.BeerID, storage.ContainerID, storage.Quantity, storage.BestBefore, storage.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *StorageRepository) DeleteStorage(id int) error {
	result, err := r.DB.Exec(`DELETE FROM storages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// GetStorageForUpdate locks the storage row inside the caller's transaction.
func (r *StorageRepository) GetStorageForUpdate(tx *sql.Tx, id int) (*model.Storage, error) {
	storage := &model.Storage{}
	query := `SELECT id, beer_id, container_id, quantity, best_before, created_at
		FROM storages WHERE id = $1 FOR UPDATE`
	err := tx.QueryRow(query, id).
		Scan(&storage.ID, &storage.BeerID, &storage.ContainerID, &storage.Quantity, &storage.BestBefore, &storage.CreatedAt)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

func (r *StorageRepository) UpdateStorageQuantity(tx *sql.Tx, id, quantity int) error {
	result, err := tx.Exec(`UPDATE storages SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func scanStorages(rows *sql.Rows) ([]*model.Storage, error) {
	storages := []*model.Storage{}
	for rows.Next() {
		storage := &model.Storage{}
		if err := rows.Scan(&storage.ID, &storage.BeerID, &storage.ContainerID,
			&storage.Quantity, &storage.BestBefore, &storage.CreatedAt); err != nil {
			return nil, err
		}
		storages = append(storages, storage)
	}
	return storages, rows.Err()
}
