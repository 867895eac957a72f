// file: service/storage_service_test.go

package service

import (
	"database/sql"
	"go-beer-cellar-api/model"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStorageRepo struct{ mock.Mock }

func (m *mockStorageRepo) CreateStorage(storage *model.Storage) error {
	args := m.Called(storage)
	return args.Error(0)
}

func (m *mockStorageRepo) GetStorageByID(id int) (*model.Storage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Storage), args.Error(1)
}

func (m *mockStorageRepo) ListStorages(params model.ListParams) ([]*model.Storage, error) {
	args := m.Called(params)
	return args.Get(0).([]*model.Storage), args.Error(1)
}

func (m *mockStorageRepo) ListStoragesByBeer(beerID int) ([]*model.Storage, error) {
	args := m.Called(beerID)
	return args.Get(0).([]*model.Storage), args.Error(1)
}

func (m *mockStorageRepo) UpdateStorage(storage *model.Storage) error {
	args := m.Called(storage)
	return args.Error(0)
}

func (m *mockStorageRepo) DeleteStorage(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockStorageRepo) GetStorageForUpdate(tx *sql.Tx, id int) (*model.Storage, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Storage), args.Error(1)
}

func (m *mockStorageRepo) UpdateStorageQuantity(tx *sql.Tx, id, quantity int) error {
	args := m.Called(tx, id, quantity)
	return args.Error(0)
}

func TestStorageService_ConsumeFromStorage(t *testing.T) {
	t.Run("decrements inside a transaction", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := new(mockStorageRepo)
		storageService := NewStorageService(db, repo)

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		repo.On("GetStorageForUpdate", mock.Anything, 1).
			Return(&model.Storage{ID: 1, Quantity: 6}, nil).Once()
		repo.On("UpdateStorageQuantity", mock.Anything, 1, 4).Return(nil).Once()

		storage, err := storageService.ConsumeFromStorage(1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 4, storage.Quantity)
		assert.NoError(t, dbMock.ExpectationsWereMet())
		repo.AssertExpectations(t)
	})

	t.Run("insufficient quantity rolls back", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := new(mockStorageRepo)
		storageService := NewStorageService(db, repo)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		repo.On("GetStorageForUpdate", mock.Anything, 1).
			Return(&model.Storage{ID: 1, Quantity: 1}, nil).Once()

		_, err = storageService.ConsumeFromStorage(1, 2)
		assert.ErrorIs(t, err, ErrInsufficientQuantity)
		repo.AssertNotCalled(t, "UpdateStorageQuantity")
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing storage entry", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := new(mockStorageRepo)
		storageService := NewStorageService(db, repo)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		repo.On("GetStorageForUpdate", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

		_, err = storageService.ConsumeFromStorage(99, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStorageService_CreateStorage(t *testing.T) {
	t.Run("parses best before date", func(t *testing.T) {
		repo := new(mockStorageRepo)
		storageService := NewStorageService(nil, repo)

		repo.On("CreateStorage", mock.MatchedBy(func(s *model.Storage) bool {
			return s.BestBefore.Year() == 2027 && s.Quantity == 12
		})).Return(nil).Once()

		_, err := storageService.CreateStorage(model.StorageRequest{
			BeerID: 1, ContainerID: 2, Quantity: 12, BestBefore: "2027-06-30",
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		repo := new(mockStorageRepo)
		storageService := NewStorageService(nil, repo)

		_, err := storageService.CreateStorage(model.StorageRequest{
			BeerID: 1, ContainerID: 2, Quantity: 12, BestBefore: "30/06/2027",
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateStorage")
	})
}
