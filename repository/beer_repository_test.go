// file: repository/beer_repository_test.go

package repository

import (
	"go-beer-cellar-api/model"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func beerRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "brewery_id", "style_id", "abv", "ibu", "description", "created_at"}).
		AddRow(1, "Pale Ale", 2, 3, 5.6, 40, "", now).
		AddRow(2, "Stout", 2, 4, 9.0, 60, "", now)
}

func TestBeerRepository_CreateBeer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBeerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO beers`)).
		WithArgs("Pale Ale", 2, 3, 5.6, 40, "hoppy").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	beer := &model.Beer{Name: "Pale Ale", BreweryID: 2, StyleID: 3, ABV: 5.6, IBU: 40, Description: "hoppy"}
	err := repo.CreateBeer(beer)
	assert.NoError(t, err)
	assert.Equal(t, 1, beer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBeerRepository_ListBeers(t *testing.T) {
	t.Run("sorts by allow-listed column", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBeerRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM beers ORDER BY name DESC LIMIT $1 OFFSET $2`)).
			WithArgs(20, 0).
			WillReturnRows(beerRows())

		beers, err := repo.ListBeers(model.ListParams{Size: 20, Skip: 0, Order: "desc", SortBy: "name"})
		assert.NoError(t, err)
		assert.Len(t, beers, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown sort column falls back to id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBeerRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM beers ORDER BY id ASC LIMIT $1 OFFSET $2`)).
			WithArgs(10, 5).
			WillReturnRows(beerRows())

		_, err := repo.ListBeers(model.ListParams{Size: 10, Skip: 5, Order: "asc", SortBy: "password; DROP TABLE beers"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBeerRepository_SearchBeers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBeerRepository(db)

	mock.ExpectQuery(`JOIN breweries br ON br.id = b.brewery_id`).
		WithArgs("%ale%", 20, 0).
		WillReturnRows(beerRows())

	beers, err := repo.SearchBeers("ale", model.ListParams{Size: 20, Skip: 0, Order: "asc"})
	assert.NoError(t, err)
	assert.Len(t, beers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBeerRepository_DeleteBeer(t *testing.T) {
	t.Run("existing beer", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBeerRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM beers WHERE id = $1`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteBeer(1))
	})

	t.Run("missing beer maps to ErrNoRows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBeerRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM beers WHERE id = $1`)).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteBeer(99)
		assert.Error(t, err)
	})
}
