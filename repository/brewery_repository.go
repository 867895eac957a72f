package repository

import (
	"database/sql"
	"go-beer-cellar-api/model"
)

var brewerySortColumns = map[string]string{
	"name":       "name",
	"country":    "country",
	"created_at": "created_at",
}

// IBreweryRepository defines the contract for brewery database operations.
type IBreweryRepository interface {
	CreateBrewery(brewery *model.Brewery) error
	GetBreweryByID(id int) (*model.Brewery, error)
	ListBreweries(params model.ListParams) ([]*model.Brewery, error)
	UpdateBrewery(brewery *model.Brewery) error
	DeleteBrewery(id int) error
}

type BreweryRepository struct {
	DB *sql.DB
}

func NewBreweryRepository(db *sql.DB) *BreweryRepository {
	return &BreweryRepository{DB: db}
}

func (r *BreweryRepository) CreateBrewery(brewery *model.Brewery) error {
	query := `INSERT INTO breweries (name, city, country) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.DB.QueryRow(query, brewery.Name, brewery.City, brewery.Country).Scan(&brewery.ID, &brewery.CreatedAt)
}

func (r *BreweryRepository) GetBreweryByID(id int) (*model.Brewery, error) {
	brewery := &model.Brewery{}
	query := `SELECT id, name, city, country, created_at FROM breweries WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&brewery.ID, &brewery.Name, &brewery.City, &brewery.Country, &brewery.CreatedAt)
	if err != nil {
		return nil, err
	}
	return brewery, nil
}

func (r *BreweryRepository) ListBreweries(params model.ListParams) ([]*model.Brewery, error) {
	query := `SELECT id, name, city, country, created_at FROM breweries ORDER BY ` +
		sortColumn(brewerySortColumns, params.SortBy) + ` ` + sortOrder(params.Order) + ` LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(query, params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breweries := []*model.Brewery{}
	for rows.Next() {
		brewery := &model.Brewery{}
		if err := rows.Scan(&brewery.ID, &brewery.Name, &brewery.City, &brewery.Country, &brewery.CreatedAt); err != nil {
			return nil, err
		}
		breweries = append(breweries, brewery)
	}
	return breweries, rows.Err()
}

func (r *BreweryRepository) UpdateBrewery(brewery *model.Brewery) error {
	query := `UPDATE breweries SET name = $1, city = $2, country = $3 WHERE id = $4`
	result, err := r.DB.Exec(query, brewery.Name, brewery.City, brewery.Country, brewery.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *BreweryRepository) DeleteBrewery(id int) error {
	result, err := r.DB.Exec(`DELETE FROM breweries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
