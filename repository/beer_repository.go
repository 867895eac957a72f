package repository

import (
	"database/sql"
	"fmt"
	"go-beer-cellar-api/model"
)

// beerSortColumns is the allow-list of sortable columns. Anything else falls
// back to the primary key so user input never reaches the ORDER BY clause.
var beerSortColumns = map[string]string{
	"name":       "name",
	"abv":        "abv",
	"ibu":        "ibu",
	"created_at": "created_at",
}

// IBeerRepository defines the contract for beer database operations.
type IBeerRepository interface {
	CreateBeer(beer *model.Beer) error
	GetBeerByID(id int) (*model.Beer, error)
	ListBeers(params model.ListParams) ([]*model.Beer, error)
	SearchBeers(query string, params model.ListParams) ([]*model.Beer, error)
	UpdateBeer(beer *model.Beer) error
	DeleteBeer(id int) error
}

type BeerRepository struct {
	DB *sql.DB
}

func NewBeerRepository(db *sql.DB) *BeerRepository {
	return &BeerRepository{DB: db}
}

func (r *BeerRepository) CreateBeer(beer *model.Beer) error {
	query := `INSERT INTO beers (name, brewery_id, style_id, abv, ibu, description)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return r.DB.QueryRow(query, beer.Name, beer.BreweryID, beer.StyleID, beer.ABV, beer.IBU, beer.Description).
		Scan(&beer.ID, &beer.CreatedAt)
}

func (r *BeerRepository) GetBeerByID(id int) (*model.Beer, error) {
	beer := &model.Beer{}
	query := `SELECT id, name, brewery_id, style_id, abv, ibu, description, created_at FROM beers WHERE id = $1`
	err := r.DB.QueryRow(query, id).
		Scan(&beer.ID, &beer.Name, &beer.BreweryID, &beer.StyleID, &beer.ABV, &beer.IBU, &beer.Description, &beer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return beer, nil
}

func (r *BeerRepository) ListBeers(params model.ListParams) ([]*model.Beer, error) {
	query := fmt.Sprintf(`SELECT id, name, brewery_id, style_id, abv, ibu, description, created_at
		FROM beers ORDER BY %s %s LIMIT $1 OFFSET $2`, sortColumn(beerSortColumns, params.SortBy), sortOrder(params.Order))
	rows, err := r.DB.Query(query, params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBeers(rows)
}

// SearchBeers matches the query against beer names and brewery names.
func (r *BeerRepository) SearchBeers(search string, params model.ListParams) ([]*model.Beer, error) {
	query := `SELECT b.id, b.name, b.brewery_id, b.style_id, b.abv, b.ibu, b.description, b.created_at
		FROM beers b
		JOIN breweries br ON br.id = b.brewery_id
		WHERE b.name ILIKE $1 OR br.name ILIKE $1
		ORDER BY b.name ASC LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(query, "%"+search+"%", params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBeers(rows)
}

func (r *BeerRepository) UpdateBeer(beer *model.Beer) error {
	query := `UPDATE beers SET name = $1, brewery_id = $2, style_id = $3, abv = $4, ibu = $5, description = $6
		WHERE id = $7`
	result, err := r.DB.Exec(query, beer.Name, beer.BreweryID, beer.StyleID, beer.ABV, beer.IBU, beer.Description, beer.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *BeerRepository) DeleteBeer(id int) error {
	result, err := r.DB.Exec(`DELETE FROM beers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func scanBeers(rows *sql.Rows) ([]*model.Beer, error) {
	beers := []*model.Beer{}
	for rows.Next() {
		beer := &model.Beer{}
		if err := rows.Scan(&beer.ID, &beer.Name, &beer.BreweryID, &beer.StyleID,
			&beer.ABV, &beer.IBU, &beer.Description, &beer.CreatedAt); err != nil {
			return nil, err
		}
		beers = append(beers, beer)
	}
	return beers, rows.Err()
}
