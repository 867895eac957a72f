package repository

import (
	"database/sql"
	"go-beer-cellar-api/model"
)

var styleSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

// IStyleRepository defines the contract for style database operations.
type IStyleRepository interface {
	CreateStyle(style *model.Style) error
	GetStyleByID(id int) (*model.Style, error)
	ListStyles(params model.ListParams) ([]*model.Style, error)
	UpdateStyle(style *model.Style) error
	DeleteStyle(id int) error
}

type StyleRepository struct {
	DB *sql.DB
}

func NewStyleRepository(db *sql.DB) *StyleRepository {
	return &StyleRepository{DB: db}
}

func (r *StyleRepository) CreateStyle(style *model.Style) error {
	query := `INSERT INTO styles (name, description) VALUES ($1, $2) RETURNING id, created_at`
	return r.DB.QueryRow(query, style.Name, style.Description).Scan(&style.ID, &style.CreatedAt)
}

func (r *StyleRepository) GetStyleByID(id int) (*model.Style, error) {
	style := &model.Style{}
	query := `SELECT id, name, description, created_at FROM styles WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&style.ID, &style.Name, &style.Description, &style.CreatedAt)
	if err != nil {
		return nil, err
	}
	return style, nil
}

func (r *StyleRepository) ListStyles(params model.ListParams) ([]*model.Style, error) {
	query := `SELECT id, name, description, created_at FROM styles ORDER BY ` +
		sortColumn(styleSortColumns, params.SortBy) + ` ` + sortOrder(params.Order) + ` LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(query, params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	styles := []*model.Style{}
	for rows.Next() {
		style := &model.Style{}
		if err := rows.Scan(&style.ID, &style.Name, &style.Description, &style.CreatedAt); err != nil {
			return nil, err
		}
		styles = append(styles, style)
	}
	return styles, rows.Err()
}

func (r *StyleRepository) UpdateStyle(style *model.Style) error {
	query := `UPDATE styles SET name = $1, description = $2 WHERE id = $3`
	result, err := r.DB.Exec(query, style.Name, style.Description, style.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *StyleRepository) DeleteStyle(id int) error {
	result, err := r.DB.Exec(`DELETE FROM styles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
