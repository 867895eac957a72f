package repository

import (
	"database/sql"
	"go-beer-cellar-api/model"
)

// IContainerRepository defines the contract for container database operations.
type IContainerRepository interface {
	CreateContainer(container *model.Container) error
	GetContainerByID(id int) (*model.Container, error)
	ListContainers() ([]*model.Container, error)
	UpdateContainer(container *model.Container) error
	DeleteContainer(id int) error
}

type ContainerRepository struct {
	DB *sql.DB
}

func NewContainerRepository(db *sql.DB) *ContainerRepository {
	return &ContainerRepository{DB: db}
}

func (r *ContainerRepository) CreateContainer(container *model.Container) error {
	query := `INSERT INTO containers (type, size) VALUES ($1, $2) RETURNING id, created_at`
	return r.DB.QueryRow(query, container.Type, container.Size).Scan(&container.ID, &container.CreatedAt)
}

func (r *ContainerRepository) GetContainerByID(id int) (*model.Container, error) {
	container := &model.Container{}
	query := `SELECT id, type, size, created_at FROM containers WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&container.ID, &container.Type, &container.Size, &container.CreatedAt)
	if err != nil {
		return nil, err
	}
	return container, nil
}

// ListContainers returns all containers. The set is small enough that
// pagination would be noise.
func (r *ContainerRepository) ListContainers() ([]*model.Container, error) {
	rows, err := r.DB.Query(`SELECT id, type, size, created_at FROM containers ORDER BY type, size`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	containers := []*model.Container{}
	for rows.Next() {
		container := &model.Container{}
		if err := rows.Scan(&container.ID, &container.Type, &container.Size, &container.CreatedAt); err != nil {
			return nil, err
		}
		containers = append(containers, container)
	}
	return containers, rows.Err()
}

func (r *ContainerRepository) UpdateContainer(container *model.Container) error {
	query := `UPDATE containers SET type = $1, size = $2 WHERE id = $3`
	result, err := r.DB.Exec(query, container.Type, container.Size, container.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *ContainerRepository) DeleteContainer(id int) error {
	result, err := r.DB.Exec(`DELETE FROM containers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
