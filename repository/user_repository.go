package repository

import (
	"database/sql"
	"go-beer-cellar-api/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUsername(username string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetAllUsers() ([]*model.User, error)
	UpdatePassword(userID int, hashedPassword string) error
	DeleteUser(userID int) error
	CountUsers() (int, error)
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.DB.QueryRow(query, user.Username, user.Password, user.Role).Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, password, role, created_at FROM users WHERE username = $1`
	err := r.DB.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, password, role, created_at FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetAllUsers() ([]*model.User, error) {
	query := `SELECT id, username, role, created_at FROM users ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		user := &model.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdatePassword(userID int, hashedPassword string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`
	_, err := r.DB.Exec(query, hashedPassword, userID)
	return err
}

func (r *UserRepository) DeleteUser(userID int) error {
	result, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *UserRepository) CountUsers() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
