// file: repository/token_repository.go

package repository

import (
	"database/sql"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/model"
)

// ITokenRepository defines the contract for refresh token database operations.
type ITokenRepository interface {
	Create(userID int) (*model.RefreshToken, error)
	Find(userID int, tokenID string) (*model.RefreshToken, error)
	UpdateLastUsed(tokenID string) error
	Delete(tokenID string) error
}

// TokenRepository implements ITokenRepository.
type TokenRepository struct {
	DB *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Create inserts a new refresh token row; the id is generated by the database.
func (r *TokenRepository) Create(userID int) (*model.RefreshToken, error) {
	token := &model.RefreshToken{UserID: userID}
	query := `INSERT INTO refresh_tokens (user_id) VALUES ($1) RETURNING id, created_at, last_used_at`
	err := r.DB.QueryRow(query, userID).Scan(&token.ID, &token.CreatedAt, &token.LastUsedAt)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to insert refresh token")
		return nil, err
	}
	return token, nil
}

// Find returns the refresh token row for (userID, tokenID), or sql.ErrNoRows
// when the session has been revoked.
func (r *TokenRepository) Find(userID int, tokenID string) (*model.RefreshToken, error) {
	token := &model.RefreshToken{}
	query := `SELECT id, user_id, created_at, last_used_at FROM refresh_tokens WHERE id = $1 AND user_id = $2`
	err := r.DB.QueryRow(query, tokenID, userID).Scan(&token.ID, &token.UserID, &token.CreatedAt, &token.LastUsedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("token_id", tokenID).Error("Failed to query refresh token")
		}
		return nil, err
	}
	return token, nil
}

// UpdateLastUsed touches the row on every refresh. Touching a missing row is
// not an error: the initial admin token has no row until one is created, and
// a concurrent logout may have deleted it.
func (r *TokenRepository) UpdateLastUsed(tokenID string) error {
	query := `UPDATE refresh_tokens SET last_used_at = now() WHERE id = $1`
	_, err := r.DB.Exec(query, tokenID)
	if err != nil {
		logger.Log.WithError(err).WithField("token_id", tokenID).Error("Failed to touch refresh token")
	}
	return err
}

// Delete revokes the session backed by tokenID.
func (r *TokenRepository) Delete(tokenID string) error {
	query := `DELETE FROM refresh_tokens WHERE id = $1`
	_, err := r.DB.Exec(query, tokenID)
	if err != nil {
		logger.Log.WithError(err).WithField("token_id", tokenID).Error("Failed to delete refresh token")
	}
	return err
}
