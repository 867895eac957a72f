package model

import "time"

// RefreshToken is the persisted backing row for a signed refresh token.
// Deleting the row is the only way to revoke the token: the signed string
// itself never expires.
type RefreshToken struct {
	ID         string    `json:"id"`
	UserID     int       `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// TokenPair is what a successful login returns.
type TokenPair struct {
	AuthToken    string `json:"auth_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthTokenPayload is the decoded, verified content of an auth token.
type AuthTokenPayload struct {
	UserID         int
	Role           Role
	RefreshTokenID string
}
