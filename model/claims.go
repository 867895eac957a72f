package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the wire shape of both token kinds. Auth tokens carry an
// expiry; refresh tokens carry IsRefreshToken=true and no expiry.
type AppClaims struct {
	UserID         int    `json:"user_id"`
	Role           Role   `json:"role,omitempty"`
	RefreshTokenID string `json:"refresh_token_id"`
	IsRefreshToken bool   `json:"is_refresh_token,omitempty"`
	jwt.RegisteredClaims
}
