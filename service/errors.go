package service

import (
	"errors"
	"fmt"
)

// Token-integrity failures. ErrInvalidAuthToken and ErrAuthTokenExpired both
// wrap ErrAuthToken so callers can match the whole family with errors.Is.
// Verification failures are deliberately coarse: a forged token and a token
// with the wrong payload shape are indistinguishable to the client.
var (
	ErrAuthToken        = errors.New("auth token error")
	ErrInvalidAuthToken = fmt.Errorf("%w: invalid token", ErrAuthToken)
	ErrAuthTokenExpired = fmt.Errorf("%w: token expired", ErrAuthToken)
)

// ErrRefreshTokenUserIDMismatch is an authorization conflict, not a token
// integrity problem, and intentionally does not wrap ErrAuthToken: callers map
// it to "you cannot revoke someone else's token" rather than "bad credentials".
var ErrRefreshTokenUserIDMismatch = errors.New("refresh token user id does not match")

var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrMissingUserID              = errors.New("no user id parameter")
	ErrNoRights                   = errors.New("no rights to perform the operation")
	ErrUserMismatch               = errors.New("user id does not match the token")
	ErrUserOrTokenNotFound        = errors.New("user or refresh token not found")
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrAlreadyExists        = errors.New("resource already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInsufficientQuantity = errors.New("not enough quantity in storage")
)
