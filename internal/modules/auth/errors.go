package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrUserTaken          = errors.New("username or email already taken")
	ErrInvalidRole        = errors.New("unknown role")
)
