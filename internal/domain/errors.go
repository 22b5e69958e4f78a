package domain

import "errors"

// Store errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrSessionNotFound = errors.New("session not found")
)
