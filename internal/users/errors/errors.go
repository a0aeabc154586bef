package errors

import "errors"

var (
	ErrNotFound  = errors.New("user not found")
	ErrInvalidID = errors.New("invalid user ID format")
	ErrDuplicate = errors.New("user with this email already exists")
)
