package screamy_errors

import "errors"

// Common errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrAlreadyExists    = errors.New("already exists")
	ErrRateLimited      = errors.New("rate limited")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrHandleTaken      = errors.New("handle already taken")
	ErrEmailTaken       = errors.New("email already in use")
	ErrWrongFileType    = errors.New("wrong file type")
)
