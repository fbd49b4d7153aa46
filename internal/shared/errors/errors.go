package errors

import "errors"

var (
	ErrEmptyName     = errors.New("channel name cannot be empty")
	ErrDuplicateName = errors.New("channel already exists")
	ErrNotFound      = errors.New("channel not found")
	ErrPersistence   = errors.New("failed to save channels")
)
