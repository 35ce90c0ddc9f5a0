package templates

import "errors"

var (
	ErrNotFound     = errors.New("template not found")
	ErrConflict     = errors.New("template already exists")
	ErrInvalidInput = errors.New("invalid input")
)
