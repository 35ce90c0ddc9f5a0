package resumes

import "errors"

var (
	ErrNotFound     = errors.New("resume project not found")
	ErrConflict     = errors.New("resume project already exists")
	ErrInvalidInput = errors.New("invalid input")
)
