package analyses

import "errors"

var (
	ErrNotFound       = errors.New("analysis run not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrAnalysisFailed = errors.New("analysis failed")
)
