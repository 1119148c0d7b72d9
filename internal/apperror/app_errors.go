package apperror

import "errors"

var (
	ErrIllegalPlacement = errors.New("placement is not legal")
	ErrInvalidMove      = errors.New("invalid move notation")
	ErrEmptyScript      = errors.New("script has no moves")
	ErrInvalidConfig    = errors.New("invalid config")
)
