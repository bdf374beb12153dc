package domain

import "errors"

var (
	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = errors.New("task title is empty")
	// ErrInvalidPriority indicates a value outside high, medium and low.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidFilter indicates a value outside all, high, medium and low.
	ErrInvalidFilter = errors.New("invalid filter")
)
