package engine

import "errors"

var (
	// ErrUnknownGroup indicates a named group does not exist.
	ErrUnknownGroup = errors.New("group not found")
)
