package backend

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist yet. During
	// generation polling this is the normal "not ready" signal, not a
	// failure.
	ErrNotFound = errors.New("backend row not found")

	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("backend unavailable")
)
