package render

import (
	"errors"
	"fmt"
)

var (
	// ErrRendererRequired is returned when a nil renderer is registered.
	ErrRendererRequired = errors.New("render: renderer is required")
	// ErrRendererNotFound is returned by Registry.Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
)

// Error describes a failure to render one record.
type Error struct {
	Renderer string
	Fragment string
	Image    string
	Err      error
}

func (e *Error) Error() string {
	if e.Image == "" {
		return fmt.Sprintf("render: %s %s: %v", e.Renderer, e.Fragment, e.Err)
	}
	return fmt.Sprintf("render: %s %s for %q: %v", e.Renderer, e.Fragment, e.Image, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
