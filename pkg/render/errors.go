package render

import (
	"errors"
	"fmt"
)

// ErrRender is matched by every RenderError via errors.Is.
var ErrRender = errors.New("render error")

// RenderError reports that the image for a slide could not be shown.
// It is never fatal: callers draw a placeholder and keep going.
type RenderError struct {
	Path string
	Op   string // "open", "decode" or "scale"
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to %s image %s: %v", e.Op, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}
