package mock

import (
	"io"

	"github.com/och-kazuki/minidiff"
)

// Compile-time interface verification.
var _ minidiff.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of minidiff.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, d *minidiff.FileDiff) error
}

func (r *Renderer) Render(w io.Writer, d *minidiff.FileDiff) error {
	return r.RenderFn(w, d)
}
