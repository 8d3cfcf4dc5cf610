// Package unified renders comparisons as plain unified diff text.
package unified

import (
	"fmt"
	"io"
	"strings"

	"github.com/och-kazuki/minidiff"
)

// Compile-time interface verification.
var _ minidiff.Renderer = (*Renderer)(nil)

// Renderer writes comparisons in unified diff format.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the file headers and hunks of d in unified format.
// Nothing is written when d has no hunks.
func (r *Renderer) Render(w io.Writer, d *minidiff.FileDiff) error {
	if len(d.Hunks) == 0 {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", d.OldPath)
	fmt.Fprintf(&sb, "+++ %s\n", d.NewPath)
	for _, h := range d.Hunks {
		sb.WriteString(h.Header())
		sb.WriteByte('\n')
		for _, line := range h.Lines {
			sb.WriteString(linePrefix(line.Type))
			sb.WriteString(line.Content)
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func linePrefix(lt minidiff.LineType) string {
	switch lt {
	case minidiff.LineAdded:
		return "+"
	case minidiff.LineDeleted:
		return "-"
	default:
		return " "
	}
}
