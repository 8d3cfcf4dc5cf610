// Package minidiff provides domain types for computing and displaying
// line-oriented diffs between two text sequences.
package minidiff

import "io"

// Line is a single input line as supplied by the caller.
// Raw is the text to display; Key is the normalized token used for
// comparison. Engines read only Key and carry Raw through opaquely, so
// display fidelity stays independent of comparison semantics.
type Line struct {
	Raw string
	Key string
}

// OpType represents the type of an edit-script operation.
type OpType int

// Operation types.
const (
	OpEqual OpType = iota
	OpAdd
	OpRemove
)

// Op is a single step of the edit script transforming the old sequence
// into the new one. Old is the zero Line when Type is OpAdd; New is the
// zero Line when Type is OpRemove. Positions are not stored: they follow
// deterministically from the op's place in the stream.
type Op struct {
	Type OpType
	Old  Line
	New  Line
}

// Engine computes the edit script between two line sequences.
// Implementations must account for every input line exactly once, in
// order: the Old lines of Equal and Remove ops reproduce old, and the
// New lines of Equal and Add ops reproduce new. Repeated calls with the
// same input must produce identical output.
type Engine interface {
	Diff(old, new []Line) []Op
}

// HasChanges reports whether the edit script contains at least one Add
// or Remove.
func HasChanges(ops []Op) bool {
	for _, op := range ops {
		if op.Type != OpEqual {
			return true
		}
	}
	return false
}

// Stats returns the number of added and removed lines in the edit script.
func Stats(ops []Op) (added, removed int) {
	for _, op := range ops {
		switch op.Type {
		case OpAdd:
			added++
		case OpRemove:
			removed++
		}
	}
	return added, removed
}

// Hunk represents a contiguous display window grouping one or more
// change runs with surrounding context lines.
type Hunk struct {
	OldStart int // 1-based first old line in the hunk; line before the window when OldCount is 0
	OldCount int // Context + Deleted lines
	NewStart int // 1-based first new line in the hunk; line before the window when NewCount is 0
	NewCount int // Context + Added lines
	Lines    []HunkLine
}

// HunkLine is a single line within a hunk.
type HunkLine struct {
	Type       LineType
	Content    string
	OldLineNum int // 0 if line is Added
	NewLineNum int // 0 if line is Deleted
}

// LineType represents the type of a hunk line.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineDeleted
)

// FileDiff represents one rendered comparison between two files.
type FileDiff struct {
	OldPath string
	NewPath string
	Hunks   []Hunk
}

// Stats returns the number of added and deleted lines across all hunks.
func (f FileDiff) Stats() (added, deleted int) {
	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Type {
			case LineAdded:
				added++
			case LineDeleted:
				deleted++
			}
		}
	}
	return added, deleted
}

// Renderer writes a formatted representation of a file comparison.
type Renderer interface {
	Render(w io.Writer, d *FileDiff) error
}
