// Package godiff implements the diff engine using the sergi/go-diff
// library's line-mode Myers algorithm.
package godiff

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/och-kazuki/minidiff"
)

// Compile-time interface verification.
var _ minidiff.Engine = (*Engine)(nil)

// Engine adapts diffmatchpatch's line diff to the Engine contract. The
// library encodes each distinct line as a rune, which caps the number of
// distinct keys per comparison at roughly 1.1 million and requires keys
// to be newline-free; the lcs engine has neither restriction.
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{dmp: diffmatchpatch.New()}
}

// Diff returns the edit script that transforms old into new. The
// alignment can differ from the lcs engine's on inputs with several
// maximal alignments, but the same contract holds: every input line
// appears in exactly one op, in order, the output is deterministic, and
// within a changed block every Remove precedes every Add.
func (e *Engine) Diff(old, new []minidiff.Line) []minidiff.Op {
	if len(old) == 0 && len(new) == 0 {
		return nil
	}

	oldRunes, newRunes, _ := e.dmp.DiffLinesToRunes(keyText(old), keyText(new))
	diffs := e.dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = e.dmp.DiffCleanupMerge(diffs)

	ops := make([]minidiff.Op, 0, len(old)+len(new))
	var removes, adds []minidiff.Op
	oldIdx, newIdx := 0, 0

	flush := func() {
		ops = append(ops, removes...)
		ops = append(ops, adds...)
		removes, adds = nil, nil
	}

	for _, d := range diffs {
		// One rune per line after the DiffLinesToRunes encoding.
		count := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for k := 0; k < count; k++ {
				ops = append(ops, minidiff.Op{Type: minidiff.OpEqual, Old: old[oldIdx], New: new[newIdx]})
				oldIdx++
				newIdx++
			}
		case diffmatchpatch.DiffDelete:
			for k := 0; k < count; k++ {
				removes = append(removes, minidiff.Op{Type: minidiff.OpRemove, Old: old[oldIdx]})
				oldIdx++
			}
		case diffmatchpatch.DiffInsert:
			for k := 0; k < count; k++ {
				adds = append(adds, minidiff.Op{Type: minidiff.OpAdd, New: new[newIdx]})
				newIdx++
			}
		}
	}
	flush()

	return ops
}

// keyText joins comparison keys into the newline-terminated form the
// library's line encoding expects.
func keyText(lines []minidiff.Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Key)
		sb.WriteByte('\n')
	}
	return sb.String()
}
