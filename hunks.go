package minidiff

import (
	"errors"
	"fmt"
)

// ErrNegativeContext is returned when a negative context width is
// requested.
var ErrNegativeContext = errors.New("minidiff: negative context width")

// Hunks groups an edit script into display hunks with up to context
// unchanged lines on each side of a change run. Change runs whose
// extended windows touch or overlap — an equal-line gap of at most
// 2*context — are merged into a single hunk. Hunks come out in ascending
// position order and never overlap. An all-Equal script yields no hunks.
//
// Context lines carry the old-side raw text; the two sides of an Equal
// op can only differ in ways the caller's normalization ignores.
func Hunks(ops []Op, context int) ([]Hunk, error) {
	if context < 0 {
		return nil, ErrNegativeContext
	}

	var changes []int
	for i, op := range ops {
		if op.Type != OpEqual {
			changes = append(changes, i)
		}
	}
	if len(changes) == 0 {
		return nil, nil
	}

	// Group change runs. Ops between two non-Equal ops are all Equal, so
	// the index distance is exactly the equal-line gap.
	type span struct{ first, last int }
	var groups []span
	cur := span{changes[0], changes[0]}
	for _, idx := range changes[1:] {
		if idx-cur.last-1 <= 2*context {
			cur.last = idx
			continue
		}
		groups = append(groups, cur)
		cur = span{idx, idx}
	}
	groups = append(groups, cur)

	// oldBefore[i] and newBefore[i] count the lines each side consumes in
	// ops[:i], giving the 1-based line cursors at any stream position.
	oldBefore := make([]int, len(ops)+1)
	newBefore := make([]int, len(ops)+1)
	for i, op := range ops {
		oldBefore[i+1] = oldBefore[i]
		newBefore[i+1] = newBefore[i]
		if op.Type != OpAdd {
			oldBefore[i+1]++
		}
		if op.Type != OpRemove {
			newBefore[i+1]++
		}
	}

	hunks := make([]Hunk, 0, len(groups))
	for _, g := range groups {
		start := max(g.first-context, 0)
		end := min(g.last+context, len(ops)-1)

		var h Hunk
		oldNum := oldBefore[start]
		newNum := newBefore[start]
		for _, op := range ops[start : end+1] {
			switch op.Type {
			case OpEqual:
				oldNum++
				newNum++
				h.Lines = append(h.Lines, HunkLine{
					Type:       LineContext,
					Content:    op.Old.Raw,
					OldLineNum: oldNum,
					NewLineNum: newNum,
				})
				h.OldCount++
				h.NewCount++
			case OpRemove:
				oldNum++
				h.Lines = append(h.Lines, HunkLine{
					Type:       LineDeleted,
					Content:    op.Old.Raw,
					OldLineNum: oldNum,
				})
				h.OldCount++
			case OpAdd:
				newNum++
				h.Lines = append(h.Lines, HunkLine{
					Type:       LineAdded,
					Content:    op.New.Raw,
					NewLineNum: newNum,
				})
				h.NewCount++
			}
		}

		// Unified convention: a side with no lines reports the line
		// preceding the window, which is 0 at the start of the sequence.
		h.OldStart = oldBefore[start] + 1
		if h.OldCount == 0 {
			h.OldStart = oldBefore[start]
		}
		h.NewStart = newBefore[start] + 1
		if h.NewCount == 0 {
			h.NewStart = newBefore[start]
		}

		hunks = append(hunks, h)
	}
	return hunks, nil
}

// Header formats the hunk's coordinates as a unified "@@ -s,c +s,c @@"
// range line. A count of 1 is omitted, per the usual shorthand.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%s +%s @@", rangeText(h.OldStart, h.OldCount), rangeText(h.NewStart, h.NewCount))
}

func rangeText(start, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}
