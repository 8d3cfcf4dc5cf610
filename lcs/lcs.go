// Package lcs implements the diff engine as a longest-common-subsequence
// alignment over line comparison keys.
package lcs

import "github.com/och-kazuki/minidiff"

// Compile-time interface verification.
var _ minidiff.Engine = (*Engine)(nil)

// Engine computes edit scripts with the classic O(n*m) dynamic
// programming table. The table is allocated per call, so independent
// comparisons can run concurrently. Callers that need bounded memory on
// very large inputs should size-guard before calling or select another
// engine.
type Engine struct{}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Diff returns the edit script that transforms old into new, maximizing
// the number of Equal pairs. Inputs with duplicate keys admit several
// maximal alignments; ties are broken deterministically: matching keys
// always pair up, and within a changed block every Remove precedes
// every Add.
func (e *Engine) Diff(old, new []minidiff.Line) []minidiff.Op {
	n, m := len(old), len(new)
	if n == 0 && m == 0 {
		return nil
	}

	// DP table as a flat slice (single allocation).
	// table[i*stride+j] = LCS length of old[:i] and new[:j].
	stride := m + 1
	table := make([]int, (n+1)*stride)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if old[i-1].Key == new[j-1].Key {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	// Backtrack from (n,m); ops come out last-first. Preferring the j
	// step on ties emits Adds before Removes here, which reads as
	// Remove-before-Add once the slice is reversed.
	ops := make([]minidiff.Op, 0, n+m-table[n*stride+m])
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && old[i-1].Key == new[j-1].Key:
			ops = append(ops, minidiff.Op{Type: minidiff.OpEqual, Old: old[i-1], New: new[j-1]})
			i--
			j--
		case j > 0 && (i == 0 || table[(i-1)*stride+j] <= table[i*stride+j-1]):
			ops = append(ops, minidiff.Op{Type: minidiff.OpAdd, New: new[j-1]})
			j--
		default:
			ops = append(ops, minidiff.Op{Type: minidiff.OpRemove, Old: old[i-1]})
			i--
		}
	}

	// Reverse into stream order.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}
