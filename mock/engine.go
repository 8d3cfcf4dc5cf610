// Package mock provides test doubles for minidiff interfaces.
package mock

import "github.com/och-kazuki/minidiff"

// Compile-time interface verification.
var _ minidiff.Engine = (*Engine)(nil)

// Engine is a mock implementation of minidiff.Engine.
type Engine struct {
	DiffFn func(old, new []minidiff.Line) []minidiff.Op
}

func (e *Engine) Diff(old, new []minidiff.Line) []minidiff.Op {
	return e.DiffFn(old, new)
}
