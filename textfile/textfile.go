// Package textfile loads text files as line records with normalized
// comparison keys. It is the line-pairing collaborator in front of the
// diff engines: normalization happens here, never in the core.
package textfile

import (
	"context"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/och-kazuki/minidiff"
)

// Options control how a line's comparison key is derived from its text.
// The zero value compares lines byte for byte.
type Options struct {
	IgnoreEOL           bool // treat CRLF and LF line endings as equal
	IgnoreTrailingSpace bool // ignore trailing whitespace
	IgnoreCase          bool // compare case-insensitively
}

// Split breaks text into line records. Lines are terminated by '\n'; the
// terminator is not part of Raw. A trailing '\r' stays in Raw for
// display fidelity but is dropped from the key when IgnoreEOL is set.
func Split(text string, opts Options) []minidiff.Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		// Text ended with a newline; the split leaves a phantom last line.
		parts = parts[:len(parts)-1]
	}
	lines := make([]minidiff.Line, len(parts))
	for i, raw := range parts {
		lines[i] = minidiff.Line{Raw: raw, Key: key(raw, opts)}
	}
	return lines
}

func key(raw string, opts Options) string {
	k := raw
	if opts.IgnoreEOL {
		k = strings.TrimSuffix(k, "\r")
	}
	if opts.IgnoreTrailingSpace {
		k = strings.TrimRight(k, " \t\r")
	}
	if opts.IgnoreCase {
		k = strings.ToLower(k)
	}
	return k
}

// Loader reads files and splits them into line records.
type Loader struct {
	opts Options
}

// NewLoader creates a Loader with the given normalization options.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Load reads the file at path and splits it into line records.
func (l *Loader) Load(path string) ([]minidiff.Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Split(string(data), l.opts), nil
}

// ReadPair loads both sides of a comparison concurrently.
func (l *Loader) ReadPair(ctx context.Context, oldPath, newPath string) (old, new []minidiff.Line, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		old, err = l.Load(oldPath)
		return err
	})
	g.Go(func() error {
		var err error
		new, err = l.Load(newPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return old, new, nil
}
