package lipgloss_test

import (
	"strings"
	"testing"

	"github.com/och-kazuki/minidiff"
	"github.com/och-kazuki/minidiff/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileDiff() *minidiff.FileDiff {
	return &minidiff.FileDiff{
		OldPath: "a/main.go",
		NewPath: "b/main.go",
		Hunks: []minidiff.Hunk{{
			OldStart: 1, OldCount: 3, NewStart: 1, NewCount: 3,
			Lines: []minidiff.HunkLine{
				{Type: minidiff.LineContext, Content: "package main", OldLineNum: 1, NewLineNum: 1},
				{Type: minidiff.LineDeleted, Content: "var x = 1", OldLineNum: 2},
				{Type: minidiff.LineAdded, Content: "var x = 2", NewLineNum: 2},
				{Type: minidiff.LineContext, Content: "func main() {}", OldLineNum: 3, NewLineNum: 3},
			},
		}},
	}
}

// Assertions use Contains: whether lipgloss emits ANSI sequences depends
// on the terminal profile the test runs under, but the text is always
// present.
func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(lipgloss.DefaultTheme())

	var sb strings.Builder
	err := r.Render(&sb, fileDiff())

	require.NoError(t, err)
	out := sb.String()
	assert.Contains(t, out, "--- a/main.go")
	assert.Contains(t, out, "+++ b/main.go")
	assert.Contains(t, out, "@@ -1,3 +1,3 @@")
	assert.Contains(t, out, "var x = 1")
	assert.Contains(t, out, "var x = 2")
	assert.Equal(t, 7, strings.Count(out, "\n"), "two headers, one hunk header, four lines")
}

func TestRenderer_Render_NoHunks(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(lipgloss.DefaultTheme())

	var sb strings.Builder
	err := r.Render(&sb, &minidiff.FileDiff{OldPath: "a/x", NewPath: "b/x"})

	require.NoError(t, err)
	assert.Empty(t, sb.String())
}

// fakeTokenizer splits on spaces so the test controls highlighting
// without depending on a real lexer.
type fakeTokenizer struct {
	langs map[string]bool
}

func (f *fakeTokenizer) Tokenize(language, source string) []minidiff.Token {
	if !f.langs[language] {
		return nil
	}
	var tokens []minidiff.Token
	for i, part := range strings.SplitAfter(source, " ") {
		style := minidiff.Style{}
		if i == 0 {
			style = minidiff.Style{Foreground: "#ff0000", Bold: true}
		}
		tokens = append(tokens, minidiff.Token{Text: part, Style: style})
	}
	return tokens
}

type fakeDetector struct {
	lang string
}

func (f *fakeDetector) DetectFromPath(path string) string {
	return f.lang
}

func TestRenderer_Render_WithSyntax(t *testing.T) {
	t.Parallel()

	t.Run("highlighted lines keep their content", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(lipgloss.DefaultTheme(),
			lipgloss.WithSyntax(&fakeTokenizer{langs: map[string]bool{"Go": true}}, &fakeDetector{lang: "Go"}))

		var sb strings.Builder
		err := r.Render(&sb, fileDiff())

		require.NoError(t, err)
		out := sb.String()
		assert.Contains(t, out, "package")
		assert.Contains(t, out, "main")
		assert.Contains(t, out, "var")
		assert.Equal(t, 7, strings.Count(out, "\n"))
	})

	t.Run("unsupported language falls back to plain coloring", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(lipgloss.DefaultTheme(),
			lipgloss.WithSyntax(&fakeTokenizer{}, &fakeDetector{lang: "Brainfuck"}))

		var sb strings.Builder
		err := r.Render(&sb, fileDiff())

		require.NoError(t, err)
		assert.Contains(t, sb.String(), "package main")
	})
}
