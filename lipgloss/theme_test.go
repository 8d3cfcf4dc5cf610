package lipgloss_test

import (
	"testing"

	"github.com/och-kazuki/minidiff"
	"github.com/och-kazuki/minidiff/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ minidiff.Theme = lipgloss.DefaultTheme()
	})

	t.Run("returns styles for every diff element", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.DefaultTheme().Styles()

		assert.NotEmpty(t, styles.Added.Foreground)
		assert.NotEmpty(t, styles.Deleted.Foreground)
		assert.NotEmpty(t, styles.Context.Foreground)
		assert.NotEmpty(t, styles.HunkHeader.Foreground)
		assert.NotEmpty(t, styles.FileHeader.Foreground)
	})

	t.Run("returns same styles as DarkTheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.DefaultTheme().Styles())
	})
}

func TestDarkTheme(t *testing.T) {
	t.Parallel()

	t.Run("populates the syntax palette", func(t *testing.T) {
		t.Parallel()

		palette := lipgloss.DarkTheme().Palette()

		assert.NotEmpty(t, palette.Keyword)
		assert.NotEmpty(t, palette.String)
		assert.NotEmpty(t, palette.Comment)
		assert.NotEmpty(t, palette.Function)
	})
}

func TestLightTheme(t *testing.T) {
	t.Parallel()

	t.Run("returns styles for every diff element", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.LightTheme().Styles()

		assert.NotEmpty(t, styles.Added.Foreground)
		assert.NotEmpty(t, styles.Deleted.Foreground)
		assert.NotEmpty(t, styles.Context.Foreground)
		assert.NotEmpty(t, styles.HunkHeader.Foreground)
		assert.NotEmpty(t, styles.FileHeader.Foreground)
	})

	t.Run("differs from the dark theme", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, lipgloss.DarkTheme().Styles(), lipgloss.LightTheme().Styles())
	})
}
