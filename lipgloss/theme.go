// Package lipgloss provides themes and a colored renderer using the
// Lipgloss styling library.
package lipgloss

import "github.com/och-kazuki/minidiff"

// Compile-time interface verification.
var _ minidiff.Theme = (*Theme)(nil)

// Theme implements minidiff.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  minidiff.Styles
	palette minidiff.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() minidiff.Styles {
	return t.styles
}

// Palette returns the syntax-highlighting palette for this theme.
func (t *Theme) Palette() minidiff.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Background colors are very dark to allow syntax highlighting colors to
// remain readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: minidiff.Styles{
			Added: minidiff.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green - syntax colors stay readable
			},
			Deleted: minidiff.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red - syntax colors stay readable
			},
			Context: minidiff.ColorPair{
				Foreground: "#6c7086", // Muted gray (dimmed for change visibility)
			},
			HunkHeader: minidiff.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			FileHeader: minidiff.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
		},
		palette: minidiff.Palette{
			// Catppuccin Mocha
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: minidiff.Styles{
			Added: minidiff.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Deleted: minidiff.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Context: minidiff.ColorPair{
				Foreground: "#9ca0b0", // Muted gray (dimmed for change visibility)
			},
			HunkHeader: minidiff.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			FileHeader: minidiff.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
		},
		palette: minidiff.Palette{
			// Catppuccin Latte
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",
		},
	}
}
