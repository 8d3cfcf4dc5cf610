package lipgloss

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/och-kazuki/minidiff"
)

// Compile-time interface verification.
var _ minidiff.Renderer = (*Renderer)(nil)

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithSyntax enables syntax highlighting of line content. The detector
// picks the language from the file paths; lines of unsupported languages
// fall back to plain diff coloring.
func WithSyntax(tokenizer minidiff.Tokenizer, detector minidiff.LanguageDetector) RendererOption {
	return func(r *Renderer) {
		r.tokenizer = tokenizer
		r.detector = detector
	}
}

// Renderer writes comparisons as colored unified-style text.
type Renderer struct {
	added      lipgloss.Style
	deleted    lipgloss.Style
	context    lipgloss.Style
	hunkHeader lipgloss.Style
	fileHeader lipgloss.Style

	tokenizer minidiff.Tokenizer
	detector  minidiff.LanguageDetector
}

// NewRenderer creates a Renderer using the theme's styles.
func NewRenderer(theme minidiff.Theme, opts ...RendererOption) *Renderer {
	s := theme.Styles()
	r := &Renderer{
		added:      styleFor(s.Added),
		deleted:    styleFor(s.Deleted),
		context:    styleFor(s.Context),
		hunkHeader: styleFor(s.HunkHeader),
		fileHeader: styleFor(s.FileHeader),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func styleFor(p minidiff.ColorPair) lipgloss.Style {
	st := lipgloss.NewStyle()
	if p.Foreground != "" {
		st = st.Foreground(lipgloss.Color(p.Foreground))
	}
	if p.Background != "" {
		st = st.Background(lipgloss.Color(p.Background))
	}
	return st
}

// Render writes the file headers and hunks of d with color styling.
// Nothing is written when d has no hunks.
func (r *Renderer) Render(w io.Writer, d *minidiff.FileDiff) error {
	if len(d.Hunks) == 0 {
		return nil
	}
	language := r.detectLanguage(d)

	var sb strings.Builder
	sb.WriteString(r.fileHeader.Render("--- " + d.OldPath))
	sb.WriteByte('\n')
	sb.WriteString(r.fileHeader.Render("+++ " + d.NewPath))
	sb.WriteByte('\n')
	for _, h := range d.Hunks {
		sb.WriteString(r.hunkHeader.Render(h.Header()))
		sb.WriteByte('\n')
		for _, line := range h.Lines {
			r.writeLine(&sb, line, language)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) detectLanguage(d *minidiff.FileDiff) string {
	if r.detector == nil {
		return ""
	}
	if lang := r.detector.DetectFromPath(d.NewPath); lang != "" {
		return lang
	}
	return r.detector.DetectFromPath(d.OldPath)
}

func (r *Renderer) writeLine(sb *strings.Builder, line minidiff.HunkLine, language string) {
	base := r.context
	prefix := " "
	switch line.Type {
	case minidiff.LineAdded:
		base = r.added
		prefix = "+"
	case minidiff.LineDeleted:
		base = r.deleted
		prefix = "-"
	}

	if language != "" && r.tokenizer != nil {
		if tokens := r.tokenizer.Tokenize(language, line.Content); tokens != nil {
			sb.WriteString(base.Render(prefix))
			for _, tok := range tokens {
				sb.WriteString(tokenStyle(base, tok.Style).Render(tok.Text))
			}
			sb.WriteByte('\n')
			return
		}
	}

	sb.WriteString(base.Render(prefix + line.Content))
	sb.WriteByte('\n')
}

// tokenStyle layers a syntax foreground over the base diff style so the
// add/remove background tint survives highlighting.
func tokenStyle(base lipgloss.Style, s minidiff.Style) lipgloss.Style {
	st := base
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}
