package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// theme styles status lines; on a non-terminal writer it renders plain text.
type theme struct {
	ok   lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		ok:   r.NewStyle().Foreground(lipgloss.Color("42")),
		fail: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		warn: r.NewStyle().Faint(true),
	}
}

func (t theme) success(s string) string { return t.ok.Render(s) }
func (t theme) failure(s string) string { return t.fail.Render(s) }
func (t theme) warning(s string) string { return t.warn.Render(s) }
