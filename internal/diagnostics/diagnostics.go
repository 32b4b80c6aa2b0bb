// Package diagnostics formats lexical, syntactic, and execution errors as
// human-readable, optionally colored, source-snippet-annotated messages.
// Built the same way a TUI's theme/Styles are built, adapted from widget
// styling to one-shot CLI diagnostic rendering.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/spietras/timon-interpreter/ast"
)

// Styles holds the lipgloss styles used to render a diagnostic. Built once
// from a color profile detected via termenv, so NO_COLOR and dumb
// terminals degrade to plain text automatically.
type Styles struct {
	Location lipgloss.Style
	Severity lipgloss.Style
	Message  lipgloss.Style
	Gutter   lipgloss.Style
	Caret    lipgloss.Style
}

// DefaultStyles builds Styles appropriate for the current terminal, as
// reported by termenv's color profile detection.
func DefaultStyles() Styles {
	profile := termenv.ColorProfile()
	color := func(hex string) lipgloss.Color {
		if profile == termenv.Ascii {
			return ""
		}
		return lipgloss.Color(hex)
	}
	return Styles{
		Location: lipgloss.NewStyle().Bold(true),
		Severity: lipgloss.NewStyle().Bold(true).Foreground(color("9")),
		Message:  lipgloss.NewStyle(),
		Gutter:   lipgloss.NewStyle().Foreground(color("8")),
		Caret:    lipgloss.NewStyle().Bold(true).Foreground(color("9")),
	}
}

// Snippeter is the minimal source-access surface needed to render the
// caret-annotated context line under a diagnostic: a reader that still has
// the full source text in memory. internal/source.Reader satisfies it.
type Snippeter interface {
	Snippet(pos int, maxSide int) (line string, caretCol int)
	Name() string
}

// Format renders a single diagnostic: `name:LINE:COL: SEVERITY: message`
// followed by a source line and a caret pointing at the offending column.
func Format(styles Styles, snippeter Snippeter, severity, message string, pos ast.Position) string {
	line, caretCol := snippeter.Snippet(pos.Offset, 30)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %s\n",
		styles.Location.Render(fmt.Sprintf("%s:%d:%d", snippeter.Name(), pos.Line, pos.Column)),
		styles.Severity.Render(severity),
		styles.Message.Render(message))
	fmt.Fprintf(&b, "  %s %s\n", styles.Gutter.Render("|"), line)
	fmt.Fprintf(&b, "  %s %s%s\n", styles.Gutter.Render("|"), strings.Repeat(" ", caretCol), styles.Caret.Render("^"))
	return b.String()
}
