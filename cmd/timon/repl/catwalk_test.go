package repl

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/datadriven"
	"github.com/knz/catwalk"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// TestReplCatwalk drives the REPL model through scripted keystrokes and
// compares the resulting view against golden files in testdata.
//
//	go test ./cmd/timon/repl/... -args -rewrite
func TestReplCatwalk(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		m := New()
		m.width = 80
		m.height = 24

		catwalk.RunModel(t, path, m,
			catwalk.WithObserver("view", func(out io.Writer, m tea.Model) error {
				_, err := out.Write([]byte(m.(Model).View()))
				return err
			}),
		)
	})
}
