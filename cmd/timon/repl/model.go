// Package repl implements the interactive session started by `timon repl`:
// a minimal, scrolling history view built on bubbletea/bubbles. A
// textinput-driven evaluate loop with a scrolling input/output history and
// lipgloss styling, simplified to a single pane since this language has no
// pinned-variable panel or slash-command mode.
package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timon "github.com/spietras/timon-interpreter"
	tconfig "github.com/spietras/timon-interpreter/cmd/timon/config"
)

// entry is one input/output pair in the scrolling history.
type entry struct {
	input   string
	output  string
	isError bool
}

// Model is the bubbletea model driving the REPL.
type Model struct {
	session *timon.Session
	input   textinput.Model

	history    []entry
	historyIdx int // -1 means "not browsing"
	inputLog   []string

	width, height int
	quitting      bool

	promptStyle lipgloss.Style
	outputStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// New creates a fresh REPL model over a new Session.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "var x = 01.01.2024; print x + '3D';"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 70

	cfg, _ := tconfig.Load()
	styles := buildStyles(cfg)
	return Model{
		session:     timon.NewSession(),
		input:       ti,
		historyIdx:  -1,
		width:       80,
		height:      24,
		promptStyle: styles.prompt,
		outputStyle: styles.output,
		errorStyle:  styles.error,
	}
}

type styleSet struct {
	prompt, output, error lipgloss.Style
}

func buildStyles(cfg *tconfig.Config) styleSet {
	if cfg == nil {
		return styleSet{
			prompt: lipgloss.NewStyle(),
			output: lipgloss.NewStyle(),
			error:  lipgloss.NewStyle().Bold(true),
		}
	}
	return styleSet{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Prompt)),
		output: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Output)),
		error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.Theme.Error)),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 4
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyUp:
		return m.historyUp(), nil
	case tea.KeyDown:
		return m.historyDown(), nil
	case tea.KeyEnter:
		return m.evaluate(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) historyUp() Model {
	if len(m.inputLog) == 0 {
		return m
	}
	if m.historyIdx == -1 {
		m.historyIdx = len(m.inputLog) - 1
	} else if m.historyIdx > 0 {
		m.historyIdx--
	}
	m.input.SetValue(m.inputLog[m.historyIdx])
	m.input.CursorEnd()
	return m
}

func (m Model) historyDown() Model {
	if m.historyIdx == -1 {
		return m
	}
	if m.historyIdx < len(m.inputLog)-1 {
		m.historyIdx++
		m.input.SetValue(m.inputLog[m.historyIdx])
	} else {
		m.historyIdx = -1
		m.input.SetValue("")
	}
	m.input.CursorEnd()
	return m
}

func (m Model) evaluate() Model {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.historyIdx = -1
	if line == "" {
		return m
	}
	m.inputLog = append(m.inputLog, line)

	result, err := m.session.Eval(line)
	if err != nil {
		m.history = append(m.history, entry{input: line, output: err.Error(), isError: true})
		return m
	}

	output := result.Output
	if result.Value != nil {
		if output != "" {
			output += "\n"
		}
		output += fmt.Sprintf("= %s", result.Value.String())
	}
	m.history = append(m.history, entry{input: line, output: output})
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	for _, e := range m.history {
		fmt.Fprintf(&b, "%s%s\n", m.promptStyle.Render("> "), e.input)
		if e.output == "" {
			continue
		}
		if e.isError {
			fmt.Fprintln(&b, m.errorStyle.Render(e.output))
		} else {
			fmt.Fprintln(&b, m.outputStyle.Render(e.output))
		}
	}
	fmt.Fprint(&b, m.input.View())
	return b.String()
}
