package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xiam/parsec/calc"
)

const replPrompt = "calc> "

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// replModel is the Bubble Tea model for the expression REPL.
type replModel struct {
	input      textinput.Model
	lines      []string
	history    []string
	historyIdx int
}

func newReplModel() replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(replPrompt)
	ti.Focus()

	return replModel{input: ti}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyUp:
			if m.historyIdx > 0 {
				m.historyIdx--
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.historyIdx < len(m.history) {
				m.historyIdx++
				if m.historyIdx == len(m.history) {
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.history[m.historyIdx])
					m.input.CursorEnd()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if line == "" {
		return m, nil
	}
	if line == "quit" || line == "exit" {
		return m, tea.Quit
	}

	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	m.lines = append(m.lines, promptStyle.Render(replPrompt)+line)

	if n, err := calc.Eval(line); err != nil {
		m.lines = append(m.lines, errorStyle.Render(err.Error()))
	} else {
		m.lines = append(m.lines, resultStyle.Render(strconv.FormatInt(n, 10)))
	}

	return m, nil
}

func (m replModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	return b.String()
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive expression evaluator",
		Long: `Start an interactive evaluator for integer arithmetic expressions.

Type an expression to evaluate it. Use Up/Down for history, and
Ctrl+C, Ctrl+D or "quit" to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(newReplModel()).Run()
			return err
		},
	}
}
