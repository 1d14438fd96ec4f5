package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type importDoneMsg struct{}

type importSpinnerModel struct {
	spinner spinner.Model
	label   string
	ingest  tea.Cmd
	done    bool
}

func newImportSpinnerModel(label string, ingest tea.Cmd) importSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return importSpinnerModel{
		spinner: s,
		label:   label,
		ingest:  ingest,
	}
}

func (m importSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.ingest)
}

func (m importSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case importDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m importSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runImportSpinner(output io.Writer, label string, ingest func()) error {
	ingestCmd := func() tea.Msg {
		ingest()
		return importDoneMsg{}
	}

	p := tea.NewProgram(
		newImportSpinnerModel(label, ingestCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
	)
	_, err := p.Run()
	return err
}
