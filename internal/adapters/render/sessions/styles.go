package sessions

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	row       lipgloss.Style
	slug      lipgloss.Style
	track     lipgloss.Style
	meta      lipgloss.Style
	best      lipgloss.Style
	lapValid  lipgloss.Style
	lapBad    lipgloss.Style
	lapBest   lipgloss.Style
	spectator lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		row:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		slug:      lipgloss.NewStyle().Faint(true),
		track:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		best:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		lapValid:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		lapBad:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		lapBest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")),
		spectator: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
	}
}
