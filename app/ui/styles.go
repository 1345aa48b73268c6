package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header    lipgloss.Style
	Brand     lipgloss.Style
	User      lipgloss.Style
	System    lipgloss.Style
	Error     lipgloss.Style
	Accent    lipgloss.Style
	Dim       lipgloss.Style
	ChartCard lipgloss.Style
	Series    lipgloss.Style
	Highlight lipgloss.Style
	BarFill   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Brand:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		User:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		System:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ChartCard: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		Series:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		BarFill:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}
