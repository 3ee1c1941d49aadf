package live

import "github.com/charmbracelet/lipgloss"

type styles struct {
	base    lipgloss.Style
	title   lipgloss.Style
	clock   lipgloss.Style
	hint    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("#2E8B57")
	text := lipgloss.Color("#1A1A1A")
	dim := lipgloss.Color("#666666")

	if dark {
		accent = lipgloss.Color("#B0DB43")
		text = lipgloss.Color("#F5F5F5")
		dim = lipgloss.Color("#9A9A9A")
	}

	return styles{
		base:    lipgloss.NewStyle().Padding(1, 2),
		title:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		clock:   lipgloss.NewStyle().Foreground(text).Bold(true),
		hint:    lipgloss.NewStyle().Foreground(dim),
		success: lipgloss.NewStyle().Foreground(accent),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")),
	}
}
