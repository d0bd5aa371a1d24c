package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary     = lipgloss.Color("#101F38")
	accent      = lipgloss.Color("#8BC34A")
	muted       = lipgloss.Color("#6B7280")
	destructive = lipgloss.Color("#e53935")
	info        = lipgloss.Color("#2196F3")
)

// styles は画面全体で使うスタイルです。
type styles struct {
	Title      lipgloss.Style
	User       lipgloss.Style
	Role       lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Panel      lipgloss.Style
	Alert      lipgloss.Style
	Focused    lipgloss.Style
	Pagination lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Padding(0, 1),
		User:       lipgloss.NewStyle().Bold(true),
		Role:       lipgloss.NewStyle().Foreground(accent),
		Label:      lipgloss.NewStyle().Foreground(muted).Width(16),
		Value:      lipgloss.NewStyle(),
		Muted:      lipgloss.NewStyle().Foreground(muted),
		Error:      lipgloss.NewStyle().Foreground(destructive),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		Alert:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(info).Padding(0, 2),
		Focused:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Pagination: lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
