package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	empty      lipgloss.Style
	cell       lipgloss.Style
	cellMarked lipgloss.Style
	cellWin    lipgloss.Style
	cellFree   lipgloss.Style
	cursor     lipgloss.Style
	item       lipgloss.Style
	itemMarked lipgloss.Style
	banner     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	hint       lipgloss.Style
}

func newStyles() styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:      lipgloss.NewStyle().Faint(true),
		cell:       cell.Foreground(lipgloss.Color("252")),
		cellMarked: cell.Foreground(lipgloss.Color("159")).BorderForeground(lipgloss.Color("39")),
		cellWin:    cell.Bold(true).Foreground(lipgloss.Color("219")).BorderForeground(lipgloss.Color("201")),
		cellFree:   cell.Foreground(lipgloss.Color("245")).BorderForeground(lipgloss.Color("244")),
		cursor:     lipgloss.NewStyle().Reverse(true),
		item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		itemMarked: lipgloss.NewStyle().Foreground(lipgloss.Color("159")).Strikethrough(true),
		banner:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")).MarginTop(1),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		hint:       lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
