package board

import (
	"fmt"
	"strings"

	"github.com/bnema/icebreaker-bingo/internal/application"
	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultCellWidth = 18
	cellTextLines    = 3
	progressWidth    = 24
)

type RenderOptions struct {
	// CellWidth is the inner width of a bingo cell. Zero means the default.
	CellWidth int
	// Cursor is the id of the highlighted square, or -1.
	Cursor int
	// Hint is printed under the board when set.
	Hint string
}

func DefaultOptions() RenderOptions {
	return RenderOptions{CellWidth: defaultCellWidth, Cursor: -1}
}

// RenderView draws a session view without running a bubbletea program.
func RenderView(view application.View, opts RenderOptions) string {
	return renderView(view, opts, newStyles())
}

func renderView(view application.View, opts RenderOptions, s styles) string {
	if opts.CellWidth <= 0 {
		opts.CellWidth = defaultCellWidth
	}

	lines := []string{s.title.Render(title(view.Mode))}

	if view.Screen == domain.ScreenStart || len(view.Board) == 0 {
		lines = append(lines, s.empty.Render("No game in progress."))
		return joinWithHint(lines, opts, s)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("marked: %d/%d", view.Marked, view.Total)))

	if view.Mode == domain.ModeScavenger {
		lines = append(lines, renderProgressBar(view.Marked, view.Total, progressWidth, s))
		lines = append(lines, renderChecklist(view, opts, s))
		return joinWithHint(lines, opts, s)
	}

	lines = append(lines, renderGrid(view, opts, s))
	if view.WinningLine != nil {
		lines = append(lines, s.banner.Render(bannerText(view)))
	}

	return joinWithHint(lines, opts, s)
}

func joinWithHint(lines []string, opts RenderOptions, s styles) string {
	if opts.Hint != "" {
		lines = append(lines, s.hint.Render(opts.Hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func title(mode domain.Mode) string {
	if mode == domain.ModeScavenger {
		return "Icebreaker Scavenger Hunt"
	}
	return "Icebreaker Bingo"
}

func renderGrid(view application.View, opts RenderOptions, s styles) string {
	rows := make([]string, 0, domain.GridSize)
	for row := 0; row < domain.GridSize; row++ {
		cells := make([]string, 0, domain.GridSize)
		for col := 0; col < domain.GridSize; col++ {
			index := row*domain.GridSize + col
			if index >= len(view.Board) {
				break
			}
			cells = append(cells, renderCell(view.Board[index], view.WinningIDs, opts, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(square domain.Square, winning map[int]struct{}, opts RenderOptions, s styles) string {
	style := s.cell
	switch {
	case isWinning(square.ID, winning):
		style = s.cellWin
	case square.IsFreeSpace:
		style = s.cellFree
	case square.IsMarked:
		style = s.cellMarked
	}

	head := fmt.Sprintf("%2d %s", square.ID, markGlyph(square, winning))
	if square.ID == opts.Cursor {
		head = s.cursor.Render(head)
	}

	body := lipgloss.NewStyle().
		Width(opts.CellWidth).
		Height(cellTextLines).
		MaxHeight(cellTextLines).
		Render(square.Text)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}

func markGlyph(square domain.Square, winning map[int]struct{}) string {
	switch {
	case isWinning(square.ID, winning):
		return "[*]"
	case square.IsMarked:
		return "[x]"
	default:
		return "[ ]"
	}
}

func isWinning(id int, winning map[int]struct{}) bool {
	_, ok := winning[id]
	return ok
}

func renderChecklist(view application.View, opts RenderOptions, s styles) string {
	items := make([]string, 0, len(view.Board))
	for _, square := range view.Board {
		mark := "[ ]"
		style := s.item
		if square.IsMarked {
			mark = "[x]"
			style = s.itemMarked
		}

		prefix := fmt.Sprintf("%2d %s", square.ID, mark)
		if square.ID == opts.Cursor {
			prefix = s.cursor.Render(prefix)
		}
		items = append(items, prefix+" "+style.Render(square.Text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func renderProgressBar(done, total, width int, s styles) string {
	if width <= 0 || total <= 0 {
		return ""
	}

	filled := done * width / total
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func bannerText(view application.View) string {
	line := view.WinningLine
	text := fmt.Sprintf("BINGO! %s %d complete", line.Type, line.Index+1)
	if line.Type == domain.LineDiagonal {
		text = "BINGO! " + diagonalName(line.Index) + " diagonal complete"
	}

	if extra := view.CompletedLines - 1; extra > 0 {
		text += fmt.Sprintf(" (+%d more %s)", extra, plural(extra, "line", "lines"))
	}

	return text
}

func diagonalName(index int) string {
	if index == 0 {
		return "top-left to bottom-right"
	}
	return "top-right to bottom-left"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
