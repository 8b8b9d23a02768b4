package board

import (
	"strings"
	"testing"

	"github.com/bnema/icebreaker-bingo/internal/application"
	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bingoView(marked ...int) application.View {
	board := make([]domain.Square, 0, domain.BoardSize)
	for id := 0; id < domain.BoardSize; id++ {
		square := domain.Square{ID: id, Text: "Prompt"}
		if id == domain.FreeSpaceID {
			square = domain.Square{ID: id, Text: domain.FreeSpaceText, IsMarked: true, IsFreeSpace: true}
		}
		board = append(board, square)
	}
	for _, id := range marked {
		board = domain.ToggleSquare(board, id)
	}

	line := domain.DetectWin(board)
	screen := domain.ScreenPlaying
	if line != nil {
		screen = domain.ScreenWon
	}

	return application.View{
		Screen:         screen,
		Mode:           domain.ModeBingo,
		Board:          board,
		WinningLine:    line,
		WinningIDs:     domain.WinningIDs(line),
		Marked:         len(marked) + 1,
		Total:          domain.BoardSize,
		CompletedLines: len(domain.CompletedLines(board)),
	}
}

func TestRenderStartScreen(t *testing.T) {
	output, err := Render(application.View{Screen: domain.ScreenStart, Mode: domain.ModeBingo}, DefaultOptions())

	require.NoError(t, err)
	assert.Contains(t, output, "Icebreaker Bingo")
	assert.Contains(t, output, "No game in progress.")
}

func TestRenderBingoBoard(t *testing.T) {
	output, err := Render(bingoView(3), DefaultOptions())

	require.NoError(t, err)
	assert.Contains(t, output, "marked: 2/25")
	assert.Contains(t, output, "FREE")
	assert.Contains(t, output, " 3 [x]")
	assert.Contains(t, output, " 4 [ ]")
	assert.Contains(t, output, "12 [x]")
	assert.NotContains(t, output, "BINGO!")
}

func TestRenderBingoWinHighlightsLine(t *testing.T) {
	output, err := Render(bingoView(10, 11, 13, 14), DefaultOptions())

	require.NoError(t, err)
	assert.Contains(t, output, "BINGO! row 3 complete")
	for _, head := range []string{"10 [*]", "11 [*]", "12 [*]", "13 [*]", "14 [*]"} {
		assert.Contains(t, output, head)
	}
	assert.Equal(t, 5, strings.Count(output, "[*]"))
}

func TestRenderBingoReportsExtraLines(t *testing.T) {
	output, err := Render(bingoView(10, 11, 13, 14, 0, 6, 18, 24), DefaultOptions())

	require.NoError(t, err)
	assert.Contains(t, output, "BINGO! row 3 complete (+1 more line)")
	assert.Contains(t, output, " 0 [x]")
}

func TestRenderDiagonalBanner(t *testing.T) {
	output := RenderView(bingoView(4, 8, 16, 20), DefaultOptions())
	assert.Contains(t, output, "BINGO! top-right to bottom-left diagonal complete")
}

func TestRenderScavengerChecklist(t *testing.T) {
	list := make([]domain.Square, 0, domain.ItemsPerDraw)
	for id := 0; id < domain.ItemsPerDraw; id++ {
		list = append(list, domain.Square{ID: id, Text: "Someone who juggles"})
	}
	list = domain.ToggleSquare(list, 0)
	list = domain.ToggleSquare(list, 5)

	output, err := Render(application.View{
		Screen: domain.ScreenPlaying,
		Mode:   domain.ModeScavenger,
		Board:  list,
		Marked: 2,
		Total:  domain.ItemsPerDraw,
	}, RenderOptions{Cursor: -1, Hint: "press q to quit"})

	require.NoError(t, err)
	assert.Contains(t, output, "Icebreaker Scavenger Hunt")
	assert.Contains(t, output, "marked: 2/24")
	assert.Contains(t, output, "[=="+strings.Repeat("-", 22)+"]")
	assert.Contains(t, output, " 5 [x]")
	assert.Contains(t, output, "23 [ ] Someone who juggles")
	assert.Contains(t, output, "press q to quit")
	assert.NotContains(t, output, "BINGO!")
}

func TestRenderProgressBarClamps(t *testing.T) {
	s := newStyles()
	assert.Equal(t, "", renderProgressBar(1, 0, 10, s))
	assert.Equal(t, "[==========]", renderProgressBar(30, 24, 10, s))
	assert.Equal(t, "[----------]", renderProgressBar(0, 24, 10, s))
}
