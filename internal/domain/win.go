package domain

type line struct {
	kind  LineType
	index int
	ids   [GridSize]int
}

// scanOrder lists every line in detection order: rows, columns, then the
// top-left and top-right diagonals.
var scanOrder = buildScanOrder()

func buildScanOrder() []line {
	lines := make([]line, 0, 2*GridSize+2)

	for row := 0; row < GridSize; row++ {
		l := line{kind: LineRow, index: row}
		for col := 0; col < GridSize; col++ {
			l.ids[col] = row*GridSize + col
		}
		lines = append(lines, l)
	}

	for col := 0; col < GridSize; col++ {
		l := line{kind: LineColumn, index: col}
		for row := 0; row < GridSize; row++ {
			l.ids[row] = row*GridSize + col
		}
		lines = append(lines, l)
	}

	diag := line{kind: LineDiagonal, index: 0}
	anti := line{kind: LineDiagonal, index: 1}
	for i := 0; i < GridSize; i++ {
		diag.ids[i] = i*GridSize + i
		anti.ids[i] = i*GridSize + (GridSize - 1 - i)
	}

	return append(lines, diag, anti)
}

// DetectWin returns the first complete line of a bingo board, or nil.
func DetectWin(board []Square) *WinningLine {
	if len(board) != BoardSize {
		return nil
	}

	for _, l := range scanOrder {
		if l.complete(board) {
			return l.winningLine()
		}
	}

	return nil
}

// CompletedLines returns every complete line of a bingo board in scan order.
func CompletedLines(board []Square) []WinningLine {
	if len(board) != BoardSize {
		return nil
	}

	var lines []WinningLine
	for _, l := range scanOrder {
		if l.complete(board) {
			lines = append(lines, *l.winningLine())
		}
	}

	return lines
}

// WinningIDs returns the member ids of a line. It does not check them
// against any board.
func WinningIDs(line *WinningLine) map[int]struct{} {
	ids := make(map[int]struct{})
	if line == nil {
		return ids
	}
	for _, id := range line.Squares {
		ids[id] = struct{}{}
	}

	return ids
}

func (l line) complete(board []Square) bool {
	for _, id := range l.ids {
		square := board[id]
		if !square.IsMarked && !square.IsFreeSpace {
			return false
		}
	}

	return true
}

func (l line) winningLine() *WinningLine {
	squares := make([]int, GridSize)
	copy(squares, l.ids[:])

	return &WinningLine{Type: l.kind, Index: l.index, Squares: squares}
}
