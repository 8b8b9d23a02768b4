package domain

import "fmt"

type Screen string
type Mode string
type LineType string

const (
	ScreenStart   Screen = "start"
	ScreenPlaying Screen = "playing"
	ScreenWon     Screen = "won"

	ModeBingo     Mode = "bingo"
	ModeScavenger Mode = "scavenger"

	LineRow      LineType = "row"
	LineColumn   LineType = "column"
	LineDiagonal LineType = "diagonal"
)

const (
	GridSize      = 5
	BoardSize     = GridSize * GridSize
	FreeSpaceID   = BoardSize / 2
	ItemsPerDraw  = BoardSize - 1
	FreeSpaceText = "FREE"
)

type Square struct {
	ID          int
	Text        string
	IsMarked    bool
	IsFreeSpace bool
}

type WinningLine struct {
	Type    LineType
	Index   int
	Squares []int
}

// SessionState is the unit of persistence.
type SessionState struct {
	Screen      Screen
	Mode        Mode
	Board       []Square
	WinningLine *WinningLine
}

func EmptySessionState() SessionState {
	return SessionState{Screen: ScreenStart, Mode: ModeBingo}
}

func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeBingo, ModeScavenger:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMode, value)
	}
}

func (s Screen) Valid() bool {
	switch s {
	case ScreenStart, ScreenPlaying, ScreenWon:
		return true
	default:
		return false
	}
}

func (m Mode) Valid() bool {
	return m == ModeBingo || m == ModeScavenger
}

func (t LineType) Valid() bool {
	switch t {
	case LineRow, LineColumn, LineDiagonal:
		return true
	default:
		return false
	}
}

// Validate checks the cross-field invariants of a session.
func (s SessionState) Validate() error {
	if !s.Screen.Valid() {
		return fmt.Errorf("unknown screen %q", s.Screen)
	}
	if !s.Mode.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownMode, s.Mode)
	}

	switch len(s.Board) {
	case 0:
		if s.Screen != ScreenStart {
			return fmt.Errorf("empty board on %s screen", s.Screen)
		}
	case ItemsPerDraw, BoardSize:
	default:
		return fmt.Errorf("board length %d is not one of 0, %d, %d", len(s.Board), ItemsPerDraw, BoardSize)
	}

	if s.WinningLine != nil {
		if s.Mode != ModeBingo {
			return fmt.Errorf("winning line recorded in %s mode", s.Mode)
		}
		if s.Screen != ScreenWon {
			return fmt.Errorf("winning line recorded on %s screen", s.Screen)
		}
	}

	return nil
}

func (s SessionState) MarkedCount() int {
	count := 0
	for _, square := range s.Board {
		if square.IsMarked {
			count++
		}
	}
	return count
}
