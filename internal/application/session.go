package application

import (
	"context"
	"fmt"

	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/bnema/icebreaker-bingo/internal/ports"
	"github.com/rs/zerolog"
)

// View is the read surface handed to the shell.
type View struct {
	Screen         domain.Screen
	Mode           domain.Mode
	Board          []domain.Square
	WinningLine    *domain.WinningLine
	WinningIDs     map[int]struct{}
	ShowWinModal   bool
	Marked         int
	Total          int
	CompletedLines int
}

// Session owns the live game state. Every mutation is persisted through the
// injected store before the method returns.
type Session struct {
	store        ports.SessionStore
	generator    *domain.Generator
	log          zerolog.Logger
	state        domain.SessionState
	showWinModal bool
}

// NewSession restores the stored session, falling back to the empty start
// state when nothing usable was stored.
func NewSession(ctx context.Context, store ports.SessionStore, generator *domain.Generator, logger zerolog.Logger) *Session {
	session := &Session{
		store:     store,
		generator: generator,
		log:       logger,
		state:     domain.EmptySessionState(),
	}

	if stored, ok := store.Load(ctx); ok {
		session.state = *stored
		logger.Debug().
			Str("screen", string(stored.Screen)).
			Str("mode", string(stored.Mode)).
			Msg("restored game state")
	}

	return session
}

func (s *Session) StartGame(ctx context.Context, mode domain.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("start game: %w %q", domain.ErrUnknownMode, mode)
	}

	s.state = domain.SessionState{
		Screen: domain.ScreenPlaying,
		Mode:   mode,
		Board:  s.generator.For(mode),
	}
	s.showWinModal = false
	s.log.Debug().Str("mode", string(mode)).Msg("game started")

	s.store.Save(ctx, s.state)
	return nil
}

// ToggleSquare flips one square, then checks for a bingo against the
// already-applied board. A recorded winning line is never re-evaluated.
func (s *Session) ToggleSquare(ctx context.Context, id int) {
	s.state.Board = domain.ToggleSquare(s.state.Board, id)

	if s.state.Mode == domain.ModeBingo && s.state.WinningLine == nil {
		if line := domain.DetectWin(s.state.Board); line != nil {
			s.state.WinningLine = line
			s.state.Screen = domain.ScreenWon
			s.showWinModal = true
			s.log.Debug().
				Str("line", string(line.Type)).
				Int("index", line.Index).
				Msg("bingo")
		}
	}

	s.store.Save(ctx, s.state)
}

func (s *Session) ResetGame(ctx context.Context) {
	s.state = domain.SessionState{Screen: domain.ScreenStart, Mode: s.state.Mode}
	s.showWinModal = false
	s.log.Debug().Msg("game reset")

	s.store.Save(ctx, s.state)
}

func (s *Session) DismissWinModal() {
	s.showWinModal = false
}

func (s *Session) Current() View {
	board := make([]domain.Square, len(s.state.Board))
	copy(board, s.state.Board)

	view := View{
		Screen:       s.state.Screen,
		Mode:         s.state.Mode,
		Board:        board,
		WinningLine:  s.state.WinningLine,
		WinningIDs:   domain.WinningIDs(s.state.WinningLine),
		ShowWinModal: s.showWinModal,
		Marked:       s.state.MarkedCount(),
		Total:        len(s.state.Board),
	}
	if s.state.Mode == domain.ModeBingo {
		view.CompletedLines = len(domain.CompletedLines(s.state.Board))
	}

	return view
}

// State returns the session as it is persisted.
func (s *Session) State() domain.SessionState {
	return s.state
}
