package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/bnema/icebreaker-bingo/internal/ports"
	"github.com/rs/zerolog"
)

const (
	StateKey             = "bingo-game-state"
	CurrentSchemaVersion = 2
)

var (
	ErrSchemaVersion = errors.New("unsupported state schema version")
	ErrInvalidRecord = errors.New("invalid state record")
)

// StateStore keeps the game session in a single key-value slot. Records that
// fail validation are deleted on load instead of being repaired.
type StateStore struct {
	kv  ports.KeyValueStore
	key string
	log zerolog.Logger
}

var _ ports.SessionStore = (*StateStore)(nil)

func NewStateStore(kv ports.KeyValueStore, logger zerolog.Logger) *StateStore {
	return &StateStore{kv: kv, key: StateKey, log: logger}
}

func (s *StateStore) Save(ctx context.Context, state domain.SessionState) {
	data, err := EncodeState(state)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode game state")
		return
	}

	if err := s.kv.Put(ctx, s.key, string(data)); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("failed to save game state")
	}
}

func (s *StateStore) Load(ctx context.Context) (*domain.SessionState, bool) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.log.Warn().Err(err).Str("key", s.key).Msg("failed to read game state")
		}
		return nil, false
	}

	state, err := DecodeState([]byte(raw))
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("discarding stored game state")
		if deleteErr := s.kv.Delete(ctx, s.key); deleteErr != nil {
			s.log.Warn().Err(deleteErr).Str("key", s.key).Msg("failed to discard game state")
		}
		return nil, false
	}

	return &state, true
}

// Inspect decodes the stored record without discarding it.
func (s *StateStore) Inspect(ctx context.Context) (domain.SessionState, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("read game state: %w", err)
	}

	return DecodeState([]byte(raw))
}

func (s *StateStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear game state: %w", err)
	}

	return nil
}

type stateRecord struct {
	Version     int                `json:"version"`
	Screen      domain.Screen      `json:"screen"`
	Mode        domain.Mode        `json:"mode"`
	Board       []squareRecord     `json:"board"`
	WinningLine *winningLineRecord `json:"winningLine"`
}

type squareRecord struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	IsMarked    bool   `json:"isMarked"`
	IsFreeSpace bool   `json:"isFreeSpace"`
}

type winningLineRecord struct {
	Type    domain.LineType `json:"type"`
	Index   int             `json:"index"`
	Squares []int           `json:"squares"`
}

// Incoming records use pointers so a missing field can be told apart from
// its zero value.
type incomingStateRecord struct {
	Version     *int               `json:"version"`
	Screen      *string            `json:"screen"`
	Mode        *string            `json:"mode"`
	Board       *[]*incomingSquare `json:"board"`
	WinningLine json.RawMessage    `json:"winningLine"`
}

type incomingSquare struct {
	ID          *int    `json:"id"`
	Text        *string `json:"text"`
	IsMarked    *bool   `json:"isMarked"`
	IsFreeSpace *bool   `json:"isFreeSpace"`
}

type incomingWinningLine struct {
	Type    *string `json:"type"`
	Index   *int    `json:"index"`
	Squares *[]int  `json:"squares"`
}

// EncodeState renders a session as the persisted JSON record tagged with the
// current schema version.
func EncodeState(state domain.SessionState) ([]byte, error) {
	record := stateRecord{
		Version: CurrentSchemaVersion,
		Screen:  state.Screen,
		Mode:    state.Mode,
		Board:   make([]squareRecord, 0, len(state.Board)),
	}
	for _, square := range state.Board {
		record.Board = append(record.Board, squareRecord(square))
	}
	if state.WinningLine != nil {
		squares := state.WinningLine.Squares
		if squares == nil {
			squares = []int{}
		}
		record.WinningLine = &winningLineRecord{
			Type:    state.WinningLine.Type,
			Index:   state.WinningLine.Index,
			Squares: squares,
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode game state: %w", err)
	}

	return data, nil
}

// DecodeState parses and validates a persisted record. Only the current
// schema version is accepted; older and newer records are rejected.
func DecodeState(data []byte) (domain.SessionState, error) {
	var record incomingStateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.SessionState{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if record.Version == nil {
		return domain.SessionState{}, fmt.Errorf("%w: missing version", ErrSchemaVersion)
	}
	if *record.Version != CurrentSchemaVersion {
		return domain.SessionState{}, fmt.Errorf("%w %d (current %d)", ErrSchemaVersion, *record.Version, CurrentSchemaVersion)
	}

	if record.Screen == nil || !domain.Screen(*record.Screen).Valid() {
		return domain.SessionState{}, fmt.Errorf("%w: bad screen", ErrInvalidRecord)
	}
	if record.Mode == nil || !domain.Mode(*record.Mode).Valid() {
		return domain.SessionState{}, fmt.Errorf("%w: bad mode", ErrInvalidRecord)
	}

	board, err := decodeBoard(record.Board)
	if err != nil {
		return domain.SessionState{}, err
	}

	line, err := decodeWinningLine(record.WinningLine)
	if err != nil {
		return domain.SessionState{}, err
	}

	state := domain.SessionState{
		Screen:      domain.Screen(*record.Screen),
		Mode:        domain.Mode(*record.Mode),
		Board:       board,
		WinningLine: line,
	}
	if err := state.Validate(); err != nil {
		return domain.SessionState{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return state, nil
}

func decodeBoard(raw *[]*incomingSquare) ([]domain.Square, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: missing board", ErrInvalidRecord)
	}

	squares := *raw
	switch len(squares) {
	case 0:
		return nil, nil
	case domain.ItemsPerDraw, domain.BoardSize:
	default:
		return nil, fmt.Errorf("%w: board length %d", ErrInvalidRecord, len(squares))
	}

	board := make([]domain.Square, 0, len(squares))
	for i, square := range squares {
		if square == nil || square.ID == nil || square.Text == nil || square.IsMarked == nil || square.IsFreeSpace == nil {
			return nil, fmt.Errorf("%w: square %d is incomplete", ErrInvalidRecord, i)
		}
		board = append(board, domain.Square{
			ID:          *square.ID,
			Text:        *square.Text,
			IsMarked:    *square.IsMarked,
			IsFreeSpace: *square.IsFreeSpace,
		})
	}

	return board, nil
}

func decodeWinningLine(raw json.RawMessage) (*domain.WinningLine, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: missing winning line", ErrInvalidRecord)
	}
	if string(raw) == "null" {
		return nil, nil
	}

	var line incomingWinningLine
	if err := json.Unmarshal(raw, &line); err != nil {
		return nil, fmt.Errorf("%w: winning line: %w", ErrInvalidRecord, err)
	}
	if line.Type == nil || !domain.LineType(*line.Type).Valid() {
		return nil, fmt.Errorf("%w: bad winning line type", ErrInvalidRecord)
	}
	if line.Index == nil || line.Squares == nil {
		return nil, fmt.Errorf("%w: incomplete winning line", ErrInvalidRecord)
	}

	return &domain.WinningLine{
		Type:    domain.LineType(*line.Type),
		Index:   *line.Index,
		Squares: *line.Squares,
	}, nil
}
