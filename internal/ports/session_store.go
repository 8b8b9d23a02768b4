package ports

import (
	"context"

	"github.com/bnema/icebreaker-bingo/internal/domain"
)

// SessionStore persists whole game sessions. Load reports false when there is
// no usable record; Save never fails from the caller's point of view.
type SessionStore interface {
	Load(ctx context.Context) (*domain.SessionState, bool)
	Save(ctx context.Context, state domain.SessionState)
}
