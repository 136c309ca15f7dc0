package storage

import (
	"context"

	"github.com/whyvineet/orthoplay-go/internal/model"
)

// SessionStorage holds active game sessions. Implementations must
// serialize UpdateSession calls for the same session id: the read-mutate-
// write of the callback must not interleave with another mutation of that
// session.
type SessionStorage interface {
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)

	// UpdateSession applies fn to the stored session atomically and
	// persists the result. Returns model.ErrSessionNotFound for unknown ids.
	UpdateSession(ctx context.Context, id model.SessionID, fn func(*model.GameSession) error) (*model.GameSession, error)

	DeleteSession(ctx context.Context, id model.SessionID) error
}

// LeaderboardStorage is the durable store of historical score entries.
// AppendEntry performs the whole read-insert-sort-truncate-write sequence
// atomically with respect to concurrent appends.
type LeaderboardStorage interface {
	AppendEntry(ctx context.Context, entry model.LeaderboardEntry) error

	// Entries returns a consistent snapshot of all stored entries in rank
	// order (score descending, completion time ascending).
	Entries(ctx context.Context) ([]model.LeaderboardEntry, error)
}
