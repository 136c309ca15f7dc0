package memory

import (
	"context"
	"sync"
	"time"

	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/storage"
)

// SessionStorage is an in-memory implementation of the session storage
// interface. The mutex is held across UpdateSession callbacks, which
// serializes concurrent mutations of the same session.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]*model.GameSession
}

// NewSessionStorage creates a new in-memory session store
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[model.SessionID]*model.GameSession),
	}
}

// Ensure SessionStorage implements the interface
var _ storage.SessionStorage = (*SessionStorage)(nil)

func (s *SessionStorage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *SessionStorage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *SessionStorage) UpdateSession(ctx context.Context, id model.SessionID, fn func(*model.GameSession) error) (*model.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	copied := *session
	return &copied, nil
}

func (s *SessionStorage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// LeaderboardStorage is an in-memory implementation of the leaderboard
// storage interface. Used in tests and as the degraded fallback when no
// data directory is available.
type LeaderboardStorage struct {
	mu   sync.Mutex
	data *model.LeaderboardData
}

// NewLeaderboardStorage creates a new in-memory leaderboard store
func NewLeaderboardStorage() *LeaderboardStorage {
	return &LeaderboardStorage{
		data: model.NewLeaderboardData(time.Now()),
	}
}

// Ensure LeaderboardStorage implements the interface
var _ storage.LeaderboardStorage = (*LeaderboardStorage)(nil)

func (s *LeaderboardStorage) AppendEntry(ctx context.Context, entry model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Insert(entry)
	s.data.Metadata.LastUpdated = entry.Timestamp
	return nil
}

func (s *LeaderboardStorage) Entries(ctx context.Context) ([]model.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.LeaderboardEntry, len(s.data.Entries))
	copy(result, s.data.Entries)
	return result, nil
}
