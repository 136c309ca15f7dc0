package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/storage"
)

// maxTxRetries bounds optimistic-locking retries on contended sessions
const maxTxRetries = 5

var errTxRetriesExceeded = errors.New("session update retries exceeded")

// SessionStorage is a Redis-backed implementation of the session storage
// interface. Sessions carry a TTL so abandoned games are evicted.
type SessionStorage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis session storage instance
func New(cfg Config) (*SessionStorage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &SessionStorage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis session storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *SessionStorage {
	return &SessionStorage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *SessionStorage) Close() error {
	return s.client.Close()
}

// Ensure SessionStorage implements the interface
var _ storage.SessionStorage = (*SessionStorage)(nil)

func (s *SessionStorage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL).Err()
}

func (s *SessionStorage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession applies fn under an optimistic WATCH transaction so
// concurrent mutations of the same session cannot interleave
func (s *SessionStorage) UpdateSession(ctx context.Context, id model.SessionID, fn func(*model.GameSession) error) (*model.GameSession, error) {
	key := sessionKey(id)
	var updated *model.GameSession

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrSessionNotFound
			}
			return err
		}

		var session model.GameSession
		if err := json.Unmarshal(data, &session); err != nil {
			return err
		}

		if err := fn(&session); err != nil {
			return err
		}

		raw, err := json.Marshal(&session)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.cfg.SessionTTL)
			return nil
		})
		if err == nil {
			updated = &session
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue // Another writer won, retry
		}
		return nil, err
	}

	return nil, errTxRetriesExceeded
}

func (s *SessionStorage) DeleteSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
