package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/clock"
	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/storage"
)

const (
	leaderboardFile = "leaderboard.json"
	backupFile      = "leaderboard_backup.json"
	tempSuffix      = ".tmp"
)

var errInvalidStructure = errors.New("invalid leaderboard data structure")

// Store is a file-backed leaderboard store. Writes are durable: the
// current primary is copied to a backup, the new content goes to a
// temporary file, and an atomic rename replaces the primary. Readers
// therefore never observe a partially-written file.
//
// The mutex is held across the whole read-insert-write sequence of
// AppendEntry so concurrent appends cannot lose entries.
type Store struct {
	mu     sync.Mutex
	path   string
	backup string
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a file store rooted at dir, initializing an empty valid
// leaderboard file if none exists
func New(dir string, clk clock.Clock, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{
		path:   filepath.Join(dir, leaderboardFile),
		backup: filepath.Join(dir, backupFile),
		clock:  clk,
		logger: logger,
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.write(model.NewLeaderboardData(clk.Now())); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Ensure Store implements the interface
var _ storage.LeaderboardStorage = (*Store)(nil)

// AppendEntry performs the read-modify-write append: load current data
// (self-healing), insert in rank order, truncate to the cap, write back
// durably
func (s *Store) AppendEntry(ctx context.Context, entry model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.readWithRecovery()
	data.Insert(entry)

	if err := s.write(data); err != nil {
		return fmt.Errorf("%w: %w", model.ErrLeaderboardStorage, err)
	}
	return nil
}

// Entries returns a snapshot of all stored entries in rank order
func (s *Store) Entries(ctx context.Context) ([]model.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.readWithRecovery()
	result := make([]model.LeaderboardEntry, len(data.Entries))
	copy(result, data.Entries)
	return result, nil
}

// read loads and validates the primary file. A parse failure or a missing
// top-level entries key is reported as corruption.
func (s *Store) read() (*model.LeaderboardData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	// Entries is a pointer so a file without the key is distinguishable
	// from one with an empty list.
	var probe struct {
		Entries  *[]model.LeaderboardEntry `json:"entries"`
		Metadata model.LeaderboardMetadata `json:"metadata"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if probe.Entries == nil {
		return nil, errInvalidStructure
	}

	return &model.LeaderboardData{
		Entries:  *probe.Entries,
		Metadata: probe.Metadata,
	}, nil
}

// readWithRecovery reads the primary, attempting exactly one backup
// restoration if it is missing or corrupt, and falls back to a fresh empty
// structure if both are unusable
func (s *Store) readWithRecovery() *model.LeaderboardData {
	data, err := s.read()
	if err == nil {
		return data
	}

	s.logger.Warn("leaderboard file unreadable, attempting backup restore",
		slog.String("path", s.path),
		slog.String("error", err.Error()),
	)

	if restoreErr := copyFile(s.backup, s.path); restoreErr == nil {
		if data, err = s.read(); err == nil {
			s.logger.Info("leaderboard restored from backup")
			return data
		}
	}

	s.logger.Warn("backup restore failed, reinitializing leaderboard",
		slog.String("error", err.Error()),
	)

	data = model.NewLeaderboardData(s.clock.Now())
	if writeErr := s.write(data); writeErr != nil {
		s.logger.Error("failed to reinitialize leaderboard file",
			slog.String("error", writeErr.Error()),
		)
	}
	return data
}

// write persists data durably: back up the current primary, write the new
// content to a temporary file, then atomically rename it over the primary
func (s *Store) write(data *model.LeaderboardData) error {
	if _, err := os.Stat(s.path); err == nil {
		if err := copyFile(s.path, s.backup); err != nil {
			return fmt.Errorf("back up leaderboard: %w", err)
		}
	}

	data.Metadata.LastUpdated = s.clock.Now()
	if data.Metadata.Version == "" {
		data.Metadata.Version = model.LeaderboardVersion
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	tmp := s.path + tempSuffix
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace leaderboard file: %w", err)
	}

	return nil
}

// copyFile copies src to dst, fsyncing the destination
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
