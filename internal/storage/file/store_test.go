package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/mocks"
	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/testutil"
)

type StoreSuite struct {
	suite.Suite
	dir   string
	clock *mocks.MockClock
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	store, err := New(s.dir, s.clock, testutil.NopLogger())
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *StoreSuite) entry(username string, score int) model.LeaderboardEntry {
	return model.LeaderboardEntry{
		Username:       username,
		Word:           "cat",
		Score:          score,
		Attempts:       1,
		CompletionTime: 25,
		Timestamp:      s.clock.Now(),
		WordLength:     3,
	}
}

func (s *StoreSuite) primaryPath() string {
	return filepath.Join(s.dir, "leaderboard.json")
}

func (s *StoreSuite) backupPath() string {
	return filepath.Join(s.dir, "leaderboard_backup.json")
}

func (s *StoreSuite) TestNewInitializesEmptyValidFile() {
	raw, err := os.ReadFile(s.primaryPath())
	s.Require().NoError(err)

	var data model.LeaderboardData
	s.Require().NoError(json.Unmarshal(raw, &data))
	s.NotNil(data.Entries)
	s.Empty(data.Entries)
	s.Equal(model.LeaderboardVersion, data.Metadata.Version)
}

func (s *StoreSuite) TestNewKeepsExistingFile() {
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))

	// Reopening the same directory must not clobber existing data
	reopened, err := New(s.dir, s.clock, testutil.NopLogger())
	s.Require().NoError(err)

	entries, err := reopened.Entries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *StoreSuite) TestAppendAndReload() {
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("bob", 900)))

	entries, err := s.store.Entries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	// Stored in rank order
	s.Equal("bob", entries[0].Username)
	s.Equal("alice", entries[1].Username)
}

func (s *StoreSuite) TestAppendWritesBackup() {
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("bob", 900)))

	// The backup holds the state prior to the latest write
	raw, err := os.ReadFile(s.backupPath())
	s.Require().NoError(err)

	var data model.LeaderboardData
	s.Require().NoError(json.Unmarshal(raw, &data))
	s.Len(data.Entries, 1)
	s.Equal("alice", data.Entries[0].Username)
}

func (s *StoreSuite) TestAppendUpdatesMetadata() {
	s.clock.Advance(time.Hour)
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))

	raw, err := os.ReadFile(s.primaryPath())
	s.Require().NoError(err)

	var data model.LeaderboardData
	s.Require().NoError(json.Unmarshal(raw, &data))
	s.Equal(s.clock.Now(), data.Metadata.LastUpdated.UTC())
}

func (s *StoreSuite) TestCorruptPrimaryRestoredFromBackup() {
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("bob", 900)))

	// Corrupt the primary; the backup still holds alice
	s.Require().NoError(os.WriteFile(s.primaryPath(), []byte("{garbage"), 0o644))

	entries, err := s.store.Entries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("alice", entries[0].Username)
}

func (s *StoreSuite) TestMissingEntriesKeyTreatedAsCorruption() {
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("bob", 900)))

	// Valid JSON but structurally wrong
	s.Require().NoError(os.WriteFile(s.primaryPath(), []byte(`{"metadata":{}}`), 0o644))

	entries, err := s.store.Entries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("alice", entries[0].Username)
}

func (s *StoreSuite) TestBothFilesCorruptReinitializesEmpty() {
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))
	s.Require().NoError(os.WriteFile(s.primaryPath(), []byte("{garbage"), 0o644))
	s.Require().NoError(os.WriteFile(s.backupPath(), []byte("also garbage"), 0o644))

	entries, err := s.store.Entries(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)

	// The reinitialized file is valid again
	raw, err := os.ReadFile(s.primaryPath())
	s.Require().NoError(err)
	var data model.LeaderboardData
	s.Require().NoError(json.Unmarshal(raw, &data))
	s.Empty(data.Entries)
}

func (s *StoreSuite) TestLeftoverTempFileIgnored() {
	// A crash between temp write and rename leaves a stray temp file; the
	// primary stays valid and subsequent appends succeed
	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("alice", 500)))
	s.Require().NoError(os.WriteFile(s.primaryPath()+".tmp", []byte("partial"), 0o644))

	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("bob", 900)))

	entries, err := s.store.Entries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *StoreSuite) TestCapEnforcedOnDisk() {
	data := model.NewLeaderboardData(s.clock.Now())
	for i := 0; i < model.MaxLeaderboardEntries; i++ {
		data.Entries = append(data.Entries, s.entry("user_bulk", 200+i))
	}
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(s.primaryPath(), raw, 0o644))

	s.Require().NoError(s.store.AppendEntry(s.ctx, s.entry("champion", 999999)))

	entries, err := s.store.Entries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, model.MaxLeaderboardEntries)
	s.Equal("champion", entries[0].Username)
	// The lowest-ranked entry (score 200) was evicted
	s.Equal(201, entries[len(entries)-1].Score)
}
