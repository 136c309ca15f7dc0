package leaderboard

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/clock"
	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/storage"
)

// Satisfaction-rate bounds and weights
const (
	satisfactionFloor   = 85
	satisfactionCeiling = 95
	satisfactionDefault = 95
	highScoreThreshold  = 80
	lowAttemptsMax      = 5
)

// Service answers leaderboard queries and aggregates on top of the
// durable store. Read paths are always-available: storage failures are
// logged and surface as empty or zeroed results, never as errors.
type Service struct {
	storage storage.LeaderboardStorage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new leaderboard service
func New(store storage.LeaderboardStorage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Query selects, orders and pages leaderboard entries
type Query struct {
	Limit      int
	Offset     int
	TimeFilter model.TimeFilter
	SortBy     model.SortBy
	SortOrder  model.SortOrder
}

// CompletionStats is the derived community-satisfaction metric
type CompletionStats struct {
	SatisfactionRate int     `json:"satisfaction_rate"`
	TotalEntries     int     `json:"total_entries"`
	HighScoreRate    float64 `json:"high_score_rate"`
}

// Submit validates and appends a leaderboard entry. Validation failures
// are returned as errors before any mutation; a storage failure is logged
// and reported as false, meaning the entry was not recorded.
func (s *Service) Submit(ctx context.Context, entry model.LeaderboardEntry) (bool, error) {
	entry.Username = model.NormalizeUsername(entry.Username)
	if err := model.ValidateUsername(entry.Username); err != nil {
		return false, err
	}
	if entry.CompletionTime <= 0 {
		return false, model.ErrInvalidCompletionTime
	}

	if err := s.storage.AppendEntry(ctx, entry); err != nil {
		s.logger.Error("failed to append leaderboard entry",
			slog.String("username", entry.Username),
			slog.String("error", err.Error()),
		)
		return false, nil
	}

	s.logger.Info("leaderboard entry recorded",
		slog.String("username", entry.Username),
		slog.String("word", entry.Word),
		slog.Int("score", entry.Score),
	)
	return true, nil
}

// Entries runs the query pipeline: filter by time, then sort, then
// paginate. Sorting happens before pagination so page boundaries are
// stable regardless of insertion order.
func (s *Service) Entries(ctx context.Context, q Query) []model.LeaderboardEntry {
	entries := s.snapshot(ctx)
	entries = s.filterByTime(entries, q.TimeFilter)
	sortEntries(entries, q.SortBy, q.SortOrder)
	return paginate(entries, q.Offset, q.Limit)
}

// UserStats aggregates a user's entries. A user with no entries gets the
// zero aggregate, not an error.
func (s *Service) UserStats(ctx context.Context, username string) model.UserStats {
	username = model.NormalizeUsername(username)
	stats := model.UserStats{Username: username}

	var totalScore, totalAttempts int
	var totalTime float64
	for _, e := range s.snapshot(ctx) {
		if e.Username != username {
			continue
		}
		stats.TotalGames++
		totalScore += e.Score
		totalAttempts += e.Attempts
		totalTime += e.CompletionTime
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
	}

	if stats.TotalGames > 0 {
		n := float64(stats.TotalGames)
		stats.AverageScore = round1(float64(totalScore) / n)
		stats.AverageAttempts = round1(float64(totalAttempts) / n)
		stats.AverageTime = round1(totalTime / n)
		stats.TotalWordsCompleted = stats.TotalGames
	}
	return stats
}

// UserRank returns the dense rank of a score value: the count of entries
// with a strictly greater score, plus one. The username identifies the
// caller only; ties all share the same rank number.
func (s *Service) UserRank(ctx context.Context, username string, score int) int {
	rank := 1
	for _, e := range s.snapshot(ctx) {
		if e.Score > score {
			rank++
		}
	}
	return rank
}

// TotalEntries counts entries passing the time filter
func (s *Service) TotalEntries(ctx context.Context, filter model.TimeFilter) int {
	return len(s.filterByTime(s.snapshot(ctx), filter))
}

// UniqueUsers counts distinct usernames across all entries
func (s *Service) UniqueUsers(ctx context.Context) int {
	users := make(map[string]struct{})
	for _, e := range s.snapshot(ctx) {
		users[e.Username] = struct{}{}
	}
	return len(users)
}

// TotalGames counts all stored entries
func (s *Service) TotalGames(ctx context.Context) int {
	return len(s.snapshot(ctx))
}

// CompletionStats derives the community satisfaction rate from the share
// of high-scoring and low-attempt games, clamped to [85,95]. An empty
// leaderboard reports the default of 95.
func (s *Service) CompletionStats(ctx context.Context) CompletionStats {
	entries := s.snapshot(ctx)
	if len(entries) == 0 {
		return CompletionStats{SatisfactionRate: satisfactionDefault}
	}

	highScore := 0
	lowAttempts := 0
	for _, e := range entries {
		if e.Score >= highScoreThreshold {
			highScore++
		}
		if e.Attempts <= lowAttemptsMax {
			lowAttempts++
		}
	}

	total := float64(len(entries))
	rate := float64(highScore)/total*50 + float64(lowAttempts)/total*45 + 5
	rate = math.Min(satisfactionCeiling, math.Max(satisfactionFloor, rate))

	return CompletionStats{
		SatisfactionRate: int(math.Round(rate)),
		TotalEntries:     len(entries),
		HighScoreRate:    round1(float64(highScore) / total * 100),
	}
}

// snapshot reads all entries, degrading to empty on storage failure
func (s *Service) snapshot(ctx context.Context) []model.LeaderboardEntry {
	entries, err := s.storage.Entries(ctx)
	if err != nil {
		s.logger.Error("failed to read leaderboard",
			slog.String("error", err.Error()),
		)
		return nil
	}
	return entries
}

func (s *Service) filterByTime(entries []model.LeaderboardEntry, filter model.TimeFilter) []model.LeaderboardEntry {
	cutoff, bounded := filter.Cutoff(s.clock.Now())
	if !bounded {
		return entries
	}

	filtered := make([]model.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// sortEntries orders entries in place. An unrecognized sort key silently
// falls back to score descending.
func sortEntries(entries []model.LeaderboardEntry, sortBy model.SortBy, order model.SortOrder) {
	asc := order == model.SortAsc

	var less func(a, b model.LeaderboardEntry) bool
	switch sortBy {
	case model.SortByScore:
		less = func(a, b model.LeaderboardEntry) bool { return a.Score < b.Score }
	case model.SortByAttempts:
		less = func(a, b model.LeaderboardEntry) bool { return a.Attempts < b.Attempts }
	case model.SortByCompletionTime:
		less = func(a, b model.LeaderboardEntry) bool { return a.CompletionTime < b.CompletionTime }
	case model.SortByTimestamp:
		less = func(a, b model.LeaderboardEntry) bool { return a.Timestamp.Before(b.Timestamp) }
	default:
		less = func(a, b model.LeaderboardEntry) bool { return a.Score < b.Score }
		asc = false
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if asc {
			return less(entries[i], entries[j])
		}
		return less(entries[j], entries[i])
	})
}

func paginate(entries []model.LeaderboardEntry, offset, limit int) []model.LeaderboardEntry {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(entries) {
		return []model.LeaderboardEntry{}
	}
	end := len(entries)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return entries[offset:end]
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
