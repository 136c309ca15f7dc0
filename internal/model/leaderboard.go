package model

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// MaxLeaderboardEntries caps the persisted collection. Appends beyond the
// cap evict the lowest-ranked entries.
const MaxLeaderboardEntries = 1000

// LeaderboardVersion is the on-disk schema version. The field is reserved
// so the file stays backward-readable across releases.
const LeaderboardVersion = "1.0"

// LeaderboardEntry is one durable record of a completed, non-demo game.
// Entries are immutable once written.
type LeaderboardEntry struct {
	Username       string    `json:"username"` // lowercase, 3-20 chars, alnum+underscore
	Word           string    `json:"word"`
	Score          int       `json:"score"`
	Attempts       int       `json:"attempts"`
	HintsUsed      int       `json:"hints_used"`
	CompletionTime float64   `json:"completion_time"` // seconds
	Timestamp      time.Time `json:"timestamp"`
	WordLength     int       `json:"word_length"`
}

// LeaderboardMetadata describes the persisted collection
type LeaderboardMetadata struct {
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	Version     string    `json:"version"`
}

// LeaderboardData is the persisted leaderboard structure. The file on disk
// is always a syntactically valid value of this shape.
type LeaderboardData struct {
	Entries  []LeaderboardEntry  `json:"entries"`
	Metadata LeaderboardMetadata `json:"metadata"`
}

// NewLeaderboardData returns an empty valid structure
func NewLeaderboardData(now time.Time) *LeaderboardData {
	return &LeaderboardData{
		Entries: []LeaderboardEntry{},
		Metadata: LeaderboardMetadata{
			CreatedAt:   now,
			LastUpdated: now,
			Version:     LeaderboardVersion,
		},
	}
}

// Insert appends an entry, re-sorts the collection by rank order
// (score descending, completion time ascending) and truncates to the cap
func (d *LeaderboardData) Insert(entry LeaderboardEntry) {
	d.Entries = append(d.Entries, entry)
	sort.SliceStable(d.Entries, func(i, j int) bool {
		if d.Entries[i].Score != d.Entries[j].Score {
			return d.Entries[i].Score > d.Entries[j].Score
		}
		return d.Entries[i].CompletionTime < d.Entries[j].CompletionTime
	})
	if len(d.Entries) > MaxLeaderboardEntries {
		d.Entries = d.Entries[:MaxLeaderboardEntries]
	}
}

// TimeFilter selects entries by age
type TimeFilter string

const (
	FilterAll     TimeFilter = "all"
	FilterDaily   TimeFilter = "daily"
	FilterWeekly  TimeFilter = "weekly"
	FilterMonthly TimeFilter = "monthly"
)

// Cutoff returns the inclusive lower bound for entry timestamps, and
// whether a bound applies at all
func (f TimeFilter) Cutoff(now time.Time) (time.Time, bool) {
	switch f {
	case FilterDaily:
		return now.Add(-24 * time.Hour), true
	case FilterWeekly:
		return now.Add(-7 * 24 * time.Hour), true
	case FilterMonthly:
		return now.Add(-30 * 24 * time.Hour), true
	}
	return time.Time{}, false
}

// IsValid reports whether f is a recognized filter
func (f TimeFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterDaily, FilterWeekly, FilterMonthly:
		return true
	}
	return false
}

// SortBy selects the leaderboard sort key
type SortBy string

const (
	SortByScore          SortBy = "score"
	SortByAttempts       SortBy = "attempts"
	SortByCompletionTime SortBy = "completion_time"
	SortByTimestamp      SortBy = "timestamp"
)

// SortOrder selects ascending or descending order
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// UserStats is the per-user aggregate over leaderboard entries. A user
// with no entries gets the zero aggregate, not an error.
type UserStats struct {
	Username            string  `json:"username"`
	TotalGames          int     `json:"total_games"`
	BestScore           int     `json:"best_score"`
	AverageScore        float64 `json:"average_score"`
	TotalWordsCompleted int     `json:"total_words_completed"`
	AverageAttempts     float64 `json:"average_attempts"`
	AverageTime         float64 `json:"average_completion_time"`
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

// NormalizeUsername case-folds and trims a username for storage and lookup
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername checks the normalized form of a username: 3-20
// characters, alphanumeric plus underscore
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(NormalizeUsername(username)) {
		return ErrInvalidUsername
	}
	return nil
}
