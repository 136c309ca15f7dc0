package response

import (
	"time"

	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/services/auth"
)

// StartGameResponse is returned from POST /game/start
type StartGameResponse struct {
	SessionID     string   `json:"session_id"`
	Word          string   `json:"word"`
	Description   string   `json:"description"`
	Hints         []string `json:"hints"`
	LengthOptions []int    `json:"length_options"`
	Mode          string   `json:"mode"`
}

// GuessLengthResponse is returned from POST /game/guess-length. WordLength
// and Placeholders are only present on a correct guess.
type GuessLengthResponse struct {
	IsCorrect    bool     `json:"is_correct"`
	WordLength   *int     `json:"word_length,omitempty"`
	Placeholders []string `json:"placeholders,omitempty"`
	Message      string   `json:"message"`
}

// SubmitSpellingResponse is returned from POST /game/submit-spelling.
// CorrectWord and ExampleSentence are only present once solved.
type SubmitSpellingResponse struct {
	Feedback        []model.FeedbackMark `json:"feedback"`
	IsCorrect       bool                 `json:"is_correct"`
	CorrectWord     *string              `json:"correct_word,omitempty"`
	ExampleSentence *string              `json:"example_sentence,omitempty"`
	WordLength      int                  `json:"word_length"`
	Attempts        int                  `json:"attempts"`
	Message         string               `json:"message"`
}

// UseHintResponse is returned from POST /game/use-hint
type UseHintResponse struct {
	Success   bool `json:"success"`
	HintsUsed int  `json:"hints_used"`
}

// RevealAnswerResponse is returned from POST /game/reveal-answer
type RevealAnswerResponse struct {
	CorrectWord     string `json:"correct_word"`
	ExampleSentence string `json:"example_sentence"`
	Message         string `json:"message"`
}

// GameStatsResponse is returned from GET /game/stats/{session_id}. The
// word is only disclosed once the session is completed.
type GameStatsResponse struct {
	Attempts  int     `json:"attempts"`
	Completed bool    `json:"completed"`
	Word      *string `json:"word,omitempty"`
}

// SubmitScoreResponse is returned from POST /leaderboard/submit
type SubmitScoreResponse struct {
	Success bool   `json:"success"`
	Score   int    `json:"score"`
	Rank    int    `json:"rank"`
	Message string `json:"message"`
}

// LeaderboardEntry is the wire form of one leaderboard record
type LeaderboardEntry struct {
	Username       string    `json:"username"`
	Word           string    `json:"word"`
	Score          int       `json:"score"`
	Attempts       int       `json:"attempts"`
	HintsUsed      int       `json:"hints_used"`
	CompletionTime float64   `json:"completion_time"`
	Timestamp      time.Time `json:"timestamp"`
	WordLength     int       `json:"word_length"`
}

// LeaderboardEntryFromModel converts a model entry to its wire form
func LeaderboardEntryFromModel(e model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		Username:       e.Username,
		Word:           e.Word,
		Score:          e.Score,
		Attempts:       e.Attempts,
		HintsUsed:      e.HintsUsed,
		CompletionTime: e.CompletionTime,
		Timestamp:      e.Timestamp,
		WordLength:     e.WordLength,
	}
}

// LeaderboardResponse is returned from GET /leaderboard. UserRank and
// UserBestScore are only present when a username was supplied and has
// entries.
type LeaderboardResponse struct {
	Entries       []LeaderboardEntry `json:"entries"`
	TotalEntries  int                `json:"total_entries"`
	UserRank      *int               `json:"user_rank,omitempty"`
	UserBestScore *int               `json:"user_best_score,omitempty"`
}

// UserStatsResponse is returned from GET /leaderboard/user/{username}
type UserStatsResponse struct {
	Username            string  `json:"username"`
	TotalGames          int     `json:"total_games"`
	BestScore           int     `json:"best_score"`
	AverageScore        float64 `json:"average_score"`
	TotalWordsCompleted int     `json:"total_words_completed"`
	AverageAttempts     float64 `json:"average_attempts"`
	AverageTime         float64 `json:"average_completion_time"`
}

// UserStatsFromModel converts a model aggregate to its wire form
func UserStatsFromModel(s model.UserStats) UserStatsResponse {
	return UserStatsResponse{
		Username:            s.Username,
		TotalGames:          s.TotalGames,
		BestScore:           s.BestScore,
		AverageScore:        s.AverageScore,
		TotalWordsCompleted: s.TotalWordsCompleted,
		AverageAttempts:     s.AverageAttempts,
		AverageTime:         s.AverageTime,
	}
}

// AppStatsResponse is returned from GET /app/stats
type AppStatsResponse struct {
	ActiveLearners   int `json:"active_learners"`
	WordsAvailable   int `json:"words_available"`
	TotalGamesPlayed int `json:"total_games_played"`
	CommunityLove    int `json:"community_love"`
	OpenSource       int `json:"open_source"`
}

// PlayerResponse is the wire form of an authenticated principal
type PlayerResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// SessionResponse is returned from the auth endpoints
type SessionResponse struct {
	Token     string         `json:"token"`
	Player    PlayerResponse `json:"player"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SessionFromAuth converts an auth session to its wire form
func SessionFromAuth(s *auth.Session) SessionResponse {
	return SessionResponse{
		Token: s.Token,
		Player: PlayerResponse{
			ID:          string(s.Player.ID),
			Username:    s.Player.Username,
			DisplayName: s.Player.DisplayName,
			IsGuest:     s.Player.IsGuest,
		},
		ExpiresAt: s.ExpiresAt,
	}
}
