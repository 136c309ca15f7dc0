package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// GameMode distinguishes real games from demo games. Demo sessions are
// reported back to the caller but never persisted, so they can never
// submit scores.
type GameMode string

const (
	ModePlaying GameMode = "playing"
	ModeDemo    GameMode = "demo"
)

// GameSession is one in-progress or completed game tied to a single target
// word. Attempts only ever increase; Completed latches true and never
// reverts.
type GameSession struct {
	ID        SessionID `json:"id"`
	Word      string    `json:"word"` // canonical lowercase, copied from the catalog
	Attempts  int       `json:"attempts"`
	HintsUsed int       `json:"hints_used"`
	Completed bool      `json:"completed"`
	StartedAt time.Time `json:"started_at"`
	Mode      GameMode  `json:"mode"`
}

// FeedbackMark classifies one letter of a spelling guess
type FeedbackMark string

const (
	MarkHit     FeedbackMark = "hit"     // right letter, right position
	MarkPresent FeedbackMark = "present" // right letter, wrong position
	MarkMiss    FeedbackMark = "miss"    // letter not in the remaining pool
)

// CompletionData is the scoring view of a session. CompletionTime is
// derived from the clock at read time, so the score is not frozen at
// completion.
type CompletionData struct {
	Word           string
	Attempts       int
	HintsUsed      int
	CompletionTime float64 // seconds
	WordLength     int
	Score          int
}
