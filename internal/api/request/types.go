package request

// StartGameRequest starts a new game session
type StartGameRequest struct {
	Mode       string `json:"mode,omitempty"`       // "playing" (default) or "demo"
	Difficulty string `json:"difficulty,omitempty"` // easy, medium, hard
}

// GuessLengthRequest checks a word-length guess
type GuessLengthRequest struct {
	SessionID     string `json:"session_id"`
	GuessedLength int    `json:"guessed_length"`
}

// SubmitSpellingRequest submits a spelling guess
type SubmitSpellingRequest struct {
	SessionID string `json:"session_id"`
	Guess     string `json:"guess"`
}

// UseHintRequest records a hint being taken
type UseHintRequest struct {
	SessionID string `json:"session_id"`
}

// RevealAnswerRequest gives up and reveals the word
type RevealAnswerRequest struct {
	SessionID string `json:"session_id"`
}

// SubmitScoreRequest submits a completed game to the leaderboard.
// Username may be omitted when the request is authenticated as a
// registered player.
type SubmitScoreRequest struct {
	Username       string  `json:"username,omitempty"`
	SessionID      string  `json:"session_id"`
	CompletionTime float64 `json:"completion_time"` // seconds
}

// CreateGuestRequest creates an anonymous player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest creates a registered player account
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest authenticates a registered player
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
