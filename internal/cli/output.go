package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case GameStart:
		o.printGameStart(v)
	case LengthGuess:
		o.printLengthGuess(v)
	case SpellingGuess:
		o.printSpellingGuess(v)
	case HintResult:
		o.printHintResult(v)
	case RevealResult:
		o.printRevealResult(v)
	case GameStats:
		o.printGameStats(v)
	case SubmitScoreResult:
		o.printSubmitScoreResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case UserStats:
		o.printUserStats(v)
	case AppStats:
		o.printAppStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Token     string    `json:"token"`
	Player    Player    `json:"player"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GameStart response type
type GameStart struct {
	SessionID     string   `json:"session_id"`
	Word          string   `json:"word"`
	Description   string   `json:"description"`
	Hints         []string `json:"hints"`
	LengthOptions []int    `json:"length_options"`
	Mode          string   `json:"mode"`
}

// LengthGuess response type
type LengthGuess struct {
	IsCorrect    bool     `json:"is_correct"`
	WordLength   *int     `json:"word_length"`
	Placeholders []string `json:"placeholders"`
	Message      string   `json:"message"`
}

// SpellingGuess response type
type SpellingGuess struct {
	Feedback        []string `json:"feedback"`
	IsCorrect       bool     `json:"is_correct"`
	CorrectWord     *string  `json:"correct_word"`
	ExampleSentence *string  `json:"example_sentence"`
	WordLength      int      `json:"word_length"`
	Attempts        int      `json:"attempts"`
	Message         string   `json:"message"`
}

// HintResult response type
type HintResult struct {
	Success   bool `json:"success"`
	HintsUsed int  `json:"hints_used"`
}

// RevealResult response type
type RevealResult struct {
	CorrectWord     string `json:"correct_word"`
	ExampleSentence string `json:"example_sentence"`
	Message         string `json:"message"`
}

// GameStats response type
type GameStats struct {
	Attempts  int     `json:"attempts"`
	Completed bool    `json:"completed"`
	Word      *string `json:"word"`
}

// SubmitScoreResult response type
type SubmitScoreResult struct {
	Success bool   `json:"success"`
	Score   int    `json:"score"`
	Rank    int    `json:"rank"`
	Message string `json:"message"`
}

// LeaderboardEntry response type
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

// Leaderboard response type
type Leaderboard struct {
	Entries       []LeaderboardEntry `json:"entries"`
	TotalEntries  int                `json:"total_entries"`
	UserRank      *int               `json:"user_rank"`
	UserBestScore *int               `json:"user_best_score"`
}

// UserStats response type
type UserStats struct {
	Username            string  `json:"username"`
	TotalGames          int     `json:"total_games"`
	BestScore           int     `json:"best_score"`
	AverageScore        float64 `json:"average_score"`
	TotalWordsCompleted int     `json:"total_words_completed"`
	AverageAttempts     float64 `json:"average_attempts"`
	AverageTime         float64 `json:"average_completion_time"`
}

// AppStats response type
type AppStats struct {
	ActiveLearners   int `json:"active_learners"`
	WordsAvailable   int `json:"words_available"`
	TotalGamesPlayed int `json:"total_games_played"`
	CommunityLove    int `json:"community_love"`
	OpenSource       int `json:"open_source"`
}

// HealthResult response type
type HealthResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	if p.Username != "" {
		fmt.Printf("Username: %s\n", p.Username)
	}
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.Token)
	fmt.Printf("Expires: %s\n", a.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printGameStart(g GameStart) {
	fmt.Printf("Session: %s\n", g.SessionID)
	fmt.Printf("Description: %s\n", g.Description)
	if len(g.Hints) > 0 {
		fmt.Println("Hints:")
		for i, h := range g.Hints {
			fmt.Printf("  %d. %s\n", i+1, h)
		}
	}
	lengths := make([]string, len(g.LengthOptions))
	for i, l := range g.LengthOptions {
		lengths[i] = fmt.Sprintf("%d", l)
	}
	fmt.Printf("How long is the word? Options: %s\n", strings.Join(lengths, ", "))
}

func (o *Output) printLengthGuess(l LengthGuess) {
	fmt.Println(l.Message)
	if l.IsCorrect && len(l.Placeholders) > 0 {
		fmt.Printf("Word: %s\n", strings.Join(l.Placeholders, " "))
	}
}

func (o *Output) printSpellingGuess(s SpellingGuess) {
	if len(s.Feedback) > 0 {
		fmt.Printf("Feedback: %s\n", strings.Join(s.Feedback, " "))
	}
	fmt.Println(s.Message)
	if s.IsCorrect && s.ExampleSentence != nil {
		fmt.Printf("Example: %s\n", *s.ExampleSentence)
	}
}

func (o *Output) printHintResult(h HintResult) {
	fmt.Printf("Hints used: %d\n", h.HintsUsed)
}

func (o *Output) printRevealResult(r RevealResult) {
	fmt.Println(r.Message)
	fmt.Printf("Example: %s\n", r.ExampleSentence)
}

func (o *Output) printGameStats(g GameStats) {
	fmt.Printf("Attempts: %d\n", g.Attempts)
	completedStr := "no"
	if g.Completed {
		completedStr = "yes"
	}
	fmt.Printf("Completed: %s\n", completedStr)
	if g.Word != nil {
		fmt.Printf("Word: %s\n", *g.Word)
	}
}

func (o *Output) printSubmitScoreResult(s SubmitScoreResult) {
	fmt.Println(s.Message)
	fmt.Printf("Rank: #%d\n", s.Rank)
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Printf("Leaderboard (%d entries):\n", l.TotalEntries)
	for i, e := range l.Entries {
		fmt.Printf("  %2d. %-20s %5d pts  %s (%d letters, %d attempts, %.1fs)\n",
			i+1, e.Username, e.Score, e.Word, e.WordLength, e.Attempts, e.CompletionTime)
	}
	if l.UserRank != nil {
		fmt.Printf("Your rank: #%d\n", *l.UserRank)
	}
	if l.UserBestScore != nil {
		fmt.Printf("Your best score: %d\n", *l.UserBestScore)
	}
}

func (o *Output) printUserStats(u UserStats) {
	fmt.Printf("User: %s\n", u.Username)
	fmt.Printf("Games: %d\n", u.TotalGames)
	fmt.Printf("Best Score: %d\n", u.BestScore)
	fmt.Printf("Average Score: %.1f\n", u.AverageScore)
	fmt.Printf("Average Attempts: %.1f\n", u.AverageAttempts)
	fmt.Printf("Average Time: %.1fs\n", u.AverageTime)
}

func (o *Output) printAppStats(a AppStats) {
	fmt.Printf("Active Learners: %d\n", a.ActiveLearners)
	fmt.Printf("Words Available: %d\n", a.WordsAvailable)
	fmt.Printf("Games Played: %d\n", a.TotalGamesPlayed)
	fmt.Printf("Community Love: %d%%\n", a.CommunityLove)
	fmt.Printf("Open Source: %d%%\n", a.OpenSource)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	if h.Message != "" {
		fmt.Println(h.Message)
	}
}
