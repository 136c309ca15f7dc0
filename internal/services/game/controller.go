package game

import (
	"context"
	"log/slog"
	"sort"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/clock"
	"github.com/whyvineet/orthoplay-go/internal/dependencies/random"
	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/services/catalog"
	"github.com/whyvineet/orthoplay-go/internal/services/feedback"
	"github.com/whyvineet/orthoplay-go/internal/services/scoring"
	"github.com/whyvineet/orthoplay-go/internal/storage"
)

const sessionIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length-option bounds for the multiple-choice length guess
const (
	lengthOptionCount = 3
	minOptionLength   = 3
	maxOptionLength   = 10
)

// Controller manages the session lifecycle: start, length guesses,
// spelling guesses, hints, reveal, and completion data
type Controller struct {
	sessions storage.SessionStorage
	catalog  *catalog.Service
	feedback *feedback.Service
	scoring  *scoring.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game controller
func NewController(
	sessions storage.SessionStorage,
	catalogService *catalog.Service,
	feedbackService *feedback.Service,
	scoringService *scoring.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		sessions: sessions,
		catalog:  catalogService,
		feedback: feedbackService,
		scoring:  scoringService,
		clock:    clk,
		random:   rnd,
		logger:   logger,
	}
}

// StartResult is returned from StartGame
type StartResult struct {
	Session       model.GameSession
	Record        model.WordRecord
	LengthOptions []int
}

// GuessResult is returned from SubmitSpelling
type GuessResult struct {
	Feedback   []model.FeedbackMark
	Correct    bool
	Attempts   int
	WordLength int
	Record     model.WordRecord
}

// StartGame picks a word (restricted by difficulty if given), allocates a
// fresh session and persists it. Demo sessions are returned but never
// stored, so they cannot submit scores later.
func (c *Controller) StartGame(ctx context.Context, mode model.GameMode, difficulty model.Difficulty) (*StartResult, error) {
	var (
		word string
		err  error
	)
	if difficulty != "" {
		word, err = c.catalog.RandomWordByDifficulty(difficulty)
	} else {
		word, err = c.catalog.RandomWord()
	}
	if err != nil {
		return nil, err
	}

	record, _ := c.catalog.Get(word)

	if mode == "" {
		mode = model.ModePlaying
	}

	session := model.GameSession{
		ID:        model.SessionID("game_" + c.random.String(10, sessionIDAlphabet)),
		Word:      word,
		StartedAt: c.clock.Now(),
		Mode:      mode,
	}

	if mode != model.ModeDemo {
		if err := c.sessions.SaveSession(ctx, &session); err != nil {
			c.logger.Error("failed to save session",
				slog.String("session_id", string(session.ID)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
	}

	c.logger.Info("game started",
		slog.String("session_id", string(session.ID)),
		slog.String("mode", string(mode)),
		slog.Int("word_length", len([]rune(word))),
	)

	return &StartResult{
		Session:       session,
		Record:        record,
		LengthOptions: c.lengthOptions(len([]rune(word))),
	}, nil
}

// lengthOptions builds the multiple-choice options: the true length plus
// two distinct decoys in [3,10], ascending
func (c *Controller) lengthOptions(correct int) []int {
	options := []int{correct}
	seen := map[int]bool{correct: true}

	for tries := 0; len(options) < lengthOptionCount && tries < 100; tries++ {
		option := minOptionLength + c.random.Intn(maxOptionLength-minOptionLength+1)
		if !seen[option] {
			seen[option] = true
			options = append(options, option)
		}
	}

	// Deterministic fill in case the random source is exhausted
	for l := minOptionLength; len(options) < lengthOptionCount && l <= maxOptionLength; l++ {
		if !seen[l] {
			seen[l] = true
			options = append(options, l)
		}
	}

	sort.Ints(options)
	return options
}

// GetSession retrieves a session by id
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	return c.sessions.GetSession(ctx, id)
}

// GuessLength checks a word-length guess. Length guesses are free: they do
// not touch the attempt counter.
func (c *Controller) GuessLength(ctx context.Context, id model.SessionID, guessedLength int) (bool, int, error) {
	session, err := c.sessions.GetSession(ctx, id)
	if err != nil {
		return false, 0, err
	}

	wordLength := len([]rune(session.Word))
	return guessedLength == wordLength, wordLength, nil
}

// SubmitSpelling records a spelling guess. Attempts increment
// unconditionally, even for malformed input; the session completes when
// the normalized guess equals the target.
func (c *Controller) SubmitSpelling(ctx context.Context, id model.SessionID, guess string) (*GuessResult, error) {
	correct := false
	session, err := c.sessions.UpdateSession(ctx, id, func(s *model.GameSession) error {
		s.Attempts++
		if c.feedback.IsCorrect(guess, s.Word) {
			correct = true
			s.Completed = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	record, _ := c.catalog.Get(session.Word)

	return &GuessResult{
		Feedback:   c.feedback.Feedback(guess, session.Word),
		Correct:    correct,
		Attempts:   session.Attempts,
		WordLength: len([]rune(session.Word)),
		Record:     record,
	}, nil
}

// UseHint increments the session's hint counter and returns the new count.
// The counter is deliberately not clamped; scoring charges for every hint
// taken.
func (c *Controller) UseHint(ctx context.Context, id model.SessionID) (int, error) {
	session, err := c.sessions.UpdateSession(ctx, id, func(s *model.GameSession) error {
		s.HintsUsed++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return session.HintsUsed, nil
}

// Reveal gives up on the word, forcing completion. Idempotent: revealing
// twice leaves attempts and the completed flag unchanged.
func (c *Controller) Reveal(ctx context.Context, id model.SessionID) (model.WordRecord, error) {
	session, err := c.sessions.UpdateSession(ctx, id, func(s *model.GameSession) error {
		s.Completed = true
		return nil
	})
	if err != nil {
		return model.WordRecord{}, err
	}

	record, _ := c.catalog.Get(session.Word)
	return record, nil
}

// CompletionData computes the scoring view of a session. Elapsed time is
// measured against the clock at call time, so repeated calls keep the
// clock running rather than freezing the score at completion.
func (c *Controller) CompletionData(ctx context.Context, id model.SessionID) (*model.CompletionData, error) {
	session, err := c.sessions.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	elapsed := c.clock.Now().Sub(session.StartedAt).Seconds()
	wordLength := len([]rune(session.Word))

	return &model.CompletionData{
		Word:           session.Word,
		Attempts:       session.Attempts,
		HintsUsed:      session.HintsUsed,
		CompletionTime: elapsed,
		WordLength:     wordLength,
		Score:          c.scoring.Score(session.Attempts, session.HintsUsed, elapsed, wordLength),
	}, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, mode model.GameMode, difficulty model.Difficulty) (*StartResult, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	GuessLength(ctx context.Context, id model.SessionID, guessedLength int) (bool, int, error)
	SubmitSpelling(ctx context.Context, id model.SessionID, guess string) (*GuessResult, error)
	UseHint(ctx context.Context, id model.SessionID) (int, error)
	Reveal(ctx context.Context, id model.SessionID) (model.WordRecord, error)
	CompletionData(ctx context.Context, id model.SessionID) (*model.CompletionData, error)
}

var _ ControllerInterface = (*Controller)(nil)
