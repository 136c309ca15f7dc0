package factory

import (
	"time"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/mocks"
	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/services/auth"
	"github.com/whyvineet/orthoplay-go/internal/storage/memory"
	"github.com/whyvineet/orthoplay-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	sessions := memory.NewSessionStorage()
	lbStore := memory.NewLeaderboardStorage()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(sessions, lbStore, mockClock, mockRandom, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestCatalog loads a small word catalog for testing
func (t *TestApp) LoadTestCatalog() {
	t.CatalogService.LoadWords([]model.WordRecord{
		{
			Word:        "cat",
			Description: "A small domesticated feline",
			Hints: []string{
				"It purrs",
				"It chases mice",
				"A common household pet",
			},
			ExampleSentence: "The cat slept on the windowsill all afternoon.",
			Difficulty:      model.DifficultyEasy,
		},
		{
			Word:        "apple",
			Description: "A round fruit with red or green skin",
			Hints: []string{
				"It grows on trees",
				"Keeps the doctor away",
				"Often red or green",
			},
			ExampleSentence: "She packed an apple with her lunch.",
			Difficulty:      model.DifficultyEasy,
		},
		{
			Word:        "journey",
			Description: "An act of travelling from one place to another",
			Hints: []string{
				"It has a beginning and an end",
				"Often long",
				"You take one when you travel",
			},
			ExampleSentence: "The journey across the mountains took three days.",
			Difficulty:      model.DifficultyMedium,
		},
		{
			Word:        "labyrinth",
			Description: "A complicated irregular network of passages",
			Hints: []string{
				"Easy to get lost in",
				"Famous in Greek mythology",
				"Another word for maze",
			},
			ExampleSentence: "The old city was a labyrinth of narrow streets.",
			Difficulty:      model.DifficultyHard,
		},
	})
}
