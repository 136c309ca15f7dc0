package feedback

import (
	"strings"

	"github.com/whyvineet/orthoplay-go/internal/model"
)

// Service computes per-letter feedback for spelling guesses. It is pure
// and stateless.
type Service struct{}

// New creates a new FeedbackService
func New() *Service {
	return &Service{}
}

// Feedback classifies each position of guess against target using the
// two-pass algorithm with duplicate-letter accounting: exact matches are
// consumed from the pool of target letters before any present marks are
// awarded, so a letter is never counted twice.
//
// The guess is case-folded and trimmed; the target is assumed canonical
// lowercase. A length mismatch is not an error: it yields all-miss
// feedback of the target's length.
func (s *Service) Feedback(guess, target string) []model.FeedbackMark {
	guessRunes := []rune(strings.ToLower(strings.TrimSpace(guess)))
	targetRunes := []rune(target)

	marks := make([]model.FeedbackMark, len(targetRunes))
	for i := range marks {
		marks[i] = model.MarkMiss
	}

	if len(guessRunes) != len(targetRunes) {
		return marks
	}

	// Pass 1: exact matches, consuming the matched target letters
	remaining := make(map[rune]int, len(targetRunes))
	for i, letter := range guessRunes {
		if letter == targetRunes[i] {
			marks[i] = model.MarkHit
		} else {
			remaining[targetRunes[i]]++
		}
	}

	// Pass 2: wrong-position matches against the remaining pool
	for i, letter := range guessRunes {
		if marks[i] == model.MarkHit {
			continue
		}
		if remaining[letter] > 0 {
			marks[i] = model.MarkPresent
			remaining[letter]--
		}
	}

	return marks
}

// IsCorrect reports whether the normalized guess equals the target
func (s *Service) IsCorrect(guess, target string) bool {
	return strings.ToLower(strings.TrimSpace(guess)) == target
}
