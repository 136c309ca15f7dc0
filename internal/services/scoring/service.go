package scoring

import "math"

// Scoring constants
const (
	baseScore       = 1000
	lengthBonusStep = 50  // per letter beyond the 3-letter minimum
	attemptPenalty  = 50  // per attempt after the first
	hintPenalty     = 100 // per hint used
	timeBonusCutoff = 60  // seconds; no bonus for slower completions
	timeBonusPerSec = 10
	minimumScore    = 100
)

// Service computes game scores. It is pure and deterministic.
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Score computes the score for a completed game. The first attempt is
// free, finishing inside 60 seconds earns a time bonus, and the result is
// floored at 100. There is no upper cap: longer words and faster times
// grow the score without bound.
func (s *Service) Score(attempts, hintsUsed int, completionTime float64, wordLength int) int {
	lengthBonus := (wordLength - 3) * lengthBonusStep

	penalty := 0
	if attempts > 1 {
		penalty = (attempts - 1) * attemptPenalty
	}

	timeBonus := 0
	if completionTime <= timeBonusCutoff {
		timeBonus = int(math.Floor((timeBonusCutoff - completionTime) * timeBonusPerSec))
	}

	raw := baseScore + lengthBonus + timeBonus - penalty - hintsUsed*hintPenalty
	if raw < minimumScore {
		return minimumScore
	}
	return raw
}
