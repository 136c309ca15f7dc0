package model

import "errors"

// Common errors used across the application
var (
	// Catalog errors
	ErrWordNotFound         = errors.New("word not found")
	ErrNoWordsForDifficulty = errors.New("no words found for difficulty")
	ErrCatalogNotLoaded     = errors.New("word catalog not loaded")

	// Session errors
	ErrSessionNotFound  = errors.New("game session not found")
	ErrGameNotCompleted = errors.New("game not completed yet")
	ErrDemoSession      = errors.New("demo games cannot submit scores")

	// Leaderboard errors
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidCompletionTime = errors.New("completion time must be positive")
	ErrLeaderboardStorage    = errors.New("leaderboard storage unavailable")
	ErrUserNotFound          = errors.New("user not found")
)
