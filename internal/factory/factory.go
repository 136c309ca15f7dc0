package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/clock"
	"github.com/whyvineet/orthoplay-go/internal/dependencies/random"
	"github.com/whyvineet/orthoplay-go/internal/services/auth"
	"github.com/whyvineet/orthoplay-go/internal/services/catalog"
	"github.com/whyvineet/orthoplay-go/internal/services/feedback"
	"github.com/whyvineet/orthoplay-go/internal/services/game"
	"github.com/whyvineet/orthoplay-go/internal/services/leaderboard"
	"github.com/whyvineet/orthoplay-go/internal/services/scoring"
	"github.com/whyvineet/orthoplay-go/internal/storage"
	"github.com/whyvineet/orthoplay-go/internal/storage/file"
	"github.com/whyvineet/orthoplay-go/internal/storage/memory"
	redisstorage "github.com/whyvineet/orthoplay-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Sessions    storage.SessionStorage
	Leaderboard storage.LeaderboardStorage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	CatalogService     *catalog.Service
	FeedbackService    *feedback.Service
	ScoringService     *scoring.Service
	GameController     *game.Controller
	LeaderboardService *leaderboard.Service
	AuthService        *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// WordsPath is the path to the word catalog file (optional)
	// If empty, the catalog must be loaded manually
	WordsPath string
	// DataDir is the directory for the leaderboard file (optional)
	// If empty, the leaderboard is kept in memory only
	DataDir string
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the session storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create session storage based on type
	var sessions storage.SessionStorage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		sessions = memory.NewSessionStorage()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		sessions = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	// The leaderboard is file-backed whenever a data directory is given
	var lbStore storage.LeaderboardStorage
	if cfg.DataDir != "" {
		fileStore, err := file.New(cfg.DataDir, clk, logger)
		if err != nil {
			return nil, err
		}
		lbStore = fileStore
	} else {
		lbStore = memory.NewLeaderboardStorage()
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	app := newWithDependencies(sessions, lbStore, clk, rnd, authCfg, logger)

	if cfg.WordsPath != "" {
		if err := app.CatalogService.LoadFromFile(cfg.WordsPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	sessions storage.SessionStorage,
	lbStore storage.LeaderboardStorage,
	clk clock.Clock,
	rnd random.Random,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	catalogService := catalog.New(rnd, logger)
	feedbackService := feedback.New()
	scoringService := scoring.New()
	gameController := game.NewController(sessions, catalogService, feedbackService, scoringService, clk, rnd, logger)
	leaderboardService := leaderboard.New(lbStore, clk, logger)
	authService := auth.New(clk, authCfg)

	return &App{
		Sessions:           sessions,
		Leaderboard:        lbStore,
		Clock:              clk,
		Random:             rnd,
		CatalogService:     catalogService,
		FeedbackService:    feedbackService,
		ScoringService:     scoringService,
		GameController:     gameController,
		LeaderboardService: leaderboardService,
		AuthService:        authService,
	}
}
