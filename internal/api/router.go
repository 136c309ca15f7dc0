package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whyvineet/orthoplay-go/internal/api/handler"
	"github.com/whyvineet/orthoplay-go/internal/api/middleware"
	"github.com/whyvineet/orthoplay-go/internal/dependencies/clock"
	basemiddleware "github.com/whyvineet/orthoplay-go/internal/middleware"
	"github.com/whyvineet/orthoplay-go/internal/services/auth"
	"github.com/whyvineet/orthoplay-go/internal/services/catalog"
	"github.com/whyvineet/orthoplay-go/internal/services/game"
	"github.com/whyvineet/orthoplay-go/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	GameController     game.ControllerInterface
	LeaderboardService *leaderboard.Service
	CatalogService     *catalog.Service
	Clock              clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	h := handler.New(
		cfg.GameController,
		cfg.LeaderboardService,
		cfg.CatalogService,
		cfg.AuthService,
		cfg.Clock,
		cfg.Logger,
	)

	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	loggingMiddleware := basemiddleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", h.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", h.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", h.Me).Methods(http.MethodGet)

	// Game routes (sessions are their own capability, no auth)
	api.HandleFunc("/game/start", h.StartGame).Methods(http.MethodPost)
	api.HandleFunc("/game/guess-length", h.GuessLength).Methods(http.MethodPost)
	api.HandleFunc("/game/submit-spelling", h.SubmitSpelling).Methods(http.MethodPost)
	api.HandleFunc("/game/use-hint", h.UseHint).Methods(http.MethodPost)
	api.HandleFunc("/game/reveal-answer", h.RevealAnswer).Methods(http.MethodPost)
	api.HandleFunc("/game/stats/{session_id}", h.GameStats).Methods(http.MethodGet)

	// Leaderboard routes; submit resolves the username from the session
	// token when one is presented
	api.Handle("/leaderboard/submit", optionalAuthMiddleware(http.HandlerFunc(h.SubmitScore))).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/user/{username}", h.GetUserStats).Methods(http.MethodGet)

	// Application stats and health (no auth)
	api.HandleFunc("/app/stats", h.AppStats).Methods(http.MethodGet)
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	return r
}
