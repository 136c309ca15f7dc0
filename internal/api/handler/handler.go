package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/whyvineet/orthoplay-go/internal/api/apierr"
	"github.com/whyvineet/orthoplay-go/internal/dependencies/clock"
	"github.com/whyvineet/orthoplay-go/internal/services/auth"
	"github.com/whyvineet/orthoplay-go/internal/services/catalog"
	"github.com/whyvineet/orthoplay-go/internal/services/game"
	"github.com/whyvineet/orthoplay-go/internal/services/leaderboard"
)

// Handler holds the HTTP handlers and their dependencies
type Handler struct {
	games       game.ControllerInterface
	leaderboard *leaderboard.Service
	catalog     *catalog.Service
	auth        *auth.Service
	clock       clock.Clock
	logger      *slog.Logger
}

// New creates a new Handler
func New(
	games game.ControllerInterface,
	leaderboardService *leaderboard.Service,
	catalogService *catalog.Service,
	authService *auth.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		games:       games,
		leaderboard: leaderboardService,
		catalog:     catalogService,
		auth:        authService,
		clock:       clk,
		logger:      logger,
	}
}

// decode parses a JSON request body into dst
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.NewInvalidRequestError("Invalid request body")
	}
	return nil
}
