package handler

import (
	"net/http"

	"github.com/whyvineet/orthoplay-go/internal/api/response"
)

// Open-source share reported by app stats. Always full, the project is
// fully open source.
const openSourcePercent = 100

// AppStats handles GET /app/stats
func (h *Handler) AppStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	completion := h.leaderboard.CompletionStats(ctx)

	response.JSON(w, http.StatusOK, response.AppStatsResponse{
		ActiveLearners:   h.leaderboard.UniqueUsers(ctx),
		WordsAvailable:   h.catalog.WordCount(),
		TotalGamesPlayed: h.leaderboard.TotalGames(ctx),
		CommunityLove:    completion.SatisfactionRate,
		OpenSource:       openSourcePercent,
	})
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}
