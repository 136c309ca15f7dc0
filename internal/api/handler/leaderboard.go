package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/whyvineet/orthoplay-go/internal/api/apierr"
	"github.com/whyvineet/orthoplay-go/internal/api/middleware"
	"github.com/whyvineet/orthoplay-go/internal/api/request"
	"github.com/whyvineet/orthoplay-go/internal/api/response"
	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/services/leaderboard"
)

// Query-parameter bounds for GET /leaderboard
const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 100
)

// SubmitScore handles POST /leaderboard/submit
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	username := req.Username
	if username == "" {
		if player, ok := middleware.GetPlayer(r.Context()); ok && !player.IsGuest {
			username = player.Username
		}
	}

	session, err := h.games.GetSession(r.Context(), model.SessionID(req.SessionID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if session.Mode == model.ModeDemo {
		apierr.WriteError(w, model.ErrDemoSession)
		return
	}
	if !session.Completed {
		apierr.WriteError(w, model.ErrGameNotCompleted)
		return
	}

	completion, err := h.games.CompletionData(r.Context(), session.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	entry := model.LeaderboardEntry{
		Username:       username,
		Word:           completion.Word,
		Score:          completion.Score,
		Attempts:       completion.Attempts,
		HintsUsed:      completion.HintsUsed,
		CompletionTime: req.CompletionTime,
		Timestamp:      h.clock.Now(),
		WordLength:     completion.WordLength,
	}

	saved, err := h.leaderboard.Submit(r.Context(), entry)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if !saved {
		apierr.WriteError(w, model.ErrLeaderboardStorage)
		return
	}

	rank := h.leaderboard.UserRank(r.Context(), username, completion.Score)

	response.JSON(w, http.StatusOK, response.SubmitScoreResponse{
		Success: true,
		Score:   completion.Score,
		Rank:    rank,
		Message: fmt.Sprintf("Score submitted successfully! You scored %d points.", completion.Score),
	})
}

// GetLeaderboard handles GET /leaderboard
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := parseIntParam(query.Get("limit"), defaultLeaderboardLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	offset := parseIntParam(query.Get("offset"), 0)
	if offset < 0 {
		offset = 0
	}

	filter := model.TimeFilter(query.Get("time_filter"))
	if filter == "" {
		filter = model.FilterAll
	}
	if !filter.IsValid() {
		apierr.WriteError(w, apierr.NewInvalidRequestError("time_filter must be 'daily', 'weekly', 'monthly' or 'all'"))
		return
	}

	sortOrder := model.SortOrder(query.Get("sort_order"))
	if sortOrder == "" {
		sortOrder = model.SortDesc
	}

	entries := h.leaderboard.Entries(r.Context(), leaderboard.Query{
		Limit:      limit,
		Offset:     offset,
		TimeFilter: filter,
		SortBy:     model.SortBy(query.Get("sort_by")),
		SortOrder:  sortOrder,
	})

	resp := response.LeaderboardResponse{
		Entries:      make([]response.LeaderboardEntry, 0, len(entries)),
		TotalEntries: h.leaderboard.TotalEntries(r.Context(), filter),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, response.LeaderboardEntryFromModel(e))
	}

	if username := query.Get("username"); username != "" {
		stats := h.leaderboard.UserStats(r.Context(), username)
		if stats.TotalGames > 0 {
			best := stats.BestScore
			rank := h.leaderboard.UserRank(r.Context(), stats.Username, best)
			resp.UserBestScore = &best
			resp.UserRank = &rank
		}
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetUserStats handles GET /leaderboard/user/{username}
func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	username := model.NormalizeUsername(mux.Vars(r)["username"])
	if err := model.ValidateUsername(username); err != nil {
		apierr.WriteError(w, err)
		return
	}

	stats := h.leaderboard.UserStats(r.Context(), username)
	response.JSON(w, http.StatusOK, response.UserStatsFromModel(stats))
}

// parseIntParam parses an integer query parameter, falling back to a
// default on absence or garbage
func parseIntParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
