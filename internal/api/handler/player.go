package handler

import (
	"net/http"

	"github.com/whyvineet/orthoplay-go/internal/api/apierr"
	"github.com/whyvineet/orthoplay-go/internal/api/middleware"
	"github.com/whyvineet/orthoplay-go/internal/api/request"
	"github.com/whyvineet/orthoplay-go/internal/api/response"
)

// CreateGuest handles POST /players/guest
func (h *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if req.DisplayName == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("display_name is required"))
		return
	}

	session, err := h.auth.CreateGuest(req.DisplayName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.SessionFromAuth(session))
}

// Register handles POST /players/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	session, err := h.auth.Register(req.Username, req.Password, displayName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.SessionFromAuth(session))
}

// Login handles POST /players/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	session, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromAuth(session))
}

// Me handles GET /players/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.GetPlayer(r.Context())
	if !ok {
		apierr.WriteError(w, apierr.NewUnauthorizedError())
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerResponse{
		ID:          string(player.ID),
		Username:    player.Username,
		DisplayName: player.DisplayName,
		IsGuest:     player.IsGuest,
	})
}
