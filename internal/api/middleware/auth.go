package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/whyvineet/orthoplay-go/internal/api/apierr"
	"github.com/whyvineet/orthoplay-go/internal/model"
	"github.com/whyvineet/orthoplay-go/internal/services/auth"
)

type contextKey string

const playerContextKey contextKey = "player"

// Auth creates middleware that requires a valid bearer token and stores
// the authenticated player in the request context
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := authService.ValidateSession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), playerContextKey, session.Player)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth creates middleware that stores the authenticated player in
// the request context when a valid bearer token is present, and passes the
// request through untouched otherwise
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token != "" {
				if session, err := authService.ValidateSession(token); err == nil {
					ctx := context.WithValue(r.Context(), playerContextKey, session.Player)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken pulls the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// GetPlayer retrieves the authenticated player from the request context
func GetPlayer(ctx context.Context) (model.Player, bool) {
	player, ok := ctx.Value(playerContextKey).(model.Player)
	return player, ok
}
