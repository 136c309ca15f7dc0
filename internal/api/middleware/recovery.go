package middleware

import (
	"log/slog"
	"net/http"

	"github.com/whyvineet/orthoplay-go/internal/api/apierr"
	"github.com/whyvineet/orthoplay-go/internal/middleware"
)

// Recovery creates panic-recovery middleware that responds with a JSON
// internal server error
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, value any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
