package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler writes the response after a recovered panic
type PanicHandler func(w http.ResponseWriter, r *http.Request, value any)

// Recovery creates middleware that recovers from handler panics, logs the
// stack, and delegates the response to the given panic handler
func Recovery(logger *slog.Logger, onPanic PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if value := recover(); value != nil {
					logger.Error("panic recovered",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", value),
						slog.String("stack", string(debug.Stack())),
					)
					onPanic(w, r, value)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
