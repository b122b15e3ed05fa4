package middleware

import (
	"log/slog"
	"net/http"

	"github.com/quicknote/quicknote-go/internal/view"
)

// Recover catches panics from downstream handlers, logs them, and
// renders the generic 500 page. The panic value never reaches the
// client.
func Recover(renderer *view.Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic recovered", "path", r.URL.Path, "panic", rec)
					renderer.Render(w, http.StatusInternalServerError, "error", view.ErrorData{
						Title:   "Server Error",
						Message: "Something went wrong. Please try again later.",
						Code:    http.StatusInternalServerError,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
