package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes a JSON error body. Every error response carries at
// least an "error" string so the dashboard can render it directly.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

type notFoundResponse struct {
	Error     string    `json:"error"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
}

// NotFound handles unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusNotFound, notFoundResponse{
		Error:     "route not found",
		Path:      r.URL.Path,
		Method:    r.Method,
		Timestamp: time.Now().UTC(),
	})
}

// Recoverer converts panics into JSON 500 responses. The panic value
// is echoed in the body only outside production, matching the
// diagnostics the logs already carry.
func Recoverer(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slog.Error("panic in handler", "path", r.URL.Path, "panic", rec)

				body := map[string]any{"error": "internal server error"}
				if !production {
					body["detail"] = rec
				}

				JSON(w, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
