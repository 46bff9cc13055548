package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/shandysiswandi/formbite/internal/pkg/stacktrace"
)

// middlewareRecoverer turns a handler panic into a 500 envelope. A panic
// carrying http.ErrAbortHandler is re-raised so net/http aborts the response.
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:err113,errorlint // sentinel is compared by identity
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(r.Context(), "panic on the server", "route", matchedRoutePath(r), "because", rvr, "stack", paths)
			} else {
				slog.ErrorContext(r.Context(), "panic on the server", "route", matchedRoutePath(r), "because", rvr, "stack", string(stack))
			}

			writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
