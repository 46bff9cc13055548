package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/formbite/internal/pkg/config"
)

// middlewareMaintenance answers 503 for configured routes. An entry is either
// a route pattern ("/api/v1/testprep/inquiries") or a method and pattern
// ("POST /api/v1/testprep/inquiries") so submissions can be paused while
// lookups keep working.
func middlewareMaintenance(cfg config.Config) Middleware {
	blocked := make(map[string]struct{})
	if cfg != nil {
		for _, entry := range cfg.GetArray("app.maintenance.endpoints") {
			if entry = strings.Join(strings.Fields(entry), " "); entry != "" {
				blocked[entry] = struct{}{}
			}
		}
	}

	return func(next http.Handler) http.Handler {
		if len(blocked) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			_, all := blocked[route]
			_, method := blocked[r.Method+" "+route]
			if all || method {
				writeJSON(w, errorResponse{Message: "Service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
