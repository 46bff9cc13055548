package router

import (
	"net"
	"net/http"
	"strings"

	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
)

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"

	maxCorrelationIDLen = 128
)

// clientIPHeaders are consulted in order; X-Forwarded-For contributes its first hop.
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// middlewareRequestContext resolves the client address and the correlation ID
// before anything else sees the request.
func middlewareRequestContext(gen uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip := clientIP(r); ip != "" {
				r.RemoteAddr = ip
			}

			cid := correlationID(r)
			if cid == "" && gen != nil {
				cid = gen.Generate()
			}
			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(instrument.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func correlationID(r *http.Request) string {
	for _, h := range []string{HeaderCorrelationID, HeaderRequestID} {
		if cid := normalizeCID(r.Header.Get(h)); cid != "" {
			return cid
		}
	}
	return ""
}

func normalizeCID(v string) string {
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	v = strings.TrimSpace(v)
	if len(v) > maxCorrelationIDLen {
		v = v[:maxCorrelationIDLen]
	}
	return v
}

func clientIP(r *http.Request) string {
	for _, h := range clientIPHeaders {
		v, _, _ := strings.Cut(r.Header.Get(h), ",")
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		if net.ParseIP(v) != nil {
			return v
		}
		break
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && net.ParseIP(host) != nil {
		return host
	}
	return ""
}
