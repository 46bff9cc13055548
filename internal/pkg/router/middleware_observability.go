package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const maxLoggedBodyBytes = 32 * 1024 // 32KB

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	body   *bytes.Buffer
	capped bool
	err    error
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if !w.capped && len(p) > 0 {
		remaining := maxLoggedBodyBytes - w.body.Len()
		switch {
		case remaining <= 0:
			w.capped = true
		case len(p) > remaining:
			w.body.Write(p[:remaining])
			w.capped = true
		default:
			w.body.Write(p)
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) SetError(err error) {
	w.err = err
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func matchedRoutePath(r *http.Request) string {
	pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath()
	if pattern != "" {
		return pattern
	}
	return r.URL.Path
}

// Header masking lives here; JSON bodies are logged as strings and masked by
// the instrument log handler.
func maskHeaders(headers http.Header, maskKeys map[string]struct{}) http.Header {
	result := headers.Clone()
	for key := range result {
		if _, found := maskKeys[strings.ToLower(key)]; found {
			result.Set(key, "***")
		}
	}
	return result
}

func headerMaskKeys(cfg config.Config) map[string]struct{} {
	maskKeys := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
	}
	if cfg != nil {
		for _, field := range cfg.GetArray("instrument.log_mask_fields") {
			field = strings.TrimSpace(strings.ToLower(field))
			if field != "" {
				maskKeys[field] = struct{}{}
			}
		}
	}
	return maskKeys
}

func bodyForLog(body []byte, capped bool) string {
	switch {
	case len(body) == 0:
		return ""
	case !utf8.Valid(body):
		return "<binary body omitted>"
	case capped:
		return string(body) + "...(truncated)"
	default:
		return string(body)
	}
}

func readRequestBody(r *http.Request) ([]byte, bool) {
	if r.Body == nil {
		return nil, false
	}

	//nolint:errcheck // best effort for logging only
	raw, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes+1))
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), r.Body))
	if len(raw) > maxLoggedBodyBytes {
		return raw[:maxLoggedBodyBytes], true
	}
	return raw, false
}

func middlewareObservability(cfg config.Config, ins instrument.Instrumentation) Middleware {
	maskKeys := headerMaskKeys(cfg)
	tracer := ins.Tracer("http.server")
	meter := ins.Meter("http.server")

	requestCounter, err := meter.Int64Counter("http.server.requests", metric.WithDescription("Number of HTTP requests received"))
	if err != nil {
		slog.Error("failed to create http request counter", "error", err)
	}

	durationHistogram, err := meter.Float64Histogram("http.server.duration", metric.WithDescription("HTTP request duration in milliseconds"))
	if err != nil {
		slog.Error("failed to create http duration histogram", "error", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			start := time.Now()

			ctx, span := tracer.Start(
				r.Context(),
				r.Method+" "+route,
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.HTTPRouteKey.String(route),
				),
			)
			defer span.End()

			reqBody, reqCapped := readRequestBody(r)
			slog.InfoContext(ctx, "request received",
				"method", r.Method,
				"path", route,
				"uri", r.RequestURI,
				"headers", maskHeaders(r.Header, maskKeys),
				"body", bodyForLog(reqBody, reqCapped),
			)

			rec := &statusRecorder{ResponseWriter: w, body: &bytes.Buffer{}}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []attribute.KeyValue{
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(route),
				semconv.HTTPResponseStatusCodeKey.Int(status),
			}

			if rec.err != nil {
				span.RecordError(rec.err)
			}

			switch {
			case status >= 500 && rec.err != nil:
				span.SetStatus(codes.Error, rec.err.Error())
			case status >= 500:
				span.SetStatus(codes.Error, http.StatusText(status))
			default:
				span.SetStatus(codes.Ok, "")
			}

			span.SetAttributes(attrs...)
			span.SetAttributes(
				semconv.ServerAddressKey.String(r.Host),
				attribute.String("http.user_agent", r.UserAgent()),
				attribute.Int("http.response_content_length", rec.bytes),
			)
			if requestCounter != nil {
				requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			}
			if durationHistogram != nil {
				durationHistogram.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(attrs...))
			}

			slog.InfoContext(ctx, "response sent",
				"method", r.Method,
				"path", route,
				"status", status,
				"bytes", rec.bytes,
				"latency_ms", time.Since(start).Milliseconds(),
				"body", bodyForLog(rec.body.Bytes(), rec.capped),
			)
		})
	}
}
