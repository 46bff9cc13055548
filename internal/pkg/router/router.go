// Package router is the HTTP transport shared by every module: httprouter
// routing, the application Handler signature, a JSON response envelope and
// the standard middleware chain.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
)

type errorResponse struct {
	Message string                 `json:"message" example:"Validation error"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

type successResponse struct {
	Message string `json:"message" example:"example string message"`
	Data    any    `json:"data" swaggertype:"object"`
}

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
// A payload implementing StatusCode() int or Message() string overrides the
// default 200 status and message.
type Handler func(r *Request) (any, error)

// Config holds dependencies required to build a Router.
type Config struct {
	// Config provides runtime configuration values.
	Config config.Config
	// UUID generates request correlation IDs.
	UUID uid.StringID
	// Instrument provides tracing and metrics helpers.
	Instrument instrument.Instrumentation
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr  *httprouter.Router
	mws []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(cfg Config) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, errorResponse{Message: "endpoint not found"}, http.StatusNotFound)
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, errorResponse{Message: "method not allowed"}, http.StatusMethodNotAllowed)
		}),
	}

	hr.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	ins := cfg.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	return &Router{
		hr: hr,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareRequestContext(cfg.UUID),
			middlewareObservability(cfg.Config, ins),
			middlewareMaintenance(cfg.Config),
		},
	}
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(&Request{Request: re})
		if err != nil {
			if setter, ok := w.(interface{ SetError(error) }); ok {
				setter.SetError(err)
			}
			encodeError(re.Context(), w, err)
			return
		}
		encodeSuccess(re.Context(), w, resp)
	}), append(r.mws, mws...)...))
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

func encodeError(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		slog.ErrorContext(ctx, "unexpected error type reached the router", "error", err)
		writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	resp := errorResponse{Message: gerr.Msg()}

	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		resp.Errors = fieldErrs
	}

	writeJSON(w, resp, gerr.StatusCode())
}

func encodeSuccess(_ context.Context, w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface {
		StatusCode() int
	}); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	msg := "request has been successfully"
	if m, ok := resp.(interface {
		Message() string
	}); ok {
		msg = m.Message()
	}

	writeJSON(w, successResponse{Message: msg, Data: resp}, code)
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
