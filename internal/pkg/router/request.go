package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
)

// maxBodyBytes bounds a decoded JSON body. Form submissions are small.
const maxBodyBytes = 64 * 1024

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func (r *Request) GetParam(key string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(key)
}

// GetHeader returns the trimmed value of the request header key.
func (r *Request) GetHeader(key string) string {
	return strings.TrimSpace(r.Header.Get(key))
}

// DecodeBody decodes exactly one JSON object into dst.
//
// Unknown keys, wrong JSON types, trailing data and oversized bodies are
// reported as goerror.CodeInvalidFormat.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil || r.Body == http.NoBody {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes+1))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return goerror.NewInvalidFormat("Invalid request body: " + typeErr.Field + " has the wrong type")
		}
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return goerror.NewInvalidFormat()
	}

	return nil
}
