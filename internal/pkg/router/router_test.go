package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type created struct {
	ID string `json:"id"`
}

func (created) StatusCode() int { return http.StatusCreated }
func (created) Message() string { return "created" }

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRouter(t *testing.T) {
	r := NewRouter(Config{UUID: fixedID("cid-generated")})

	r.POST("/items", func(req *Request) (any, error) {
		var in struct {
			Name string `json:"name"`
		}
		if err := req.DecodeBody(&in); err != nil {
			return nil, err
		}
		if in.Name == "" {
			return nil, goerror.NewInvalidInput(validator.FieldErrors{
				{Field: "name", Message: "name is a required field"},
				{Field: "name", Message: "name is too short"},
			})
		}
		return created{ID: "1"}, nil
	})
	r.GET("/items/:ref", func(req *Request) (any, error) {
		if req.GetParam("ref") == "missing" {
			return nil, goerror.NewBusiness("item not found", goerror.CodeNotFound)
		}
		return map[string]string{"ref": req.GetParam("ref")}, nil
	})
	r.GET("/boom", func(*Request) (any, error) { return nil, errors.New("raw") })
	r.GET("/panic", func(*Request) (any, error) { panic("oops") })

	t.Run("created with custom status and message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"a"}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "cid-generated", rec.Header().Get(HeaderCorrelationID))
		body := decodeJSON(t, rec)
		assert.Equal(t, "created", body["message"])
		assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	})

	t.Run("field errors keep order and duplicates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":""}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, "Validation error", body["message"])
		assert.Equal(t, []any{
			map[string]any{"field": "name", "message": "name is a required field"},
			map[string]any{"field": "name", "message": "name is too short"},
		}, body["errors"])
	})

	t.Run("malformed body", func(t *testing.T) {
		for _, payload := range []string{`not json`, `{"name":1}`, `{"name":"a","extra":true}`, `{"name":"a"}{}`, ``} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(payload)))
			assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		}
	})

	t.Run("business error and params", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "item not found", decodeJSON(t, rec)["message"])

		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items/ACC-1", nil)
		req.Header.Set(HeaderCorrelationID, "from-client")
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "from-client", rec.Header().Get(HeaderCorrelationID))
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeJSON(t, rec)["message"])
	})

	t.Run("panic is recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("not found and health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }), mw("a"), mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "handler"}, order)
}

func TestNormalizeCID(t *testing.T) {
	assert.Empty(t, normalizeCID("  "))
	assert.Empty(t, normalizeCID("a\nb"))
	assert.Len(t, normalizeCID(strings.Repeat("x", 200)), 128)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "remote addr", remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "true client ip wins", headers: map[string]string{"True-Client-IP": "1.1.1.1", "X-Real-IP": "2.2.2.2"}, remote: "10.0.0.1:5555", want: "1.1.1.1"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "3.3.3.3, 10.0.0.2"}, remote: "10.0.0.1:5555", want: "3.3.3.3"},
		{name: "garbage header falls back", headers: map[string]string{"X-Real-IP": "nope"}, remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "nothing usable", remote: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}

func TestMaintenance(t *testing.T) {
	cfg, err := config.NewViperFromBytes("yaml", []byte(`
app:
  maintenance:
    endpoints: "POST /forms, /paused"
`))
	require.NoError(t, err)

	r := NewRouter(Config{Config: cfg})
	ok := func(*Request) (any, error) { return map[string]string{"ok": "yes"}, nil }
	r.POST("/forms", ok)
	r.GET("/forms", ok)
	r.GET("/paused", ok)

	for _, tt := range []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/forms", http.StatusServiceUnavailable},
		{http.MethodGet, "/forms", http.StatusOK},
		{http.MethodGet, "/paused", http.StatusServiceUnavailable},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, tt.method+" "+tt.path)
	}
}
