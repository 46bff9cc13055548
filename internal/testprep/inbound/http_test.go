package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
	"github.com/shandysiswandi/formbite/internal/pkg/idempotency"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/router"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
	"github.com/shandysiswandi/formbite/internal/testprep/entity"
	"github.com/shandysiswandi/formbite/internal/testprep/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type memoryRepo struct {
	mu        sync.Mutex
	inquiries map[string]entity.NewTestPrepInquiry
	events    []usecase.TestPrepSubmittedEvent
}

func (m *memoryRepo) CreateTestPrepInquiry(_ context.Context, in entity.NewTestPrepInquiry) (*entity.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inquiries[in.Reference]; ok {
		return nil, goerror.ErrConflict
	}
	m.inquiries[in.Reference] = in
	return &entity.Submission{ID: in.ID, Reference: in.Reference, CreatedAt: createdAt, UpdatedAt: createdAt}, nil
}

func (m *memoryRepo) GetSubmissionByReference(_ context.Context, reference string) (*entity.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	in, ok := m.inquiries[reference]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &entity.Submission{ID: in.ID, Reference: in.Reference, CreatedAt: createdAt, UpdatedAt: createdAt}, nil
}

func (m *memoryRepo) PublishTestPrepSubmitted(_ context.Context, msg usecase.TestPrepSubmittedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, msg)
	return nil
}

type fixedNumber int64

func (f fixedNumber) Generate() int64 { return int64(f) }

type fixedString string

func (f fixedString) Generate() string { return string(f) }

// onceIdempotency remembers keys in memory.
type onceIdempotency struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (o *onceIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if key == "" {
		return fn(ctx)
	}

	o.mu.Lock()
	if o.seen[key] {
		o.mu.Unlock()
		return idempotency.ErrAlreadyCompleted
	}
	o.seen[key] = true
	o.mu.Unlock()

	if err := fn(ctx); err != nil {
		o.mu.Lock()
		delete(o.seen, key)
		o.mu.Unlock()
		return err
	}
	return nil
}

func newServer(t *testing.T) (*router.Router, *memoryRepo) {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	repo := &memoryRepo{inquiries: map[string]entity.NewTestPrepInquiry{}}
	uc := usecase.New(usecase.Dependency{
		RepoDB:        repo,
		RepoMessaging: repo,
		Idempotency:   &onceIdempotency{seen: map[string]bool{}},
		Validator:     v,
		UID:           fixedNumber(1955000000000000007),
		Reference:     fixedString("TPI-7HQ2MX9KRD"),
		Instrument:    instrument.NewNoop(),
	})

	r := router.NewRouter(router.Config{})
	RegisterHTTPEndpoint(r, uc)
	return r, repo
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const joBody = `{
	"fullName": "Jo",
	"email": "jo@x.com",
	"phone": "123",
	"tests": {"IELTS": true},
	"notSureYet": true,
	"takenBefore": "No",
	"targetScore": "7.0",
	"lookingFor": {"practiceTests": true},
	"coachingMode": "Online"
}`

func TestHTTPEndpoint_Submit(t *testing.T) {
	r, repo := newServer(t)

	rec := do(r, http.MethodPost, "/api/v1/testprep/inquiries", joBody, map[string]string{HeaderIdempotencyKey: "jo-1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"message": "Your test preparation inquiry has been received.",
		"data": {"id": "1955000000000000007", "reference": "TPI-7HQ2MX9KRD", "createdAt": "2026-03-14T09:30:00Z"}
	}`, rec.Body.String())

	require.Len(t, repo.events, 1)
	assert.Equal(t, []string{"IELTS"}, repo.events[0].Tests)
	assert.True(t, repo.inquiries["TPI-7HQ2MX9KRD"].Inquiry.LookingFor.PracticeTests)

	t.Run("same idempotency key", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/api/v1/testprep/inquiries", joBody, map[string]string{HeaderIdempotencyKey: "jo-1"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Len(t, repo.events, 1)
	})

	t.Run("status lookup", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/api/v1/testprep/inquiries/tpi-7hq2mx9krd", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"message": "request has been successfully",
			"data": {"reference": "TPI-7HQ2MX9KRD", "status": "received", "createdAt": "2026-03-14T09:30:00Z"}
		}`, rec.Body.String())

		rec = do(r, http.MethodGet, "/api/v1/testprep/inquiries/TPI-UNKNOWN", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPEndpoint_Submit_ValidationErrors(t *testing.T) {
	r, repo := newServer(t)

	rec := do(r, http.MethodPost, "/api/v1/testprep/inquiries", `{
		"fullName": "Jo",
		"email": "not-an-email",
		"phone": "123",
		"takenBefore": "Yes",
		"targetScore": "7.0",
		"coachingMode": "Online"
	}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"message": "Validation error",
		"errors": [
			{"field": "email", "message": "Please provide a valid email address"},
			{"field": "targetTestDate", "message": "Please select a target test date or check 'Not sure yet'"},
			{"field": "previousScore", "message": "Previous score is required since you indicated you have taken the test before"},
			{"field": "tests", "message": "Please select at least one test type or specify in 'Other'"},
			{"field": "lookingFor", "message": "Please select at least one service you are looking for"}
		]
	}`, rec.Body.String())
	assert.Empty(t, repo.events)
}

func TestHTTPEndpoint_Submit_MalformedBody(t *testing.T) {
	r, _ := newServer(t)

	for name, body := range map[string]string{
		"not json":    `fullName=Jo`,
		"wrong type":  `{"tests": ["IELTS"]}`,
		"unknown key": `{"fullName": "Jo", "age": 19}`,
		"two objects": `{} {}`,
		"empty body":  ``,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(r, http.MethodPost, "/api/v1/testprep/inquiries", body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHTTPEndpoint_Validate(t *testing.T) {
	r, repo := newServer(t)

	rec := do(r, http.MethodPost, "/api/v1/testprep/inquiries/validate",
		strings.Replace(joBody, `"jo@x.com"`, `" JO@X.com "`, 1), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data TestPrepRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "jo@x.com", env.Data.Email)
	assert.True(t, env.Data.Tests.IELTS)
	assert.Empty(t, repo.inquiries)
}

func TestHTTPEndpoint_Options(t *testing.T) {
	r, _ := newServer(t)

	rec := do(r, http.MethodGet, "/api/v1/testprep/options", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "request has been successfully",
		"data": {
			"tests": ["IELTS", "SAT", "LNAT", "TOEFL"],
			"lookingFor": ["fullCourse", "specificCoaching", "practiceTests"],
			"coachingModes": ["Online", "In-person", "Both"],
			"takenBefore": ["Yes", "No"]
		}
	}`, rec.Body.String())
}
