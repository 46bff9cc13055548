package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/formbite/internal/testprep/entity"
	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/formbite/internal/pkg/idempotency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubIdempotency struct {
	err  error
	keys []string
}

func (s *stubIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	s.keys = append(s.keys, key)
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}

// unmarkableRedis grants every lock and fails to store the completed state.
type unmarkableRedis struct {
	redis.Cmdable
}

func (unmarkableRedis) SetNX(context.Context, string, any, time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func (unmarkableRedis) Set(context.Context, string, any, time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("", errors.New("redis write timeout"))
}

func TestUsecase_Submit(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("stores and publishes", func(t *testing.T) {
		idemp := &stubIdempotency{}
		f := newFixture(t, idemp)

		f.db.On("CreateTestPrepInquiry", mock.Anything, mock.MatchedBy(func(in entity.NewTestPrepInquiry) bool {
			return in.ID == 1001 && in.Reference == "TPI-7HQ2MX9KRD" && in.Inquiry.Email == "jo@x.com"
		})).Return(&entity.Submission{ID: 1001, Reference: "TPI-7HQ2MX9KRD", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishTestPrepSubmitted", mock.Anything, TestPrepSubmittedEvent{
			ID:           1001,
			Reference:    "TPI-7HQ2MX9KRD",
			FullName:     "Jo",
			Email:        "jo@x.com",
			Tests:        []string{"IELTS", "GMAT"},
			CoachingMode: "Online",
			CreatedAt:    createdAt,
		}).Return(nil).Once()

		in := validInput()
		in.OtherTest = "GMAT"

		out, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-1", Form: in})
		require.NoError(t, err)
		assert.Equal(t, &SubmitOutput{ID: 1001, Reference: "TPI-7HQ2MX9KRD", CreatedAt: createdAt}, out)
		assert.Equal(t, []string{"key-1"}, idemp.keys)
	})

	t.Run("invalid form never reaches storage", func(t *testing.T) {
		idemp := &stubIdempotency{}
		f := newFixture(t, idemp)

		in := validInput()
		in.LookingFor = entity.LookingFor{}

		out, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-2", Form: in})
		assert.Nil(t, out)
		assert.True(t, fieldErrors(t, err).Has("lookingFor"))
		assert.Empty(t, idemp.keys)
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		f := newFixture(t, nil)

		f.db.On("CreateTestPrepInquiry", mock.Anything, mock.Anything).
			Return(&entity.Submission{ID: 1001, Reference: "TPI-7HQ2MX9KRD", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishTestPrepSubmitted", mock.Anything, mock.Anything).
			Return(errors.New("broker down")).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{Form: validInput()})
		require.NoError(t, err)
		assert.Equal(t, "TPI-7HQ2MX9KRD", out.Reference)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t, nil)

		f.db.On("CreateTestPrepInquiry", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{Form: validInput()})
		assert.Nil(t, out)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInternal, gerr.Code())
	})

	t.Run("taken reference is regenerated", func(t *testing.T) {
		f := newFixture(t, nil, "TPI-AAAAAAAAAA", "TPI-BBBBBBBBBB")

		f.db.On("CreateTestPrepInquiry", mock.Anything, mock.MatchedBy(func(in entity.NewTestPrepInquiry) bool {
			return in.Reference == "TPI-AAAAAAAAAA"
		})).Return(nil, goerror.ErrConflict).Once()
		f.db.On("CreateTestPrepInquiry", mock.Anything, mock.MatchedBy(func(in entity.NewTestPrepInquiry) bool {
			return in.Reference == "TPI-BBBBBBBBBB"
		})).Return(&entity.Submission{ID: 1002, Reference: "TPI-BBBBBBBBBB", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishTestPrepSubmitted", mock.Anything, mock.Anything).Return(nil).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{Form: validInput()})
		require.NoError(t, err)
		assert.Equal(t, "TPI-BBBBBBBBBB", out.Reference)
	})

	t.Run("repeated idempotency key", func(t *testing.T) {
		for _, guardErr := range []error{idempotency.ErrAlreadyInProgress, idempotency.ErrAlreadyCompleted} {
			f := newFixture(t, &stubIdempotency{err: guardErr})

			out, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-3", Form: validInput()})
			assert.Nil(t, out)

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, goerror.CodeConflict, gerr.Code())
		}
	})

	t.Run("stored submission survives a lost completion mark", func(t *testing.T) {
		f := newFixture(t, idempotency.New(unmarkableRedis{}))

		f.db.On("CreateTestPrepInquiry", mock.Anything, mock.Anything).
			Return(&entity.Submission{ID: 1001, Reference: "TPI-7HQ2MX9KRD", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishTestPrepSubmitted", mock.Anything, mock.Anything).Return(nil).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-5", Form: validInput()})
		require.NoError(t, err)
		assert.Equal(t, "TPI-7HQ2MX9KRD", out.Reference)
		f.msg.AssertExpectations(t)
	})

	t.Run("idempotency store failure", func(t *testing.T) {
		f := newFixture(t, &stubIdempotency{err: errors.New("redis: connection refused")})

		_, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-4", Form: validInput()})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInternal, gerr.Code())
	})
}

func TestUsecase_GetByReference(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := newFixture(t, nil)
		f.db.On("GetSubmissionByReference", mock.Anything, "TPI-7HQ2MX9KRD").
			Return(&entity.Submission{ID: 1001, Reference: "TPI-7HQ2MX9KRD", CreatedAt: createdAt}, nil).Once()

		out, err := f.uc.GetByReference(ctx, GetByReferenceInput{Reference: " tpi-7hq2mx9krd "})
		require.NoError(t, err)
		assert.Equal(t, &GetByReferenceOutput{Reference: "TPI-7HQ2MX9KRD", CreatedAt: createdAt}, out)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, nil)
		f.db.On("GetSubmissionByReference", mock.Anything, "TPI-NOPE").Return(nil, goerror.ErrNotFound).Once()

		_, err := f.uc.GetByReference(ctx, GetByReferenceInput{Reference: "TPI-NOPE"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeNotFound, gerr.Code())
	})

	t.Run("blank reference", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.uc.GetByReference(ctx, GetByReferenceInput{Reference: "  "})
		assert.True(t, fieldErrors(t, err).Has("reference"))
	})
}

func TestUsecase_Options(t *testing.T) {
	f := newFixture(t, nil)

	out := f.uc.Options(context.Background())
	assert.Equal(t, []string{"IELTS", "SAT", "LNAT", "TOEFL"}, out.Tests)
	assert.Equal(t, []string{"fullCourse", "specificCoaching", "practiceTests"}, out.LookingFor)
	assert.Equal(t, []string{"Online", "In-person", "Both"}, out.CoachingModes)
	assert.Equal(t, []string{"Yes", "No"}, out.TakenBefore)
}
