package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
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

		f.db.On("CreateAccommodationRequest", mock.Anything, mock.MatchedBy(func(in entity.NewAccommodationRequest) bool {
			return in.ID == 1001 && in.Reference == "ACC-3F9K2QX7PL" && in.Request.Email == "amara.okafor@example.com"
		})).Return(&entity.Submission{ID: 1001, Reference: "ACC-3F9K2QX7PL", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishAccommodationSubmitted", mock.Anything, AccommodationSubmittedEvent{
			ID:             1001,
			Reference:      "ACC-3F9K2QX7PL",
			FullName:       "Amara Okafor",
			Email:          "amara.okafor@example.com",
			UniversityCity: "Manchester",
			MoveIn:         "September 2026",
			CreatedAt:      createdAt,
		}).Return(nil).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-1", Form: validInput()})
		require.NoError(t, err)
		assert.Equal(t, &SubmitOutput{ID: 1001, Reference: "ACC-3F9K2QX7PL", CreatedAt: createdAt}, out)
		assert.Equal(t, []string{"key-1"}, idemp.keys)
	})

	t.Run("invalid form never reaches storage", func(t *testing.T) {
		idemp := &stubIdempotency{}
		f := newFixture(t, idemp)

		in := validInput()
		in.AccommodationType = nil

		out, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-2", Form: in})
		assert.Nil(t, out)
		assert.True(t, fieldErrors(t, err).Has("accommodationType"))
		assert.Empty(t, idemp.keys)
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		f := newFixture(t, nil)

		f.db.On("CreateAccommodationRequest", mock.Anything, mock.Anything).
			Return(&entity.Submission{ID: 1001, Reference: "ACC-3F9K2QX7PL", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishAccommodationSubmitted", mock.Anything, mock.Anything).
			Return(errors.New("broker down")).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{Form: validInput()})
		require.NoError(t, err)
		assert.Equal(t, "ACC-3F9K2QX7PL", out.Reference)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t, nil)

		f.db.On("CreateAccommodationRequest", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{Form: validInput()})
		assert.Nil(t, out)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInternal, gerr.Code())
	})

	t.Run("taken reference is regenerated", func(t *testing.T) {
		f := newFixture(t, nil, "ACC-AAAAAAAAAA", "ACC-BBBBBBBBBB")

		f.db.On("CreateAccommodationRequest", mock.Anything, mock.MatchedBy(func(in entity.NewAccommodationRequest) bool {
			return in.Reference == "ACC-AAAAAAAAAA"
		})).Return(nil, goerror.ErrConflict).Once()
		f.db.On("CreateAccommodationRequest", mock.Anything, mock.MatchedBy(func(in entity.NewAccommodationRequest) bool {
			return in.Reference == "ACC-BBBBBBBBBB"
		})).Return(&entity.Submission{ID: 1002, Reference: "ACC-BBBBBBBBBB", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishAccommodationSubmitted", mock.Anything, mock.Anything).Return(nil).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{Form: validInput()})
		require.NoError(t, err)
		assert.Equal(t, "ACC-BBBBBBBBBB", out.Reference)
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

		f.db.On("CreateAccommodationRequest", mock.Anything, mock.Anything).
			Return(&entity.Submission{ID: 1001, Reference: "ACC-3F9K2QX7PL", CreatedAt: createdAt}, nil).Once()
		f.msg.On("PublishAccommodationSubmitted", mock.Anything, mock.Anything).Return(nil).Once()

		out, err := f.uc.Submit(ctx, SubmitInput{IdempotencyKey: "key-5", Form: validInput()})
		require.NoError(t, err)
		assert.Equal(t, "ACC-3F9K2QX7PL", out.Reference)
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
		f.db.On("GetSubmissionByReference", mock.Anything, "ACC-3F9K2QX7PL").
			Return(&entity.Submission{ID: 1001, Reference: "ACC-3F9K2QX7PL", CreatedAt: createdAt}, nil).Once()

		out, err := f.uc.GetByReference(ctx, GetByReferenceInput{Reference: " acc-3f9k2qx7pl "})
		require.NoError(t, err)
		assert.Equal(t, &GetByReferenceOutput{Reference: "ACC-3F9K2QX7PL", CreatedAt: createdAt}, out)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, nil)
		f.db.On("GetSubmissionByReference", mock.Anything, "ACC-NOPE").Return(nil, goerror.ErrNotFound).Once()

		_, err := f.uc.GetByReference(ctx, GetByReferenceInput{Reference: "ACC-NOPE"})

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
	assert.Equal(t, []string{"< £500", "£500–£700", "£700–£900", "£900+"}, out.Budgets)
	assert.Equal(t, []string{"Ensuite", "Studio", "Shared Flat", "Family Accommodation"}, out.AccommodationTypes)
	assert.Equal(t, []string{"Yes", "No"}, out.Dependents)
	assert.Equal(t, 2, out.MaxAccommodationTypes)
}
