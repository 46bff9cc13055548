package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
	"github.com/shandysiswandi/formbite/internal/pkg/idempotency"
)

// maxReferenceAttempts bounds retries when a generated reference is already taken.
const maxReferenceAttempts = 3

type (
	SubmitInput struct {
		IdempotencyKey string
		Form           AccommodationInput
	}

	SubmitOutput struct {
		ID        int64
		Reference string
		CreatedAt time.Time
	}
)

func (s *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	req, err := s.validate(ctx, in.Form)
	if err != nil {
		return nil, err
	}

	var sub *entity.Submission
	err = s.idemp.Exec(ctx, in.IdempotencyKey, func(ctx context.Context) (err error) {
		sub, err = s.create(ctx, *req)
		return err
	})
	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		slog.WarnContext(ctx, "accommodation submission already in progress", "idempotency_key", in.IdempotencyKey)
		return nil, goerror.NewBusiness("Submission is already being processed", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		slog.WarnContext(ctx, "accommodation submission already completed", "idempotency_key", in.IdempotencyKey)
		return nil, goerror.NewBusiness("Submission has already been received", goerror.CodeConflict)
	case err != nil:
		var gerr *goerror.Error
		if errors.As(err, &gerr) {
			return nil, err
		}
		slog.ErrorContext(ctx, "failed to guard accommodation submission", "idempotency_key", in.IdempotencyKey, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishAccommodationSubmitted(ctx, AccommodationSubmittedEvent{
		ID:             sub.ID,
		Reference:      sub.Reference,
		FullName:       req.FullName,
		Email:          req.Email,
		UniversityCity: req.UniversityCity,
		MoveIn:         req.MoveInMonth + " " + req.MoveInYear,
		CreatedAt:      sub.CreatedAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish accommodation submitted", "reference", sub.Reference, "error", err)
	}

	return &SubmitOutput{
		ID:        sub.ID,
		Reference: sub.Reference,
		CreatedAt: sub.CreatedAt,
	}, nil
}

func (s *Usecase) create(ctx context.Context, req entity.AccommodationRequest) (*entity.Submission, error) {
	var lastErr error
	for range maxReferenceAttempts {
		sub, err := s.repoDB.CreateAccommodationRequest(ctx, entity.NewAccommodationRequest{
			ID:        s.uid.Generate(),
			Reference: s.ref.Generate(),
			Request:   req,
		})
		if err == nil {
			return sub, nil
		}
		if !errors.Is(err, goerror.ErrConflict) {
			slog.ErrorContext(ctx, "failed to repo create accommodation request", "error", err)
			return nil, goerror.NewServer(err)
		}

		slog.WarnContext(ctx, "accommodation reference already taken, retrying", "error", err)
		lastErr = err
	}

	slog.ErrorContext(ctx, "failed to allocate accommodation reference", "attempts", maxReferenceAttempts, "error", lastErr)
	return nil, goerror.NewServer(lastErr)
}
