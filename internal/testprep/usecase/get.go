package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
)

type (
	GetByReferenceInput struct {
		Reference string `validate:"required,max=32"`
	}

	GetByReferenceOutput struct {
		Reference string
		CreatedAt time.Time
	}
)

func (s *Usecase) GetByReference(ctx context.Context, in GetByReferenceInput) (*GetByReferenceOutput, error) {
	ctx, span := s.startSpan(ctx, "GetByReference")
	defer span.End()

	in.Reference = strings.ToUpper(strings.TrimSpace(in.Reference))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	sub, err := s.repoDB.GetSubmissionByReference(ctx, in.Reference)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "test prep inquiry not found", "reference", in.Reference)
		return nil, goerror.NewBusiness("Test prep inquiry not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get test prep inquiry by reference", "reference", in.Reference, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GetByReferenceOutput{
		Reference: sub.Reference,
		CreatedAt: sub.CreatedAt,
	}, nil
}
