package inbound

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/notification/usecase"
)

type uc interface {
	ConsumeAccommodationSubmitted(ctx context.Context, in usecase.ConsumeAccommodationSubmittedInput) error
	ConsumeTestPrepSubmitted(ctx context.Context, in usecase.ConsumeTestPrepSubmittedInput) error
}
