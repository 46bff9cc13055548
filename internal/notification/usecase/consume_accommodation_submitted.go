package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/formbite/internal/notification/entity"
)

type ConsumeAccommodationSubmittedInput struct {
	Reference      string `validate:"required"`
	FullName       string `validate:"required"`
	Email          string `validate:"required,formemail"`
	UniversityCity string
	MoveIn         string
	CreatedAt      time.Time
}

func (s *Usecase) ConsumeAccommodationSubmitted(ctx context.Context, in ConsumeAccommodationSubmittedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeAccommodationSubmitted")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "reference", in.Reference, "error", err)
		return nil
	}

	return s.sendEmailNotification(ctx, emailNotificationInput{
		Reference:  in.Reference,
		Email:      in.Email,
		Subject:    "We received your accommodation request (" + in.Reference + ")",
		TriggerKey: entity.TriggerKeyAccommodationSubmitted,
		TemplateData: map[string]any{
			"full_name":       in.FullName,
			"reference":       in.Reference,
			"university_city": in.UniversityCity,
			"move_in":         in.MoveIn,
			"submitted_at":    s.submittedAt(in.CreatedAt),
		},
	})
}
