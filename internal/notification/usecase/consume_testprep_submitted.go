package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/formbite/internal/notification/entity"
)

type ConsumeTestPrepSubmittedInput struct {
	Reference    string `validate:"required"`
	FullName     string `validate:"required"`
	Email        string `validate:"required,formemail"`
	Tests        []string
	CoachingMode string
	CreatedAt    time.Time
}

func (s *Usecase) ConsumeTestPrepSubmitted(ctx context.Context, in ConsumeTestPrepSubmittedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeTestPrepSubmitted")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "reference", in.Reference, "error", err)
		return nil
	}

	return s.sendEmailNotification(ctx, emailNotificationInput{
		Reference:  in.Reference,
		Email:      in.Email,
		Subject:    "We received your test preparation inquiry (" + in.Reference + ")",
		TriggerKey: entity.TriggerKeyTestPrepSubmitted,
		TemplateData: map[string]any{
			"full_name":     in.FullName,
			"reference":     in.Reference,
			"tests":         strings.Join(in.Tests, ", "),
			"coaching_mode": in.CoachingMode,
			"submitted_at":  s.submittedAt(in.CreatedAt),
		},
	})
}
