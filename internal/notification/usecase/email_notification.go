package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/formbite/internal/notification/entity"
	"github.com/shandysiswandi/formbite/internal/pkg/mail"
)

type emailNotificationInput struct {
	Reference    string
	Email        string
	Subject      string
	TriggerKey   entity.TriggerKey
	TemplateData map[string]any
}

// sendEmailNotification renders and sends one acknowledgment. A render failure
// is logged and dropped; a send failure is returned so the message is redelivered.
func (s *Usecase) sendEmailNotification(ctx context.Context, in emailNotificationInput) error {
	data := s.baseEmailTemplateData()
	for k, v := range in.TemplateData {
		data[k] = v
	}

	body, err := s.renderTemplate(in.TriggerKey.TemplateName(), data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render email body", "reference", in.Reference, "trigger_key", in.TriggerKey.String(), "error", err)
		return nil
	}

	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		ReplyTo:  s.cfg.GetString("modules.notification.support_email"),
		Subject:  in.Subject,
		TextBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send notification email", "reference", in.Reference, "trigger_key", in.TriggerKey.String(), "error", err)
		return err
	}

	slog.InfoContext(ctx, "notification email sent", "reference", in.Reference, "trigger_key", in.TriggerKey.String(), "email", in.Email)
	return nil
}
