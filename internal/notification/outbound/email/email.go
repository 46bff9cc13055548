package email

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Mail sends acknowledgment emails through the configured provider.
type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) Send(ctx context.Context, msg mail.Message) error {
	ctx, span := m.ins.Tracer("notification.outbound.email").Start(ctx, "Send", trace.WithAttributes(
		attribute.Int("mail.recipients", len(msg.To)),
		attribute.String("mail.subject", msg.Subject),
	))
	defer span.End()

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send acknowledgment email")
		return err
	}

	return nil
}
