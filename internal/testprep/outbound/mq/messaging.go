package mq

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/messaging"
	"github.com/shandysiswandi/formbite/internal/shared/event"
	"github.com/shandysiswandi/formbite/internal/testprep/usecase"
	"go.opentelemetry.io/otel/codes"
)

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishTestPrepSubmitted(ctx context.Context, msg usecase.TestPrepSubmittedEvent) error {
	ctx, span := m.ins.Tracer("testprep.outbound.mq").Start(ctx, "PublishTestPrepSubmitted")
	defer span.End()

	if _, err := messaging.PublishJSON(ctx, m.client, event.TestPrepSubmittedDestination, []byte(msg.Reference), event.TestPrepSubmittedMessage{
		ID:           msg.ID,
		Reference:    msg.Reference,
		FullName:     msg.FullName,
		Email:        msg.Email,
		Tests:        msg.Tests,
		CoachingMode: msg.CoachingMode,
		CreatedAt:    msg.CreatedAt,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
