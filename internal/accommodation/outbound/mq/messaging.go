package mq

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/accommodation/usecase"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/messaging"
	"github.com/shandysiswandi/formbite/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishAccommodationSubmitted(ctx context.Context, msg usecase.AccommodationSubmittedEvent) error {
	ctx, span := m.ins.Tracer("accommodation.outbound.mq").Start(ctx, "PublishAccommodationSubmitted")
	defer span.End()

	if _, err := messaging.PublishJSON(ctx, m.client, event.AccommodationSubmittedDestination, []byte(msg.Reference), event.AccommodationSubmittedMessage{
		ID:             msg.ID,
		Reference:      msg.Reference,
		FullName:       msg.FullName,
		Email:          msg.Email,
		UniversityCity: msg.UniversityCity,
		MoveIn:         msg.MoveIn,
		CreatedAt:      msg.CreatedAt,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
