package inbound

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/formbite/internal/notification/usecase"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/messaging"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
	"github.com/shandysiswandi/formbite/internal/shared/event"
)

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

// decode reads the JSON body into v and makes sure ctx carries a correlation ID.
func (h *MQHandler) decode(ctx context.Context, msg messaging.Message, v any) (context.Context, error) {
	ctx, err := messaging.DecodeJSON(ctx, msg, v)
	if instrument.GetCorrelationID(ctx) == "" {
		ctx = instrument.SetCorrelationID(ctx, h.uuid.Generate())
	}
	return ctx, err
}

func (h *MQHandler) AccommodationSubmittedNotification(ctx context.Context, msg messaging.Message) error {
	var payload event.AccommodationSubmittedMessage
	ctx, err := h.decode(ctx, msg, &payload)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "AccommodationSubmittedNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: accommodation submitted notification", "msg_id", msg.ID(), "msg_body", string(body))

	if err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of accommodation submitted notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeAccommodationSubmitted(ctx, usecase.ConsumeAccommodationSubmittedInput{
		Reference:      payload.Reference,
		FullName:       payload.FullName,
		Email:          payload.Email,
		UniversityCity: payload.UniversityCity,
		MoveIn:         payload.MoveIn,
		CreatedAt:      payload.CreatedAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume accommodation submitted", "reference", payload.Reference, "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) TestPrepSubmittedNotification(ctx context.Context, msg messaging.Message) error {
	var payload event.TestPrepSubmittedMessage
	ctx, err := h.decode(ctx, msg, &payload)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "TestPrepSubmittedNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: test prep submitted notification", "msg_id", msg.ID(), "msg_body", string(body))

	if err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of test prep submitted notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeTestPrepSubmitted(ctx, usecase.ConsumeTestPrepSubmittedInput{
		Reference:    payload.Reference,
		FullName:     payload.FullName,
		Email:        payload.Email,
		Tests:        payload.Tests,
		CoachingMode: payload.CoachingMode,
		CreatedAt:    payload.CreatedAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume test prep submitted", "reference", payload.Reference, "error", err)
		return err
	}

	return nil
}
