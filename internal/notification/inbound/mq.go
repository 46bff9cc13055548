package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/goroutine"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/messaging"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
	"github.com/shandysiswandi/formbite/internal/shared/event"
)

const defaultConsumerConcurrency = 4

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Consumer,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.notification.consumer_names")
	concurrency := cfg.GetInt("modules.notification.consumer_concurrency")
	if concurrency <= 0 {
		concurrency = defaultConsumerConcurrency
	}

	var consumers = []struct {
		name    string // consumer group
		topic   string // destination where publisher sent message
		handler messaging.Handler
	}{
		{
			name:    event.AccommodationSubmittedConsumerNotification,
			topic:   event.AccommodationSubmittedDestination,
			handler: mqHandler.AccommodationSubmittedNotification,
		},
		{
			name:    event.TestPrepSubmittedConsumerNotification,
			topic:   event.TestPrepSubmittedDestination,
			handler: mqHandler.TestPrepSubmittedNotification,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && !slices.Contains(enableConsumerNames, consumer.name) {
			continue
		}

		routine.Go(ctx, consumer.name, func(pCtx context.Context) error {
			slog.InfoContext(pCtx, "Running job for handling consumer", "consumer", consumer.name)
			return messenger.Consume(pCtx,
				consumer.topic,
				consumer.handler,
				messaging.WithGroup(consumer.name),
				messaging.WithAutoAck(true),
				messaging.WithConcurrency(concurrency),
			)
		})
	}
}
