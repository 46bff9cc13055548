package messaging

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/samber/lo"
)

type pubSubMessage struct {
	topic string
	msg   *pubsub.Message

	responded atomic.Bool
}

func newPubSubMessage(topic string, msg *pubsub.Message) *pubSubMessage {
	return &pubSubMessage{topic: topic, msg: msg}
}

func (m *pubSubMessage) hasResponded() bool { return m.responded.Load() }

func (m *pubSubMessage) Body() []byte         { return m.msg.Data }
func (m *pubSubMessage) Key() []byte          { return nil }
func (m *pubSubMessage) Topic() string        { return m.topic }
func (m *pubSubMessage) ID() string           { return m.msg.ID }
func (m *pubSubMessage) Timestamp() time.Time { return m.msg.PublishTime }

// Headers returns the attributes sorted by key.
func (m *pubSubMessage) Headers() []Header {
	keys := lo.Keys(m.msg.Attributes)
	slices.Sort(keys)

	headers := make([]Header, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, Header{Key: k, Value: []byte(m.msg.Attributes[k])})
	}
	return headers
}

func (m *pubSubMessage) Ack(ctx context.Context) error {
	return m.respond(ctx, m.msg.Ack)
}

// Nack asks for redelivery.
func (m *pubSubMessage) Nack(ctx context.Context) error {
	return m.respond(ctx, m.msg.Nack)
}

func (m *pubSubMessage) respond(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.responded.Swap(true) {
		return nil
	}
	fn()
	return nil
}
