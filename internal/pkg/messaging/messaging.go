package messaging

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrUnsupported is returned when a feature is not supported by the selected broker.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// Messaging is a broker-agnostic client that can publish and consume messages.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher publishes messages to a destination (topic/subject).
type Publisher interface {
	// Publish sends a message to the destination.
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// Consumer consumes messages from a source (topic/subject).
type Consumer interface {
	// Consume blocks, dispatching messages to handler until ctx is done or
	// the broker fails.
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes a received message.
//
// With auto-ack enabled a nil error acks the message and a non-nil error
// nacks it. What a nack means is broker specific.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage is a message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte
	// Key is used by Kafka for partitioning.
	Key []byte
	// Headers support duplicate keys.
	Headers []Header
	// Delay requests deferred delivery. Only NSQ supports it.
	Delay time.Duration
}

// Header is a key/value pair used for message headers.
type Header struct {
	Key   string
	Value []byte
}

// PublishResult carries optional broker-specific publish metadata.
type PublishResult struct {
	// MessageID is set by brokers that assign one (Pub/Sub).
	MessageID string
	Topic     string
	Partition int32
	Offset    int64
	Timestamp time.Time
}

// Message is a received message.
type Message interface {
	Body() []byte
	Key() []byte
	Headers() []Header
	// Topic returns the topic or subject the message arrived on.
	Topic() string
	// ID returns a broker identifier when one exists.
	ID() string
	Timestamp() time.Time

	// Ack acknowledges successful processing.
	Ack(ctx context.Context) error
	// Nack reports failed processing.
	Nack(ctx context.Context) error
}

// HeaderValue returns the first value of header key (case-insensitive), or "".
func HeaderValue(msg Message, key string) string {
	for _, h := range msg.Headers() {
		if strings.EqualFold(h.Key, key) {
			return string(h.Value)
		}
	}
	return ""
}
