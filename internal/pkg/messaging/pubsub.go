package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"google.golang.org/api/option"
)

var (
	// ErrPubSubProjectIDRequired is returned when ProjectID is missing.
	ErrPubSubProjectIDRequired = errors.New("messaging: pubsub project id is required")
	// ErrPubSubTopicRequired is returned when the publish topic is empty.
	ErrPubSubTopicRequired = errors.New("messaging: pubsub topic is required")
	// ErrPubSubSubscriptionRequired is returned when neither a source nor a group is given.
	ErrPubSubSubscriptionRequired = errors.New("messaging: pubsub subscription is required")
	// ErrPubSubHandlerRequired is returned when Consume is called with a nil handler.
	ErrPubSubHandlerRequired = errors.New("messaging: pubsub handler is required")
)

// PubSubConfig configures the Google Pub/Sub implementation.
type PubSubConfig struct {
	// ProjectID is the Google Cloud project ID.
	ProjectID string
	// Endpoint overrides the service address, e.g. a local emulator. Requests
	// to a custom endpoint are sent without credentials.
	Endpoint string
	// CredentialsFile is a service account key file. Empty uses application
	// default credentials.
	CredentialsFile string
}

// PubSub is a messaging implementation backed by Google Pub/Sub. Topics and
// subscriptions are provisioned outside the application.
type PubSub struct {
	client *pubsub.Client

	mu         sync.Mutex
	closed     bool
	publishers map[string]*pubsub.Publisher
}

// NewPubSub constructs a Pub/Sub messaging client.
func NewPubSub(ctx context.Context, cfg PubSubConfig) (*PubSub, error) {
	if cfg.ProjectID == "" {
		return nil, ErrPubSubProjectIDRequired
	}

	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	} else if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	c, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("messaging: pubsub new client: %w", err)
	}

	return &PubSub{client: c, publishers: map[string]*pubsub.Publisher{}}, nil
}

// Close flushes publishers and closes the client.
func (p *PubSub) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	pubs := make([]*pubsub.Publisher, 0, len(p.publishers))
	for _, pub := range p.publishers {
		pubs = append(pubs, pub)
	}
	p.publishers = nil
	p.mu.Unlock()

	for _, pub := range pubs {
		pub.Stop()
	}
	return p.client.Close()
}

// Publish sends a message to a Pub/Sub topic and waits for the server ID.
func (p *PubSub) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrPubSubTopicRequired
	}
	if msg.Delay > 0 {
		return PublishResult{}, ErrUnsupported
	}

	pub, err := p.publisher(destination)
	if err != nil {
		return PublishResult{}, err
	}

	id, err := pub.Publish(ctx, &pubsub.Message{
		Data:       msg.Body,
		Attributes: pubSubAttributes(msg.Headers),
	}).Get(ctx)
	if err != nil {
		return PublishResult{}, fmt.Errorf("messaging: pubsub publish: %w", err)
	}

	return PublishResult{
		Topic:     destination,
		MessageID: id,
		Timestamp: time.Now(),
	}, nil
}

// Consume receives from the subscription named by WithGroup, or from source
// itself when no group is set, and blocks until ctx is done.
func (p *PubSub) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if handler == nil {
		return ErrPubSubHandlerRequired
	}

	co := newConsumeOptions(opts...)
	subscription := pubSubSubscription(source, co)
	if subscription == "" {
		return ErrPubSubSubscriptionRequired
	}
	if err := p.ensureOpen(); err != nil {
		return err
	}

	sub := p.client.Subscriber(subscription)
	if co.concurrency > 0 {
		sub.ReceiveSettings.NumGoroutines = co.concurrency
		sub.ReceiveSettings.MaxOutstandingMessages = co.concurrency
	}

	err := sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		//nolint:errcheck // Pub/Sub ack and nack report no errors
		_ = dispatch(ctx, "pubsub", handler, newPubSubMessage(source, m), co.autoAck)
	})
	if err != nil {
		return fmt.Errorf("messaging: pubsub receive %s: %w", subscription, err)
	}
	return ctx.Err()
}

func (p *PubSub) publisher(topic string) (*pubsub.Publisher, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, io.ErrClosedPipe
	}
	if pub, ok := p.publishers[topic]; ok {
		return pub, nil
	}
	pub := p.client.Publisher(topic)
	p.publishers[topic] = pub
	return pub, nil
}

func (p *PubSub) ensureOpen() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return io.ErrClosedPipe
	}
	return nil
}

// pubSubAttributes flattens headers into attributes. A repeated key keeps its
// last value.
func pubSubAttributes(headers []Header) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(headers))
	for _, h := range headers {
		if h.Key == "" {
			continue
		}
		attrs[h.Key] = string(h.Value)
	}
	return attrs
}

func pubSubSubscription(source string, co consumeOptions) string {
	if co.group != "" {
		return co.group
	}
	return source
}
