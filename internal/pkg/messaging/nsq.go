package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	nsq "github.com/nsqio/go-nsq"
)

var (
	// ErrNSQTopicRequired is returned when the topic is empty.
	ErrNSQTopicRequired = errors.New("messaging: nsq topic is required")
	// ErrNSQChannelRequired is returned when Consume is called without WithGroup.
	ErrNSQChannelRequired = errors.New("messaging: nsq channel is required")
	// ErrNSQHandlerRequired is returned when Consume is called with a nil handler.
	ErrNSQHandlerRequired = errors.New("messaging: nsq handler is required")
	// ErrNSQProducerAddrRequired is returned when publishing without a producer address.
	ErrNSQProducerAddrRequired = errors.New("messaging: nsq producer address is required")
	// ErrNSQConsumerAddrsRequired is returned when no nsqd or lookupd address is configured.
	ErrNSQConsumerAddrsRequired = errors.New("messaging: nsq consumer nsqd/lookupd addresses are required")
)

// NSQConfig configures the NSQ implementation.
type NSQConfig struct {
	// ProducerAddr is the nsqd TCP address used for publishing.
	ProducerAddr string
	// NSQDAddrs lists nsqd addresses consumers connect to directly.
	NSQDAddrs []string
	// LookupdAddrs lists nsqlookupd HTTP addresses. They take precedence over NSQDAddrs.
	LookupdAddrs []string
	// MaxAttempts bounds redeliveries of a nacked message. Zero keeps the client default.
	MaxAttempts uint16
}

// NSQ is a messaging implementation backed by NSQ. Headers and keys travel
// inside a JSON envelope since NSQ messages carry only a body.
type NSQ struct {
	producer     *nsq.Producer
	nsqdAddrs    []string
	lookupdAddrs []string
	maxAttempts  uint16

	mu        sync.Mutex
	consumers []*nsq.Consumer
	closed    bool
}

// NewNSQ constructs an NSQ messaging client. No connection is opened until
// the first publish or consume.
func NewNSQ(cfg NSQConfig) (*NSQ, error) {
	n := &NSQ{
		nsqdAddrs:    append([]string{}, cfg.NSQDAddrs...),
		lookupdAddrs: append([]string{}, cfg.LookupdAddrs...),
		maxAttempts:  cfg.MaxAttempts,
	}

	if cfg.ProducerAddr != "" {
		p, err := nsq.NewProducer(cfg.ProducerAddr, nsq.NewConfig())
		if err != nil {
			return nil, fmt.Errorf("messaging: nsq new producer: %w", err)
		}
		p.SetLoggerLevel(nsq.LogLevelError)
		n.producer = p
	}

	return n, nil
}

// Close stops consumers and the producer.
func (n *NSQ) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	consumers := append([]*nsq.Consumer{}, n.consumers...)
	n.mu.Unlock()

	for _, c := range consumers {
		stopNSQConsumer(c)
	}
	if n.producer != nil {
		n.producer.Stop()
	}
	return nil
}

// Publish sends a message to an NSQ topic. A positive Delay uses deferred publishing.
func (n *NSQ) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNSQTopicRequired
	}
	if n.producer == nil {
		return PublishResult{}, ErrNSQProducerAddrRequired
	}

	body, err := encodeNSQEnvelope(msg)
	if err != nil {
		return PublishResult{}, err
	}

	if msg.Delay > 0 {
		err = n.producer.DeferredPublish(destination, msg.Delay, body)
	} else {
		err = n.producer.Publish(destination, body)
	}
	if err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nsq publish: %w", err)
	}

	return PublishResult{
		Topic:     destination,
		Timestamp: time.Now(),
	}, nil
}

// Consume reads an NSQ topic through the channel named by WithGroup and
// blocks until ctx is done. A nack requeues the message.
func (n *NSQ) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNSQTopicRequired
	}
	if handler == nil {
		return ErrNSQHandlerRequired
	}
	if len(n.nsqdAddrs) == 0 && len(n.lookupdAddrs) == 0 {
		return ErrNSQConsumerAddrsRequired
	}

	co := newConsumeOptions(opts...)
	if co.group == "" {
		return ErrNSQChannelRequired
	}
	concurrency := concurrencyOrDefault(co.concurrency, 1)

	ccfg := nsq.NewConfig()
	ccfg.MaxInFlight = concurrency
	if n.maxAttempts > 0 {
		ccfg.MaxAttempts = n.maxAttempts
	}

	consumer, err := nsq.NewConsumer(source, co.group, ccfg)
	if err != nil {
		return fmt.Errorf("messaging: nsq new consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelError)
	consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(m *nsq.Message) error {
		m.DisableAutoResponse()
		return dispatch(ctx, "nsq", handler, newNSQMessage(source, m), co.autoAck)
	}), concurrency)

	if err := n.addConsumer(consumer); err != nil {
		stopNSQConsumer(consumer)
		return err
	}

	if len(n.lookupdAddrs) > 0 {
		err = consumer.ConnectToNSQLookupds(n.lookupdAddrs)
	} else {
		err = consumer.ConnectToNSQDs(n.nsqdAddrs)
	}
	if err != nil {
		stopNSQConsumer(consumer)
		return fmt.Errorf("messaging: nsq connect: %w", err)
	}

	select {
	case <-ctx.Done():
		stopNSQConsumer(consumer)
		return ctx.Err()
	case <-consumer.StopChan:
		return nil
	}
}

func (n *NSQ) addConsumer(consumer *nsq.Consumer) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return io.ErrClosedPipe
	}
	n.consumers = append(n.consumers, consumer)
	return nil
}

func stopNSQConsumer(consumer *nsq.Consumer) {
	consumer.Stop()
	<-consumer.StopChan
}
