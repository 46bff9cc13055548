package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	// ErrNATSSubjectRequired is returned when the subject is empty.
	ErrNATSSubjectRequired = errors.New("messaging: nats subject is required")
	// ErrNATSURLRequired is returned when the NATS server URL is missing.
	ErrNATSURLRequired = errors.New("messaging: nats url is required")
	// ErrNATSHandlerRequired is returned when Consume is called with a nil handler.
	ErrNATSHandlerRequired = errors.New("messaging: nats handler is required")
)

// NATSConfig configures the NATS implementation.
type NATSConfig struct {
	// URL is the NATS server address.
	URL string
	// Options are passed to the NATS client.
	Options []nats.Option
}

// NATS is a messaging implementation backed by core NATS.
type NATS struct {
	conn *nats.Conn

	mu     sync.Mutex
	subs   []*nats.Subscription
	closed bool
}

// NewNATS constructs a NATS messaging client.
func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(cfg.URL, cfg.Options...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}

	return &NATS{conn: conn}, nil
}

// Close drains subscriptions and closes the NATS connection.
func (n *NATS) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	subs := append([]*nats.Subscription{}, n.subs...)
	n.mu.Unlock()

	var closeErr error
	for _, sub := range subs {
		closeErr = errors.Join(closeErr, sub.Drain())
	}

	closeErr = errors.Join(closeErr, n.conn.Drain())
	n.conn.Close()
	return closeErr
}

// Publish sends a message to a NATS subject.
func (n *NATS) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNATSSubjectRequired
	}
	if msg.Delay > 0 {
		return PublishResult{}, ErrUnsupported
	}

	nmsg := nats.NewMsg(destination)
	nmsg.Data = msg.Body
	for _, h := range msg.Headers {
		if h.Key == "" {
			continue
		}
		nmsg.Header.Add(h.Key, string(h.Value))
	}

	if err := n.conn.PublishMsg(nmsg); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats flush: %w", err)
	}

	return PublishResult{
		Topic:     destination,
		Timestamp: time.Now(),
	}, nil
}

// Consume subscribes to a NATS subject, in the queue group set with WithGroup
// when one is given, and blocks until ctx is done.
func (n *NATS) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNATSSubjectRequired
	}
	if handler == nil {
		return ErrNATSHandlerRequired
	}

	co := newConsumeOptions(opts...)
	concurrency := concurrencyOrDefault(co.concurrency, 1)
	msgCh := make(chan *nats.Msg, concurrency)

	sub, err := n.conn.QueueSubscribe(source, co.group, func(m *nats.Msg) {
		select {
		case msgCh <- m:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}

	var wg sync.WaitGroup
	for range concurrency {
		wg.Go(func() {
			for m := range msgCh {
				//nolint:errcheck // core NATS has no redelivery, ack errors are not actionable
				_ = dispatch(ctx, "nats", handler, newNATSMessage(m, time.Now()), co.autoAck)
			}
		})
	}

	stop := func(cause error) error {
		uerr := sub.Drain()
		close(msgCh)
		wg.Wait()
		return errors.Join(cause, uerr)
	}

	if err := n.addSub(sub); err != nil {
		return stop(err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return stop(fmt.Errorf("messaging: nats flush: %w", err))
	}

	<-ctx.Done()
	return stop(ctx.Err())
}

func (n *NATS) addSub(sub *nats.Subscription) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return io.ErrClosedPipe
	}
	n.subs = append(n.subs, sub)
	return nil
}
