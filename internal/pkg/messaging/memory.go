package messaging

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// ErrMemoryTopicRequired is returned when the topic is empty.
var ErrMemoryTopicRequired = errors.New("messaging: memory topic is required")

const memoryBuffer = 64

// Memory is an in-process broker. Each group (empty string included) of
// subscribers on a topic receives every message once, round-robin between
// its members. Messages published with no subscriber are dropped.
type Memory struct {
	mu     sync.Mutex
	topics map[string]map[string]*memoryGroup
	seq    atomic.Int64
	closed bool
	done   chan struct{}
}

type memoryGroup struct {
	members []chan *memoryMessage
	next    int
}

// NewMemory returns an empty in-process broker.
func NewMemory() *Memory {
	return &Memory{
		topics: map[string]map[string]*memoryGroup{},
		done:   make(chan struct{}),
	}
}

// Close stops every running Consume.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}

// Publish delivers msg to one member of every group subscribed to destination.
func (m *Memory) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrMemoryTopicRequired
	}
	if msg.Delay > 0 {
		return PublishResult{}, ErrUnsupported
	}

	offset := m.seq.Add(1)
	now := time.Now()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return PublishResult{}, io.ErrClosedPipe
	}
	var targets []chan *memoryMessage
	for _, g := range m.topics[destination] {
		if len(g.members) == 0 {
			continue
		}
		targets = append(targets, g.members[g.next%len(g.members)])
		g.next++
	}
	m.mu.Unlock()

	for _, ch := range targets {
		mm := &memoryMessage{
			topic:   destination,
			offset:  offset,
			at:      now,
			body:    append([]byte(nil), msg.Body...),
			key:     append([]byte(nil), msg.Key...),
			headers: append([]Header(nil), msg.Headers...),
		}
		select {
		case ch <- mm:
		case <-ctx.Done():
			return PublishResult{}, ctx.Err()
		case <-m.done:
			return PublishResult{}, io.ErrClosedPipe
		}
	}

	return PublishResult{Topic: destination, Offset: offset, Timestamp: now}, nil
}

// Consume registers a subscriber and blocks until ctx is done or the broker closes.
func (m *Memory) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrMemoryTopicRequired
	}

	co := newConsumeOptions(opts...)
	ch := make(chan *memoryMessage, memoryBuffer)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return io.ErrClosedPipe
	}
	groups, ok := m.topics[source]
	if !ok {
		groups = map[string]*memoryGroup{}
		m.topics[source] = groups
	}
	g, ok := groups[co.group]
	if !ok {
		g = &memoryGroup{}
		groups[co.group] = g
	}
	g.members = append(g.members, ch)
	m.mu.Unlock()

	defer m.unsubscribe(source, co.group, ch)

	var wg sync.WaitGroup
	work := make(chan *memoryMessage)
	for range concurrencyOrDefault(co.concurrency, 1) {
		wg.Go(func() {
			for mm := range work {
				//nolint:errcheck // memory messages are never redelivered
				_ = dispatch(ctx, DriverMemory, handler, mm, co.autoAck)
			}
		})
	}
	defer wg.Wait()
	defer close(work)

	for {
		select {
		case mm := <-ch:
			work <- mm
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return nil
		}
	}
}

func (m *Memory) unsubscribe(topic, group string, ch chan *memoryMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := m.topics[topic][group]
	if g == nil {
		return
	}
	for i, member := range g.members {
		if member == ch {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

type memoryMessage struct {
	topic   string
	offset  int64
	at      time.Time
	body    []byte
	key     []byte
	headers []Header

	responded atomic.Bool
}

func (mm *memoryMessage) hasResponded() bool { return mm.responded.Load() }

func (mm *memoryMessage) Body() []byte         { return mm.body }
func (mm *memoryMessage) Key() []byte          { return mm.key }
func (mm *memoryMessage) Headers() []Header    { return mm.headers }
func (mm *memoryMessage) Topic() string        { return mm.topic }
func (mm *memoryMessage) ID() string           { return mm.topic + "/" + strconv.FormatInt(mm.offset, 10) }
func (mm *memoryMessage) Timestamp() time.Time { return mm.at }

func (mm *memoryMessage) Ack(context.Context) error {
	mm.responded.Store(true)
	return nil
}

func (mm *memoryMessage) Nack(context.Context) error {
	mm.responded.Store(true)
	return nil
}
