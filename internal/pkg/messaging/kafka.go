package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	// ErrKafkaTopicRequired is returned when the topic is empty.
	ErrKafkaTopicRequired = errors.New("messaging: kafka topic is required")
	// ErrKafkaHandlerRequired is returned when Consume is called with a nil handler.
	ErrKafkaHandlerRequired = errors.New("messaging: kafka handler is required")
	// ErrKafkaBrokersRequired is returned when no Kafka brokers are configured.
	ErrKafkaBrokersRequired = errors.New("messaging: kafka brokers are required")
	// ErrKafkaGroupRequired is returned when a consumer group is required but not provided.
	ErrKafkaGroupRequired = errors.New("messaging: kafka consumer group is required")
)

// KafkaConfig configures the Kafka implementation.
type KafkaConfig struct {
	// Brokers lists Kafka broker addresses.
	Brokers []string
	// BatchTimeout bounds how long the writer waits to fill a batch.
	// Zero means kafka-go's default (1s), which is slow for single events.
	BatchTimeout time.Duration
	// AllowAutoTopicCreation lets the writer create missing topics.
	AllowAutoTopicCreation bool
	// ReaderMaxWait bounds how long a fetch waits for new data.
	ReaderMaxWait time.Duration
}

// Kafka is a messaging implementation backed by kafka-go.
type Kafka struct {
	cfg KafkaConfig

	mu      sync.Mutex
	writers map[string]*kafka.Writer
	readers []*kafka.Reader
	closed  bool
}

// NewKafka constructs a Kafka messaging client.
func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrKafkaBrokersRequired
	}

	cfg.Brokers = append([]string{}, cfg.Brokers...)
	return &Kafka{
		cfg:     cfg,
		writers: map[string]*kafka.Writer{},
	}, nil
}

// Close shuts down all Kafka readers and writers.
func (k *Kafka) Close() error {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	writers := make([]*kafka.Writer, 0, len(k.writers))
	for _, w := range k.writers {
		writers = append(writers, w)
	}
	k.writers = nil
	readers := append([]*kafka.Reader{}, k.readers...)
	k.readers = nil
	k.mu.Unlock()

	var closeErr error
	for _, r := range readers {
		closeErr = errors.Join(closeErr, r.Close())
	}
	for _, w := range writers {
		closeErr = errors.Join(closeErr, w.Close())
	}
	return closeErr
}

// Publish sends a message to a Kafka topic.
func (k *Kafka) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrKafkaTopicRequired
	}
	if msg.Delay > 0 {
		return PublishResult{}, ErrUnsupported
	}

	writer, err := k.getWriter(destination)
	if err != nil {
		return PublishResult{}, err
	}

	kmsg := kafka.Message{
		Key:   msg.Key,
		Value: msg.Body,
		Time:  time.Now(),
	}
	for _, h := range msg.Headers {
		if h.Key == "" {
			continue
		}
		kmsg.Headers = append(kmsg.Headers, kafka.Header{Key: h.Key, Value: h.Value})
	}

	if err := writer.WriteMessages(ctx, kmsg); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: kafka publish: %w", err)
	}

	return PublishResult{
		Topic:     destination,
		Timestamp: kmsg.Time,
	}, nil
}

// Consume reads a Kafka topic as a member of the consumer group set with WithGroup.
// Acked messages are committed; nacked ones are left uncommitted.
func (k *Kafka) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	co := newConsumeOptions(opts...)
	if err := validateKafkaConsume(ctx, source, handler, co); err != nil {
		return err
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  k.cfg.Brokers,
		GroupID:  co.group,
		Topic:    source,
		MaxBytes: 10e6,
		MaxWait:  k.cfg.ReaderMaxWait,
	})
	if err := k.addReader(reader); err != nil {
		return errors.Join(err, reader.Close())
	}

	msgCh := make(chan kafka.Message)
	errCh := make(chan error, 1)

	go kafkaFetchLoop(consumeCtx, reader, msgCh, errCh)

	var wg sync.WaitGroup
	for range concurrencyOrDefault(co.concurrency, 1) {
		wg.Go(func() {
			for m := range msgCh {
				if err := dispatch(consumeCtx, "kafka", handler, newKafkaMessage(reader, m), co.autoAck); err != nil {
					trySendErr(errCh, err)
					cancel()
					return
				}
			}
		})
	}

	waitErr := waitKafkaConsume(ctx, errCh, &wg)
	k.removeReader(reader)
	return errors.Join(waitErr, reader.Close())
}

func (k *Kafka) getWriter(topic string) (*kafka.Writer, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil, io.ErrClosedPipe
	}
	if w, ok := k.writers[topic]; ok {
		return w, nil
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(k.cfg.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           k.cfg.BatchTimeout,
		AllowAutoTopicCreation: k.cfg.AllowAutoTopicCreation,
	}
	k.writers[topic] = w
	return w, nil
}

func (k *Kafka) addReader(reader *kafka.Reader) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return io.ErrClosedPipe
	}
	k.readers = append(k.readers, reader)
	return nil
}

func (k *Kafka) removeReader(reader *kafka.Reader) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i := range k.readers {
		if k.readers[i] == reader {
			k.readers = append(k.readers[:i], k.readers[i+1:]...)
			return
		}
	}
}

func trySendErr(ch chan<- error, err error) {
	if err == nil {
		return
	}
	select {
	case ch <- err:
	default:
	}
}

func validateKafkaConsume(ctx context.Context, topic string, handler Handler, opts consumeOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrKafkaTopicRequired
	}
	if handler == nil {
		return ErrKafkaHandlerRequired
	}
	if opts.group == "" {
		return ErrKafkaGroupRequired
	}
	return nil
}

func kafkaFetchLoop(ctx context.Context, reader *kafka.Reader, msgCh chan<- kafka.Message, errCh chan<- error) {
	defer close(msgCh)

	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			trySendErr(errCh, err)
			return
		}

		select {
		case msgCh <- m:
		case <-ctx.Done():
			trySendErr(errCh, ctx.Err())
			return
		}
	}
}

func waitKafkaConsume(ctx context.Context, errCh <-chan error, wg *sync.WaitGroup) error {
	select {
	case err := <-errCh:
		wg.Wait()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("messaging: kafka consume: %w", err)
	case <-ctx.Done():
		wg.Wait()
		return ctx.Err()
	}
}
