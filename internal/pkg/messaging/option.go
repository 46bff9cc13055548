package messaging

type consumeOptions struct {
	// concurrency is the number of handlers running in parallel.
	concurrency int
	// autoAck acks or nacks after the handler returns.
	autoAck bool
	// group is the Kafka consumer group, the NATS queue group, the NSQ
	// channel, the Pub/Sub subscription or the memory broker delivery group.
	// One member of a group receives each message.
	group string
}

// ConsumeOption configures consumer behavior.
type ConsumeOption func(*consumeOptions)

func newConsumeOptions(opts ...ConsumeOption) consumeOptions {
	var co consumeOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&co)
	}
	return co
}

// WithConcurrency sets how many handler goroutines process messages in parallel.
func WithConcurrency(n int) ConsumeOption {
	return func(o *consumeOptions) { o.concurrency = n }
}

// WithGroup sets the consumer group, queue group, channel or subscription.
func WithGroup(group string) ConsumeOption {
	return func(o *consumeOptions) { o.group = group }
}

// WithAutoAck controls whether the driver acks/nacks after the handler returns.
func WithAutoAck(autoAck bool) ConsumeOption {
	return func(o *consumeOptions) { o.autoAck = autoAck }
}

func concurrencyOrDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
