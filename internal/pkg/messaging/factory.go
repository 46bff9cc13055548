package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverNATS selects the NATS backend.
	DriverNATS = "nats"
	// DriverKafka selects the Kafka backend.
	DriverKafka = "kafka"
	// DriverNSQ selects the NSQ backend.
	DriverNSQ = "nsq"
	// DriverGooglePubSub selects the Google Pub/Sub backend.
	DriverGooglePubSub = "google-pubsub"
	// DriverMemory selects the in-process backend.
	DriverMemory = "memory"
)

// ErrUnknownDriver indicates an unsupported messaging driver.
var ErrUnknownDriver = errors.New("messaging: unknown driver")

// FactoryOptions groups config for supported messaging backends.
type FactoryOptions struct {
	Kafka  KafkaConfig
	NATS   NATSConfig
	NSQ    NSQConfig
	PubSub PubSubConfig
}

// NewFromDriver constructs a Messaging implementation by driver name.
// ctx is only used while creating the Pub/Sub client.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Messaging, error) {
	switch strings.TrimSpace(driver) {
	case DriverKafka:
		return NewKafka(opts.Kafka)
	case DriverNATS:
		return NewNATS(opts.NATS)
	case DriverNSQ:
		return NewNSQ(opts.NSQ)
	case DriverGooglePubSub:
		return NewPubSub(ctx, opts.PubSub)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
