// Package messaging publishes and consumes submission events over a
// broker-agnostic API.
//
// Drivers: Kafka (segmentio/kafka-go), NATS (nats.go), NSQ (go-nsq), Google
// Pub/Sub and an in-process memory broker for local runs and tests. The
// consumer group maps to the Kafka group, the NATS queue group, the NSQ
// channel or the Pub/Sub subscription. Use cases depend on Publisher;
// inbound consumers depend on Consumer.
package messaging
