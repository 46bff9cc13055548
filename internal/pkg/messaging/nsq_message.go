package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	nsq "github.com/nsqio/go-nsq"
)

// nsqEnvelope is the wire form of a message on NSQ.
type nsqEnvelope struct {
	Headers []nsqHeader `json:"headers,omitempty"`
	Key     []byte      `json:"key,omitempty"`
	Body    []byte      `json:"body"`
}

type nsqHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func encodeNSQEnvelope(msg OutgoingMessage) ([]byte, error) {
	env := nsqEnvelope{Key: msg.Key, Body: msg.Body}
	for _, h := range msg.Headers {
		if h.Key == "" {
			continue
		}
		env.Headers = append(env.Headers, nsqHeader{Key: h.Key, Value: string(h.Value)})
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("messaging: nsq encode envelope: %w", err)
	}
	return raw, nil
}

// decodeNSQEnvelope unwraps raw. Bodies published without an envelope are
// returned as they are.
func decodeNSQEnvelope(raw []byte) nsqEnvelope {
	var env nsqEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Body == nil {
		return nsqEnvelope{Body: raw}
	}
	return env
}

type nsqMessage struct {
	topic string
	msg   *nsq.Message
	env   nsqEnvelope

	responded atomic.Bool
}

func newNSQMessage(topic string, msg *nsq.Message) *nsqMessage {
	return &nsqMessage{
		topic: topic,
		msg:   msg,
		env:   decodeNSQEnvelope(msg.Body),
	}
}

func (m *nsqMessage) hasResponded() bool { return m.responded.Load() }

func (m *nsqMessage) Body() []byte  { return m.env.Body }
func (m *nsqMessage) Key() []byte   { return m.env.Key }
func (m *nsqMessage) Topic() string { return m.topic }
func (m *nsqMessage) ID() string    { return string(m.msg.ID[:]) }

func (m *nsqMessage) Timestamp() time.Time { return time.Unix(0, m.msg.Timestamp) }

func (m *nsqMessage) Headers() []Header {
	headers := make([]Header, 0, len(m.env.Headers))
	for _, h := range m.env.Headers {
		headers = append(headers, Header{Key: h.Key, Value: []byte(h.Value)})
	}
	return headers
}

func (m *nsqMessage) Ack(ctx context.Context) error {
	return m.respond(ctx, m.msg.Finish)
}

// Nack requeues with the client's backoff delay.
func (m *nsqMessage) Nack(ctx context.Context) error {
	return m.respond(ctx, func() { m.msg.Requeue(-1) })
}

func (m *nsqMessage) respond(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.responded.Swap(true) {
		return nil
	}
	fn()
	return nil
}
