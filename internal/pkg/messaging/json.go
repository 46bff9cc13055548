package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
)

const (
	// HeaderCorrelationID carries the correlation ID of the request that produced an event.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderContentType describes the payload encoding.
	HeaderContentType = "Content-Type"
)

// PublishJSON encodes v as JSON and publishes it to destination. The
// correlation ID in ctx, if any, travels as a header.
func PublishJSON(ctx context.Context, pub Publisher, destination string, key []byte, v any) (PublishResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return PublishResult{}, fmt.Errorf("messaging: encode %s payload: %w", destination, err)
	}

	headers := []Header{{Key: HeaderContentType, Value: []byte("application/json")}}
	if cID := instrument.GetCorrelationID(ctx); cID != "" {
		headers = append(headers, Header{Key: HeaderCorrelationID, Value: []byte(cID)})
	}

	return pub.Publish(ctx, destination, OutgoingMessage{
		Body:    body,
		Key:     key,
		Headers: headers,
	})
}

// DecodeJSON decodes the message body into v and returns ctx carrying the
// message correlation ID.
func DecodeJSON(ctx context.Context, msg Message, v any) (context.Context, error) {
	if cID := HeaderValue(msg, HeaderCorrelationID); cID != "" {
		ctx = instrument.SetCorrelationID(ctx, cID)
	}

	if err := json.Unmarshal(msg.Body(), v); err != nil {
		return ctx, fmt.Errorf("messaging: decode %s payload: %w", msg.Topic(), err)
	}

	return ctx, nil
}
