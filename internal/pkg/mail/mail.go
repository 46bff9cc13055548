package mail

import (
	"context"
	"errors"
	"io"
	"strings"
)

// ErrHeaderInjection is returned when a header value contains a line break.
var ErrHeaderInjection = errors.New("mail: header value contains a line break")

// Message is a plain-text email.
type Message struct {
	// From overrides the configured sender.
	From string
	// To lists the recipients.
	To []string
	// ReplyTo is optional.
	ReplyTo string
	// Subject is the subject line.
	Subject string
	// TextBody is the plain-text body.
	TextBody string
}

// Mail abstracts an email provider.
type Mail interface {
	io.Closer
	// Send dispatches the given message.
	Send(ctx context.Context, msg Message) error
}

func validHeaders(values ...string) error {
	for _, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return ErrHeaderInjection
		}
	}
	return nil
}
