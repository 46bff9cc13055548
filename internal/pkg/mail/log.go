package mail

import (
	"context"
	"log/slog"
)

// Log is a Mail that writes messages to slog instead of sending them.
type Log struct{}

// NewLog returns a Log mailer.
func NewLog() *Log {
	return &Log{}
}

// Send logs the message.
func (*Log) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrSMTPNoRecipients
	}
	if err := validHeaders(msg.Subject); err != nil {
		return err
	}

	slog.InfoContext(ctx, "mail not sent, log driver", "to", msg.To, "subject", msg.Subject, "body", msg.TextBody)
	return nil
}

// Close implements io.Closer.
func (*Log) Close() error {
	return nil
}
