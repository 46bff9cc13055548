package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"net/smtp"
	"strings"
	"time"
)

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	// ErrSMTPNoRecipients is returned when To is empty.
	ErrSMTPNoRecipients = errors.New("no recipients provided")
	// ErrSMTPNoSender is returned when both Message.From and the configured default From are empty.
	ErrSMTPNoSender = errors.New("no sender provided")
	// ErrSMTPInvalidAddress is returned when a sender or recipient cannot be parsed.
	ErrSMTPInvalidAddress = errors.New("invalid mail address")
)

// SMTP is a Mail implementation backed by net/smtp.
type SMTP struct {
	addr        string
	defaultFrom string
	auth        smtp.Auth
	send        func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	now         func() time.Time
}

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the default sender when Message.From is empty.
	From string
}

// NewSMTP constructs an SMTP mail sender. Authentication is used only when
// both Username and Password are set.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTP{
		addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		defaultFrom: cfg.From,
		auth:        auth,
		send:        smtp.SendMail,
		now:         time.Now,
	}, nil
}

// Send delivers a message over SMTP.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return ErrSMTPNoRecipients
	}

	if msg.From == "" {
		msg.From = s.defaultFrom
	}
	if msg.From == "" {
		return ErrSMTPNoSender
	}

	raw, err := compose(msg, s.now())
	if err != nil {
		return err
	}

	from, err := envelopeAddress(msg.From)
	if err != nil {
		return err
	}
	to := make([]string, 0, len(msg.To))
	for _, rcpt := range msg.To {
		addr, err := envelopeAddress(rcpt)
		if err != nil {
			return err
		}
		to = append(to, addr)
	}

	return s.send(s.addr, s.auth, from, to, raw)
}

// envelopeAddress strips the display name: "Formbite <a@b.co>" becomes "a@b.co".
// Headers keep the full form.
func envelopeAddress(v string) (string, error) {
	addr, err := netmail.ParseAddress(v)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrSMTPInvalidAddress, v, err)
	}
	return addr.Address, nil
}

// Close implements io.Closer for interface compatibility.
func (s *SMTP) Close() error {
	return nil
}

func compose(msg Message, at time.Time) ([]byte, error) {
	if err := validHeaders(append([]string{msg.From, msg.ReplyTo, msg.Subject}, msg.To...)...); err != nil {
		return nil, err
	}

	headers := []string{
		"From: " + msg.From,
		"To: " + strings.Join(msg.To, ", "),
	}
	if msg.ReplyTo != "" {
		headers = append(headers, "Reply-To: "+msg.ReplyTo)
	}
	headers = append(headers,
		"Subject: "+msg.Subject,
		"Date: "+at.Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	)

	body := strings.ReplaceAll(strings.ReplaceAll(msg.TextBody, "\r\n", "\n"), "\n", "\r\n")
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body), nil
}
