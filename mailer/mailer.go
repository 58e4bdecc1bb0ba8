package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/mail"
	"strings"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/slice"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

// Message is a plain text e-mail.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer delivers messages through a relay.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// New returns the SendGrid API mailer when an API key is configured and the SMTP
// relay mailer otherwise.
func New(cfg common.MailConfig) (Mailer, error) {
	if missing := cfg.MissingVars(); len(missing) > 0 {
		return nil, tabular.Configuration(missing...)
	}

	if cfg.SendGridAPIKey != "" {
		return NewSendGrid(cfg), nil
	}

	return NewSMTP(cfg), nil
}

func recipients(msg *Message) ([]string, error) {
	to := slice.Unique(msg.To)
	if len(to) == 0 {
		return nil, fmt.Errorf("message %q has no recipients", msg.Subject)
	}

	for _, addr := range to {
		if _, err := mail.ParseAddress(addr); err != nil {
			return nil, fmt.Errorf("invalid recipient %q: %w", addr, err)
		}
	}

	return to, nil
}

// compose renders msg as an RFC 5322 message with UTF-8 encoded headers.
func compose(fromName, from string, to []string, msg *Message) []byte {
	var buf bytes.Buffer

	sender := mail.Address{Name: fromName, Address: from}

	fmt.Fprintf(&buf, "From: %s\r\n", sender.String())
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(msg.Body, "\r\n", "\n"), "\n", "\r\n"))

	return buf.Bytes()
}
