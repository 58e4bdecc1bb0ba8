package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/doitintl/hello/agent-data-api/common"
)

// ErrNoStartTLS is returned when the relay cannot upgrade the connection. No
// credentials or message are sent over a plain connection.
var ErrNoStartTLS = errors.New("smtp relay does not offer STARTTLS")

// SMTPMailer sends through an SMTP relay, always upgrading the connection
// with STARTTLS.
type SMTPMailer struct {
	host     string
	addr     string
	username string
	password string
	from     string
	fromName string
}

func NewSMTP(cfg common.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPServer,
		addr:     net.JoinHostPort(cfg.SMTPServer, strconv.Itoa(cfg.SMTPPort)),
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.Sender,
		fromName: cfg.SenderName,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	to, err := recipients(msg)
	if err != nil {
		return err
	}

	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", m.addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return fmt.Errorf("%s: %w", m.addr, ErrNoStartTLS)
	}

	if err := c.StartTLS(&tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	if m.username != "" {
		if err := c.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err := c.Mail(m.from); err != nil {
		return err
	}

	for _, addr := range to {
		if err := c.Rcpt(addr); err != nil {
			return fmt.Errorf("rcpt %s: %w", addr, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}

	if _, err := w.Write(compose(m.fromName, m.from, to, msg)); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	return c.Quit()
}
