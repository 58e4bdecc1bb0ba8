package mailer

import (
	"context"
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/doitintl/hello/agent-data-api/common"
)

const mailSendPath = "/v3/mail/send"

// SendGridMailer sends through the SendGrid v3 API.
type SendGridMailer struct {
	apiKey   string
	host     string
	from     string
	fromName string
}

func NewSendGrid(cfg common.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		apiKey:   cfg.SendGridAPIKey,
		host:     cfg.SendGridHost,
		from:     cfg.Sender,
		fromName: cfg.SenderName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg *Message) error {
	to, err := recipients(msg)
	if err != nil {
		return err
	}

	v3 := mail.NewV3Mail()
	v3.SetFrom(mail.NewEmail(m.fromName, m.from))
	v3.Subject = msg.Subject
	v3.AddContent(mail.NewContent("text/plain", msg.Body))

	enable := false
	v3.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	for _, addr := range to {
		personalization.AddTos(mail.NewEmail("", addr))
	}

	v3.AddPersonalizations(personalization)

	request := sendgrid.GetRequest(m.apiKey, mailSendPath, m.host)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(v3)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}

	return nil
}
