package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is a plain text email.
type Message struct {
	To          string
	ToName      string
	ReplyTo     string
	ReplyToName string
	Subject     string
	Body        string
}

// Mailer sends email on behalf of the portal.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// MailError is a non-2xx answer from the mail provider.
type MailError struct {
	Status  int
	Message string
}

func (e *MailError) Error() string {
	return fmt.Sprintf("mail provider returned %d: %s", e.Status, e.Message)
}

// Ensure SendGridMailer implements Mailer.
var _ Mailer = (*SendGridMailer)(nil)

// SendGridMailer sends through the SendGrid v3 mail API.
type SendGridMailer struct {
	apiKey   string
	baseURL  string
	from     string
	fromName string
}

// NewSendGridMailer returns a mailer sending from the given address.
// An empty baseURL means the public SendGrid API.
func NewSendGridMailer(apiKey, baseURL, from, fromName string) *SendGridMailer {
	if baseURL == "" {
		baseURL = "https://api.sendgrid.com"
	}
	return &SendGridMailer{
		apiKey:   apiKey,
		baseURL:  strings.TrimRight(baseURL, "/"),
		from:     from,
		fromName: fromName,
	}
}

func (s *SendGridMailer) Send(ctx context.Context, m Message) error {
	msg := mail.NewV3MailInit(
		mail.NewEmail(s.fromName, s.from),
		m.Subject,
		mail.NewEmail(m.ToName, m.To),
		mail.NewContent("text/plain", m.Body),
	)
	if m.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail(m.ReplyToName, m.ReplyTo))
	}

	req := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.baseURL)
	req.Method = "POST"
	req.Body = mail.GetRequestBody(msg)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &MailError{Status: resp.StatusCode, Message: strings.TrimSpace(resp.Body)}
	}
	return nil
}
