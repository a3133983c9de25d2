package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

// SendGridSender posts messages to the SendGrid v3 mail API.
type SendGridSender struct {
	apiKey string
	host   string
	from   *mail.Email
}

func NewSendGridSender(apiKey, fromAddress, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey: apiKey,
		host:   sendGridHost,
		from:   mail.NewEmail(fromName, fromAddress),
	}
}

// WithHost points the sender at another API host.
func (s *SendGridSender) WithHost(host string) *SendGridSender {
	s.host = host
	return s
}

func (s *SendGridSender) Send(ctx context.Context, recipient string, msg Message) (bool, error) {
	m := mail.NewSingleEmail(s.from, msg.Subject, mail.NewEmail("", recipient), msg.Text, msg.HTML)

	req := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	req.Method = "POST"
	req.Body = mail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return false, fmt.Errorf("sendgrid request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return true, nil
}
