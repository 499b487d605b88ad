package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	catalogdomain "github.com/havenrealty/listings-api/internal/catalog/domain"
	"github.com/havenrealty/listings-api/internal/inquiry/domain"
)

const internalInquiryEmailHTML = `<!DOCTYPE html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif;color:#1f2933;">
    <h2 style="margin:0 0 12px;">New %s inquiry</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Regarding:</strong> %s</p>
    <blockquote style="border-left:3px solid #cbd2d9;margin:12px 0;padding-left:12px;">%s</blockquote>
    <p style="font-size:12px;color:#7b8794;">Received %s</p>
  </body>
</html>`

const ackEmailHTML = `<!DOCTYPE html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif;color:#1f2933;">
    <p>Hi %s,</p>
    <p>Thanks for getting in touch. A member of our team will get back to you within one business day.</p>
    <p>%s</p>
  </body>
</html>`

type emailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// AgentDirectory resolves the agent an inquiry is routed to.
type AgentDirectory interface {
	AgentByID(id string) (catalogdomain.Agent, bool)
}

// SendGridConfig configures the mailer.
type SendGridConfig struct {
	APIKey           string
	FromEmail        string
	OfficeEmail      string
	OrganizationName string
	Agents           AgentDirectory
}

// SendGridMailer builds and sends the inquiry e-mails. Each e-mail has its own notifier
// and is retried on its own.
type SendGridMailer struct {
	client emailClient
	cfg    SendGridConfig
	now    func() time.Time
}

func NewSendGridMailer(cfg SendGridConfig) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.APIKey),
		cfg:    cfg,
		now:    time.Now,
	}
}

// AgentNotifier e-mails the responsible agent, or the office when there is none.
func (m *SendGridMailer) AgentNotifier() *SendGridNotifier {
	return &SendGridNotifier{mailer: m, name: "sendgrid-agent", label: "internal inquiry email", build: m.internalMessage}
}

// AcknowledgementNotifier confirms receipt to the visitor.
func (m *SendGridMailer) AcknowledgementNotifier() *SendGridNotifier {
	return &SendGridNotifier{mailer: m, name: "sendgrid-ack", label: "acknowledgement email", build: m.ackMessage}
}

// SendGridNotifier delivers one kind of inquiry e-mail.
type SendGridNotifier struct {
	mailer *SendGridMailer
	name   string
	label  string
	build  func(domain.Inquiry) *mail.SGMailV3
}

func (n *SendGridNotifier) Name() string {
	return n.name
}

func (n *SendGridNotifier) Notify(ctx context.Context, inquiry domain.Inquiry) error {
	if err := n.mailer.send(ctx, n.build(inquiry)); err != nil {
		return fmt.Errorf("%s: %w", n.label, err)
	}
	return nil
}

func (m *SendGridMailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	res, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if res != nil && res.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded status=%d body=%s", res.StatusCode, strings.TrimSpace(res.Body))
	}
	return nil
}

func (m *SendGridMailer) recipient(inquiry domain.Inquiry) *mail.Email {
	if inquiry.AgentID != "" && m.cfg.Agents != nil {
		if agent, ok := m.cfg.Agents.AgentByID(inquiry.AgentID); ok && agent.Email != "" {
			return mail.NewEmail(agent.Name, agent.Email)
		}
	}
	return mail.NewEmail(m.cfg.OrganizationName+" Office", m.cfg.OfficeEmail)
}

func (m *SendGridMailer) internalMessage(inquiry domain.Inquiry) *mail.SGMailV3 {
	from := mail.NewEmail(m.cfg.OrganizationName+" Inquiry-Bot", m.cfg.FromEmail)
	subject := fmt.Sprintf("[Inquiry][%s] %s", inquiry.Kind, inquiry.Summary())

	phone := inquiry.Phone
	if phone == "" {
		phone = "not given"
	}
	plain := fmt.Sprintf("%s\n\nFrom: %s <%s>\nPhone: %s\n\n%s",
		inquiry.Summary(), inquiry.Name, inquiry.Email, phone, inquiry.Message)
	body := fmt.Sprintf(internalInquiryEmailHTML,
		html.EscapeString(string(inquiry.Kind)),
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(phone),
		html.EscapeString(inquiry.Summary()),
		html.EscapeString(inquiry.Message),
		m.now().UTC().Format(time.RFC1123Z),
	)

	msg := mail.NewSingleEmail(from, subject, m.recipient(inquiry), plain, body)
	msg.SetReplyTo(mail.NewEmail(inquiry.Name, inquiry.Email))
	return msg
}

func (m *SendGridMailer) ackMessage(inquiry domain.Inquiry) *mail.SGMailV3 {
	from := mail.NewEmail(m.cfg.OrganizationName, m.cfg.FromEmail)
	to := mail.NewEmail(inquiry.Name, inquiry.Email)
	subject := fmt.Sprintf("Thanks for contacting %s", m.cfg.OrganizationName)
	plain := fmt.Sprintf("Hi %s,\n\nThanks for getting in touch. A member of our team will get back to you within one business day.\n\n%s",
		inquiry.Name, m.cfg.OrganizationName)
	body := fmt.Sprintf(ackEmailHTML, html.EscapeString(inquiry.Name), html.EscapeString(m.cfg.OrganizationName))
	return mail.NewSingleEmail(from, subject, to, plain, body)
}
