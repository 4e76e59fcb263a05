package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/shailjakantkaushik-blip/QRSafety/internal/config"
	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// EmailClient sends alert emails over SMTP
type EmailClient struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

// NewEmailClient creates an SMTP email client. Returns a disabled client
// when SMTP is not configured; callers check Enabled before sending.
func NewEmailClient(cfg config.SMTPConfig, logger *zap.Logger) *EmailClient {
	return &EmailClient{cfg: cfg, logger: logger}
}

// Enabled reports whether SMTP credentials are configured
func (c *EmailClient) Enabled() bool {
	return c.cfg.Host != "" && c.cfg.From != ""
}

// Send delivers an email with plain-text and HTML bodies
func (c *EmailClient) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if !c.Enabled() {
		return fmt.Errorf("email provider not configured")
	}

	msg := mail.NewMsg()
	if err := msg.From(c.cfg.From); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient email: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	if htmlBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)
	}

	client, err := mail.NewClient(
		c.cfg.Host,
		mail.WithPort(c.cfg.Port),
		mail.WithUsername(c.cfg.Username),
		mail.WithPassword(c.cfg.Password),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info("Sent email", zap.String("to", to), zap.String("subject", subject))
	return nil
}
