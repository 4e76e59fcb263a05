package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/config"
	"go.uber.org/zap"
)

const twilioBaseURL = "https://api.twilio.com"

// SMSClient sends text messages through the Twilio REST API
type SMSClient struct {
	httpClient *resty.Client
	accountSID string
	fromNumber string
	logger     *zap.Logger
}

// NewSMSClient creates a Twilio SMS client. Returns a disabled client when
// credentials are not configured; callers check Enabled before sending.
func NewSMSClient(cfg config.TwilioConfig, logger *zap.Logger) *SMSClient {
	client := resty.New().
		SetBaseURL(twilioBaseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken)

	return &SMSClient{
		httpClient: client,
		accountSID: cfg.AccountSID,
		fromNumber: cfg.FromNumber,
		logger:     logger,
	}
}

// Enabled reports whether Twilio credentials are configured
func (c *SMSClient) Enabled() bool {
	return c.accountSID != "" && c.fromNumber != ""
}

// Send delivers an SMS to the given phone number
func (c *SMSClient) Send(ctx context.Context, to, body string) error {
	if !c.Enabled() {
		return fmt.Errorf("SMS provider not configured")
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"To":   to,
			"From": c.fromNumber,
			"Body": body,
		}).
		Post(fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", c.accountSID))

	if err != nil {
		return fmt.Errorf("SMS request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("SMS provider returned status %d: %s", resp.StatusCode(), resp.String())
	}

	c.logger.Info("Sent SMS", zap.String("to", to))
	return nil
}
