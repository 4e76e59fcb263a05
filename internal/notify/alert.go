package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ScanAlert is the payload of a guardian-facing scan notification
type ScanAlert struct {
	IndividualName string
	Latitude       *float64
	Longitude      *float64
	ScannedAt      time.Time
}

// Message is the text stored as the in-app notification row
func (a ScanAlert) Message() string {
	return fmt.Sprintf("QR code for %s was scanned at %s. Location: %s",
		a.IndividualName, a.ScannedAt.Format("Jan 2, 2006 3:04 PM"), a.locationText())
}

// MapsURL returns a Google Maps link to the scan coordinates, or "" when
// coordinates are unavailable
func (a ScanAlert) MapsURL() string {
	if a.Latitude == nil || a.Longitude == nil {
		return ""
	}
	return fmt.Sprintf("https://maps.google.com/?q=%f,%f", *a.Latitude, *a.Longitude)
}

func (a ScanAlert) locationText() string {
	if a.Latitude == nil || a.Longitude == nil {
		return "Location unavailable"
	}
	return fmt.Sprintf("Lat: %f, Lng: %f", *a.Latitude, *a.Longitude)
}

// Alerter delivers scan alerts to guardians over SMS and email, best effort
type Alerter struct {
	sms    *SMSClient
	email  *EmailClient
	logger *zap.Logger
}

// NewAlerter creates an Alerter from the configured providers
func NewAlerter(sms *SMSClient, email *EmailClient, logger *zap.Logger) *Alerter {
	return &Alerter{sms: sms, email: email, logger: logger}
}

// SendScanAlert notifies a guardian that one of their profiles was scanned.
// Delivery failures are logged, never returned: the scan itself has already
// been recorded and the caller must not fail because a provider did.
func (n *Alerter) SendScanAlert(ctx context.Context, phone, email *string, alert ScanAlert) {
	body := fmt.Sprintf("Alert: %s was scanned at %s.", alert.IndividualName,
		alert.ScannedAt.Format("Jan 2, 2006 3:04 PM"))
	if mapsURL := alert.MapsURL(); mapsURL != "" {
		body += " Location: " + mapsURL
	}

	if n.sms.Enabled() && phone != nil && *phone != "" {
		if err := n.sms.Send(ctx, *phone, body); err != nil {
			n.logger.Warn("Failed to send scan alert SMS", zap.Error(err))
		}
	}

	if n.email.Enabled() && email != nil && *email != "" {
		subject := fmt.Sprintf("QR Safety Alert: %s", alert.IndividualName)
		html := fmt.Sprintf("<p>%s</p>", body)
		if mapsURL := alert.MapsURL(); mapsURL != "" {
			html += fmt.Sprintf(`<a href="%s">View on Google Maps</a>`, mapsURL)
		}
		if err := n.email.Send(ctx, *email, subject, body, html); err != nil {
			n.logger.Warn("Failed to send scan alert email", zap.Error(err))
		}
	}
}
