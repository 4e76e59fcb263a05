package handlers

import (
	"context"

	"github.com/shailjakantkaushik-blip/QRSafety/internal/geocode"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/notify"
)

// BlobStore is the storage surface the QR handlers need
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	SignedURL(key string) (string, error)
}

// Geocoder resolves coordinates to an address, best effort
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*geocode.Address, error)
}

// ScanAlerter delivers guardian-facing scan alerts over SMS/email
type ScanAlerter interface {
	SendScanAlert(ctx context.Context, phone, email *string, alert notify.ScanAlert)
}
