package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func float64Ptr(f float64) *float64 { return &f }

func TestScanAlertMessage(t *testing.T) {
	scannedAt := time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC)

	alert := ScanAlert{
		IndividualName: "Aarav K.",
		Latitude:       float64Ptr(-33.8688),
		Longitude:      float64Ptr(151.2093),
		ScannedAt:      scannedAt,
	}

	msg := alert.Message()
	assert.Contains(t, msg, "QR code for Aarav K. was scanned at")
	assert.Contains(t, msg, "Mar 14, 2025 3:09 PM")
	assert.Contains(t, msg, "Lat: -33.868800, Lng: 151.209300")
}

func TestScanAlertMessageNoLocation(t *testing.T) {
	alert := ScanAlert{
		IndividualName: "Aarav K.",
		ScannedAt:      time.Now(),
	}

	assert.Contains(t, alert.Message(), "Location unavailable")
	assert.Empty(t, alert.MapsURL())
}

func TestScanAlertMapsURL(t *testing.T) {
	alert := ScanAlert{
		Latitude:  float64Ptr(-33.8688),
		Longitude: float64Ptr(151.2093),
	}

	assert.Equal(t, "https://maps.google.com/?q=-33.868800,151.209300", alert.MapsURL())
}
