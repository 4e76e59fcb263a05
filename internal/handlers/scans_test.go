package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/shailjakantkaushik-blip/QRSafety/internal/geocode"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/notify"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubGeocoder struct {
	addr *geocode.Address
}

func (s *stubGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geocode.Address, error) {
	return s.addr, nil
}

type stubAlerter struct {
	calls int
}

func (s *stubAlerter) SendScanAlert(ctx context.Context, phone, email *string, alert notify.ScanAlert) {
	s.calls++
}

func TestRecordScanLocationMissingIndividualID(t *testing.T) {
	handler := RecordScanLocation(&stubGeocoder{}, &stubAlerter{}, zap.NewNop())

	w := postJSON(handler, "/api/qr-scan-location", `{"latitude": -33.8, "longitude": 151.2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing or invalid individual_id")
}

func TestRecordScanLocationMalformedIndividualID(t *testing.T) {
	handler := RecordScanLocation(&stubGeocoder{}, &stubAlerter{}, zap.NewNop())

	w := postJSON(handler, "/api/qr-scan-location", `{"individual_id": "not-a-uuid"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing or invalid individual_id")
}
