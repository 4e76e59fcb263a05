package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"display_name": "Sydney, New South Wales, Australia",
			"address": {"city": "Sydney", "state": "New South Wales", "country": "Australia"}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	addr, err := client.Reverse(context.Background(), -33.8688, 151.2093)
	require.NoError(t, err)
	assert.Equal(t, "Sydney", addr.City)
	assert.Equal(t, "New South Wales", addr.Region)
	assert.Equal(t, "Australia", addr.Country)
}

func TestReverseFallsBackToTown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address": {"town": "Katoomba", "state": "New South Wales", "country": "Australia"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	addr, err := client.Reverse(context.Background(), -33.7, 150.3)
	require.NoError(t, err)
	assert.Equal(t, "Katoomba", addr.City)
}

func TestReverseServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	_, err := client.Reverse(context.Background(), 0, 0)
	assert.Error(t, err)
}
