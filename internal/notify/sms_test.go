package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shailjakantkaushik-blip/QRSafety/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSMSClientDisabled(t *testing.T) {
	client := NewSMSClient(config.TwilioConfig{}, zap.NewNop())
	assert.False(t, client.Enabled())
	assert.Error(t, client.Send(context.Background(), "+61400000000", "hello"))
}

func TestSMSClientSend(t *testing.T) {
	var gotPath string
	var gotBody, gotTo string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotBody = r.PostForm.Get("Body")
		gotTo = r.PostForm.Get("To")

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM1"}`))
	}))
	defer server.Close()

	client := NewSMSClient(config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+15550001111",
	}, zap.NewNop())
	client.httpClient.SetBaseURL(server.URL)

	err := client.Send(context.Background(), "+61400000000", "test alert")
	require.NoError(t, err)
	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "test alert", gotBody)
	assert.Equal(t, "+61400000000", gotTo)
}

func TestSMSClientProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid number"}`))
	}))
	defer server.Close()

	client := NewSMSClient(config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+15550001111",
	}, zap.NewNop())
	client.httpClient.SetBaseURL(server.URL).SetRetryCount(0)

	err := client.Send(context.Background(), "bad", "test")
	assert.Error(t, err)
}
