package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKeyFor(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, "qr/6ba7b810-9dad-11d1-80b4-00c04fd430c8.png", KeyFor(id))
}

func TestSignedURLContainsKey(t *testing.T) {
	store, err := New(config.StorageConfig{
		Bucket:    "qr-test",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
	}, zap.NewNop())
	require.NoError(t, err)

	id := uuid.New()
	url, err := store.SignedURL(KeyFor(id))
	require.NoError(t, err)
	assert.Contains(t, url, id.String())
	assert.Contains(t, url, "X-Amz-Expires=60")
}
