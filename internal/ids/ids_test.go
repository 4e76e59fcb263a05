package ids

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicID(t *testing.T) {
	id, err := NewPublicID()
	require.NoError(t, err)
	assert.Len(t, id, PublicIDLength)

	_, err = hex.DecodeString(id)
	assert.NoError(t, err, "public id should be lowercase hex")
}

func TestNewPublicIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewPublicID()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate public id generated")
		seen[id] = true
	}
}
