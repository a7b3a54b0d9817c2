package redis

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("empty url disables redis", func(t *testing.T) {
		client, err := NewClient("")
		require.NoError(t, err)
		assert.Nil(t, client)
		assert.NoError(t, client.Close())
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewClient("not-a-url://")
		assert.ErrorContains(t, err, "parse redis url")
	})

	t.Run("live server", func(t *testing.T) {
		url := os.Getenv("TEST_REDIS_URL")
		if url == "" {
			t.Skip("TEST_REDIS_URL not set")
		}
		client, err := NewClient(url)
		require.NoError(t, err)
		defer client.Close()
	})
}
