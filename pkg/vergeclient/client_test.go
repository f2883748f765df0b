package vergeclient_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/fivetwenty-io/verge-client/pkg/vergeclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := vergeclient.New(context.Background(), nil)
		require.ErrorIs(t, err, verge.ErrConfigRequired)
	})

	t.Run("requires endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := vergeclient.New(context.Background(), &verge.Config{})
		require.ErrorIs(t, err, verge.ErrEndpointRequired)
	})

	t.Run("normalizes endpoint", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			endpoint string
			expected string
		}{
			{name: "bare host gets https", endpoint: "verge.example.com", expected: "https://verge.example.com"},
			{name: "trailing slash trimmed", endpoint: "https://verge.example.com/", expected: "https://verge.example.com"},
			{name: "http preserved", endpoint: "http://verge.example.com", expected: "http://verge.example.com"},
			{name: "already normalized", endpoint: "https://verge.example.com", expected: "https://verge.example.com"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				config := &verge.Config{
					APIEndpoint: tt.endpoint,
					Token:       "token-123",
				}

				client, err := vergeclient.New(context.Background(), config)
				require.NoError(t, err)
				assert.NotNil(t, client)
				assert.Equal(t, tt.expected, config.APIEndpoint)
			})
		}
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := vergeclient.NewWithToken(context.Background(), "verge.example.com", "token-123")
	require.NoError(t, err)
	assert.NotNil(t, client.VMs())
}

func TestNewWithPassword(t *testing.T) {
	t.Parallel()

	client, err := vergeclient.NewWithPassword(context.Background(), "verge.example.com", "admin", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client.Tags())
}
