package forge_test

import (
	"testing"

	"github.com/forgekit/prfetch/pkg/config"
	"github.com/forgekit/prfetch/pkg/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("default base URL", func(t *testing.T) {
		client, err := forge.NewClient(&config.Config{
			APIBaseURL: config.DefaultAPIBaseURL,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://api.github.com/", client.Raw().BaseURL.String())
	})

	t.Run("gitea base URL gains trailing slash", func(t *testing.T) {
		client, err := forge.NewClient(&config.Config{
			APIBaseURL: "https://gitea.example.com/api/v1",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://gitea.example.com/api/v1/", client.Raw().BaseURL.String())
	})

	t.Run("invalid base URL", func(t *testing.T) {
		_, err := forge.NewClient(&config.Config{
			APIBaseURL: "://not-a-url",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, forge.ErrInvalidBaseURL)
	})

	t.Run("token is optional", func(t *testing.T) {
		client, err := forge.NewClient(&config.Config{
			APIBaseURL: config.DefaultAPIBaseURL,
			Token:      "",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
