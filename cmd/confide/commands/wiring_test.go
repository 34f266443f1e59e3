package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confide/config"
	"confide/internal/message/atrest"
	"confide/internal/message/blob"
)

func TestNewAtRestCipher(t *testing.T) {
	t.Run("disabled yields passthrough", func(t *testing.T) {
		cipher, err := newAtRestCipher(&config.Config{})
		require.NoError(t, err)
		assert.Nil(t, cipher)
	})

	t.Run("enabled with a valid key", func(t *testing.T) {
		key, err := atrest.GenerateKey()
		require.NoError(t, err)

		cipher, err := newAtRestCipher(&config.Config{
			AtRest: config.AtRest{Enabled: true, Key: key},
		})
		require.NoError(t, err)
		require.NotNil(t, cipher)

		sealed, version, err := cipher.Seal([]byte("payload"))
		require.NoError(t, err)
		require.NotNil(t, version)
		opened, err := cipher.Open(sealed, version)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), opened)
	})

	t.Run("enabled without a key fails", func(t *testing.T) {
		_, err := newAtRestCipher(&config.Config{AtRest: config.AtRest{Enabled: true}})
		assert.Error(t, err)
	})
}

func TestNewBlobStore(t *testing.T) {
	t.Run("no backend configured", func(t *testing.T) {
		store, err := newBlobStore(context.Background(), &config.Config{})
		require.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("local directory", func(t *testing.T) {
		store, err := newBlobStore(context.Background(), &config.Config{
			Blob: config.Blob{Dir: t.TempDir()},
		})
		require.NoError(t, err)
		_, ok := store.(*blob.LocalStore)
		assert.True(t, ok)
	})
}
