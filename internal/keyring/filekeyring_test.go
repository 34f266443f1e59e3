package keyring

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confide/internal/directory"
	"confide/internal/directory/mocks"
	"confide/pkg/cryptobox"
	appErrors "confide/pkg/errors"
	"confide/pkg/logger"
)

const passphrase = "correct horse battery staple"

func localKeyring(t *testing.T) *FileKeyring {
	t.Helper()
	k, err := NewFileKeyring(t.TempDir(), uuid.New(), nil, logger.Logger{})
	require.NoError(t, err)
	return k
}

func TestFileKeyring_Initialize(t *testing.T) {
	t.Run("generates, persists and registers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDir := mocks.NewMockDirectoryUsecase(ctrl)
		identity := uuid.New()
		k, err := NewFileKeyring(t.TempDir(), identity, mockDir, logger.Logger{})
		require.NoError(t, err)

		mockDir.EXPECT().
			PutPublicKey(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd directory.PutPublicKeyCommand) (*directory.KeyEntryDTO, error) {
				assert.Equal(t, identity, cmd.Identity)
				assert.Len(t, cmd.PublicKey, cryptobox.KeySize)
				return &directory.KeyEntryDTO{Identity: identity, PublicKey: cmd.PublicKey, KeyVersion: 1}, nil
			})

		info, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		assert.True(t, info.Registered)
		assert.Len(t, info.PublicKey, cryptobox.KeySize)
		assert.NotEmpty(t, info.Fingerprint)
	})

	t.Run("idempotent: second call returns the stored pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDir := mocks.NewMockDirectoryUsecase(ctrl)
		k, err := NewFileKeyring(t.TempDir(), uuid.New(), mockDir, logger.Logger{})
		require.NoError(t, err)

		// Registration happens exactly once.
		mockDir.EXPECT().
			PutPublicKey(gomock.Any(), gomock.Any()).
			Return(&directory.KeyEntryDTO{KeyVersion: 1}, nil).
			Times(1)

		first, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		second, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		assert.Equal(t, first.PublicKey, second.PublicKey)
	})

	t.Run("works locally without a directory", func(t *testing.T) {
		k := localKeyring(t)
		info, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		assert.False(t, info.Registered)
	})
}

func TestFileKeyring_Unlock(t *testing.T) {
	k := localKeyring(t)
	_, err := k.Initialize(context.Background(), passphrase)
	require.NoError(t, err)

	t.Run("returns a usable pair", func(t *testing.T) {
		pair, err := k.Unlock(passphrase)
		require.NoError(t, err)

		// Seal to self and open to prove both halves match.
		ct, nonce, err := cryptobox.Seal([]byte("hello"), pair.Private, pair.Public)
		require.NoError(t, err)
		pt, err := cryptobox.Open(ct, nonce, pair.Public, pair.Private)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), pt)
	})

	t.Run("wrong passphrase fails closed", func(t *testing.T) {
		_, err := k.Unlock("not the passphrase")
		assert.ErrorIs(t, err, appErrors.ErrKeyringLocked)
	})

	t.Run("missing keystore", func(t *testing.T) {
		empty := localKeyring(t)
		_, err := empty.Unlock(passphrase)
		assert.ErrorIs(t, err, appErrors.ErrKeyStorageUnavailable)
	})
}

func TestFileKeyring_Rotate(t *testing.T) {
	t.Run("replaces the key and archives the old one", func(t *testing.T) {
		k := localKeyring(t)
		before, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		oldPair, err := k.Unlock(passphrase)
		require.NoError(t, err)

		after, err := k.Rotate(context.Background(), passphrase)
		require.NoError(t, err)
		assert.NotEqual(t, before.PublicKey, after.PublicKey)

		// Ciphertext sealed against the old key stays readable through the
		// archive.
		ct, nonce, err := cryptobox.Seal([]byte("old message"), oldPair.Private, oldPair.Public)
		require.NoError(t, err)

		archived, err := k.ArchivedKeys(passphrase)
		require.NoError(t, err)
		require.Len(t, archived, 1)
		pt, err := cryptobox.Open(ct, nonce, oldPair.Public, archived[0])
		require.NoError(t, err)
		assert.Equal(t, []byte("old message"), pt)
	})

	t.Run("archives accumulate oldest-first", func(t *testing.T) {
		k := localKeyring(t)
		first, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		second, err := k.Rotate(context.Background(), passphrase)
		require.NoError(t, err)
		_, err = k.Rotate(context.Background(), passphrase)
		require.NoError(t, err)

		archived, err := k.ArchivedKeys(passphrase)
		require.NoError(t, err)
		require.Len(t, archived, 2)

		firstPub, err := archived[0].Public()
		require.NoError(t, err)
		secondPub, err := archived[1].Public()
		require.NoError(t, err)
		assert.Equal(t, first.PublicKey, firstPub.Bytes())
		assert.Equal(t, second.PublicKey, secondPub.Bytes())
	})

	t.Run("publishes the new key to the directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDir := mocks.NewMockDirectoryUsecase(ctrl)
		k, err := NewFileKeyring(t.TempDir(), uuid.New(), mockDir, logger.Logger{})
		require.NoError(t, err)

		var registered [][]byte
		mockDir.EXPECT().
			PutPublicKey(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd directory.PutPublicKeyCommand) (*directory.KeyEntryDTO, error) {
				registered = append(registered, cmd.PublicKey)
				return &directory.KeyEntryDTO{KeyVersion: int64(len(registered))}, nil
			}).
			Times(2)

		_, err = k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		after, err := k.Rotate(context.Background(), passphrase)
		require.NoError(t, err)

		require.Len(t, registered, 2)
		assert.Equal(t, after.PublicKey, registered[1])
	})

	t.Run("requires an initialized keystore", func(t *testing.T) {
		k := localKeyring(t)
		_, err := k.Rotate(context.Background(), passphrase)
		assert.Equal(t, appErrors.CodeFailedPrecondition, appErrors.CodeOf(err))
	})

	t.Run("wrong passphrase touches nothing", func(t *testing.T) {
		k := localKeyring(t)
		before, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)

		_, err = k.Rotate(context.Background(), "wrong")
		assert.ErrorIs(t, err, appErrors.ErrKeyringLocked)

		still, err := k.Initialize(context.Background(), passphrase)
		require.NoError(t, err)
		assert.Equal(t, before.PublicKey, still.PublicKey)
	})
}

func TestFileKeyring_CorruptEnvelope(t *testing.T) {
	k := localKeyring(t)
	_, err := k.Initialize(context.Background(), passphrase)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(k.dir, identityFile), []byte("not an envelope"), 0o600))

	_, err = k.Unlock(passphrase)
	assert.ErrorIs(t, err, appErrors.ErrKeyStorageUnavailable)
	_, err = k.Initialize(context.Background(), passphrase)
	assert.ErrorIs(t, err, appErrors.ErrKeyStorageUnavailable)
}
