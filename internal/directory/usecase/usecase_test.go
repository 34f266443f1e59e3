package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confide/internal/directory"
	"confide/internal/directory/mocks"
	"confide/internal/directory/model"
	"confide/internal/directory/repository"
	"confide/pkg/cryptobox"
	appErrors "confide/pkg/errors"
	"confide/pkg/logger"
)

func TestDirectoryUsecase_PutPublicKey(t *testing.T) {
	identity := uuid.New()
	pair, err := cryptobox.GenerateKeyPair()
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewDirectoryUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			UpsertPublicKey(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *model.KeyEntry) error {
				assert.Equal(t, identity, entry.UserID)
				assert.Equal(t, pair.Public.Bytes(), entry.PublicKey)
				entry.KeyVersion = 1
				entry.UpdatedAt = time.Now()
				return nil
			})

		dto, err := uc.PutPublicKey(context.Background(), directory.PutPublicKeyCommand{
			Identity:  identity,
			PublicKey: pair.Public.Bytes(),
		})
		require.NoError(t, err)
		assert.Equal(t, identity, dto.Identity)
		assert.Equal(t, int64(1), dto.KeyVersion)
		assert.Equal(t, cryptobox.Fingerprint(pair.Public), dto.Fingerprint)
	})

	t.Run("rejects malformed key before touching the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewDirectoryUsecase(mockRepo, logger.Logger{})

		_, err := uc.PutPublicKey(context.Background(), directory.PutPublicKeyCommand{
			Identity:  identity,
			PublicKey: []byte("too short"),
		})
		assert.ErrorIs(t, err, appErrors.ErrMalformedPublicKey)
	})

	t.Run("rejects nil identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewDirectoryUsecase(mockRepo, logger.Logger{})

		_, err := uc.PutPublicKey(context.Background(), directory.PutPublicKeyCommand{
			PublicKey: pair.Public.Bytes(),
		})
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("repository failure maps to internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewDirectoryUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			UpsertPublicKey(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		_, err := uc.PutPublicKey(context.Background(), directory.PutPublicKeyCommand{
			Identity:  identity,
			PublicKey: pair.Public.Bytes(),
		})
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func TestDirectoryUsecase_GetPublicKey(t *testing.T) {
	identity := uuid.New()
	pair, _ := cryptobox.GenerateKeyPair()

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewDirectoryUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			GetPublicKey(gomock.Any(), identity).
			Return(&model.KeyEntry{
				UserID:     identity,
				PublicKey:  pair.Public.Bytes(),
				KeyVersion: 3,
			}, nil)

		dto, err := uc.GetPublicKey(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, pair.Public.Bytes(), dto.PublicKey)
		assert.Equal(t, int64(3), dto.KeyVersion)
	})

	t.Run("never-registered identity maps to ErrKeyNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewDirectoryUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			GetPublicKey(gomock.Any(), identity).
			Return(nil, repository.ErrEntryNotFound)

		_, err := uc.GetPublicKey(context.Background(), identity)
		assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
	})
}

func TestDirectoryUsecase_KeyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockKeyRepository(ctrl)
	uc := NewDirectoryUsecase(mockRepo, logger.Logger{})

	identity := uuid.New()
	pair, _ := cryptobox.GenerateKeyPair()

	mockRepo.EXPECT().
		ListKeyHistory(gomock.Any(), identity).
		Return([]model.KeyEntryArchive{
			{UserID: identity, PublicKey: pair.Public.Bytes(), KeyVersion: 2},
			{UserID: identity, PublicKey: pair.Public.Bytes(), KeyVersion: 1},
		}, nil)

	history, err := uc.KeyHistory(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(2), history[0].KeyVersion)
	assert.NotEmpty(t, history[0].Fingerprint)
}
