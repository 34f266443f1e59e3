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

	"confide/internal/message"
	"confide/internal/message/mocks"
	"confide/internal/message/model"
	"confide/internal/message/repository"
	appErrors "confide/pkg/errors"
	"confide/pkg/logger"
)

func validNonce() []byte { return make([]byte, 24) }

func TestMessageUsecase_Append(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				assert.Equal(t, model.ConversationKey(alice, bob), msg.ConversationKey)
				msg.ID = uuid.New()
				msg.CreatedAt = time.Now()
				return nil
			})

		dto, err := uc.Append(context.Background(), message.AppendCommand{
			SenderID:    alice,
			RecipientID: bob,
			Ciphertext:  []byte("sealed"),
			Nonce:       validNonce(),
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, dto.ID)
		assert.Nil(t, dto.ReadAt)
	})

	t.Run("rejects bad nonce length before storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		_, err := uc.Append(context.Background(), message.AppendCommand{
			SenderID:    alice,
			RecipientID: bob,
			Ciphertext:  []byte("sealed"),
			Nonce:       []byte("short"),
		})
		assert.ErrorIs(t, err, appErrors.ErrMalformedNonce)
	})

	t.Run("rejects empty ciphertext", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		_, err := uc.Append(context.Background(), message.AppendCommand{
			SenderID:    alice,
			RecipientID: bob,
			Nonce:       validNonce(),
		})
		assert.ErrorIs(t, err, appErrors.ErrEmptyCiphertext)
	})

	t.Run("repository failure maps to internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := uc.Append(context.Background(), message.AppendCommand{
			SenderID:    alice,
			RecipientID: bob,
			Ciphertext:  []byte("sealed"),
			Nonce:       validNonce(),
		})
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func TestMessageUsecase_ListConversation(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	key := model.ConversationKey(alice, bob)

	t.Run("derives the same conversation key for either caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			ListConversation(gomock.Any(), key, nil, 50).
			Return([]model.Message{}, nil).
			Times(2)

		_, err := uc.ListConversation(context.Background(), message.ListConversationQuery{CallerID: alice, OtherID: bob})
		require.NoError(t, err)
		_, err = uc.ListConversation(context.Background(), message.ListConversationQuery{CallerID: bob, OtherID: alice})
		require.NoError(t, err)
	})

	t.Run("full page yields a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		now := time.Now()
		msgs := []model.Message{
			{ID: uuid.New(), SenderID: alice, RecipientID: bob, CreatedAt: now.Add(-time.Minute)},
			{ID: uuid.New(), SenderID: bob, RecipientID: alice, CreatedAt: now},
		}
		mockRepo.EXPECT().
			ListConversation(gomock.Any(), key, nil, 2).
			Return(msgs, nil)

		page, err := uc.ListConversation(context.Background(), message.ListConversationQuery{
			CallerID: alice, OtherID: bob, Limit: 2,
		})
		require.NoError(t, err)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, msgs[1].ID, page.NextCursor.ID)
		assert.Equal(t, msgs[1].CreatedAt, page.NextCursor.CreatedAt)
	})

	t.Run("short page has no next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().
			ListConversation(gomock.Any(), key, nil, 50).
			Return([]model.Message{{ID: uuid.New()}}, nil)

		page, err := uc.ListConversation(context.Background(), message.ListConversationQuery{CallerID: alice, OtherID: bob})
		require.NoError(t, err)
		assert.Nil(t, page.NextCursor)
	})
}

func TestMessageUsecase_MarkRead(t *testing.T) {
	msgID, bob := uuid.New(), uuid.New()

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		readAt := time.Now()
		mockRepo.EXPECT().
			MarkRead(gomock.Any(), msgID, bob).
			Return(&model.Message{ID: msgID, RecipientID: bob, ReadAt: &readAt}, nil)

		dto, err := uc.MarkRead(context.Background(), msgID, bob)
		require.NoError(t, err)
		require.NotNil(t, dto.ReadAt)
	})

	t.Run("maps repository sentinels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockMessageRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().MarkRead(gomock.Any(), msgID, bob).Return(nil, repository.ErrMessageNotFound)
		_, err := uc.MarkRead(context.Background(), msgID, bob)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)

		mockRepo.EXPECT().MarkRead(gomock.Any(), msgID, bob).Return(nil, repository.ErrNotRecipient)
		_, err = uc.MarkRead(context.Background(), msgID, bob)
		assert.ErrorIs(t, err, appErrors.ErrNotRecipient)
	})
}
