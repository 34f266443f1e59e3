package usecase

import (
	"context"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"confide/internal/message"
	"confide/internal/message/model"
	"confide/internal/message/repository"
	"confide/pkg/cryptobox"
	"confide/pkg/errors"
	"confide/pkg/logger"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type MessageUsecase struct {
	repo   message.MessageRepository
	logger logger.Logger
}

func NewMessageUsecase(repo message.MessageRepository, logger logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, logger: logger}
}

func (uc *MessageUsecase) Append(ctx context.Context, cmd message.AppendCommand) (*message.MessageDTO, error) {
	if cmd.SenderID == uuid.Nil || cmd.RecipientID == uuid.Nil {
		return nil, errors.InvalidArg("sender and recipient are required")
	}
	if len(cmd.Ciphertext) == 0 {
		return nil, errors.ErrEmptyCiphertext
	}
	if len(cmd.Nonce) != cryptobox.NonceSize {
		return nil, errors.ErrMalformedNonce
	}

	msg := &model.Message{
		SenderID:        cmd.SenderID,
		RecipientID:     cmd.RecipientID,
		ConversationKey: model.ConversationKey(cmd.SenderID, cmd.RecipientID),
		Ciphertext:      cmd.Ciphertext,
		Nonce:           cmd.Nonce,
	}
	if err := uc.repo.Append(ctx, msg); err != nil {
		uc.logger.Error("failed to append message", "sender", cmd.SenderID, "recipient", cmd.RecipientID, "err", err)
		return nil, errors.Internal("failed to store message")
	}
	return toDTO(msg), nil
}

func (uc *MessageUsecase) ListConversation(ctx context.Context, q message.ListConversationQuery) (*message.ConversationPageDTO, error) {
	if q.CallerID == uuid.Nil || q.OtherID == uuid.Nil {
		return nil, errors.InvalidArg("both conversation parties are required")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	key := model.ConversationKey(q.CallerID, q.OtherID)
	msgs, err := uc.repo.ListConversation(ctx, key, q.Cursor, limit)
	if err != nil {
		uc.logger.Error("failed to list conversation", "conversation", key, "err", err)
		return nil, errors.Internal("failed to load conversation")
	}

	page := &message.ConversationPageDTO{Messages: make([]message.MessageDTO, 0, len(msgs))}
	for i := range msgs {
		page.Messages = append(page.Messages, *toDTO(&msgs[i]))
	}
	if len(msgs) == limit {
		last := msgs[len(msgs)-1]
		page.NextCursor = &message.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return page, nil
}

func (uc *MessageUsecase) MarkRead(ctx context.Context, messageID, readerID uuid.UUID) (*message.MessageDTO, error) {
	if messageID == uuid.Nil || readerID == uuid.Nil {
		return nil, errors.InvalidArg("message id and reader are required")
	}

	msg, err := uc.repo.MarkRead(ctx, messageID, readerID)
	if err != nil {
		switch {
		case pkgerrors.Is(err, repository.ErrMessageNotFound):
			return nil, errors.ErrMessageNotFound
		case pkgerrors.Is(err, repository.ErrNotRecipient):
			return nil, errors.ErrNotRecipient
		default:
			uc.logger.Error("failed to mark message read", "message_id", messageID, "err", err)
			return nil, errors.Internal("failed to mark message read")
		}
	}
	return toDTO(msg), nil
}

func toDTO(msg *model.Message) *message.MessageDTO {
	return &message.MessageDTO{
		ID:          msg.ID,
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		Ciphertext:  msg.Ciphertext,
		Nonce:       msg.Nonce,
		CreatedAt:   msg.CreatedAt,
		ReadAt:      msg.ReadAt,
	}
}
