package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"confide/internal/message"
	"confide/internal/message/atrest"
	"confide/internal/message/blob"
	"confide/internal/message/model"
	"confide/pkg/logger"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrNotRecipient    = errors.New("reader is not the message recipient")
)

const defaultInlineLimit = 64 * 1024

// MessageRepository persists ciphertext envelopes. cipher is the optional
// server-held at-rest layer; blobs (optional) receives payloads larger than
// inlineLimit.
type MessageRepository struct {
	db          *bun.DB
	cipher      *atrest.Cipher
	blobs       blob.Store
	inlineLimit int
	logger      *logger.Logger
}

func NewMessageRepository(db *bun.DB, cipher *atrest.Cipher, blobs blob.Store, inlineLimit int, logger logger.Logger) *MessageRepository {
	if inlineLimit <= 0 {
		inlineLimit = defaultInlineLimit
	}
	return &MessageRepository{
		db:          db,
		cipher:      cipher,
		blobs:       blobs,
		inlineLimit: inlineLimit,
		logger:      &logger,
	}
}

func (r *MessageRepository) Append(ctx context.Context, msg *model.Message) error {
	// At-rest failure blocks the write: a row is never stored with the
	// layer silently missing.
	sealed, version, err := r.cipher.Seal(msg.Ciphertext)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Append.AtRestSeal")
	}
	msg.ServerEncryptionVersion = version

	if r.blobs != nil && len(sealed) > r.inlineLimit {
		blobID := uuid.New().String()
		if err := r.blobs.Save(ctx, blobID, sealed); err != nil {
			return errors.Wrap(err, "messageRepo.Append.BlobSave")
		}
		msg.BlobID = &blobID
		msg.Ciphertext = nil
	} else {
		msg.Ciphertext = sealed
	}

	_, err = r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Append.Insert")
	}

	// Hand the caller back the client-level ciphertext, not the stored form.
	return r.rehydrate(ctx, msg)
}

func (r *MessageRepository) ListConversation(ctx context.Context, conversationKey string, cursor *message.Cursor, limit int) ([]model.Message, error) {
	var msgs []model.Message

	q := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_key = ?", conversationKey).
		Order("created_at ASC", "id ASC").
		Limit(limit)

	if cursor != nil {
		q = q.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListConversation.Scan")
	}

	for i := range msgs {
		if err := r.rehydrate(ctx, &msgs[i]); err != nil {
			return nil, err
		}
	}
	return msgs, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, messageID, readerID uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(msg).
			Where("id = ?", messageID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMessageNotFound
			}
			return errors.Wrap(err, "messageRepo.MarkRead.Select")
		}

		if msg.RecipientID != readerID {
			return ErrNotRecipient
		}

		// Already read: idempotent no-op.
		if msg.ReadAt != nil {
			return nil
		}

		_, err = tx.NewUpdate().
			Model(msg).
			Set("read_at = current_timestamp").
			Where("id = ? AND read_at IS NULL", messageID).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messageRepo.MarkRead.Update")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.rehydrate(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// rehydrate restores the client-level ciphertext on a loaded row: fetches the
// blob when offloaded, then removes the at-rest layer.
func (r *MessageRepository) rehydrate(ctx context.Context, msg *model.Message) error {
	stored := msg.Ciphertext
	if msg.BlobID != nil {
		if r.blobs == nil {
			return errors.New("messageRepo: row references a blob but no blob store is configured")
		}
		var err error
		stored, err = r.blobs.Get(ctx, *msg.BlobID)
		if err != nil {
			return errors.Wrap(err, "messageRepo.rehydrate.BlobGet")
		}
	}

	payload, err := r.cipher.Open(stored, msg.ServerEncryptionVersion)
	if err != nil {
		return errors.Wrap(err, "messageRepo.rehydrate.AtRestOpen")
	}
	msg.Ciphertext = payload
	return nil
}
