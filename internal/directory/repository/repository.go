package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"confide/internal/directory/model"
	"confide/pkg/logger"
)

type KeyRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrEntryNotFound = errors.New("key entry not found")

func NewKeyRepository(db *bun.DB, logger logger.Logger) *KeyRepository {
	return &KeyRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *KeyRepository) UpsertPublicKey(ctx context.Context, entry *model.KeyEntry) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		prev := new(model.KeyEntry)
		err := tx.NewSelect().
			Model(prev).
			Where("user_id = ?", entry.UserID).
			For("UPDATE").
			Scan(ctx)

		if err != nil && err != sql.ErrNoRows {
			return errors.Wrap(err, "keyRepo.UpsertPublicKey.SelectPrev")
		}

		if err == sql.ErrNoRows {
			entry.KeyVersion = 1
			_, err = tx.NewInsert().Model(entry).Returning("*").Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "keyRepo.UpsertPublicKey.Insert")
			}
			return nil
		}

		archive := &model.KeyEntryArchive{
			UserID:     prev.UserID,
			PublicKey:  prev.PublicKey,
			KeyVersion: prev.KeyVersion,
		}
		_, err = tx.NewInsert().Model(archive).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.UpsertPublicKey.Archive")
		}

		entry.KeyVersion = prev.KeyVersion + 1
		_, err = tx.NewUpdate().
			Model(entry).
			Set("public_key = ?", entry.PublicKey).
			Set("key_version = ?", entry.KeyVersion).
			Set("updated_at = current_timestamp").
			WherePK().
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.UpsertPublicKey.Update")
		}
		return nil
	})
}

func (r *KeyRepository) GetPublicKey(ctx context.Context, userID uuid.UUID) (*model.KeyEntry, error) {
	entry := new(model.KeyEntry)
	err := r.db.NewSelect().Model(entry).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetPublicKey.Scan")
	}
	return entry, nil
}

func (r *KeyRepository) ListKeyHistory(ctx context.Context, userID uuid.UUID) ([]model.KeyEntryArchive, error) {
	var archives []model.KeyEntryArchive
	err := r.db.NewSelect().
		Model(&archives).
		Where("user_id = ?", userID).
		Order("key_version DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "keyRepo.ListKeyHistory.Scan")
	}
	return archives, nil
}
