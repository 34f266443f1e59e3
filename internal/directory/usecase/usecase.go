package usecase

import (
	"context"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"confide/internal/directory"
	"confide/internal/directory/model"
	"confide/internal/directory/repository"
	"confide/pkg/cryptobox"
	"confide/pkg/errors"
	"confide/pkg/logger"
)

type DirectoryUsecase struct {
	repo   directory.KeyRepository
	logger logger.Logger
}

func NewDirectoryUsecase(repo directory.KeyRepository, logger logger.Logger) *DirectoryUsecase {
	return &DirectoryUsecase{repo: repo, logger: logger}
}

func (uc *DirectoryUsecase) PutPublicKey(ctx context.Context, cmd directory.PutPublicKeyCommand) (*directory.KeyEntryDTO, error) {
	if cmd.Identity == uuid.Nil {
		return nil, errors.InvalidArg("identity is required")
	}
	pub, err := cryptobox.ParsePublicKey(cmd.PublicKey)
	if err != nil {
		return nil, err
	}

	entry := &model.KeyEntry{
		UserID:    cmd.Identity,
		PublicKey: pub.Bytes(),
	}
	if err := uc.repo.UpsertPublicKey(ctx, entry); err != nil {
		uc.logger.Error("failed to upsert public key", "identity", cmd.Identity, "err", err)
		return nil, errors.Internal("failed to store public key")
	}

	uc.logger.Info("public key registered",
		"identity", cmd.Identity,
		"key_version", entry.KeyVersion,
		"fingerprint", cryptobox.Fingerprint(pub))

	return toDTO(entry), nil
}

func (uc *DirectoryUsecase) GetPublicKey(ctx context.Context, identity uuid.UUID) (*directory.KeyEntryDTO, error) {
	if identity == uuid.Nil {
		return nil, errors.InvalidArg("identity is required")
	}

	entry, err := uc.repo.GetPublicKey(ctx, identity)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrEntryNotFound) {
			return nil, errors.ErrKeyNotFound
		}
		uc.logger.Error("directory lookup failed", "identity", identity, "err", err)
		return nil, errors.ErrDirectoryLookupFailed(err)
	}
	return toDTO(entry), nil
}

func (uc *DirectoryUsecase) KeyHistory(ctx context.Context, identity uuid.UUID) ([]directory.KeyVersionDTO, error) {
	archives, err := uc.repo.ListKeyHistory(ctx, identity)
	if err != nil {
		uc.logger.Error("key history lookup failed", "identity", identity, "err", err)
		return nil, errors.Internal("failed to load key history")
	}

	out := make([]directory.KeyVersionDTO, 0, len(archives))
	for _, a := range archives {
		fp := ""
		if pub, err := cryptobox.ParsePublicKey(a.PublicKey); err == nil {
			fp = cryptobox.Fingerprint(pub)
		}
		out = append(out, directory.KeyVersionDTO{
			KeyVersion:   a.KeyVersion,
			Fingerprint:  fp,
			SupersededAt: a.SupersededAt,
		})
	}
	return out, nil
}

func toDTO(entry *model.KeyEntry) *directory.KeyEntryDTO {
	fp := ""
	if pub, err := cryptobox.ParsePublicKey(entry.PublicKey); err == nil {
		fp = cryptobox.Fingerprint(pub)
	}
	return &directory.KeyEntryDTO{
		Identity:    entry.UserID,
		PublicKey:   entry.PublicKey,
		KeyVersion:  entry.KeyVersion,
		Fingerprint: fp,
		UpdatedAt:   entry.UpdatedAt,
	}
}
