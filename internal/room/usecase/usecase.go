package usecase

import (
	"context"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"confide/internal/directory"
	"confide/internal/room"
	"confide/pkg/cryptobox"
	"confide/pkg/errors"
	"confide/pkg/logger"
)

type RoomUsecase struct {
	directory directory.DirectoryUsecase
	logger    logger.Logger
}

func NewRoomUsecase(directory directory.DirectoryUsecase, logger logger.Logger) *RoomUsecase {
	return &RoomUsecase{directory: directory, logger: logger}
}

func (uc *RoomUsecase) CreateRoomKey(ctx context.Context, cmd room.CreateRoomKeyCommand) (*room.RoomKeyDistributionDTO, error) {
	if cmd.SessionID == uuid.Nil {
		return nil, errors.InvalidArg("session id is required")
	}

	roomKey, err := cryptobox.GenerateRoomKey()
	if err != nil {
		uc.logger.Error("failed to generate room key", "session_id", cmd.SessionID, "err", err)
		return nil, errors.Internal("failed to generate room key")
	}
	defer cryptobox.Zero(roomKey)

	// The distributor keypair lives only for this call. Its public half ships
	// with the payloads; the private half never outlives the seals.
	distributor, err := cryptobox.GenerateKeyPair()
	if err != nil {
		uc.logger.Error("failed to generate distributor keypair", "session_id", cmd.SessionID, "err", err)
		return nil, errors.Internal("failed to generate distributor keypair")
	}
	defer distributor.Private.Wipe()

	dto := &room.RoomKeyDistributionDTO{
		SessionID:            cmd.SessionID,
		DistributorPublicKey: distributor.Public.Bytes(),
		Payloads:             make(map[uuid.UUID]room.SealedRoomKey, len(cmd.Participants)),
	}

	for _, participant := range cmd.Participants {
		entry, err := uc.directory.GetPublicKey(ctx, participant)
		if err != nil {
			// One participant's lookup failing never takes down the seals
			// already computed for the others; the participant is omitted
			// visibly instead.
			reason := "no public key in directory"
			if !pkgerrors.Is(err, errors.ErrKeyNotFound) {
				reason = "directory lookup failed"
				uc.logger.Error("directory lookup failed during distribution",
					"session_id", cmd.SessionID, "participant", participant, "err", err)
			}
			dto.Excluded = append(dto.Excluded, room.ExcludedParticipant{
				UserID: participant,
				Reason: reason,
			})
			continue
		}

		pub, err := cryptobox.ParsePublicKey(entry.PublicKey)
		if err != nil {
			dto.Excluded = append(dto.Excluded, room.ExcludedParticipant{
				UserID: participant,
				Reason: "malformed directory key",
			})
			continue
		}

		ciphertext, nonce, err := cryptobox.Seal(roomKey, distributor.Private, pub)
		if err != nil {
			uc.logger.Error("failed to seal room key",
				"session_id", cmd.SessionID, "participant", participant, "err", err)
			return nil, errors.Internal("failed to seal room key")
		}
		dto.Payloads[participant] = room.SealedRoomKey{Ciphertext: ciphertext, Nonce: nonce}
	}

	uc.logger.Info("room key distributed",
		"session_id", cmd.SessionID,
		"sealed", len(dto.Payloads),
		"excluded", len(dto.Excluded))

	return dto, nil
}
