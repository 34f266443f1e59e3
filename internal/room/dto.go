package room

import "github.com/google/uuid"

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
type CreateRoomKeyCommand struct {
	SessionID    uuid.UUID
	Participants []uuid.UUID
}

// SealedRoomKey is one participant's copy of the session key, sealed against
// their current directory key. Only that participant can open it.
type SealedRoomKey struct {
	Ciphertext []byte
	Nonce      []byte
}

type ExcludedParticipant struct {
	UserID uuid.UUID
	Reason string
}

type RoomKeyDistributionDTO struct {
	SessionID uuid.UUID

	// DistributorPublicKey is the ephemeral public key the payloads were
	// sealed with. Participants need it to open their copy; the matching
	// private key is wiped before this DTO is returned.
	DistributorPublicKey []byte

	Payloads map[uuid.UUID]SealedRoomKey
	Excluded []ExcludedParticipant
}
