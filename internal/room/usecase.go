package room

import "context"

type RoomUsecase interface {
	// CreateRoomKey mints a fresh session key and seals one copy per
	// participant against their current directory key. Participants without a
	// directory entry end up in Excluded; the rest still get payloads.
	// Neither the session key nor the distributor's private key survives the
	// call.
	CreateRoomKey(ctx context.Context, cmd CreateRoomKeyCommand) (*RoomKeyDistributionDTO, error)
}
