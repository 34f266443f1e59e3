package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a stored ciphertext envelope. The server never sees plaintext;
// rows are immutable after insert except for the read_at transition.
type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SenderID    uuid.UUID `bun:",notnull,type:uuid"`
	RecipientID uuid.UUID `bun:",notnull,type:uuid"`

	// Derived from the unordered {sender, recipient} pair; indexed for
	// conversation listing.
	ConversationKey string `bun:",notnull"`

	// Client-level sealed payload. Nil when offloaded, see BlobID.
	Ciphertext []byte `bun:",nullzero"`
	Nonce      []byte `bun:",notnull"`

	// Set when the payload lives in the blob store instead of the row.
	BlobID *string `bun:",nullzero"`

	// Version of the server-held at-rest layer applied over Ciphertext.
	// Nil when the layer is disabled.
	ServerEncryptionVersion *int16 `bun:",nullzero"`

	// Server-assigned; the conversation ordering key. Client clocks are
	// never trusted for ordering.
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	ReadAt *time.Time `bun:",nullzero"`
}

// ConversationKey derives the order-independent thread identifier for a pair
// of identities: ConversationKey(a, b) == ConversationKey(b, a) always, so a
// thread is single regardless of who messages first.
func ConversationKey(a, b uuid.UUID) string {
	lo, hi := a.String(), b.String()
	if strings.Compare(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	return lo + ":" + hi
}
