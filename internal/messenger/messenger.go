package messenger

import (
	"context"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"confide/internal/directory"
	"confide/internal/keyring"
	"confide/internal/message"
	"confide/internal/room"
	"confide/pkg/cryptobox"
	"confide/pkg/errors"
	"confide/pkg/logger"
)

// Messenger is the client-side composition of keyring, key directory and
// message store. It is the only layer that ever sees plaintext.
type Messenger struct {
	self      uuid.UUID
	ring      keyring.Keyring
	directory directory.DirectoryUsecase
	messages  message.MessageUsecase
	logger    logger.Logger

	pair       cryptobox.KeyPair
	passphrase string
	unlocked   bool
}

func NewMessenger(self uuid.UUID, ring keyring.Keyring, dirUC directory.DirectoryUsecase, msgUC message.MessageUsecase, logger logger.Logger) *Messenger {
	return &Messenger{
		self:      self,
		ring:      ring,
		directory: dirUC,
		messages:  msgUC,
		logger:    logger,
	}
}

// Unlock loads the identity keypair into memory for the session. The
// passphrase is kept to reach archived keys lazily during decryption
// fallback.
func (m *Messenger) Unlock(passphrase string) error {
	pair, err := m.ring.Unlock(passphrase)
	if err != nil {
		return err
	}
	m.pair = pair
	m.passphrase = passphrase
	m.unlocked = true
	return nil
}

// Send seals plaintext for the recipient and appends it to the store. The
// directory lookup runs first: a recipient without a key aborts the send
// before anything is written anywhere.
func (m *Messenger) Send(ctx context.Context, recipient uuid.UUID, plaintext []byte) (*message.MessageDTO, error) {
	if !m.unlocked {
		return nil, errors.ErrKeyringLocked
	}

	entry, err := m.directory.GetPublicKey(ctx, recipient)
	if err != nil {
		return nil, err
	}
	recipientPub, err := cryptobox.ParsePublicKey(entry.PublicKey)
	if err != nil {
		return nil, err
	}

	ciphertext, nonce, err := cryptobox.Seal(plaintext, m.pair.Private, recipientPub)
	if err != nil {
		m.logger.Error("seal failed", "recipient", recipient, "err", err)
		return nil, errors.Internal("failed to seal message")
	}

	return m.messages.Append(ctx, message.AppendCommand{
		SenderID:    m.self,
		RecipientID: recipient,
		Ciphertext:  ciphertext,
		Nonce:       nonce,
	})
}

// Conversation lists a page of the thread with other and decrypts each entry.
// Undecryptable entries come back flagged Unreadable; the page itself still
// succeeds. On the first failure the peer key is refreshed from the
// directory once, then archived local keys are tried, then the entry is
// given up visibly.
func (m *Messenger) Conversation(ctx context.Context, other uuid.UUID, cursor *message.Cursor, limit int) (*ConversationPage, error) {
	if !m.unlocked {
		return nil, errors.ErrKeyringLocked
	}

	page, err := m.messages.ListConversation(ctx, message.ListConversationQuery{
		CallerID: m.self,
		OtherID:  other,
		Cursor:   cursor,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	out := &ConversationPage{
		Items:      make([]Item, 0, len(page.Messages)),
		NextCursor: page.NextCursor,
	}

	peerPub, peerKeyKnown := m.peerKey(ctx, other)
	refreshed := false
	var archived []cryptobox.PrivateKey
	archivedLoaded := false

	for _, msg := range page.Messages {
		item := Item{
			MessageID:   msg.ID,
			SenderID:    msg.SenderID,
			RecipientID: msg.RecipientID,
			CreatedAt:   msg.CreatedAt,
			ReadAt:      msg.ReadAt,
		}

		if !peerKeyKnown {
			item.Unreadable = true
			out.Items = append(out.Items, item)
			continue
		}

		plaintext, err := cryptobox.Open(msg.Ciphertext, msg.Nonce, peerPub, m.pair.Private)
		if err != nil && !refreshed {
			refreshed = true
			if fresh, ok := m.peerKey(ctx, other); ok {
				peerPub = fresh
				plaintext, err = cryptobox.Open(msg.Ciphertext, msg.Nonce, peerPub, m.pair.Private)
			}
		}
		if err != nil {
			if !archivedLoaded {
				archivedLoaded = true
				archived, _ = m.ring.ArchivedKeys(m.passphrase)
			}
			for _, old := range archived {
				if plaintext, err = cryptobox.Open(msg.Ciphertext, msg.Nonce, peerPub, old); err == nil {
					break
				}
			}
		}
		if err != nil {
			m.logger.Warn("message unreadable", "message_id", msg.ID, "peer", other)
			item.Unreadable = true
		} else {
			item.Plaintext = plaintext
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (m *Messenger) MarkRead(ctx context.Context, messageID uuid.UUID) (*message.MessageDTO, error) {
	return m.messages.MarkRead(ctx, messageID, m.self)
}

// OpenRoomKey recovers a distributed session key from this device's payload.
// The result is handed to the relay transport and is the caller's to wipe.
func (m *Messenger) OpenRoomKey(distributorPublicKey []byte, sealed room.SealedRoomKey) ([]byte, error) {
	if !m.unlocked {
		return nil, errors.ErrKeyringLocked
	}
	distributorPub, err := cryptobox.ParsePublicKey(distributorPublicKey)
	if err != nil {
		return nil, err
	}

	key, err := cryptobox.Open(sealed.Ciphertext, sealed.Nonce, distributorPub, m.pair.Private)
	if err == nil {
		return key, nil
	}

	archived, archErr := m.ring.ArchivedKeys(m.passphrase)
	if archErr != nil {
		return nil, err
	}
	for _, old := range archived {
		if key, openErr := cryptobox.Open(sealed.Ciphertext, sealed.Nonce, distributorPub, old); openErr == nil {
			return key, nil
		}
	}
	return nil, err
}

// peerKey resolves the other party's current directory key. A missing entry
// is not an error here; it just makes the thread unreadable.
func (m *Messenger) peerKey(ctx context.Context, other uuid.UUID) (cryptobox.PublicKey, bool) {
	entry, err := m.directory.GetPublicKey(ctx, other)
	if err != nil {
		if !pkgerrors.Is(err, errors.ErrKeyNotFound) {
			m.logger.Error("peer key lookup failed", "peer", other, "err", err)
		}
		return cryptobox.PublicKey{}, false
	}
	pub, err := cryptobox.ParsePublicKey(entry.PublicKey)
	if err != nil {
		return cryptobox.PublicKey{}, false
	}
	return pub, true
}
