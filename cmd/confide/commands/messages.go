package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"confide/internal/messenger"
)

func newUnlockedMessenger() (*messenger.Messenger, error) {
	if err := requirePassphrase(); err != nil {
		return nil, err
	}
	if messages == nil {
		return nil, fmt.Errorf("messaging commands need a database DSN in config")
	}
	m := messenger.NewMessenger(selfID, ring, dirUC, messages, log)
	if err := m.Unlock(passphrase); err != nil {
		return nil, err
	}
	return m, nil
}

func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <recipient-uuid> <text>",
		Short: "Seal a message for the recipient and store it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipient, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipient uuid: %w", err)
			}
			m, err := newUnlockedMessenger()
			if err != nil {
				return err
			}
			dto, err := m.Send(cmd.Context(), recipient, []byte(strings.Join(args[1:], " ")))
			if err != nil {
				return err
			}
			fmt.Printf("Sent %s at %s\n", dto.ID, dto.CreatedAt.Format("15:04:05"))
			return nil
		},
	}
}

func inboxCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "inbox <peer-uuid>",
		Short: "List and decrypt the conversation with a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid peer uuid: %w", err)
			}
			m, err := newUnlockedMessenger()
			if err != nil {
				return err
			}
			page, err := m.Conversation(cmd.Context(), peer, nil, limit)
			if err != nil {
				return err
			}
			for _, item := range page.Items {
				who := "them"
				if item.SenderID == selfID {
					who = "me"
				}
				body := "[unreadable]"
				if !item.Unreadable {
					body = string(item.Plaintext)
				}
				fmt.Printf("%s  %-4s  %s  %s\n", item.CreatedAt.Format("15:04:05"), who, item.MessageID, body)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (default 50)")
	return cmd
}

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <message-uuid>",
		Short: "Mark a received message as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid message uuid: %w", err)
			}
			m, err := newUnlockedMessenger()
			if err != nil {
				return err
			}
			dto, err := m.MarkRead(cmd.Context(), msgID)
			if err != nil {
				return err
			}
			fmt.Printf("Read at %s\n", dto.ReadAt.Format("15:04:05"))
			return nil
		},
	}
}
