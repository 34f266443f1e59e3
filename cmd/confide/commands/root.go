package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"confide/config"
	"confide/internal/directory"
	directoryRepo "confide/internal/directory/repository"
	directoryUC "confide/internal/directory/usecase"
	"confide/internal/keyring"
	"confide/internal/message"
	messageRepo "confide/internal/message/repository"
	messageUC "confide/internal/message/usecase"
	"confide/pkg/db"
	"confide/pkg/logger"
)

var (
	configName string
	passphrase string
	identity   string

	ring     keyring.Keyring
	dirUC    directory.DirectoryUsecase
	messages message.MessageUsecase
	selfID   uuid.UUID
	log      logger.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "confide",
		Short:         "End-to-end encrypted messaging key management",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; explicit env vars still apply.
			_ = godotenv.Load()

			v, err := config.LoadConfig(configName)
			if err != nil {
				return err
			}
			cfg, err := config.ParseConfig(v)
			if err != nil {
				return err
			}
			l, err := logger.NewLogger(cfg)
			if err != nil {
				return err
			}
			log = *l

			if identity == "" {
				identity = os.Getenv("CONFIDE_IDENTITY")
			}
			id, err := uuid.Parse(identity)
			if err != nil {
				return fmt.Errorf("a valid --identity uuid is required: %w", err)
			}

			selfID = id

			// Without a DSN the key operations stay local; the public key is
			// printed for out-of-band registration.
			if cfg.Bun.DSN != "" {
				bunDB, err := db.Connect(cmd.Context(), cfg.Bun.DSN)
				if err != nil {
					return err
				}
				dirUC = directoryUC.NewDirectoryUsecase(directoryRepo.NewKeyRepository(bunDB, log), log)

				cipher, err := newAtRestCipher(cfg)
				if err != nil {
					return err
				}
				blobs, err := newBlobStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				messages = messageUC.NewMessageUsecase(
					messageRepo.NewMessageRepository(bunDB, cipher, blobs, cfg.Blob.InlineLimit, log), log)
			}

			dir := cfg.Keyring.Dir
			if dir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				dir = filepath.Join(home, ".confide")
			}
			ring, err = keyring.NewFileKeyring(dir, id, dirUC, log)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configName, "config", "config", "config file name under config/")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the keystore")
	root.PersistentFlags().StringVar(&identity, "identity", "", "identity uuid (or CONFIDE_IDENTITY)")

	root.AddCommand(keysCmd(), sendCmd(), inboxCmd(), readCmd())
	return root.Execute()
}

func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p)")
	}
	return nil
}
