package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"confide/pkg/cryptobox"
)

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the device identity keypair",
	}
	cmd.AddCommand(keysInitCmd(), keysRotateCmd(), keysFingerprintCmd(), keysShowCmd())
	return cmd
}

func keysInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate the identity keypair and register the public half",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			info, err := ring.Initialize(cmd.Context(), passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Identity ready.\nFingerprint: %s\n", info.Fingerprint)
			if !info.Registered {
				fmt.Printf("Not registered with a directory. Public key:\n%s\n",
					base64.StdEncoding.EncodeToString(info.PublicKey))
			}
			return nil
		},
	}
}

func keysRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Replace the identity keypair, archiving the old key locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			info, err := ring.Rotate(cmd.Context(), passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Key rotated.\nNew fingerprint: %s\n", info.Fingerprint)
			if !info.Registered {
				fmt.Printf("Not registered with a directory. Public key:\n%s\n",
					base64.StdEncoding.EncodeToString(info.PublicKey))
			}
			return nil
		},
	}
}

func keysFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the current key fingerprint for out-of-band verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			pair, err := ring.Unlock(passphrase)
			if err != nil {
				return err
			}
			defer pair.Private.Wipe()
			fmt.Println(cryptobox.Fingerprint(pair.Public))
			return nil
		},
	}
}

func keysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the public key for out-of-band registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			pair, err := ring.Unlock(passphrase)
			if err != nil {
				return err
			}
			defer pair.Private.Wipe()
			fmt.Printf("Fingerprint: %s\n", cryptobox.Fingerprint(pair.Public))
			fmt.Printf("Public key:  %s\n", base64.StdEncoding.EncodeToString(pair.Public.Bytes()))
			return nil
		},
	}
}
