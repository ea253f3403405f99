package keyctl

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-keycore/internal/adapter"
	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/internal/store"
)

var errPasswordRequired = errors.New("--password is required")

func newDeriveCommand() *cobra.Command {
	var (
		flags    kdfFlags
		email    string
		password string
		server   string
	)

	derive := &cobra.Command{
		Use:   "derive",
		Short: "Derive a master key and print its fingerprints and hashes",
		Long: `Derive the master key from an email and a master password.
Only SHA-256 fingerprints of the keys are printed, never the keys.
With --server the KDF settings of the account are fetched from the server
and the KDF flags are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				return errPasswordRequired
			}
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if server != "" {
				if cfg, err = preloginKdf(cmd.Context(), server, email); err != nil {
					return err
				}
			}

			fn := crypto.NewCryptoFunctionService()
			keyGen := crypto.NewKeyGenerationService(fn)
			// the key service is only used for hashing, nothing is stored
			state := store.NewStateProvider(store.NewMemoryStateStorage(), store.NewMemoryStateStorage(), store.NewSecureStateStorage())
			keys := service.NewKeyService(state, fn, crypto.NewEncryptService(fn), keyGen)

			masterKey, err := keys.DeriveMasterKey(cmd.Context(), password, email, cfg)
			if err != nil {
				return fmt.Errorf("derive master key: %w", err)
			}
			defer masterKey.Destroy()

			serverHash, err := keys.HashMasterKey(password, masterKey, service.HashPurposeServerAuthorization)
			if err != nil {
				return err
			}
			localHash, err := keys.HashMasterKey(password, masterKey, service.HashPurposeLocalAuthorization)
			if err != nil {
				return err
			}

			stretched, err := keyGen.StretchKey(masterKey)
			if err != nil {
				return fmt.Errorf("stretch master key: %w", err)
			}
			defer stretched.Destroy()

			masterFingerprint, err := fingerprint(fn, masterKey)
			if err != nil {
				return err
			}
			stretchedFingerprint, err := fingerprint(fn, stretched)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "salt: %s\n", crypto.EmailToSalt(email))
			fmt.Fprintf(out, "kdf: %s\n", describeKdf(cfg))
			fmt.Fprintf(out, "master key fingerprint: %s\n", masterFingerprint)
			fmt.Fprintf(out, "server authorization hash: %s\n", serverHash)
			fmt.Fprintf(out, "local authorization hash: %s\n", localHash)
			fmt.Fprintf(out, "stretched key fingerprint: %s\n", stretchedFingerprint)
			return nil
		},
	}

	flags.register(derive)
	derive.Flags().StringVar(&email, "email", "", "account email, used as the salt")
	derive.Flags().StringVar(&password, "password", "", "master password")
	derive.Flags().StringVar(&server, "server", "", "vault server address to read the account KDF from")
	_ = derive.MarkFlagRequired("email")

	return derive
}

// fingerprint returns the base64 SHA-256 of the key bytes.
func fingerprint(fn crypto.CryptoFunctionService, key *crypto.SymmetricCryptoKey) (string, error) {
	sum, err := fn.Hash(key.Key(), crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("fingerprint key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sum), nil
}

// preloginKdf asks the server at address for the KDF of the account.
func preloginKdf(ctx context.Context, address, email string) (crypto.KdfConfig, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(config.Adapter{HTTPAddress: address, RequestTimeout: 30 * time.Second}, logger.Nop())
	if err != nil {
		return crypto.KdfConfig{}, err
	}

	prelogin, err := serverAdapter.PostPrelogin(ctx, string(crypto.EmailToSalt(email)))
	if err != nil {
		return crypto.KdfConfig{}, fmt.Errorf("prelogin: %w", err)
	}
	return prelogin.KdfConfig(), nil
}
