package keyctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
)

// kdfFlags are the KDF parameters shared by derive and kdf validate.
type kdfFlags struct {
	kdf         string
	iterations  int
	memory      int
	parallelism int
}

func (f *kdfFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kdf, "kdf", "pbkdf2", "KDF: pbkdf2 or argon2id")
	cmd.Flags().IntVar(&f.iterations, "iterations", 0, "iterations (0 selects the default)")
	cmd.Flags().IntVar(&f.memory, "memory", 0, "argon2id memory in MiB (0 selects the default)")
	cmd.Flags().IntVar(&f.parallelism, "parallelism", 0, "argon2id parallelism (0 selects the default)")
}

func (f *kdfFlags) config() (crypto.KdfConfig, error) {
	switch f.kdf {
	case "pbkdf2":
		return crypto.NewPBKDF2KdfConfig(f.iterations), nil
	case "argon2id":
		return crypto.NewArgon2KdfConfig(f.iterations, f.memory, f.parallelism), nil
	}
	return crypto.KdfConfig{}, fmt.Errorf("%w: %q", crypto.ErrUnknownKdfType, f.kdf)
}

func newKdfCommand() *cobra.Command {
	kdf := &cobra.Command{
		Use:   "kdf",
		Short: "Check KDF parameters",
	}

	var (
		flags     kdfFlags
		minPBKDF2 int
	)
	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check KDF parameters against the derivation floor and the new-key ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}

			if err = cfg.ValidateForDerivation(); err != nil {
				return fmt.Errorf("unusable for derivation: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: usable for derivation\n", describeKdf(cfg))

			if err = cfg.ValidateForNewKey(minPBKDF2); err != nil {
				return fmt.Errorf("not allowed for new keys: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: allowed for new keys\n", describeKdf(cfg))
			return nil
		},
	}
	flags.register(validate)
	validate.Flags().IntVar(&minPBKDF2, "min-pbkdf2", 0, "PBKDF2 minimum for new keys (0 keeps the built-in minimum)")

	kdf.AddCommand(validate)
	return kdf
}

func describeKdf(cfg crypto.KdfConfig) string {
	if cfg.KdfType == crypto.Argon2id {
		return fmt.Sprintf("%s iterations=%d memory=%dMiB parallelism=%d", cfg.KdfType, cfg.Iterations, cfg.Memory, cfg.Parallelism)
	}
	return fmt.Sprintf("%s iterations=%d", cfg.KdfType, cfg.Iterations)
}
