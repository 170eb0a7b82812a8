// Package cli implements the ecdsasig command line client, a thin shell around
// the ecdsa package for signing, verifying and re-encoding secp256k1 ECDSA
// signatures.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"
)

// Execute runs the root command and exits non-zero on failure.  This is called
// by main.main().
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// New returns the root command with all sub commands attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecdsasig [sub-command]",
		Short: "Sign, verify and convert secp256k1 ECDSA signatures",
		Long: `ecdsasig works with secp256k1 ECDSA signatures over 32-byte message digests.

Signatures are deterministic (RFC6979) and always produced in low-S form.
Keys, digests and signatures are passed as hex strings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: preRunE,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	RegisterLoggingFlags(cmd)
	RegisterOutputFlag(cmd)

	cmd.AddCommand(newSignCommand())
	cmd.AddCommand(newVerifyCommand())
	cmd.AddCommand(newConvertCommand())
	cmd.AddCommand(newPubKeyCommand())
	cmd.AddCommand(newECDHCommand())
	return cmd
}

// preRunE validates the global flags and stores the configured logger in the
// command context.
func preRunE(cmd *cobra.Command, _ []string) error {
	logger, err := GetBaseLogger(cmd)
	if err != nil {
		return fmt.Errorf("could not retrieve logger: %w", err)
	}
	if _, err := getOutputFormat(cmd); err != nil {
		return err
	}
	cmd.SetContext(slogcontext.NewCtx(cmd.Context(), logger))
	return nil
}
