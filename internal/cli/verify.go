package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/ModChain/secp256k1"
	"github.com/ModChain/secp256k1/ecdsa"
)

const FlagFormat = "format"

type verifyResult struct {
	Valid      bool `json:"valid" yaml:"valid"`
	Normalized bool `json:"normalized" yaml:"normalized"`
}

func (r *verifyResult) renderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "valid: %t\nnormalized: %t\n", r.Valid, r.Normalized)
	return err
}

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature of a message digest",
		Long: `Verify a signature of a 32-byte message digest against a public key.

Only low-S signatures verify. Use --normalize to accept a high-S signature by
converting it to its low-S form first. The command fails when the signature
does not verify.`,
		Args:              cobra.NoArgs,
		RunE:              verifyCommand,
		DisableAutoGenTag: true,
	}

	cmd.Flags().String(FlagPublicKey, "", "hex encoded compressed or uncompressed public key")
	registerMessageFlags(cmd)
	cmd.Flags().String(FlagSignature, "", "hex encoded signature")
	EnumVar(cmd.Flags(), FlagFormat, []string{FormatDER, FormatDERLax, FormatCompact}, "signature encoding")
	cmd.Flags().Bool(FlagNormalize, false, "normalize the signature to low-S before verifying")
	_ = cmd.MarkFlagRequired(FlagPublicKey)
	_ = cmd.MarkFlagRequired(FlagSignature)
	return cmd
}

func verifyCommand(cmd *cobra.Command, _ []string) error {
	logger := slogcontext.FromCtx(cmd.Context())

	pk, err := getPublicKey(cmd)
	if err != nil {
		return err
	}
	msg, err := getMessage(cmd)
	if err != nil {
		return err
	}
	format, err := GetEnum(cmd.Flags(), FlagFormat)
	if err != nil {
		return err
	}
	sig, err := getSignature(cmd, format)
	if err != nil {
		return err
	}

	normalized := false
	if mustGetBool(cmd, FlagNormalize) && !sig.IsLowS() {
		sig.NormalizeS()
		normalized = true
		logger.DebugContext(cmd.Context(), "normalized high-S signature")
	}

	if err := ecdsa.Verify(secp256k1.NewVerificationOnly(), msg, sig, pk); err != nil {
		logger.DebugContext(cmd.Context(), "signature rejected",
			slog.String("digest", msg.String()),
			slog.String("error", err.Error()))
		return err
	}
	logger.InfoContext(cmd.Context(), "signature verified",
		slog.String("digest", msg.String()))

	return render(cmd, &verifyResult{Valid: true, Normalized: normalized})
}
