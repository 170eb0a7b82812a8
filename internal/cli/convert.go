package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const (
	FlagFrom = "from"
	FlagTo   = "to"
)

type convertResult struct {
	Signature string `json:"signature" yaml:"signature"`
	Format    string `json:"format" yaml:"format"`
	LowS      bool   `json:"lowS" yaml:"lowS"`
}

func (r *convertResult) renderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Signature)
	return err
}

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode a signature",
		Long: `Re-encode a signature between the DER and compact encodings.

Signatures read with --from der-lax are written in strict form. Values that
the lax parser cannot represent decode to the all-zero signature, which is
still written but neither parses strictly nor verifies.`,
		Args:              cobra.NoArgs,
		RunE:              convertCommand,
		DisableAutoGenTag: true,
	}

	cmd.Flags().String(FlagSignature, "", "hex encoded signature")
	EnumVar(cmd.Flags(), FlagFrom, []string{FormatDER, FormatDERLax, FormatCompact}, "input encoding")
	EnumVar(cmd.Flags(), FlagTo, []string{FormatCompact, FormatDER}, "output encoding")
	cmd.Flags().Bool(FlagNormalize, false, "normalize the signature to low-S")
	_ = cmd.MarkFlagRequired(FlagSignature)
	return cmd
}

func convertCommand(cmd *cobra.Command, _ []string) error {
	from, err := GetEnum(cmd.Flags(), FlagFrom)
	if err != nil {
		return err
	}
	to, err := GetEnum(cmd.Flags(), FlagTo)
	if err != nil {
		return err
	}
	sig, err := getSignature(cmd, from)
	if err != nil {
		return err
	}
	if mustGetBool(cmd, FlagNormalize) {
		sig.NormalizeS()
	}

	var out string
	switch to {
	case FormatDER:
		out = sig.String()
	case FormatCompact:
		compact := sig.SerializeCompact()
		out = hex.EncodeToString(compact[:])
	default:
		return fmt.Errorf("invalid output encoding: %s", to)
	}

	return render(cmd, &convertResult{Signature: out, Format: to, LowS: sig.IsLowS()})
}
