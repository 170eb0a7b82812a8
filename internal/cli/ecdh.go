package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type ecdhResult struct {
	SharedSecret string `json:"sharedSecret" yaml:"sharedSecret"`
}

func (r *ecdhResult) renderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.SharedSecret)
	return err
}

func newECDHCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecdh",
		Short: "Compute an ECDH shared secret",
		Long: `Compute the ECDH shared secret of a secret key and a remote public key.

The output is the x coordinate of the shared point. Hash it before using it as
a symmetric key.`,
		Args:              cobra.NoArgs,
		RunE:              ecdhCommand,
		DisableAutoGenTag: true,
	}

	cmd.Flags().String(FlagSecretKey, "", "hex encoded 32-byte secret key")
	cmd.Flags().String(FlagPublicKey, "", "hex encoded remote public key")
	_ = cmd.MarkFlagRequired(FlagSecretKey)
	_ = cmd.MarkFlagRequired(FlagPublicKey)
	return cmd
}

func ecdhCommand(cmd *cobra.Command, _ []string) error {
	sk, err := getSecretKey(cmd)
	if err != nil {
		return err
	}
	defer sk.Zero()
	pk, err := getPublicKey(cmd)
	if err != nil {
		return err
	}

	secret, err := sk.ECDH(pk)
	if err != nil {
		return err
	}
	defer clear(secret)
	return render(cmd, &ecdhResult{SharedSecret: hex.EncodeToString(secret)})
}
