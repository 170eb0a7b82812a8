package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ModChain/secp256k1"
)

const FlagUncompressed = "uncompressed"

type pubKeyResult struct {
	PublicKey string `json:"publicKey" yaml:"publicKey"`
}

func (r *pubKeyResult) renderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.PublicKey)
	return err
}

func newPubKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "pubkey",
		Short:             "Derive the public key of a secret key",
		Args:              cobra.NoArgs,
		RunE:              pubKeyCommand,
		DisableAutoGenTag: true,
	}

	cmd.Flags().String(FlagSecretKey, "", "hex encoded 32-byte secret key")
	cmd.Flags().Bool(FlagUncompressed, false, "output the 65-byte uncompressed form")
	_ = cmd.MarkFlagRequired(FlagSecretKey)
	return cmd
}

func pubKeyCommand(cmd *cobra.Command, _ []string) error {
	sk, err := getSecretKey(cmd)
	if err != nil {
		return err
	}
	defer sk.Zero()

	pk := secp256k1.PublicKeyFromSecretKey(secp256k1.NewSigningOnly(), sk)
	ser := pk.SerializeCompressed()
	if mustGetBool(cmd, FlagUncompressed) {
		ser = pk.SerializeUncompressed()
	}
	return render(cmd, &pubKeyResult{PublicKey: hex.EncodeToString(ser)})
}
