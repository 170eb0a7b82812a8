package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/ModChain/secp256k1"
	"github.com/ModChain/secp256k1/ecdsa"
)

const (
	FlagEntropy    = "entropy"
	FlagGrindBytes = "grind-bytes"
	FlagLowR       = "low-r"
)

type signResult struct {
	Signature *ecdsa.Signature `json:"signature" yaml:"signature"`
	Compact   string           `json:"compact" yaml:"compact"`
	PublicKey string           `json:"publicKey" yaml:"publicKey"`
}

func (r *signResult) renderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "signature: %s\ncompact: %s\npublic key: %s\n",
		r.Signature, r.Compact, r.PublicKey)
	return err
}

func newSignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message digest with a secret key",
		Long: `Sign a 32-byte message digest with a secret key.

Signatures are deterministic: signing the same digest with the same key yields
the same signature unless --entropy is given. --grind-bytes and --low-r retry
with extra entropy until the DER encoding is short enough.`,
		Args:              cobra.NoArgs,
		RunE:              signCommand,
		DisableAutoGenTag: true,
	}

	cmd.Flags().String(FlagSecretKey, "", "hex encoded 32-byte secret key")
	registerMessageFlags(cmd)
	cmd.Flags().String(FlagEntropy, "", "hex encoded 32 bytes of extra entropy for nonce generation")
	cmd.Flags().Int(FlagGrindBytes, 0, "grind the nonce until the DER encoding is at most 71 minus this many bytes")
	cmd.Flags().Bool(FlagLowR, false, "grind the nonce until R is low")
	_ = cmd.MarkFlagRequired(FlagSecretKey)
	cmd.MarkFlagsMutuallyExclusive(FlagEntropy, FlagGrindBytes, FlagLowR)
	return cmd
}

func signCommand(cmd *cobra.Command, _ []string) error {
	logger := slogcontext.FromCtx(cmd.Context())

	sk, err := getSecretKey(cmd)
	if err != nil {
		return err
	}
	defer sk.Zero()
	msg, err := getMessage(cmd)
	if err != nil {
		return err
	}

	ctx := secp256k1.NewSigningOnly()
	var sig *ecdsa.Signature
	switch {
	case cmd.Flags().Changed(FlagEntropy):
		b, err := getHexFlag(cmd, FlagEntropy)
		if err != nil {
			return err
		}
		if len(b) != ecdsa.ExtraEntropySize {
			return fmt.Errorf("invalid --%s: length %d != %d", FlagEntropy,
				len(b), ecdsa.ExtraEntropySize)
		}
		sig = ecdsa.SignWithExtraEntropy(ctx, msg, sk, (*[ecdsa.ExtraEntropySize]byte)(b))
	case cmd.Flags().Changed(FlagGrindBytes):
		n, err := cmd.Flags().GetInt(FlagGrindBytes)
		if err != nil {
			return err
		}
		if n < 0 || n > 63 {
			return fmt.Errorf("invalid --%s: %d not in [0, 63]", FlagGrindBytes, n)
		}
		sig = ecdsa.SignGrindR(ctx, msg, sk, n)
	case mustGetBool(cmd, FlagLowR):
		sig = ecdsa.SignLowR(ctx, msg, sk)
	default:
		sig = ecdsa.Sign(ctx, msg, sk)
	}

	pk := secp256k1.PublicKeyFromSecretKey(ctx, sk)
	der := sig.SerializeDER()
	compact := sig.SerializeCompact()
	logger.DebugContext(cmd.Context(), "signed digest",
		slog.String("digest", msg.String()),
		slog.Int("derLength", der.Len()))

	return render(cmd, &signResult{
		Signature: sig,
		Compact:   hex.EncodeToString(compact[:]),
		PublicKey: hex.EncodeToString(pk.SerializeCompressed()),
	})
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(err)
	}
	return v
}
