package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/spf13/cobra"

	"github.com/ModChain/secp256k1"
	"github.com/ModChain/secp256k1/ecdsa"
)

const (
	FlagSecretKey = "secret-key"
	FlagPublicKey = "public-key"
	FlagDigest    = "digest"
	FlagMessage   = "message"
	FlagSignature = "signature"
	FlagNormalize = "normalize"
)

// Signature encodings accepted on input.
const (
	FormatDER     = "der"
	FormatDERLax  = "der-lax"
	FormatCompact = "compact"
)

// registerMessageFlags adds the mutually exclusive --digest and --message
// flags, one of which is required.
func registerMessageFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagDigest, "", "hex encoded 32-byte message digest")
	cmd.Flags().String(FlagMessage, "", "text message, hashed with BLAKE-256 to obtain the digest")
	cmd.MarkFlagsMutuallyExclusive(FlagDigest, FlagMessage)
	cmd.MarkFlagsOneRequired(FlagDigest, FlagMessage)
}

// getMessage returns the digest selected by --digest or --message.
func getMessage(cmd *cobra.Command) (*secp256k1.Message, error) {
	if cmd.Flags().Changed(FlagMessage) {
		text, err := cmd.Flags().GetString(FlagMessage)
		if err != nil {
			return nil, err
		}
		hash := chainhash.HashH([]byte(text))
		return secp256k1.MessageFromHash(&hash), nil
	}

	digest, err := getHexFlag(cmd, FlagDigest)
	if err != nil {
		return nil, err
	}
	return secp256k1.MessageFromSlice(digest)
}

// getSecretKey parses the --secret-key flag.
func getSecretKey(cmd *cobra.Command) (*secp256k1.SecretKey, error) {
	b, err := getHexFlag(cmd, FlagSecretKey)
	if err != nil {
		return nil, err
	}
	defer clear(b)
	return secp256k1.SecretKeyFromSlice(b)
}

// getPublicKey parses the --public-key flag.
func getPublicKey(cmd *cobra.Command) (*secp256k1.PublicKey, error) {
	b, err := getHexFlag(cmd, FlagPublicKey)
	if err != nil {
		return nil, err
	}
	return secp256k1.ParsePublicKey(b)
}

// getSignature parses the --signature flag with the given encoding.
func getSignature(cmd *cobra.Command, format string) (*ecdsa.Signature, error) {
	b, err := getHexFlag(cmd, FlagSignature)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatDER:
		return ecdsa.ParseDER(b)
	case FormatDERLax:
		return ecdsa.ParseDERLax(b)
	case FormatCompact:
		return ecdsa.ParseCompact(b)
	default:
		return nil, fmt.Errorf("invalid signature format: %s", format)
	}
}

func getHexFlag(cmd *cobra.Command, name string) ([]byte, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return b, nil
}
