package cli

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ModChain/secp256k1"
	"github.com/ModChain/secp256k1/ecdsa"
)

const (
	testSecretKey = "0000000000000000000000000000000000000000000000000000000000000001"
	testPubKey    = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	testDigest    = "a8c3f2b1d0e9f8a7b6c5d4e3f2a1b0c9d8e7f6a5b4c3d2e1f0a9b8c7d6e5f4a3"
)

// run executes the root command with args and returns its output and logs.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, logs := new(bytes.Buffer), new(bytes.Buffer)
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(logs)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func signJSON(t *testing.T, args ...string) signOutput {
	t.Helper()
	out, _, err := run(t, append([]string{"sign", "--output", "json"}, args...)...)
	require.NoError(t, err)
	var result signOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

type signOutput struct {
	Signature string `json:"signature"`
	Compact   string `json:"compact"`
	PublicKey string `json:"publicKey"`
}

func TestPubKey(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "compressed",
			args: []string{"pubkey", "--secret-key", testSecretKey},
			want: testPubKey + "\n",
		},
		{
			name: "uncompressed",
			args: []string{"pubkey", "--secret-key", testSecretKey, "--uncompressed"},
			want: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
				"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestPubKeyInvalidSecretKey(t *testing.T) {
	_, _, err := run(t, "pubkey", "--secret-key", strings.Repeat("00", 32))
	require.ErrorIs(t, err, secp256k1.ErrInvalidSecretKey)

	_, _, err = run(t, "pubkey", "--secret-key", "zz")
	require.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	signed := signJSON(t, "--secret-key", testSecretKey, "--digest", testDigest)
	assert.Equal(t, testPubKey, signed.PublicKey)

	sig, err := ecdsa.ParseHex(signed.Signature)
	require.NoError(t, err)
	compact := sig.SerializeCompact()
	assert.Equal(t, hex.EncodeToString(compact[:]), signed.Compact)
	assert.True(t, sig.IsLowS())

	out, _, err := run(t, "verify", "--public-key", signed.PublicKey,
		"--digest", testDigest, "--signature", signed.Signature)
	require.NoError(t, err)
	assert.Equal(t, "valid: true\nnormalized: false\n", out)

	out, _, err = run(t, "verify", "--public-key", signed.PublicKey,
		"--digest", testDigest, "--signature", signed.Compact, "--format", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "valid: true")

	otherDigest := strings.Repeat("11", 32)
	_, _, err = run(t, "verify", "--public-key", signed.PublicKey,
		"--digest", otherDigest, "--signature", signed.Signature)
	require.ErrorIs(t, err, secp256k1.ErrIncorrectSignature)
}

func TestSignMessage(t *testing.T) {
	signed := signJSON(t, "--secret-key", testSecretKey, "--message", "hello")

	_, _, err := run(t, "verify", "--public-key", testPubKey,
		"--message", "hello", "--signature", signed.Signature)
	require.NoError(t, err)

	_, _, err = run(t, "verify", "--public-key", testPubKey,
		"--message", "goodbye", "--signature", signed.Signature)
	require.ErrorIs(t, err, secp256k1.ErrIncorrectSignature)
}

func TestSignDeterministic(t *testing.T) {
	first := signJSON(t, "--secret-key", testSecretKey, "--digest", testDigest)
	second := signJSON(t, "--secret-key", testSecretKey, "--digest", testDigest)
	assert.Equal(t, first, second)

	withEntropy := signJSON(t, "--secret-key", testSecretKey, "--digest", testDigest,
		"--entropy", strings.Repeat("42", 32))
	assert.NotEqual(t, first.Signature, withEntropy.Signature)
}

func TestSignGrinding(t *testing.T) {
	if fuzzing {
		t.Skip("grinding is disabled by the fuzzing build tag")
	}

	lowR := signJSON(t, "--secret-key", testSecretKey, "--digest", testDigest, "--low-r")
	compact, err := hex.DecodeString(lowR.Compact)
	require.NoError(t, err)
	assert.Less(t, compact[0], byte(0x80))
	assert.LessOrEqual(t, len(lowR.Signature)/2, 70)

	ground := signJSON(t, "--secret-key", testSecretKey, "--digest", testDigest, "--grind-bytes", "1")
	assert.LessOrEqual(t, len(ground.Signature)/2, 70)
}

func TestSignErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind error
	}{
		{
			name: "short digest",
			args: []string{"--secret-key", testSecretKey, "--digest", "00"},
			kind: secp256k1.ErrInvalidMessage,
		},
		{
			name: "zero secret key",
			args: []string{"--secret-key", strings.Repeat("00", 32), "--digest", testDigest},
			kind: secp256k1.ErrInvalidSecretKey,
		},
		{
			name: "missing digest",
			args: []string{"--secret-key", testSecretKey},
		},
		{
			name: "digest and message",
			args: []string{"--secret-key", testSecretKey, "--digest", testDigest, "--message", "hi"},
		},
		{
			name: "short entropy",
			args: []string{"--secret-key", testSecretKey, "--digest", testDigest, "--entropy", "00"},
		},
		{
			name: "entropy and low-r",
			args: []string{"--secret-key", testSecretKey, "--digest", testDigest,
				"--entropy", strings.Repeat("00", 32), "--low-r"},
		},
		{
			name: "grind bytes out of range",
			args: []string{"--secret-key", testSecretKey, "--digest", testDigest, "--grind-bytes", "64"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"sign"}, tc.args...)...)
			require.Error(t, err)
			if tc.kind != nil {
				require.ErrorIs(t, err, tc.kind)
			}
		})
	}
}

func TestVerifyHighS(t *testing.T) {
	signed := signJSON(t, "--secret-key", testSecretKey, "--digest", testDigest)
	sig, err := ecdsa.ParseHex(signed.Signature)
	require.NoError(t, err)

	r, s := sig.R(), sig.S()
	s.Negate()
	high := ecdsa.NewSignature(&r, &s)
	require.False(t, high.IsLowS())

	_, _, err = run(t, "verify", "--public-key", testPubKey,
		"--digest", testDigest, "--signature", high.String())
	require.ErrorIs(t, err, secp256k1.ErrIncorrectSignature)

	out, _, err := run(t, "verify", "--public-key", testPubKey,
		"--digest", testDigest, "--signature", high.String(), "--normalize")
	require.NoError(t, err)
	assert.Equal(t, "valid: true\nnormalized: true\n", out)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "der to compact",
			args: []string{"--signature", "3006020101020101"},
			want: strings.Repeat("00", 31) + "01" + strings.Repeat("00", 31) + "01\n",
		},
		{
			name: "compact to der",
			args: []string{"--signature", strings.Repeat("00", 31) + "01" + strings.Repeat("00", 31) + "01",
				"--from", "compact", "--to", "der"},
			want: "3006020101020101\n",
		},
		{
			name: "lax to der",
			args: []string{"--signature", "308106020200010201019999", "--from", "der-lax", "--to", "der"},
			want: "3006020101020101\n",
		},
		{
			name: "normalize high S",
			args: []string{"--signature", "3026020101022100fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
				"--to", "der", "--normalize"},
			want: "3006020101020101\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"convert"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	_, _, err := run(t, "convert", "--signature", "308106020200010201019999")
	require.ErrorIs(t, err, secp256k1.ErrInvalidSignature)

	_, _, err = run(t, "convert", "--signature", "3006020101020101", "--to", "der-lax")
	require.Error(t, err)
}

func TestConvertYAMLOutput(t *testing.T) {
	out, _, err := run(t, "convert", "--signature", "3026020101022100fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
		"--to", "der", "--output", "yaml")
	require.NoError(t, err)

	var result struct {
		Signature string `yaml:"signature"`
		Format    string `yaml:"format"`
		LowS      bool   `yaml:"lowS"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "3026020101022100fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140", result.Signature)
	assert.Equal(t, "der", result.Format)
	assert.False(t, result.LowS)
}

func TestSignYAMLOutput(t *testing.T) {
	out, _, err := run(t, "sign", "--secret-key", testSecretKey, "--digest", testDigest, "--output", "yaml")
	require.NoError(t, err)

	var result struct {
		Signature ecdsa.Signature `yaml:"signature"`
		PublicKey string          `yaml:"publicKey"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, testPubKey, result.PublicKey)

	pk, err := secp256k1.ParsePublicKey(hexDecode(t, result.PublicKey))
	require.NoError(t, err)
	msg, err := secp256k1.MessageFromSlice(hexDecode(t, testDigest))
	require.NoError(t, err)
	require.NoError(t, ecdsa.Verify(secp256k1.NewVerificationOnly(), msg, &result.Signature, pk))
}

func TestGlobalFlags(t *testing.T) {
	_, logs, err := run(t, "verify", "--loglevel", "debug", "--logformat", "json",
		"--public-key", testPubKey, "--digest", strings.Repeat("11", 32),
		"--signature", "3006020101020101")
	require.ErrorIs(t, err, secp256k1.ErrIncorrectSignature)

	line := strings.SplitN(strings.TrimSpace(logs), "\n", 2)[0]
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "signature rejected", entry["msg"])

	_, logs, err = run(t, "pubkey", "--secret-key", testSecretKey)
	require.NoError(t, err)
	assert.Empty(t, logs)

	for _, args := range [][]string{
		{"pubkey", "--secret-key", testSecretKey, "--loglevel", "trace"},
		{"pubkey", "--secret-key", testSecretKey, "--logformat", "xml"},
		{"pubkey", "--secret-key", testSecretKey, "--output", "toml"},
	} {
		_, _, err := run(t, args...)
		require.Error(t, err, strings.Join(args, " "))
	}
}

func hexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEnumFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	EnumVar(flags, "format", []string{"der", "compact"}, "signature encoding")
	flags.String("plain", "", "")

	v, err := GetEnum(flags, "format")
	require.NoError(t, err)
	assert.Equal(t, "der", v)

	require.NoError(t, flags.Parse([]string{"--format", "compact"}))
	v, err = GetEnum(flags, "format")
	require.NoError(t, err)
	assert.Equal(t, "compact", v)

	require.Error(t, flags.Set("format", "pem"))
	_, err = GetEnum(flags, "plain")
	require.Error(t, err)
	_, err = GetEnum(flags, "missing")
	require.Error(t, err)
}

func TestECDH(t *testing.T) {
	const (
		secondSecretKey = "0000000000000000000000000000000000000000000000000000000000000002"
		secondPubKey    = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
		// x coordinate of 2G
		sharedSecret = "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	)

	out, _, err := run(t, "ecdh", "--secret-key", testSecretKey, "--public-key", secondPubKey)
	require.NoError(t, err)
	assert.Equal(t, sharedSecret+"\n", out)

	out, _, err = run(t, "ecdh", "--secret-key", secondSecretKey, "--public-key", testPubKey,
		"--output", "json")
	require.NoError(t, err)
	var result struct {
		SharedSecret string `json:"sharedSecret"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, sharedSecret, result.SharedSecret)

	_, _, err = run(t, "ecdh", "--secret-key", testSecretKey, "--public-key", "02"+strings.Repeat("ff", 32))
	require.ErrorIs(t, err, secp256k1.ErrInvalidPublicKey)
}
