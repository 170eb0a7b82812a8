// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"fmt"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// SecretKeySize is the size of a serialized secret key in bytes.
	SecretKeySize = 32

	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = dcrsecp.PubKeyBytesLenCompressed

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = dcrsecp.PubKeyBytesLenUncompressed
)

// SecretKey is a secp256k1 secret key.  A key obtained from SecretKeyFromSlice
// is always in the range [1, N-1].  The zero value is not a valid key and
// signing with it is a programming error.
type SecretKey struct {
	key dcrsecp.ModNScalar
}

// SecretKeyFromSlice parses a 32-byte big-endian secret key.
func SecretKeyFromSlice(b []byte) (*SecretKey, error) {
	if len(b) != SecretKeySize {
		str := fmt.Sprintf("malformed secret key: length %d != %d", len(b),
			SecretKeySize)
		return nil, makeError(ErrInvalidSecretKey, str)
	}

	var sk SecretKey
	if overflow := sk.key.SetByteSlice(b); overflow {
		sk.key.Zero()
		return nil, makeError(ErrInvalidSecretKey,
			"invalid secret key: value >= group order")
	}
	if sk.key.IsZero() {
		return nil, makeError(ErrInvalidSecretKey, "invalid secret key: value is 0")
	}
	return &sk, nil
}

// Bytes returns the secret key as a 32-byte big-endian array.
func (sk *SecretKey) Bytes() [SecretKeySize]byte {
	return sk.key.Bytes()
}

// Scalar returns a copy of the secret key as a scalar modulo the group order.
func (sk *SecretKey) Scalar() dcrsecp.ModNScalar {
	return sk.key
}

// Zero overwrites the secret key with zero.  The key must not be used
// afterwards.
func (sk *SecretKey) Zero() {
	sk.key.Zero()
}

// PublicKey is a secp256k1 public key.  Values are only produced by
// ParsePublicKey and PublicKeyFromSecretKey, so they are always on the curve.
type PublicKey struct {
	key dcrsecp.PublicKey
}

// ParsePublicKey parses a public key in the compressed, uncompressed or hybrid
// format.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	pk, err := dcrsecp.ParsePubKey(b)
	if err != nil {
		return nil, makeError(ErrInvalidPublicKey, err.Error())
	}
	return &PublicKey{key: *pk}, nil
}

// PublicKeyFromSecretKey computes the public key for the given secret key.
// It requires a signing-capable context.
func PublicKeyFromSecretKey[C Signing](ctx *Context[C], sk *SecretKey) *PublicKey {
	if sk.key.IsZero() {
		panic("secp256k1: public key requested for zero secret key")
	}

	var result dcrsecp.JacobianPoint
	dcrsecp.ScalarBaseMultNonConst(&sk.key, &result)
	result.ToAffine()
	return &PublicKey{key: *dcrsecp.NewPublicKey(&result.X, &result.Y)}
}

// SerializeCompressed serializes the public key in the 33-byte compressed
// format.
func (pk *PublicKey) SerializeCompressed() []byte {
	return pk.key.SerializeCompressed()
}

// SerializeUncompressed serializes the public key in the 65-byte uncompressed
// format.
func (pk *PublicKey) SerializeUncompressed() []byte {
	return pk.key.SerializeUncompressed()
}

// IsEqual reports whether both public keys represent the same point.
func (pk *PublicKey) IsEqual(other *PublicKey) bool {
	return pk.key.IsEqual(&other.key)
}

// Engine returns the public key in the representation used by the curve
// arithmetic engine.
func (pk *PublicKey) Engine() *dcrsecp.PublicKey {
	return &pk.key
}

// String returns the compressed public key as a hex string.
func (pk *PublicKey) String() string {
	return hex.EncodeToString(pk.SerializeCompressed())
}
