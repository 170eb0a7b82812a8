// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto"
	"io"

	"github.com/ModChain/secp256k1"
)

// SignerOpts implements crypto.SignerOpts for Signer.
type SignerOpts struct {
	Hash crypto.Hash

	// LowR grinds the nonce so the signature has a low R value.
	LowR bool
}

// HashFunc returns the hash used to produce the digest.  It is only reported
// to callers, the digest is always signed as given.
func (s *SignerOpts) HashFunc() crypto.Hash {
	return s.Hash
}

// Signer binds a secret key to a signing-capable context and implements
// crypto.Signer.
type Signer[C secp256k1.Signing] struct {
	ctx *secp256k1.Context[C]
	sk  *secp256k1.SecretKey
	pk  *secp256k1.PublicKey
}

// NewSigner returns a crypto.Signer producing DER signatures with sk.
func NewSigner[C secp256k1.Signing](ctx *secp256k1.Context[C], sk *secp256k1.SecretKey) *Signer[C] {
	return &Signer[C]{
		ctx: ctx,
		sk:  sk,
		pk:  secp256k1.PublicKeyFromSecretKey(ctx, sk),
	}
}

// Public returns the *secp256k1.PublicKey of the signer.
func (s *Signer[C]) Public() crypto.PublicKey {
	return s.pk
}

// Sign will sign the provided 32-byte digest, returning the resulting DER
// signature. The rand argument is ignored since nonces are deterministic.
// [SignerOpts] can be used to pass options.
func (s *Signer[C]) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	msg, err := secp256k1.MessageFromSlice(digest)
	if err != nil {
		return nil, err
	}

	var sig *Signature
	if o, ok := opts.(*SignerOpts); ok && o.LowR {
		sig = SignLowR(s.ctx, msg, s.sk)
	} else {
		sig = Sign(s.ctx, msg, s.sk)
	}
	return sig.SerializeDER().Bytes(), nil // DER
}
