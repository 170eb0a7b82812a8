// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ModChain/secp256k1"
)

// Verify checks that sig is a valid signature of msg for pk.  It returns nil
// on success and an error of kind ErrIncorrectSignature otherwise.
//
// Only low-S signatures are accepted; see NormalizeS.
//
// This check must not be used as a consensus validity oracle since other ECDSA
// implementations may accept or reject some signatures differently.
func Verify[C secp256k1.Verification](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sig *Signature, pk *secp256k1.PublicKey) error {

	if sig.s.IsOverHalfOrder() {
		return signatureError(secp256k1.ErrIncorrectSignature,
			"signature verification failed: S is not in the lower half of the group order")
	}
	if !dcrecdsa.NewSignature(&sig.r, &sig.s).Verify(msg[:], pk.Engine()) {
		return signatureError(secp256k1.ErrIncorrectSignature,
			"signature verification failed")
	}
	return nil
}

// Verify checks that sig is a valid signature of msg for pk using the global
// context.  See the package level Verify.
func (sig *Signature) Verify(msg *secp256k1.Message, pk *secp256k1.PublicKey) error {
	return Verify(secp256k1.Global, msg, sig, pk)
}

// VerifyECDSA is the former name of Verify.
//
// Deprecated: Use Verify.
func VerifyECDSA[C secp256k1.Verification](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sig *Signature, pk *secp256k1.PublicKey) error {

	return Verify(ctx, msg, sig, pk)
}
