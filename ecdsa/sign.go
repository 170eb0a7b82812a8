// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ModChain/secp256k1"
)

// ExtraEntropySize is the size of the extra entropy that may be mixed into
// nonce generation.
const ExtraEntropySize = 32

// Sign generates a deterministic ECDSA signature of msg with sk according to
// RFC6979 and BIP0062.  The S component is always in the lower half of the
// group order.  Signing the same message with the same key always yields the
// same signature.
//
// Passing a zero value SecretKey is a programming error and panics.
func Sign[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message, sk *secp256k1.SecretKey) *Signature {
	return signRFC6979(sk, msg, nil)
}

// SignWithExtraEntropy is like Sign, but includes the provided 32 bytes of
// entropy in the RFC6979 nonce derivation.  This is useful when multiple
// distinct signatures are needed for the same message and key while still
// avoiding any reliance on a random number generator.
func SignWithExtraEntropy[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sk *secp256k1.SecretKey, entropy *[ExtraEntropySize]byte) *Signature {

	return signRFC6979(sk, msg, entropy[:])
}

// signRFC6979 generates a deterministic ECDSA signature according to RFC 6979
// and BIP 62.  The extra data is appended to the nonce key material when it is
// exactly 32 bytes.
//
// The function cannot fail for a valid secret key.  A zero key can only reach
// this point by bypassing SecretKeyFromSlice, so it panics instead of
// returning an error.
func signRFC6979(sk *secp256k1.SecretKey, msg *secp256k1.Message, extra []byte) *Signature {
	// The algorithm for producing an ECDSA signature is given as algorithm 4.29
	// in [GECC].
	//
	// The following is a paraphrased version for reference:
	//
	// G = curve generator
	// N = curve order
	// d = private key
	// m = message
	// r, s = signature
	//
	// 1. Select random nonce k in [1, N-1]
	// 2. Compute kG
	// 3. r = kG.x mod N (kG.x is the x coordinate of the point kG)
	//    Repeat from step 1 if r = 0
	// 4. e = H(m)
	// 5. s = k^-1(e + dr) mod N
	//    Repeat from step 1 if s = 0
	// 6. Return (r,s)
	//
	// This is slightly modified here to conform to RFC6979 and BIP 62 as
	// follows:
	//
	// A. Instead of selecting a random nonce in step 1, use RFC6979 to generate
	//    a deterministic nonce in [1, N-1] parameterized by the private key,
	//    message being signed, optional extra data, and an iteration count for
	//    the repeat cases
	// B. Negate s calculated in step 5 if it is > N/2

	privKey := sk.Scalar()
	defer privKey.Zero()
	if privKey.IsZero() {
		panic("ecdsa: signing with an invalid secret key")
	}
	privKeyBytes := privKey.Bytes()
	defer zeroArray32(&privKeyBytes)

	// Step 4.
	//
	// e = H(m)
	//
	// Note that this actually sets e = H(m) mod N which is correct since it is
	// only used in step 5 which itself is mod N.
	var e dcrsecp.ModNScalar
	e.SetBytes((*[32]byte)(msg))

	for iteration := uint32(0); ; iteration++ {
		// Step 1 with modification A.
		k := dcrsecp.NonceRFC6979(privKeyBytes[:], msg[:], extra, nil, iteration)

		// Step 2.
		//
		// Compute kG
		//
		// Note that the point must be in affine coordinates.
		var kG dcrsecp.JacobianPoint
		dcrsecp.ScalarBaseMultNonConst(k, &kG)
		kG.ToAffine()

		// Step 3.
		//
		// r = kG.x mod N
		// Repeat from step 1 if r = 0
		var r dcrsecp.ModNScalar
		r.SetBytes(kG.X.Bytes())
		if r.IsZero() {
			k.Zero()
			continue
		}

		// Step 5 with modification B.
		//
		// s = k^-1(e + dr) mod N
		// Repeat from step 1 if s = 0
		// s = -s if s > N/2
		kInv := new(dcrsecp.ModNScalar).InverseValNonConst(k)
		k.Zero()
		s := new(dcrsecp.ModNScalar).Mul2(&privKey, &r).Add(&e).Mul(kInv)
		kInv.Zero()
		if s.IsZero() {
			continue
		}
		if s.IsOverHalfOrder() {
			s.Negate()
		}

		// Step 6.
		//
		// Return (r,s)
		return &Signature{r: r, s: *s}
	}
}

// zeroArray32 zeroes the provided 32-byte buffer.
func zeroArray32(b *[32]byte) {
	*b = [32]byte{}
}

// SignECDSA is the former name of Sign.
//
// Deprecated: Use Sign.
func SignECDSA[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message, sk *secp256k1.SecretKey) *Signature {
	return Sign(ctx, msg, sk)
}
