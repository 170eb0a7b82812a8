// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"encoding/binary"
	"fmt"

	"github.com/ModChain/secp256k1"
)

// GrindPredicate reports whether a candidate signature produced while
// grinding is acceptable.
type GrindPredicate func(sig *Signature) bool

// MaxDERLength returns a predicate accepting signatures whose DER encoding is
// at most maxLen bytes.
func MaxDERLength(maxLen int) GrindPredicate {
	return func(sig *Signature) bool {
		return sig.SerializeDER().Len() <= maxLen
	}
}

// LowR returns a predicate accepting signatures whose R value has the high
// bit of its 32-byte big-endian encoding clear.  This matches the low R
// signatures produced by Bitcoin Core.
func LowR() GrindPredicate {
	return func(sig *Signature) bool {
		compact := sig.SerializeCompact()
		return compact[0] < 0x80
	}
}

// SignGrind repeatedly signs msg with sk until accept returns true for the
// produced signature and returns it.
//
// The first attempt is identical to Sign.  Each later attempt uses
// SignWithExtraEntropy with a counter encoded little-endian in the first four
// bytes of otherwise zero entropy.  The loop has no upper bound, so accept
// must be satisfiable within a reasonable number of attempts.  When built with
// the fuzzing tag the first signature is returned regardless of accept.
func SignGrind[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sk *secp256k1.SecretKey, accept GrindPredicate) *Signature {

	var (
		extraEntropy [ExtraEntropySize]byte
		entropy      []byte
		counter      uint32
	)
	for {
		sig := signRFC6979(sk, msg, entropy)
		if accept(sig) || fuzzing {
			return sig
		}

		counter++
		binary.LittleEndian.PutUint32(extraEntropy[:4], counter)
		entropy = extraEntropy[:]
	}
}

// SignGrindR signs msg with sk and grinds the nonce until the DER encoding of
// the signature is at most 71 - bytesToGrind bytes.  The expected number of
// signing operations grows exponentially with bytesToGrind.
//
// bytesToGrind must be in [0, 63].  Other values panic since no signature
// could ever satisfy them.
func SignGrindR[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sk *secp256k1.SecretKey, bytesToGrind int) *Signature {

	const minSigLen = 8
	maxLen := 71 - bytesToGrind
	if bytesToGrind < 0 || maxLen < minSigLen {
		panic(fmt.Sprintf("ecdsa: bytes to grind %d out of range", bytesToGrind))
	}
	return SignGrind(ctx, msg, sk, MaxDERLength(maxLen))
}

// SignLowR signs msg with sk and grinds the nonce until R is low, which makes
// the DER encoding at most 70 bytes.  On average two signing operations are
// performed.
func SignLowR[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sk *secp256k1.SecretKey) *Signature {

	return SignGrind(ctx, msg, sk, LowR())
}

// SignECDSAGrindR is the former name of SignGrindR.
//
// Deprecated: Use SignGrindR.
func SignECDSAGrindR[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sk *secp256k1.SecretKey, bytesToGrind int) *Signature {

	return SignGrindR(ctx, msg, sk, bytesToGrind)
}

// SignECDSALowR is the former name of SignLowR.
//
// Deprecated: Use SignLowR.
func SignECDSALowR[C secp256k1.Signing](ctx *secp256k1.Context[C], msg *secp256k1.Message,
	sk *secp256k1.SecretKey) *Signature {

	return SignLowR(ctx, msg, sk)
}
