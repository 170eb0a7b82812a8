// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"

	"github.com/ModChain/secp256k1"
)

// CompactSignatureSize is the size of a compact signature.  It consists of the
// R and S components serialized as 32-byte big-endian values with no framing.
const CompactSignatureSize = 64

// ParseCompact parses a 64-byte compact signature of the form
// <32-byte R><32-byte S>.  Input of any other length, or with R or S outside
// of [1, N-1], is rejected with ErrInvalidSignature.
//
// libsecp256k1 only rejects overflowing values in its compact parser and
// accepts zero.  Zero is rejected here as well, matching ParseDER, since such
// a signature can never verify.  ParseDERLax alone keeps the permissive
// behavior.
func ParseCompact(sig []byte) (*Signature, error) {
	if len(sig) != CompactSignatureSize {
		str := fmt.Sprintf("malformed signature: compact length %d != %d",
			len(sig), CompactSignatureSize)
		return nil, signatureError(secp256k1.ErrInvalidSignature, str)
	}

	var parsed Signature
	if overflow := parsed.r.SetByteSlice(sig[:32]); overflow {
		str := "invalid signature: R >= group order"
		return nil, signatureError(secp256k1.ErrInvalidSignature, str)
	}
	if parsed.r.IsZero() {
		str := "invalid signature: R is 0"
		return nil, signatureError(secp256k1.ErrInvalidSignature, str)
	}
	if overflow := parsed.s.SetByteSlice(sig[32:]); overflow {
		str := "invalid signature: S >= group order"
		return nil, signatureError(secp256k1.ErrInvalidSignature, str)
	}
	if parsed.s.IsZero() {
		str := "invalid signature: S is 0"
		return nil, signatureError(secp256k1.ErrInvalidSignature, str)
	}
	return &parsed, nil
}

// SerializeCompact returns the signature as <32-byte R><32-byte S>.
func (sig *Signature) SerializeCompact() [CompactSignatureSize]byte {
	var b [CompactSignatureSize]byte
	sig.r.PutBytesUnchecked(b[:32])
	sig.s.PutBytesUnchecked(b[32:])
	return b
}
