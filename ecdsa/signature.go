// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"encoding/hex"
	"fmt"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ModChain/secp256k1"
)

// References:
//   [ISO/IEC 8825-1]: Information technology — ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)
//
//   [BIP62]: Dealing with malleability
//     https://github.com/bitcoin/bips/blob/master/bip-0062.mediawiki

// Signature is a type representing an ECDSA signature independent of any wire
// encoding.
//
// Signature values are comparable.  Two signatures are equal when their R and
// S components are identical, which means (R, S) and (R, -S) compare unequal
// even though both verify for the same message and key.  Use NormalizeS to
// pick the canonical member of that pair.
type Signature struct {
	r dcrsecp.ModNScalar
	s dcrsecp.ModNScalar
}

// NewSignature instantiates a new signature given some R and S values.
func NewSignature(r, s *dcrsecp.ModNScalar) *Signature {
	return &Signature{*r, *s}
}

// R returns the r value of the signature.
func (sig *Signature) R() dcrsecp.ModNScalar {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() dcrsecp.ModNScalar {
	return sig.s
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures have the same scalar value for R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Equals(&otherSig.r) && sig.s.Equals(&otherSig.s)
}

// NormalizeS converts the signature to its low-S form in place.  When S is
// greater than half the group order it is replaced with N - S, otherwise the
// signature is left untouched.
//
// In ECDSA both (R, S) and (R, -S) are valid for the same message and key, so
// anyone can modify a signature in transit by negating S.  This is not a
// forgery, however some applications require a unique encoding and only
// accept the low-S form (see [BIP62]).  Verify is one of them.  Historical data
// that carries high-S signatures can be normalized with this method before
// verification.
//
// NormalizeS does not report whether the signature changed.  Use IsLowS
// beforehand when that is needed.
func (sig *Signature) NormalizeS() {
	if sig.s.IsOverHalfOrder() {
		sig.s.Negate()
	}
}

// IsLowS reports whether S is less than or equal to half the group order, in
// which case NormalizeS leaves the signature unchanged.
func (sig *Signature) IsLowS() bool {
	return !sig.s.IsOverHalfOrder()
}

// String returns the DER encoding of the signature as a lowercase hex string.
func (sig Signature) String() string {
	ser := sig.SerializeDER()
	return ser.String()
}

// ParseHex decodes a hex string and parses the result as a strict DER
// signature.  It is the inverse of String.
func ParseHex(s string) (*Signature, error) {
	if len(s) > 2*MaxSignatureSize {
		str := fmt.Sprintf("malformed signature: hex too long: %d > %d",
			len(s), 2*MaxSignatureSize)
		return nil, signatureError(secp256k1.ErrInvalidSignature, str)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("malformed signature: %v", err)
		return nil, signatureError(secp256k1.ErrInvalidSignature, str)
	}
	return ParseDER(b)
}
