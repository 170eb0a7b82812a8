// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"encoding/hex"

	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ModChain/secp256k1"
)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02

	// MaxSignatureSize is the maximum length of a DER encoded signature and is
	// when both R and S are 33 bytes each.  It is 33 bytes because a 256-bit
	// integer requires 32 bytes and an additional leading null byte might be
	// required if the high bit is set in the value.
	//
	// 0x30 + <1-byte> + 0x02 + 0x21 + <33 bytes> + 0x2 + 0x21 + <33 bytes>
	MaxSignatureSize = 72
)

// SerializedSignature holds the DER encoding of a signature.  The backing
// array is always MaxSignatureSize bytes while Len reports the length of the
// encoding itself.
type SerializedSignature struct {
	data [MaxSignatureSize]byte
	len  int
}

// Bytes returns a copy of the DER encoding.
func (ss SerializedSignature) Bytes() []byte {
	return ss.data[:ss.len]
}

// Len returns the length of the DER encoding.
func (ss SerializedSignature) Len() int {
	return ss.len
}

// Cap returns the capacity of the buffer, which is MaxSignatureSize.
func (ss SerializedSignature) Cap() int {
	return len(ss.data)
}

// IsEmpty reports whether the buffer holds no encoding.
func (ss SerializedSignature) IsEmpty() bool {
	return ss.len == 0
}

// String returns the DER encoding as a lowercase hex string.
func (ss SerializedSignature) String() string {
	return hex.EncodeToString(ss.data[:ss.len])
}

// ToSignature parses the DER encoding back into a signature.
func (ss SerializedSignature) ToSignature() (*Signature, error) {
	return ParseDER(ss.data[:ss.len])
}

// SerializeDER returns the ECDSA signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1].
//
// Unlike the curve engine's own serializer, S is encoded as is.  Call
// NormalizeS first to obtain the canonical low-S encoding.
func (sig *Signature) SerializeDER() SerializedSignature {
	// The format of a DER encoded signature is as follows:
	//
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	//   - 0x30 is the ASN.1 identifier for a sequence.
	//   - Total length is 1 byte and specifies length of all remaining data.
	//   - 0x02 is the ASN.1 identifier that specifies an integer follows.
	//   - Length of R is 1 byte and specifies how many bytes R occupies.
	//   - R is the arbitrary length big-endian encoded number which
	//     represents the R value of the signature.  DER encoding dictates
	//     that the value must be encoded using the minimum possible number
	//     of bytes.  This implies the first byte can only be null if the
	//     highest bit of the next byte is set in order to prevent it from
	//     being interpreted as a negative number.
	//   - 0x02 is once again the ASN.1 integer identifier.
	//   - Length of S is 1 byte and specifies how many bytes S occupies.
	//   - S is the arbitrary length big-endian encoded number which
	//     represents the S value of the signature.  The encoding rules are
	//     identical as those for R.

	// Serialize the R and S components of the signature into their fixed
	// 32-byte big-endian encoding.
	var rBytes, sBytes [32]byte
	sig.r.PutBytes(&rBytes)
	sig.s.PutBytes(&sBytes)

	// Ensure the encoded bytes for the R and S components are canonical per DER
	// by trimming all leading zero bytes so long as the next byte does not have
	// the high bit set and it's not the final byte.
	var rBuf, sBuf [33]byte
	copy(rBuf[1:], rBytes[:])
	copy(sBuf[1:], sBytes[:])
	canonR, canonS := rBuf[:], sBuf[:]
	for len(canonR) > 1 && canonR[0] == 0x00 && canonR[1]&0x80 == 0 {
		canonR = canonR[1:]
	}
	for len(canonS) > 1 && canonS[0] == 0x00 && canonS[1]&0x80 == 0 {
		canonS = canonS[1:]
	}

	// Total length of returned signature is 1 byte for each magic and length
	// (6 total), plus lengths of R and S.
	totalLen := 6 + len(canonR) + len(canonS)

	var ss SerializedSignature
	b := ss.data[:0]
	b = append(b, asn1SequenceID)
	b = append(b, byte(totalLen-2))
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonR)))
	b = append(b, canonR...)
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonS)))
	b = append(b, canonS...)
	ss.len = len(b)
	return ss
}

// ParseDER parses a signature in the Distinguished Encoding Rules (DER) format
// per section 10 of [ISO/IEC 8825-1] and enforces the following additional
// restrictions specific to secp256k1:
//
//   - Lengths are single bytes and the total length must match the input
//   - Integers must be minimally encoded and must not be negative
//   - The R and S values must be in the range [1, N-1]
//
// Any violation, including empty input, is reported as ErrInvalidSignature.
// Violations detected by the curve engine also wrap its specific error kind,
// such as ErrSigRIsZero from github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa,
// for use with errors.Is.
// High-S signatures are accepted.
//
// Unlike libsecp256k1, R or S equal to zero is rejected here rather than
// parsed into a signature that can never verify.
func ParseDER(sig []byte) (*Signature, error) {
	if len(sig) == 0 {
		return nil, signatureError(secp256k1.ErrInvalidSignature,
			"malformed signature: empty input")
	}

	parsed, err := dcrecdsa.ParseDERSignature(sig)
	if err != nil {
		return nil, engineError(secp256k1.ErrInvalidSignature, err)
	}
	return &Signature{r: parsed.R(), s: parsed.S()}, nil
}
