// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"

	"github.com/ModChain/secp256k1"
)

// maxLaxLenBytes is the number of long-form length bytes, after leading zeros
// are skipped, beyond which a lax integer length is rejected.
const maxLaxLenBytes = 8

// ParseDERLax parses a signature encoded with the loose BER-like rules that
// were accepted by Bitcoin nodes before strict DER was enforced in 2016.  It
// only exists to validate old chain data and must not be used for anything
// else.  There is no corresponding serializer.
//
// Compared to ParseDER, the following deviations are tolerated:
//
//   - The sequence length is ignored and may use the long form
//   - Integer lengths may use the long form with leading zero bytes
//   - Integers may carry any amount of leading zero padding
//   - Integers are read as unsigned, so negative encodings are accepted
//   - Zero-length integers are read as zero
//   - Any data following S is ignored
//
// When R or S does not fit in 32 bytes or is not less than the group order,
// parsing still succeeds and yields the all-zero signature, which fails
// verification.  An error is only returned when a tag is missing or a length
// runs past the end of the input.
func ParseDERLax(sig []byte) (*Signature, error) {
	sigLen := len(sig)
	pos := 0

	// Sequence tag byte.
	if pos == sigLen || sig[pos] != asn1SequenceID {
		return nil, laxError("sequence identifier missing")
	}
	pos++

	// Sequence length bytes.  A long form length is skipped entirely.
	if pos == sigLen {
		return nil, laxError("sequence length missing")
	}
	lenByte := int(sig[pos])
	pos++
	if lenByte&0x80 != 0 {
		lenByte -= 0x80
		if lenByte > sigLen-pos {
			return nil, laxError("sequence length exceeds input")
		}
		pos += lenByte
	}

	rPos, rLen, err := parseLaxInteger(sig, pos, "R")
	if err != nil {
		return nil, err
	}
	pos = rPos + rLen

	sPos, sLen, err := parseLaxInteger(sig, pos, "S")
	if err != nil {
		return nil, err
	}

	rBytes := trimLeadingZeros(sig[rPos : rPos+rLen])
	sBytes := trimLeadingZeros(sig[sPos : sPos+sLen])

	if len(rBytes) > 32 || len(sBytes) > 32 {
		return &Signature{}, nil
	}
	var parsed Signature
	overflowR := parsed.r.SetByteSlice(rBytes)
	overflowS := parsed.s.SetByteSlice(sBytes)
	if overflowR || overflowS {
		return &Signature{}, nil
	}
	return &parsed, nil
}

// parseLaxInteger parses the tag and length of an integer starting at pos and
// returns the offset and length of its content.
func parseLaxInteger(sig []byte, pos int, name string) (int, int, error) {
	sigLen := len(sig)

	if pos == sigLen || sig[pos] != asn1IntegerID {
		return 0, 0, laxError(fmt.Sprintf("%s integer marker missing", name))
	}
	pos++

	if pos == sigLen {
		return 0, 0, laxError(fmt.Sprintf("%s length missing", name))
	}
	lenByte := int(sig[pos])
	pos++

	var intLen uint64
	if lenByte&0x80 != 0 {
		lenByte -= 0x80
		if lenByte > sigLen-pos {
			return 0, 0, laxError(fmt.Sprintf("%s length exceeds input", name))
		}
		for lenByte > 0 && sig[pos] == 0 {
			pos++
			lenByte--
		}
		if lenByte >= maxLaxLenBytes {
			return 0, 0, laxError(fmt.Sprintf("%s length too large", name))
		}
		for ; lenByte > 0; lenByte-- {
			intLen = intLen<<8 | uint64(sig[pos])
			pos++
		}
	} else {
		intLen = uint64(lenByte)
	}
	if intLen > uint64(sigLen-pos) {
		return 0, 0, laxError(fmt.Sprintf("%s exceeds input", name))
	}
	return pos, int(intLen), nil
}

// trimLeadingZeros returns b without its leading zero bytes.
func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0x00 {
		b = b[1:]
	}
	return b
}

func laxError(desc string) secp256k1.Error {
	return signatureError(secp256k1.ErrInvalidSignature,
		"malformed lax signature: "+desc)
}
