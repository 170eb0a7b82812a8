// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// MessageSize is the size of a message digest in bytes.
const MessageSize = 32

// Message is a 32-byte digest that is signed or verified.  It must already be
// the output of a cryptographic hash function since no hashing is performed on
// it.
type Message [MessageSize]byte

// MessageFromSlice returns a message that is a copy of the provided digest.
// An ErrInvalidMessage error is returned when the digest is not exactly
// MessageSize bytes.
func MessageFromSlice(digest []byte) (*Message, error) {
	if len(digest) != MessageSize {
		str := fmt.Sprintf("malformed message: digest length %d != %d",
			len(digest), MessageSize)
		return nil, makeError(ErrInvalidMessage, str)
	}
	var msg Message
	copy(msg[:], digest)
	return &msg, nil
}

// MessageFromHash returns a message for the given chain hash.
func MessageFromHash(hash *chainhash.Hash) *Message {
	msg := Message(*hash)
	return &msg
}

// String returns the message digest as a hex string.
func (msg Message) String() string {
	return hex.EncodeToString(msg[:])
}
