// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// These constants are used to identify a specific Error.
const (
	// ErrInvalidSignature is returned when bytes that should encode a
	// signature in DER, lax DER, compact or hex form do not decode to a
	// well-formed signature.  This includes empty input and compact input of
	// the wrong length.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrIncorrectSignature is returned when a well-formed signature fails
	// verification for the given message and public key.
	ErrIncorrectSignature = ErrorKind("ErrIncorrectSignature")

	// ErrInvalidMessage is returned when a message digest is not exactly 32
	// bytes.
	ErrInvalidMessage = ErrorKind("ErrInvalidMessage")

	// ErrInvalidSecretKey is returned when a secret key is not 32 bytes or is
	// not in the range [1, N-1].
	ErrInvalidSecretKey = ErrorKind("ErrInvalidSecretKey")

	// ErrInvalidPublicKey is returned when a serialized public key does not
	// parse to a point on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")
)

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
