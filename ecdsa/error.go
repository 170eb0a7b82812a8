// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"

	"github.com/ModChain/secp256k1"
)

// signatureError creates an Error given a set of arguments.
func signatureError(kind secp256k1.ErrorKind, desc string) secp256k1.Error {
	return secp256k1.Error{Err: kind, Description: desc}
}

// engineError creates an Error of the given kind that also wraps the error
// reported by the curve engine, so both match with errors.Is.
func engineError(kind secp256k1.ErrorKind, err error) secp256k1.Error {
	return secp256k1.Error{
		Err:         fmt.Errorf("%w: %w", kind, err),
		Description: "malformed signature: " + err.Error(),
	}
}
