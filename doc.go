// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 provides the contexts, keys, messages and errors used to
produce and verify ECDSA signatures over the secp256k1 curve.

The curve arithmetic itself is provided by github.com/decred/dcrd/dcrec/secp256k1/v4.
This package wraps it with the types needed by the ecdsa sub package, which
implements deterministic signing, verification, low-S canonicalization and the
DER, lax DER and compact signature encodings.  See
https://www.secg.org/sec2-v2.pdf for details on the curve.

An overview of the features provided by this package are as follows:

  - Contexts carrying a signing and/or verification capability checked by the
    compiler
  - Secret key parsing with range validation
  - Public key derivation, parsing per ANSI X9.62-1998 and serialization
  - 32-byte message digests, including conversion from chainhash.Hash
  - Shared secret generation via ECDH (RFC 5903)
  - Error kinds usable with errors.Is and errors.As

A typical use looks like this:

	ctx := secp256k1.New()
	sk, err := secp256k1.SecretKeyFromSlice(keyBytes)
	if err != nil {
		return err
	}
	pk := secp256k1.PublicKeyFromSecretKey(ctx, sk)
	msg := secp256k1.MessageFromHash(&hash)

	sig := ecdsa.Sign(ctx, msg, sk)
	if err := ecdsa.Verify(ctx, msg, sig, pk); err != nil {
		return err
	}

No hashing is performed on messages, so a message must already be the output
of a cryptographic hash function.
*/
package secp256k1
