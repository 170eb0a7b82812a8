// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa provides secp256k1-optimized ECDSA signing, verification,
canonicalization and encoding.

Signatures are produced deterministically according to RFC6979 and are always
in the canonical low-S form described by BIP0062.  Extra entropy may be mixed
into the nonce derivation to obtain several distinct signatures for the same
message and key, and the nonce may be ground until the signature satisfies a
predicate such as a low R value or a maximum DER length.

# Encodings

Three external encodings are supported:

  - Strict DER per section 10 of ISO/IEC 8825-1 (ParseDER, SerializeDER)
  - Lax DER as accepted by Bitcoin nodes before 2016 (ParseDERLax, parsing only)
  - 64-byte compact R || S (ParseCompact, SerializeCompact)

The text form of a signature is the lowercase hex of its DER encoding, which is
also what the JSON and YAML hooks use.  Binary marshaling and CBOR use the raw
DER bytes.

# Capabilities

All signing functions require a context whose capability marker satisfies
secp256k1.Signing and Verify requires one satisfying secp256k1.Verification.
Passing the wrong kind of context is a compile-time error:

	ctx := secp256k1.NewVerificationOnly()
	ecdsa.Sign(ctx, msg, sk) // does not compile

# Errors

Parsing failures are reported with the secp256k1.ErrInvalidSignature kind and
verification failures with secp256k1.ErrIncorrectSignature.  Both can be
checked with errors.Is.
*/
package ecdsa
