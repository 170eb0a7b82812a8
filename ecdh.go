// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// GenerateSharedSecret generates a shared secret based on a secret key and a
// public key using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x.
//
// It is recommended to securely hash the result before using as a cryptographic
// key.
func GenerateSharedSecret(sk *SecretKey, pk *PublicKey) []byte {
	var point, result dcrsecp.JacobianPoint
	pk.key.AsJacobian(&point)
	dcrsecp.ScalarMultNonConst(&sk.key, &point, &result)
	result.ToAffine()
	xBytes := result.X.Bytes()
	return xBytes[:]
}

// ECDH generates a shared secret and is an alias to GenerateSharedSecret, however
// by being part of the secret key it is closer to go's own ecdh api.
func (sk *SecretKey) ECDH(remote *PublicKey) ([]byte, error) {
	return GenerateSharedSecret(sk, remote), nil
}
