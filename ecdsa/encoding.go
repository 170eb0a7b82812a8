// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/ModChain/secp256k1"
)

// Human-readable media (text, JSON, YAML) carry the signature as the hex
// string of its DER encoding.  Binary media (encoding.BinaryMarshaler, CBOR)
// carry the raw DER bytes.

// MarshalText implements encoding.TextMarshaler.
func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sig *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*sig = *parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sig Signature) MarshalBinary() ([]byte, error) {
	return sig.SerializeDER().Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	parsed, err := ParseDER(data)
	if err != nil {
		return err
	}
	*sig = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (sig Signature) MarshalYAML() (interface{}, error) {
	return sig.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (sig *Signature) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		str := fmt.Sprintf("malformed signature: expected a hex string at "+
			"line %d, column %d", value.Line, value.Column)
		return signatureError(secp256k1.ErrInvalidSignature, str)
	}
	return sig.UnmarshalText([]byte(value.Value))
}

// MarshalCBOR implements cbor.Marshaler.  The signature is encoded as a CBOR
// byte string holding the DER encoding.
func (sig Signature) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(sig.SerializeDER().Bytes())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (sig *Signature) UnmarshalCBOR(data []byte) error {
	var der []byte
	if err := cbor.Unmarshal(data, &der); err != nil {
		str := fmt.Sprintf("malformed signature: %v", err)
		return signatureError(secp256k1.ErrInvalidSignature, str)
	}
	return sig.UnmarshalBinary(der)
}
