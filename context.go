// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// SignOnly marks a context that may only be used to produce signatures.
type SignOnly struct{}

// VerifyOnly marks a context that may only be used to verify signatures.
type VerifyOnly struct{}

// All marks a context that may be used to both produce and verify
// signatures.
type All struct{}

// Capability is the set of capability markers a Context can carry.
type Capability interface {
	SignOnly | VerifyOnly | All
}

// Signing is satisfied by the capability markers that permit signing.  It is
// used as a type constraint by the signing functions so that passing a
// verification-only context is rejected by the compiler.
type Signing interface {
	SignOnly | All
}

// Verification is satisfied by the capability markers that permit
// verification.
type Verification interface {
	VerifyOnly | All
}

// Context carries the capability marker C which determines which of the
// signing and verification operations accept it.
//
// A Context holds no mutable state, so a single instance may be shared freely
// between goroutines.  The precomputed tables used for base point
// multiplication live in the curve engine and are shared by all contexts.
type Context[C Capability] struct {
	_ [0]C
}

// New returns a context capable of both signing and verification.
func New() *Context[All] {
	return new(Context[All])
}

// Global is a shared context capable of both signing and verification.  It is
// used by the convenience methods that take no context.
var Global = New()

// NewSigningOnly returns a context that can only be used for signing.
func NewSigningOnly() *Context[SignOnly] {
	return new(Context[SignOnly])
}

// NewVerificationOnly returns a context that can only be used for
// verification.
func NewVerificationOnly() *Context[VerifyOnly] {
	return new(Context[VerifyOnly])
}

// CanSign reports whether the context carries the signing capability.
func (ctx *Context[C]) CanSign() bool {
	switch any(*new(C)).(type) {
	case SignOnly, All:
		return true
	}
	return false
}

// CanVerify reports whether the context carries the verification capability.
func (ctx *Context[C]) CanVerify() bool {
	switch any(*new(C)).(type) {
	case VerifyOnly, All:
		return true
	}
	return false
}

// String returns a short description of the context capabilities.
func (ctx *Context[C]) String() string {
	switch {
	case ctx.CanSign() && ctx.CanVerify():
		return "secp256k1 context (sign, verify)"
	case ctx.CanSign():
		return "secp256k1 context (sign)"
	default:
		return "secp256k1 context (verify)"
	}
}
