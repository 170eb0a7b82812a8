//go:build !fuzzing

package ecdsa

const fuzzing = false
