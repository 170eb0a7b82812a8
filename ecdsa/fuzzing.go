//go:build fuzzing

package ecdsa

// fuzzing short-circuits the grind loop after a single attempt so fuzz
// targets always terminate.
const fuzzing = true
