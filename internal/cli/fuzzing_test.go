//go:build fuzzing

package cli

const fuzzing = true
