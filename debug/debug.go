//go:build !debug

// Package debug holds the build-tag debug flag and the assertion helper used
// to guard internal invariants.
package debug

// Debug is true when the binary is built with the debug tag.
const Debug = false

// Assert does nothing unless the debug build tag is provided.
func Assert(condition bool, message ...string) {}
