//go:build debug

package engine

// debugAssertions enables per-tick invariant checks, panicking on violation
const debugAssertions = true
