// SPDX-License-Identifier: MIT
// Package: fca/incidence
//
// errors.go — sentinel error set. Every algorithm in this package returns
// these sentinels; callers branch with errors.Is.
package incidence

import "errors"

var (
	// ErrShapeMismatch indicates a fuzzy set's universe does not match the
	// expected one (objects vs attributes).
	ErrShapeMismatch = errors.New("incidence: universe mismatch")

	// ErrEmptyContext indicates an operation requiring an incidence was
	// invoked on a nil *Incidence.
	ErrEmptyContext = errors.New("incidence: no incidence loaded")

	// ErrNotBinary indicates a binary-only operation was called on a
	// non-{0,1} incidence.
	ErrNotBinary = errors.New("incidence: operation requires a binary incidence")

	// ErrNameMismatch indicates attribute/object name slices do not align
	// with the supplied matrix dimensions, or contain duplicates.
	ErrNameMismatch = errors.New("incidence: name/dimension mismatch")
)
