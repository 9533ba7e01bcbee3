// SPDX-License-Identifier: MIT
// Package: fca/implication
//
// errors.go — sentinel error set.
package implication

import "errors"

var (
	// ErrDimensionMismatch indicates LHS/RHS column counts or universes disagree.
	ErrDimensionMismatch = errors.New("implication: dimension mismatch")

	// ErrOutOfRange indicates a rule index outside [0, Cardinality()).
	ErrOutOfRange = errors.New("implication: index out of range")

	// ErrShapeMismatch indicates a supplied column's universe size does not
	// match the store's attribute count.
	ErrShapeMismatch = errors.New("implication: universe mismatch")

	// ErrFilterConfig indicates a Filter predicate needs an *incidence.Incidence
	// (e.g. a support threshold) but none was supplied.
	ErrFilterConfig = errors.New("implication: filter predicate missing required incidence")
)
