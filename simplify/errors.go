// SPDX-License-Identifier: MIT
// Package: fca/simplify
//
// errors.go — sentinel error set.
package simplify

import "errors"

var (
	// ErrUnknownRewrite indicates Lookup/ApplyRules was given a name not in
	// the registry.
	ErrUnknownRewrite = errors.New("simplify: unknown rewrite")

	// ErrDimensionMismatch indicates lhs and rhs disagree in cardinality or
	// universe size.
	ErrDimensionMismatch = errors.New("simplify: dimension mismatch")

	// ErrInvariantViolation indicates a rewrite's output failed the
	// aligned-columns invariant (same cardinality, same universe as its
	// input); the pre-rewrite pair is retained and the error is returned to
	// the caller instead.
	ErrInvariantViolation = errors.New("simplify: rewrite violated the aligned-columns invariant")
)
