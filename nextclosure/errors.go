// SPDX-License-Identifier: MIT
// Package: fca/nextclosure
//
// errors.go — sentinel error set.
package nextclosure

import "errors"

var (
	// ErrCancelled indicates ctx was done before the scan finished.
	ErrCancelled = errors.New("nextclosure: cancelled")

	// ErrUnknownMode indicates Run was given a Mode it doesn't recognize.
	ErrUnknownMode = errors.New("nextclosure: unknown mode")
)
