// SPDX-License-Identifier: MIT
// Package: fca/logic
//
// errors.go — sentinel errors for the logic registry.
//
// Error policy: only package-level sentinels are exposed; callers branch
// with errors.Is. Sentinels are never wrapped with formatted strings at the
// definition site — context, if any, is added by the caller with %w.
package logic

import "errors"

// ErrUnknownLogic is returned when a name is not present in the registry.
var ErrUnknownLogic = errors.New("logic: unknown logic")

// ErrDuplicateLogic is returned by Register when name is already registered.
var ErrDuplicateLogic = errors.New("logic: name already registered")

// ErrNilLogic is returned by Register when the supplied Logic has a nil
// t-norm or residuum.
var ErrNilLogic = errors.New("logic: incomplete logic definition")
