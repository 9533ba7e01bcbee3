// SPDX-License-Identifier: MIT
// Package: fca/entail
//
// errors.go — sentinel error set.
package entail

import "errors"

// ErrAttrMismatch indicates the two stores being compared disagree on
// attribute universe size.
var ErrAttrMismatch = errors.New("entail: attribute universe mismatch")
