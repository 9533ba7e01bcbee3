// SPDX-License-Identifier: MIT
// Package: fca/entail
//
// entail.go — Σ_a ⊨ Σ_b iff every rule of b follows from Σ_a's closure
// operator: cl_a(LHS_j) ⊇ RHS_j for every j. Equivalent is entailment in
// both directions, the standard definition of logical equivalence between
// implication bases.
package entail

import (
	"github.com/fca-go/fca/implication"
	"github.com/fca-go/fca/sparse"
)

// Entails reports whether a ⊨ b: every rule LHS_j ⇒ RHS_j of b is derivable
// from a, i.e. RHS_j ⊆ cl_a(LHS_j). Returns ErrAttrMismatch if a and b have
// different attribute universe sizes.
func Entails(a, b *implication.Store) (bool, error) {
	if a.Attrs() != b.Attrs() {
		return false, ErrAttrMismatch
	}
	for j := 0; j < b.Cardinality(); j++ {
		l, err := b.LHS(j)
		if err != nil {
			return false, err
		}
		r, err := b.RHS(j)
		if err != nil {
			return false, err
		}
		cl, _, err := a.Closure(l, false)
		if err != nil {
			return false, err
		}
		ok, err := sparse.Subset(r, cl)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Equivalent reports whether a and b entail each other, i.e. generate the
// same closure system.
func Equivalent(a, b *implication.Store) (bool, error) {
	ab, err := Entails(a, b)
	if err != nil {
		return false, err
	}
	if !ab {
		return false, nil
	}
	return Entails(b, a)
}
