// SPDX-License-Identifier: MIT
// Package: fca/implication
//
// closure.go — closure under a rule base (C7, §4.7): the least fixed point
// of S ← S ∪ RHS_i over every i with LHS_i ⊆ S. A rule's LHS-subset test is
// monotone in S, so once a rule fires it stays fired; fired is a dirty-bit
// per rule (spec §9) that lets each pass skip rules already accounted for
// instead of re-testing their LHS against a superset it's already known to
// satisfy.
package implication

import (
	"github.com/fca-go/fca/simplify"
	"github.com/fca-go/fca/sparse"
)

// Closure computes cl_Σ(S) under s. If reduce is true it additionally
// returns the reduced rule set: the rules s did not need to fire, run
// through the default simplification passes (spec §4.7's "reduce mode").
// Returns ErrShapeMismatch if S.Size() != s.Attrs().
func (s *Store) Closure(S *sparse.Column, reduce bool) (*sparse.Column, *Store, error) {
	if S.Size() != s.attrs {
		return nil, nil, ErrShapeMismatch
	}
	cur := S.Clone()
	fired := make([]bool, s.Cardinality())
	for changed := true; changed; {
		changed = false
		for i := 0; i < s.Cardinality(); i++ {
			if fired[i] {
				continue
			}
			l, _ := s.lhs.Column(i)
			ok, err := sparse.Subset(l, cur)
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				continue
			}
			r, _ := s.rhs.Column(i)
			next, err := sparse.Union(cur, r)
			if err != nil {
				return nil, nil, err
			}
			cur = next
			fired[i] = true
			changed = true
		}
	}
	if !reduce {
		return cur, nil, nil
	}
	keep := make([]bool, s.Cardinality())
	for i, f := range fired {
		keep[i] = !f
	}
	remLHS, err := s.lhs.Keep(keep)
	if err != nil {
		return nil, nil, err
	}
	remRHS, err := s.rhs.Keep(keep)
	if err != nil {
		return nil, nil, err
	}
	simpLHS, simpRHS, err := simplify.ApplyRules(remLHS, remRHS, defaultRewrites, s.attrs)
	if err != nil {
		return nil, nil, err
	}
	reduced, err := NewFromStores(simpLHS, simpRHS)
	if err != nil {
		return nil, nil, err
	}
	return cur, reduced, nil
}

// defaultRewrites is the pass sequence Closure's reduce mode runs the
// unfired rules through: drop tautologies, merge same-LHS rules, drop
// subsumed rules, then shrink RHS against the remaining disjoint rules.
var defaultRewrites = []string{"reduction", "composition", "generalization", "simplification"}
