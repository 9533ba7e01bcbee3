// SPDX-License-Identifier: MIT
// Package: fca/simplify
//
// registry.go — the named-rewrite registry, populated at init() the way the
// teacher's builder package registers named Constructors rather than having
// callers reach for bare functions.
package simplify

import "github.com/fca-go/fca/sparse"

// RewriteFunc is a single closure-preserving rewrite over an aligned
// LHS/RHS pair of rules on an attribute universe of size attrs. It returns a
// new pair; the receiver is never mutated.
type RewriteFunc func(lhs, rhs *sparse.Store, attrs int) (*sparse.Store, *sparse.Store, error)

var registry = map[string]RewriteFunc{}

func init() {
	registry["reduction"] = reduction
	registry["composition"] = composition
	registry["generalization"] = generalization
	registry["simplification"] = simplification
	registry["rsimp"] = rsimp
}

// Register adds or replaces a named rewrite. Callers may shadow a built-in
// name to swap in a custom variant.
func Register(name string, fn RewriteFunc) {
	registry[name] = fn
}

// Lookup returns the rewrite registered under name.
// Returns ErrUnknownRewrite if name is not registered.
func Lookup(name string) (RewriteFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, ErrUnknownRewrite
	}
	return fn, nil
}

// ApplyRules runs the named rewrites in order, looping over the full
// sequence until a pass leaves lhs/rhs unchanged (the fixed point named in
// spec §4.8). Returns ErrUnknownRewrite if any name is unregistered,
// ErrInvariantViolation if a rewrite's output breaks the aligned-columns
// invariant — in which case the pair from immediately before that rewrite is
// what the caller receaves via the error path; ApplyRules never returns a
// partially-applied pair silently.
func ApplyRules(lhs, rhs *sparse.Store, names []string, attrs int) (*sparse.Store, *sparse.Store, error) {
	curLHS, curRHS := lhs, rhs
	for changed := true; changed; {
		changed = false
		for _, name := range names {
			fn, err := Lookup(name)
			if err != nil {
				return nil, nil, err
			}
			newLHS, newRHS, err := fn(curLHS, curRHS, attrs)
			if err != nil {
				return nil, nil, err
			}
			if newLHS.Rows() != attrs || newRHS.Rows() != attrs || newLHS.Cardinality() != newRHS.Cardinality() {
				return curLHS, curRHS, ErrInvariantViolation
			}
			same, err := storesEqual(curLHS, newLHS)
			if err != nil {
				return nil, nil, err
			}
			sameRHS, err := storesEqual(curRHS, newRHS)
			if err != nil {
				return nil, nil, err
			}
			if !same || !sameRHS {
				changed = true
			}
			curLHS, curRHS = newLHS, newRHS
		}
	}
	return curLHS, curRHS, nil
}

// storesEqual reports whether a and b have the same cardinality and every
// column pairwise-equal.
func storesEqual(a, b *sparse.Store) (bool, error) {
	if a.Cardinality() != b.Cardinality() {
		return false, nil
	}
	for i := 0; i < a.Cardinality(); i++ {
		ca, err := a.Column(i)
		if err != nil {
			return false, err
		}
		cb, err := b.Column(i)
		if err != nil {
			return false, err
		}
		eq, err := sparse.Equal(ca, cb)
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}
