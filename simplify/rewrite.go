// SPDX-License-Identifier: MIT
// Package: fca/simplify
//
// rewrite.go — the four rewrites named in spec §4.8: reduction drops
// trivial rules, composition merges rules sharing an LHS, generalization
// drops rules subsumed by a more general one already present, and
// simplification (Rsimplification_bg) and its rsimp reverse variant shrink
// one rule's RHS using another's, the way a background theory is used to
// simplify a basis against it. The simplification rewrites (simplification,
// rsimp, SimplifyWithFixed) read the active logic's tensor at call time via
// logic.Get(), the same process-scoped convention incidence.Intent/Extent
// use when no explicit Logic is passed; the other rewrites use no logic.
package simplify

import (
	"github.com/fca-go/fca/logic"
	"github.com/fca-go/fca/sparse"
)

// reduction drops every rule whose RHS is already a subset of its own LHS
// (RHS ⊆ LHS ⇒ the rule is a tautology: S ⊇ LHS already implies S ⊇ RHS).
func reduction(lhs, rhs *sparse.Store, attrs int) (*sparse.Store, *sparse.Store, error) {
	n := lhs.Cardinality()
	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		l, err := lhs.Column(i)
		if err != nil {
			return nil, nil, err
		}
		r, err := rhs.Column(i)
		if err != nil {
			return nil, nil, err
		}
		sub, err := sparse.Subset(r, l)
		if err != nil {
			return nil, nil, err
		}
		keep[i] = !sub
	}
	return applyKeep(lhs, rhs, keep)
}

// composition merges rules that share an identical LHS into a single rule
// whose RHS is the union of theirs, preserving Σ's closure operator while
// cutting Cardinality(). Rules are compared in column order; a later rule
// folds into the earliest rule it matches.
func composition(lhs, rhs *sparse.Store, attrs int) (*sparse.Store, *sparse.Store, error) {
	n := lhs.Cardinality()
	lcols := make([]*sparse.Column, n)
	rcols := make([]*sparse.Column, n)
	for i := 0; i < n; i++ {
		var err error
		if lcols[i], err = lhs.Column(i); err != nil {
			return nil, nil, err
		}
		if rcols[i], err = rhs.Column(i); err != nil {
			return nil, nil, err
		}
	}
	mergedInto := make([]int, n)
	for i := range mergedInto {
		mergedInto[i] = i
	}
	for i := 0; i < n; i++ {
		if mergedInto[i] != i {
			continue
		}
		for j := i + 1; j < n; j++ {
			if mergedInto[j] != j {
				continue
			}
			eq, err := sparse.Equal(lcols[i], lcols[j])
			if err != nil {
				return nil, nil, err
			}
			if !eq {
				continue
			}
			u, err := sparse.Union(rcols[i], rcols[j])
			if err != nil {
				return nil, nil, err
			}
			rcols[i] = u
			mergedInto[j] = i
		}
	}
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = mergedInto[i] == i
	}
	outLHS, err := sparse.NewStoreFromColumns(attrs, lcols)
	if err != nil {
		return nil, nil, err
	}
	outRHS, err := sparse.NewStoreFromColumns(attrs, rcols)
	if err != nil {
		return nil, nil, err
	}
	return applyKeep(outLHS, outRHS, keep)
}

// generalization drops rule i when some other rule j has a strictly smaller
// LHS whose RHS already covers rule i's RHS: LHS_j ⊊ LHS_i and RHS_i ⊆ RHS_j
// imply rule i follows from rule j by monotonicity of the closure operator
// (LHS_j ⊆ LHS_i ⇒ cl(LHS_i) ⊇ cl(LHS_j) ⊇ LHS_j ∪ RHS_j ⊇ RHS_i), so rule i
// adds nothing and can be generalized away.
func generalization(lhs, rhs *sparse.Store, attrs int) (*sparse.Store, *sparse.Store, error) {
	n := lhs.Cardinality()
	lcols := make([]*sparse.Column, n)
	rcols := make([]*sparse.Column, n)
	for i := 0; i < n; i++ {
		var err error
		if lcols[i], err = lhs.Column(i); err != nil {
			return nil, nil, err
		}
		if rcols[i], err = rhs.Column(i); err != nil {
			return nil, nil, err
		}
	}
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			ljSubLi, err := sparse.Subset(lcols[j], lcols[i])
			if err != nil {
				return nil, nil, err
			}
			if !ljSubLi {
				continue
			}
			eq, err := sparse.Equal(lcols[j], lcols[i])
			if err != nil {
				return nil, nil, err
			}
			if eq {
				continue
			}
			riSubRj, err := sparse.Subset(rcols[i], rcols[j])
			if err != nil {
				return nil, nil, err
			}
			if riSubRj {
				keep[i] = false
				break
			}
		}
	}
	return applyKeep(lhs, rhs, keep)
}

// simplification is Rsimplification_bg with no protected prefix (spec §9's
// resolved fixed=0 means "no protection").
func simplification(lhs, rhs *sparse.Store, attrs int) (*sparse.Store, *sparse.Store, error) {
	return simplifyCore(lhs, rhs, attrs, 0, false)
}

// rsimp is the reverse variant: where simplification picks the pivot rule by
// counting the rules it can shrink (outgoing hits), rsimp picks the pivot by
// counting the rules that can shrink it (incoming hits) before shrinking in
// the same direction. Both converge to a fixed point under the same
// self-intersection-zero predicate; they differ only in traversal order,
// which can leave a different (still valid) simplified basis.
func rsimp(lhs, rhs *sparse.Store, attrs int) (*sparse.Store, *sparse.Store, error) {
	return simplifyCore(lhs, rhs, attrs, 0, true)
}

// SimplifyWithFixed runs Rsimplification_bg treating the first fixed
// columns as a background theory: they participate fully as pivots and may
// shrink any other rule, but per spec §4.8 step 5 they are themselves
// dropped from the result, since a caller simplifying against a background
// theory already has them and does not want them echoed back.
func SimplifyWithFixed(lhs, rhs *sparse.Store, attrs, fixed int) (*sparse.Store, *sparse.Store, error) {
	return simplifyCore(lhs, rhs, attrs, fixed, false)
}

// simplifyCore implements Rsimplification_bg (spec §4.8):
//  1. S[i][j] = LHS_i ⊆ (LHS_j ∪ RHS_j), restricted to j whose rule is
//     disjoint (self_intersection(LHS_j, RHS_j) == 0).
//  2. Repeatedly pick the active pivot with the most hits (ties broken by
//     lowest index), including the background columns below fixed; for
//     every active j with S[pivot][j] and j != pivot, shrink RHS_j by RHS_pivot
//     (RHS_j ← RHS_j \ RHS_pivot), recomputing disjoint[j] from the shrunk
//     RHS_j immediately (spec §4.8 step 4); then deactivate pivot.
//  3. Stop when no active pivot has more than one hit.
//  4. Drop rules left with an empty RHS, then drop the first fixed columns
//     outright (background theory, never part of the returned basis).
//
// reverse selects the pivot by counting incoming hits (rows i with
// S[i][r]==true) instead of outgoing hits (columns j with S[r][j]==true).
func simplifyCore(lhs, rhs *sparse.Store, attrs, fixed int, reverse bool) (*sparse.Store, *sparse.Store, error) {
	n := lhs.Cardinality()
	lcols := make([]*sparse.Column, n)
	rcols := make([]*sparse.Column, n)
	for i := 0; i < n; i++ {
		var err error
		if lcols[i], err = lhs.Column(i); err != nil {
			return nil, nil, err
		}
		if rcols[i], err = rhs.Column(i); err != nil {
			return nil, nil, err
		}
	}
	tensor := logic.Get().Tensor
	disjoint := make([]bool, n)
	for j := 0; j < n; j++ {
		si, err := sparse.SelfIntersection(lcols[j], rcols[j], tensor)
		if err != nil {
			return nil, nil, err
		}
		disjoint[j] = si == 0
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	for {
		s, err := buildPredicate(lcols, rcols, disjoint)
		if err != nil {
			return nil, nil, err
		}
		pivot, hits := pickPivot(s, active, reverse)
		if pivot < 0 || hits <= 1 {
			break
		}
		for j := 0; j < n; j++ {
			if j == pivot || !active[j] {
				continue
			}
			if !s[pivot][j] {
				continue
			}
			d, err := sparse.Difference(rcols[j], rcols[pivot])
			if err != nil {
				return nil, nil, err
			}
			rcols[j] = d
			si, err := sparse.SelfIntersection(lcols[j], rcols[j], tensor)
			if err != nil {
				return nil, nil, err
			}
			disjoint[j] = si == 0
		}
		active[pivot] = false
	}
	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		keep[i] = i >= fixed && !sparse.IsEmpty(rcols[i])
	}
	outLHS, err := sparse.NewStoreFromColumns(attrs, lcols)
	if err != nil {
		return nil, nil, err
	}
	outRHS, err := sparse.NewStoreFromColumns(attrs, rcols)
	if err != nil {
		return nil, nil, err
	}
	return applyKeep(outLHS, outRHS, keep)
}

// buildPredicate computes S[i][j] = LHS_i ⊆ (LHS_j ∪ RHS_j) for every j that
// is disjoint.
func buildPredicate(lcols, rcols []*sparse.Column, disjoint []bool) ([][]bool, error) {
	n := len(lcols)
	s := make([][]bool, n)
	for j := 0; j < n; j++ {
		s[j] = make([]bool, n)
	}
	unions := make([]*sparse.Column, n)
	for j := 0; j < n; j++ {
		if !disjoint[j] {
			continue
		}
		u, err := sparse.Union(lcols[j], rcols[j])
		if err != nil {
			return nil, err
		}
		unions[j] = u
	}
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if !disjoint[j] {
				continue
			}
			ok, err := sparse.Subset(lcols[i], unions[j])
			if err != nil {
				return nil, err
			}
			out[i][j] = ok
		}
	}
	return out, nil
}

// pickPivot selects the active index with the most hits, counting row i's
// outgoing hits S[i][*] normally, or column r's incoming hits S[*][r] when
// reverse is set. Background (fixed) columns are eligible candidates too —
// only the final result excludes them. Returns (-1, 0) if no active
// candidate has any hit.
func pickPivot(s [][]bool, active []bool, reverse bool) (int, int) {
	n := len(s)
	best, bestHits := -1, 0
	for r := 0; r < n; r++ {
		if !active[r] {
			continue
		}
		var hits int
		for k := 0; k < n; k++ {
			if k == r {
				continue
			}
			var hit bool
			if reverse {
				hit = s[k][r]
			} else {
				hit = s[r][k]
			}
			if hit {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = r, hits
		}
	}
	return best, bestHits
}

// applyKeep builds the Keep-filtered pair, returning empty-but-valid Stores
// when nothing survives.
func applyKeep(lhs, rhs *sparse.Store, keep []bool) (*sparse.Store, *sparse.Store, error) {
	newLHS, err := lhs.Keep(keep)
	if err != nil {
		return nil, nil, err
	}
	newRHS, err := rhs.Keep(keep)
	if err != nil {
		return nil, nil, err
	}
	return newLHS, newRHS, nil
}
