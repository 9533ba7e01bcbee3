// SPDX-License-Identifier: MIT
// Package: fca/nextclosure
//
// nextclosure.go — the Next-Closure driver (C5, §4.5), grounded on
// dijkstra.runner's init()/process() split: Run builds a nextClosureRunner,
// calls init() once to seed A = cl(∅), then repeatedly calls step() to find
// the lectically-next closed attribute set until none remains. Under
// ModeImplications, step() additionally detects pseudo-intents — candidate
// sets whose base-context closure and accumulated-basis closure disagree —
// and grows the canonical basis with each one found, the Duquenne–Guigues
// construction. The active logic is read once at Run's entry (spec §9's
// resolved open question) and threaded explicitly through every closure
// call, immune to a concurrent logic.Use from outside this scan.
package nextclosure

import (
	"context"

	"github.com/fca-go/fca/implication"
	"github.com/fca-go/fca/incidence"
	"github.com/fca-go/fca/logic"
	"github.com/fca-go/fca/sparse"
)

// Run scans c's concept lattice in lectic order of the closed attribute
// sets. Returns ErrUnknownMode for an unrecognized mode, ErrCancelled if ctx
// is done before the scan completes.
func Run(ctx context.Context, c *incidence.Incidence, mode Mode) (*Result, error) {
	if mode != ModeConcepts && mode != ModeImplications {
		return nil, ErrUnknownMode
	}
	basis, err := implication.NewStore(c.NumAttributes())
	if err != nil {
		return nil, err
	}
	r := &nextClosureRunner{
		ctx:   ctx,
		c:     c,
		n:     c.NumAttributes(),
		l:     logic.Get(),
		mode:  mode,
		basis: basis,
	}
	r.init()
	for {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}
		// concepts mode emits each intent and its extent; implications mode
		// does this too and additionally grows the basis in step() (spec
		// §4.5: "implications mode: additionally...").
		ext, err := c.ExtentUnder(r.l, incidence.NewAttributeSet(r.a))
		if err != nil {
			return nil, err
		}
		r.concepts = append(r.concepts, Concept{
			Extent: ext,
			Intent: incidence.NewAttributeSet(r.a.Clone()),
		})
		if isFull(r.a, r.n) {
			break
		}
		ok, err := r.step()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return &Result{Concepts: r.concepts, Basis: r.basis, ClosureCount: r.closureCount}, nil
}

// nextClosureRunner holds the mutable state for a single Next-Closure scan.
type nextClosureRunner struct {
	ctx          context.Context
	c            *incidence.Incidence
	n            int
	l            logic.Logic
	mode         Mode
	basis        *implication.Store
	a            *sparse.Column // current closed attribute set, dense-backed
	concepts     []Concept
	closureCount int
}

// init seeds A with the closure of the empty attribute set.
func (r *nextClosureRunner) init() {
	zero, _ := sparse.NewColumn(r.n)
	a, _ := r.combinedClosure(incidence.NewAttributeSet(zero))
	r.a = a
}

// combinedClosure computes cl_K(T), additionally folding in the accumulated
// basis's forward-chaining closure under ModeImplications, to a fixed point.
func (r *nextClosureRunner) combinedClosure(T *incidence.FuzzySet) (*sparse.Column, error) {
	cur := T.Column().Clone()
	for {
		r.closureCount++
		next, err := r.c.ClosureUnder(r.l, incidence.NewAttributeSet(cur))
		if err != nil {
			return nil, err
		}
		col := next.Column()
		if r.mode == ModeImplications && r.basis.Cardinality() > 0 {
			col, _, err = r.basis.Closure(col, false)
			if err != nil {
				return nil, err
			}
		}
		eq, err := sparse.Equal(cur, col)
		if err != nil {
			return nil, err
		}
		if eq {
			return col, nil
		}
		cur = col
	}
}

// step finds the lectically-next closed set after r.a, updating r.a in
// place. Returns (false, nil) if r.a was the top (no successor). Per spec
// §4.5: for k = n-1..0, try every grade v ∈ G_k strictly greater than
// A(a_k), smallest first, accepting the first whose closure disturbs no
// position below k and still exceeds A(a_k) at position k (a closure that
// floating-point rounding pulls back to A(a_k) or below is skipped, so the
// scan always advances).
func (r *nextClosureRunner) step() (bool, error) {
	aVals := r.a.Extract()
	for i := r.n - 1; i >= 0; i-- {
		for _, v := range r.c.Grades().For(i) {
			if v <= aVals[i] {
				continue
			}
			entries := make(map[int]float64, i+1)
			for k := 0; k < i; k++ {
				if aVals[k] != 0 {
					entries[k] = aVals[k]
				}
			}
			entries[i] = v
			seed, err := sparse.NewColumnFromMap(r.n, entries)
			if err != nil {
				return false, err
			}
			closed, err := r.combinedClosure(incidence.NewAttributeSet(seed))
			if err != nil {
				return false, err
			}
			closedVals := closed.Extract()
			if !prefixEqual(closedVals, aVals, i) || closedVals[i] <= aVals[i] {
				continue
			}
			if r.mode == ModeImplications {
				eqSeed, err := sparse.Equal(seed, closed)
				if err != nil {
					return false, err
				}
				if !eqSeed {
					if err := r.basis.Append(seed, closed); err != nil {
						return false, err
					}
				}
			}
			r.a = closed
			return true, nil
		}
	}
	return false, nil
}

// prefixEqual reports whether a and b agree on every index < i.
func prefixEqual(a, b []float64, i int) bool {
	for k := 0; k < i; k++ {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

// isFull reports whether col has every one of n attributes set to 1.
func isFull(col *sparse.Column, n int) bool {
	if col.NNZ() != n {
		return false
	}
	for _, v := range col.Extract() {
		if v != 1 {
			return false
		}
	}
	return true
}
