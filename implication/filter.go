// SPDX-License-Identifier: MIT
// Package: fca/implication
//
// filter.go — Store.Filter (spec §4.6): returns a sub-store containing only
// the rules matching every configured condition. Disabled conditions use
// the sentinel value -1 (for attribute indices) or a negative threshold,
// mirroring the teacher's functional-options convention of "zero/negative
// means unset" rather than a separate *bool per field.
package implication

import (
	"github.com/fca-go/fca/incidence"
	"github.com/fca-go/fca/sparse"
)

// FilterOptions configures Store.Filter. An attribute index of -1 disables
// that condition; a negative threshold disables MinSupport/MinLHSSize/MinRHSSize.
type FilterOptions struct {
	// LHSIn requires the attribute to be present (non-zero) in LHS.
	LHSIn int
	// RHSIn requires the attribute to be present (non-zero) in RHS.
	RHSIn int
	// NotLHS requires the attribute to be absent (zero) from LHS.
	NotLHS int
	// MinSupport requires Support(i, Incidence) >= MinSupport.
	MinSupport float64
	// Incidence is required when MinSupport >= 0.
	Incidence *incidence.Incidence
	// MinLHSSize / MinRHSSize require the respective fuzzy cardinality >= threshold.
	MinLHSSize float64
	MinRHSSize float64
}

// DefaultFilterOptions returns every condition disabled.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{LHSIn: -1, RHSIn: -1, NotLHS: -1, MinSupport: -1, MinLHSSize: -1, MinRHSSize: -1}
}

// Filter returns the sub-store of rules matching every enabled condition in
// opts. Returns ErrFilterConfig if MinSupport is enabled without Incidence.
func (s *Store) Filter(opts FilterOptions) (*Store, error) {
	if opts.MinSupport >= 0 && opts.Incidence == nil {
		return nil, ErrFilterConfig
	}
	keep := make([]bool, s.Cardinality())
	for i := range keep {
		l, err := s.lhs.Column(i)
		if err != nil {
			return nil, err
		}
		r, err := s.rhs.Column(i)
		if err != nil {
			return nil, err
		}
		ok := true
		if opts.LHSIn >= 0 {
			v, _ := l.Get(opts.LHSIn)
			ok = ok && v != 0
		}
		if opts.RHSIn >= 0 {
			v, _ := r.Get(opts.RHSIn)
			ok = ok && v != 0
		}
		if opts.NotLHS >= 0 {
			v, _ := l.Get(opts.NotLHS)
			ok = ok && v == 0
		}
		if ok && opts.MinLHSSize >= 0 {
			ok = sparse.Cardinality(l) >= opts.MinLHSSize
		}
		if ok && opts.MinRHSSize >= 0 {
			ok = sparse.Cardinality(r) >= opts.MinRHSSize
		}
		if ok && opts.MinSupport >= 0 {
			sup, err := s.Support(i, opts.Incidence)
			if err != nil {
				return nil, err
			}
			ok = sup >= opts.MinSupport
		}
		keep[i] = ok
	}
	newLHS, err := s.lhs.Keep(keep)
	if err != nil {
		return nil, err
	}
	newRHS, err := s.rhs.Keep(keep)
	if err != nil {
		return nil, err
	}
	return &Store{attrs: s.attrs, lhs: newLHS, rhs: newRHS}, nil
}
