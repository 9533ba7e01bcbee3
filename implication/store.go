// SPDX-License-Identifier: MIT
// Package: fca/implication
//
// store.go — the implication store (C6, §4.6): aligned LHS/RHS columns over
// a shared attribute universe, with the query surface (cardinality, size,
// support, filter, holds_in, respects) named in spec §4.6 / §6. Grounded on
// the teacher's pattern of wrapping a single underlying representation
// (matrix.Matrix) behind a purpose-built type rather than inventing a new
// array shape per wrapper — here, sparse.Store plays that role for both LHS
// and RHS.
package implication

import (
	"github.com/fca-go/fca/incidence"
	"github.com/fca-go/fca/sparse"
)

// Store holds Cardinality() implications over an attribute universe of size
// Attrs(): column i is the rule LHS[:,i] ⇒ RHS[:,i].
type Store struct {
	attrs int
	lhs   *sparse.Store
	rhs   *sparse.Store
}

// Attrs returns the attribute universe size.
func (s *Store) Attrs() int { return s.attrs }

// Cardinality returns the number of rules.
func (s *Store) Cardinality() int { return s.lhs.Cardinality() }

// NewStore creates an empty Store over an attribute universe of size attrs.
func NewStore(attrs int) (*Store, error) {
	lhs, err := sparse.NewStore(attrs)
	if err != nil {
		return nil, err
	}
	rhs, err := sparse.NewStore(attrs)
	if err != nil {
		return nil, err
	}
	return &Store{attrs: attrs, lhs: lhs, rhs: rhs}, nil
}

// NewStoreFromColumns builds a Store from aligned LHS/RHS column slices.
// Returns ErrDimensionMismatch if the slices differ in length.
func NewStoreFromColumns(attrs int, lhsCols, rhsCols []*sparse.Column) (*Store, error) {
	if len(lhsCols) != len(rhsCols) {
		return nil, ErrDimensionMismatch
	}
	s, err := NewStore(attrs)
	if err != nil {
		return nil, err
	}
	for i := range lhsCols {
		if err := s.Append(lhsCols[i], rhsCols[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewFromStores wraps a pair of already-aligned sparse.Store values (as
// produced by the simplification engine, C8) into an implication Store.
// Returns ErrDimensionMismatch if their cardinalities or universes disagree.
func NewFromStores(lhs, rhs *sparse.Store) (*Store, error) {
	if lhs.Rows() != rhs.Rows() || lhs.Cardinality() != rhs.Cardinality() {
		return nil, ErrDimensionMismatch
	}
	return &Store{attrs: lhs.Rows(), lhs: lhs, rhs: rhs}, nil
}

// Append adds the rule lhs ⇒ rhs as the new last column.
// Returns ErrShapeMismatch if either column's universe != s.Attrs().
func (s *Store) Append(lhs, rhs *sparse.Column) error {
	if lhs.Size() != s.attrs || rhs.Size() != s.attrs {
		return ErrShapeMismatch
	}
	if err := s.lhs.Append(lhs); err != nil {
		return err
	}
	return s.rhs.Append(rhs)
}

// LHS returns the i-th rule's left-hand side.
func (s *Store) LHS(i int) (*sparse.Column, error) { return s.lhs.Column(i) }

// RHS returns the i-th rule's right-hand side.
func (s *Store) RHS(i int) (*sparse.Column, error) { return s.rhs.Column(i) }

// LHSStore exposes the underlying LHS matrix, e.g. for the simplify package.
func (s *Store) LHSStore() *sparse.Store { return s.lhs }

// RHSStore exposes the underlying RHS matrix.
func (s *Store) RHSStore() *sparse.Store { return s.rhs }

// Size returns (|LHS[:,i]|, |RHS[:,i]|) as fuzzy cardinalities.
// Returns ErrOutOfRange if i is out of bounds.
func (s *Store) Size(i int) (lhsSize, rhsSize float64, err error) {
	l, err := s.lhs.Column(i)
	if err != nil {
		return 0, 0, ErrOutOfRange
	}
	r, err := s.rhs.Column(i)
	if err != nil {
		return 0, 0, ErrOutOfRange
	}
	return sparse.Cardinality(l), sparse.Cardinality(r), nil
}

// Support returns the fraction of objects in c whose attribute vector
// pointwise dominates LHS[:,i]. Returns ErrShapeMismatch if c's attribute
// count != s.Attrs(), ErrOutOfRange if i is out of bounds.
func (s *Store) Support(i int, c *incidence.Incidence) (float64, error) {
	if c.NumAttributes() != s.attrs {
		return 0, ErrShapeMismatch
	}
	l, err := s.lhs.Column(i)
	if err != nil {
		return 0, ErrOutOfRange
	}
	if c.NumObjects() == 0 {
		return 0, nil
	}
	var hits int
	for o := 0; o < c.NumObjects(); o++ {
		entries := make(map[int]float64, s.attrs)
		for a := 0; a < s.attrs; a++ {
			if v := c.Value(a, o); v != 0 {
				entries[a] = v
			}
		}
		objAttrs, err := sparse.NewColumnFromMap(s.attrs, entries)
		if err != nil {
			return 0, err
		}
		ok, err := sparse.Subset(l, objAttrs)
		if err != nil {
			return 0, err
		}
		if ok {
			hits++
		}
	}
	return float64(hits) / float64(c.NumObjects()), nil
}

// DropDead removes every rule whose RHS is empty (spec §3: "a rule with
// empty RHS is dead and must be garbage-collected").
func (s *Store) DropDead() (*Store, error) {
	keep := make([]bool, s.Cardinality())
	for i := range keep {
		r, err := s.rhs.Column(i)
		if err != nil {
			return nil, err
		}
		keep[i] = !sparse.IsEmpty(r)
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

// HoldsIn returns, for each rule, whether every object's attribute vector in
// c satisfies LHS ⇒ RHS (I[:,o] ⊇ LHS ⇒ I[:,o] ⊇ RHS).
// Returns ErrShapeMismatch if c's attribute count != s.Attrs().
func (s *Store) HoldsIn(c *incidence.Incidence) ([]bool, error) {
	if c.NumAttributes() != s.attrs {
		return nil, ErrShapeMismatch
	}
	out := make([]bool, s.Cardinality())
	for i := 0; i < s.Cardinality(); i++ {
		l, _ := s.lhs.Column(i)
		r, _ := s.rhs.Column(i)
		out[i] = true
		for o := 0; o < c.NumObjects(); o++ {
			entries := make(map[int]float64, s.attrs)
			for a := 0; a < s.attrs; a++ {
				if v := c.Value(a, o); v != 0 {
					entries[a] = v
				}
			}
			objAttrs, err := sparse.NewColumnFromMap(s.attrs, entries)
			if err != nil {
				return nil, err
			}
			coversLHS, _ := sparse.Subset(l, objAttrs)
			if !coversLHS {
				continue
			}
			coversRHS, _ := sparse.Subset(r, objAttrs)
			if !coversRHS {
				out[i] = false
				break
			}
		}
	}
	return out, nil
}

// Respects returns a len(sets) x s.Cardinality() matrix where
// result[k][j] is true iff sets[k] ⊉ LHS[:,j] or sets[k] ⊇ RHS[:,j].
// Returns ErrShapeMismatch if any set's universe != s.Attrs().
func (s *Store) Respects(sets []*sparse.Column) ([][]bool, error) {
	out := make([][]bool, len(sets))
	for k, set := range sets {
		if set.Size() != s.attrs {
			return nil, ErrShapeMismatch
		}
		row := make([]bool, s.Cardinality())
		for j := 0; j < s.Cardinality(); j++ {
			l, _ := s.lhs.Column(j)
			r, _ := s.rhs.Column(j)
			coversLHS, _ := sparse.Subset(l, set)
			if !coversLHS {
				row[j] = true
				continue
			}
			coversRHS, _ := sparse.Subset(r, set)
			row[j] = coversRHS
		}
		out[k] = row
	}
	return out, nil
}

// Clone returns a deep, independent copy of s.
func (s *Store) Clone() *Store {
	return &Store{attrs: s.attrs, lhs: s.lhs.Clone(), rhs: s.rhs.Clone()}
}
