// SPDX-License-Identifier: MIT
// Package: fca/internal/fixture
//
// synthetic_basis.go — S4: the hand-built three-rule basis used to exercise
// Store.Closure and the simplify rewrites without deriving from a context.
package fixture

import (
	"github.com/fca-go/fca/implication"
	"github.com/fca-go/fca/sparse"
)

// SyntheticBasisAttrs names the five attributes SyntheticBasis is built over:
// a=0 b=1 c=2 d=3 e=4.
var SyntheticBasisAttrs = []string{"a", "b", "c", "d", "e"}

// SyntheticBasis returns the S4 seed basis:
//
//	{a}     ⇒ {b}
//	{a,b}   ⇒ {c,d}
//	{a,b,c} ⇒ {d,e}
func SyntheticBasis() (*implication.Store, error) {
	col := func(idx ...int) (*sparse.Column, error) {
		m := make(map[int]float64, len(idx))
		for _, i := range idx {
			m[i] = 1
		}
		return sparse.NewColumnFromMap(len(SyntheticBasisAttrs), m)
	}
	a0, err := col(0)
	if err != nil {
		return nil, err
	}
	a1, err := col(0, 1)
	if err != nil {
		return nil, err
	}
	a2, err := col(0, 1, 2)
	if err != nil {
		return nil, err
	}
	b0, err := col(1)
	if err != nil {
		return nil, err
	}
	b1, err := col(2, 3)
	if err != nil {
		return nil, err
	}
	b2, err := col(3, 4)
	if err != nil {
		return nil, err
	}
	return implication.NewStoreFromColumns(len(SyntheticBasisAttrs),
		[]*sparse.Column{a0, a1, a2},
		[]*sparse.Column{b0, b1, b2},
	)
}
