// SPDX-License-Identifier: MIT
// Package: fca/internal/fixture
//
// entailment_pair.go — S5: a pair of syntactically distinct bases over the
// same three attributes, one entailing the other in both directions.
package fixture

import (
	"github.com/fca-go/fca/implication"
	"github.com/fca-go/fca/sparse"
)

// EntailmentBasisAttrs names the attributes the S5 pair is built over.
var EntailmentBasisAttrs = []string{"x", "y", "z"}

// EntailmentPair returns two bases (a, b) over EntailmentBasisAttrs that are
// logically equivalent despite differing syntactically: a states {x}⇒{y}
// and {x,y}⇒{z} separately, b states the single composed rule {x}⇒{y,z}.
func EntailmentPair() (a, b *implication.Store, err error) {
	col := func(idx ...int) (*sparse.Column, error) {
		m := make(map[int]float64, len(idx))
		for _, i := range idx {
			m[i] = 1
		}
		return sparse.NewColumnFromMap(len(EntailmentBasisAttrs), m)
	}
	lx, err := col(0)
	if err != nil {
		return nil, nil, err
	}
	lxy, err := col(0, 1)
	if err != nil {
		return nil, nil, err
	}
	ry, err := col(1)
	if err != nil {
		return nil, nil, err
	}
	rz, err := col(2)
	if err != nil {
		return nil, nil, err
	}
	ryz, err := col(1, 2)
	if err != nil {
		return nil, nil, err
	}
	a, err = implication.NewStoreFromColumns(len(EntailmentBasisAttrs),
		[]*sparse.Column{lx, lxy},
		[]*sparse.Column{ry, rz},
	)
	if err != nil {
		return nil, nil, err
	}
	b, err = implication.NewStoreFromColumns(len(EntailmentBasisAttrs),
		[]*sparse.Column{lx},
		[]*sparse.Column{ryz},
	)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
