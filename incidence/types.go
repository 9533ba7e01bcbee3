// SPDX-License-Identifier: MIT
// Package: fca/incidence
//
// types.go — the tagged fuzzy-set variant (spec §9: "a tagged variant with a
// universe tag; every op checks the tag and fails with ShapeMismatch
// otherwise"). Two incidences can share a dimension (e.g. a square 3x3
// table) without a bare sparse.Column being able to tell an object set from
// an attribute set by size alone — the tag is what makes that distinction
// sound.
package incidence

import "github.com/fca-go/fca/sparse"

// Universe names which side of the incidence a FuzzySet is drawn from.
type Universe uint8

const (
	// UniverseObjects tags a fuzzy set of objects.
	UniverseObjects Universe = iota
	// UniverseAttributes tags a fuzzy set of attributes.
	UniverseAttributes
)

// String renders the universe for error messages and test output.
func (u Universe) String() string {
	if u == UniverseObjects {
		return "objects"
	}
	return "attributes"
}

// FuzzySet is a sparse.Column paired with the universe it is drawn from.
type FuzzySet struct {
	col      *sparse.Column
	universe Universe
}

// NewObjectSet tags col as a fuzzy set of objects.
func NewObjectSet(col *sparse.Column) *FuzzySet {
	return &FuzzySet{col: col, universe: UniverseObjects}
}

// NewAttributeSet tags col as a fuzzy set of attributes.
func NewAttributeSet(col *sparse.Column) *FuzzySet {
	return &FuzzySet{col: col, universe: UniverseAttributes}
}

// Universe returns the set's universe tag.
func (f *FuzzySet) Universe() Universe { return f.universe }

// Column returns the underlying sparse column.
func (f *FuzzySet) Column() *sparse.Column { return f.col }

// Clone returns a deep, independently-owned copy.
func (f *FuzzySet) Clone() *FuzzySet {
	return &FuzzySet{col: f.col.Clone(), universe: f.universe}
}
