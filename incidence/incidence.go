// SPDX-License-Identifier: MIT
// Package: fca/incidence
//
// incidence.go — Incidence construction and the derivation kernel (C3,
// §4.3): Intent, Extent, Closure under the residuated logic supplied by the
// caller (normally logic.Get()). Mirrors the teacher's NewAdjacencyMatrix /
// NewIncidenceMatrix pipeline: validate -> build Index -> allocate dense
// storage -> clone names so callers cannot mutate through the returned value.
package incidence

import (
	"github.com/fca-go/fca/logic"
	"github.com/fca-go/fca/sparse"
)

// Incidence is the immutable cross-table relating attrs x objs over [0,1].
// Attribute rows index a GradeTable (C4); IsBinary is computed once at
// construction (spec §9's "is_binary cached at construction" open question,
// resolved: this core exposes no rescale operation, so no invalidation path
// is needed).
type Incidence struct {
	attrs     []string
	objs      []string
	attrIndex map[string]int
	objIndex  map[string]int
	dense     [][]float64 // attrs x objs, derived cache over the canonical store
	store     *sparse.Store
	grades    *GradeTable
	isBinary  bool
}

// Attributes returns a copy of the attribute name vector, positionally
// aligned with attribute universe indices.
func (c *Incidence) Attributes() []string {
	out := make([]string, len(c.attrs))
	copy(out, c.attrs)
	return out
}

// Objects returns a copy of the object name vector.
func (c *Incidence) Objects() []string {
	out := make([]string, len(c.objs))
	copy(out, c.objs)
	return out
}

// NumAttributes returns |attributes|.
func (c *Incidence) NumAttributes() int { return len(c.attrs) }

// NumObjects returns |objects|.
func (c *Incidence) NumObjects() int { return len(c.objs) }

// IsBinary reports whether every entry of I lies in {0,1}.
func (c *Incidence) IsBinary() bool { return c.isBinary }

// Grades returns the attribute grade table (C4).
func (c *Incidence) Grades() *GradeTable { return c.grades }

// AttributeIndex returns the row index of name, or -1 if unknown.
func (c *Incidence) AttributeIndex(name string) int {
	if i, ok := c.attrIndex[name]; ok {
		return i
	}
	return -1
}

// ObjectIndex returns the column index of name, or -1 if unknown.
func (c *Incidence) ObjectIndex(name string) int {
	if i, ok := c.objIndex[name]; ok {
		return i
	}
	return -1
}

// Value returns I[a,o]. It does no bounds check and panics if a or o is
// out of range; indices obtained from AttributeIndex/ObjectIndex (other
// than their -1 "not found" result) are always in range.
func (c *Incidence) Value(a, o int) float64 { return c.dense[a][o] }

// New builds an Incidence from a dense matrix (attrs x objs) in [0,1], with
// attribute and object name vectors positionally aligned to its rows and
// columns. Returns ErrNameMismatch if len(attrs) differs from the number of
// rows or either name vector contains duplicates, ErrShapeMismatch if any
// row's length differs from len(objs), and sparse.ErrValueRange if any
// entry lies outside [0,1].
func New(attrs, objs []string, data [][]float64) (*Incidence, error) {
	if len(data) != len(attrs) {
		return nil, ErrNameMismatch
	}
	for _, row := range data {
		if len(row) != len(objs) {
			return nil, ErrShapeMismatch
		}
	}
	attrIndex, err := uniqueIndex(attrs)
	if err != nil {
		return nil, err
	}
	objIndex, err := uniqueIndex(objs)
	if err != nil {
		return nil, err
	}

	dense := make([][]float64, len(attrs))
	isBinary := true
	cols := make([]*sparse.Column, len(objs))
	for o := range objs {
		entries := make(map[int]float64, len(attrs))
		for a := range attrs {
			if dense[a] == nil {
				dense[a] = make([]float64, len(objs))
			}
			v := data[a][o]
			if v < 0 || v > 1 {
				return nil, sparse.ErrValueRange
			}
			dense[a][o] = v
			if v != 0 {
				entries[a] = v
			}
			if v != 0 && v != 1 {
				isBinary = false
			}
		}
		col, err := sparse.NewColumnFromMap(len(attrs), entries)
		if err != nil {
			return nil, err
		}
		cols[o] = col
	}
	store, err := sparse.NewStoreFromColumns(len(attrs), cols)
	if err != nil {
		return nil, err
	}

	return &Incidence{
		attrs:     append([]string{}, attrs...),
		objs:      append([]string{}, objs...),
		attrIndex: attrIndex,
		objIndex:  objIndex,
		dense:     dense,
		store:     store,
		grades:    buildGradeTable(dense),
		isBinary:  isBinary,
	}, nil
}

// NewFromSparse builds an Incidence from the CSC triple (i, p, x) over
// objects-as-columns, per the external construction contract (spec §6).
func NewFromSparse(attrs, objs []string, i, p []int, x []float64) (*Incidence, error) {
	store, err := sparse.NewFromTriple(len(attrs), i, p, x)
	if err != nil {
		return nil, err
	}
	if store.Cardinality() != len(objs) {
		return nil, ErrNameMismatch
	}
	dense := make([][]float64, len(attrs))
	for a := range dense {
		dense[a] = make([]float64, len(objs))
	}
	isBinary := true
	for o := 0; o < len(objs); o++ {
		col, err := store.Column(o)
		if err != nil {
			return nil, err
		}
		row := col.Extract()
		for a, v := range row {
			dense[a][o] = v
			if v != 0 && v != 1 {
				isBinary = false
			}
		}
	}
	attrIndex, err := uniqueIndex(attrs)
	if err != nil {
		return nil, err
	}
	objIndex, err := uniqueIndex(objs)
	if err != nil {
		return nil, err
	}
	return &Incidence{
		attrs:     append([]string{}, attrs...),
		objs:      append([]string{}, objs...),
		attrIndex: attrIndex,
		objIndex:  objIndex,
		dense:     dense,
		store:     store,
		grades:    buildGradeTable(dense),
		isBinary:  isBinary,
	}, nil
}

func uniqueIndex(names []string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := idx[n]; dup {
			return nil, ErrNameMismatch
		}
		idx[n] = i
	}
	return idx, nil
}

// IntentUnder computes S↑ under l: S↑(a) = inf_o (S(o) → I[a,o]).
// Returns ErrShapeMismatch if S is not tagged UniverseObjects or its size
// differs from NumObjects.
func (c *Incidence) IntentUnder(l logic.Logic, S *FuzzySet) (*FuzzySet, error) {
	if c == nil {
		return nil, ErrEmptyContext
	}
	if S.Universe() != UniverseObjects || S.Column().Size() != len(c.objs) {
		return nil, ErrShapeMismatch
	}
	support := S.Column().Indices()
	type support_entry struct {
		s   float64
		row []float64 // I[:,o]
	}
	ents := make([]support_entry, len(support))
	for k, o := range support {
		sv, _ := S.Column().Get(o)
		row := make([]float64, len(c.attrs))
		for a := range c.attrs {
			row[a] = c.dense[a][o]
		}
		ents[k] = support_entry{s: sv, row: row}
	}
	result := make([]float64, len(c.attrs))
	for a := range result {
		inf := 1.0
		for _, e := range ents {
			if r := l.Residuum(e.s, e.row[a]); r < inf {
				inf = r
			}
		}
		result[a] = inf
	}
	col, err := sparse.NewColumnFromDense(result)
	if err != nil {
		return nil, err
	}
	return NewAttributeSet(col), nil
}

// Intent computes S↑ under the currently active logic.
func (c *Incidence) Intent(S *FuzzySet) (*FuzzySet, error) {
	return c.IntentUnder(logic.Get(), S)
}

// ExtentUnder computes T↓ under l: T↓(o) = inf_a (T(a) → I[a,o]).
// Returns ErrShapeMismatch if T is not tagged UniverseAttributes or its size
// differs from NumAttributes.
func (c *Incidence) ExtentUnder(l logic.Logic, T *FuzzySet) (*FuzzySet, error) {
	if c == nil {
		return nil, ErrEmptyContext
	}
	if T.Universe() != UniverseAttributes || T.Column().Size() != len(c.attrs) {
		return nil, ErrShapeMismatch
	}
	support := T.Column().Indices()
	result := make([]float64, len(c.objs))
	for i := range result {
		result[i] = 1.0
	}
	for _, a := range support {
		tv, _ := T.Column().Get(a)
		row := c.dense[a]
		for o, iv := range row {
			if r := l.Residuum(tv, iv); r < result[o] {
				result[o] = r
			}
		}
	}
	col, err := sparse.NewColumnFromDense(result)
	if err != nil {
		return nil, err
	}
	return NewObjectSet(col), nil
}

// Extent computes T↓ under the currently active logic.
func (c *Incidence) Extent(T *FuzzySet) (*FuzzySet, error) {
	return c.ExtentUnder(logic.Get(), T)
}

// ClosureUnder computes cl(T) = (T↓)↑ under l.
func (c *Incidence) ClosureUnder(l logic.Logic, T *FuzzySet) (*FuzzySet, error) {
	ext, err := c.ExtentUnder(l, T)
	if err != nil {
		return nil, err
	}
	return c.IntentUnder(l, ext)
}

// Closure computes cl(T) = (T↓)↑ under the currently active logic.
// Idempotent, extensive and monotone per spec §4.3's invariants.
func (c *Incidence) Closure(T *FuzzySet) (*FuzzySet, error) {
	return c.ClosureUnder(logic.Get(), T)
}

// RequireBinary returns ErrNotBinary unless c.IsBinary(); intended for
// binary-only collaborator operations (e.g. attribute reduction) that build
// on this core but are not themselves part of it.
func (c *Incidence) RequireBinary() error {
	if c == nil {
		return ErrEmptyContext
	}
	if !c.isBinary {
		return ErrNotBinary
	}
	return nil
}
