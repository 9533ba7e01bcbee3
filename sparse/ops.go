// SPDX-License-Identifier: MIT
// Package: fca/sparse
//
// ops.go — set-algebraic and pointwise operations over Columns, each O(nnz)
// in the size of its inputs: a single merge pass over two sorted index
// lists, exactly the shape of a merge-join. Ops that require fuzzy
// conjunction (Intersect, SelfIntersection) take a tensor function so this
// package stays independent of the logic registry; callers pass
// logic.Get().Tensor.
package sparse

// Union returns the pointwise max of a and b: the fuzzy-set union.
// Returns ErrDimensionMismatch if a.n != b.n.
func Union(a, b *Column) (*Column, error) {
	if a.n != b.n {
		return nil, ErrDimensionMismatch
	}
	idx := make([]int, 0, len(a.idx)+len(b.idx))
	val := make([]float64, 0, len(a.idx)+len(b.idx))
	i, j := 0, 0
	for i < len(a.idx) || j < len(b.idx) {
		switch {
		case j >= len(b.idx) || (i < len(a.idx) && a.idx[i] < b.idx[j]):
			idx = append(idx, a.idx[i])
			val = append(val, a.val[i])
			i++
		case i >= len(a.idx) || b.idx[j] < a.idx[i]:
			idx = append(idx, b.idx[j])
			val = append(val, b.val[j])
			j++
		default:
			v := maxf(a.val[i], b.val[j])
			if v != 0 {
				idx = append(idx, a.idx[i])
				val = append(val, v)
			}
			i++
			j++
		}
	}
	return &Column{n: a.n, idx: idx, val: val}, nil
}

// Intersect returns the pointwise tensor(a,b): the fuzzy-set conjunction.
// For the binary truth domain {0,1} with tensor = min, this is boolean AND.
// Returns ErrDimensionMismatch if a.n != b.n.
func Intersect(a, b *Column, tensor func(x, y float64) float64) (*Column, error) {
	if a.n != b.n {
		return nil, ErrDimensionMismatch
	}
	idx := make([]int, 0, minInt(len(a.idx), len(b.idx)))
	val := make([]float64, 0, minInt(len(a.idx), len(b.idx)))
	i, j := 0, 0
	for i < len(a.idx) && j < len(b.idx) {
		switch {
		case a.idx[i] < b.idx[j]:
			i++
		case b.idx[j] < a.idx[i]:
			j++
		default:
			v := tensor(a.val[i], b.val[j])
			if v != 0 {
				idx = append(idx, a.idx[i])
				val = append(val, v)
			}
			i++
			j++
		}
	}
	return &Column{n: a.n, idx: idx, val: val}, nil
}

// Subset reports whether a <= b pointwise on every row (a is "covered by" b).
// Returns ErrDimensionMismatch if a.n != b.n.
func Subset(a, b *Column) (bool, error) {
	if a.n != b.n {
		return false, ErrDimensionMismatch
	}
	i, j := 0, 0
	for i < len(a.idx) {
		for j < len(b.idx) && b.idx[j] < a.idx[i] {
			j++
		}
		if j >= len(b.idx) || b.idx[j] != a.idx[i] || b.val[j] < a.val[i] {
			return false, nil
		}
		i++
		j++
	}
	return true, nil
}

// Equal reports pointwise equality of a and b.
// Returns ErrDimensionMismatch if a.n != b.n.
func Equal(a, b *Column) (bool, error) {
	if a.n != b.n {
		return false, ErrDimensionMismatch
	}
	if len(a.idx) != len(b.idx) {
		return false, nil
	}
	for k := range a.idx {
		if a.idx[k] != b.idx[k] || a.val[k] != b.val[k] {
			return false, nil
		}
	}
	return true, nil
}

// Difference computes, for every row r: d[r] if d[r] > b[r], else 0.
// Returns ErrDimensionMismatch if d.n != b.n.
func Difference(d, b *Column) (*Column, error) {
	if d.n != b.n {
		return nil, ErrDimensionMismatch
	}
	idx := make([]int, 0, len(d.idx))
	val := make([]float64, 0, len(d.idx))
	j := 0
	for i := 0; i < len(d.idx); i++ {
		row := d.idx[i]
		for j < len(b.idx) && b.idx[j] < row {
			j++
		}
		var bv float64
		if j < len(b.idx) && b.idx[j] == row {
			bv = b.val[j]
		}
		if d.val[i] > bv {
			idx = append(idx, row)
			val = append(val, d.val[i])
		}
	}
	return &Column{n: d.n, idx: idx, val: val}, nil
}

// ColSum returns the sum of c's non-zero values.
func ColSum(c *Column) float64 {
	var s float64
	for _, v := range c.val {
		s += v
	}
	return s
}

// Cardinality returns the fuzzy cardinality of c: the sum of its values.
// For a binary column this is the set size.
func Cardinality(c *Column) float64 { return ColSum(c) }

// SelfIntersection returns sum_r tensor(l[r], r[r]); zero iff l and r are
// disjoint (the invariant required of a simplified implication's LHS/RHS).
// Returns ErrDimensionMismatch if l.n != r.n.
func SelfIntersection(l, r *Column, tensor func(x, y float64) float64) (float64, error) {
	inter, err := Intersect(l, r, tensor)
	if err != nil {
		return 0, err
	}
	return ColSum(inter), nil
}

// IsEmpty reports whether c has no non-zero entries.
func IsEmpty(c *Column) bool { return len(c.idx) == 0 }

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
