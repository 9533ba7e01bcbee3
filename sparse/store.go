// SPDX-License-Identifier: MIT
// Package: fca/sparse
//
// store.go — Store: a column-major 0/1 or [0,1] matrix, the aligned-column
// container used for implication LHS/RHS matrices (C6) and for bulk intent
// storage. Internally it is a slice of *Column sharing one universe size;
// Triple()/NewFromTriple round-trip the (i,p,x) CSC layout named in the
// external-interface contract (spec §6).
package sparse

// Store holds cardinality() aligned columns over a common universe of size
// Rows. Columns are owned by the Store; callers get copies from Column().
type Store struct {
	rows int
	cols []*Column
}

// NewStore creates an empty Store over a universe of size rows.
// Returns ErrBadShape if rows <= 0.
func NewStore(rows int) (*Store, error) {
	if rows <= 0 {
		return nil, ErrBadShape
	}
	return &Store{rows: rows}, nil
}

// NewStoreFromColumns builds a Store from cols, which are cloned on entry so
// later mutation of the caller's slice cannot observe through the Store.
// Returns ErrDimensionMismatch if any column's universe differs from rows.
func NewStoreFromColumns(rows int, cols []*Column) (*Store, error) {
	s, err := NewStore(rows)
	if err != nil {
		return nil, err
	}
	for _, c := range cols {
		if c.Size() != rows {
			return nil, ErrDimensionMismatch
		}
		s.cols = append(s.cols, c.Clone())
	}
	return s, nil
}

// Rows returns the universe size.
func (s *Store) Rows() int { return s.rows }

// Cardinality returns the number of columns.
func (s *Store) Cardinality() int { return len(s.cols) }

// Column returns a clone of the i-th column.
// Returns ErrOutOfRange if i is out of bounds.
func (s *Store) Column(i int) (*Column, error) {
	if i < 0 || i >= len(s.cols) {
		return nil, ErrOutOfRange
	}
	return s.cols[i].Clone(), nil
}

// Append adds a clone of c as the last column. Returns ErrDimensionMismatch
// if c's universe differs from s.Rows().
func (s *Store) Append(c *Column) error {
	if c.Size() != s.rows {
		return ErrDimensionMismatch
	}
	s.cols = append(s.cols, c.Clone())
	return nil
}

// Set replaces the i-th column with a clone of c.
// Returns ErrOutOfRange or ErrDimensionMismatch.
func (s *Store) Set(i int, c *Column) error {
	if i < 0 || i >= len(s.cols) {
		return ErrOutOfRange
	}
	if c.Size() != s.rows {
		return ErrDimensionMismatch
	}
	s.cols[i] = c.Clone()
	return nil
}

// Keep returns a new Store containing only the columns for which keep[i] is
// true. len(keep) must equal s.Cardinality(); returns ErrDimensionMismatch
// otherwise.
func (s *Store) Keep(keep []bool) (*Store, error) {
	if len(keep) != len(s.cols) {
		return nil, ErrDimensionMismatch
	}
	out := &Store{rows: s.rows}
	for i, k := range keep {
		if k {
			out.cols = append(out.cols, s.cols[i].Clone())
		}
	}
	return out, nil
}

// Clone returns a deep, independent copy of s.
func (s *Store) Clone() *Store {
	out := &Store{rows: s.rows, cols: make([]*Column, len(s.cols))}
	for i, c := range s.cols {
		out.cols[i] = c.Clone()
	}
	return out
}

// Triple returns the CSC layout (i, p, x): p[0]=0, p[k]=running nnz, i
// strictly ascending within each column — the bit-exact external format
// named in spec §6.
func (s *Store) Triple() (i []int, p []int, x []float64) {
	p = make([]int, len(s.cols)+1)
	for k, c := range s.cols {
		i = append(i, c.idx...)
		x = append(x, c.val...)
		p[k+1] = p[k] + len(c.idx)
	}
	return i, p, x
}

// NewFromTriple rebuilds a Store from the CSC layout (i, p, x) over a
// universe of size rows. Returns ErrMalformedColumn if p is not a valid
// column-pointer array or any column violates the ascending/non-zero
// invariant.
func NewFromTriple(rows int, i, p []int, x []float64) (*Store, error) {
	if rows <= 0 {
		return nil, ErrBadShape
	}
	if len(p) == 0 || p[0] != 0 {
		return nil, ErrMalformedColumn
	}
	s := &Store{rows: rows}
	for k := 0; k < len(p)-1; k++ {
		lo, hi := p[k], p[k+1]
		if lo < 0 || hi > len(i) || hi > len(x) || lo > hi {
			return nil, ErrMalformedColumn
		}
		col := &Column{n: rows, idx: append([]int{}, i[lo:hi]...), val: append([]float64{}, x[lo:hi]...)}
		if err := col.validate(); err != nil {
			return nil, err
		}
		for _, r := range col.idx {
			if r < 0 || r >= rows {
				return nil, ErrOutOfRange
			}
		}
		s.cols = append(s.cols, col)
	}
	return s, nil
}

// Validate re-checks every column's CSC invariant. Exposed for tests and for
// callers that built a Store through means other than the constructors
// above (e.g. after a rewrite that mutates in place).
func (s *Store) Validate() error {
	for _, c := range s.cols {
		if c.Size() != s.rows {
			return ErrDimensionMismatch
		}
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}
