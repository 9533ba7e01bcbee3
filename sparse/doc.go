// Package sparse implements the column-major sparse store used throughout
// the core: a matrix over a truth domain L ⊆ [0,1], held as a slice of
// sparse Columns and convertible to and from (i, p, x) triples exactly like
// a compressed-sparse-column (CSC) numeric matrix (Triple, NewFromTriple) —
// p[0]=0, p[k]=nnz, and within each column the row indices are held in
// strictly ascending order with no zero entries.
//
// Every set-algebraic or pointwise operation an FCA derivation needs — union,
// intersection, subset, equality, difference, cardinality, self-intersection
// — is implemented here in terms of that layout, never via a general linear
// algebra library: the operations are all O(nnz) merges over two sorted
// index lists, which a dense or BLAS-backed matrix type would only obscure.
package sparse
