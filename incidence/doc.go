// Package incidence implements the data model (§3) and derivation kernel
// (C3, §4.3) of a formal context: an immutable Incidence relating a finite
// set of attributes to a finite set of objects over a truth domain
// L ⊆ [0,1], plus the intent/extent/closure operators of its fuzzy Galois
// connection.
//
// An Incidence is built once, via New/NewFromSparse, and never
// mutated afterwards — replacing the teacher's "mutable bag of fields with
// back-references" shape with a value that downstream packages (nextclosure,
// implication, simplify) only ever read.
package incidence
