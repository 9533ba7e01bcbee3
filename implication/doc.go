// Package implication implements the implication store (C6, §4.6) — two
// column-aligned sparse.Store matrices LHS/RHS over a shared attribute
// universe — and closure under a rule base (C7, §4.7): forward-chaining
// closure of an attribute set, optionally returning the reduced rule set
// that remains after the accumulating closure has "used up" the rules whose
// LHS it already satisfies.
package implication
