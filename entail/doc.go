// Package entail implements semantic entailment and equivalence between
// implication stores (C9, §4.9): Entails(a, b) tests whether every rule of b
// follows from a's closure, and Equivalent tests entailment both ways.
// Grounded on implication.Store.Closure, the same forward-chaining fixed
// point used by C7.
package entail
