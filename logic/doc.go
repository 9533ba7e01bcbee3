// Package logic implements the residuated-lattice algebra that parameterises
// every fuzzy operation in the core: a t-norm ⊗, its residuum →, and a
// negation ¬ over [0,1].
//
// Three built-ins are registered at package init: Gödel, Łukasiewicz and
// Product. The classical binary case is simply any of these restricted to
// {0,1}. The active logic is process-scoped; callers never mutate a logic
// value directly — they select one by name via Use, read it back with Get,
// or scope a temporary selection with With.
package logic
