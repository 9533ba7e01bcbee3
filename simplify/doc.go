// Package simplify implements the implication rewrite system (C8, §4.8):
// four closure-preserving equivalences — reduction, composition,
// generalization, and the named Rsimplification_bg simplification (plus its
// rsimp reverse variant) — operating directly on sparse LHS/RHS column
// matrices, and a registry that applies named rewrites in sequence to a
// fixed point, the way the teacher's builder package applies named
// Constructors in sequence to build up a graph.
package simplify
