// Package fca is an in-memory toolkit for Formal Concept Analysis: build a
// (possibly fuzzy) incidence context, derive its Galois connection, walk its
// concept lattice in lectic order, and work with the implications that hold
// in it — construct, filter, close under a rule base, simplify with the
// rewrite system, and test entailment between bases.
//
// Everything is organized under single-purpose subpackages:
//
//	logic/        — residuated-lattice algebras (Godel, Lukasiewicz, Product)
//	sparse/       — the column-major fuzzy-set storage every other package builds on
//	incidence/    — the context type and its Intent/Extent/Closure derivation kernel
//	implication/  — the implication store: construction, filtering, closure under Σ
//	simplify/     — the named rewrite system (reduction, composition, generalization, simplification)
//	nextclosure/  — lectic-order enumeration of concepts and the canonical basis
//	entail/       — semantic entailment and equivalence between implication stores
//
// A typical session:
//
//	c, _ := incidence.New(attrs, objs, data)
//	intent, _ := c.Closure(incidence.NewAttributeSet(seed))
//	res, _ := nextclosure.Run(ctx, c, nextclosure.ModeImplications)
//	holds, _ := res.Basis.HoldsIn(c)
package fca
