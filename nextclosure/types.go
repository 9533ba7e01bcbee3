// SPDX-License-Identifier: MIT
// Package: fca/nextclosure
//
// types.go — Mode and Result.
package nextclosure

import (
	"github.com/fca-go/fca/implication"
	"github.com/fca-go/fca/incidence"
)

// Mode selects what Run enumerates.
type Mode int

const (
	// ModeConcepts enumerates every formal concept (extent, intent) in
	// lectic order of the intent.
	ModeConcepts Mode = iota
	// ModeImplications derives the Duquenne–Guigues canonical basis: the
	// lectically-ordered sequence of pseudo-intents and their closures.
	ModeImplications
)

// Concept pairs a closed extent with its closed intent.
type Concept struct {
	Extent *incidence.FuzzySet
	Intent *incidence.FuzzySet
}

// Result is Run's output. Concepts is populated under both modes — every
// mode emits the full intents/extents trace (spec §4.5: implications mode
// does everything concepts mode does, plus grows Basis). Basis is only
// populated under ModeImplications. ClosureCount is the number of closure
// operator evaluations performed by either mode (spec §8's testable cost
// metric).
type Result struct {
	Concepts     []Concept
	Basis        *implication.Store
	ClosureCount int
}
