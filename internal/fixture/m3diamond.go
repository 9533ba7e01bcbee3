// SPDX-License-Identifier: MIT
// Package: fca/internal/fixture
//
// m3diamond.go — S2: the 3x3 nominal-scale context whose concept lattice is
// the M3 diamond (spec §8 S2): three atoms below a single top, none of
// whose pairwise closures stop short of the full attribute set, giving the
// canonical basis {a_i,a_j} ⇒ {a_k}.
package fixture

import "github.com/fca-go/fca/incidence"

// M3Diamond returns the S2 seed context.
func M3Diamond() (*incidence.Incidence, error) {
	attrs := []string{"a1", "a2", "a3"}
	objs := []string{"o1", "o2", "o3"}
	data := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	return incidence.New(attrs, objs, data)
}
