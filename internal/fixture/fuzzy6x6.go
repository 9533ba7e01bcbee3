// SPDX-License-Identifier: MIT
// Package: fca/internal/fixture
//
// fuzzy6x6.go — S6: a 6x6 fuzzy context (spec §8's Respects-all-true
// scenario). Within this module only its shape is tested; no test derives a
// basis from it.
package fixture

import "github.com/fca-go/fca/incidence"

// Fuzzy6x6 returns the S6 seed context: six sensors crossed with six
// condition attributes on a continuous [0,1] activation scale.
func Fuzzy6x6() (*incidence.Incidence, error) {
	attrs := []string{"temp", "humidity", "pressure", "vibration", "light", "sound"}
	objs := []string{"s1", "s2", "s3", "s4", "s5", "s6"}
	// columns: s1 s2 s3 s4 s5 s6
	data := [][]float64{
		{1.0, 0.8, 0.0, 0.3, 0.6, 0.9},
		{0.4, 1.0, 0.7, 0.0, 0.2, 0.5},
		{0.9, 0.1, 1.0, 0.6, 0.0, 0.3},
		{0.0, 0.6, 0.4, 1.0, 0.8, 0.2},
		{0.5, 0.3, 0.2, 0.7, 1.0, 0.0},
		{0.2, 0.0, 0.6, 0.4, 0.3, 1.0},
	}
	return incidence.New(attrs, objs, data)
}
