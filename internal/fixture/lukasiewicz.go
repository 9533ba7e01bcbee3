// SPDX-License-Identifier: MIT
// Package: fca/internal/fixture
//
// lukasiewicz.go — S3: a 4x4 user/genre rating context in [0,1], meant to
// be closed under the Lukasiewicz logic rather than Godel.
package fixture

import "github.com/fca-go/fca/incidence"

// Lukasiewicz4x4 returns the S3 seed context: four users rated against four
// genres on a continuous [0,1] affinity scale.
func Lukasiewicz4x4() (*incidence.Incidence, error) {
	attrs := []string{"Action", "Drama", "Comedy", "SciFi"}
	objs := []string{"u1", "u2", "u3", "u4"}
	// columns: u1 u2 u3 u4
	data := [][]float64{
		{1.0, 0.2, 0.6, 0.9}, // Action
		{0.5, 0.8, 0.3, 0.1}, // Drama
		{0.2, 0.4, 0.9, 0.3}, // Comedy
		{0.9, 0.1, 0.4, 1.0}, // SciFi
	}
	return incidence.New(attrs, objs, data)
}
