// SPDX-License-Identifier: MIT
// Package: fca/internal/fixture
//
// planets.go — S1: the nine-planet, seven-attribute binary context in the
// style of Wille's classical FCA teaching example.
package fixture

import "github.com/fca-go/fca/incidence"

// Planets returns the S1 seed context: nine solar-system bodies crossed
// with seven size/distance/moon attributes.
func Planets() (*incidence.Incidence, error) {
	attrs := []string{"small", "medium", "large", "near-sun", "far-sun", "has-moon", "no-moon"}
	objs := []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}
	// columns: Mercury Venus Earth Mars Jupiter Saturn Uranus Neptune Pluto
	data := [][]float64{
		{1, 0, 0, 1, 0, 0, 0, 0, 1}, // small
		{0, 1, 1, 0, 0, 0, 0, 0, 0}, // medium
		{0, 0, 0, 0, 1, 1, 1, 1, 0}, // large
		{1, 1, 1, 1, 0, 0, 0, 0, 0}, // near-sun
		{0, 0, 0, 0, 1, 1, 1, 1, 1}, // far-sun
		{0, 0, 1, 1, 1, 1, 1, 1, 1}, // has-moon
		{1, 1, 0, 0, 0, 0, 0, 0, 0}, // no-moon
	}
	return incidence.New(attrs, objs, data)
}
