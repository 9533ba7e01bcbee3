// Package fixture provides the deterministic seed datasets named in spec §8
// (S1-S6), grounded on the teacher's builder package: one named factory per
// dataset, each validated and returned ready to use, the way builder.Star
// or builder.Wheel hand back a ready Constructor rather than exposing raw
// topology data for the caller to assemble.
package fixture
