// Package nextclosure implements Next-Closure (C5, §4.5): the lectic-order
// enumerator that, depending on Mode, lists every formal concept of a
// context or derives the Duquenne–Guigues canonical basis of implications.
// Both modes share one driver, grounded on the teacher's dijkstra package's
// split between a stateless entry function and a stateful runner that
// carries init()/step() across the scan.
package nextclosure
