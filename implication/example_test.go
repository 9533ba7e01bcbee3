package implication_test

import (
	"fmt"

	"github.com/fca-go/fca/implication"
	"github.com/fca-go/fca/internal/fixture"
	"github.com/fca-go/fca/sparse"
)

// ExampleStore_Closure closes the synthetic three-rule basis under the
// singleton seed {a}: every rule fires in turn, a -> b -> c,d -> d,e, so the
// closure reaches the full attribute set and no rule is left unfired.
func ExampleStore_Closure() {
	s, err := fixture.SyntheticBasis()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	seed, err := sparse.NewColumnFromMap(len(fixture.SyntheticBasisAttrs), map[int]float64{0: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	closed, reduced, err := s.Closure(seed, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(closed.Extract())
	fmt.Println(reduced.Cardinality())
	// Output:
	// [1 1 1 1 1]
	// 0
}

// ExampleStore_Filter keeps only the rules whose LHS mentions "a", which is
// every rule in the synthetic basis.
func ExampleStore_Filter() {
	s, err := fixture.SyntheticBasis()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	opts := implication.DefaultFilterOptions()
	opts.LHSIn = 0 // "a"
	filtered, err := s.Filter(opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(filtered.Cardinality())
	// Output: 3
}
