package simplify_test

import (
	"fmt"

	"github.com/fca-go/fca/simplify"
	"github.com/fca-go/fca/sparse"
)

// ExampleApplyRules_reduction drops the tautology {a,b}=>{a} and keeps the
// informative rule {a}=>{b}, over a three-attribute universe a=0 b=1 c=2.
func ExampleApplyRules_reduction() {
	col := func(idx ...int) *sparse.Column {
		m := make(map[int]float64, len(idx))
		for _, i := range idx {
			m[i] = 1
		}
		c, err := sparse.NewColumnFromMap(3, m)
		if err != nil {
			panic(err)
		}
		return c
	}
	lhs, err := sparse.NewStoreFromColumns(3, []*sparse.Column{col(0, 1), col(0)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rhs, err := sparse.NewStoreFromColumns(3, []*sparse.Column{col(0), col(1)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	outLHS, outRHS, err := simplify.ApplyRules(lhs, rhs, []string{"reduction"}, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(outLHS.Cardinality())
	l0, _ := outLHS.Column(0)
	r0, _ := outRHS.Column(0)
	fmt.Println(l0.Extract(), r0.Extract())
	// Output:
	// 1
	// [1 0 0] [0 1 0]
}

// ExampleApplyRules_composition merges two rules sharing the LHS {a} into a
// single rule whose RHS is their union {b,c}.
func ExampleApplyRules_composition() {
	col := func(idx ...int) *sparse.Column {
		m := make(map[int]float64, len(idx))
		for _, i := range idx {
			m[i] = 1
		}
		c, err := sparse.NewColumnFromMap(3, m)
		if err != nil {
			panic(err)
		}
		return c
	}
	lhs, err := sparse.NewStoreFromColumns(3, []*sparse.Column{col(0), col(0)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rhs, err := sparse.NewStoreFromColumns(3, []*sparse.Column{col(1), col(2)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	outLHS, outRHS, err := simplify.ApplyRules(lhs, rhs, []string{"composition"}, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(outLHS.Cardinality())
	r0, _ := outRHS.Column(0)
	fmt.Println(r0.Extract())
	// Output:
	// 1
	// [0 1 1]
}
