package logic_test

import (
	"fmt"

	"github.com/fca-go/fca/logic"
)

// ExampleGet_godel shows the default Godel residuum: 1 when the antecedent
// does not exceed the consequent, otherwise the consequent itself.
func ExampleGet_godel() {
	g := logic.Get()
	fmt.Println(g.Name())
	fmt.Println(g.Residuum(0.3, 0.7))
	fmt.Println(g.Residuum(0.7, 0.3))
	// Output:
	// Godel
	// 1
	// 0.3
}

// ExampleWith scopes a Lukasiewicz computation and restores Godel afterward.
func ExampleWith() {
	err := logic.With("Lukasiewicz", func() error {
		fmt.Println(logic.Get().Tensor(0.6, 0.7))
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(logic.Get().Name())
	// Output:
	// 0.2999999999999998
	// Godel
}
