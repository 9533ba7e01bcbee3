package entail_test

import (
	"fmt"

	"github.com/fca-go/fca/entail"
	"github.com/fca-go/fca/internal/fixture"
)

// ExampleEquivalent shows that a basis stating {x}=>{y} and {x,y}=>{z}
// separately is logically equivalent to the single composed rule {x}=>{y,z}.
func ExampleEquivalent() {
	a, b, err := fixture.EntailmentPair()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ok, err := entail.Equivalent(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)
	// Output: true
}
