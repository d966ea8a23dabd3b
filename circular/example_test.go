package circular_test

import (
	"fmt"

	"github.com/informatik-mannheim/gcatcirc/circular"
	"github.com/informatik-mannheim/gcatcirc/code"
)

// ExampleIsCircular contrasts a circular code with one whose split graph
// carries a cycle.
func ExampleIsCircular() {
	circ, _ := code.FromWords([]string{"ABC", "DEF"})
	notCirc, _ := code.FromWords([]string{"AB", "BA"})

	fmt.Println(circular.IsCircular(circ))
	fmt.Println(circular.IsCircular(notCirc))

	// Output:
	// true
	// false
}

// ExampleExactKCircular derives k from the longest cycle and reports the
// unbounded sentinel for circular codes.
func ExampleExactKCircular() {
	bounded, _ := code.FromWords([]string{"1100", "0022", "2233", "3311"})
	unbounded, _ := code.FromWords([]string{"1100", "0022", "2233", "3314"})

	fmt.Println(circular.ExactKCircular(bounded))
	fmt.Println(circular.ExactKCircular(unbounded) == circular.KUnbounded)

	// Output:
	// 1
	// true
}

// ExampleAllCyclicPaths prints the canonical cycles of a non circular
// code as vertex label sequences.
func ExampleAllCyclicPaths() {
	c, _ := code.FromWords([]string{"ADB", "BA", "AAD", "DAA"})

	for _, p := range circular.AllCyclicPaths(c) {
		fmt.Println(p)
	}

	// Output:
	// [D AA D]
	// [A AD B A]
}
