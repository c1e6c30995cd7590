package chebyshev_test

import (
	"fmt"

	"github.com/plasmakit/specdeform/chebyshev"
)

// ExampleT evaluates T3 at the textbook point s = 1/2, where
// 3·arccos(1/2) = π.
func ExampleT() {
	v := chebyshev.T(3, 0.5)
	fmt.Printf("%.1f\n", real(v))
	// Output:
	// -1.0
}

// ExampleEndpointD1 shows the boundary limits the direct derivative
// formula cannot reach.
func ExampleEndpointD1() {
	fmt.Println(chebyshev.EndpointD1(3, 1))
	fmt.Println(chebyshev.EndpointD1(2, -1))
	// Output:
	// 9
	// -4
}
