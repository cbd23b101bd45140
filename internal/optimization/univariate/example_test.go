package univariate_test

import (
	"fmt"
	"log"

	"github.com/copyleftdev/SCALR/internal/optimization"
	"github.com/copyleftdev/SCALR/internal/optimization/univariate"
)

func ExampleBounded() {
	// Minimize 3x^2 + 4x + 50 over [-10, 10].
	quadratic := optimization.Polynomial{Coefficients: []float64{50, 4, 3}}

	res, err := univariate.Bounded(quadratic, -10, 10, 500)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("x = %.4f, fun = %.4f, success = %t\n", res.X, res.Fun, res.Success)
	// Output: x = -0.6667, fun = 48.6667, success = true
}

func ExampleBrent() {
	valley := optimization.ObjectiveFunc(func(x float64) float64 {
		return (x - 2) * x * ((x + 2) * (x + 2))
	})

	res, err := univariate.Brent(valley, optimization.Tolerance{}, 500)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("x = %.6f, fun = %.6f\n", res.X, res.Fun)
	// Output: x = 1.280776, fun = -9.914950
}
