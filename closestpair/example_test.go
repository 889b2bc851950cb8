package closestpair_test

import (
	"fmt"

	"github.com/katalvlaran/dnc/closestpair"
)

// ExampleClosestPair demonstrates the divide-and-conquer solver on a tiny
// diagonal point set. Two pairs tie at distance √2; the solver returns
// one of them, and the distance is the true minimum either way.
func ExampleClosestPair() {
	points := []closestpair.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 5, Y: 5},
		{X: 2, Y: 2},
	}

	res, ok := closestpair.ClosestPair(points, nil)
	if !ok {
		fmt.Println("no pair")

		return
	}
	fmt.Printf("distance=%.4f\n", res.Distance)
	// Output: distance=1.4142
}

// ExampleBruteForce shows the exhaustive scan, and that fewer than two
// points is absence, not an error.
func ExampleBruteForce() {
	res, ok := closestpair.BruteForce([]closestpair.Point{
		{X: 0, Y: 0},
		{X: 3, Y: 4},
	})
	fmt.Println(ok, res.Distance)

	_, ok = closestpair.BruteForce([]closestpair.Point{{X: 1, Y: 1}})
	fmt.Println(ok)
	// Output:
	// true 5
	// false
}
