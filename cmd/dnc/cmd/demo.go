package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dnc/closestpair"
	"github.com/katalvlaran/dnc/matrix"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through both engines on tiny fixed inputs",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := demoClosestPair(); err != nil {
			return err
		}

		return demoStrassen()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func demoClosestPair() error {
	points := []closestpair.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 5, Y: 5},
		{X: 2, Y: 2},
	}

	fmt.Println(titleStyle.Render("--- closest pair ---"))
	fmt.Printf("points: %v\n", points)

	res, ok := closestpair.ClosestPair(points, nil)
	if !ok {
		fmt.Println("no pair (fewer than two points)")

		return nil
	}
	fmt.Printf("closest: (%g,%g)-(%g,%g), distance %.7f (expect √2 ≈ 1.4142136)\n",
		res.P1.X, res.P1.Y, res.P2.X, res.P2.Y, res.Distance)

	return nil
}

func demoStrassen() error {
	m, err := matrix.NewFunc(4, func(i, j int) float64 { return float64(i + j) })
	if err != nil {
		return err
	}
	id, err := matrix.Identity(4)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("--- strassen multiply ---"))
	fmt.Println("m (entries i+j):")
	fmt.Print(m)

	prod, err := matrix.StrassenMul(id, m, &matrix.Options{BaseSize: 2})
	if err != nil {
		return err
	}
	fmt.Println("identity × m:")
	fmt.Print(prod)
	fmt.Printf("unchanged: %t\n", prod.Equal(m, 0))

	return nil
}
