package binomial

import (
	"gonum.org/v1/gonum/mat"
)

// BuildStockLattice returns the (steps+1)x(steps+1) stock price lattice.
// Cell (i, j) is the price after j steps of which i were up-moves,
// S * u^i * d^(j-i). Cells below the diagonal (i > j) are left at zero.
func BuildStockLattice(params ModelParameters) (*mat.Dense, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return buildStockLattice(params.Spot, params.Steps, params.Derive()), nil
}

func buildStockLattice(
	spot float64,
	steps int,
	consts DerivedConstants) *mat.Dense {

	size := steps + 1
	lattice := mat.NewDense(size, size, nil)
	lattice.Set(0, 0, spot)

	// Row 0 is the all-down path; every other cell is reached from it by
	// walking up a diagonal, one multiplication per cell.
	for j := 0; j < steps; j++ {
		lattice.Set(0, j+1, consts.Down*lattice.At(0, j))
	}
	for i := 0; i < steps; i++ {
		for j := i; j < steps; j++ {
			lattice.Set(i+1, j+1, consts.Up*lattice.At(i, j))
		}
	}
	return lattice
}

// checkLatticeShape verifies lattice is a non-nil (steps+1)x(steps+1) matrix.
func checkLatticeShape(lattice *mat.Dense, steps int, name string) error {
	if steps <= 0 {
		return newError(ErrLatticeShape,
			"Steps must be positive, got %d.", steps)
	}
	if lattice == nil {
		return newError(ErrLatticeShape, "The %s lattice is nil.", name)
	}
	rows, cols := lattice.Dims()
	if rows != steps+1 || cols != steps+1 {
		return newError(ErrLatticeShape,
			"The %s lattice is %dx%d, expected %dx%d for %d steps.",
			name, rows, cols, steps+1, steps+1, steps)
	}
	return nil
}
