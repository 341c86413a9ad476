package binomial

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintTree writes the lattices one time step per line as stock/option
// pairs, highest node first. Early-exercise nodes are red, other in-the-money
// nodes yellow.
func (self *Valuation) PrintTree(w io.Writer) {
	redColor := color.New(color.FgRed).SprintFunc()
	yellowColor := color.New(color.FgYellow).SprintFunc()
	defaultColor := color.New(color.FgBlue).SprintFunc()

	fmt.Fprintf(w, "%s %s K=%.2f q=%.4f df=%.4f\n",
		self.Style, self.Kind, self.Strike, self.Constants.Q,
		self.Constants.Discount)

	steps := self.Steps()
	for j := 0; j <= steps; j++ {
		fmt.Fprintf(w, "%-4d", j)
		for i := j; i >= 0; i-- {
			stock := self.Stock.At(i, j)
			cell := fmt.Sprintf("%9.2f/%-9.2f", stock, self.Option.At(i, j))

			nodeColor := defaultColor
			intrinsic, err := Payoff(stock, self.Strike, self.Kind)
			if err == nil && intrinsic > 0 {
				nodeColor = yellowColor
			}
			if self.Exercise[i][j] {
				nodeColor = redColor
			}
			fmt.Fprint(w, nodeColor(cell), " ")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Price: %s  Early exercise nodes: %d\n", self.Price(),
		self.EarlyExerciseNodes())
}
