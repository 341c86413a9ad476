package binomial

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"
)

func TestPlotTree_WritesImage(t *testing.T) {
	g := NewWithT(t)

	params := ModelParameters{Spot: 40, Strike: 50, Volatility: 0.3,
		Rate: 0.05, Time: 4, Steps: 4, Kind: Put, Style: European}
	valuation, err := Price(params)
	g.Expect(err).NotTo(HaveOccurred())

	path := filepath.Join(t.TempDir(), "tree.png")
	g.Expect(PlotTree(valuation.Stock, valuation.Option, 4, path)).To(Succeed())

	info, err := os.Stat(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(info.Size()).To(BeNumerically(">", 0))
}

func TestPlotTree_ShapeMismatch(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "tree.png")

	g.Expect(PlotTree(nil, mat.NewDense(2, 2, nil), 1, path)).
		To(MatchError(ErrLatticeShape))
	g.Expect(PlotTree(mat.NewDense(2, 2, nil), nil, 1, path)).
		To(MatchError(ErrLatticeShape))
	g.Expect(PlotTree(mat.NewDense(2, 2, nil), mat.NewDense(1, 1, nil), 2, path)).
		To(MatchError(ErrLatticeShape))
	g.Expect(PlotTree(mat.NewDense(3, 3, nil), mat.NewDense(2, 2, nil), 2, path)).
		To(MatchError(ErrLatticeShape))
	g.Expect(PlotTree(mat.NewDense(1, 1, nil), mat.NewDense(1, 1, nil), 0, path)).
		To(MatchError(ErrLatticeShape))

	g.Expect(path).NotTo(BeAnExistingFile())
}

func TestNodePosition(t *testing.T) {
	g := NewWithT(t)

	g.Expect(nodePosition(0, 0).Y).To(Equal(0.0))
	g.Expect(nodePosition(1, 1).Y).To(Equal(1.0))
	g.Expect(nodePosition(0, 1).Y).To(Equal(-1.0))
	g.Expect(nodePosition(1, 2).Y).To(Equal(0.0))
	g.Expect(nodePosition(3, 3).X).To(Equal(3.0))
}
