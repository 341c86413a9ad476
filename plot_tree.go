package binomial

import (
	"fmt"
	"image/color"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultTreeImage is the file OptionPrice writes when plotting is enabled.
const DefaultTreeImage = "BinomialTree.png"

const (
	kTreeImageSize  = 5 * vg.Inch
	kOptionFontSize = 7
	kStockFontSize  = 6
)

var kTreeColor = color.RGBA{R: 220, A: 255}

// nodePosition places node (i, j) at x = j. Each up-move raises the node by
// one unit and each down-move lowers it by one.
func nodePosition(i, j int) plotter.XY {
	return plotter.XY{X: float64(j), Y: float64(2*i - j)}
}

// PlotTree draws the binomial tree and saves it to path. Every node is
// labelled with its option value above its stock price. The image format
// follows the file extension.
func PlotTree(stock, option *mat.Dense, steps int, path string) error {
	if err := checkLatticeShape(stock, steps, "stock"); err != nil {
		return err
	}
	if err := checkLatticeShape(option, steps, "option"); err != nil {
		return err
	}

	p := plot.New()
	p.HideAxes()

	// One fork per interior node: down child, node, up child.
	for j := 0; j < steps; j++ {
		for i := 0; i <= j; i++ {
			fork, err := plotter.NewLine(plotter.XYs{
				nodePosition(i, j+1),
				nodePosition(i, j),
				nodePosition(i+1, j+1),
			})
			if err != nil {
				return fmt.Errorf("building edge at node (%d,%d): %w", i, j, err)
			}
			fork.LineStyle.Color = kTreeColor
			fork.LineStyle.Width = vg.Points(1)
			p.Add(fork)
		}
	}

	nodes := make(plotter.XYs, 0, (steps+1)*(steps+2)/2)
	optionText := make([]string, 0, cap(nodes))
	stockText := make([]string, 0, cap(nodes))
	for j := 0; j <= steps; j++ {
		for i := 0; i <= j; i++ {
			nodes = append(nodes, nodePosition(i, j))
			optionText = append(optionText, fmt.Sprintf("%.2f", option.At(i, j)))
			stockText = append(stockText, fmt.Sprintf("%.2f", stock.At(i, j)))
		}
	}

	scatter, err := plotter.NewScatter(nodes)
	if err != nil {
		return fmt.Errorf("building tree nodes: %w", err)
	}
	scatter.GlyphStyle.Color = kTreeColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(scatter)

	optionLabels, err := newTreeLabels(nodes, optionText, 0.25*vg.Inch,
		kOptionFontSize)
	if err != nil {
		return err
	}
	stockLabels, err := newTreeLabels(nodes, stockText, 0.12*vg.Inch,
		kStockFontSize)
	if err != nil {
		return err
	}
	p.Add(optionLabels, stockLabels)

	p.X.Min, p.X.Max = -0.5, float64(steps)+0.5
	p.Y.Min, p.Y.Max = -float64(steps)-1, float64(steps)+1

	if err := p.Save(kTreeImageSize, kTreeImageSize, path); err != nil {
		msg := fmt.Sprintf("Saving tree image %s failed with error=%s", path, err)
		glog.Error(msg)
		return fmt.Errorf("%s: %w", msg, err)
	}
	glog.Info("Saved binomial tree to ", path)
	return nil
}

func newTreeLabels(
	nodes plotter.XYs,
	text []string,
	offsetY vg.Length,
	size float64) (*plotter.Labels, error) {

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: nodes, Labels: text})
	if err != nil {
		return nil, fmt.Errorf("building tree labels: %w", err)
	}
	labels.Offset = vg.Point{X: -0.10 * vg.Inch, Y: offsetY}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(size)
	}
	return labels, nil
}
