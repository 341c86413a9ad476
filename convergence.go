package binomial

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/glog"
)

// ConvergencePoint compares the lattice price at one resolution with the
// Black-Scholes price of the same contract.
type ConvergencePoint struct {
	Steps        int
	Binomial     float64
	BlackScholes float64
	AbsError     float64
}

// Convergence prices params once per entry of steps, overriding
// params.Steps. For American contracts the Black-Scholes column is the
// European value and AbsError measures the early-exercise premium plus the
// discretisation error.
func Convergence(
	params ModelParameters,
	steps []int) ([]ConvergencePoint, error) {

	if len(steps) == 0 {
		return nil, newError(ErrInvalidParameter,
			"Convergence study needs at least one step count.")
	}

	var reference float64
	points := make([]ConvergencePoint, 0, len(steps))
	for ii, n := range steps {
		run := params
		run.Steps = n
		valuation, err := Price(run)
		if err != nil {
			return nil, err
		}
		if ii == 0 {
			reference, err = NewBlackScholes(run).Price(run.Kind)
			if err != nil {
				return nil, err
			}
		}
		points = append(points, ConvergencePoint{
			Steps:        n,
			Binomial:     valuation.Value,
			BlackScholes: reference,
			AbsError:     math.Abs(valuation.Value - reference),
		})
	}
	return points, nil
}

// RenderConvergenceChart writes an HTML line chart of the lattice price
// against the Black-Scholes price for each step count.
func RenderConvergenceChart(points []ConvergencePoint, w io.Writer) error {
	if len(points) == 0 {
		return newError(ErrInvalidParameter, "No convergence points to render.")
	}

	xAxis := make([]string, 0, len(points))
	binomialData := make([]opts.LineData, 0, len(points))
	referenceData := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		xAxis = append(xAxis, strconv.Itoa(point.Steps))
		binomialData = append(binomialData, opts.LineData{Value: point.Binomial})
		referenceData = append(referenceData,
			opts.LineData{Value: point.BlackScholes})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Binomial convergence",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Binomial price vs Black-Scholes",
			Subtitle: fmt.Sprintf("%d to %d steps", points[0].Steps,
				points[len(points)-1].Steps),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "steps"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "price"}),
	)
	line.SetXAxis(xAxis).
		AddSeries("Binomial", binomialData).
		AddSeries("Black-Scholes", referenceData)

	if err := line.Render(w); err != nil {
		msg := fmt.Sprintf("Rendering convergence chart failed with error=%s", err)
		glog.Error(msg)
		return fmt.Errorf("%s: %w", msg, err)
	}
	return nil
}
