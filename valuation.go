package binomial

import (
	"math"
	"strconv"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
)

// Fractional digits of the price string returned by OptionPrice.
const kPriceDigits = 4

// Valuation holds the result of one pricing run. Both lattices are fully
// populated and indexed by (up-moves, time-step); they belong to the caller.
type Valuation struct {
	Strike    float64
	Kind      OptionKind
	Style     ExerciseStyle
	Constants DerivedConstants

	Stock  *mat.Dense
	Option *mat.Dense

	// Exercise[i][j] is set where an American holder exercises early at
	// node (i, j). Always false for European options.
	Exercise [][]bool

	Value float64
}

// Steps returns the number of time steps of the lattices.
func (self *Valuation) Steps() int {
	rows, _ := self.Option.Dims()
	return rows - 1
}

// Price returns Value rounded to exactly four fractional digits.
func (self *Valuation) Price() string {
	if math.IsNaN(self.Value) || math.IsInf(self.Value, 0) {
		return strconv.FormatFloat(self.Value, 'f', kPriceDigits, 64)
	}
	return decimal.NewFromFloatWithExponent(self.Value, -kPriceDigits).
		StringFixed(kPriceDigits)
}

// PriceDecimal returns Value as a decimal. It panics on NaN or infinite
// values, which only a degenerate q can produce.
func (self *Valuation) PriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(self.Value)
}

// EarlyExerciseNodes returns the number of nodes where early exercise is
// optimal.
func (self *Valuation) EarlyExerciseNodes() int {
	count := 0
	for _, row := range self.Exercise {
		for _, exercised := range row {
			if exercised {
				count++
			}
		}
	}
	return count
}

// Valuate walks the stock lattice backwards and returns the option value
// lattice. The terminal column holds the payoff; every earlier node is the
// discounted risk-neutral expectation of its two successors, floored by the
// immediate payoff for American options.
func Valuate(
	stock *mat.Dense,
	strike float64,
	kind OptionKind,
	style ExerciseStyle,
	consts DerivedConstants) (*Valuation, error) {

	if stock == nil {
		return nil, newError(ErrLatticeShape, "The stock lattice is nil.")
	}
	rows, cols := stock.Dims()
	if rows != cols || rows < 2 {
		return nil, newError(ErrLatticeShape,
			"The stock lattice must be square with at least one step, got %dx%d.",
			rows, cols)
	}
	if !style.valid() {
		return nil, newError(ErrInvalidParameter,
			"Exercise style %s is neither European nor American.", style)
	}
	if !consts.ProbabilityInRange() {
		glog.Warningf("Risk-neutral probability q=%v is outside [0, 1]. "+
			"The price is not arbitrage free.", consts.Q)
	}

	steps := rows - 1
	option := mat.NewDense(rows, cols, nil)
	exercise := make([][]bool, rows)
	for i := range exercise {
		exercise[i] = make([]bool, cols)
	}

	for i := 0; i <= steps; i++ {
		value, err := Payoff(stock.At(i, steps), strike, kind)
		if err != nil {
			return nil, err
		}
		option.Set(i, steps, value)
	}

	q := consts.Q
	for j := steps; j > 0; j-- {
		for i := j; i > 0; i-- {
			value := consts.Discount *
				(q*option.At(i, j) + (1-q)*option.At(i-1, j))
			if style == American {
				intrinsic, err := Payoff(stock.At(i-1, j-1), strike, kind)
				if err != nil {
					return nil, err
				}
				if intrinsic > value {
					value = intrinsic
					exercise[i-1][j-1] = true
				}
			}
			option.Set(i-1, j-1, value)
			if glog.V(2) {
				glog.Infof("node=(%d,%d) stock=%v option=%v",
					i-1, j-1, stock.At(i-1, j-1), value)
			}
		}
	}

	return &Valuation{
		Strike:    strike,
		Kind:      kind,
		Style:     style,
		Constants: consts,
		Stock:     stock,
		Option:    option,
		Exercise:  exercise,
		Value:     option.At(0, 0),
	}, nil
}

// Price validates params, builds the stock lattice and values the option
// on it.
func Price(params ModelParameters) (*Valuation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	consts := params.Derive()
	stock := buildStockLattice(params.Spot, params.Steps, consts)
	valuation, err := Valuate(stock, params.Strike, params.Kind, params.Style,
		consts)
	if err != nil {
		return nil, err
	}
	glog.Infof("Priced %s %s S=%v K=%v v=%v r=%v T=%v steps=%d at %s",
		params.Style, params.Kind, params.Spot, params.Strike,
		params.Volatility, params.Rate, params.Time, params.Steps,
		valuation.Price())
	return valuation, nil
}

// OptionPrice prices the contract and returns the value as a fixed-point
// string with four fractional digits, e.g. "8.2724". With PlotYes the tree
// is also written to DefaultTreeImage in the working directory; the image
// never changes the returned price.
func OptionPrice(params ModelParameters, plot PlotToggle) (string, error) {
	valuation, err := Price(params)
	if err != nil {
		return "", err
	}
	if plot == PlotYes {
		err = PlotTree(valuation.Stock, valuation.Option, params.Steps,
			DefaultTreeImage)
		if err != nil {
			return "", err
		}
	}
	return valuation.Price(), nil
}
