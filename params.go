package binomial

import (
	"math"

	"github.com/golang/glog"
)

// ModelParameters describes one vanilla option contract and the lattice
// resolution it is priced on. It is passed by value and never modified.
type ModelParameters struct {
	Spot       float64       `yaml:"spot"`
	Strike     float64       `yaml:"strike"`
	Volatility float64       `yaml:"volatility"`
	Rate       float64       `yaml:"rate"` // continuously compounded
	Time       float64       `yaml:"time"` // years to expiration
	Steps      int           `yaml:"steps"`
	Kind       OptionKind    `yaml:"type"`
	Style      ExerciseStyle `yaml:"class"`
}

func NewModelParameters(
	spot float64,
	strike float64,
	volatility float64,
	rate float64,
	time float64,
	steps int,
	kind OptionKind,
	style ExerciseStyle) (ModelParameters, error) {

	params := ModelParameters{
		Spot:       spot,
		Strike:     strike,
		Volatility: volatility,
		Rate:       rate,
		Time:       time,
		Steps:      steps,
		Kind:       kind,
		Style:      style,
	}
	if err := params.Validate(); err != nil {
		return ModelParameters{}, err
	}
	return params, nil
}

// Validate rejects parameters the lattice cannot be built from. It does not
// check that the risk-neutral probability lies in [0, 1].
func (self ModelParameters) Validate() error {
	if self.Steps <= 0 {
		return newError(ErrInvalidParameter,
			"Steps must be positive, got %d.", self.Steps)
	}
	if !(self.Time > 0) || math.IsInf(self.Time, 0) {
		return newError(ErrInvalidParameter,
			"Time to expiration must be positive, got %v.", self.Time)
	}
	if !(self.Spot > 0) || math.IsInf(self.Spot, 0) {
		return newError(ErrInvalidParameter,
			"Spot price must be positive, got %v.", self.Spot)
	}
	if !(self.Strike > 0) || math.IsInf(self.Strike, 0) {
		return newError(ErrInvalidParameter,
			"Strike price must be positive, got %v.", self.Strike)
	}
	// Zero volatility is accepted: u == d leaves q undefined and the price
	// comes out as NaN or Inf.
	if !(self.Volatility >= 0) || math.IsInf(self.Volatility, 0) {
		return newError(ErrInvalidParameter,
			"Volatility must be non-negative, got %v.", self.Volatility)
	}
	if math.IsNaN(self.Rate) || math.IsInf(self.Rate, 0) {
		return newError(ErrInvalidParameter,
			"Risk-free rate must be finite, got %v.", self.Rate)
	}
	if !self.Kind.valid() {
		return newError(ErrUnsupportedOptionKind,
			"Option kind %s is neither Call nor Put.", self.Kind)
	}
	if !self.Style.valid() {
		return newError(ErrInvalidParameter,
			"Exercise style %s is neither European nor American.", self.Style)
	}
	return nil
}

// DerivedConstants are the per-step quantities of the Cox-Ross-Rubinstein
// discretisation.
type DerivedConstants struct {
	T        float64 // length of one step
	Up       float64 // u = exp(v * sqrt(t))
	Down     float64 // d = 1 / u
	Growth   float64 // a = exp(r * t)
	Q        float64 // risk-neutral up probability (a - d) / (u - d)
	Discount float64 // df = exp(-r * t)
}

// Derive computes the constants once. The parameters are assumed to be
// validated.
func (self ModelParameters) Derive() DerivedConstants {
	t := self.Time / float64(self.Steps)
	u := math.Exp(self.Volatility * math.Sqrt(t))
	d := 1 / u
	a := math.Exp(self.Rate * t)
	consts := DerivedConstants{
		T:        t,
		Up:       u,
		Down:     d,
		Growth:   a,
		Q:        (a - d) / (u - d),
		Discount: math.Exp(-self.Rate * t),
	}
	if glog.V(1) {
		glog.Infof("Derived constants t=%v u=%v d=%v a=%v q=%v df=%v",
			consts.T, consts.Up, consts.Down, consts.Growth, consts.Q,
			consts.Discount)
	}
	return consts
}

// ProbabilityInRange reports whether q is a proper probability. Large rates
// on coarse lattices push q above 1; such prices are returned anyway.
func (self DerivedConstants) ProbabilityInRange() bool {
	return self.Q >= 0 && self.Q <= 1
}
