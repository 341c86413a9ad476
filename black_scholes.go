package binomial

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholes is the closed-form European price the lattice converges to
// as the number of steps grows.
type BlackScholes struct {
	AssetPrice   float64
	StrikePrice  float64
	InterestRate float64
	TimeToExpiry float64
	Volatility   float64
}

func NewBlackScholes(params ModelParameters) *BlackScholes {
	return &BlackScholes{
		AssetPrice:   params.Spot,
		StrikePrice:  params.Strike,
		InterestRate: params.Rate,
		TimeToExpiry: params.Time,
		Volatility:   params.Volatility,
	}
}

// a is the standard deviation of log returns over the life of the option.
func (self *BlackScholes) a() float64 {
	return self.Volatility * math.Sqrt(self.TimeToExpiry)
}

// d1 = (ln(S / K) + (r + v^2 / 2) * T) / (v * sqrt(T))
func (self *BlackScholes) d1() float64 {
	return (math.Log(self.AssetPrice/self.StrikePrice) +
		(self.InterestRate+math.Pow(self.Volatility, 2)/2)*self.TimeToExpiry) /
		self.a()
}

func (self *BlackScholes) d2() float64 {
	return self.d1() - self.a()
}

// deflater discounts the strike to present value, exp(-r * T).
func (self *BlackScholes) deflater() float64 {
	return math.Exp(-self.InterestRate * self.TimeToExpiry)
}

func (self *BlackScholes) normCdf(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

func (self *BlackScholes) CallPrice() float64 {
	return self.AssetPrice*self.normCdf(self.d1()) -
		self.StrikePrice*self.deflater()*self.normCdf(self.d2())
}

func (self *BlackScholes) PutPrice() float64 {
	return self.StrikePrice*self.deflater()*self.normCdf(-self.d2()) -
		self.AssetPrice*self.normCdf(-self.d1())
}

func (self *BlackScholes) Price(kind OptionKind) (float64, error) {
	switch kind {
	case Call:
		return self.CallPrice(), nil
	case Put:
		return self.PutPrice(), nil
	}
	return 0, newError(ErrUnsupportedOptionKind,
		"Cannot compute Black-Scholes price for option kind %s.", kind)
}

// BlackScholesPrice returns the European closed-form price of the contract.
// The exercise style and step count are ignored beyond validation.
func BlackScholesPrice(params ModelParameters) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	return NewBlackScholes(params).Price(params.Kind)
}
