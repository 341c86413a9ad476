package binomial

import "math"

// Payoff returns the exercise value of an option at the given underlying
// price: max(S-K, 0) for a call and max(K-S, 0) for a put.
func Payoff(spot float64, strike float64, kind OptionKind) (float64, error) {
	switch kind {
	case Call:
		return math.Max(spot-strike, 0), nil
	case Put:
		return math.Max(strike-spot, 0), nil
	}
	return 0, newError(ErrUnsupportedOptionKind,
		"Cannot compute payoff for option kind %s.", kind)
}
