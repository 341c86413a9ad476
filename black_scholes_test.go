package binomial

import (
	"bytes"
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

func TestBlackScholesPrice_ReferenceCase(t *testing.T) {
	g := NewWithT(t)

	params := ModelParameters{Spot: 100, Strike: 100, Volatility: 0.2,
		Rate: 0.05, Time: 1, Steps: 1, Kind: Call, Style: European}
	call, err := BlackScholesPrice(params)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(call).To(BeNumerically("~", 10.450583572185565, 1e-6))

	params.Kind = Put
	put, err := BlackScholesPrice(params)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(put).To(BeNumerically("~", 5.573526022256971, 1e-6))

	// C - P = S - K * exp(-rT)
	g.Expect(call-put).To(BeNumerically("~", 100-100*math.Exp(-0.05), 1e-9))
}

func TestBlackScholesPrice_Invalid(t *testing.T) {
	g := NewWithT(t)

	_, err := BlackScholesPrice(ModelParameters{Spot: 100, Strike: 100,
		Volatility: 0.2, Rate: 0.05, Time: 1, Steps: 1, Style: European})
	g.Expect(err).To(MatchError(ErrUnsupportedOptionKind))

	_, err = NewBlackScholes(ModelParameters{Spot: 100, Strike: 100,
		Volatility: 0.2, Rate: 0.05, Time: 1}).Price(OptionKind(5))
	g.Expect(err).To(MatchError(ErrUnsupportedOptionKind))
}

func TestConvergence_EuropeanApproachesBlackScholes(t *testing.T) {
	g := NewWithT(t)

	for _, params := range []ModelParameters{
		{Spot: 50, Strike: 52, Volatility: 0.3, Rate: 0.05, Time: 2, Kind: Put, Style: European},
		{Spot: 50, Strike: 45, Volatility: 0.3, Rate: 0.05, Time: 3, Kind: Call, Style: European},
	} {
		points, err := Convergence(params, []int{4, 50, 1000})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(points).To(HaveLen(3))

		g.Expect(points[0].Steps).To(Equal(4))
		g.Expect(points[2].Steps).To(Equal(1000))
		g.Expect(points[2].AbsError).To(BeNumerically("<", 0.01))
		g.Expect(points[2].AbsError).To(BeNumerically("<", points[0].AbsError))
		for _, point := range points {
			g.Expect(point.AbsError).To(
				BeNumerically("~", math.Abs(point.Binomial-point.BlackScholes), 1e-12))
		}
	}
}

func TestConvergence_Invalid(t *testing.T) {
	g := NewWithT(t)

	params := ModelParameters{Spot: 50, Strike: 52, Volatility: 0.3,
		Rate: 0.05, Time: 2, Kind: Put, Style: European}
	_, err := Convergence(params, nil)
	g.Expect(err).To(MatchError(ErrInvalidParameter))

	_, err = Convergence(params, []int{10, 0})
	g.Expect(err).To(MatchError(ErrInvalidParameter))
}

func TestRenderConvergenceChart(t *testing.T) {
	g := NewWithT(t)

	params := ModelParameters{Spot: 50, Strike: 52, Volatility: 0.3,
		Rate: 0.05, Time: 2, Kind: Put, Style: European}
	points, err := Convergence(params, []int{10, 20, 40})
	g.Expect(err).NotTo(HaveOccurred())

	var buf bytes.Buffer
	g.Expect(RenderConvergenceChart(points, &buf)).To(Succeed())
	g.Expect(buf.String()).To(ContainSubstring("Binomial"))
	g.Expect(buf.String()).To(ContainSubstring("Black-Scholes"))

	g.Expect(RenderConvergenceChart(nil, &buf)).To(MatchError(ErrInvalidParameter))
}
