package binomial

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestParseOptionKind(t *testing.T) {
	g := NewWithT(t)

	for input, expected := range map[string]OptionKind{
		"Call": Call, "call": Call, "C": Call, " PUT ": Put, "p": Put,
	} {
		kind, err := ParseOptionKind(input)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(kind).To(Equal(expected), input)
	}

	_, err := ParseOptionKind("Straddle")
	g.Expect(err).To(MatchError(ErrUnsupportedOptionKind))
}

func TestParseExerciseStyle(t *testing.T) {
	g := NewWithT(t)

	for input, expected := range map[string]ExerciseStyle{
		"E": European, "european": European, "A": American, "American": American,
	} {
		style, err := ParseExerciseStyle(input)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(style).To(Equal(expected), input)
	}

	_, err := ParseExerciseStyle("Bermudan")
	g.Expect(err).To(MatchError(ErrInvalidParameter))
}

func TestParsePlotToggle(t *testing.T) {
	g := NewWithT(t)

	for input, expected := range map[string]PlotToggle{
		"Y": PlotYes, "Yes": PlotYes, "N": PlotNo, "No": PlotNo, "": PlotNo,
	} {
		plot, err := ParsePlotToggle(input)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(plot).To(Equal(expected), input)
	}

	_, err := ParsePlotToggle("maybe")
	g.Expect(err).To(MatchError(ErrInvalidParameter))
}

func TestEnumStrings(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Call.String()).To(Equal("Call"))
	g.Expect(Put.String()).To(Equal("Put"))
	g.Expect(OptionKind(0).String()).To(Equal("OptionKind(0)"))
	g.Expect(American.String()).To(Equal("American"))
	g.Expect(ExerciseStyle(3).String()).To(Equal("ExerciseStyle(3)"))
	g.Expect(PlotYes.String()).To(Equal("Yes"))
	g.Expect(PlotNo.String()).To(Equal("No"))
}
