package binomial

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OptionKind selects the payoff. The zero value is deliberately not a valid
// kind so an unset field is rejected instead of silently priced.
type OptionKind int

const (
	Call OptionKind = iota + 1
	Put
)

func (self OptionKind) String() string {
	switch self {
	case Call:
		return "Call"
	case Put:
		return "Put"
	}
	return "OptionKind(" + strconv.Itoa(int(self)) + ")"
}

func (self OptionKind) valid() bool {
	return self == Call || self == Put
}

// ParseOptionKind accepts "Call", "C", "Put" and "P" in any case.
func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, newError(ErrUnsupportedOptionKind,
		"Option kind %q is neither Call nor Put.", s)
}

func (self *OptionKind) UnmarshalYAML(node *yaml.Node) error {
	kind, err := ParseOptionKind(node.Value)
	if err != nil {
		return err
	}
	*self = kind
	return nil
}

// ExerciseStyle decides whether early exercise is checked at interior nodes.
type ExerciseStyle int

const (
	European ExerciseStyle = iota + 1
	American
)

func (self ExerciseStyle) String() string {
	switch self {
	case European:
		return "European"
	case American:
		return "American"
	}
	return "ExerciseStyle(" + strconv.Itoa(int(self)) + ")"
}

func (self ExerciseStyle) valid() bool {
	return self == European || self == American
}

// ParseExerciseStyle accepts "E", "European", "A" and "American" in any case.
func ParseExerciseStyle(s string) (ExerciseStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "european":
		return European, nil
	case "a", "american":
		return American, nil
	}
	return 0, newError(ErrInvalidParameter,
		"Exercise style %q is neither European nor American.", s)
}

func (self *ExerciseStyle) UnmarshalYAML(node *yaml.Node) error {
	style, err := ParseExerciseStyle(node.Value)
	if err != nil {
		return err
	}
	*self = style
	return nil
}

// PlotToggle controls whether OptionPrice renders the tree image.
type PlotToggle int

const (
	PlotNo PlotToggle = iota
	PlotYes
)

func (self PlotToggle) String() string {
	if self == PlotYes {
		return "Yes"
	}
	return "No"
}

// ParsePlotToggle accepts "Y", "Yes", "N", "No" and the empty string (No).
func ParsePlotToggle(s string) (PlotToggle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return PlotYes, nil
	case "", "n", "no":
		return PlotNo, nil
	}
	return PlotNo, newError(ErrInvalidParameter,
		"Plot toggle %q is neither Yes nor No.", s)
}

func (self *PlotToggle) UnmarshalYAML(node *yaml.Node) error {
	plot, err := ParsePlotToggle(node.Value)
	if err != nil {
		return err
	}
	*self = plot
	return nil
}
