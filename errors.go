package binomial

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

var (
	// ErrInvalidParameter is returned for model parameters the lattice cannot
	// be built from (non-positive steps, time, spot, strike or volatility).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedOptionKind is returned when a payoff is requested for a
	// kind other than Call or Put.
	ErrUnsupportedOptionKind = errors.New("unsupported option kind")

	// ErrLatticeShape is returned when a lattice does not have the
	// (steps+1)x(steps+1) shape its consumer expects.
	ErrLatticeShape = errors.New("lattice shape mismatch")
)

// newError logs the message the same way the rest of the package does and
// returns it wrapped around kind so callers can match it with errors.Is.
func newError(kind error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	glog.Error(msg)
	return fmt.Errorf("%w: %s", kind, msg)
}
