package flow

import (
	"errors"
	"fmt"
)

// errInvalidArgument is the sentinel all InvalidArgumentError values wrap,
// so callers can test with errors.Is(err, flow.ErrInvalidArgument) without
// caring about the specific reason. Mirrors graph's sentinel-error style
// (graph.ErrVertexNotFound et al.).
var errInvalidArgument = errors.New("flow: invalid argument")

// ErrInvalidArgument is the sentinel every InvalidArgumentError wraps.
var ErrInvalidArgument = errInvalidArgument

// ErrUnbounded is returned when the max flow is infinite: an s-t path
// exists composed entirely of edges lacking the capacity attribute.
var ErrUnbounded = errors.New("flow: max flow is unbounded")

// InvalidArgumentError reports a rejected call: s == t, a missing endpoint,
// a negative capacity, an unrecognized solver tag, a cutoff passed to
// MinimumCut, a negative GlobalRelabelFreq, or an unknown option.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("flow: invalid argument: %s", e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return errInvalidArgument
}

func invalidArgument(format string, args ...interface{}) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// unboundedf wraps ErrUnbounded with the path that witnessed it, keeping
// errors.Is(err, ErrUnbounded) true for callers that only care about kind.
func unboundedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnbounded, fmt.Sprintf(format, args...))
}
