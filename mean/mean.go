package mean

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrParameterCount = errors.New("wrong number of parameters")
var ErrInvalidParameter = errors.New("invalid parameter")
var ErrShape = errors.New("shape mismatch")

// Function is a parametric mean function over time.
//
// Eval is a pure projection of the times and the current parameters: it
// never mutates either, so it is safe to call concurrently on the same
// instance as long as no SetParams call runs at the same time. SetParams
// mutates the parameter vector in place and must be serialized by the
// caller.
type Function interface {
	// Eval returns the value of the function at each of the given times.
	Eval(times []float64) ([]float64, error)

	// Params returns a copy of the current parameter vector.
	Params() []float64

	// SetParams consumes exactly NumParams values from the front of the
	// stream, in order, and returns the unconsumed tail (empty when the
	// lengths match exactly). A shorter stream fails with
	// ErrParameterCount and leaves the parameters untouched.
	SetParams(stream []float64) ([]float64, error)

	// NumParams returns the length of the parameter vector.
	NumParams() int

	// Zero returns a new instance of the same shape with all parameters
	// set to zero. Context that is not a parameter (the instrument labels
	// and times of MultiConstant, the children of a composite) is kept.
	Zero() Function

	fmt.Stringer
}

// EvalAt evaluates f at a single time.
func EvalAt(f Function, t float64) (float64, error) {
	vals, err := f.Eval([]float64{t})
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

// consume copies len(dst) values from the front of stream into dst and
// returns the unconsumed tail.
func consume(name string, dst, stream []float64) ([]float64, error) {
	if len(stream) < len(dst) {
		return nil, fmt.Errorf("%w: %s needs %d parameters, got %d",
			ErrParameterCount, name, len(dst), len(stream))
	}
	copy(dst, stream)
	return stream[len(dst):], nil
}

func clone(pars []float64) []float64 {
	return append([]float64(nil), pars...)
}

// render formats a model as "Name(p1, p2, ...)".
func render(name string, pars []float64) string {
	strs := make([]string, len(pars))
	for i, p := range pars {
		strs[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return name + "(" + strings.Join(strs, ", ") + ")"
}
