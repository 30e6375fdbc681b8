package mean

import (
	"gonum.org/v1/gonum/stat"
)

var (
	linear *Linear
	_      Function = linear // Check that Linear respects the Function interface.
)

// Linear is a linear mean function,
//
//	m(t) = slope*(t - mean(t)) + intercept
//
// Time is centered on its own mean before the slope applies, so the
// intercept is the value at the mean epoch rather than at t=0.
type Linear struct {
	pars []float64 // slope, intercept
}

func NewLinear(slope, intercept float64) *Linear {
	return &Linear{pars: []float64{slope, intercept}}
}

func (m *Linear) Eval(times []float64) ([]float64, error) {
	out := make([]float64, len(times))
	if len(times) == 0 {
		return out, nil
	}
	tmean := stat.Mean(times, nil)
	for i, t := range times {
		out[i] = m.pars[0]*(t-tmean) + m.pars[1]
	}
	return out, nil
}

func (m *Linear) Params() []float64 {
	return clone(m.pars)
}

func (m *Linear) SetParams(stream []float64) ([]float64, error) {
	return consume("Linear", m.pars, stream)
}

func (m *Linear) NumParams() int {
	return 2
}

func (m *Linear) Zero() Function {
	return NewLinear(0, 0)
}

func (m *Linear) String() string {
	return render("Linear", m.pars)
}
