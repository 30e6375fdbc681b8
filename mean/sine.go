package mean

import (
	"math"
)

var (
	sine *Sine
	_    Function = sine // Check that Sine respects the Function interface.
)

// Sine is a sinusoidal mean function,
//
//	m(t) = amplitude * sin(2*pi*t/period + phase)
type Sine struct {
	pars []float64 // amplitude, period, phase
}

func NewSine(amplitude, period, phase float64) *Sine {
	return &Sine{pars: []float64{amplitude, period, phase}}
}

func (m *Sine) Eval(times []float64) ([]float64, error) {
	amp, period, phase := m.pars[0], m.pars[1], m.pars[2]
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = amp * math.Sin(2*math.Pi*t/period+phase)
	}
	return out, nil
}

func (m *Sine) Params() []float64 {
	return clone(m.pars)
}

func (m *Sine) SetParams(stream []float64) ([]float64, error) {
	return consume("Sine", m.pars, stream)
}

func (m *Sine) NumParams() int {
	return 3
}

func (m *Sine) Zero() Function {
	return NewSine(0, 0, 0)
}

func (m *Sine) String() string {
	return render("Sine", m.pars)
}
