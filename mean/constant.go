package mean

import (
	"github.com/j-faria/gpyrn/utils"
)

var (
	constant *Constant
	_        Function = constant // Check that Constant respects the Function interface.
)

// Constant is a constant offset mean function.
type Constant struct {
	pars []float64 // c
}

func NewConstant(c float64) *Constant {
	return &Constant{pars: []float64{c}}
}

func (m *Constant) Eval(times []float64) ([]float64, error) {
	return utils.Full(len(times), m.pars[0]), nil
}

func (m *Constant) Params() []float64 {
	return clone(m.pars)
}

func (m *Constant) SetParams(stream []float64) ([]float64, error) {
	return consume("Constant", m.pars, stream)
}

func (m *Constant) NumParams() int {
	return 1
}

func (m *Constant) Zero() Function {
	return NewConstant(0)
}

func (m *Constant) String() string {
	return render("Constant", m.pars)
}
