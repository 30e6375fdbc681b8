package mean

var (
	parabola *Parabola
	cubic    *Cubic
	_        Function = parabola // Check that Parabola respects the Function interface.
	_        Function = cubic    // Check that Cubic respects the Function interface.
)

// Parabola is a 2nd degree polynomial mean function,
//
//	m(t) = quad*t^2 + slope*t + intercept
type Parabola struct {
	pars []float64 // quad, slope, intercept
}

func NewParabola(quad, slope, intercept float64) *Parabola {
	return &Parabola{pars: []float64{quad, slope, intercept}}
}

func (m *Parabola) Eval(times []float64) ([]float64, error) {
	return polyval(m.pars, times), nil
}

func (m *Parabola) Params() []float64 {
	return clone(m.pars)
}

func (m *Parabola) SetParams(stream []float64) ([]float64, error) {
	return consume("Parabola", m.pars, stream)
}

func (m *Parabola) NumParams() int {
	return 3
}

func (m *Parabola) Zero() Function {
	return NewParabola(0, 0, 0)
}

func (m *Parabola) String() string {
	return render("Parabola", m.pars)
}

// Cubic is a 3rd degree polynomial mean function,
//
//	m(t) = cub*t^3 + quad*t^2 + slope*t + intercept
type Cubic struct {
	pars []float64 // cub, quad, slope, intercept
}

func NewCubic(cub, quad, slope, intercept float64) *Cubic {
	return &Cubic{pars: []float64{cub, quad, slope, intercept}}
}

func (m *Cubic) Eval(times []float64) ([]float64, error) {
	return polyval(m.pars, times), nil
}

func (m *Cubic) Params() []float64 {
	return clone(m.pars)
}

func (m *Cubic) SetParams(stream []float64) ([]float64, error) {
	return consume("Cubic", m.pars, stream)
}

func (m *Cubic) NumParams() int {
	return 4
}

func (m *Cubic) Zero() Function {
	return NewCubic(0, 0, 0, 0)
}

func (m *Cubic) String() string {
	return render("Cubic", m.pars)
}

// polyval evaluates a polynomial with coefficients ordered highest degree
// first at each of the given times, by Horner's scheme.
func polyval(coeffs, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		v := 0.0
		for _, c := range coeffs {
			v = v*t + c
		}
		out[i] = v
	}
	return out
}
