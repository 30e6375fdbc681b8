package mean

import (
	"fmt"
	"math"
)

var (
	keplerian *Keplerian
	_         Function = keplerian // Check that Keplerian respects the Function interface.
)

const (
	solverTol     = 1e-10
	solverMaxIter = 100
)

// Keplerian is the radial-velocity signature of a single body on a
// Keplerian orbit,
//
//	RV(t) = K*(e*cos(w) + cos(w+v(t))) + sysVel
//
// where the true anomaly v(t) depends on time through Kepler's equation
// M = E - e*sin(E). Parameters, in order: orbital period P (> 0),
// semi-amplitude K, eccentricity e (in [0, 1)), argument of periastron w,
// orbital phase phi, systemic velocity.
type Keplerian struct {
	pars       []float64 // P, K, e, w, phi, sysVel
	singlePass bool
}

// KeplerianOption configures the eccentric-anomaly solver.
type KeplerianOption func(*Keplerian)

// WithSinglePassSolver reproduces the historical radvel-derived solver,
// whose convergence test collapsed an elementwise comparison into a
// constant, so at most one refinement pass ever ran (none when the seed
// already met the tolerance). It exists for compatibility with results
// produced by that implementation; the default solver iterates until the
// largest residual converges.
func WithSinglePassSolver() KeplerianOption {
	return func(k *Keplerian) { k.singlePass = true }
}

func NewKeplerian(period, amplitude, ecc, omega, phase, sysVel float64, opts ...KeplerianOption) (*Keplerian, error) {
	if err := checkOrbit(period, ecc); err != nil {
		return nil, err
	}
	k := &Keplerian{pars: []float64{period, amplitude, ecc, omega, phase, sysVel}}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

func checkOrbit(period, ecc float64) error {
	if !(period > 0) {
		return fmt.Errorf("%w: period must be positive, got %v", ErrInvalidParameter, period)
	}
	if !(ecc >= 0 && ecc < 1) {
		return fmt.Errorf("%w: eccentricity must be in [0, 1), got %v", ErrInvalidParameter, ecc)
	}
	return nil
}

// Eval computes the radial velocity at each time. The reference epoch is
// derived from the first time, T0 = t[0] - P*phi/(2*pi), so the input
// must not be empty.
func (k *Keplerian) Eval(times []float64) ([]float64, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: Keplerian needs at least one time for the reference epoch", ErrShape)
	}
	period, amp, ecc, omega, phase, sysVel :=
		k.pars[0], k.pars[1], k.pars[2], k.pars[3], k.pars[4], k.pars[5]
	if err := checkOrbit(period, ecc); err != nil {
		return nil, err
	}

	t0 := times[0] - period*phase/(2*math.Pi)
	ma := make([]float64, len(times))
	for i, t := range times {
		ma[i] = 2 * math.Pi * (t - t0) / period
	}
	ea := solveKepler(ma, ecc, k.singlePass)

	scale := math.Sqrt((1 + ecc) / (1 - ecc))
	out := make([]float64, len(times))
	for i, e := range ea {
		nu := 2 * math.Atan(scale*math.Tan(e/2))
		out[i] = amp*(ecc*math.Cos(omega)+math.Cos(omega+nu)) + sysVel
	}
	return out, nil
}

// solveKepler returns the eccentric anomaly for each mean anomaly in ma.
// The seed is a second-order series in the eccentricity; refinement
// applies a third-order correction (one Newton step followed by two
// Halley-style refinements) to the whole vector per pass, stopping once
// the largest residual |E - e*sin(E) - M| falls under solverTol or after
// solverMaxIter passes. An unconverged vector at the cap is returned as
// is. With singlePass set, at most one pass runs.
func solveKepler(ma []float64, ecc float64, singlePass bool) []float64 {
	ea := make([]float64, len(ma))
	resid := 0.0
	for i, m := range ma {
		ea[i] = m + ecc*math.Sin(m) + 0.5*ecc*ecc*math.Sin(2*m)
		if r := math.Abs(ea[i] - ecc*math.Sin(ea[i]) - m); r > resid {
			resid = r
		}
	}
	for iter := 0; resid > solverTol && iter < solverMaxIter; iter++ {
		resid = 0
		for i, m := range ma {
			e := ea[i]
			f := e - ecc*math.Sin(e) - m
			fp := 1 - ecc*math.Cos(e)
			fpp := ecc * math.Sin(e)
			fppp := 1 - fp
			d1 := -f / fp
			d2 := -f / (fp + d1*fpp/2)
			d3 := -f / (fp + d2*fpp/2 + d2*d2*fppp/6)
			e += d3
			ea[i] = e
			if r := math.Abs(e - ecc*math.Sin(e) - m); r > resid {
				resid = r
			}
		}
		if singlePass {
			break
		}
	}
	return ea
}

func (k *Keplerian) Params() []float64 {
	return clone(k.pars)
}

// SetParams validates the incoming period and eccentricity before any
// assignment, so a failed call leaves the previous orbit intact.
func (k *Keplerian) SetParams(stream []float64) ([]float64, error) {
	if len(stream) < len(k.pars) {
		return nil, fmt.Errorf("%w: Keplerian needs %d parameters, got %d",
			ErrParameterCount, len(k.pars), len(stream))
	}
	if err := checkOrbit(stream[0], stream[2]); err != nil {
		return nil, err
	}
	return consume("Keplerian", k.pars, stream)
}

func (k *Keplerian) NumParams() int {
	return 6
}

// Zero returns a Keplerian with all parameters zero. The zero orbit is
// not evaluable (the period is invalid) until SetParams installs a real
// one, which is how an optimizer is expected to use it.
func (k *Keplerian) Zero() Function {
	return &Keplerian{pars: make([]float64, len(k.pars)), singlePass: k.singlePass}
}

func (k *Keplerian) String() string {
	return render("Keplerian", k.pars)
}
