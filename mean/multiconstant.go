package mean

import (
	"fmt"
	"sort"

	"github.com/j-faria/gpyrn/utils"
)

var (
	multiConstant *MultiConstant
	_             Function = multiConstant // Check that MultiConstant respects the Function interface.
)

// MultiConstant is a constant mean function for time series gathered by
// multiple instruments. Its parameters are the offsets of each instrument
// relative to the last one, followed by the absolute mean level of the
// last instrument: [off_1, ..., off_{n-1}, mean].
type MultiConstant struct {
	pars  []float64
	obsid []int     // one-based instrument label per observation
	times []float64 // observation times, same length as obsid
	idx   []int     // zero-based instrument index per observation
}

// NewMultiConstant builds a per-instrument offset model. The obsid labels
// must be one-based and grouped in non-decreasing blocks, one block per
// instrument: [1, 1, ..., 2, 2, 2, ..., 3]. The number of parameters is
// the number of label transitions plus one, and len(offsets) must match
// it exactly.
func NewMultiConstant(offsets []float64, obsid []int, times []float64) (*MultiConstant, error) {
	if len(obsid) == 0 || len(obsid) != len(times) {
		return nil, fmt.Errorf("%w: obsid has %d entries, time has %d",
			ErrShape, len(obsid), len(times))
	}
	count := 1
	for i := 0; i+1 < len(obsid); i++ {
		if obsid[i+1]-obsid[i] == 1 {
			count++
		}
	}
	if len(offsets) != count {
		return nil, fmt.Errorf("%w: MultiConstant needs %d parameters, got %d",
			ErrParameterCount, count, len(offsets))
	}
	idx := make([]int, len(obsid))
	for i, id := range obsid {
		idx[i] = id - 1
	}
	return &MultiConstant{
		pars:  clone(offsets),
		obsid: append([]int(nil), obsid...),
		times: clone(times),
		idx:   idx,
	}, nil
}

// TimeBins returns the bin edges separating instrument blocks: the first
// observation time followed by the midpoint between each block's last
// time and the next block's first time, in ascending order.
func (m *MultiConstant) TimeBins() []float64 {
	bins := make([]float64, 0, len(m.pars)+1)
	bins = append(bins, m.times[0])
	for i := 0; i+1 < len(m.obsid); i++ {
		if m.obsid[i+1] != m.obsid[i] {
			bins = append(bins, (m.times[i]+m.times[i+1])/2)
		}
	}
	sort.Float64s(bins)
	return bins
}

// Eval adds the mean level and the instrument offset to every time. When
// the input has the same length as the stored observation times, the
// stored per-observation instrument index is reused, reproducing the
// training-time assignment exactly; otherwise each time is assigned to an
// instrument by right-open interval search against TimeBins. The offsets
// vector carries a trailing zero, so the last instrument contributes no
// offset and times before the first observation fall through to it.
func (m *MultiConstant) Eval(times []float64) ([]float64, error) {
	last := len(m.pars) - 1
	offsets := make([]float64, len(m.pars))
	copy(offsets, m.pars[:last])

	out := utils.Full(len(times), m.pars[last])
	if len(times) == len(m.times) {
		for i, j := range m.idx {
			if j >= len(offsets) {
				return nil, fmt.Errorf("%w: instrument label %d exceeds the %d derived instruments",
					ErrShape, m.obsid[i], len(offsets))
			}
			out[i] += offsets[j]
		}
		return out, nil
	}

	bins := m.TimeBins()
	for i, t := range times {
		j := utils.SearchRight(bins, t) - 1
		if j < 0 {
			j += len(offsets)
		}
		if j >= len(offsets) {
			return nil, fmt.Errorf("%w: time %v falls in bin %d beyond the %d derived instruments",
				ErrShape, t, j, len(offsets))
		}
		out[i] += offsets[j]
	}
	return out, nil
}

func (m *MultiConstant) Params() []float64 {
	return clone(m.pars)
}

func (m *MultiConstant) SetParams(stream []float64) ([]float64, error) {
	return consume("MultiConstant", m.pars, stream)
}

func (m *MultiConstant) NumParams() int {
	return len(m.pars)
}

func (m *MultiConstant) Zero() Function {
	z, _ := NewMultiConstant(make([]float64, len(m.pars)), m.obsid, m.times)
	return z
}

func (m *MultiConstant) String() string {
	return render("MultiConstant", m.pars)
}
