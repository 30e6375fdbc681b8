package mean

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/j-faria/gpyrn/utils"
)

var (
	sum *Sum
	_   Function = sum // Check that Sum respects the Function interface.
)

// Sum is the elementwise sum of two or more mean functions.
type Sum struct {
	parts []Function
}

// NewSum combines two mean functions into their elementwise sum. Nested
// sums are flattened, so a chain built left to right yields a single node
// whose parameters appear in build order.
func NewSum(first, second Function) *Sum {
	parts := make([]Function, 0, 2)
	switch first := first.(type) {
	case *Sum:
		parts = append(parts, first.parts...)
	default:
		parts = append(parts, first)
	}
	switch second := second.(type) {
	case *Sum:
		parts = append(parts, second.parts...)
	default:
		parts = append(parts, second)
	}
	return &Sum{parts: parts}
}

func (m *Sum) Eval(times []float64) ([]float64, error) {
	out, err := m.parts[0].Eval(times)
	if err != nil {
		return nil, err
	}
	for _, part := range m.parts[1:] {
		vals, err := part.Eval(times)
		if err != nil {
			return nil, err
		}
		floats.Add(out, vals)
	}
	return out, nil
}

func (m *Sum) Params() []float64 {
	return concatParams(m.parts)
}

func (m *Sum) SetParams(stream []float64) ([]float64, error) {
	return distributeParams(m.parts, stream)
}

func (m *Sum) NumParams() int {
	return countParams(m.parts)
}

func (m *Sum) Zero() Function {
	return &Sum{parts: zeroParts(m.parts)}
}

func (m *Sum) String() string {
	return joinParts(m.parts, " + ")
}

// Parameter access of composites is recomputed from the parts on every
// call, never cached, so direct mutation of a child is always reflected.
func concatParams(parts []Function) []float64 {
	vecs := make([][]float64, len(parts))
	size := 0
	for i, part := range parts {
		vecs[i] = part.Params()
		size += len(vecs[i])
	}
	return utils.Concat(size, vecs...)
}

func distributeParams(parts []Function, stream []float64) ([]float64, error) {
	rest := stream
	var err error
	for _, part := range parts {
		rest, err = part.SetParams(rest)
		if err != nil {
			return nil, err
		}
	}
	return rest, nil
}

func countParams(parts []Function) int {
	n := 0
	for _, part := range parts {
		n += part.NumParams()
	}
	return n
}

func zeroParts(parts []Function) []Function {
	zeros := make([]Function, len(parts))
	for i, part := range parts {
		zeros[i] = part.Zero()
	}
	return zeros
}

func joinParts(parts []Function, sep string) string {
	strs := make([]string, len(parts))
	for i, part := range parts {
		strs[i] = part.String()
	}
	return strings.Join(strs, sep)
}
