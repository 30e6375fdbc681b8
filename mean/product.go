package mean

import (
	"gonum.org/v1/gonum/floats"
)

var (
	product *Product
	_       Function = product // Check that Product respects the Function interface.
)

// Product is the elementwise product of two or more mean functions.
type Product struct {
	parts []Function
}

// NewProduct combines two mean functions into their elementwise product.
// Nested products are flattened, so a chain built left to right yields a
// single node whose parameters appear in build order.
func NewProduct(first, second Function) *Product {
	parts := make([]Function, 0, 2)
	switch first := first.(type) {
	case *Product:
		parts = append(parts, first.parts...)
	default:
		parts = append(parts, first)
	}
	switch second := second.(type) {
	case *Product:
		parts = append(parts, second.parts...)
	default:
		parts = append(parts, second)
	}
	return &Product{parts: parts}
}

func (m *Product) Eval(times []float64) ([]float64, error) {
	out, err := m.parts[0].Eval(times)
	if err != nil {
		return nil, err
	}
	for _, part := range m.parts[1:] {
		vals, err := part.Eval(times)
		if err != nil {
			return nil, err
		}
		floats.Mul(out, vals)
	}
	return out, nil
}

func (m *Product) Params() []float64 {
	return concatParams(m.parts)
}

func (m *Product) SetParams(stream []float64) ([]float64, error) {
	return distributeParams(m.parts, stream)
}

func (m *Product) NumParams() int {
	return countParams(m.parts)
}

func (m *Product) Zero() Function {
	return &Product{parts: zeroParts(m.parts)}
}

func (m *Product) String() string {
	return joinParts(m.parts, " * ")
}
