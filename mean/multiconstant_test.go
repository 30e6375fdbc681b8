package mean

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiConstantDerivedParameterCount(t *testing.T) {
	mc, err := NewMultiConstant(
		[]float64{1, 2, 3},
		[]int{1, 1, 2, 2, 2, 3},
		[]float64{0, 1, 10, 11, 12, 20},
	)
	require.NoError(t, err)
	require.Equal(t, 3, mc.NumParams())

	t.Run("offsets count mismatch", func(t *testing.T) {
		_, err := NewMultiConstant(
			[]float64{1, 2},
			[]int{1, 1, 2, 2, 2, 3},
			[]float64{0, 1, 10, 11, 12, 20},
		)
		require.ErrorIs(t, err, ErrParameterCount)
	})

	t.Run("single instrument", func(t *testing.T) {
		mc, err := NewMultiConstant([]float64{4.5}, []int{1, 1, 1}, []float64{0, 1, 2})
		require.NoError(t, err)
		require.Equal(t, 1, mc.NumParams())

		vals, err := mc.Eval([]float64{0, 1, 2})
		require.NoError(t, err)
		require.Equal(t, []float64{4.5, 4.5, 4.5}, vals)
	})
}

func TestMultiConstantShapeValidation(t *testing.T) {
	_, err := NewMultiConstant([]float64{1}, []int{1, 1}, []float64{0})
	require.ErrorIs(t, err, ErrShape)

	_, err = NewMultiConstant(nil, nil, nil)
	require.ErrorIs(t, err, ErrShape)
}

func TestMultiConstantTrainingTimes(t *testing.T) {
	// Two instruments: offset of the first relative to the last, plus the
	// absolute mean level of the last.
	mc, err := NewMultiConstant(
		[]float64{2.5, 10},
		[]int{1, 1, 2, 2},
		[]float64{0, 1, 10, 11},
	)
	require.NoError(t, err)

	vals, err := mc.Eval([]float64{0, 1, 10, 11})
	require.NoError(t, err)
	require.Equal(t, []float64{12.5, 12.5, 10, 10}, vals)
}

func TestMultiConstantTimeBins(t *testing.T) {
	mc, err := NewMultiConstant(
		[]float64{2.5, 10},
		[]int{1, 1, 2, 2},
		[]float64{0, 1, 10, 11},
	)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 5.5}, mc.TimeBins())

	t.Run("three instruments", func(t *testing.T) {
		mc, err := NewMultiConstant(
			[]float64{1, 2, 3},
			[]int{1, 1, 2, 2, 3, 3},
			[]float64{0, 2, 4, 6, 8, 10},
		)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 3, 7}, mc.TimeBins())
	})
}

func TestMultiConstantDenseGrid(t *testing.T) {
	mc, err := NewMultiConstant(
		[]float64{2.5, 10},
		[]int{1, 1, 2, 2},
		[]float64{0, 1, 10, 11},
	)
	require.NoError(t, err)

	// Bins are [0, 5.5]: instrument 1 holds [0, 5.5), instrument 2 the
	// rest. A time before the first observation falls through to the last
	// instrument's zero offset.
	vals, err := mc.Eval([]float64{-1, 0, 0.5, 3, 7, 20})
	require.NoError(t, err)
	require.Equal(t, []float64{10, 12.5, 12.5, 12.5, 10, 10}, vals)
}

func TestMultiConstantSameLengthGridReusesAssignment(t *testing.T) {
	mc, err := NewMultiConstant(
		[]float64{2.5, 10},
		[]int{1, 1, 2, 2},
		[]float64{0, 1, 10, 11},
	)
	require.NoError(t, err)

	// Any input with the training length reuses the stored per-observation
	// assignment, regardless of the actual values.
	vals, err := mc.Eval([]float64{100, 200, -100, -200})
	require.NoError(t, err)
	require.Equal(t, []float64{12.5, 12.5, 10, 10}, vals)
}

func TestMultiConstantNonContiguousLabels(t *testing.T) {
	// A label jump of 2 is not counted as a transition, so only one
	// parameter is derived, but the second block still splits the bins.
	// Evaluation cannot map that block onto an offset and must say so.
	mc, err := NewMultiConstant([]float64{5}, []int{1, 3}, []float64{0, 10})
	require.NoError(t, err)
	require.Equal(t, 1, mc.NumParams())

	_, err = mc.Eval([]float64{0, 10})
	require.ErrorIs(t, err, ErrShape)

	_, err = mc.Eval([]float64{8, 9, 12})
	require.ErrorIs(t, err, ErrShape)
}

func TestMultiConstantSetParams(t *testing.T) {
	mc, err := NewMultiConstant(
		[]float64{2.5, 10},
		[]int{1, 1, 2, 2},
		[]float64{0, 1, 10, 11},
	)
	require.NoError(t, err)

	rest, err := mc.SetParams([]float64{-1, 20, 99})
	require.NoError(t, err)
	require.Equal(t, []float64{99}, rest)

	vals, err := mc.Eval([]float64{0, 1, 10, 11})
	require.NoError(t, err)
	require.Equal(t, []float64{19, 19, 20, 20}, vals)
}
