package univariate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/copyleftdev/SCALR/internal/optimization"
)

func TestBoundedQuadratic(t *testing.T) {
	quadratic := optimization.Polynomial{Coefficients: []float64{50, 4, 3}} // 3x^2 + 4x + 50

	res, err := Bounded(quadratic, -10, 10, 500)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, scalar.EqualWithinAbs(res.X, -2.0/3.0, 1e-6), "got x = %v", res.X)
	assert.True(t, scalar.EqualWithinAbs(res.Fun, 48.666666666666664, 1e-6), "got fun = %v", res.Fun)
}

func TestBoundedMinimumAtInteriorOfTightInterval(t *testing.T) {
	res, err := Bounded(optimization.ObjectiveFunc(cubicValley), 0, 2, 500)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, scalar.EqualWithinAbs(res.X, cubicValleyX, 1e-4), "got x = %v", res.X)
}

func TestBoundedInvertedBounds(t *testing.T) {
	counter := &countingObjective{f: optimization.Polynomial{Coefficients: []float64{0, 0, 1}}}

	res, err := Bounded(counter, 10, -10, 500)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, optimization.ErrInvalidArgument)
	assert.Zero(t, counter.calls)
}

func TestBoundedBudgetExhaustionIsNotAnError(t *testing.T) {
	quadratic := optimization.Polynomial{Coefficients: []float64{50, 4, 3}}

	res, err := Bounded(quadratic, -10, 10, 3)
	require.NoError(t, err)

	// Best-effort answer: finite, inside the interval, flagged as
	// non-converged.
	assert.False(t, res.Success)
	assert.GreaterOrEqual(t, res.X, -10.0)
	assert.LessOrEqual(t, res.X, 10.0)
	assert.LessOrEqual(t, res.Nfev, 3)
}

func TestBoundedDegenerateInterval(t *testing.T) {
	quadratic := optimization.Polynomial{Coefficients: []float64{50, 4, 3}}

	res, err := Bounded(quadratic, 2, 2, 500)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 2.0, res.X)
	assert.Equal(t, 1, res.Nfev)
}
