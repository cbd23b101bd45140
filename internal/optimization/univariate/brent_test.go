package univariate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/copyleftdev/SCALR/internal/optimization"
)

func TestBrentCubicValley(t *testing.T) {
	res, err := Brent(optimization.ObjectiveFunc(cubicValley), optimization.Tolerance{}, 500)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, scalar.EqualWithinAbsOrRel(res.X, cubicValleyX, 1e-12, 1e-12),
		"got x = %v", res.X)
	assert.True(t, scalar.EqualWithinAbsOrRel(res.Fun, cubicValleyFun, 1e-12, 1e-12),
		"got fun = %v", res.Fun)
}

func TestBrentSimpleQuadratic(t *testing.T) {
	parabola := optimization.Polynomial{Coefficients: []float64{4, 0, 1}} // x^2 + 4

	res, err := Brent(parabola, optimization.Tolerance{}, 500)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, scalar.EqualWithinAbs(res.X, 0, 1e-7), "got x = %v", res.X)
	assert.True(t, scalar.EqualWithinAbs(res.Fun, 4, 1e-10), "got fun = %v", res.Fun)
}

func TestBrentNegativeTolerance(t *testing.T) {
	counter := &countingObjective{f: optimization.ObjectiveFunc(cubicValley)}

	res, err := Brent(counter, optimization.Tol(-0.5), 500)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, optimization.ErrInvalidArgument)
	assert.Zero(t, counter.calls)
}

func TestBrentReportsSuccessOnBudgetExhaustion(t *testing.T) {
	// Unlike golden, Brent does not distinguish convergence from running
	// out of budget: a single iteration still yields Success=true with
	// the best point seen so far.
	res, err := Brent(optimization.ObjectiveFunc(cubicValley), optimization.Tolerance{}, 1)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Positive(t, res.Nfev)
}
