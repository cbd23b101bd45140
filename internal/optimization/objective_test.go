package optimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomialEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{
			name:   "empty is zero",
			coeffs: nil,
			x:      3.5,
			want:   0,
		},
		{
			name:   "constant",
			coeffs: []float64{42},
			x:      -7,
			want:   42,
		},
		{
			name:   "quadratic",
			coeffs: []float64{50, 4, 3}, // 3x^2 + 4x + 50
			x:      2,
			want:   70,
		},
		{
			name:   "cubic at a root",
			coeffs: []float64{0, -4, 0, 1}, // x^3 - 4x
			x:      2,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Polynomial{Coefficients: tt.coeffs}
			assert.Equal(t, tt.want, p.Evaluate(tt.x))
		})
	}
}

func TestObjectiveFuncAdapter(t *testing.T) {
	var obj Objective = ObjectiveFunc(func(x float64) float64 { return 2 * x })
	assert.Equal(t, 8.0, obj.Evaluate(4))
}
