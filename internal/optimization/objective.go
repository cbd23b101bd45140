package optimization

// Objective is the capability a caller supplies to the scalar minimizers:
// a pure mapping from a point to the function value at that point.
// Implementations must be deterministic and side-effect free; a single
// minimization may call Evaluate hundreds to a few thousand times.
type Objective interface {
	// Evaluate returns the objective value at x.
	Evaluate(x float64) float64
}

// ObjectiveFunc adapts an ordinary function to the Objective interface.
type ObjectiveFunc func(x float64) float64

// Evaluate calls f(x).
func (f ObjectiveFunc) Evaluate(x float64) float64 { return f(x) }

// Polynomial is an Objective backed by dense coefficients ordered from the
// constant term upward: p(x) = Coefficients[0] + Coefficients[1]*x + ...
// An empty coefficient slice evaluates to zero everywhere.
type Polynomial struct {
	Coefficients []float64 `json:"coefficients"`
}

// Evaluate computes p(x) by Horner's rule.
func (p Polynomial) Evaluate(x float64) float64 {
	var v float64
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		v = v*x + p.Coefficients[i]
	}
	return v
}
