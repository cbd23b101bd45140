package optimization

// Result is the outcome of one scalar minimization run. It is constructed
// once per call and carries no state beyond the call that produced it.
type Result struct {
	// Fun is the objective value at X.
	Fun float64 `json:"fun"`
	// Nfev is the cumulative number of objective evaluations performed,
	// including any evaluations spent bracketing.
	Nfev int `json:"nfev"`
	// Success reports whether the run converged. Bounded sets it to false
	// when the iteration budget runs out before the tolerance test is met;
	// Brent reports true unconditionally. Golden never returns a Result
	// on budget exhaustion, it fails instead.
	Success bool `json:"success"`
	// X is the minimizer location.
	X float64 `json:"x"`
}
