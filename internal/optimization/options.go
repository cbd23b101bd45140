package optimization

// Tolerance is an optional convergence tolerance. The zero value means the
// caller did not supply one: the algorithm default applies and no validation
// happens. A supplied value must be non-negative.
type Tolerance struct {
	value float64
	set   bool
}

// Tol returns a Tolerance carrying the supplied value v.
func Tol(v float64) Tolerance {
	return Tolerance{value: v, set: true}
}

// Supplied reports whether the caller set the tolerance explicitly.
func (t Tolerance) Supplied() bool { return t.set }

// Resolve returns the tolerance to use given the algorithm default def.
// An absent tolerance resolves to def without any validation. A supplied
// negative value is an argument error, reported before the objective is
// ever evaluated.
func (t Tolerance) Resolve(def float64) (float64, error) {
	if !t.set {
		return def, nil
	}
	if t.value < 0 {
		return 0, NewArgumentError("tolerance cannot be negative")
	}
	return t.value, nil
}
