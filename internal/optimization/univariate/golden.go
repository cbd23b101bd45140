package univariate

import (
	"math"

	"github.com/copyleftdev/SCALR/internal/optimization"
)

// Golden minimizes f by golden-section search: it brackets a minimum
// starting from the default seeds, then shrinks the bracket by repeated
// golden-ratio subdivision until |x3-x0| <= tol*(|x1|+|x2|).
//
// An absent xtol defaults to 2.22e-16. Exhausting maxiter iterations
// before the stopping test is satisfied fails with ErrMaxIterExceeded;
// no partial result is returned on that path.
func Golden(f optimization.Objective, xtol optimization.Tolerance, maxiter int) (*optimization.Result, error) {
	tol, err := xtol.Resolve(2.22e-16)
	if err != nil {
		return nil, err
	}

	br, err := bracketDefault(f)
	if err != nil {
		return nil, err
	}
	funCalls := br.funCalls

	// Golden ratio conjugate, 2/(1+sqrt(5)).
	const gr = 0.61803399
	const gc = 1 - gr

	x0, x3 := br.xa, br.xc
	var x1, x2 float64
	if math.Abs(br.xc-br.xb) > math.Abs(br.xb-br.xa) {
		// Place the new interior point inside the longer segment.
		x1 = br.xb
		x2 = br.xb + gc*(br.xc-br.xb)
	} else {
		x2 = br.xb
		x1 = br.xb - gc*(br.xb-br.xa)
	}

	f1 := f.Evaluate(x1)
	f2 := f.Evaluate(x2)
	// SciPy counts the seeding pair as a single evaluation; keep the
	// same accounting so nfev stays comparable.
	funCalls++

	nit := 0
	for i := 0; i < maxiter; i++ {
		if math.Abs(x3-x0) <= tol*(math.Abs(x1)+math.Abs(x2)) {
			break
		}

		if f2 < f1 {
			x0 = x1
			x1 = x2
			x2 = gr*x1 + gc*x3
			f1 = f2
			f2 = f.Evaluate(x2)
		} else {
			x3 = x2
			x2 = x1
			x1 = gr*x2 + gc*x0
			f2 = f1
			f1 = f.Evaluate(x1)
		}

		funCalls++
		nit++
	}

	if nit >= maxiter {
		return nil, optimization.NewMaxIterError("golden")
	}

	var xmin, fval float64
	if f1 < f2 {
		xmin, fval = x1, f1
	} else {
		xmin, fval = x2, f2
	}

	return &optimization.Result{
		Fun:     fval,
		Nfev:    funCalls,
		Success: true,
		X:       xmin,
	}, nil
}
