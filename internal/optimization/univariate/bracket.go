// Package univariate provides derivative-free minimizers for scalar
// functions of one variable: golden-section search, Brent's method, and
// a bounded Brent search over a closed interval.
//
// The algorithms follow the classical formulations used by SciPy's
// scalar minimizers (scipy.optimize._optimize). They are synchronous,
// allocation-free in the inner loops, and hold no state across calls, so
// concurrent runs with independent objectives need no locking.
package univariate

import (
	"math"

	"github.com/copyleftdev/SCALR/internal/optimization"
)

// gold is the golden ratio, used to extrapolate bracket candidates.
const gold = 1.618034

// machEps is the double-precision machine epsilon.
var machEps = math.Nextafter(1, 2) - 1

// bracketResult is a downhill bracket (xa, xb, xc) with
// f(xa) > f(xb) < f(xc), plus the evaluations spent finding it.
//
// The outer points are not guaranteed numerically sorted; only xc is
// guaranteed to lie past xb in the downhill direction.
type bracketResult struct {
	xa, xb, xc float64
	funCalls   int
}

// bracket walks downhill from the seed points xa, xb until it finds a
// triple bracketing a minimum. Each step first tries the extremum of a
// quadratic fit through the current three points; growLimit caps how far
// that candidate may jump past the current window, and a plain
// golden-ratio expansion is the fallback. Exceeding maxiter expansion
// steps without establishing a bracket is an ErrMaxIterExceeded failure.
func bracket(f optimization.Objective, xa, xb, growLimit float64, maxiter int) (bracketResult, error) {
	// Clamp near-zero quadratic-fit denominators to avoid blow-up.
	const verySmall = 1e-21

	fa := f.Evaluate(xa)
	fb := f.Evaluate(xb)
	if fa < fb {
		// Swap so the search proceeds downhill from xa toward xb.
		xa, xb = xb, xa
		fa, fb = fb, fa
	}
	xc := xb + gold*(xb-xa)
	fc := f.Evaluate(xc)
	funCalls := 3
	iter := 0

	for fc < fb {
		// Extremum of the quadratic through (xa, fa), (xb, fb), (xc, fc).
		tmp1 := (xb - xa) * (fb - fc)
		tmp2 := (xb - xc) * (fb - fa)
		val := tmp2 - tmp1

		var denom float64
		if math.Abs(val) < verySmall {
			denom = 2 * verySmall
		} else {
			denom = 2 * val
		}

		w := xb - ((xb-xc)*tmp2-(xb-xa)*tmp1)/denom
		wlim := xb + growLimit*(xc-xb)

		if iter > maxiter {
			return bracketResult{}, optimization.NewMaxIterError("bracket")
		}
		iter++

		var fw float64
		switch {
		case (w-xc)*(xb-w) > 0:
			// Candidate lies between xb and xc.
			fw = f.Evaluate(w)
			funCalls++
			if fw < fc {
				// Minimum bracketed between xb and xc.
				return bracketResult{xa: xb, xb: w, xc: xc, funCalls: funCalls}, nil
			}
			if fw > fb {
				// Minimum bracketed between xa and w.
				return bracketResult{xa: xa, xb: xb, xc: w, funCalls: funCalls}, nil
			}
			// The fit did not help; expand past xc instead.
			w = xc + gold*(xc-xb)
			fw = f.Evaluate(w)
			funCalls++
		case (w-wlim)*(wlim-xc) >= 0:
			// Candidate at or past the growth limit: clamp it there.
			w = wlim
			fw = f.Evaluate(w)
			funCalls++
		case (w-wlim)*(xc-w) > 0:
			// Candidate past xc but within the growth limit.
			fw = f.Evaluate(w)
			funCalls++
			if fw < fc {
				// Still descending: shift the window one step further.
				xb = xc
				xc = w
				w = xc + gold*(xc-xb)
				fb = fc
				fc = fw
				fw = f.Evaluate(w)
				funCalls++
			}
		default:
			w = xc + gold*(xc-xb)
			fw = f.Evaluate(w)
			funCalls++
		}

		xa, xb, xc = xb, xc, w
		fa, fb, fc = fb, fc, fw
	}

	return bracketResult{xa: xa, xb: xb, xc: xc, funCalls: funCalls}, nil
}

// bracketDefault brackets with the standard seeds and limits shared by
// the unbounded minimizers.
func bracketDefault(f optimization.Objective) (bracketResult, error) {
	return bracket(f, 0, 1, 110, 1000)
}
