package univariate

import (
	"math"

	"github.com/copyleftdev/SCALR/internal/optimization"
)

// Brent minimizes f by Brent's method: a parabolic fit through the three
// best points seen so far, with golden-section steps whenever the fit is
// not trustworthy. A bracket is obtained first from the default seeds.
//
// An absent xtol defaults to 1.48e-8. The iteration loop ends either on
// the displacement test or on the maxiter budget, and the Result reports
// Success=true in both cases; only the bracketing stage can fail.
func Brent(f optimization.Objective, xtol optimization.Tolerance, maxiter int) (*optimization.Result, error) {
	tol, err := xtol.Resolve(1.48e-8)
	if err != nil {
		return nil, err
	}

	br, err := bracketDefault(f)
	if err != nil {
		return nil, err
	}
	funCalls := br.funCalls

	// Floor on the displacement tolerance.
	const minTol = 1.0e-11
	// Golden-section step factor, (3-sqrt(5))/2.
	const cg = 0.3819660

	// x, w, v are the best, second best, and third best points.
	x, w, v := br.xb, br.xb, br.xb
	fw := f.Evaluate(x)
	fv, fx := fw, fw

	var a, b float64
	if br.xa < br.xc {
		a, b = br.xa, br.xc
	} else {
		a, b = br.xc, br.xa
	}

	deltax := 0.0
	funCalls++
	rat := deltax * cg

	for iter := 0; iter < maxiter; iter++ {
		tol1 := tol*math.Abs(x) + minTol
		tol2 := 2 * tol1
		xmid := 0.5 * (a + b)

		if math.Abs(x-xmid) < tol2-0.5*(b-a) {
			break
		}

		if math.Abs(deltax) <= tol1 {
			// Golden-section step into the larger segment.
			if x >= xmid {
				deltax = a - x
			} else {
				deltax = b - x
			}
			rat = cg * deltax
		} else {
			// Parabolic fit through (v, fv), (w, fw), (x, fx).
			tmp1 := (x - w) * (fx - fv)
			tmp2 := (x - v) * (fx - fw)
			p := (x-v)*tmp2 - (x-w)*tmp1
			tmp2 = 2 * (tmp2 - tmp1)
			if tmp2 > 0 {
				p = -p
			}
			tmp2 = math.Abs(tmp2)
			dxTemp := deltax
			deltax = rat

			if p > tmp2*(a-x) && p < tmp2*(b-x) && math.Abs(p) < math.Abs(0.5*tmp2*dxTemp) {
				// The fitted step is inside (a, b) and shorter than
				// half the step before last: take it.
				rat = p / tmp2
				u := x + rat
				if u-a < tol2 || b-u < tol2 {
					if xmid-x >= 0 {
						rat = tol1
					} else {
						rat = -tol1
					}
				}
			} else {
				// Fit rejected; golden-section step instead.
				if x >= xmid {
					deltax = a - x
				} else {
					deltax = b - x
				}
				rat = cg * deltax
			}
		}

		// Never step by less than tol1.
		var u float64
		if math.Abs(rat) < tol1 {
			if rat >= 0 {
				u = x + tol1
			} else {
				u = x - tol1
			}
		} else {
			u = x + rat
		}

		fu := f.Evaluate(u)
		funCalls++

		if fu > fx {
			// u is not an improvement over x; tighten the far bound.
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || math.Abs(w-x) < machEps {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || math.Abs(v-x) < machEps || math.Abs(v-w) < machEps {
				v = u
				fv = fu
			}
		} else {
			// New best point; shift the triple down.
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		}
	}

	return &optimization.Result{
		Fun:     fx,
		Nfev:    funCalls,
		Success: true,
		X:       x,
	}, nil
}
