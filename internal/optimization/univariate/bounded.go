package univariate

import (
	"math"

	"github.com/copyleftdev/SCALR/internal/optimization"
)

// sign returns -1, 0, or 1 matching the sign of x, treating magnitudes
// below machine epsilon as zero.
func sign(x float64) float64 {
	if math.Abs(x) < machEps {
		return 0
	}
	if x > 0 {
		return 1
	}
	return -1
}

// isZero returns 1 when x is within machine epsilon of zero, else 0.
// Added to a sign, it keeps a step direction from degenerating to zero.
func isZero(x float64) float64 {
	if math.Abs(x) < machEps {
		return 1
	}
	return 0
}

// Bounded minimizes f over the closed interval [lower, upper] with the
// same parabolic/golden hybrid as Brent, seeded at the golden-section
// interior point of the interval. No bracketing step is performed. The
// step-size floor combines a machine-epsilon-scaled relative tolerance
// with the absolute tolerance xatol.
//
// lower > upper is an argument error, reported before any evaluation.
// Exhausting maxiter is not an error: the Result carries the best point
// found so far with Success=false.
func Bounded(f optimization.Objective, lower, upper float64, maxiter int) (*optimization.Result, error) {
	const xatol = 1e-5

	if upper < lower {
		return nil, optimization.NewArgumentError("the lower bound exceeds the upper bound")
	}

	sqrtEps := math.Sqrt(machEps)
	goldenMean := 0.5 * (3 - math.Sqrt(5))

	a, b := lower, upper
	fulc := a + goldenMean*(b-a)
	// xf is the best point, nfc the second best, fulc the third best.
	nfc, xf := fulc, fulc

	rat, e := 0.0, 0.0
	x := xf
	fx := f.Evaluate(x)
	num := 1
	ffulc, fnfc := fx, fx

	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + xatol/3
	tol2 := 2 * tol1

	success := true

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		golden := true

		// Try a parabolic fit when the step before last was long enough.
		if math.Abs(e) > tol1 {
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				// Acceptable parabola.
				golden = false
				rat = p / q
				x = xf + rat

				if x-a < tol2 || b-x < tol2 {
					si := sign(xm-xf) + isZero(xm-xf)
					rat = tol1 * si
				}
			}
		}

		if golden {
			// Golden-section step into the larger segment.
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		si := sign(rat) + isZero(rat)
		x = xf + si*math.Max(math.Abs(rat), tol1)
		fu := f.Evaluate(x)
		num++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || math.Abs(nfc-xf) < machEps {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || math.Abs(fulc-xf) < machEps || math.Abs(fulc-nfc) < machEps {
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + xatol/3
		tol2 = 2 * tol1

		if num >= maxiter {
			success = false
			break
		}
	}

	return &optimization.Result{
		Fun:     fx,
		Nfev:    num,
		Success: success,
		X:       xf,
	}, nil
}
