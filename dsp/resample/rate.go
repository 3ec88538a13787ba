package resample

import "math"

// defaultMaxPhaseError is the default bound, as a fraction of one output
// phase step, accepted when reducing a rational ratio by a common factor
// that does not evenly divide both sides. It matches the original
// resampler's default tolerance.
const defaultMaxPhaseError = 0.1

// exactPhaseErrorThreshold selects exact-divisibility mode: below this
// bound, only common factors that divide the phase accumulator exactly are
// accepted, matching the original's effectively-zero tolerance path.
const exactPhaseErrorThreshold = 1e-8

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// approximateRatio finds an up/down pair approximating v within a
// denominator bound maxDen, via the standard continued-fraction
// convergents algorithm.
func approximateRatio(v float64, maxDen int) (num, den int) {
	if maxDen <= 0 {
		maxDen = 4096
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1, 1
	}

	a0 := math.Floor(v)
	p0, q0 := 1.0, 0.0
	p1, q1 := a0, 1.0
	x := v

	for {
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}
		x = 1 / frac
		a := math.Floor(x)
		p2 := a*p1 + p0
		q2 := a*q1 + q0
		if q2 > float64(maxDen) {
			break
		}
		p0, q0 = p1, q1
		p1, q1 = p2, q2
	}

	num = int(math.Round(p1))
	den = int(math.Round(q1))
	if den <= 0 {
		return 1, 1
	}
	g := gcd(num, den)
	return num / g, den / g
}

// reduceRatio looks for the largest divisor f of up (other than 1) such
// that replacing up/down with (up/f)/round(down/f) introduces a relative
// denominator-rounding error no larger than maxPhaseError. Once up and down
// have been reduced by their gcd they are coprime, so no such f can divide
// down exactly too; the further reduction this loop performs is always an
// approximation, bounded by maxPhaseError. When maxPhaseError is below
// exactPhaseErrorThreshold only the initial exact gcd reduction applies,
// matching the gcd-exact behavior the original resampler uses for
// bit-exact rational conversions (e.g. 2:1).
//
// It returns the reduced up, down and the actual phase error incurred.
func reduceRatio(up, down int, maxPhaseError float64) (rUp, rDown int, phaseErr float64) {
	if up <= 0 || down <= 0 {
		return up, down, 0
	}
	g := gcd(up, down)
	up /= g
	down /= g

	if maxPhaseError < exactPhaseErrorThreshold {
		return up, down, 0
	}

	bestUp, bestDown := up, down
	bestErr := 0.0
	for f := up; f >= 2; f-- {
		if up%f != 0 {
			continue
		}
		cand := up / f

		// up and down are already coprime at this point (divided by their
		// gcd above), so no f>1 dividing up can also divide down exactly:
		// reducing up by f only approximates the original ratio. candDown
		// is the nearest integer denominator for that approximation, and
		// errAt is the relative error that rounding introduces -- NOT the
		// up-side phase-grid deviation alone, since accepting a fractional
		// down/f would corrupt the ratio (and a bare down/f can truncate
		// to zero).
		rawDown := float64(down) / float64(f)
		candDown := int(math.Round(rawDown))
		if candDown < 1 {
			continue
		}
		errAt := math.Abs(rawDown-float64(candDown)) / float64(candDown)

		if errAt <= maxPhaseError {
			bestUp, bestDown, bestErr = cand, candDown, errAt
			break
		}
	}
	return bestUp, bestDown, bestErr
}
