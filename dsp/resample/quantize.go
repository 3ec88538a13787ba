package resample

import "math"

// quantizeBitsFor returns the fixed-point precision P for integer sample
// type T: 15 for S16, 31 for S32. Taps are scaled so they sum to exactly
// 2^P-1, one precision per format rather than a single shared constant.
func quantizeBitsFor[T intSample]() int {
	var zero T
	switch any(zero).(type) {
	case int32:
		return 31
	default:
		return 15
	}
}

// quantizeTaps converts a float64 prototype tap set into fixed-point
// integers scaled by 2^bits-1, correcting for rounding-induced DC bias by
// bisecting an offset o in [0,1) added to every scaled tap before flooring
// so that the integer taps sum to exactly 2^bits-1.
//
// This mirrors the original resampler's make_coeff: 32 bisection iterations
// narrow the offset to within 2^-32, and the sum is checked exactly in
// integer arithmetic rather than compared as floats.
func quantizeTaps(taps []float64, bits int) ([]int32, error) {
	if len(taps) == 0 {
		return nil, ErrInvalidArgument
	}

	const iterations = 32
	target := int64(1)<<uint(bits) - 1

	scale := float64(target)

	sumAt := func(offset float64) ([]int32, int64) {
		out := make([]int32, len(taps))
		var sum int64
		for i, t := range taps {
			v := t*scale + offset
			q := int32(math.Floor(v))
			out[i] = q
			sum += int64(q)
		}
		return out, sum
	}

	lo, hi := 0.0, 1.0
	var best []int32
	var bestSum int64
	for iter := 0; iter < iterations; iter++ {
		mid := (lo + hi) / 2
		q, sum := sumAt(mid)
		best, bestSum = q, sum
		if sum == target {
			break
		}
		if sum < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	if bestSum != target {
		return best, ErrInexactQuantization
	}
	return best, nil
}

// dequantize converts fixed-point integer taps back to float64 at the given
// precision by dividing by 2^bits, the same scale dotInt's final shift
// applies, so the result is the gain the integer kernel realizes. Used by diagnostics
// (Resampler.Taps) that want a float view of an integer-format filter.
func dequantize(taps []int32, bits int) []float64 {
	scale := 1.0 / float64(int64(1)<<uint(bits))
	out := make([]float64, len(taps))
	for i, q := range taps {
		out[i] = float64(q) * scale
	}
	return out
}
