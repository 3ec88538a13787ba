package resample

import "math"

// clampRange returns the representable [min, max] for an integer sample
// type T, used to saturate the kernel's output.
func clampRange[T intSample]() (lo, hi int64) {
	var zero T
	switch any(zero).(type) {
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt32, math.MaxInt32
	}
}

// dotInt evaluates the fixed-point inner product of quantized taps against
// a channel's integer history, using a double-width int64 accumulator,
// round-to-nearest on T's fixed-point fractional scale (15 bits for S16,
// 31 bits for S32, via quantizeBitsFor), and saturation to T's
// representable range. This is the scalar reference kernel for the
// S16/S32 formats.
func dotInt[T intSample](taps []int32, frames []T) T {
	var acc int64
	n := len(taps)
	if len(frames) < n {
		n = len(frames)
	}
	for k := 0; k < n; k++ {
		acc += int64(taps[k]) * int64(frames[len(frames)-n+k])
	}

	bits := quantizeBitsFor[T]()
	half := int64(1) << uint(bits-1)
	acc = (acc + half) >> uint(bits)

	lo, hi := clampRange[T]()
	if acc < lo {
		acc = lo
	}
	if acc > hi {
		acc = hi
	}
	return T(acc)
}

// dotFloat evaluates the inner product of float taps against a channel's
// floating point history with a plain accumulate; this is the scalar
// reference kernel for the F32/F64 formats. No saturation is applied: the
// caller's filter design keeps passband gain at unity, and clipping
// floating point audio is the host's decision, not this package's.
func dotFloat[T floatSample](taps []float64, frames []T) T {
	var acc float64
	n := len(taps)
	if len(frames) < n {
		n = len(frames)
	}
	for k := 0; k < n; k++ {
		acc += taps[k] * float64(frames[len(frames)-n+k])
	}
	return T(acc)
}
