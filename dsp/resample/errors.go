package resample

import "errors"

// Sentinel errors describing the taxonomy a Resampler construction or
// processing call can report. Wrap these with fmt.Errorf("...: %w", err)
// at call sites that need additional context; callers should match them
// with errors.Is.
var (
	// ErrInvalidArgument indicates a caller-supplied parameter (rate, ratio,
	// channel count, taps-per-phase, cutoff, phase-error bound) is out of
	// its valid range.
	ErrInvalidArgument = errors.New("resample: invalid argument")

	// ErrOutOfMemory indicates an allocation for taps, phase tables, or
	// per-channel history could not be satisfied.
	ErrOutOfMemory = errors.New("resample: out of memory")

	// ErrInexactQuantization indicates the fixed-point tap quantizer could
	// not drive the DC-bias bisection to an exact 2^P-1 integer tap sum
	// within its iteration budget.
	ErrInexactQuantization = errors.New("resample: inexact tap quantization")

	// ErrInsufficientHistory indicates a channel's history buffer does not
	// yet hold enough frames to produce a requested output sample; this is
	// an internal consistency error, not a caller-triggerable one once a
	// Resampler has been constructed through the exported API.
	ErrInsufficientHistory = errors.New("resample: insufficient history")
)

// ErrInvalidRatio indicates an invalid up/down ratio was supplied.
var ErrInvalidRatio = ErrInvalidArgument

// ErrInvalidRate indicates an invalid input/output sample rate was supplied.
var ErrInvalidRate = ErrInvalidArgument
