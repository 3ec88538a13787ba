package resample

// Format selects the PCM sample representation processed by a Resampler.
type Format int

const (
	// FormatS16 is signed 16-bit integer PCM.
	FormatS16 Format = iota
	// FormatS32 is signed 32-bit integer PCM.
	FormatS32
	// FormatF32 is 32-bit floating point PCM.
	FormatF32
	// FormatF64 is 64-bit floating point PCM.
	FormatF64
)

// String returns a short name for the format.
func (f Format) String() string {
	switch f {
	case FormatS16:
		return "S16"
	case FormatS32:
		return "S32"
	case FormatF32:
		return "F32"
	case FormatF64:
		return "F64"
	default:
		return "unknown"
	}
}

// Window selects the prototype filter's windowing/interpolation kernel.
type Window int

const (
	// WindowKaiser uses a windowed-sinc prototype shaped by a Kaiser window.
	// This is the highest quality kernel and the default for QualityBest.
	WindowKaiser Window = iota
	// WindowBlackmanNuttall uses a windowed-sinc prototype shaped by a
	// four-term Blackman-Nuttall window. Cheaper to evaluate than Kaiser at
	// a comparable order, slightly less flat passband.
	WindowBlackmanNuttall
	// WindowCubic uses a Mitchell-Netravali cubic interpolation kernel
	// instead of a windowed sinc. Very low order, intended for QualityFast.
	WindowCubic
	// WindowLinear uses linear interpolation between adjacent input frames.
	WindowLinear
	// WindowNearest selects the nearest input frame with no filtering.
	WindowNearest
)

// String returns a short name for the window.
func (w Window) String() string {
	switch w {
	case WindowKaiser:
		return "kaiser"
	case WindowBlackmanNuttall:
		return "blackman-nuttall"
	case WindowCubic:
		return "cubic"
	case WindowLinear:
		return "linear"
	case WindowNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// InterpMode selects how a constructed phase table is evaluated between
// exactly-tabulated phases. NONE means every output phase has its own
// fully designed set of taps; LINEAR and CUBIC evaluate an oversampled
// prototype and interpolate between adjacent stored phases, trading a
// small amount of extra per-sample arithmetic for much less tap memory.
type InterpMode int

const (
	// InterpNone indexes a fully tabulated phase with no runtime blending.
	InterpNone InterpMode = iota
	// InterpLinear blends two adjacent oversampled-prototype phases.
	InterpLinear
	// InterpCubic blends four adjacent oversampled-prototype phases.
	InterpCubic
)

// FilterMode selects whether the phase table exactly designs every output
// phase (FilterFull) or falls back to a coarser grid of maxStoredPhases
// reference phases blended at runtime (FilterInterpolated) once the
// polyphase branch count grows past maxStoredPhases. FilterAuto, the
// default, falls back the same way only when an interpolation mode
// (InterpLinear or InterpCubic) is selected.
type FilterMode int

const (
	// FilterAuto behaves like FilterInterpolated when an interpolation mode
	// is selected and like FilterFull under InterpNone.
	FilterAuto FilterMode = iota
	// FilterFull exactly designs every output phase, regardless of count.
	// Uses more memory for ratios with a large reduced numerator, but avoids
	// any interpolation error between stored phases.
	FilterFull
	// FilterInterpolated caps storage at maxStoredPhases reference phases
	// whatever the interpolation mode, and blends between them at runtime
	// when the reduced branch count exceeds that cap; below the cap every
	// phase is stored exactly and nothing is blended.
	FilterInterpolated
)

// String returns a short name for the filter mode.
func (fm FilterMode) String() string {
	switch fm {
	case FilterFull:
		return "full"
	case FilterInterpolated:
		return "interpolated"
	default:
		return "auto"
	}
}
