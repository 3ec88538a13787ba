package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-resampler/dsp/buffer"
)

// processPool reuses the scratch output buffer backing Process's single-
// channel convenience path across calls, the same sync.Pool-backed reuse
// the teacher's buffer package offers for any real-time processing loop.
var processPool = buffer.NewPool()

// Resampler performs rational sample-rate conversion using a polyphase FIR,
// dispatching to one of four format-specialized kernels (S16, S32, F32,
// F64) selected at construction time. The zero value is not usable; build
// one with NewRational or NewForRates.
type Resampler struct {
	up   int
	down int

	format   Format
	channels int
	quality  Quality
	profile  Profile
	nTaps    int

	pt   *phaseTable
	impl resamplerImpl

	inputIndex int
	phase      int
	totalIn    int

	maxPhaseError float64

	// inRate/outRate are the nominal rate pair this resampler was last
	// built or updated for. Update's zero-value rate reuses whichever of
	// these it corresponds to, per the original resampler's update
	// contract ("zero rates reuse current rates").
	inRate, outRate float64
	cfg             config
}

// NewRational creates a resampler for ratio up/down.
func NewRational(up, down int, opts ...Option) (*Resampler, error) {
	if up <= 0 || down <= 0 {
		return nil, ErrInvalidRatio
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg = cfg.finalized()

	rUp, rDown, _ := reduceRatio(up, down, cfg.maxPhaseError)

	fc := (0.5 / float64(maxInt(rUp, rDown))) * cfg.cutoffScale
	if fc <= 0 || fc >= 0.5 {
		return nil, fmt.Errorf("%w: invalid cutoff %.6f", ErrInvalidArgument, fc)
	}

	pt := newPhaseTable(rUp, cfg.tapsPerPhase, cfg.interpMode, cfg.window, cfg.kaiserBeta, fc, cfg.cubicB, cfg.cubicC, cfg.filterMode)
	impl := newImpl(cfg.format, cfg.channels, pt)

	return &Resampler{
		up:            rUp,
		down:          rDown,
		format:        cfg.format,
		channels:      cfg.channels,
		quality:       cfg.quality,
		profile:       qualityProfileForLevel(qualityLevelForMode(cfg.quality)),
		nTaps:         cfg.tapsPerPhase,
		pt:            pt,
		impl:          impl,
		maxPhaseError: cfg.maxPhaseError,
		inRate:        float64(down),
		outRate:       float64(up),
		cfg:           cfg,
	}, nil
}

// NewForRates creates a resampler by approximating outRate/inRate as a ratio.
func NewForRates(inRate, outRate float64, opts ...Option) (*Resampler, error) {
	if inRate <= 0 || outRate <= 0 || math.IsNaN(inRate) || math.IsNaN(outRate) {
		return nil, ErrInvalidRate
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg = cfg.finalized()

	up, down := approximateRatio(outRate/inRate, cfg.maxDen)
	r, err := NewRational(up, down, opts...)
	if err != nil {
		return nil, err
	}
	r.inRate, r.outRate = inRate, outRate
	return r, nil
}

func newImpl(f Format, channels int, pt *phaseTable) resamplerImpl {
	switch f {
	case FormatS16:
		return newIntDriver[int16](channels, pt)
	case FormatS32:
		return newIntDriver[int32](channels, pt)
	case FormatF32:
		return newFloatDriver[float32](channels, pt)
	default:
		return newFloatDriver[float64](channels, pt)
	}
}

// Reset clears internal filter state: the phase accumulator and every
// channel's history buffer.
func (r *Resampler) Reset() {
	r.inputIndex = 0
	r.phase = 0
	r.totalIn = 0
	r.impl.reset()
}

// Update performs the original resampler's mid-stream rate-change
// operation: it re-derives reduced in/out rates for the new inRate/outRate
// pair, rescales the phase accumulator continuously so streaming output
// stays phase-continuous across the change, rebuilds the tap table, and
// re-centers (rather than clears) each channel's history. Passing 0 for
// inRate or outRate reuses the resampler's current rate for that side;
// passing no options reuses the last finalized configuration. Channel
// count and sample format cannot change mid-stream and are always carried
// over from the current configuration regardless of any WithChannels or
// WithFormat option passed here. Must not be called concurrently with
// ResampleAny/Process.
func (r *Resampler) Update(inRate, outRate float64, opts ...Option) error {
	if inRate == 0 {
		inRate = r.inRate
	}
	if outRate == 0 {
		outRate = r.outRate
	}
	if inRate <= 0 || outRate <= 0 || math.IsNaN(inRate) || math.IsNaN(outRate) {
		return ErrInvalidRate
	}

	cfg := r.cfg
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.channels = r.channels
	cfg.format = r.format
	cfg = cfg.finalized()

	rawUp, rawDown := approximateRatio(outRate/inRate, cfg.maxDen)
	newUp, newDown, _ := reduceRatio(rawUp, rawDown, cfg.maxPhaseError)

	fc := (0.5 / float64(maxInt(newUp, newDown))) * cfg.cutoffScale
	if fc <= 0 || fc >= 0.5 {
		return fmt.Errorf("%w: invalid cutoff %.6f", ErrInvalidArgument, fc)
	}

	// Rescale the phase accumulator continuously: samp_phase after update
	// equals round(old_phase * new_out_rate / old_out_rate), with out_rate
	// corresponding to this resampler's reduced up (the phase modulus).
	newPhase := int(math.Round(float64(r.phase) * float64(newUp) / float64(r.up)))
	newPhase %= newUp
	if newPhase < 0 {
		newPhase += newUp
	}

	r.pt.Reconfigure(newUp, cfg.tapsPerPhase, cfg.interpMode, cfg.window, cfg.kaiserBeta, fc, cfg.cubicB, cfg.cubicC, cfg.filterMode)
	r.impl.setNTaps(cfg.tapsPerPhase)

	r.up, r.down = newUp, newDown
	r.phase = newPhase
	r.nTaps = cfg.tapsPerPhase
	r.quality = cfg.quality
	r.profile = qualityProfileForLevel(qualityLevelForMode(cfg.quality))
	r.maxPhaseError = cfg.maxPhaseError
	r.inRate, r.outRate = inRate, outRate
	r.cfg = cfg
	return nil
}

// ResampleAny converts one block of input across all channels, appending
// produced frames to out. in and out are per-channel slices indexed by
// channel; each in[ch] holds this call's new input frames as a concrete
// []int16/[]int32/[]float32/[]float64 matching the Resampler's Format, and
// each out[ch] must be a pointer to a slice of the same concrete type
// (*[]int16, etc.) that produced frames are appended to. This mirrors the
// original C API's gpointer in[]/out[] void-pointer arrays while keeping
// every exported type in this package concrete.
func (r *Resampler) ResampleAny(in []any, out []any) int {
	if len(in) == 0 {
		return 0
	}
	produced, newIndex, newPhase, newTotal := r.impl.process(in, out, r.up, r.down, r.inputIndex, r.phase, r.totalIn)
	r.inputIndex, r.phase, r.totalIn = newIndex, newPhase, newTotal
	return produced
}

// Process converts a single-channel float64 input block, returning the
// produced output samples. It is a convenience wrapper over ResampleAny for
// the common FormatF64, one-channel configuration; for other formats or
// channel counts, use ResampleAny directly.
func (r *Resampler) Process(input []float64) []float64 {
	if len(input) == 0 {
		return nil
	}
	scratch := processPool.Get(0)
	defer processPool.Put(scratch)

	scratch.Grow(r.PredictOutputLen(len(input)))
	out := scratch.Samples()[:0]
	r.ResampleAny([]any{input}, []any{&out})

	result := make([]float64, len(out))
	copy(result, out)
	return result
}

// Upsample2x is a convenience wrapper for 2:1 conversion.
func Upsample2x(input []float64, opts ...Option) ([]float64, error) {
	r, err := NewRational(2, 1, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// Downsample2x is a convenience wrapper for 1:2 conversion.
func Downsample2x(input []float64, opts ...Option) ([]float64, error) {
	r, err := NewRational(1, 2, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// Resample converts input using ratio up/down as a one-shot helper.
func Resample(input []float64, up, down int, opts ...Option) ([]float64, error) {
	r, err := NewRational(up, down, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// PredictOutputLen estimates output samples generated for the next call
// given inputLen new input frames per channel.
func (r *Resampler) PredictOutputLen(inputLen int) int {
	return r.impl.predict(inputLen, r.up, r.down, r.inputIndex, r.phase, r.totalIn)
}

// Ratio returns reduced up/down conversion factors.
func (r *Resampler) Ratio() (up, down int) {
	return r.up, r.down
}

// Quality returns the configured quality mode.
func (r *Resampler) Quality() Quality {
	return r.quality
}

// Format returns the configured sample format.
func (r *Resampler) Format() Format {
	return r.format
}

// Channels returns the configured channel count.
func (r *Resampler) Channels() int {
	return r.channels
}

// TapsPerPhase returns the per-phase convolution length.
func (r *Resampler) TapsPerPhase() int {
	return r.nTaps
}

// Taps returns a float64 view of the filter applied to channel's phase 0,
// dequantizing fixed-point formats for inspection. Intended for
// diagnostics (see MeasureFrequencyResponse), not the real-time path.
func (r *Resampler) Taps(channel int) []float64 {
	return r.impl.channelTaps(channel)
}

// OutFrames computes how many output frames the next call would produce
// given inFrames new input frames per channel, accounting for the current
// phase accumulator position and buffered history fill level exactly as
// PredictOutputLen does -- this is in fact the same dry run of the phase
// accumulator (predictCount), named separately to mirror the original
// resampler's get_out_frames. A naive ratio formula (inFrames*up/down)
// ignores samp_index/samp_phase/history state and gives wrong answers
// once any input has been processed or Update has run; this does not.
func (r *Resampler) OutFrames(inFrames int) int {
	return r.impl.predict(inFrames, r.up, r.down, r.inputIndex, r.phase, r.totalIn)
}

// InFrames computes how many additional input frames, from the current
// streaming position, are needed to produce outFrames more output frames.
// It dry-runs the phase accumulator from the current inputIndex/phase to
// the input position of the last of those outFrames outputs and reports
// how many frames past the already-buffered input (totalIn) that position
// requires, mirroring the original resampler's get_in_frames while
// threading the same live state OutFrames does.
func (r *Resampler) InFrames(outFrames int) int {
	if outFrames <= 0 {
		return 0
	}
	i, p := r.inputIndex, r.phase
	for n := 1; n < outFrames; n++ {
		p += r.down
		i += p / r.up
		p %= r.up
	}
	need := i - r.totalIn + 1
	if need < 0 {
		need = 0
	}
	return need
}

// KernelName reports the name of the reference inner-product implementation
// selected for this process (see internal/kernel), e.g. "generic". Intended
// for diagnostics.
func (r *Resampler) KernelName() string {
	return r.impl.kernelName()
}

// MaxLatency returns the maximum number of input frames of latency the
// filter introduces, matching the original resampler's get_max_latency.
func (r *Resampler) MaxLatency() int {
	return r.nTaps / 2
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
