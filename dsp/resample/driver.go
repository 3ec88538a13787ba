package resample

import (
	"sync"

	"github.com/cwbudde/algo-resampler/internal/kernel"
)

// resamplerImpl is the format-specialized engine behind the public,
// non-generic Resampler. Exactly one of the four concrete instantiations
// (intDriver[int16], intDriver[int32], floatDriver[float32],
// floatDriver[float64]) backs a given Resampler, selected at construction
// time by its configured Format. Boxing through []any at this boundary
// mirrors the original C API's gpointer in[]/out[] void-pointer arrays
// while keeping every exported type in this package concrete.
type resamplerImpl interface {
	reset()
	setNTaps(nTaps int)
	process(in []any, out []any, up, down, inputIndex, phase, totalIn int) (produced int, newIndex, newPhase, newTotalIn int)
	predict(inputLen, up, down, inputIndex, phase, totalIn int) int
	channelTaps(channel int) []float64
	kernelName() string
}

func predictCount(inputLen, up, down, inputIndex, phase, totalIn int) int {
	if inputLen <= 0 {
		return 0
	}
	lastAvail := totalIn + inputLen - 1
	i, p, count := inputIndex, phase, 0
	for i <= lastAvail {
		count++
		p += down
		i += p / up
		p %= up
	}
	return count
}

// intDriver backs the S16/S32 formats with fixed-point quantized taps and
// an integer inner-product kernel.
type intDriver[T intSample] struct {
	channels   []*history[T]
	pt         *phaseTable
	kernelImpl string

	mu    sync.Mutex
	quant map[int][]int32
}

func newIntDriver[T intSample](n int, pt *phaseTable) *intDriver[T] {
	d := &intDriver[T]{pt: pt, quant: make(map[int][]int32), kernelImpl: kernel.Selected().Name}
	d.channels = make([]*history[T], n)
	for i := range d.channels {
		d.channels[i] = newHistory[T](pt.nTaps)
	}
	return d
}

func (d *intDriver[T]) kernelName() string {
	return d.kernelImpl
}

func (d *intDriver[T]) reset() {
	for _, h := range d.channels {
		h.Reset()
	}
}

func (d *intDriver[T]) setNTaps(n int) {
	for _, h := range d.channels {
		h.Update(n)
	}
	d.pt.SetNTaps(n)
	d.mu.Lock()
	d.quant = make(map[int][]int32)
	d.mu.Unlock()
}

func (d *intDriver[T]) tapsFor(phase int) []int32 {
	d.mu.Lock()
	if q, ok := d.quant[phase]; ok {
		d.mu.Unlock()
		return q
	}
	d.mu.Unlock()

	shaped := d.pt.Taps(phase)
	// quantizeTaps always returns its last bisection attempt even when
	// it cannot hit an exact integer sum; an imperfect DC trim is a better
	// fallback than a cache miss on every sample.
	q, _ := quantizeTaps(shaped, quantizeBitsFor[T]())
	d.mu.Lock()
	d.quant[phase] = q
	d.mu.Unlock()
	return q
}

func (d *intDriver[T]) channelTaps(channel int) []float64 {
	if channel < 0 || channel >= len(d.channels) {
		return nil
	}
	return dequantize(d.tapsFor(0), quantizeBitsFor[T]())
}

func (d *intDriver[T]) predict(inputLen, up, down, inputIndex, phase, totalIn int) int {
	return predictCount(inputLen, up, down, inputIndex, phase, totalIn)
}

func (d *intDriver[T]) process(in, out []any, up, down, inputIndex, phase, totalIn int) (int, int, int, int) {
	nCh := len(d.channels)
	works := make([][]T, nCh)
	for ch := 0; ch < nCh; ch++ {
		input, _ := in[ch].([]T)
		hist := d.channels[ch].Frames()
		work := make([]T, len(hist)+len(input))
		copy(work, hist)
		copy(work[len(hist):], input)
		works[ch] = work
	}

	baseIndex := totalIn - d.channels[0].nTaps
	lastAvail := totalIn + inputLenOf(in) - 1

	outs := make([][]T, nCh)
	i, p := inputIndex, phase
	for i <= lastAvail {
		taps := d.tapsFor(p)
		for ch := 0; ch < nCh; ch++ {
			frames := works[ch]
			end := i - baseIndex + 1
			start := end - len(taps)
			var window []T
			switch {
			case start < 0 && end <= len(frames):
				pad := make([]T, len(taps))
				copy(pad[-start:], frames[:end])
				window = pad
			case start >= 0 && end <= len(frames):
				window = frames[start:end]
			default:
				window = make([]T, len(taps))
			}
			outs[ch] = append(outs[ch], dotInt(taps, window))
		}
		p += down
		i += p / up
		p %= up
	}

	for ch := 0; ch < nCh; ch++ {
		if o, ok := out[ch].(*[]T); ok {
			*o = append(*o, outs[ch]...)
		}
		d.channels[ch].Push(mustSlice[T](in[ch]))
	}

	produced := 0
	if nCh > 0 {
		produced = len(outs[0])
	}
	return produced, i, p, totalIn + inputLenOf(in)
}

// floatDriver backs the F32/F64 formats with float taps and a plain
// accumulate kernel.
type floatDriver[T floatSample] struct {
	channels   []*history[T]
	pt         *phaseTable
	kernelImpl string
}

func newFloatDriver[T floatSample](n int, pt *phaseTable) *floatDriver[T] {
	d := &floatDriver[T]{pt: pt, kernelImpl: kernel.Selected().Name}
	d.channels = make([]*history[T], n)
	for i := range d.channels {
		d.channels[i] = newHistory[T](pt.nTaps)
	}
	return d
}

func (d *floatDriver[T]) kernelName() string {
	return d.kernelImpl
}

func (d *floatDriver[T]) reset() {
	for _, h := range d.channels {
		h.Reset()
	}
}

func (d *floatDriver[T]) setNTaps(n int) {
	for _, h := range d.channels {
		h.Update(n)
	}
	d.pt.SetNTaps(n)
}

func (d *floatDriver[T]) channelTaps(channel int) []float64 {
	if channel < 0 || channel >= len(d.channels) {
		return nil
	}
	return d.pt.Taps(0)
}

func (d *floatDriver[T]) predict(inputLen, up, down, inputIndex, phase, totalIn int) int {
	return predictCount(inputLen, up, down, inputIndex, phase, totalIn)
}

func (d *floatDriver[T]) process(in, out []any, up, down, inputIndex, phase, totalIn int) (int, int, int, int) {
	nCh := len(d.channels)
	works := make([][]T, nCh)
	for ch := 0; ch < nCh; ch++ {
		input, _ := in[ch].([]T)
		hist := d.channels[ch].Frames()
		work := make([]T, len(hist)+len(input))
		copy(work, hist)
		copy(work[len(hist):], input)
		works[ch] = work
	}

	baseIndex := totalIn - d.channels[0].nTaps
	lastAvail := totalIn + inputLenOf(in) - 1

	outs := make([][]T, nCh)
	i, p := inputIndex, phase
	for i <= lastAvail {
		taps := d.pt.Taps(p)
		for ch := 0; ch < nCh; ch++ {
			frames := works[ch]
			end := i - baseIndex + 1
			start := end - len(taps)
			var window []T
			switch {
			case start < 0 && end <= len(frames):
				pad := make([]T, len(taps))
				copy(pad[-start:], frames[:end])
				window = pad
			case start >= 0 && end <= len(frames):
				window = frames[start:end]
			default:
				window = make([]T, len(taps))
			}
			outs[ch] = append(outs[ch], dotFloat(taps, window))
		}
		p += down
		i += p / up
		p %= up
	}

	for ch := 0; ch < nCh; ch++ {
		if o, ok := out[ch].(*[]T); ok {
			*o = append(*o, outs[ch]...)
		}
		d.channels[ch].Push(mustSlice[T](in[ch]))
	}

	produced := 0
	if nCh > 0 {
		produced = len(outs[0])
	}
	return produced, i, p, totalIn + inputLenOf(in)
}

func inputLenOf(in []any) int {
	if len(in) == 0 {
		return 0
	}
	return anyLen(in[0])
}

func anyLen(v any) int {
	switch s := v.(type) {
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	default:
		return 0
	}
}

func mustSlice[T Sample](v any) []T {
	s, _ := v.([]T)
	return s
}
