package resample

import (
	"math"
	"sync"
)

// maxStoredPhases bounds how many distinct phases an oversampled-prototype
// table stores before runtime interpolation takes over, regardless of how
// large the true polyphase branch count (up) is. This is the mechanism
// that keeps memory bounded for ratios with a very large reduced numerator:
// instead of one exactly-designed filter per output phase, a coarse grid of
// oversample-many reference phases is designed and interpolated between.
const maxStoredPhases = 512

// phaseTable holds the per-output-phase tap sets for a polyphase FIR,
// either fully tabulated (InterpNone) or stored at a coarser resolution and
// interpolated at runtime (InterpLinear, InterpCubic).
//
// Phases are filled lazily on first access, guarded by a mutex and a
// filled bitmap, mirroring the original resampler's deferred "coeffmem"
// tap cache rather than eagerly quantizing every phase up front.
type phaseTable struct {
	up         int // true polyphase branch count (== Resampler.up)
	nTaps      int // per-phase convolution length (the "true" filter shape length)
	mode       InterpMode
	window     Window
	beta       float64
	fc         float64
	cubicB     float64 // WindowCubic shape parameter B (mitchellNetravali)
	cubicC     float64 // WindowCubic shape parameter C (mitchellNetravali)
	filterMode FilterMode
	storedN    int // number of exactly-designed reference phases (<= up)

	mu     sync.Mutex
	filled []bool
	phases [][]float64 // storedN rows, each nTaps taps
}

// storedPhaseCount derives the number of exactly-designed reference phases
// for filterMode fm: FilterFull always tabulates every output phase exactly;
// FilterInterpolated caps at maxStoredPhases whatever the interpolation mode
// (below the cap every phase is stored exactly and nothing is blended);
// FilterAuto (the default) applies the same cap only when an interpolation
// mode (InterpLinear/InterpCubic) is selected, and otherwise stores every
// phase like FilterFull.
func storedPhaseCount(up int, mode InterpMode, fm FilterMode) int {
	switch fm {
	case FilterFull:
		return up
	case FilterInterpolated:
		if up > maxStoredPhases {
			return maxStoredPhases
		}
		return up
	default: // FilterAuto
		if mode != InterpNone && up > maxStoredPhases {
			return maxStoredPhases
		}
		return up
	}
}

func newPhaseTable(up, nTaps int, mode InterpMode, w Window, beta, fc float64, cubicB, cubicC float64, fm FilterMode) *phaseTable {
	storedN := storedPhaseCount(up, mode, fm)
	return &phaseTable{
		up:         up,
		nTaps:      nTaps,
		mode:       mode,
		window:     w,
		beta:       beta,
		fc:         fc,
		cubicB:     cubicB,
		cubicC:     cubicC,
		filterMode: fm,
		storedN:    storedN,
		filled:     make([]bool, storedN),
		phases:     make([][]float64, storedN),
	}
}

// SetNTaps changes the per-phase convolution length and discards every
// cached phase, so the next Taps call re-designs from scratch at the new
// length.
func (pt *phaseTable) SetNTaps(n int) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.nTaps = n
	pt.filled = make([]bool, pt.storedN)
	pt.phases = make([][]float64, pt.storedN)
}

// Reconfigure replaces every design parameter of the table -- the true
// polyphase branch count, per-phase length, window/interpolation scheme,
// and cutoff -- and discards every cached phase. This backs Resampler's
// mid-stream rate change, which rebuilds the whole tap table rather than
// just resizing it.
func (pt *phaseTable) Reconfigure(up, nTaps int, mode InterpMode, w Window, beta, fc, cubicB, cubicC float64, fm FilterMode) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	storedN := storedPhaseCount(up, mode, fm)

	pt.up = up
	pt.nTaps = nTaps
	pt.mode = mode
	pt.window = w
	pt.beta = beta
	pt.fc = fc
	pt.cubicB = cubicB
	pt.cubicC = cubicC
	pt.filterMode = fm
	pt.storedN = storedN
	pt.filled = make([]bool, storedN)
	pt.phases = make([][]float64, storedN)
}

// fillStored designs (and DC-normalizes) the exact tap set for stored-phase
// index s, caching the result. Safe for concurrent use.
func (pt *phaseTable) fillStored(s int) []float64 {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.filled[s] {
		return pt.phases[s]
	}

	taps := make([]float64, pt.nTaps)
	// Stored phase s represents fractional sub-sample offset s/storedN of
	// one input-sample period; each tap k sits k - center - offset away
	// from the filter's symmetric center.
	offset := float64(s) / float64(pt.storedN)
	center := 0.5 * float64(pt.nTaps-1)
	for k := range taps {
		t := float64(k) - center - offset
		switch pt.window {
		case WindowKaiser:
			taps[k] = 2 * pt.fc * sinc(2*pt.fc*t) * kaiserWindow(k, pt.nTaps, pt.beta)
		case WindowBlackmanNuttall:
			taps[k] = 2 * pt.fc * sinc(2*pt.fc*t) * blackmanNuttallWindow(k, pt.nTaps)
		case WindowCubic:
			taps[k] = mitchellNetravali(t, pt.cubicB, pt.cubicC)
		case WindowLinear:
			taps[k] = math.Max(0, 1-math.Abs(t))
		default: // WindowNearest
			if math.Abs(t) < 0.5 {
				taps[k] = 1
			}
		}
	}
	normalizeTapsDC(taps, 1.0)

	pt.filled[s] = true
	pt.phases[s] = taps
	return taps
}

// normalizeTapsDC scales taps in place so they sum to target.
func normalizeTapsDC(taps []float64, target float64) {
	var sum float64
	for _, v := range taps {
		sum += v
	}
	if sum == 0 {
		return
	}
	scale := target / sum
	for i := range taps {
		taps[i] *= scale
	}
}

// Taps returns the nTaps-length filter applied for output phase p in
// [0, up), blending stored reference phases for InterpLinear/InterpCubic.
func (pt *phaseTable) Taps(p int) []float64 {
	if pt.mode == InterpNone || pt.storedN == pt.up {
		return pt.fillStored(p % pt.storedN)
	}

	// Map output phase p onto the coarse stored grid and blend neighbors.
	pos := float64(p) * float64(pt.storedN) / float64(pt.up)
	i0 := int(math.Floor(pos))
	frac := pos - float64(i0)

	switch pt.mode {
	case InterpCubic:
		p0 := pt.fillStored(wrapIndex(i0-1, pt.storedN))
		p1 := pt.fillStored(wrapIndex(i0, pt.storedN))
		p2 := pt.fillStored(wrapIndex(i0+1, pt.storedN))
		p3 := pt.fillStored(wrapIndex(i0+2, pt.storedN))
		return blendCubic(p0, p1, p2, p3, frac)
	default: // InterpLinear
		p0 := pt.fillStored(wrapIndex(i0, pt.storedN))
		p1 := pt.fillStored(wrapIndex(i0+1, pt.storedN))
		return blendLinear(p0, p1, frac)
	}
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func blendLinear(a, b []float64, x float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i]*(1-x) + b[i]*x
	}
	return out
}

func blendCubic(p0, p1, p2, p3 []float64, x float64) []float64 {
	x2 := x * x
	x3 := x2 * x
	// Four-point cubic Lagrange basis over stored phases i0-1..i0+2 (not the
	// Mitchell-Netravali/Catmull-Rom family).
	c0 := -1.0/3.0*x + 1.0/2.0*x2 - 1.0/6.0*x3
	c1 := 1 - x2 + 1.0/2.0*(x3-x)
	c2 := x + 1.0/2.0*(x2-x3)
	c3 := 1.0 / 6.0 * (x3 - x)
	out := make([]float64, len(p0))
	for i := range out {
		out[i] = c0*p0[i] + c1*p1[i] + c2*p2[i] + c3*p3[i]
	}
	return out
}
