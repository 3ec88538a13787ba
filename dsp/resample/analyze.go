package resample

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-resampler/dsp/core"
)

// MeasureFrequencyResponse zero-pads taps to fftSize and returns the
// resulting fftSize/2+1 frequency bins (normalized to [0, 0.5], one cycle
// per input sample) alongside each bin's magnitude in dB. It lets a caller
// verify a constructed Resampler's actual passband ripple and stopband
// attenuation against the targets implied by its configured Quality.
func MeasureFrequencyResponse(taps []float64, fftSize int) (freqs, magDB []float64, err error) {
	if len(taps) == 0 {
		return nil, nil, fmt.Errorf("%w: empty tap set", ErrInvalidArgument)
	}
	if fftSize < len(taps) {
		return nil, nil, fmt.Errorf("%w: fftSize %d smaller than %d taps", ErrInvalidArgument, fftSize, len(taps))
	}

	in := make([]complex128, fftSize)
	for i, t := range taps {
		in[i] = complex(t, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("resample: building fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("resample: forward fft: %w", err)
	}

	n := fftSize/2 + 1
	freqs = make([]float64, n)
	magDB = make([]float64, n)
	for i := 0; i < n; i++ {
		freqs[i] = float64(i) / float64(fftSize)
		mag := math.Hypot(real(out[i]), imag(out[i]))
		if mag <= 0 {
			magDB[i] = -300
			continue
		}
		magDB[i] = core.Clamp(core.LinearToDB(mag), -300, 300)
	}
	return freqs, magDB, nil
}
