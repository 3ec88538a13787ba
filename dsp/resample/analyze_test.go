package resample

import "testing"

func TestMeasureFrequencyResponseRejectsEmpty(t *testing.T) {
	if _, _, err := MeasureFrequencyResponse(nil, 64); err == nil {
		t.Fatal("expected error for empty tap set")
	}
}

func TestMeasureFrequencyResponseRejectsSmallFFT(t *testing.T) {
	taps := make([]float64, 32)
	if _, _, err := MeasureFrequencyResponse(taps, 16); err == nil {
		t.Fatal("expected error for fftSize smaller than taps")
	}
}

func TestMeasureFrequencyResponseDCGain(t *testing.T) {
	taps := []float64{0.25, 0.25, 0.25, 0.25}
	freqs, magDB, err := MeasureFrequencyResponse(taps, 64)
	if err != nil {
		t.Fatalf("MeasureFrequencyResponse() error = %v", err)
	}
	if len(freqs) != len(magDB) || len(freqs) != 33 {
		t.Fatalf("unexpected output length %d", len(freqs))
	}
	if magDB[0] > 1 {
		t.Fatalf("expected near-unity DC gain in dB, got %.2f", magDB[0])
	}
}
