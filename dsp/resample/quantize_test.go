package resample

import "testing"

func TestQuantizeTapsExactSum(t *testing.T) {
	taps := []float64{0.1, 0.2, 0.3, 0.25, 0.15}
	for _, bits := range []int{15, 31} {
		q, err := quantizeTaps(taps, bits)
		if err != nil {
			t.Fatalf("bits=%d: quantizeTaps() error = %v", bits, err)
		}
		var sum int64
		for _, v := range q {
			sum += int64(v)
		}
		want := int64(1)<<uint(bits) - 1
		if sum != want {
			t.Fatalf("bits=%d: quantized sum = %d, want %d", bits, sum, want)
		}
	}
}

func TestQuantizeTapsRejectsEmpty(t *testing.T) {
	if _, err := quantizeTaps(nil, 15); err == nil {
		t.Fatal("expected error for empty tap set")
	}
}

func TestDequantizeRoundTrip(t *testing.T) {
	taps := []float64{0.5, -0.25, 0.75}
	for _, bits := range []int{15, 31} {
		q, err := quantizeTaps(taps, bits)
		if err != nil {
			t.Fatalf("bits=%d: quantizeTaps() error = %v", bits, err)
		}
		deq := dequantize(q, bits)
		for i, v := range deq {
			if diff := v - taps[i]; diff > 1e-3 || diff < -1e-3 {
				t.Fatalf("bits=%d: dequantize[%d] = %v, want ~%v", bits, i, v, taps[i])
			}
		}
	}
}

func TestQuantizeBitsForFormats(t *testing.T) {
	if got := quantizeBitsFor[int16](); got != 15 {
		t.Fatalf("quantizeBitsFor[int16]() = %d, want 15", got)
	}
	if got := quantizeBitsFor[int32](); got != 31 {
		t.Fatalf("quantizeBitsFor[int32]() = %d, want 31", got)
	}
}
