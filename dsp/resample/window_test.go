package resample

import (
	"math"
	"testing"
)

func TestSincZero(t *testing.T) {
	if v := sinc(0); math.Abs(v-1) > 1e-12 {
		t.Fatalf("sinc(0) = %v, want 1", v)
	}
}

func TestSincAtIntegers(t *testing.T) {
	for _, n := range []float64{1, 2, 3, -1, -2} {
		if v := sinc(n); math.Abs(v) > 1e-9 {
			t.Fatalf("sinc(%v) = %v, want ~0", n, v)
		}
	}
}

func TestKaiserBetaBranches(t *testing.T) {
	if v := KaiserBeta(10); v != 0 {
		t.Fatalf("KaiserBeta(10) = %v, want 0", v)
	}
	if v := KaiserBeta(30); v <= 0 {
		t.Fatalf("KaiserBeta(30) = %v, want > 0", v)
	}
	if v := KaiserBeta(60); v <= 0 {
		t.Fatalf("KaiserBeta(60) = %v, want > 0", v)
	}
}

func TestFilterOrderIncreasesWithAttenuation(t *testing.T) {
	n1 := FilterOrder(40, 0.1)
	n2 := FilterOrder(90, 0.1)
	if n2 <= n1 {
		t.Fatalf("FilterOrder(90,.1)=%d should exceed FilterOrder(40,.1)=%d", n2, n1)
	}
}

func TestMitchellNetravaliCatmullRomUnityAtZero(t *testing.T) {
	// B=0, C=0.5 (Catmull-Rom) is interpolating: unity at the origin.
	if v := mitchellNetravali(0, 0, 0.5); math.Abs(v-1) > 1e-9 {
		t.Fatalf("mitchellNetravali(0, 0, 0.5) = %v, want 1", v)
	}
}

func TestMitchellNetravaliDefaultBSplineAtZero(t *testing.T) {
	// The default B=1, C=0 cubic B-spline is approximating, not
	// interpolating: its value at the origin is 2/3, not 1.
	if v := mitchellNetravali(0, defaultCubicB, defaultCubicC); math.Abs(v-2.0/3.0) > 1e-9 {
		t.Fatalf("mitchellNetravali(0, %v, %v) = %v, want 2/3", defaultCubicB, defaultCubicC, v)
	}
}

func TestMitchellNetravaliZeroBeyondSupport(t *testing.T) {
	if v := mitchellNetravali(2.5, defaultCubicB, defaultCubicC); v != 0 {
		t.Fatalf("mitchellNetravali(2.5) = %v, want 0", v)
	}
}

func TestKaiserWindowEndpointsTaperToZero(t *testing.T) {
	n := 33
	beta := 8.0
	if v := kaiserWindow(0, n, beta); v > 0.05 {
		t.Fatalf("kaiserWindow(0,...) = %v, want near 0", v)
	}
	mid := kaiserWindow(n/2, n, beta)
	if math.Abs(mid-1) > 1e-6 {
		t.Fatalf("kaiserWindow(center) = %v, want ~1", mid)
	}
}
