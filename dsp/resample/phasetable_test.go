package resample

import (
	"math"
	"testing"
)

func TestPhaseTableFullyTabulatedSumsToUnity(t *testing.T) {
	pt := newPhaseTable(4, 16, InterpNone, WindowKaiser, 7.5, 0.2, defaultCubicB, defaultCubicC, FilterAuto)
	for p := 0; p < 4; p++ {
		taps := pt.Taps(p)
		var sum float64
		for _, v := range taps {
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("phase %d sum = %v, want 1", p, sum)
		}
	}
}

func TestPhaseTableCachesRepeatedAccess(t *testing.T) {
	pt := newPhaseTable(4, 16, InterpNone, WindowKaiser, 7.5, 0.2, defaultCubicB, defaultCubicC, FilterAuto)
	a := pt.Taps(1)
	b := pt.Taps(1)
	if &a[0] != &b[0] {
		t.Fatal("expected cached phase slice to be reused")
	}
}

func TestPhaseTableInterpolatedModeBoundedStorage(t *testing.T) {
	pt := newPhaseTable(100000, 16, InterpLinear, WindowKaiser, 7.5, 0.2, defaultCubicB, defaultCubicC, FilterAuto)
	if pt.storedN > maxStoredPhases {
		t.Fatalf("storedN = %d, want <= %d", pt.storedN, maxStoredPhases)
	}
	taps := pt.Taps(50000)
	if len(taps) != 16 {
		t.Fatalf("len(taps) = %d, want 16", len(taps))
	}
}

func TestPhaseTableFilterFullIgnoresMaxStoredPhases(t *testing.T) {
	pt := newPhaseTable(100000, 16, InterpLinear, WindowKaiser, 7.5, 0.2, defaultCubicB, defaultCubicC, FilterFull)
	if pt.storedN != 100000 {
		t.Fatalf("FilterFull storedN = %d, want 100000 (uncapped)", pt.storedN)
	}
}

func TestPhaseTableFilterInterpolatedBelowCapUnaffected(t *testing.T) {
	pt := newPhaseTable(8, 16, InterpNone, WindowKaiser, 7.5, 0.2, defaultCubicB, defaultCubicC, FilterInterpolated)
	if pt.storedN != 8 {
		t.Fatalf("FilterInterpolated storedN = %d, want 8 (below cap, unaffected)", pt.storedN)
	}
}

func TestPhaseTableReconfigureResetsCache(t *testing.T) {
	pt := newPhaseTable(4, 16, InterpNone, WindowKaiser, 7.5, 0.2, defaultCubicB, defaultCubicC, FilterAuto)
	_ = pt.Taps(0)
	pt.Reconfigure(8, 32, InterpLinear, WindowCubic, 0, 0.15, 0, 0.5, FilterAuto)
	if pt.up != 8 || pt.nTaps != 32 || pt.window != WindowCubic {
		t.Fatalf("Reconfigure did not update fields: up=%d nTaps=%d window=%v", pt.up, pt.nTaps, pt.window)
	}
	taps := pt.Taps(0)
	if len(taps) != 32 {
		t.Fatalf("len(taps) after Reconfigure = %d, want 32", len(taps))
	}
}

func TestWrapIndex(t *testing.T) {
	if wrapIndex(-1, 4) != 3 {
		t.Fatalf("wrapIndex(-1,4) = %d, want 3", wrapIndex(-1, 4))
	}
	if wrapIndex(5, 4) != 1 {
		t.Fatalf("wrapIndex(5,4) = %d, want 1", wrapIndex(5, 4))
	}
}
