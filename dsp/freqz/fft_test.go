package freqz

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-freqz/dsp/fir"
)

func TestEvaluateFFT_MatchesDirect(t *testing.T) {
	taps := fir.LowPassDiv5()
	// 2*(points-1) must be a power of two.
	for _, points := range []int{17, 129, 513} {
		g := mustGrid(t, points)

		direct, err := Evaluate(taps, g)
		if err != nil {
			t.Fatalf("points=%d: Evaluate error: %v", points, err)
		}
		fast, err := EvaluateFFT(taps, g)
		if err != nil {
			t.Fatalf("points=%d: EvaluateFFT error: %v", points, err)
		}

		if len(fast) != len(direct) {
			t.Fatalf("points=%d: length mismatch: %d != %d", points, len(fast), len(direct))
		}
		for i := range fast {
			if fast[i].Omega != direct[i].Omega {
				t.Errorf("points=%d sample %d: omega %v != %v", points, i, fast[i].Omega, direct[i].Omega)
			}
			if cmplx.Abs(fast[i].H-direct[i].H) > tol {
				t.Errorf("points=%d sample %d: fft=%v direct=%v", points, i, fast[i].H, direct[i].H)
			}
		}
	}
}

func TestEvaluateFFT_RejectsNonPowerOfTwoSize(t *testing.T) {
	taps := fir.LowPassDiv5()
	// points=8 implies transform size 14.
	_, err := EvaluateFFT(taps, mustGrid(t, 8))
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestEvaluateFFT_RejectsNonCanonicalGrid(t *testing.T) {
	taps := fir.LowPassDiv5()
	g, err := GridFromOmegas([]float64{0, 1, 2})
	if err != nil {
		t.Fatalf("GridFromOmegas error: %v", err)
	}
	_, err = EvaluateFFT(taps, g)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestEvaluateFFT_RejectsTooManyTaps(t *testing.T) {
	coeffs := make([]float64, 40)
	for i := range coeffs {
		coeffs[i] = 1.0 / 40
	}
	taps := mustTaps(t, coeffs)
	// points=17 implies transform size 32 < 40 taps.
	_, err := EvaluateFFT(taps, mustGrid(t, 17))
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestEvaluateFFT_EmptyTaps(t *testing.T) {
	_, err := EvaluateFFT(fir.Taps{}, mustGrid(t, 17))
	if !errors.Is(err, ErrInvalidCoefficients) {
		t.Fatalf("expected ErrInvalidCoefficients, got %v", err)
	}
}
