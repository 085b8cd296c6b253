package freqz

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-freqz/dsp/fir"
)

const tol = 1e-9

func mustTaps(t *testing.T, coeffs []float64) fir.Taps {
	t.Helper()
	taps, err := fir.NewTaps(coeffs)
	if err != nil {
		t.Fatalf("NewTaps error: %v", err)
	}
	return taps
}

func mustGrid(t *testing.T, points int) Grid {
	t.Helper()
	g, err := NewGrid(points)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	return g
}

func TestEvaluate_GridContract(t *testing.T) {
	taps := fir.LowPassDiv5()
	for _, points := range []int{2, 8, 512} {
		samples, err := Evaluate(taps, mustGrid(t, points))
		if err != nil {
			t.Fatalf("points=%d: Evaluate error: %v", points, err)
		}
		if len(samples) != points {
			t.Fatalf("points=%d: got %d samples", points, len(samples))
		}
		if samples[0].Omega != 0 {
			t.Errorf("first omega: got %v, want 0", samples[0].Omega)
		}
		if samples[len(samples)-1].Omega != math.Pi {
			t.Errorf("last omega: got %v, want pi", samples[len(samples)-1].Omega)
		}
		for i := 1; i < len(samples); i++ {
			if !(samples[i].Omega > samples[i-1].Omega) {
				t.Errorf("omega not strictly ascending at %d", i)
			}
		}
	}
}

func TestEvaluate_DCGain(t *testing.T) {
	// H(0) = sum of taps, purely real.
	for _, coeffs := range [][]float64{
		{0.25, 0.5, 0.25},
		{1, -1},
		fir.LowPassDiv5().Coefficients(),
	} {
		taps := mustTaps(t, coeffs)
		samples, err := Evaluate(taps, mustGrid(t, 8))
		if err != nil {
			t.Fatalf("Evaluate error: %v", err)
		}
		h0 := samples[0].H
		if math.Abs(real(h0)-taps.Sum()) > tol {
			t.Errorf("Re(H(0)): got %.12f, want %.12f", real(h0), taps.Sum())
		}
		if math.Abs(imag(h0)) > tol {
			t.Errorf("Im(H(0)): got %.12f, want 0", imag(h0))
		}
	}
}

func TestEvaluate_NyquistGain(t *testing.T) {
	// H(pi) = alternating sum of taps, purely real.
	for _, coeffs := range [][]float64{
		{0.25, 0.5, 0.25},
		{1, -1},
		fir.LowPassDiv5().Coefficients(),
	} {
		taps := mustTaps(t, coeffs)
		samples, err := Evaluate(taps, mustGrid(t, 8))
		if err != nil {
			t.Fatalf("Evaluate error: %v", err)
		}
		hn := samples[len(samples)-1].H
		if math.Abs(real(hn)-taps.AlternatingSum()) > tol {
			t.Errorf("Re(H(pi)): got %.12f, want %.12f", real(hn), taps.AlternatingSum())
		}
		if math.Abs(imag(hn)) > tol {
			t.Errorf("Im(H(pi)): got %.12f, want 0", imag(hn))
		}
	}
}

func TestEvaluate_ConjugateSymmetry(t *testing.T) {
	// For real taps, H(-w) = conj(H(w)).
	taps := fir.LowPassDiv5()
	coeffs := taps.Coefficients()
	samples, err := Evaluate(taps, mustGrid(t, 33))
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	for _, s := range samples {
		var hNeg complex128
		for k, c := range coeffs {
			hNeg += complex(c, 0) * cmplx.Exp(complex(0, s.Omega*float64(k)))
		}
		if cmplx.Abs(hNeg-cmplx.Conj(s.H)) > tol {
			t.Errorf("omega=%v: H(-w)=%v, conj(H(w))=%v", s.Omega, hNeg, cmplx.Conj(s.H))
		}
	}
}

func TestEvaluate_MatchesPointQuery(t *testing.T) {
	taps := fir.LowPassDiv5()
	samples, err := Evaluate(taps, mustGrid(t, 17))
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	for _, s := range samples {
		want := taps.Response(s.Omega)
		if cmplx.Abs(s.H-want) > tol {
			t.Errorf("omega=%v: got %v, want %v", s.Omega, s.H, want)
		}
	}
}

func TestEvaluate_EmptyTaps(t *testing.T) {
	samples, err := Evaluate(fir.Taps{}, mustGrid(t, 8))
	if !errors.Is(err, ErrInvalidCoefficients) {
		t.Fatalf("expected ErrInvalidCoefficients, got %v", err)
	}
	if samples != nil {
		t.Fatalf("expected no samples, got %d", len(samples))
	}
}

func TestEvaluate_InvalidGrid(t *testing.T) {
	taps := fir.LowPassDiv5()
	samples, err := Evaluate(taps, Grid{})
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
	if samples != nil {
		t.Fatalf("expected no samples, got %d", len(samples))
	}
}

func TestEvaluate_CustomGrid(t *testing.T) {
	taps := mustTaps(t, []float64{0.25, 0.5, 0.25})
	g, err := GridFromOmegas([]float64{0.5, 1.5, 2.5})
	if err != nil {
		t.Fatalf("GridFromOmegas error: %v", err)
	}
	samples, err := Evaluate(taps, g)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	for i, s := range samples {
		if s.Omega != g.At(i) {
			t.Errorf("sample %d: omega %v, want %v", i, s.Omega, g.At(i))
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	taps := fir.LowPassDiv5()
	g := mustGrid(t, 64)
	a, err := Evaluate(taps, g)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	b, err := Evaluate(taps, g)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
}
