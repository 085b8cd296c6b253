package fir

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrEmptyTaps is returned when a tap sequence has no coefficients.
var ErrEmptyTaps = errors.New("fir: empty tap sequence")

// Taps is an immutable FIR coefficient sequence. Index k weights the input
// delayed by k samples. The zero value is empty and invalid.
type Taps struct {
	coeffs []float64
}

// NewTaps creates a tap sequence from the given coefficients.
// The coefficients are copied. At least one coefficient is required.
func NewTaps(coeffs []float64) (Taps, error) {
	if len(coeffs) == 0 {
		return Taps{}, ErrEmptyTaps
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Taps{coeffs: c}, nil
}

// Len returns the number of taps.
func (t Taps) Len() int {
	return len(t.coeffs)
}

// At returns the coefficient at delay index k.
func (t Taps) At(k int) float64 {
	return t.coeffs[k]
}

// Coefficients returns a copy of the coefficient sequence.
func (t Taps) Coefficients() []float64 {
	c := make([]float64, len(t.coeffs))
	copy(c, t.coeffs)
	return c
}

// Sum returns the sum of all taps, the filter's DC gain H(0).
func (t Taps) Sum() float64 {
	var s float64
	for _, c := range t.coeffs {
		s += c
	}
	return s
}

// AlternatingSum returns sum((-1)^k * taps[k]), the filter's Nyquist gain H(pi).
func (t Taps) AlternatingSum() float64 {
	var s float64
	for k, c := range t.coeffs {
		if k%2 == 0 {
			s += c
		} else {
			s -= c
		}
	}
	return s
}

// IsSymmetric reports whether taps[k] == taps[N-1-k] for all k within tol.
// A symmetric tap sequence has linear phase.
func (t Taps) IsSymmetric(tol float64) bool {
	n := len(t.coeffs)
	for k := 0; k < n/2; k++ {
		if math.Abs(t.coeffs[k]-t.coeffs[n-1-k]) > tol {
			return false
		}
	}
	return true
}

// Response computes the complex frequency response H(e^{jw}) at the given
// normalized angular frequency (radians/sample).
func (t Taps) Response(omega float64) complex128 {
	var h complex128
	for k, c := range t.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given normalized
// angular frequency. The result is -Inf at an exact null; see dsp/spectrum
// for floor-clamped conversion of full response sweeps.
func (t Taps) MagnitudeDB(omega float64) float64 {
	return 20 * math.Log10(cmplx.Abs(t.Response(omega)))
}
