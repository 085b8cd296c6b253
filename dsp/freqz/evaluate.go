package freqz

import (
	"errors"
	"math/cmplx"

	"github.com/cwbudde/algo-freqz/dsp/fir"
)

// ErrInvalidCoefficients is returned when the tap sequence is empty.
var ErrInvalidCoefficients = errors.New("freqz: invalid coefficients")

// Sample is the complex frequency response at one grid point.
type Sample struct {
	Omega float64
	H     complex128
}

// Evaluate computes the frequency response of taps at every grid point, in
// grid order, using direct complex summation. All validation happens before
// any computation; invalid input produces no samples.
func Evaluate(taps fir.Taps, grid Grid) ([]Sample, error) {
	if taps.Len() == 0 {
		return nil, ErrInvalidCoefficients
	}
	if err := grid.validate(); err != nil {
		return nil, err
	}

	coeffs := taps.Coefficients()
	out := make([]Sample, len(grid.omegas))
	for i, w := range grid.omegas {
		out[i] = Sample{Omega: w, H: response(coeffs, w)}
	}
	return out, nil
}

// response queries the DTFT of coeffs at a single frequency.
func response(coeffs []float64, omega float64) complex128 {
	var h complex128
	for k, c := range coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}
	return h
}
