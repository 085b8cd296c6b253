package freqz

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-freqz/dsp/fir"
)

// EvaluateFFT computes the same samples as [Evaluate] using a single forward
// FFT over a zero-padded copy of the taps.
//
// The grid must be a canonical [NewGrid] grid whose implied transform size
// 2*(Len()-1) is a power of two and at least the tap count; bin k of the
// transform then lands exactly on grid point k. Chosen only for performance on
// large grids; the results match Evaluate within floating-point tolerance.
func EvaluateFFT(taps fir.Taps, grid Grid) ([]Sample, error) {
	if taps.Len() == 0 {
		return nil, ErrInvalidCoefficients
	}
	if err := grid.validate(); err != nil {
		return nil, err
	}
	if !grid.isCanonical() {
		return nil, fmt.Errorf("%w: fft path requires a canonical [0, pi] grid", ErrInvalidGrid)
	}

	n := grid.Len()
	size := 2 * (n - 1)
	if size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: fft size %d is not a power of two", ErrInvalidGrid, size)
	}
	if taps.Len() > size {
		return nil, fmt.Errorf("%w: fft size %d is smaller than tap count %d", ErrInvalidGrid, size, taps.Len())
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("freqz: fft plan: %w", err)
	}

	in := make([]complex128, size)
	for k, c := range taps.Coefficients() {
		in[k] = complex(c, 0)
	}
	bins := make([]complex128, size)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("freqz: fft forward: %w", err)
	}

	out := make([]Sample, n)
	for i := range out {
		out[i] = Sample{Omega: grid.omegas[i], H: bins[i]}
	}
	return out, nil
}
