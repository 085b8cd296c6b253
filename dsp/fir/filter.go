package fir

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
type Filter struct {
	taps  Taps
	delay []float64
	pos   int
}

// NewFilter creates a runtime filter for the given tap sequence.
func NewFilter(taps Taps) *Filter {
	return &Filter{
		taps:  taps,
		delay: make([]float64, taps.Len()),
	}
}

// ProcessSample filters one input sample using direct convolution
// with a circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	f.delay[f.pos] = x
	var y float64
	n := f.taps.Len()
	p := f.pos
	for k := range n {
		y += f.taps.coeffs[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	for i := range f.delay {
		f.delay[i] = 0
	}
	f.pos = 0
}

// Order returns the filter order (tap count - 1).
func (f *Filter) Order() int {
	return f.taps.Len() - 1
}

// Taps returns the filter's tap sequence.
func (f *Filter) Taps() Taps {
	return f.taps
}
