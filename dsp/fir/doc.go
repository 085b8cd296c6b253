// Package fir provides FIR tap sequences and a direct-form filter runtime.
//
// A [Taps] value is an immutable, index-significant coefficient sequence. It
// answers structural queries (DC gain, Nyquist gain, symmetry) and single-point
// frequency-response queries. A [Filter] applies a tap sequence to an input
// stream using a circular-buffer delay line; it is suitable for short filters
// (order < ~256).
//
// Coefficient design (windowed-sinc, Parks-McClellan, etc.) is a separate
// concern; the taps are always externally supplied.
package fir
