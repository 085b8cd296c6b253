// Package freqz evaluates the frequency response of FIR tap sequences.
//
// The response is the discrete-time Fourier transform of the taps sampled on a
// [Grid] of normalized angular frequencies over [0, pi]:
//
//	H(w) = sum_{k=0}^{N-1} h[k] * e^{-jwk}
//
// [Evaluate] queries the transform directly at each grid point, which is the
// right tool when the grid size is not tied to an FFT size. [EvaluateFFT] is a
// behaviorally identical fast path for canonical grids whose implied transform
// size is a power of two.
package freqz
