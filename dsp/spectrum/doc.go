// Package spectrum converts complex frequency-response samples to decibel
// magnitudes.
//
// Conversion clamps to a configurable floor instead of letting log10(0)
// propagate, so the output sequence is always finite and safe to hand to a
// rendering backend.
package spectrum
