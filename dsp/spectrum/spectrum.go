package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-freqz/dsp/freqz"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultFloorDB is the clamp value used when no option overrides it.
const DefaultFloorDB = -300.0

// Magnitude is the decibel magnitude of a response at one grid point.
// DB is always finite: exact nulls clamp to the configured floor.
type Magnitude struct {
	Omega float64
	DB    float64
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// ToDecibels converts response samples to dB magnitudes, preserving order.
//
// dB = 20*log10(|H|), clamped so that a numerically zero magnitude (or any
// value below the floor) yields exactly the floor instead of -Inf or NaN. The
// clamp is a defined substitution, not a failure. Magnitude extraction uses
// SIMD-optimized implementations when available; scratch buffers are pooled
// internally, so in steady state this allocates only the output slice.
func ToDecibels(in []freqz.Sample, opts ...Option) []Magnitude {
	if len(in) == 0 {
		return nil
	}
	cfg := applyOptions(opts...)

	re, im, buf := getScratch(len(in))
	for i, s := range in {
		re[i] = real(s.H)
		im[i] = imag(s.H)
	}

	abs := make([]float64, len(in))
	vecmath.Magnitude(abs, re, im)
	putScratch(buf)

	out := make([]Magnitude, len(in))
	for i, s := range in {
		out[i] = Magnitude{Omega: s.Omega, DB: clampDB(abs[i], cfg.floorDB)}
	}
	return out
}

// SampleToDecibels converts a single response sample with the given floor.
func SampleToDecibels(s freqz.Sample, floorDB float64) Magnitude {
	return Magnitude{Omega: s.Omega, DB: clampDB(cmplx.Abs(s.H), floorDB)}
}

func clampDB(mag, floorDB float64) float64 {
	if mag <= 0 {
		return floorDB
	}
	db := 20 * math.Log10(mag)
	if math.IsNaN(db) || db < floorDB {
		return floorDB
	}
	return db
}
