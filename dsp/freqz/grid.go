package freqz

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned for grids that cannot describe a frequency sweep.
var ErrInvalidGrid = errors.New("freqz: invalid grid")

// Grid is an ordered set of normalized angular frequencies (radians/sample).
// The zero value is empty and rejected by the evaluators.
type Grid struct {
	omegas []float64
}

// NewGrid creates the canonical uniform grid of the given total point count
// over the closed Nyquist interval [0, pi]:
//
//	w_i = pi * i / (points-1), i = 0..points-1
//
// At least 2 points are required so that both endpoints are present.
func NewGrid(points int) (Grid, error) {
	if points < 2 {
		return Grid{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidGrid, points)
	}
	w := make([]float64, points)
	step := math.Pi / float64(points-1)
	for i := range w {
		w[i] = float64(i) * step
	}
	w[points-1] = math.Pi
	return Grid{omegas: w}, nil
}

// GridFromOmegas creates a grid from an explicit frequency slice.
// The frequencies are copied and must be strictly increasing.
func GridFromOmegas(omegas []float64) (Grid, error) {
	if len(omegas) == 0 {
		return Grid{}, fmt.Errorf("%w: empty", ErrInvalidGrid)
	}
	for i := 1; i < len(omegas); i++ {
		if !(omegas[i] > omegas[i-1]) {
			return Grid{}, fmt.Errorf("%w: not strictly increasing at index %d", ErrInvalidGrid, i)
		}
	}
	w := make([]float64, len(omegas))
	copy(w, omegas)
	return Grid{omegas: w}, nil
}

// Len returns the number of grid points.
func (g Grid) Len() int {
	return len(g.omegas)
}

// At returns the frequency at index i.
func (g Grid) At(i int) float64 {
	return g.omegas[i]
}

// Omegas returns a copy of the grid frequencies.
func (g Grid) Omegas() []float64 {
	w := make([]float64, len(g.omegas))
	copy(w, g.omegas)
	return w
}

func (g Grid) validate() error {
	if len(g.omegas) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidGrid)
	}
	for i := 1; i < len(g.omegas); i++ {
		if g.omegas[i] < g.omegas[i-1] {
			return fmt.Errorf("%w: not monotonic at index %d", ErrInvalidGrid, i)
		}
	}
	return nil
}

// isCanonical reports whether the grid matches NewGrid(len) point for point.
func (g Grid) isCanonical() bool {
	n := len(g.omegas)
	if n < 2 {
		return false
	}
	step := math.Pi / float64(n-1)
	for i, w := range g.omegas {
		want := float64(i) * step
		if i == n-1 {
			want = math.Pi
		}
		if math.Abs(w-want) > 1e-12 {
			return false
		}
	}
	return true
}
