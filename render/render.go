// Package render draws magnitude-response series as terminal tables or
// standalone HTML charts.
//
// The numeric core hands a renderer a finite, frequency-ordered sequence and
// axis metadata; everything about the visual artifact lives here. Backend
// failures are reported as errors wrapping [ErrUnavailable] and are never
// retried.
package render

import (
	"errors"

	"github.com/cwbudde/algo-freqz/dsp/spectrum"
)

// ErrUnavailable indicates the rendering backend could not produce its artifact.
var ErrUnavailable = errors.New("render: unavailable")

// Axes carries chart labeling metadata.
type Axes struct {
	Title  string
	XLabel string
	YLabel string
}

// DefaultAxes returns the standard labels for a filter magnitude response.
func DefaultAxes() Axes {
	return Axes{
		Title:  "Digital filter frequency response",
		XLabel: "Frequency [rad/sample]",
		YLabel: "Amplitude [dB]",
	}
}

// Renderer consumes a frequency-ordered magnitude series and produces a
// visual artifact.
type Renderer interface {
	Render(series []spectrum.Magnitude, axes Axes) error
}
