package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-freqz/dsp/spectrum"
)

// TableRenderer writes the series as an aligned two-column text table.
type TableRenderer struct {
	W io.Writer
}

// NewTableRenderer creates a table renderer writing to w.
func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w}
}

// Render writes one row per sample in series order.
func (r *TableRenderer) Render(series []spectrum.Magnitude, axes Axes) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: empty series", ErrUnavailable)
	}

	tw := tabwriter.NewWriter(r.W, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\t%s\n", axes.XLabel, axes.YLabel); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	for _, m := range series {
		if _, err := fmt.Fprintf(tw, "%.6f\t%.2f\n", m.Omega, m.DB); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
