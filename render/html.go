package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/cwbudde/algo-freqz/dsp/spectrum"
)

// HTMLRenderer writes the series as a standalone HTML page with an inline
// SVG line chart.
type HTMLRenderer struct {
	W io.Writer
}

// NewHTMLRenderer creates an HTML renderer writing to w.
func NewHTMLRenderer(w io.Writer) *HTMLRenderer {
	return &HTMLRenderer{W: w}
}

const (
	plotWidth    = 720
	plotHeight   = 480
	marginLeft   = 70
	marginRight  = 20
	marginTop    = 50
	marginBottom = 60
	tickCount    = 5
)

type plotTick struct {
	Pos   float64
	Label string
}

type plotPage struct {
	Title    string
	XLabel   string
	YLabel   string
	Width    int
	Height   int
	Left     int
	Right    int
	Top      int
	Bottom   int
	MidX     int
	MidY     int
	Polyline string
	XTicks   []plotTick
	YTicks   []plotTick
}

var plotTemplate = template.Must(template.New("plot").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; background: #fff; }
svg { display: block; margin: 1em auto; }
.axis { stroke: #000; stroke-width: 1; }
.grid { stroke: #ddd; stroke-width: 1; }
.trace { stroke: #1f4fbf; stroke-width: 1.5; fill: none; }
.label { font-size: 13px; fill: #000; }
.tick { font-size: 11px; fill: #333; }
</style>
</head>
<body>
<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<text class="label" x="{{.MidX}}" y="20" text-anchor="middle">{{.Title}}</text>
{{range .YTicks}}<line class="grid" x1="{{$.Left}}" y1="{{.Pos}}" x2="{{$.Right}}" y2="{{.Pos}}"/>
<text class="tick" x="{{$.Left}}" y="{{.Pos}}" dx="-6" dy="4" text-anchor="end">{{.Label}}</text>
{{end}}{{range .XTicks}}<line class="grid" x1="{{.Pos}}" y1="{{$.Top}}" x2="{{.Pos}}" y2="{{$.Bottom}}"/>
<text class="tick" x="{{.Pos}}" y="{{$.Bottom}}" dy="16" text-anchor="middle">{{.Label}}</text>
{{end}}<line class="axis" x1="{{.Left}}" y1="{{.Top}}" x2="{{.Left}}" y2="{{.Bottom}}"/>
<line class="axis" x1="{{.Left}}" y1="{{.Bottom}}" x2="{{.Right}}" y2="{{.Bottom}}"/>
<polyline class="trace" points="{{.Polyline}}"/>
<text class="label" x="{{.MidX}}" y="{{.Height}}" dy="-8" text-anchor="middle">{{.XLabel}}</text>
<text class="label" x="16" y="{{.MidY}}" text-anchor="middle" transform="rotate(-90 16 {{.MidY}})">{{.YLabel}}</text>
</svg>
</body>
</html>
`))

// Render writes the chart page. The series must be non-empty; values are
// plotted in series order.
func (r *HTMLRenderer) Render(series []spectrum.Magnitude, axes Axes) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: empty series", ErrUnavailable)
	}

	page := buildPlotPage(series, axes)
	if err := plotTemplate.Execute(r.W, page); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func buildPlotPage(series []spectrum.Magnitude, axes Axes) plotPage {
	xMin, xMax := series[0].Omega, series[len(series)-1].Omega
	yMin, yMax := series[0].DB, series[0].DB
	for _, m := range series {
		if m.DB < yMin {
			yMin = m.DB
		}
		if m.DB > yMax {
			yMax = m.DB
		}
	}
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	// Pad the vertical range so the trace does not touch the frame.
	pad := (yMax - yMin) * 0.05
	yMin -= pad
	yMax += pad

	left := float64(marginLeft)
	right := float64(plotWidth - marginRight)
	top := float64(marginTop)
	bottom := float64(plotHeight - marginBottom)

	toX := func(w float64) float64 {
		return left + (w-xMin)/(xMax-xMin)*(right-left)
	}
	toY := func(db float64) float64 {
		return bottom - (db-yMin)/(yMax-yMin)*(bottom-top)
	}

	var sb strings.Builder
	for i, m := range series {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", toX(m.Omega), toY(m.DB))
	}

	xTicks := make([]plotTick, tickCount)
	for i := range xTicks {
		v := xMin + (xMax-xMin)*float64(i)/float64(tickCount-1)
		xTicks[i] = plotTick{Pos: toX(v), Label: fmt.Sprintf("%.2f", v)}
	}
	yTicks := make([]plotTick, tickCount)
	for i := range yTicks {
		v := yMin + (yMax-yMin)*float64(i)/float64(tickCount-1)
		yTicks[i] = plotTick{Pos: toY(v), Label: fmt.Sprintf("%.1f", v)}
	}

	return plotPage{
		Title:    axes.Title,
		XLabel:   axes.XLabel,
		YLabel:   axes.YLabel,
		Width:    plotWidth,
		Height:   plotHeight,
		Left:     marginLeft,
		Right:    plotWidth - marginRight,
		Top:      marginTop,
		Bottom:   plotHeight - marginBottom,
		MidX:     (marginLeft + plotWidth - marginRight) / 2,
		MidY:     (marginTop + plotHeight - marginBottom) / 2,
		Polyline: sb.String(),
		XTicks:   xTicks,
		YTicks:   yTicks,
	}
}
