// Command freqz computes and renders the frequency response of an FIR filter.
//
// Usage:
//
//	freqz [flags]
//
// Without flags it sweeps the built-in 3000 kHz divide-by-5 decimation
// low-pass on a 512-point grid and prints a table to stdout.
//
// Examples:
//
//	freqz
//	freqz -points 1024
//	freqz -taps coeffs.txt -floor -200
//	freqz -format html -o response.html
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-freqz/dsp/fir"
	"github.com/cwbudde/algo-freqz/dsp/freqz"
	"github.com/cwbudde/algo-freqz/dsp/spectrum"
	"github.com/cwbudde/algo-freqz/render"
)

func main() {
	points := flag.Int("points", 512, "number of frequency-grid samples over [0, pi]")
	floor := flag.Float64("floor", spectrum.DefaultFloorDB, "dB clamp value for response nulls")
	format := flag.String("format", "table", "output format: table or html")
	out := flag.String("o", "", "output file (stdout if empty; required for html)")
	tapsFile := flag.String("taps", "", "coefficient file, one value per line (built-in low-pass if empty)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: freqz [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes the magnitude response of an FIR filter over [0, pi].\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  freqz -points 1024\n")
		fmt.Fprintf(os.Stderr, "  freqz -taps coeffs.txt -floor -200\n")
		fmt.Fprintf(os.Stderr, "  freqz -format html -o response.html\n")
	}
	flag.Parse()

	if *format != "table" && *format != "html" {
		fmt.Fprintf(os.Stderr, "error: unknown format %q (use table or html)\n", *format)
		os.Exit(1)
	}

	taps, err := loadTaps(*tapsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	grid, err := freqz.NewGrid(*points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	samples, err := freqz.Evaluate(taps, grid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	series := spectrum.ToDecibels(samples, spectrum.WithFloorDB(*floor))

	printSummary(os.Stderr, taps, series)

	w, closeFn, err := openOutput(*format, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var r render.Renderer
	if *format == "html" {
		r = render.NewHTMLRenderer(w)
	} else {
		r = render.NewTableRenderer(w)
	}

	if err := r.Render(series, render.DefaultAxes()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := closeFn(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadTaps(path string) (fir.Taps, error) {
	if path == "" {
		return fir.LowPassDiv5(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fir.Taps{}, err
	}
	defer f.Close()

	var coeffs []float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fir.Taps{}, fmt.Errorf("%s:%d: bad coefficient %q", path, line, text)
		}
		coeffs = append(coeffs, v)
	}
	if err := sc.Err(); err != nil {
		return fir.Taps{}, err
	}
	return fir.NewTaps(coeffs)
}

func openOutput(format, path string) (io.Writer, func() error, error) {
	if path == "" {
		if format == "html" {
			return nil, nil, fmt.Errorf("html format requires -o")
		}
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func printSummary(w io.Writer, taps fir.Taps, series []spectrum.Magnitude) {
	sym := "no"
	if taps.IsSymmetric(0) {
		sym = "yes"
	}
	fmt.Fprintf(w, "taps: %d (order %d), linear phase: %s\n", taps.Len(), taps.Len()-1, sym)
	fmt.Fprintf(w, "dc gain: %.4f dB, nyquist gain: %.4f dB\n",
		series[0].DB, series[len(series)-1].DB)
}
