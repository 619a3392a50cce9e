// Command firinfo applies FIR filtering operations to a synthetic complex
// tone and prints the resulting sequence properties.
//
// Usage:
//
//	firinfo [flags] [operation ...]
//
// Without arguments it runs all operations.
//
// Examples:
//
//	firinfo convolve
//	firinfo -taps 63 -len 4096 decimate resample
//	firinfo -kernel boxcar -up 3 -down 2 -trim resample
//	firinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fir/dsp/buffer"
	"github.com/cwbudde/algo-fir/dsp/fir"
	"github.com/cwbudde/algo-fir/dsp/stats"
)

type opEntry struct {
	name  string
	apply func(f *fir.Filter[complex128], data *buffer.Buffer[complex128], up, down int, trim bool) error
}

var registry = []opEntry{
	{"convolve", func(f *fir.Filter[complex128], data *buffer.Buffer[complex128], _, _ int, trim bool) error {
		return f.Convolve(data, trim)
	}},
	{"decimate", func(f *fir.Filter[complex128], data *buffer.Buffer[complex128], _, down int, trim bool) error {
		return f.Decimate(data, down, trim)
	}},
	{"interpolate", func(f *fir.Filter[complex128], data *buffer.Buffer[complex128], up, _ int, trim bool) error {
		return f.Interpolate(data, up, trim)
	}},
	{"resample", func(f *fir.Filter[complex128], data *buffer.Buffer[complex128], up, down int, trim bool) error {
		return f.Resample(data, up, down, trim)
	}},
}

func main() {
	kernelName := flag.String("kernel", "lowpass", "kernel type: lowpass, boxcar, identity")
	taps := flag.Int("taps", 31, "kernel length in coefficients")
	length := flag.Int("len", 1024, "input sequence length in samples")
	up := flag.Int("up", 2, "interpolation rate for interpolate/resample")
	down := flag.Int("down", 3, "decimation rate for decimate/resample")
	freq := flag.Float64("freq", 0.05, "tone frequency in cycles per sample")
	cutoff := flag.Float64("cutoff", 0.25, "lowpass cutoff in cycles per sample")
	trim := flag.Bool("trim", false, "trim transient tails (preserve sample alignment)")
	list := flag.Bool("list", false, "list available operations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firinfo [flags] [operation ...]\n\n")
		fmt.Fprintf(os.Stderr, "Applies FIR filtering operations to a synthetic complex tone.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs all operations.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firinfo convolve decimate\n")
		fmt.Fprintf(os.Stderr, "  firinfo -taps 63 -len 4096 -trim resample\n")
		fmt.Fprintf(os.Stderr, "  firinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching operations\n")
		os.Exit(1)
	}

	kernel, err := buildKernel(*kernelName, *taps, *cutoff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	f, err := fir.New[complex128](kernel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printKernelStats(kernel)
	fmt.Println()
	printAnalysis(entries, f, *length, *up, *down, *freq, *trim)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []opEntry {
	byName := make(map[string]opEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []opEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown operation %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func buildKernel(name string, n int, cutoff float64) ([]float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowpass":
		return lowpassKernel(n, cutoff), nil
	case "boxcar":
		taps := make([]float64, n)
		for i := range taps {
			taps[i] = 1 / float64(n)
		}
		return taps, nil
	case "identity":
		return []float64{1}, nil
	default:
		return nil, fmt.Errorf("unknown kernel %q (want lowpass, boxcar or identity)", name)
	}
}

// lowpassKernel builds a Hann-windowed sinc lowpass with the given cutoff
// in cycles per sample.
func lowpassKernel(n int, cutoff float64) []float64 {
	taps := make([]float64, n)
	mid := float64(n-1) / 2

	var sum float64
	for i := range taps {
		x := float64(i) - mid
		s := 2 * cutoff
		if x != 0 {
			s = math.Sin(2*math.Pi*cutoff*x) / (math.Pi * x)
		}
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		if n == 1 {
			w = 1
		}
		taps[i] = s * w
		sum += taps[i]
	}

	// Normalize to unit DC gain.
	if sum != 0 {
		for i := range taps {
			taps[i] /= sum
		}
	}
	return taps
}

// tone generates a unit complex exponential at the given frequency.
func tone(n int, freq float64) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		phase := 2 * math.Pi * freq * float64(i)
		out[i] = complex(math.Cos(phase), math.Sin(phase))
	}
	return out
}

func printKernelStats(kernel []float64) {
	max, _ := stats.Max(kernel)
	min, _ := stats.Min(kernel)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel taps\tMean\tMedian\tStdDev\tMax\tMin\n")
	fmt.Fprintf(tw, "-----------\t----\t------\t------\t---\t---\n")
	fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
		len(kernel),
		stats.Mean(kernel),
		stats.Median(kernel),
		stats.StdDev(kernel),
		max,
		min,
	)
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printAnalysis(entries []opEntry, f *fir.Filter[complex128], length, up, down int, freq float64, trim bool) {
	input := tone(length, freq)
	scratch := buffer.NewScratch[complex128]()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Operation\tIn\tOut\tPeak |x|\tPeak Index\tMean |x|\n")
	fmt.Fprintf(tw, "---------\t--\t---\t--------\t----------\t--------\n")

	for _, e := range entries {
		data := buffer.FromSlice(append([]complex128(nil), input...))
		data.SetScratch(scratch)

		if err := e.apply(f, data, up, down, trim); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		mags := stats.Magnitudes(data.Samples())
		peak, peakIdx := stats.PeakMagnitude(data.Samples())

		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%d\t%.6f\n",
			e.name,
			length,
			data.Len(),
			peak,
			peakIdx,
			stats.Mean(mags),
		)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
