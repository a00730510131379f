// Package report renders finished search results for humans and for the
// benchmark pipeline.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/primeworks/pprimes"
)

// Options controls what the text report includes.
type Options struct {
	// ListPrimes prints every prime in ascending order before the summary.
	ListPrimes bool
}

// WriteText writes a human-readable report: the primes in ascending index
// order when requested, then a one-line summary with count, bound, elapsed
// time and worker count.
func WriteText(w io.Writer, res *pprimes.Result, opts Options) error {
	if opts.ListPrimes {
		for _, p := range res.Primes() {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return fmt.Errorf("write prime list: %w", err)
			}
		}
	}
	stats := res.Stats()
	if _, err := fmt.Fprintf(w, "total primes: %d (max %d, %d workers, elapsed %s)\n",
		res.Count(), res.Max(), stats.Workers, stats.Elapsed.Round(time.Microsecond)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// csvHeader is the column layout written by CSV.WriteRun.
var csvHeader = []string{"max_value", "workers", "trial", "elapsed_ms", "total_primes"}

// CSV streams one row per completed run, for benchmark sweeps.
type CSV struct {
	w         *csv.Writer
	headerOut bool
}

// NewCSV returns a CSV reporter writing to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

// WriteRun appends one row for res, writing the header before the first
// row.
func (c *CSV) WriteRun(res *pprimes.Result, trial int) error {
	if !c.headerOut {
		if err := c.w.Write(csvHeader); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		c.headerOut = true
	}
	stats := res.Stats()
	record := []string{
		strconv.FormatInt(res.Max(), 10),
		strconv.Itoa(stats.Workers),
		strconv.Itoa(trial),
		strconv.FormatFloat(float64(stats.Elapsed.Nanoseconds())/1e6, 'f', 3, 64),
		strconv.FormatInt(res.Count(), 10),
	}
	if err := c.w.Write(record); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Flush flushes buffered rows and surfaces any deferred write error.
func (c *CSV) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
