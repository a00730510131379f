// Package cli wires the command-line surface around the search engine:
// argument parsing, configuration resolution, logging, and report output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/primeworks/pprimes"
	"github.com/primeworks/pprimes/report"
)

// Execute runs the pprimes command tree and returns its error, if any.
// Cobra has already printed the error by the time Execute returns.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the pprimes command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "pprimes <max_value> [thread_count]",
		Short: "Find every prime up to a bound with a fixed worker pool",
		Long: `pprimes computes all primes in [2, max_value] by distributing candidates
across a fixed pool of workers pulling from a single shared cursor.
thread_count defaults to 2; a thread_count of 1 scans the range inline
with no locking. The answer is identical for every thread_count.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, cfgFile)
		},
	}

	cmd.Flags().Int("threads", pprimes.DefaultWorkers, "number of workers (the thread_count argument wins when given)")
	cmd.Flags().Bool("list", true, "print the primes in ascending order before the summary")
	cmd.Flags().Bool("quiet", false, "suppress logging below the error level")
	cmd.Flags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")

	cmd.AddCommand(newBenchCmd())
	return cmd
}

func runFind(cmd *cobra.Command, args []string, cfgFile string) error {
	cfg, err := loadConfig(viper.New(), cmd, cfgFile)
	if err != nil {
		return err
	}

	maxValue, err := parseIntArg(args[0])
	if err != nil {
		return fmt.Errorf("invalid max_value %q: %w", args[0], err)
	}

	threads := cfg.Threads
	if len(args) == 2 {
		t, err := parseIntArg(args[1])
		if err != nil {
			return fmt.Errorf("invalid thread_count %q: %w", args[1], err)
		}
		if t < 1 || t > math.MaxInt32 {
			return fmt.Errorf("thread_count %d: %w", t, pprimes.ErrInvalidWorkerCount)
		}
		threads = int(t)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	run := logger.WithFields(logrus.Fields{
		"run_id":    uuid.NewString(),
		"max_value": maxValue,
		"workers":   threads,
	})
	run.Info("starting run")

	res, err := pprimes.Find(cmd.Context(), maxValue,
		pprimes.WithWorkers(threads),
		pprimes.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	run.WithFields(logrus.Fields{
		"total_primes": res.Count(),
		"elapsed":      res.Stats().Elapsed,
	}).Info("run complete")

	return report.WriteText(cmd.OutOrStdout(), res, report.Options{ListPrimes: cfg.List})
}

// parseIntArg parses a base-10 integer argument, tolerating surrounding
// whitespace.
func parseIntArg(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
