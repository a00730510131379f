package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/primeworks/pprimes"
	"github.com/primeworks/pprimes/report"
)

// Plan describes a benchmark sweep: one run per (max value, worker count)
// pair, repeated Trials times.
type Plan struct {
	MaxValues []int64 `yaml:"max_values"`
	Workers   []int   `yaml:"workers"`
	Trials    int     `yaml:"trials"`
}

func defaultPlan() Plan {
	return Plan{
		MaxValues: []int64{1000, 10000, 100000, 1000000},
		Workers:   []int{1, 2, 4, 8},
		Trials:    3,
	}
}

func (p Plan) validate() error {
	if len(p.MaxValues) == 0 || len(p.Workers) == 0 {
		return errors.New("bench plan needs at least one max value and one worker count")
	}
	if p.Trials < 1 {
		return errors.New("bench plan trials must be >= 1")
	}
	return nil
}

// loadPlan reads a YAML sweep plan. Fields missing from the file keep
// their defaults.
func loadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read bench plan: %w", err)
	}
	plan := defaultPlan()
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("parse bench plan %s: %w", path, err)
	}
	return plan, plan.validate()
}

func newBenchCmd() *cobra.Command {
	var planPath, outPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sweep worker counts and record elapsed times as CSV",
		Long: `bench runs the search repeatedly across a grid of max values and worker
counts and writes one CSV row per trial. The grid can be customized with
a YAML plan file:

    max_values: [100000, 1000000]
    workers: [1, 2, 4, 8, 16]
    trials: 3`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := defaultPlan()
			if planPath != "" {
				var err error
				if plan, err = loadPlan(planPath); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			return runBench(cmd.Context(), plan, out)
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "YAML sweep plan file")
	cmd.Flags().StringVar(&outPath, "out", "", "CSV output path (default stdout)")
	return cmd
}

// runBench executes the sweep in plan order so downstream tooling can rely
// on row ordering.
func runBench(ctx context.Context, plan Plan, out io.Writer) error {
	w := report.NewCSV(out)
	for _, max := range plan.MaxValues {
		for _, workers := range plan.Workers {
			for trial := 1; trial <= plan.Trials; trial++ {
				res, err := pprimes.Find(ctx, max, pprimes.WithWorkers(workers))
				if err != nil {
					return fmt.Errorf("bench run max=%d workers=%d: %w", max, workers, err)
				}
				if err := w.WriteRun(res, trial); err != nil {
					return err
				}
			}
		}
	}
	return w.Flush()
}
