package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gossip/bench"
)

func (c *CLI) benchCommand() *cobra.Command {
	var (
		families []string
		jsonPath string
		timeout  time.Duration
		seed     int64
		parallel int
		noOracle bool
		stats    bool
		list     bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run benchmark families against the exact oracle",
		Long: `Run the selected families (all by default), timing the gossip comparison and the exact
oracle on every case. An oracle timeout counts as agreement.`,
		Example: `  gossip bench --family srg --family cfi --json report.json
  gossip bench --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, f := range bench.Families() {
					printKeyValue(w, f.Name, f.Description)
				}
				return nil
			}

			flags := cmd.Flags()
			bc := c.cfg.Bench
			if !flags.Changed("family") {
				families = bc.Families
			}
			if !flags.Changed("json") {
				jsonPath = bc.Output
			}
			if !flags.Changed("oracle-timeout") {
				timeout = bc.OracleTimeout.Duration
			}
			if !flags.Changed("seed") {
				seed = bc.Seed
			}
			if !flags.Changed("parallel") {
				parallel = bc.Workers
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cases, err := bench.Select(families, seed)
			if err != nil {
				return err
			}
			opts, err := c.options()
			if err != nil {
				return err
			}
			logger.Info("running benchmark", "cases", len(cases), "seed", seed, "oracle_timeout", timeout)

			runner := &bench.Runner{
				Options:       opts,
				OracleTimeout: timeout,
				SkipOracle:    noOracle,
				Workers:       parallel,
				Stats:         stats,
				Logger:        logger,
			}
			p := newProgress(logger)
			results, err := runner.Run(ctx, cases)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Ran %d cases", len(results)))

			if err := bench.RenderAll(w, results); err != nil {
				return err
			}
			for _, r := range bench.Failures(results) {
				printWarning(w, "%s/%s: gossip %v, oracle %s", r.Category, r.Name, r.Gossip, verdictString(r))
			}

			if jsonPath == "" {
				return nil
			}
			names := families
			if len(names) == 0 {
				for _, f := range bench.Families() {
					names = append(names, f.Name)
				}
			}
			rep := bench.NewReport(results, seed, c.cfg.Fingerprint.Sentinel, c.cfg.Fingerprint.Counter, names)
			if err := writeReport(jsonPath, rep); err != nil {
				return err
			}
			printFile(w, jsonPath, "report "+rep.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&families, "family", "f", nil, "benchmark family to run (repeatable; default all)")
	f.StringVar(&jsonPath, "json", "", "write a JSON report to this path")
	f.DurationVar(&timeout, "oracle-timeout", 30*time.Second, "bound on each oracle call (0 = none)")
	f.Int64Var(&seed, "seed", 42, "seed for the random families")
	f.IntVar(&parallel, "parallel", 1, "cases run concurrently (skews timings)")
	f.BoolVar(&noOracle, "no-oracle", false, "skip the oracle and check known answers only")
	f.BoolVar(&stats, "stats", false, "record graph statistics in the report")
	f.BoolVar(&list, "list", false, "list the families and exit")

	return cmd
}

func verdictString(r bench.Result) string {
	switch {
	case r.Oracle != nil:
		return fmt.Sprint(*r.Oracle)
	case r.Expected != nil:
		return fmt.Sprintf("skipped (expected %v)", *r.Expected)
	default:
		return "timeout"
	}
}

func writeReport(path string, rep *bench.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return rep.WriteJSON(f)
}
