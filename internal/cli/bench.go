package cli

import (
	"github.com/spf13/cobra"

	"github.com/IhorStoiko/Projekt/internal/benchmark"
	"github.com/IhorStoiko/Projekt/internal/operations"
)

func newBenchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Compare the custom sort and search with the standard library",
		Long: `Load and clean the raw CSV, then time bubble sort, linear search and
binary search against their standard library counterparts on the amount
column. Nothing is written to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}
			defer env.close(ctx)

			env.cfg.Benchmark.Enabled = true
			resp, err := env.execute(ctx, operations.StepIDLoad, operations.StepIDClean, operations.StepIDBenchmark)
			if err != nil {
				printSteps(cmd.ErrOrStderr(), resp)
				return err
			}

			results, err := operations.ContextValue[benchmark.Results](resp.State, operations.ContextKeyBenchmarks)
			if err != nil {
				return err
			}
			printBenchmarks(cmd.OutOrStdout(), results)
			return nil
		},
	}
}
