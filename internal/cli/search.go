package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IhorStoiko/Projekt/internal/algorithms"
	"github.com/IhorStoiko/Projekt/internal/benchmark"
	"github.com/IhorStoiko/Projekt/internal/dataprocessing"
	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/internal/operations"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

type searchOptions struct {
	value  float64
	binary bool
	all    bool
	where  string
}

func newSearchCommand(opts *rootOptions) *cobra.Command {
	so := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Time a lookup in the order amount column",
		Long: `Search the cleaned order amounts for --value with the custom linear
search, or with binary search over a sorted copy when --binary is set.
--where column=value narrows the orders first. --all lists every matching
index, counted in the sorted copy when --binary is set.`,
		Example: `  salesreport search --value 100.5 --binary
  salesreport search --value 20 --where product_category=Toys --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}
			defer env.close(ctx)

			resp, err := env.execute(ctx, operations.StepIDLoad, operations.StepIDClean)
			if err != nil {
				printSteps(cmd.ErrOrStderr(), resp)
				return err
			}

			orders, err := operations.ContextValue[[]domain.Order](resp.State, operations.ContextKeyOrders)
			if err != nil {
				return err
			}
			if so.where != "" {
				column, value, ok := strings.Cut(so.where, "=")
				if !ok {
					return errors.NewValidationError("--where expects column=value").WithContext("where", so.where)
				}
				if orders, err = dataprocessing.FilterByColumn(orders, column, value); err != nil {
					return err
				}
			}
			amounts := dataprocessing.Amounts(orders)

			suite := benchmark.NewSuite(env.logger, nil, benchmark.Options{
				SortRuns:   env.cfg.Benchmark.SortRuns,
				SearchRuns: env.cfg.Benchmark.SearchRuns,
			})
			outcome := suite.Search(ctx, amounts, so.value, so.binary)
			fmt.Fprintln(cmd.OutOrStdout(), outcome.String())

			// report every match in the same index space as the search above
			if so.all && so.binary {
				sorted := slices.Clone(amounts)
				slices.Sort(sorted)
				fmt.Fprintf(cmd.OutOrStdout(), "all indices in sorted copy: %v\n", algorithms.IndicesOf(sorted, so.value))
			} else if so.all {
				fmt.Fprintf(cmd.OutOrStdout(), "all indices: %v\n", algorithms.IndicesOf(amounts, so.value))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&so.value, "value", 0, "order amount to look for")
	cmd.Flags().BoolVar(&so.binary, "binary", false, "use binary search over a sorted copy")
	cmd.Flags().BoolVar(&so.all, "all", false, "also list every index holding the value")
	cmd.Flags().StringVar(&so.where, "where", "", "only search orders whose column equals a value, e.g. status=completed")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
