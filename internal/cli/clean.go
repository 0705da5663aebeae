package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IhorStoiko/Projekt/internal/operations"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

func newCleanCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Load, clean and export the sales data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}
			defer env.close(ctx)

			resp, err := env.execute(ctx, operations.CleanSteps...)
			printSteps(cmd.OutOrStdout(), resp)
			if err != nil {
				return err
			}

			stats, err := operations.ContextValue[domain.CleanStats](resp.State, operations.ContextKeyCleanStats)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d rows kept (%d duplicates, %d invalid), written to %s\n",
				stats.CleanRows, stats.RawRows, stats.Duplicates, stats.Invalid, env.paths.CleanData)
			return nil
		},
	}
}
