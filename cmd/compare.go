package cmd

import (
	"fmt"

	"github.com/signalnine/solvecmp/internal/config"
	"github.com/signalnine/solvecmp/internal/result"
	"github.com/signalnine/solvecmp/internal/stats"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "List benchmarks solved by only one of two tools",
		Long:  "Print a better/worse verdict for every benchmark A solves and B does not, or the reverse. With --out, write the rerun list.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			table, _, err := prepare(cfg)
			if err != nil {
				return err
			}
			c := stats.Compare(table, args[0], args[1])
			w := cmd.OutOrStdout()
			for _, line := range c.Verdicts() {
				fmt.Fprintln(w, line)
			}
			fmt.Fprintf(w, "\n%s vs %s: %d better, %d worse\n", c.A, c.B, len(c.Better), len(c.Worse))
			if out != "" {
				return result.WriteLines(out, c.Rerun())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the rerun list to this file")
	return cmd
}
