package cmd

import (
	"fmt"
	"os"

	"github.com/signalnine/solvecmp/internal/config"
	"github.com/signalnine/solvecmp/internal/result"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Export the merged result table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			table, _, err := prepare(cfg)
			if err != nil {
				return err
			}
			if out == "" {
				return result.WriteMerged(cmd.OutOrStdout(), table, table.Tools())
			}
			if err := result.WriteMergedFile(out, table, table.Tools()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %d benchmarks to %s\n", table.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")
	return cmd
}
