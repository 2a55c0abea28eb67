package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/signalnine/solvecmp/internal/config"
	"github.com/signalnine/solvecmp/internal/result"
	"github.com/signalnine/solvecmp/internal/stats"
	"github.com/spf13/cobra"
)

func newCactusCmd() *cobra.Command {
	var (
		outDir string
		budget int64
	)
	cmd := &cobra.Command{
		Use:   "cactus [tool...]",
		Short: "Emit cumulative solved-vs-time data for plotting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			tools := args
			if len(tools) == 0 {
				tools = cfg.Curves.Tools
			}
			if len(tools) == 0 {
				return fmt.Errorf("no tools given and curves.tools is empty")
			}
			if !cmd.Flags().Changed("budget") {
				budget = cfg.Curves.Budget
			}
			table, _, err := prepare(cfg)
			if err != nil {
				return err
			}
			for _, tool := range tools {
				curve := stats.Series(table, tool, budget)
				if outDir == "" {
					if err := writeCurve(cmd.OutOrStdout(), curve); err != nil {
						return err
					}
					continue
				}
				if err := result.WriteCurveFile(result.CurvePath(outDir, tool), curve.Collect()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d solved -> %s\n", tool, len(curve.Times),
					filepath.Clean(result.CurvePath(outDir, tool)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directory for curve files (default stdout)")
	cmd.Flags().Int64Var(&budget, "budget", 0, "clip solve times to this budget (default curves.budget)")
	return cmd
}

func writeCurve(w io.Writer, curve stats.Curve) error {
	fmt.Fprintf(w, "# %s\n", curve.Tool)
	return result.WriteCurve(w, curve.Collect())
}
