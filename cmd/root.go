package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "solvecmp",
		Short:        "Merge solver result logs and compare solvers",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "solvecmp.yaml", "config file path")
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newMergeCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newCactusCmd())
	return root
}
