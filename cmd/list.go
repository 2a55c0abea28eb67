package cmd

import (
	"fmt"
	"strings"

	"github.com/signalnine/solvecmp/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured sources and tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Sources:")
			for _, s := range cfg.Sources {
				mode := "outcomes"
				if s.Durations {
					mode = "outcomes+durations"
				}
				cols := make([]string, len(s.Columns))
				for i, c := range s.Columns {
					if c == "" {
						c = "-"
					}
					cols[i] = c
				}
				fmt.Fprintf(out, "  - %s [%s] %s\n", s.Path, mode, strings.Join(cols, ","))
			}
			fmt.Fprintln(out, "\nTools:")
			for _, t := range cfg.RealTools() {
				fmt.Fprintf(out, "  - %s\n", t)
			}
			if len(cfg.Pipelines) > 0 {
				fmt.Fprintln(out, "\nPipelines:")
				for _, p := range cfg.Pipelines {
					fmt.Fprintf(out, "  - %s = %s\n", p.Name, strings.Join(p.Stages, " -> "))
				}
			}
			if len(cfg.VirtualTools) > 0 {
				fmt.Fprintln(out, "\nVirtual tools:")
				for _, v := range cfg.VirtualTools {
					fmt.Fprintf(out, "  - %s = portfolio(%s)\n", v.Name, strings.Join(v.Tools, ", "))
				}
			}
			return nil
		},
	}
}
