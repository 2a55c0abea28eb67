package cmd

import (
	"fmt"
	"log"

	"github.com/signalnine/solvecmp/internal/combine"
	"github.com/signalnine/solvecmp/internal/config"
	"github.com/signalnine/solvecmp/internal/loader"
	"github.com/signalnine/solvecmp/internal/report"
	"github.com/signalnine/solvecmp/internal/result"
	"github.com/signalnine/solvecmp/internal/stats"
	"github.com/spf13/cobra"
)

var (
	flagFormat     string
	flagNoSave     bool
	flagResultsDir string
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Merge result logs and report solve statistics",
		RunE:  runAnalyze,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	cmd.Flags().BoolVar(&flagNoSave, "no-save", false, "do not write a run directory")
	cmd.Flags().StringVar(&flagResultsDir, "results-dir", "", "override results.dir from the config")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	table, partition, err := prepare(cfg)
	if err != nil {
		return err
	}

	summary := stats.Analyze(table, stats.Options{
		Tools:    partition,
		Unlogged: stats.Unlogged{Sat: cfg.Unlogged.Sat, Unsat: cfg.Unlogged.Unsat},
	})
	for _, id := range summary.Conflicts {
		log.Printf("warning: conflicting sat/unsat results for %s", id)
	}

	out := cmd.OutOrStdout()
	if !flagNoSave {
		dir := cfg.Results.Dir
		if flagResultsDir != "" {
			dir = flagResultsDir
		}
		runDir, err := result.CreateRunDir(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Run directory: %s\n\n", runDir)
		if err := saveRun(runDir, cfg, table, summary); err != nil {
			return err
		}
	}
	return report.Generate(summary, flagFormat, out)
}

// prepare loads every source and derives the configured pipelines and
// virtual tools. It returns the table and the tools to partition over.
func prepare(cfg *config.Config) (*result.Table, []string, error) {
	sources := make([]loader.Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		sources = append(sources, loader.Source{
			Path:      s.Path,
			Columns:   s.Columns,
			Durations: s.Durations,
			Header:    s.Header,
		})
	}
	table, warnings, err := loader.LoadAll(sources)
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
	if err != nil {
		return nil, nil, err
	}

	partition := cfg.PartitionTools()
	if len(partition) == 0 {
		partition = table.Tools()
	}

	if cfg.Trivial.Enabled() {
		var dropped int
		table, dropped = combine.DropTrivial(table, combine.Trivial{
			Threshold: cfg.Trivial.Threshold,
			PerTool:   cfg.Trivial.PerTool,
		})
		log.Printf("dropped %d trivial benchmarks", dropped)
	}
	for _, p := range cfg.Pipelines {
		table = combine.AddPipeline(table, p.Name, p.Stages)
	}
	for _, v := range cfg.VirtualTools {
		table = combine.AddVirtualToolNamed(table, v.Name, v.Tools)
	}
	return table, partition, nil
}

func saveRun(runDir string, cfg *config.Config, table *result.Table, summary *result.Summary) error {
	if err := result.WriteSummary(runDir, summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := result.WriteMergedFile(result.MergedPath(runDir), table, table.Tools()); err != nil {
		return fmt.Errorf("writing merged table: %w", err)
	}
	for _, c := range cfg.Comparisons {
		cmp := stats.Compare(table, c.A, c.B)
		if err := result.WriteLines(result.RerunPath(runDir, c.Name), cmp.Rerun()); err != nil {
			return fmt.Errorf("writing rerun list %s: %w", c.Name, err)
		}
	}
	for _, tool := range cfg.Curves.Tools {
		curve := stats.Series(table, tool, cfg.Curves.Budget)
		if err := result.WriteCurveFile(result.CurvePath(runDir, tool), curve.Collect()); err != nil {
			return err
		}
	}
	return nil
}
