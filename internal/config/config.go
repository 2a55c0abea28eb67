package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/signalnine/solvecmp/internal/combine"
	"github.com/signalnine/solvecmp/internal/errors"
	"github.com/signalnine/solvecmp/internal/schema"
)

type Config struct {
	Tools        []string      `yaml:"tools"`
	Sources      []Source      `yaml:"sources"`
	VirtualTools []VirtualTool `yaml:"virtual_tools"`
	Pipelines    []Pipeline    `yaml:"pipelines"`
	Comparisons  []Comparison  `yaml:"comparisons"`
	Curves       Curves        `yaml:"curves"`
	Trivial      Trivial       `yaml:"trivial"`
	Unlogged     Unlogged      `yaml:"unlogged"`
	Results      Results       `yaml:"results"`
}

type Source struct {
	Path      string   `yaml:"path"`
	Columns   []string `yaml:"columns"`
	Durations bool     `yaml:"durations"`
	Header    bool     `yaml:"header"`
}

// VirtualTool is a portfolio of real tools. Name defaults to the
// combined tool identifier.
type VirtualTool struct {
	Name  string   `yaml:"name"`
	Tools []string `yaml:"tools"`
}

type Pipeline struct {
	Name   string   `yaml:"name"`
	Stages []string `yaml:"stages"`
}

type Comparison struct {
	Name string `yaml:"name"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

type Curves struct {
	Tools  []string `yaml:"tools"`
	Budget int64    `yaml:"budget"`
}

type Trivial struct {
	Threshold int64            `yaml:"threshold"`
	PerTool   map[string]int64 `yaml:"per_tool"`
}

// Enabled reports whether trivial benchmarks should be dropped.
func (t Trivial) Enabled() bool {
	return t.Threshold > 0 || len(t.PerTool) > 0
}

type Unlogged struct {
	Sat   int `yaml:"sat"`
	Unsat int `yaml:"unsat"`
}

type Results struct {
	Dir string `yaml:"dir"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(path, err)
	}
	if err := schema.ValidateConfig(data); err != nil {
		return nil, errors.Configf("invalid config %s: %v", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Configf("parsing config %s: %v", path, err)
	}
	base := filepath.Dir(path)
	for i := range cfg.Sources {
		if p := cfg.Sources[i].Path; !filepath.IsAbs(p) {
			cfg.Sources[i].Path = filepath.Join(base, p)
		}
	}
	if err := validate(&cfg); err != nil {
		return nil, errors.Configf("invalid config %s: %v", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources defined")
	}
	for i, s := range cfg.Sources {
		if s.Path == "" {
			return fmt.Errorf("source %d: path is required", i)
		}
		if len(s.Columns) == 0 && !s.Header {
			return fmt.Errorf("source %d: columns are required unless header is set", i)
		}
	}

	known := map[string]bool{}
	for _, t := range cfg.RealTools() {
		known[t] = true
	}
	// Headers name their tools only at load time.
	headerOnly := lo.SomeBy(cfg.Sources, func(s Source) bool { return len(s.Columns) == 0 })
	check := func(what, tool string) error {
		if headerOnly || known[tool] {
			return nil
		}
		return fmt.Errorf("%s: unknown tool %q", what, tool)
	}

	for _, t := range cfg.Tools {
		if err := check("tools", t); err != nil {
			return err
		}
	}
	for i, p := range cfg.Pipelines {
		if p.Name == "" || len(p.Stages) == 0 {
			return fmt.Errorf("pipeline %d: name and stages are required", i)
		}
		for _, s := range p.Stages {
			if err := check(fmt.Sprintf("pipeline %q", p.Name), s); err != nil {
				return err
			}
		}
		known[p.Name] = true
	}
	for i := range cfg.VirtualTools {
		v := &cfg.VirtualTools[i]
		if len(v.Tools) < 2 {
			return fmt.Errorf("virtual tool %d: needs at least 2 tools", i)
		}
		for _, t := range v.Tools {
			if err := check(fmt.Sprintf("virtual tool %d", i), t); err != nil {
				return err
			}
		}
		if v.Name == "" {
			v.Name = combine.ToolName(v.Tools)
		}
		known[v.Name] = true
	}
	for i := range cfg.Comparisons {
		c := &cfg.Comparisons[i]
		if err := check(fmt.Sprintf("comparison %d", i), c.A); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("comparison %d", i), c.B); err != nil {
			return err
		}
		if c.Name == "" {
			c.Name = c.A + "_vs_" + c.B
		}
	}
	for _, t := range cfg.Curves.Tools {
		if err := check("curves", t); err != nil {
			return err
		}
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = "results"
	}
	return nil
}

// RealTools returns the tools named by source columns, in first-seen order.
func (c *Config) RealTools() []string {
	var tools []string
	for _, s := range c.Sources {
		tools = append(tools, lo.Compact(s.Columns)...)
	}
	return lo.Uniq(tools)
}

// PartitionTools is the tool set used for the exact-solving-set breakdown.
func (c *Config) PartitionTools() []string {
	if len(c.Tools) > 0 {
		return c.Tools
	}
	return c.RealTools()
}
