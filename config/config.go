// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads the slrun pipeline configuration.
//
// The configuration is a YAML file. Any string value may embed $(expr)
// where expr is a Starlark expression; the variables goos, root, build_dir
// and deps_dir are predeclared as they become known:
//
//	compiler: $("simpleLang.exe" if goos == "windows" else "simpleLang")
//	listing: $(deps_dir + "/memory.list")
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/simplelang/pipeline"
)

// DefaultFile is the configuration file looked for in the working directory.
const DefaultFile = "slrun.yaml"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Config is the pipeline configuration.
type Config struct {
	Root      string `yaml:"root"`      // Project root, relative to the config file.
	BuildDir  string `yaml:"build_dir"` // Relative to root.
	Compiler  string `yaml:"compiler"`  // Relative to build_dir.
	Program   string `yaml:"program"`   // Relative to build_dir.
	Assembly  string `yaml:"assembly"`  // Relative to build_dir.
	DepsDir   string `yaml:"deps_dir"`  // Relative to root.
	Assembler string `yaml:"assembler"` // Relative to deps_dir.
	Listing   string `yaml:"listing"`   // Relative to deps_dir.
	Build     string `yaml:"build"`     // Shell command, run in deps_dir.

	Strict  bool   `yaml:"strict"`  // Stop at the first failing step.
	Timeout string `yaml:"timeout"` // Per step limit; empty for none.

	Logging LoggingConfig `yaml:"logging"`

	dir string // Directory of the loaded file.
}

// Default returns the default configuration, which reproduces the classic
// build/ and deps/8bit-computer layout.
func Default() *Config {
	return &Config{
		Root:      ".",
		BuildDir:  pipeline.DefaultBuildDir,
		Compiler:  pipeline.DefaultCompiler,
		Program:   pipeline.DefaultProgram,
		Assembly:  pipeline.DefaultAssembly,
		DepsDir:   pipeline.DefaultDepsDir,
		Assembler: pipeline.DefaultAssembler,
		Listing:   pipeline.DefaultListing,
		Build:     pipeline.DefaultBuild,

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// StepTimeout parses the per step timeout.
func (c *Config) StepTimeout() (timeout time.Duration, err error) {
	if len(c.Timeout) == 0 {
		return
	}

	timeout, err = time.ParseDuration(c.Timeout)
	if err != nil {
		err = fmt.Errorf("timeout: %w", err)
	}
	return
}

// resolver expands and anchors paths, accumulating the first error.
type resolver struct {
	vars map[string]string
	err  error
}

func (r *resolver) path(field, base, value string) string {
	if r.err != nil {
		return ""
	}

	value, r.err = Expand(field, value, r.vars)
	if r.err != nil {
		return ""
	}

	if !filepath.IsAbs(value) {
		value = filepath.Join(base, value)
	}

	value, r.err = filepath.Abs(value)
	return value
}

// Layout resolves the configuration into absolute pipeline paths.
func (c *Config) Layout() (layout pipeline.Layout, err error) {
	r := &resolver{vars: map[string]string{"goos": runtime.GOOS}}

	base := c.dir
	if len(base) == 0 {
		base = "."
	}

	layout.Root = r.path("root", base, c.Root)
	r.vars["root"] = layout.Root

	layout.BuildDir = r.path("build_dir", layout.Root, c.BuildDir)
	r.vars["build_dir"] = layout.BuildDir

	layout.DepsDir = r.path("deps_dir", layout.Root, c.DepsDir)
	r.vars["deps_dir"] = layout.DepsDir

	layout.Compiler = r.path("compiler", layout.BuildDir, c.Compiler)
	layout.Program = r.path("program", layout.BuildDir, c.Program)
	layout.Assembly = r.path("assembly", layout.BuildDir, c.Assembly)
	layout.Assembler = r.path("assembler", layout.DepsDir, c.Assembler)
	layout.Listing = r.path("listing", layout.DepsDir, c.Listing)

	if r.err != nil {
		err = r.err
		return
	}

	layout.Build, err = Expand("build", c.Build, r.vars)
	return
}

// Pipeline builds the pipeline described by the configuration.
func (c *Config) Pipeline(log *zap.Logger) (p *pipeline.Pipeline, err error) {
	layout, err := c.Layout()
	if err != nil {
		return
	}

	timeout, err := c.StepTimeout()
	if err != nil {
		return
	}

	p = pipeline.New(layout)
	p.Log = log
	p.Strict = c.Strict
	for n := range p.Steps {
		p.Steps[n].Command.Timeout = timeout
	}

	return
}
