// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// slrun compiles a simpleLang program, assembles it for the 8bit-computer
// and runs the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/simplelang/config"
	"github.com/ezrec/simplelang/internal/logging"
	"github.com/ezrec/simplelang/pipeline"
)

var (
	configPath string
	rootDir    string
	strict     bool
	verbose    bool
	debounce   time.Duration
	force      bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slrun",
	Short: "Compile, assemble and run a simpleLang program",
	Long: `slrun drives the simpleLang toolchain:

  1. compile:  <build>/simpleLang <program> > <build>/temp.asm
  2. assemble: <deps>/asm/asm.py <build>/temp.asm > <deps>/memory.list
  3. build:    make clean && make run, in <deps>

A failing compile stops the run. Later steps are best effort unless
--strict is given.

slrun run exits with status 1 when a step that stops the run fails, and 0
otherwise, including when only best effort steps failed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err = config.Load(configPath)
		if err != nil {
			return
		}

		if cmd.Flags().Changed("root") {
			cfg.Root, err = filepath.Abs(rootDir)
			if err != nil {
				return
			}
		}
		if strict {
			cfg.Strict = true
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format, verbose)
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pipeline once",
	Args:  cobra.NoArgs,
	RunE:  runPipeline,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the pipeline, then again each time the program changes",
	Args:  cobra.NoArgs,
	RunE:  watchPipeline,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  initConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".", "Project root directory")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Stop at the first failing step")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	watchCmd.Flags().DurationVar(&debounce, "debounce", pipeline.DefaultDebounce, "Quiet period before a re-run")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration")

	rootCmd.AddCommand(runCmd, watchCmd, initCmd)
}

func runPipeline(cmd *cobra.Command, args []string) (err error) {
	p, err := cfg.Pipeline(logger)
	if err != nil {
		return
	}

	rpt, err := p.Run(cmd.Context())
	printReport(cmd.OutOrStdout(), rpt)
	return
}

func watchPipeline(cmd *cobra.Command, args []string) (err error) {
	layout, err := cfg.Layout()
	if err != nil {
		return
	}

	p, err := cfg.Pipeline(logger)
	if err != nil {
		return
	}

	reports := make(chan *pipeline.Report)
	g, ctx := errgroup.WithContext(cmd.Context())

	send := func(rpt *pipeline.Report, err error) {
		if err != nil {
			logger.Warn("run failed", zap.Error(err))
		}
		select {
		case reports <- rpt:
		case <-ctx.Done():
		}
	}

	g.Go(func() error {
		defer close(reports)
		send(p.Run(ctx))
		return p.Watch(ctx, layout.Program, debounce, send)
	})

	g.Go(func() error {
		for rpt := range reports {
			printReport(cmd.OutOrStdout(), rpt)
		}
		return nil
	})

	err = g.Wait()
	return
}

func initConfig(cmd *cobra.Command, args []string) (err error) {
	if !force {
		if _, serr := os.Stat(configPath); serr == nil {
			err = fmt.Errorf("%v already exists, use --force to overwrite", configPath)
			return
		}
	}

	err = config.Default().Save(configPath)
	if err != nil {
		return
	}

	logger.Info("configuration written", zap.String("path", configPath))
	return
}

// exitStatus maps a command error to the process exit status.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		// A failed step has already been logged and reported.
		var failed *pipeline.ErrStepFailed
		if !errors.As(err, &failed) {
			fmt.Fprintf(os.Stderr, "%v: %v\n", rootCmd.Name(), err)
		}
	}

	status := exitStatus(err)
	if status != 0 {
		stop()
		os.Exit(status)
	}
}
