// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step is one stage of a run.
type Step struct {
	Name     string
	Command  Command
	Required bool     // If set, failure stops the run.
	Needs    []string // Artifacts that must exist before the step starts.
}

// Result is the outcome of a single step.
type Result struct {
	Step     string
	Command  Command
	ExitCode int
	Err      error // Set if the step could not be run to completion.
	Duration time.Duration
	Skipped  bool // Set if the step was never started.
}

// Failed returns true if the step ran, or tried to, and did not succeed.
func (res Result) Failed() bool {
	return !res.Skipped && (res.Err != nil || res.ExitCode != 0)
}

// Report collects the results of a run, in step order.
type Report struct {
	RunID   string
	Results []Result
}

// Result returns the result of a named step.
func (rpt *Report) Result(step string) (res Result, ok bool) {
	for _, res = range rpt.Results {
		if res.Step == step {
			ok = true
			return
		}
	}
	res = Result{}
	return
}

// Succeeded returns true if every step ran and succeeded.
func (rpt *Report) Succeeded() bool {
	for _, res := range rpt.Results {
		if res.Skipped || res.Failed() {
			return false
		}
	}
	return true
}

// Pipeline runs its steps in sequence.
type Pipeline struct {
	Steps  []Step
	Runner Runner
	Log    *zap.Logger // Defaults to a no-op logger.
	Strict bool        // If set, every step is treated as Required.
}

// New creates a pipeline for a layout, using an ExecRunner.
func New(layout Layout) *Pipeline {
	return &Pipeline{
		Steps:  layout.Steps(),
		Runner: &ExecRunner{},
	}
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

// Run executes the steps in order and reports every outcome.
//
// When a Required step fails, or ctx is done, the remaining steps are
// recorded as skipped and a non-nil error is returned alongside the report.
func (p *Pipeline) Run(ctx context.Context) (rpt *Report, err error) {
	rpt = &Report{RunID: uuid.NewString()}

	if p.Runner == nil {
		err = ErrNoRunner
		return
	}

	log := p.logger().With(zap.String("run", rpt.RunID))
	log.Info("run starting", zap.Int("steps", len(p.Steps)))

	for _, step := range p.Steps {
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
			log.Warn("run canceled", zap.String("step", step.Name))
		}

		if err != nil {
			rpt.Results = append(rpt.Results, Result{Step: step.Name, Command: step.Command, Skipped: true})
			continue
		}

		res := p.runStep(ctx, log, step)
		rpt.Results = append(rpt.Results, res)

		if !res.Failed() {
			continue
		}

		fields := []zap.Field{
			zap.String("step", step.Name),
			zap.Int("exit", res.ExitCode),
			zap.Error(res.Err),
		}

		if step.Required || p.Strict {
			log.Error("required step failed", fields...)
			err = &ErrStepFailed{Step: step.Name, ExitCode: res.ExitCode, Err: res.Err}
			continue
		}

		log.Warn("step failed, continuing", fields...)
	}

	log.Info("run finished", zap.Bool("ok", err == nil && rpt.Succeeded()))
	return
}

func (p *Pipeline) runStep(ctx context.Context, log *zap.Logger, step Step) (res Result) {
	res = Result{Step: step.Name, Command: step.Command}

	for _, need := range step.Needs {
		if _, err := os.Stat(need); err != nil {
			res.ExitCode = -1
			res.Err = ErrArtifactMissing(need)
			return
		}
	}

	log.Debug("step starting",
		zap.String("step", step.Name),
		zap.Stringer("command", step.Command),
		zap.String("dir", step.Command.Dir))

	start := time.Now()
	res.ExitCode, res.Err = p.Runner.Run(ctx, step.Command)
	res.Duration = time.Since(start)

	log.Info("step finished",
		zap.String("step", step.Name),
		zap.Int("exit", res.ExitCode),
		zap.Duration("duration", res.Duration))

	return
}
