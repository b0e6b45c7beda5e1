package pipeline

import (
	"errors"

	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

var (
	ErrNoRunner  = errors.New(f("no runner configured"))
	ErrNoCommand = errors.New(f("step has no command"))
)

// ErrArtifactMissing is recorded when a step's input artifact does not exist.
type ErrArtifactMissing string

func (err ErrArtifactMissing) Error() string {
	return f("artifact %v missing", string(err))
}

// ErrStepFailed is returned by Run when a required step fails.
type ErrStepFailed struct {
	Step     string
	ExitCode int
	Err      error
}

func (err *ErrStepFailed) Error() string {
	if err.Err != nil {
		return f("step %v: %v", err.Step, err.Err)
	}
	return f("step %v exited with status %d", err.Step, err.ExitCode)
}

func (err *ErrStepFailed) Unwrap() error {
	return err.Err
}
