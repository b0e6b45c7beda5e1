package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Command is a single process invocation.
type Command struct {
	Path    string        // Executable.
	Args    []string      // Arguments, not including the executable.
	Dir     string        // Working directory of the process.
	Stdout  string        // If set, standard output is redirected to this file.
	Timeout time.Duration // If non-zero, the process is killed after this long.
}

func (cmd Command) String() string {
	var sb strings.Builder
	sb.WriteString(cmd.Path)
	for _, arg := range cmd.Args {
		if strings.ContainsAny(arg, " \t\"'") {
			fmt.Fprintf(&sb, " %q", arg)
		} else {
			sb.WriteString(" " + arg)
		}
	}
	if len(cmd.Stdout) != 0 {
		sb.WriteString(" > " + cmd.Stdout)
	}
	return sb.String()
}

// Runner executes commands.
//
// A command that ran and exited non-zero reports its exit code with a nil
// error. A non-nil error means the command could not be run to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) (exitCode int, err error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	Stdout io.Writer // Standard output when not redirected. Defaults to os.Stdout.
	Stderr io.Writer // Standard error. Defaults to os.Stderr.
	Env    []string  // Environment. Defaults to the current process environment.
}

var _ Runner = (*ExecRunner)(nil)

// Run starts the command and waits for it to exit.
func (er *ExecRunner) Run(ctx context.Context, cmd Command) (exitCode int, err error) {
	if len(cmd.Path) == 0 {
		err = ErrNoCommand
		return
	}

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	proc := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	proc.Dir = cmd.Dir
	proc.Env = er.Env
	proc.Stdin = nil
	proc.WaitDelay = time.Second

	proc.Stdout = er.Stdout
	if proc.Stdout == nil {
		proc.Stdout = os.Stdout
	}
	proc.Stderr = er.Stderr
	if proc.Stderr == nil {
		proc.Stderr = os.Stderr
	}

	if len(cmd.Stdout) != 0 {
		var out *os.File
		out, err = os.Create(cmd.Stdout)
		if err != nil {
			exitCode = -1
			return
		}
		defer func() {
			cerr := out.Close()
			if err == nil {
				err = cerr
			}
		}()
		proc.Stdout = out
	}

	err = proc.Run()
	if err == nil {
		return
	}

	exitCode = -1
	if ctx.Err() != nil {
		err = fmt.Errorf("%v: %w", cmd.Path, ctx.Err())
		return
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		err = nil
	}

	return
}
