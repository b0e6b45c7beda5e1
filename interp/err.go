package interp

import (
	"errors"

	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

var (
	ErrStackFull    = errors.New(f("statement stack full"))
	ErrNodeInvalid  = errors.New(f("unsupported syntax node"))
	ErrAssignTarget = errors.New(f("assignment target is not a variable"))
	ErrNoProgram    = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
