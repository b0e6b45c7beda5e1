package codegen

import (
	"errors"

	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

var (
	ErrAssignTarget    = errors.New(f("assignment target is not a variable"))
	ErrNodeInvalid     = errors.New(f("unsupported syntax node"))
	ErrOperatorInvalid = errors.New(f("unsupported operator"))
)

// ErrUnallocated is returned when a variable is used before its declaration
// was generated.
type ErrUnallocated string

func (err ErrUnallocated) Error() string {
	return f("variable %v has no memory offset", string(err))
}

// ErrGenerate locates a code generation error.
type ErrGenerate struct {
	LineNo int
	Err    error
}

func (err *ErrGenerate) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrGenerate) Unwrap() error {
	return err.Err
}
