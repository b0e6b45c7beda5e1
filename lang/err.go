// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lang

import (
	"errors"

	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

var (
	// Lexer errors
	ErrUnknownCharacter = errors.New(f("unknown character"))
	ErrNumberRange      = errors.New(f("number out of range"))

	// Parser errors
	ErrExpectedIdentifier = errors.New(f("expected an identifier"))
	ErrExpectedOperand    = errors.New(f("expected an identifier or number"))
	ErrExpectedOperator   = errors.New(f("expected an operator"))
	ErrExpectedLBracket   = errors.New(f("expected ("))
	ErrExpectedRBracket   = errors.New(f("expected )"))
	ErrExpectedLBrace     = errors.New(f("expected {"))
	ErrExpectedSemicolon  = errors.New(f("expected ;"))
	ErrUnterminatedBlock  = errors.New(f("block without }"))
	ErrUnexpectedRBrace   = errors.New(f("} without block"))
	ErrStatementInvalid   = errors.New(f("unparsable statement"))
	ErrAssignTarget       = errors.New(f("cannot assign to a number"))
)

// ErrRedeclared is returned when a variable is declared twice.
type ErrRedeclared string

func (err ErrRedeclared) Error() string {
	return f("variable %v redeclared", string(err))
}

// ErrUndeclared is returned when a variable is used before declaration.
type ErrUndeclared string

func (err ErrUndeclared) Error() string {
	return f("variable %v not declared", string(err))
}

// ErrSyntax locates a lexer or parser error.
type ErrSyntax struct {
	Line int
	Text string // Offending token text, if any.
	Err  error
}

func (err *ErrSyntax) Error() string {
	if len(err.Text) == 0 {
		return f("line %d %v", err.Line, err.Err)
	}
	return f("line %d '%v' %v", err.Line, err.Text, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
