package config

import (
	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

// ErrExpression is returned when a $(...) expression does not evaluate.
type ErrExpression struct {
	Field string
	Expr  string
	Err   error
}

func (err *ErrExpression) Error() string {
	return f("%v: $(%v) %v", err.Field, err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
