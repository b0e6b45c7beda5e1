package config

import (
	"errors"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	ErrExpressionResult = errors.New(f("expression has no string or integer value"))
)

var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// eval evaluates a single Starlark expression with predeclared variables.
func eval(expr string, vars map[string]string) (value string, err error) {
	thread := starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range vars {
		pred[key] = starlark.String(str)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.String:
		value = rc.GoString()
	case starlark.Int:
		value = rc.String()
	default:
		err = ErrExpressionResult
	}

	return
}

// Expand replaces every $(expr) in text with the value of the Starlark
// expression expr. vars are available to the expression as string variables.
func Expand(field, text string, vars map[string]string) (expanded string, err error) {
	expanded = reExpression.ReplaceAllStringFunc(text, func(str string) string {
		if err != nil {
			return str
		}
		expr := str[2 : len(str)-1]
		value, _err := eval(expr, vars)
		if _err != nil {
			err = &ErrExpression{Field: field, Expr: expr, Err: _err}
			return str
		}
		return value
	})
	return
}
