// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interp executes simpleLang programs directly from the syntax tree.
//
// Variables are bytes and all arithmetic wraps modulo 256, matching the
// 8-bit target machine.
package interp

import (
	"iter"

	"go.uber.org/zap"

	"github.com/ezrec/simplelang/lang"
)

// Interpreter state. Program + variable memory + pending blocks.
type Interpreter struct {
	Log     *zap.Logger   // If set, logs each executed statement at debug level.
	Program *lang.Program // Reference to the program being interpreted.
	Memory  []uint8       // Variable values, indexed by Identifier.ID.
	Ticks   int           // Statements executed since the last reset.

	pending Stack[*frame]
}

// frame is a block being executed; next indexes its next statement.
type frame struct {
	stmts []lang.Statement
	next  int
}

// NewInterpreter creates an interpreter for a program, ready to run.
func NewInterpreter(prog *lang.Program) (in *Interpreter, err error) {
	in = &Interpreter{
		Program: prog,
	}
	err = in.Reset()
	return
}

// Reset clears memory and schedules the program from its first statement.
func (in *Interpreter) Reset() (err error) {
	in.pending.Reset()
	in.Ticks = 0

	if in.Program == nil {
		in.Memory = nil
		err = ErrNoProgram
		return
	}

	in.Memory = make([]uint8, len(in.Program.Identifiers))
	err = in.schedule(in.Program.Statements)
	return
}

// schedule pushes a block, to be run before the rest of the current one.
// The stack depth is the block nesting depth.
func (in *Interpreter) schedule(stmts []lang.Statement) (err error) {
	if len(stmts) == 0 {
		return
	}

	if !in.pending.Push(&frame{stmts: stmts}) {
		err = ErrStackFull
	}
	return
}

// peek returns the next statement to execute, dropping finished blocks.
func (in *Interpreter) peek() (stmt lang.Statement, ok bool) {
	for {
		var top *frame
		top, ok = in.pending.Peek()
		if !ok {
			return
		}
		if top.next < len(top.stmts) {
			stmt = top.stmts[top.next]
			return
		}
		in.pending.Pop()
	}
}

// LineNo returns the line number of the next statement to execute.
func (in *Interpreter) LineNo() int {
	stmt, ok := in.peek()
	if !ok {
		return 0
	}
	return stmt.LineNo()
}

// Variables returns an iterator over variable names and values in
// declaration order.
func (in *Interpreter) Variables() iter.Seq2[string, uint8] {
	return func(yield func(name string, value uint8) bool) {
		if in.Program == nil {
			return
		}
		for id, name := range in.Program.Identifiers {
			if id >= len(in.Memory) {
				return
			}
			if !yield(name, in.Memory[id]) {
				return
			}
		}
	}
}

// Value returns the current value of a variable.
func (in *Interpreter) Value(name string) (value uint8, ok bool) {
	for n, v := range in.Variables() {
		if n == name {
			return v, true
		}
	}
	return
}

// Tick executes a single statement. done is set once no statements remain.
func (in *Interpreter) Tick() (done bool, err error) {
	stmt, ok := in.peek()
	if !ok {
		done = true
		return
	}

	top, _ := in.pending.Peek()
	top.next++

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: stmt.LineNo(), Err: err}
		}
	}()

	if in.Log != nil {
		in.Log.Debug("exec", zap.Int("line", stmt.LineNo()), zap.Stringer("stmt", stmt))
	}

	in.Ticks++

	switch node := stmt.(type) {
	case *lang.Declaration:
		var value uint8
		if node.Init != nil {
			value, err = in.eval(node.Init)
			if err != nil {
				return
			}
		}
		err = in.store(node.Ident, value)
	case *lang.ExpressionStatement:
		_, err = in.eval(node.Expr)
	case *lang.If:
		var cond uint8
		cond, err = in.eval(node.Cond)
		if err != nil {
			return
		}
		if cond != 0 {
			err = in.schedule(node.Body)
		}
	default:
		err = ErrNodeInvalid
	}

	return
}

// Run ticks the interpreter until the program completes.
func (in *Interpreter) Run() (err error) {
	var done bool
	for !done {
		done, err = in.Tick()
		if err != nil {
			return
		}
	}
	return
}

func (in *Interpreter) store(ident *lang.Identifier, value uint8) (err error) {
	if ident.ID < 0 || ident.ID >= len(in.Memory) {
		err = lang.ErrUndeclared(ident.Name)
		return
	}
	in.Memory[ident.ID] = value
	return
}

func (in *Interpreter) eval(expr lang.Expression) (value uint8, err error) {
	switch node := expr.(type) {
	case *lang.Number:
		value = uint8(node.Value)
		return
	case *lang.Identifier:
		if node.ID < 0 || node.ID >= len(in.Memory) {
			err = lang.ErrUndeclared(node.Name)
			return
		}
		value = in.Memory[node.ID]
		return
	case *lang.Binary:
		// Right hand side first, as the code generator does.
		var right, left uint8
		right, err = in.eval(node.Right)
		if err != nil {
			return
		}

		if node.Op == lang.TOKEN_ASSIGN {
			target, ok := node.Left.(*lang.Identifier)
			if !ok {
				err = ErrAssignTarget
				return
			}
			err = in.store(target, right)
			value = right
			return
		}

		left, err = in.eval(node.Left)
		if err != nil {
			return
		}

		switch node.Op {
		case lang.TOKEN_PLUS:
			value = left + right
		case lang.TOKEN_MINUS:
			value = left - right
		case lang.TOKEN_EQUAL:
			if left == right {
				value = 1
			}
		default:
			err = ErrNodeInvalid
		}
		return
	}

	err = ErrNodeInvalid
	return
}
