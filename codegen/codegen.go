// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package codegen translates simpleLang programs into 8bit-computer assembly.
//
// Every expression leaves its value in register A; register B is scratch.
// Variables live in memory, one byte each, at offsets allocated in
// declaration order starting from 0.
package codegen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/simplelang/lang"
)

// Generator emits assembly for a single program.
type Generator struct {
	Offset map[int]int // Identifier.ID to memory offset.

	section int
	out     strings.Builder
}

// Generate returns the assembly text for a program.
func Generate(prog *lang.Program) (text string, err error) {
	gen := &Generator{}
	err = gen.Generate(prog)
	if err != nil {
		return
	}

	text = gen.String()
	return
}

// String returns the assembly generated so far.
func (gen *Generator) String() string {
	return gen.out.String()
}

// WriteTo writes the generated assembly to w.
func (gen *Generator) WriteTo(w io.Writer) (n int64, err error) {
	wrote, err := io.WriteString(w, gen.out.String())
	n = int64(wrote)
	return
}

func (gen *Generator) emit(format string, args ...any) {
	fmt.Fprintf(&gen.out, format, args...)
}

// Generate translates the program, replacing any previous output.
func (gen *Generator) Generate(prog *lang.Program) (err error) {
	gen.out.Reset()
	gen.section = 0
	gen.Offset = make(map[int]int, len(prog.Identifiers))

	gen.emit(".text\n")
	gen.emit("\nstart:\n")

	err = gen.statements(prog.Statements)
	if err != nil {
		return
	}

	gen.emit("\thlt\n")
	return
}

func (gen *Generator) statements(stmts []lang.Statement) (err error) {
	for _, stmt := range stmts {
		err = gen.statement(stmt)
		if err != nil {
			var located *ErrGenerate
			if !errors.As(err, &located) {
				err = &ErrGenerate{LineNo: stmt.LineNo(), Err: err}
			}
			return
		}
	}
	return
}

func (gen *Generator) statement(stmt lang.Statement) (err error) {
	switch node := stmt.(type) {
	case *lang.Declaration:
		off := len(gen.Offset)
		gen.Offset[node.Ident.ID] = off
		if node.Init == nil {
			return
		}
		err = gen.expression(node.Init)
		if err != nil {
			return
		}
		gen.emit("\tmov M A %d\n", off)
	case *lang.ExpressionStatement:
		err = gen.expression(node.Expr)
		if err != nil {
			return
		}
		gen.emit("\t\n")
	case *lang.If:
		err = gen.conditional(node)
		if err != nil {
			return
		}
		gen.emit("\t\n")
	default:
		err = ErrNodeInvalid
	}

	return
}

// offset returns the memory offset of a variable.
func (gen *Generator) offset(ident *lang.Identifier) (off int, err error) {
	off, ok := gen.Offset[ident.ID]
	if !ok {
		err = ErrUnallocated(ident.Name)
	}
	return
}

// load places an operand in a register.
func (gen *Generator) load(reg string, expr lang.Expression) (err error) {
	switch node := expr.(type) {
	case *lang.Number:
		gen.emit("\tldi %v %d\n", reg, node.Value)
	case *lang.Identifier:
		var off int
		off, err = gen.offset(node)
		if err != nil {
			return
		}
		gen.emit("\tmov %v M %d\n", reg, off)
	default:
		err = ErrNodeInvalid
	}
	return
}

func isOperand(expr lang.Expression) bool {
	switch expr.(type) {
	case *lang.Number, *lang.Identifier:
		return true
	}
	return false
}

// expression leaves the value of expr in A.
func (gen *Generator) expression(expr lang.Expression) (err error) {
	if isOperand(expr) {
		return gen.load("A", expr)
	}

	node, ok := expr.(*lang.Binary)
	if !ok {
		err = ErrNodeInvalid
		return
	}

	switch node.Op {
	case lang.TOKEN_ASSIGN:
		target, ok := node.Left.(*lang.Identifier)
		if !ok {
			err = ErrAssignTarget
			return
		}
		var off int
		off, err = gen.offset(target)
		if err != nil {
			return
		}
		err = gen.expression(node.Right)
		if err != nil {
			return
		}
		gen.emit("\tmov M A %d\n", off)
	case lang.TOKEN_PLUS, lang.TOKEN_EQUAL:
		err = gen.expression(node.Right)
		if err != nil {
			return
		}
		err = gen.load("B", node.Left)
		if err != nil {
			return
		}
		if node.Op == lang.TOKEN_PLUS {
			gen.emit("\tadd\n")
		} else {
			gen.emit("\tcmp\n")
		}
	case lang.TOKEN_MINUS:
		if isOperand(node.Right) {
			err = gen.load("A", node.Left)
			if err == nil {
				err = gen.load("B", node.Right)
			}
		} else {
			err = gen.expression(node.Right)
			if err == nil {
				gen.emit("\tmov B A\n")
				err = gen.load("A", node.Left)
			}
		}
		if err != nil {
			return
		}
		gen.emit("\tsub\n")
	default:
		err = ErrOperatorInvalid
	}

	return
}

// conditional emits an if block. The body is skipped with a jump to a
// section label allocated before the body is generated.
func (gen *Generator) conditional(node *lang.If) (err error) {
	section := gen.section
	gen.section++

	err = gen.expression(node.Cond)
	if err != nil {
		return
	}

	gen.emit("\t\n")
	if cond, ok := node.Cond.(*lang.Binary); ok && cond.Op == lang.TOKEN_EQUAL {
		gen.emit("\tjne %%section%d\n", section)
	} else {
		gen.emit("\tldi B 0\n")
		gen.emit("\tcmp\n")
		gen.emit("\tje %%section%d\n", section)
	}
	gen.emit("\t\n")

	err = gen.statements(node.Body)
	if err != nil {
		return
	}

	gen.emit("section%d:\n", section)
	return
}
