// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lang

import (
	"fmt"
	"strings"
)

// Node is any element of the syntax tree.
type Node interface {
	fmt.Stringer
	LineNo() int // Source line the node starts on.
}

// Expression is a node producing a byte value.
type Expression interface {
	Node
	expression()
}

// Statement is a top level or block level node.
type Statement interface {
	Node
	statement()
}

// Identifier references a declared variable.
type Identifier struct {
	Line int
	ID   int    // Index into Program.Identifiers.
	Name string // Variable name.
}

// Number is an unsigned integer literal.
type Number struct {
	Line  int
	Value uint32
}

// Binary is an operator expression. Left is always an operand; Right may
// be another Binary.
type Binary struct {
	Line  int
	Op    TokenType // TOKEN_ASSIGN, TOKEN_PLUS, TOKEN_MINUS or TOKEN_EQUAL
	Left  Expression
	Right Expression
}

// Declaration introduces a variable, with an optional initializer.
type Declaration struct {
	Line  int
	Ident *Identifier
	Init  Expression // nil for "int a;"
}

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	Line int
	Expr Expression
}

// If runs Body when Cond is true.
type If struct {
	Line int
	Cond Expression
	Body []Statement
}

// Program is a parsed simpleLang compilation unit.
type Program struct {
	Statements  []Statement
	Identifiers []string // Variable names, indexed by Identifier.ID.
}

func (*Identifier) expression() {}
func (*Number) expression()     {}
func (*Binary) expression()     {}

func (*Declaration) statement()         {}
func (*ExpressionStatement) statement() {}
func (*If) statement()                  {}

func (n *Identifier) LineNo() int          { return n.Line }
func (n *Number) LineNo() int              { return n.Line }
func (n *Binary) LineNo() int              { return n.Line }
func (n *Declaration) LineNo() int         { return n.Line }
func (n *ExpressionStatement) LineNo() int { return n.Line }
func (n *If) LineNo() int                  { return n.Line }

func (n *Identifier) String() string { return n.Name }
func (n *Number) String() string     { return fmt.Sprintf("%d", n.Value) }

func (n *Binary) String() string {
	return fmt.Sprintf("%v %v %v", n.Left, n.Op, n.Right)
}

func (n *Declaration) String() string {
	if n.Init == nil {
		return fmt.Sprintf("int %v;", n.Ident)
	}
	return fmt.Sprintf("int %v = %v;", n.Ident, n.Init)
}

func (n *ExpressionStatement) String() string {
	return fmt.Sprintf("%v;", n.Expr)
}

func (n *If) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "if (%v) {", n.Cond)
	for _, stmt := range n.Body {
		fmt.Fprintf(&sb, " %v", stmt)
	}
	sb.WriteString(" }")
	return sb.String()
}

// String formats the program as canonical source, one statement per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, stmt := range prog.Statements {
		sb.WriteString(stmt.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
