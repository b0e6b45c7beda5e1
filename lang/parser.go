// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lang

import (
	"io"
	"strconv"
)

// Parser is a recursive descent parser for simpleLang.
type Parser struct {
	tokens []Token
	index  int

	ids  map[string]int // Variable name to Identifier.ID.
	prog *Program
}

// Parse reads and parses a whole simpleLang program.
func Parse(input io.Reader) (prog *Program, err error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return ParseString(string(src))
}

// ParseString parses a simpleLang program held in a string.
func ParseString(src string) (prog *Program, err error) {
	tokens, err := Tokens(src)
	if err != nil {
		return
	}

	p := &Parser{}
	return p.Parse(tokens)
}

// Parse parses a token stream into a Program. The parser may be reused.
func (p *Parser) Parse(tokens []Token) (prog *Program, err error) {
	p.tokens = tokens
	p.index = 0
	p.ids = make(map[string]int)
	p.prog = &Program{}

	for p.peek().Type != TOKEN_END {
		var stmt Statement
		stmt, err = p.parseStatement()
		if err != nil {
			return
		}
		p.prog.Statements = append(p.prog.Statements, stmt)
	}

	prog = p.prog
	return
}

// peek returns the current token, or TOKEN_END past the end of input.
func (p *Parser) peek() Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}

	line := 1
	if len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	return Token{Type: TOKEN_END, Line: line}
}

func (p *Parser) next() (tok Token) {
	tok = p.peek()
	if p.index < len(p.tokens) {
		p.index++
	}
	return
}

func (p *Parser) errorAt(tok Token, err error) error {
	return &ErrSyntax{Line: tok.Line, Text: tok.Text, Err: err}
}

func (p *Parser) expect(tt TokenType, missing error) (tok Token, err error) {
	tok = p.next()
	if tok.Type != tt {
		err = p.errorAt(tok, missing)
	}
	return
}

func (p *Parser) declare(tok Token) (ident *Identifier, err error) {
	if _, ok := p.ids[tok.Text]; ok {
		err = p.errorAt(tok, ErrRedeclared(tok.Text))
		return
	}

	id := len(p.prog.Identifiers)
	p.ids[tok.Text] = id
	p.prog.Identifiers = append(p.prog.Identifiers, tok.Text)

	ident = &Identifier{Line: tok.Line, ID: id, Name: tok.Text}
	return
}

func (p *Parser) parseStatement() (stmt Statement, err error) {
	tok := p.peek()

	switch tok.Type {
	case TOKEN_INT:
		return p.parseDeclaration()
	case TOKEN_IDENTIFIER:
		var expr Expression
		expr, err = p.parseExpression(TOKEN_SEMICOLON)
		if err != nil {
			return
		}
		stmt = &ExpressionStatement{Line: tok.Line, Expr: expr}
		return
	case TOKEN_IF:
		return p.parseIf()
	case TOKEN_RBRACE:
		err = p.errorAt(tok, ErrUnexpectedRBrace)
		return
	}

	err = p.errorAt(tok, ErrStatementInvalid)
	return
}

func (p *Parser) parseDeclaration() (stmt Statement, err error) {
	start := p.next()

	name, err := p.expect(TOKEN_IDENTIFIER, ErrExpectedIdentifier)
	if err != nil {
		return
	}

	// The variable is in scope for its own initializer.
	ident, err := p.declare(name)
	if err != nil {
		return
	}

	decl := &Declaration{Line: start.Line, Ident: ident}

	tok := p.next()
	switch tok.Type {
	case TOKEN_SEMICOLON:
	case TOKEN_ASSIGN:
		decl.Init, err = p.parseExpression(TOKEN_SEMICOLON)
		if err != nil {
			return
		}
	default:
		err = p.errorAt(tok, ErrExpectedSemicolon)
		return
	}

	stmt = decl
	return
}

func (p *Parser) parseOperand() (expr Expression, err error) {
	tok := p.next()

	switch tok.Type {
	case TOKEN_IDENTIFIER:
		id, ok := p.ids[tok.Text]
		if !ok {
			err = p.errorAt(tok, ErrUndeclared(tok.Text))
			return
		}
		expr = &Identifier{Line: tok.Line, ID: id, Name: tok.Text}
	case TOKEN_NUMBER:
		var value uint64
		value, err = strconv.ParseUint(tok.Text, 10, 32)
		if err != nil {
			err = p.errorAt(tok, ErrNumberRange)
			return
		}
		expr = &Number{Line: tok.Line, Value: uint32(value)}
	default:
		err = p.errorAt(tok, ErrExpectedOperand)
	}

	return
}

// parseExpression parses "operand [op expression]" and consumes the
// terminating token.
func (p *Parser) parseExpression(term TokenType) (expr Expression, err error) {
	left, err := p.parseOperand()
	if err != nil {
		return
	}

	tok := p.next()
	switch {
	case tok.Type == term:
		expr = left
		return
	case tok.Type.IsOperator():
		if _, ok := left.(*Number); ok && tok.Type == TOKEN_ASSIGN {
			err = p.errorAt(tok, ErrAssignTarget)
			return
		}
		var right Expression
		right, err = p.parseExpression(term)
		if err != nil {
			return
		}
		expr = &Binary{Line: left.LineNo(), Op: tok.Type, Left: left, Right: right}
		return
	}

	switch term {
	case TOKEN_RBRACKET:
		err = p.errorAt(tok, ErrExpectedRBracket)
	case TOKEN_SEMICOLON:
		err = p.errorAt(tok, ErrExpectedSemicolon)
	default:
		err = p.errorAt(tok, ErrExpectedOperator)
	}
	return
}

func (p *Parser) parseIf() (stmt Statement, err error) {
	start := p.next()

	_, err = p.expect(TOKEN_LBRACKET, ErrExpectedLBracket)
	if err != nil {
		return
	}

	cond, err := p.parseExpression(TOKEN_RBRACKET)
	if err != nil {
		return
	}

	_, err = p.expect(TOKEN_LBRACE, ErrExpectedLBrace)
	if err != nil {
		return
	}

	node := &If{Line: start.Line, Cond: cond}
	for {
		tok := p.peek()
		if tok.Type == TOKEN_END {
			err = p.errorAt(start, ErrUnterminatedBlock)
			return
		}
		if tok.Type == TOKEN_RBRACE {
			p.next()
			break
		}

		var inner Statement
		inner, err = p.parseStatement()
		if err != nil {
			return
		}
		node.Body = append(node.Body, inner)
	}

	stmt = node
	return
}
