// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lang

import (
	"fmt"
)

// TokenType is the lexical class of a token.
type TokenType int

//go:generate go tool stringer -linecomment -type=TokenType
const (
	TOKEN_END        = TokenType(0)  // end
	TOKEN_INT        = TokenType(1)  // int
	TOKEN_IDENTIFIER = TokenType(2)  // identifier
	TOKEN_IF         = TokenType(3)  // if
	TOKEN_NUMBER     = TokenType(4)  // number
	TOKEN_ASSIGN     = TokenType(5)  // =
	TOKEN_PLUS       = TokenType(6)  // +
	TOKEN_MINUS      = TokenType(7)  // -
	TOKEN_EQUAL      = TokenType(8)  // ==
	TOKEN_LBRACE     = TokenType(9)  // {
	TOKEN_RBRACE     = TokenType(10) // }
	TOKEN_LBRACKET   = TokenType(11) // (
	TOKEN_RBRACKET   = TokenType(12) // )
	TOKEN_SEMICOLON  = TokenType(13) // ;
)

// IsOperator returns true for the binary operators.
func (tt TokenType) IsOperator() bool {
	switch tt {
	case TOKEN_ASSIGN, TOKEN_PLUS, TOKEN_MINUS, TOKEN_EQUAL:
		return true
	}
	return false
}

// Token is a single lexeme.
type Token struct {
	Type TokenType
	Text string
	Line int // 1-based source line.
}

func (tok Token) String() string {
	return fmt.Sprintf("%v %q (line %d)", tok.Type, tok.Text, tok.Line)
}
