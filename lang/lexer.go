// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lang

import (
	"iter"
	"strconv"
)

// Lexer splits simpleLang source text into tokens.
type Lexer struct {
	src   string
	index int
	line  int
}

// NewLexer creates a lexer over the source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// peek returns the byte at offset from the current index.
func (lx *Lexer) peek(offset int) (c byte, ok bool) {
	if lx.index+offset >= len(lx.src) {
		return
	}
	return lx.src[lx.index+offset], true
}

var singles = map[byte]TokenType{
	'+': TOKEN_PLUS,
	'-': TOKEN_MINUS,
	'{': TOKEN_LBRACE,
	'}': TOKEN_RBRACE,
	'(': TOKEN_LBRACKET,
	')': TOKEN_RBRACKET,
	';': TOKEN_SEMICOLON,
}

// Next returns the next token. At the end of input it returns a TOKEN_END
// token.
func (lx *Lexer) Next() (tok Token, err error) {
	for {
		c, ok := lx.peek(0)
		if !ok {
			tok = Token{Type: TOKEN_END, Line: lx.line}
			return
		}

		tok.Line = lx.line

		switch {
		case c == '\n':
			lx.line++
			lx.index++
			continue
		case isSpace(c):
			lx.index++
			continue
		case c == '/':
			// Comment to the end of the line.
			for c, ok = lx.peek(0); ok && c != '\n'; c, ok = lx.peek(0) {
				lx.index++
			}
			continue
		case isAlpha(c):
			start := lx.index
			for c, ok = lx.peek(0); ok && (isAlpha(c) || isDigit(c)); c, ok = lx.peek(0) {
				lx.index++
			}
			tok.Text = lx.src[start:lx.index]
			switch tok.Text {
			case "if":
				tok.Type = TOKEN_IF
			case "int":
				tok.Type = TOKEN_INT
			default:
				tok.Type = TOKEN_IDENTIFIER
			}
			return
		case isDigit(c):
			start := lx.index
			for c, ok = lx.peek(0); ok && isDigit(c); c, ok = lx.peek(0) {
				lx.index++
			}
			tok.Type = TOKEN_NUMBER
			tok.Text = lx.src[start:lx.index]
			_, perr := strconv.ParseUint(tok.Text, 10, 32)
			if perr != nil {
				err = &ErrSyntax{Line: tok.Line, Text: tok.Text, Err: ErrNumberRange}
			}
			return
		case c == '=':
			if next, _ := lx.peek(1); next == '=' {
				tok.Type = TOKEN_EQUAL
				tok.Text = "=="
				lx.index += 2
				return
			}
			tok.Type = TOKEN_ASSIGN
			tok.Text = "="
			lx.index++
			return
		}

		tt, ok := singles[c]
		if !ok {
			err = &ErrSyntax{Line: lx.line, Text: string(c), Err: ErrUnknownCharacter}
			return
		}
		tok.Type = tt
		tok.Text = string(c)
		lx.index++
		return
	}
}

// All returns an iterator over the remaining tokens, excluding TOKEN_END.
// Iteration stops after the first error.
func (lx *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := lx.Next()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Type == TOKEN_END {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokens lexes the whole source text.
func Tokens(src string) (tokens []Token, err error) {
	for tok, lerr := range NewLexer(src).All() {
		if lerr != nil {
			err = lerr
			return
		}
		tokens = append(tokens, tok)
	}
	return
}
