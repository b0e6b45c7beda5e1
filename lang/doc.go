// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package lang implements the lexer and parser for simpleLang.
//
// simpleLang is a tiny language for 8-bit machines. A program is a flat list
// of statements over global byte variables:
//
//	int a;          // declare, value 0
//	int b = 3;      // declare and initialize
//	a = b + 1;      // expression statement
//	if (a == 4) {   // conditional block
//	    b = a - 1;
//	}
//
// Operators are '=', '+', '-' and '=='. Expressions are right associative, so
// "a - b - c" parses as "a - (b - c)".
package lang
