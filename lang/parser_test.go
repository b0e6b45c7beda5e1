package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	src := strings.Join([]string{
		"int a;",
		"int b = 3;",
		"a = b + 1;",
		"if (a == 4) {",
		"  b = a - b - 1;",
		"}",
	}, "\n")

	prog, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	a := func(line int) *Identifier { return &Identifier{Line: line, ID: 0, Name: "a"} }
	b := func(line int) *Identifier { return &Identifier{Line: line, ID: 1, Name: "b"} }

	expected := &Program{
		Identifiers: []string{"a", "b"},
		Statements: []Statement{
			&Declaration{Line: 1, Ident: a(1)},
			&Declaration{Line: 2, Ident: b(2), Init: &Number{Line: 2, Value: 3}},
			&ExpressionStatement{Line: 3, Expr: &Binary{
				Line: 3, Op: TOKEN_ASSIGN, Left: a(3),
				Right: &Binary{Line: 3, Op: TOKEN_PLUS, Left: b(3), Right: &Number{Line: 3, Value: 1}},
			}},
			&If{Line: 4,
				Cond: &Binary{Line: 4, Op: TOKEN_EQUAL, Left: a(4), Right: &Number{Line: 4, Value: 4}},
				Body: []Statement{
					&ExpressionStatement{Line: 5, Expr: &Binary{
						Line: 5, Op: TOKEN_ASSIGN, Left: b(5),
						Right: &Binary{Line: 5, Op: TOKEN_MINUS, Left: a(5),
							Right: &Binary{Line: 5, Op: TOKEN_MINUS, Left: b(5), Right: &Number{Line: 5, Value: 1}}},
					}},
				},
			},
		},
	}

	if diff := cmp.Diff(expected, prog); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseString(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseString("int x = 1; if (x) { int y; if (y == x) { y = 2; } }")
	assert.NoError(err)
	assert.Equal([]string{"x", "y"}, prog.Identifiers)
	assert.Equal("int x = 1;\nif (x) { int y; if (y == x) { y = 2; } }\n", prog.String())

	prog, err = ParseString("// nothing here\n")
	assert.NoError(err)
	assert.Empty(prog.Statements)
}

func TestParseSelfReference(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseString("int a = a + 1;")
	assert.NoError(err)
	decl := prog.Statements[0].(*Declaration)
	assert.Equal("a + 1", decl.Init.String())
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Src  string
		Line int
		Err  error
	}){
		{"int a; int a;", 1, ErrRedeclared("a")},
		{"a = 1;", 1, ErrUndeclared("a")},
		{"int 5;", 1, ErrExpectedIdentifier},
		{"int a\n=;", 2, ErrExpectedOperand},
		{"int a = 1", 1, ErrExpectedSemicolon},
		{"int a; a = 1 )", 1, ErrExpectedSemicolon},
		{"int a; 1 = a;", 1, ErrStatementInvalid},
		{"int a; a + 1 = 2;", 1, ErrAssignTarget},
		{"int a; if a == 1) {}", 1, ErrExpectedLBracket},
		{"int a; if (a == 1; {}", 1, ErrExpectedRBracket},
		{"int a; if (a == 1) a = 2;", 1, ErrExpectedLBrace},
		{"int a;\nif (a) {\n a = 2;\n", 2, ErrUnterminatedBlock},
		{"int a; }", 1, ErrUnexpectedRBrace},
		{"int a; a;;", 1, ErrStatementInvalid},
	}

	for _, testcase := range table {
		_, err := ParseString(testcase.Src)
		assert.True(errors.Is(err, testcase.Err), "%v: %v", testcase.Src, err)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), testcase.Src) {
			assert.Equal(testcase.Line, syntax.Line, testcase.Src)
		}
	}
}
