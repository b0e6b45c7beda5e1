package interp

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/simplelang/lang"
)

func doRun(t *testing.T, program []string) (in *Interpreter) {
	assert := assert.New(t)

	prog, err := lang.ParseString(strings.Join(program, "\n"))
	if err != nil {
		t.Fatal(err)
	}

	in, err = NewInterpreter(prog)
	assert.NoError(err)
	assert.NoError(in.Run())
	return
}

func TestInterpreter(t *testing.T) {
	assert := assert.New(t)

	in, err := NewInterpreter(&lang.Program{})
	assert.NoError(err)
	done, err := in.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, in.Ticks)

	in = &Interpreter{}
	assert.ErrorIs(in.Reset(), ErrNoProgram)
}

func TestInterpreterArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Program []string
		Values  map[string]uint8
	}){
		{[]string{"int a;"}, map[string]uint8{"a": 0}},
		{[]string{"int a = 5;", "int b = a + 3;"}, map[string]uint8{"a": 5, "b": 8}},
		{[]string{"int a = 10 - 3 - 2;"}, map[string]uint8{"a": 9}}, // 10 - (3 - 2)
		{[]string{"int a = 250 + 10;"}, map[string]uint8{"a": 4}},
		{[]string{"int a = 1 - 2;"}, map[string]uint8{"a": 255}},
		{[]string{"int a = 3 == 3;", "int b = 3 == 4;"}, map[string]uint8{"a": 1, "b": 0}},
		{[]string{"int a;", "int b;", "a = b = 7;"}, map[string]uint8{"a": 7, "b": 7}},
		{[]string{"int a;", "int b = 1 + a = 2;"}, map[string]uint8{"a": 2, "b": 3}},
		{[]string{"int a = 300;"}, map[string]uint8{"a": 44}},
	}

	for _, testcase := range table {
		in := doRun(t, testcase.Program)
		assert.Equal(testcase.Values, maps.Collect(in.Variables()), testcase.Program)
	}
}

func TestInterpreterIf(t *testing.T) {
	assert := assert.New(t)

	in := doRun(t, []string{
		"int a = 4;",
		"int b;",
		"int c;",
		"if (a == 4) {",
		"  b = 1;",
		"  if (b) {",
		"    c = 2;",
		"  }",
		"}",
		"if (a == 5) {",
		"  b = 9;",
		"}",
		"if (c - 2) {",
		"  c = 9;",
		"}",
	})

	b, ok := in.Value("b")
	assert.True(ok)
	assert.Equal(uint8(1), b)

	c, ok := in.Value("c")
	assert.True(ok)
	assert.Equal(uint8(2), c)

	_, ok = in.Value("d")
	assert.False(ok)
}

func TestInterpreterTick(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"int a = 1;",
		"if (a) {",
		"  a = 2;",
		"}",
		"a = a + 1;",
	}
	prog, err := lang.ParseString(strings.Join(program, "\n"))
	assert.NoError(err)

	in, err := NewInterpreter(prog)
	assert.NoError(err)

	var lines []int
	for {
		line := in.LineNo()
		done, err := in.Tick()
		assert.NoError(err)
		if done {
			assert.Equal(0, line)
			break
		}
		lines = append(lines, line)
	}

	assert.Equal([]int{1, 2, 3, 5}, lines)
	assert.Equal(4, in.Ticks)

	a, _ := in.Value("a")
	assert.Equal(uint8(3), a)

	// Reset restarts from a clean memory.
	assert.NoError(in.Reset())
	a, _ = in.Value("a")
	assert.Equal(uint8(0), a)
	assert.Equal(1, in.LineNo())
}

func TestInterpreterErrors(t *testing.T) {
	assert := assert.New(t)

	prog := &lang.Program{
		Identifiers: []string{"a"},
		Statements: []lang.Statement{
			&lang.ExpressionStatement{Line: 7, Expr: &lang.Binary{
				Line: 7, Op: lang.TOKEN_ASSIGN,
				Left:  &lang.Number{Value: 1},
				Right: &lang.Number{Value: 2},
			}},
		},
	}

	in, err := NewInterpreter(prog)
	assert.NoError(err)
	err = in.Run()
	assert.ErrorIs(err, ErrAssignTarget)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(7, rt.LineNo)
	}

	prog = &lang.Program{
		Statements: []lang.Statement{
			&lang.ExpressionStatement{Line: 2, Expr: &lang.Identifier{Line: 2, ID: 3, Name: "z"}},
		},
	}
	in, err = NewInterpreter(prog)
	assert.NoError(err)
	assert.ErrorIs(in.Run(), lang.ErrUndeclared("z"))

	_, err = NewInterpreter(nil)
	assert.ErrorIs(err, ErrNoProgram)
}

func TestInterpreterLongProgram(t *testing.T) {
	assert := assert.New(t)

	program := []string{"int a = 5;", "int b;"}
	for range STACK_LIMIT + 100 {
		program = append(program, "b = b + 1;")
	}
	program = append(program, "if (a) {", "a = a + b;", "}")

	in := doRun(t, program)
	assert.Equal(len(program)-1, in.Ticks)

	b, _ := in.Value("b")
	assert.Equal(uint8((STACK_LIMIT+100)%256), b)

	a, _ := in.Value("a")
	assert.Equal(uint8((5+STACK_LIMIT+100)%256), a)
}

func TestInterpreterNestingLimit(t *testing.T) {
	assert := assert.New(t)

	// Innermost first: each level is an if whose body is the level below.
	var body []lang.Statement
	for n := range STACK_LIMIT + 1 {
		body = []lang.Statement{&lang.If{Line: STACK_LIMIT + 1 - n, Cond: &lang.Number{Value: 1}, Body: body}}
	}
	prog := &lang.Program{Statements: body}

	in, err := NewInterpreter(prog)
	assert.NoError(err)

	err = in.Run()
	assert.ErrorIs(err, ErrStackFull)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(STACK_LIMIT, rt.LineNo)
	}
}
