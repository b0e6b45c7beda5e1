package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/simplelang/lang"
)

func writeProgram(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "prog.sl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(args ...string) (out string, err error) {
	var buf bytes.Buffer
	interpret = false
	output = "-"
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	out = buf.String()
	return
}

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t, "int a = 3;\n")
	out, err := execute(path)
	assert.NoError(err)
	assert.True(strings.HasPrefix(out, ".text\n\nstart:\n"))
	assert.Contains(out, "ldi A 3")
	assert.True(strings.HasSuffix(out, "\thlt\n"))
}

func TestCompileOutput(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t, "int a = 3;\n")
	asm := filepath.Join(t.TempDir(), "out.asm")
	out, err := execute("-o", asm, path)
	assert.NoError(err)
	assert.Empty(out)

	data, err := os.ReadFile(asm)
	assert.NoError(err)
	assert.Contains(string(data), "ldi A 3")
}

func TestCompileError(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t, "int a = b;\n")
	_, err := execute(path)
	var undeclared lang.ErrUndeclared
	assert.ErrorAs(err, &undeclared)
	assert.Contains(err.Error(), path)

	_, err = execute(filepath.Join(t.TempDir(), "missing.sl"))
	assert.Error(err)
}

func TestInterpret(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t, "int a = 250;\nint b = a + 10;\nif (b == 4) { a = 1; }\n")
	out, err := execute("--interpret", path)
	assert.NoError(err)
	assert.Equal("a = 1\nb = 4\n", out)
}

func TestCompileOutputError(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t, "int a = 3;\n")

	_, err := execute("-o", filepath.Join(t.TempDir(), "missing", "out.asm"), path)
	assert.Error(err)

	if _, serr := os.Stat("/dev/full"); serr != nil {
		t.Skip("no /dev/full")
	}
	_, err = execute("-o", "/dev/full", path)
	assert.Error(err)
}

func TestInterpretLongProgram(t *testing.T) {
	assert := assert.New(t)

	var sb strings.Builder
	sb.WriteString("int a = 5;\nint b;\n")
	for range 1100 {
		sb.WriteString("b = b + a;\n")
	}

	path := writeProgram(t, sb.String())
	out, err := execute("--interpret", path)
	assert.NoError(err)
	assert.Equal("a = 5\nb = 124\n", out)
}
