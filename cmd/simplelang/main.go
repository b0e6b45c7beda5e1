// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// simplelang compiles a simpleLang program to 8bit-computer assembly, or
// interprets it directly.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ezrec/simplelang/codegen"
	"github.com/ezrec/simplelang/internal/logging"
	"github.com/ezrec/simplelang/interp"
	"github.com/ezrec/simplelang/lang"
)

var (
	interpret bool
	output    string
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "simplelang PROGRAM",
	Short: "simpleLang compiler for the 8bit-computer",
	Long: `Compiles PROGRAM to 8bit-computer assembly, written to standard output
or to the file named by --output.

With --interpret the program is run instead, and the final value of every
variable is printed.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		logger, err = logging.New("warn", "console", verbose)
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: compile,
}

func init() {
	rootCmd.Flags().BoolVarP(&interpret, "interpret", "i", false, "Interpret the program instead of compiling it")
	rootCmd.Flags().StringVarP(&output, "output", "o", "-", "Assembly output file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func parse(path string) (prog *lang.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = lang.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

func run(w io.Writer, prog *lang.Program) (err error) {
	in, err := interp.NewInterpreter(prog)
	if err != nil {
		return
	}
	in.Log = logger

	err = in.Run()
	if err != nil {
		return
	}

	for name, value := range in.Variables() {
		fmt.Fprintf(w, "%v = %d\n", name, value)
	}

	logger.Debug("interpreted", zap.Int("ticks", in.Ticks))
	return
}

func compile(cmd *cobra.Command, args []string) (err error) {
	prog, err := parse(args[0])
	if err != nil {
		return
	}

	if interpret {
		err = run(cmd.OutOrStdout(), prog)
		return
	}

	gen := &codegen.Generator{}
	err = gen.Generate(prog)
	if err != nil {
		err = fmt.Errorf("%v: %w", args[0], err)
		return
	}

	if output == "-" {
		_, err = gen.WriteTo(cmd.OutOrStdout())
		return
	}

	err = writeAssembly(output, gen)
	return
}

// writeAssembly writes the generated assembly to a file.
func writeAssembly(path string, gen *codegen.Generator) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = gen.WriteTo(ouf)
	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", rootCmd.Name(), err)
		os.Exit(1)
	}
}
