package pipeline

import (
	"path/filepath"
)

// Default layout, relative to the project root unless noted.
const (
	DefaultBuildDir  = "build"
	DefaultCompiler  = "simpleLang"                       // In the build directory.
	DefaultProgram   = "../example_simpleLang_program.sl" // Relative to the build directory.
	DefaultAssembly  = "temp.asm"                         // In the build directory.
	DefaultDepsDir   = "deps/8bit-computer/8bit-computer"
	DefaultAssembler = "asm/asm.py"  // In the dependency directory.
	DefaultListing   = "memory.list" // In the dependency directory.
	DefaultBuild     = "make clean && make run"
)

// Step names.
const (
	STEP_COMPILE  = "compile"
	STEP_ASSEMBLE = "assemble"
	STEP_BUILD    = "build"
)

// Layout locates the toolchain and its artifacts. All paths are absolute.
type Layout struct {
	Root      string // Project root.
	BuildDir  string // Holds the compiler and the assembly artifact.
	Compiler  string // Compiler executable.
	Program   string // simpleLang source file.
	Assembly  string // Assembly artifact written by the compiler.
	DepsDir   string // 8bit-computer project directory.
	Assembler string // Assembler script.
	Listing   string // Memory listing written by the assembler.
	Build     string // Shell command run in DepsDir.
}

// DefaultLayout returns the standard layout under root.
func DefaultLayout(root string) (layout Layout, err error) {
	root, err = filepath.Abs(root)
	if err != nil {
		return
	}

	build := filepath.Join(root, DefaultBuildDir)
	deps := filepath.Join(root, DefaultDepsDir)

	layout = Layout{
		Root:      root,
		BuildDir:  build,
		Compiler:  filepath.Join(build, DefaultCompiler),
		Program:   filepath.Join(build, DefaultProgram),
		Assembly:  filepath.Join(build, DefaultAssembly),
		DepsDir:   deps,
		Assembler: filepath.Join(deps, DefaultAssembler),
		Listing:   filepath.Join(deps, DefaultListing),
		Build:     DefaultBuild,
	}
	return
}

// relative returns target relative to dir, or target itself when no
// relative path exists.
func relative(dir, target string) string {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return target
	}
	return rel
}

// Steps returns the compile, assemble and build steps for the layout.
//
// Arguments are passed relative to each step's working directory, the way
// the tools expect to see them.
func (layout Layout) Steps() []Step {
	return []Step{
		{
			Name: STEP_COMPILE,
			Command: Command{
				Path:   layout.Compiler,
				Args:   []string{relative(layout.BuildDir, layout.Program)},
				Dir:    layout.BuildDir,
				Stdout: layout.Assembly,
			},
			Required: true,
		},
		{
			Name: STEP_ASSEMBLE,
			Command: Command{
				Path:   layout.Assembler,
				Args:   []string{relative(layout.DepsDir, layout.Assembly)},
				Dir:    layout.DepsDir,
				Stdout: layout.Listing,
			},
			Needs: []string{layout.Assembly},
		},
		{
			Name: STEP_BUILD,
			Command: Command{
				Path: "sh",
				Args: []string{"-c", layout.Build},
				Dir:  layout.DepsDir,
			},
		},
	}
}
