// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package pipeline drives the external simpleLang build-and-run toolchain.
//
// A run executes three steps in strict sequence:
//
//  1. compile: the simpleLang compiler, run in the build directory, with its
//     standard output redirected to the assembly artifact.
//  2. assemble: the 8bit-computer assembler script, run in the dependency
//     directory, reading the assembly artifact and writing the memory listing.
//  3. build: "make clean && make run" in the dependency directory.
//
// Each invocation carries its own working directory; the process working
// directory is never changed. Only Required steps stop the run when they
// fail; the remaining steps are recorded as skipped.
package pipeline
