/*
File    : pith/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command pith is the Pith language's CLI: bare invocation starts the
// REPL, a single file argument executes it, and `-i <file>` executes
// the file before dropping into the REPL with its globals preserved.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/loader"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/repl"
	"github.com/akashmaji946/go-mix/std"
)

func newInterp() *eval.Interp {
	it := eval.New()
	std.RegisterNativeMethods(it)
	it.Loader = loader.New(std.Modules())
	return it
}

func runFile(it *eval.Interp, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	it.Source = string(src)
	p := parser.New(it.Source)
	program := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", e)
		}
		return fmt.Errorf("parsing %s failed", path)
	}
	if err := it.Run(program); err != nil {
		return fmt.Errorf("%s", eval.FormatError(err, it.Source))
	}
	return nil
}

func main() {
	args := os.Args[1:]

	switch len(args) {
	case 0:
		it := newInterp()
		repl.New(it).Run(os.Stdout)
	case 1:
		it := newInterp()
		if err := runFile(it, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case 2:
		if args[0] != "-i" {
			fmt.Fprintln(os.Stderr, "usage: pith [-i] <file>")
			os.Exit(1)
		}
		it := newInterp()
		if err := runFile(it, args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		repl.New(it).Run(os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, "usage: pith [-i] <file>")
		os.Exit(1)
	}
}
