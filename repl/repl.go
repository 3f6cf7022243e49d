/*
File    : pith/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements Pith's interactive read-eval-print loop: a
primary/continuation prompt pair, multi-line buffering for open
brackets or a trailing `:`, and SIGINT recovery that clears the current
buffer rather than exiting.
*/
package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	errColor    = color.New(color.FgRed)
	valueColor  = color.New(color.FgYellow)
	bannerColor = color.New(color.FgGreen)
)

const (
	primaryPrompt      = "pith > "
	continuationPrompt = "... > "
)

// Repl is one interactive session, holding the interpreter whose global
// environment persists across lines.
type Repl struct {
	Interp *eval.Interp
}

// New creates a Repl around an already-configured interpreter (stdlib
// registries and module loader wired in, optionally with a script's
// global environment preserved for `pith -i`).
func New(it *eval.Interp) *Repl {
	return &Repl{Interp: it}
}

// Run drives the loop until `exit` or EOF.
func (r *Repl) Run(writer io.Writer) {
	bannerColor.Fprintln(writer, "Pith interactive shell — type 'exit' to quit.")

	rl, err := readline.New(primaryPrompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var buf strings.Builder
	for {
		if buf.Len() > 0 {
			rl.SetPrompt(continuationPrompt)
		} else {
			rl.SetPrompt(primaryPrompt)
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			continue
		}
		if err != nil { // EOF or a fatal readline error
			io.WriteString(writer, "\n")
			return
		}

		if buf.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "exit":
				return
			case ".gcstats":
				io.WriteString(writer, r.Interp.Heap.Stats()+"\n")
				continue
			}
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)

		if isIncomplete(buf.String()) {
			continue
		}

		src := buf.String()
		buf.Reset()
		rl.SaveHistory(src)
		r.evalLine(writer, src)
	}
}

// isIncomplete reports an incomplete buffer: unbalanced brackets, or a
// trailing `:` once trailing whitespace is stripped.
func isIncomplete(src string) bool {
	depth := 0
	for _, c := range src {
		switch c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
	}
	if depth > 0 {
		return true
	}
	trimmed := strings.TrimRight(src, " \t\r\n")
	return strings.HasSuffix(trimmed, ":")
}

// evalLine parses and executes one logical (possibly multi-line) input,
// auto-printing the value of a single bare expression statement while a
// sequence of statements prints only what it does explicitly.
func (r *Repl) evalLine(writer io.Writer, src string) {
	defer func() {
		if rec := recover(); rec != nil {
			errColor.Fprintf(writer, "runtime error: %v\n", rec)
		}
	}()

	r.Interp.Source = src
	p := parser.New(src)
	program := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			errColor.Fprintf(writer, "parse error: %s\n", e)
		}
		return
	}

	if len(program.Children) == 1 && isExpressionStatement(program.Children[0]) {
		val, err := r.Interp.Eval(program.Children[0], r.Interp.Global)
		if err != nil {
			errColor.Fprintf(writer, "%s\n", eval.FormatError(err, src))
			return
		}
		if val.Kind != heap.KVoid {
			valueColor.Fprintln(writer, val.String())
		}
		return
	}

	_, err := r.Interp.RunInEnv(program, r.Interp.Global)
	r.Interp.Heap.GlobalEnv = r.Interp.Global.Head
	if err != nil {
		errColor.Fprintf(writer, "%s\n", eval.FormatError(err, src))
	}
}

// isExpressionStatement reports whether node is a bare expression used
// as a statement (as opposed to print/control-flow/declarations, which
// never auto-print their own "result").
func isExpressionStatement(node *ast.Node) bool {
	switch node.Kind {
	case ast.IntLiteral, ast.FloatLiteral, ast.StringLiteral, ast.BoolLiteral,
		ast.VarRef, ast.BinaryOp, ast.UnaryOp, ast.FuncCall, ast.NewExpr,
		ast.FieldAccess, ast.IndexAccess, ast.ListLiteral, ast.MapLiteral:
		return true
	}
	return false
}
