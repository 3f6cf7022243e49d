/*
File    : pith/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements Pith's recursive-descent statement parser and
// Pratt-style precedence-climbing expression parser, turning a lexer
// token stream into an ast.Node tree rooted at ast.Program.
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// Parser holds parsing state: the full token slice (produced eagerly by
// the lexer) and a cursor into it, plus any diagnostics collected along
// the way. Unexpected tokens never abort parsing — the parser advances
// past them and keeps going.
type Parser struct {
	toks   []lexer.Token
	pos    int
	errors []string
}

// New tokenizes src and returns a Parser ready to produce a program AST.
func New(src string) *Parser {
	return &Parser{toks: lexer.New(src).Tokenize()}
}

// Errors returns the parse-time diagnostics collected so far.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind lexer.TokenKind) bool { return p.cur().Kind == kind }

func (p *Parser) matchKind(kind lexer.TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has the given kind; otherwise
// it records a diagnostic and leaves the cursor where it is, so the
// caller's surrounding recovery (skip-and-continue) can make progress.
func (p *Parser) expect(kind lexer.TokenKind) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorf("expected %s, got %s", kind, p.cur().Kind)
	return p.cur()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	line := p.cur().Line
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
}

// skipSeparators advances over any run of NEWLINE/SEMI tokens.
func (p *Parser) skipSeparators() {
	for p.check(lexer.NEWLINE) || p.check(lexer.SEMI) {
		p.advance()
	}
}

// Parse consumes the whole token stream and returns the Program root.
func (p *Parser) Parse() *ast.Node {
	root := ast.New(ast.Program, 1)
	p.skipSeparators()
	for !p.check(lexer.EOF) {
		startPos := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			root.Add(stmt)
		}
		if p.pos == startPos {
			// No progress was made (a production we don't recognise at
			// statement position): skip the offending token so the
			// parser can't spin forever.
			p.advance()
		}
		p.skipSeparators()
	}
	return root
}

// parseSuite parses a `:`-introduced body, in either its indented
// multi-line form (`:` NEWLINE INDENT stmts DEDENT) or its single-line
// form (`:` stmt).
func (p *Parser) parseSuite() *ast.Node {
	line := p.cur().Line
	p.expect(lexer.COLON)
	block := ast.New(ast.Block, line)

	if p.check(lexer.NEWLINE) {
		p.advance()
		p.expect(lexer.INDENT)
		for !p.check(lexer.DEDENT) && !p.check(lexer.EOF) {
			p.skipSeparators()
			if p.check(lexer.DEDENT) || p.check(lexer.EOF) {
				break
			}
			startPos := p.pos
			if stmt := p.parseStatement(); stmt != nil {
				block.Add(stmt)
			}
			if p.pos == startPos {
				p.advance()
			}
		}
		p.expect(lexer.DEDENT)
		return block
	}

	if stmt := p.parseStatement(); stmt != nil {
		block.Add(stmt)
	}
	return block
}
