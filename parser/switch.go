/*
File    : pith/parser/switch.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// parseSwitch parses `switch(expr): case expr: suite ... [default: suite]`,
// in either indented or single-line form. Unlike an ordinary block, the
// switch body is walked by a dedicated loop here rather than parseSuite,
// because it must recognise `case`/`default` keywords at the body's own
// level rather than treat the whole body as a single nested statement
// list. A bare `break` written directly in the body (as opposed to one
// nested inside a case's own suite) is kept as a sibling Break node: it
// marks where C-style fallthrough between cases should stop even when an
// entire case clause was written on one line, e.g.
//
//	switch(2): case 1: print("a") case 2: print("b") break default: print("d")
//
// Here `case 2`'s single-line suite consumes only `print("b")`; the
// following `break` has nothing left to attach to syntactically, so it is
// recorded as a direct child of the Switch node and the evaluator treats
// it exactly like a break found at the end of the previously-matched
// case's body.
func (p *Parser) parseSwitch() *ast.Node {
	line := p.advance().Line
	p.expect(lexer.LPAREN)
	scrutinee := p.parseExpression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.COLON)

	node := ast.New(ast.Switch, line)
	node.Add(scrutinee)

	multiline := p.check(lexer.NEWLINE)
	if multiline {
		p.advance()
		p.expect(lexer.INDENT)
	}

	atEnd := func() bool {
		if multiline {
			return p.check(lexer.DEDENT) || p.check(lexer.EOF)
		}
		return p.check(lexer.NEWLINE) || p.check(lexer.SEMI) || p.check(lexer.EOF) || p.check(lexer.DEDENT)
	}

	for !atEnd() {
		switch p.cur().Kind {
		case lexer.CASE:
			node.Add(p.parseCase())
		case lexer.DEFAULT:
			node.Add(p.parseDefault())
		case lexer.BREAK:
			bline := p.advance().Line
			node.Add(ast.New(ast.Break, bline))
		case lexer.NEWLINE, lexer.SEMI:
			p.advance()
		default:
			// Stray token at switch-body level (should not occur in
			// well-formed input): skip it to avoid spinning.
			p.advance()
		}
	}

	if multiline {
		p.expect(lexer.DEDENT)
	}
	return node
}

func (p *Parser) parseCase() *ast.Node {
	line := p.advance().Line
	val := p.parseExpression()
	body := p.parseSuite()
	node := ast.New(ast.Case, line)
	return node.Add(val, body)
}

func (p *Parser) parseDefault() *ast.Node {
	line := p.advance().Line
	body := p.parseSuite()
	node := ast.New(ast.Default, line)
	return node.Add(body)
}
