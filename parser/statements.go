/*
File    : pith/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// parseStatement dispatches on the current token's keyword, falling back
// to a declaration or a bare expression/assignment statement.
func (p *Parser) parseStatement() *ast.Node {
	switch p.cur().Kind {
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.DO:
		return p.parseDoWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.FOREACH:
		return p.parseForeach()
	case lexer.SWITCH:
		return p.parseSwitch()
	case lexer.DEFINE:
		return p.parseFuncDef()
	case lexer.CLASS:
		return p.parseClassDef()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IMPORT:
		return p.parseImport()
	case lexer.BREAK:
		line := p.advance().Line
		return ast.New(ast.Break, line)
	case lexer.CONTINUE:
		line := p.advance().Line
		return ast.New(ast.Continue, line)
	case lexer.PASS:
		p.advance()
		return nil
	}

	if p.isTypeStart() {
		return p.parseVarDecl()
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parsePrint() *ast.Node {
	line := p.advance().Line
	p.expect(lexer.LPAREN)
	node := ast.New(ast.Print, line)
	if !p.check(lexer.RPAREN) {
		node.Add(p.parseExpression())
		for p.matchKind(lexer.COMMA) {
			node.Add(p.parseExpression())
		}
	}
	p.expect(lexer.RPAREN)
	return node
}

func (p *Parser) parseReturn() *ast.Node {
	line := p.advance().Line
	node := ast.New(ast.Return, line)
	if !p.check(lexer.NEWLINE) && !p.check(lexer.SEMI) && !p.check(lexer.DEDENT) && !p.check(lexer.EOF) {
		node.Add(p.parseExpression())
	}
	return node
}

func (p *Parser) parseImport() *ast.Node {
	line := p.advance().Line
	name := p.expect(lexer.IDENT)
	node := ast.New(ast.Import, line)
	node.Value = name.Value
	return node
}

// parseVarDecl parses a typed declaration: TYPE [<inner>|<k,v>] [[size]]
// IDENT ('=' expr)?.
func (p *Parser) parseVarDecl() *ast.Node {
	line := p.cur().Line
	typeName, spec := p.parseTypeAnnotation()
	name := p.expect(lexer.IDENT)

	node := ast.New(ast.VarDecl, line)
	node.TypeName = typeName
	node.Value = name.Value
	if spec != nil {
		node.Add(spec)
	}
	if p.matchKind(lexer.ASSIGN) {
		node.Add(p.parseExpression())
	}
	return node
}

// parseExpressionStatement parses either a bare expression or an
// assignment to an lvalue (identifier, field access or index access).
func (p *Parser) parseExpressionStatement() *ast.Node {
	line := p.cur().Line
	expr := p.parseExpression()
	if p.matchKind(lexer.ASSIGN) {
		rhs := p.parseExpression()
		assign := ast.New(ast.Assignment, line)
		assign.Add(expr, rhs)
		return assign
	}
	return expr
}

func (p *Parser) parseIf() *ast.Node {
	line := p.advance().Line
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	thenBlock := p.parseSuite()

	node := ast.New(ast.If, line)
	node.Add(cond, thenBlock)

	if p.check(lexer.ELIF) {
		node.Add(p.parseElif())
	} else if p.matchKind(lexer.ELSE) {
		node.Add(p.parseSuite())
	}
	return node
}

// parseElif parses an `elif` clause as a nested If node, so that an
// if/elif/.../else chain right-associates the way a cascaded if/else would.
func (p *Parser) parseElif() *ast.Node {
	line := p.advance().Line
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	thenBlock := p.parseSuite()

	node := ast.New(ast.If, line)
	node.Add(cond, thenBlock)
	if p.check(lexer.ELIF) {
		node.Add(p.parseElif())
	} else if p.matchKind(lexer.ELSE) {
		node.Add(p.parseSuite())
	}
	return node
}

func (p *Parser) parseWhile() *ast.Node {
	line := p.advance().Line
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	body := p.parseSuite()
	node := ast.New(ast.While, line)
	return node.Add(cond, body)
}

// parseDoWhile parses `do: <body> while(<cond>)`.
func (p *Parser) parseDoWhile() *ast.Node {
	line := p.advance().Line
	body := p.parseSuite()
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	node := ast.New(ast.DoWhile, line)
	return node.Add(body, cond)
}

// parseFor parses a C-style `for(init; cond; step): body`. Each clause
// may be empty.
func (p *Parser) parseFor() *ast.Node {
	line := p.advance().Line
	p.expect(lexer.LPAREN)

	var init *ast.Node
	if !p.check(lexer.SEMI) {
		if p.isTypeStart() {
			init = p.parseVarDecl()
		} else {
			init = p.parseExpressionStatement()
		}
	}
	p.expect(lexer.SEMI)

	var cond *ast.Node
	if !p.check(lexer.SEMI) {
		cond = p.parseExpression()
	}
	p.expect(lexer.SEMI)

	var step *ast.Node
	if !p.check(lexer.RPAREN) {
		step = p.parseExpressionStatement()
	}
	p.expect(lexer.RPAREN)
	body := p.parseSuite()

	node := ast.New(ast.For, line)
	nilBlock := func(n *ast.Node) *ast.Node {
		if n == nil {
			return ast.New(ast.Block, line)
		}
		return n
	}
	return node.Add(nilBlock(init), nilBlock(cond), body, nilBlock(step))
}

// parseForeach parses `foreach(TYPE name in expr): body`.
func (p *Parser) parseForeach() *ast.Node {
	line := p.advance().Line
	p.expect(lexer.LPAREN)

	var elemType string
	if p.isTypeStart() {
		elemType, _ = p.parseTypeAnnotation()
	}
	name := p.expect(lexer.IDENT)
	p.expect(lexer.IN)
	iterable := p.parseExpression()
	p.expect(lexer.RPAREN)
	body := p.parseSuite()

	node := ast.New(ast.Foreach, line)
	node.Value = name.Value
	node.TypeName = elemType
	return node.Add(iterable, body)
}
