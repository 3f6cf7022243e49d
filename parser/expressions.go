/*
File    : pith/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// parseExpression is the entry point of the precedence-climbing expression
// parser, starting at the lowest-precedence level (`or`).
func (p *Parser) parseExpression() *ast.Node {
	return p.parseOr()
}

func (p *Parser) parseOr() *ast.Node {
	left := p.parseAnd()
	for p.check(lexer.OR) {
		line := p.advance().Line
		right := p.parseAnd()
		left = binary(line, "or", left, right)
	}
	return left
}

func (p *Parser) parseAnd() *ast.Node {
	left := p.parseEquality()
	for p.check(lexer.AND) {
		line := p.advance().Line
		right := p.parseEquality()
		left = binary(line, "and", left, right)
	}
	return left
}

func (p *Parser) parseEquality() *ast.Node {
	left := p.parseComparison()
	for p.check(lexer.EQ) || p.check(lexer.NEQ) {
		op := p.advance()
		right := p.parseComparison()
		left = binary(op.Line, string(op.Kind), left, right)
	}
	return left
}

func (p *Parser) parseComparison() *ast.Node {
	left := p.parseAdditive()
	for p.check(lexer.GT) || p.check(lexer.GE) || p.check(lexer.LT) || p.check(lexer.LE) {
		op := p.advance()
		right := p.parseAdditive()
		left = binary(op.Line, string(op.Kind), left, right)
	}
	return left
}

func (p *Parser) parseAdditive() *ast.Node {
	left := p.parseMultiplicative()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = binary(op.Line, string(op.Kind), left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() *ast.Node {
	left := p.parsePower()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.PCT) {
		op := p.advance()
		right := p.parsePower()
		left = binary(op.Line, string(op.Kind), left, right)
	}
	return left
}

// parsePower binds tighter than multiplicative and associates to the
// left (`2 ^ 3 ^ 2 == (2 ^ 3) ^ 2`).
func (p *Parser) parsePower() *ast.Node {
	left := p.parseUnary()
	for p.check(lexer.CARET) {
		line := p.advance().Line
		right := p.parseUnary()
		left = binary(line, "^", left, right)
	}
	return left
}

func (p *Parser) parseUnary() *ast.Node {
	if p.check(lexer.MINUS) || p.check(lexer.BANG) {
		op := p.advance()
		operand := p.parseUnary()
		node := ast.New(ast.UnaryOp, op.Line)
		node.Value = string(op.Kind)
		return node.Add(operand)
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of call,
// index and field-access suffixes.
func (p *Parser) parsePostfix() *ast.Node {
	expr := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case lexer.LPAREN:
			expr = p.parseCallSuffix(expr)
		case lexer.LBRACKET:
			line := p.advance().Line
			idx := p.parseExpression()
			p.expect(lexer.RBRACKET)
			node := ast.New(ast.IndexAccess, line)
			expr = node.Add(expr, idx)
		case lexer.DOT:
			line := p.advance().Line
			field := p.expect(lexer.IDENT)
			node := ast.New(ast.FieldAccess, line)
			node.Value = field.Value
			expr = node.Add(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallSuffix(callee *ast.Node) *ast.Node {
	line := p.advance().Line // '('
	node := ast.New(ast.FuncCall, line)
	node.Add(callee)
	if !p.check(lexer.RPAREN) {
		node.Add(p.parseExpression())
		for p.matchKind(lexer.COMMA) {
			node.Add(p.parseExpression())
		}
	}
	p.expect(lexer.RPAREN)
	return node
}

func (p *Parser) parsePrimary() *ast.Node {
	tok := p.cur()
	switch tok.Kind {
	case lexer.INT:
		p.advance()
		n := ast.New(ast.IntLiteral, tok.Line)
		n.Value = tok.Value
		return n
	case lexer.FLOAT:
		p.advance()
		n := ast.New(ast.FloatLiteral, tok.Line)
		n.Value = tok.Value
		return n
	case lexer.STRING:
		p.advance()
		n := ast.New(ast.StringLiteral, tok.Line)
		n.Value = tok.Value
		return n
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		n := ast.New(ast.BoolLiteral, tok.Line)
		n.Value = string(tok.Kind)
		return n
	case lexer.IDENT:
		p.advance()
		n := ast.New(ast.VarRef, tok.Line)
		n.Value = tok.Value
		return n
	case lexer.NEW:
		return p.parseNewExpr()
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RPAREN)
		return inner
	case lexer.LBRACKET:
		return p.parseListLiteral()
	case lexer.LBRACE:
		return p.parseMapLiteral()
	}

	p.errorf("unexpected token %s in expression", tok.Kind)
	p.advance()
	return ast.New(ast.VarRef, tok.Line)
}

func (p *Parser) parseNewExpr() *ast.Node {
	line := p.advance().Line
	className := p.expect(lexer.IDENT)
	node := ast.New(ast.NewExpr, line)
	node.Value = className.Value
	p.expect(lexer.LPAREN)
	if !p.check(lexer.RPAREN) {
		node.Add(p.parseExpression())
		for p.matchKind(lexer.COMMA) {
			node.Add(p.parseExpression())
		}
	}
	p.expect(lexer.RPAREN)
	return node
}

func (p *Parser) parseListLiteral() *ast.Node {
	line := p.advance().Line
	node := ast.New(ast.ListLiteral, line)
	if !p.check(lexer.RBRACKET) {
		node.Add(p.parseExpression())
		for p.matchKind(lexer.COMMA) {
			node.Add(p.parseExpression())
		}
	}
	p.expect(lexer.RBRACKET)
	return node
}

// parseMapLiteral parses `{ key: value, ... }`. Each entry is folded into
// the MapLiteral's Children as an alternating key, value pair.
func (p *Parser) parseMapLiteral() *ast.Node {
	line := p.advance().Line
	node := ast.New(ast.MapLiteral, line)
	if !p.check(lexer.RBRACE) {
		p.parseMapEntry(node)
		for p.matchKind(lexer.COMMA) {
			p.parseMapEntry(node)
		}
	}
	p.expect(lexer.RBRACE)
	return node
}

func (p *Parser) parseMapEntry(node *ast.Node) {
	key := p.parseExpression()
	p.expect(lexer.COLON)
	value := p.parseExpression()
	node.Add(key, value)
}

func binary(line int, op string, left, right *ast.Node) *ast.Node {
	node := ast.New(ast.BinaryOp, line)
	node.Value = op
	return node.Add(left, right)
}
