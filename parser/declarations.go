/*
File    : pith/parser/declarations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// parseFuncDef parses `define [TYPE] name(params): body`. Whether a
// return type was written is decided by lookahead: a type annotation is
// present only when the name token is not immediately followed by `(`.
func (p *Parser) parseFuncDef() *ast.Node {
	line := p.advance().Line

	returnType := "void"
	if p.isTypeStart() && p.peekAt(1).Kind == lexer.IDENT && p.peekAt(2).Kind != lexer.LPAREN {
		returnType, _ = p.parseTypeAnnotation()
	} else if p.isTypeStart() {
		// Lookahead heuristic: the token right after the would-be name is
		// `(`, so this is `define TYPE name(...)`.
		save := p.pos
		rt, _ := p.parseTypeAnnotation()
		if p.check(lexer.IDENT) && p.peekAt(1).Kind == lexer.LPAREN {
			returnType = rt
		} else {
			p.pos = save
		}
	}

	name := p.expect(lexer.IDENT)
	p.expect(lexer.LPAREN)

	var params []string
	for !p.check(lexer.RPAREN) && !p.check(lexer.EOF) {
		if p.isTypeStart() {
			p.parseTypeAnnotation()
		}
		params = append(params, p.expect(lexer.IDENT).Value)
		if !p.matchKind(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN)
	body := p.parseSuite()

	node := ast.New(ast.FuncDef, line)
	node.Value = name.Value
	node.TypeName = returnType
	node.Params = params
	return node.Add(body)
}

// parseClassDef parses `class Name [extends Parent]: members`, where
// members are FuncDef (methods, including `init`) and typed field
// declarations folded to FieldDecl nodes.
func (p *Parser) parseClassDef() *ast.Node {
	line := p.advance().Line
	name := p.expect(lexer.IDENT)

	parent := ""
	if p.matchKind(lexer.EXTENDS) {
		parent = p.expect(lexer.IDENT).Value
	}

	p.expect(lexer.COLON)
	node := ast.New(ast.ClassDef, line)
	node.Value = name.Value
	node.ParentClass = parent

	if p.check(lexer.NEWLINE) {
		p.advance()
		p.expect(lexer.INDENT)
		for !p.check(lexer.DEDENT) && !p.check(lexer.EOF) {
			p.skipSeparators()
			if p.check(lexer.DEDENT) || p.check(lexer.EOF) {
				break
			}
			if member := p.parseClassMember(); member != nil {
				node.Add(member)
			}
		}
		p.expect(lexer.DEDENT)
	} else if member := p.parseClassMember(); member != nil {
		node.Add(member)
	}
	return node
}

func (p *Parser) parseClassMember() *ast.Node {
	if p.check(lexer.DEFINE) {
		return p.parseFuncDef()
	}
	if p.isTypeStart() {
		fieldLine := p.cur().Line
		typeName, _ := p.parseTypeAnnotation()
		name := p.expect(lexer.IDENT)
		field := ast.New(ast.FieldDecl, fieldLine)
		field.Value = name.Value
		field.TypeName = typeName
		if p.matchKind(lexer.ASSIGN) {
			field.Add(p.parseExpression())
		}
		return field
	}
	startPos := p.pos
	p.advance()
	if p.pos == startPos {
		p.advance()
	}
	return nil
}
