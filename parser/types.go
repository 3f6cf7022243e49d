/*
File    : pith/parser/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
)

// isTypeStart reports whether the current token can begin a type
// annotation: a built-in type keyword or a user-defined class name used
// as a type (IDENT, for `ClassName instance = ...`).
func (p *Parser) isTypeStart() bool {
	switch p.cur().Kind {
	case lexer.TYPE_INT, lexer.TYPE_STRING, lexer.TYPE_FLOAT, lexer.TYPE_BOOL,
		lexer.TYPE_VOID, lexer.TYPE_LIST, lexer.TYPE_MAP:
		return true
	case lexer.IDENT:
		// A bare identifier only counts as a type if it's immediately
		// followed by another identifier (`Animal a = ...`), distinguishing
		// a declaration from a plain expression statement.
		return p.peekAt(1).Kind == lexer.IDENT
	}
	return false
}

// parseTypeAnnotation parses a type name, an optional `<...>` generic
// argument list (for list/map) and an optional `[size]` array specifier,
// returning the rendered type text and the array-size specifier node (nil
// if none was written).
func (p *Parser) parseTypeAnnotation() (string, *ast.Node) {
	base := p.advance()
	text := base.Value
	if base.Kind == lexer.TYPE_LIST || base.Kind == lexer.TYPE_MAP {
		if p.matchKind(lexer.LT) {
			text += "<"
			inner, _ := p.parseTypeAnnotation()
			text += inner
			if p.matchKind(lexer.COMMA) {
				text += ","
				inner2, _ := p.parseTypeAnnotation()
				text += inner2
			}
			p.expect(lexer.GT)
			text += ">"
		}
	}

	var spec *ast.Node
	if p.check(lexer.LBRACKET) {
		line := p.cur().Line
		p.advance()
		spec = ast.New(ast.ArraySpecifier, line)
		if p.check(lexer.INT) {
			spec.Value = p.advance().Value
		}
		p.expect(lexer.RBRACKET)
		text += "[" + spec.Value + "]"
	}
	return text, spec
}
