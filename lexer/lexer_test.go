package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestSimpleStatement(t *testing.T) {
	toks := New(`print(1 + 2)`).Tokenize()
	assert.Equal(t, []TokenKind{PRINT, LPAREN, INT, PLUS, INT, RPAREN, EOF}, kinds(toks))
}

func TestIndentDedentRoundTrip(t *testing.T) {
	src := "if true:\n    print(1)\n    print(2)\nprint(3)\n"
	toks := New(src).Tokenize()

	indents, dedents := 0, 0
	for _, tok := range toks {
		if tok.Kind == INDENT {
			indents++
		}
		if tok.Kind == DEDENT {
			dedents++
		}
	}
	assert.Equal(t, indents, dedents, "layout round-trip: INDENT count must equal DEDENT count")
	assert.Equal(t, 1, indents)
}

func TestNestedDedentsCollapseToOneTokenEach(t *testing.T) {
	src := "if true:\n    if true:\n        print(1)\nprint(2)\n"
	toks := New(src).Tokenize()
	var got []TokenKind
	for _, tok := range toks {
		if tok.Kind == INDENT || tok.Kind == DEDENT {
			got = append(got, tok.Kind)
		}
	}
	assert.Equal(t, []TokenKind{INDENT, INDENT, DEDENT, DEDENT}, got)
}

func TestBlankAndCommentLinesDoNotAffectIndentation(t *testing.T) {
	src := "if true:\n    print(1)\n\n    # a comment\n    print(2)\nprint(3)\n"
	toks := New(src).Tokenize()
	indentCount, dedentCount := 0, 0
	for _, tok := range toks {
		if tok.Kind == INDENT {
			indentCount++
		}
		if tok.Kind == DEDENT {
			dedentCount++
		}
	}
	assert.Equal(t, 1, indentCount)
	assert.Equal(t, 1, dedentCount)
}

func TestStringEscapes(t *testing.T) {
	toks := New(`"a\nb\t\"c\""`).Tokenize()
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\t\"c\"", toks[0].Value)
}

func TestUnterminatedStringTruncatesAtEOF(t *testing.T) {
	toks := New(`"unterminated`).Tokenize()
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "unterminated", toks[0].Value)
	assert.Equal(t, EOF, toks[len(toks)-1].Kind)
}

func TestUnknownEscapePassesThrough(t *testing.T) {
	toks := New(`"a\qb"`).Tokenize()
	assert.Equal(t, "aqb", toks[0].Value)
}

func TestFloatVsInt(t *testing.T) {
	toks := New(`3 3.14`).Tokenize()
	assert.Equal(t, INT, toks[0].Kind)
	assert.Equal(t, FLOAT, toks[1].Kind)
}

func TestBlockComment(t *testing.T) {
	toks := New("### this is\na block comment ###\nprint(1)").Tokenize()
	assert.Equal(t, PRINT, toks[0].Kind)
}

func TestKeywordsAndExtends(t *testing.T) {
	toks := New(`class Dog extends Animal:`).Tokenize()
	assert.Equal(t, []TokenKind{CLASS, IDENT, EXTENDS, IDENT, COLON, EOF}, kinds(toks))
}

func TestImportKeyword(t *testing.T) {
	toks := New(`import math`).Tokenize()
	assert.Equal(t, []TokenKind{IMPORT, IDENT, EOF}, kinds(toks))
}

func TestUnknownCharactersSkippedSilently(t *testing.T) {
	toks := New("a @ b").Tokenize()
	assert.Equal(t, []TokenKind{IDENT, IDENT, EOF}, kinds(toks))
}
