/*
File    : pith/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the abstract syntax tree produced by the parser.
// Pith's grammar is small and homogeneous enough that every construct
// is represented by one Node type discriminated by Kind rather than by
// a family of Go types implementing a common interface.
package ast

// Kind discriminates the syntactic role of a Node.
type Kind int

const (
	Program Kind = iota

	IntLiteral
	FloatLiteral
	StringLiteral
	BoolLiteral
	ListLiteral
	MapLiteral
	ArraySpecifier

	VarDecl
	Assignment
	VarRef

	BinaryOp
	UnaryOp

	FuncDef
	FuncCall
	NewExpr
	FieldAccess
	IndexAccess
	FieldDecl
	ClassDef

	Block
	If
	While
	DoWhile
	For
	Foreach
	Switch
	Case
	Default
	Break
	Continue
	Return
	Print
	Import
)

var kindNames = map[Kind]string{
	Program: "Program", IntLiteral: "IntLiteral", FloatLiteral: "FloatLiteral",
	StringLiteral: "StringLiteral", BoolLiteral: "BoolLiteral", ListLiteral: "ListLiteral",
	MapLiteral: "MapLiteral", ArraySpecifier: "ArraySpecifier", VarDecl: "VarDecl",
	Assignment: "Assignment", VarRef: "VarRef", BinaryOp: "BinaryOp", UnaryOp: "UnaryOp",
	FuncDef: "FuncDef", FuncCall: "FuncCall", NewExpr: "NewExpr", FieldAccess: "FieldAccess",
	IndexAccess: "IndexAccess", FieldDecl: "FieldDecl", ClassDef: "ClassDef", Block: "Block",
	If: "If", While: "While", DoWhile: "DoWhile", For: "For", Foreach: "Foreach",
	Switch: "Switch", Case: "Case", Default: "Default", Break: "Break", Continue: "Continue",
	Return: "Return", Print: "Print", Import: "Import",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a single AST node. Not every field is meaningful for every
// Kind; see the parser for which fields each production populates.
//
//   - Value: identifier/literal text, or an operator spelling for
//     BinaryOp/UnaryOp.
//   - TypeName: the declared type annotation on a VarDecl/FuncDef/FieldDecl.
//   - ParentClass: the `extends` target of a ClassDef, empty otherwise.
//   - Children: ordered child nodes (statements in a block, operands of an
//     expression, branches of an if, etc).
//   - Params: ordered parameter names for a FuncDef.
//   - Line: 1-indexed source line, for diagnostics.
type Node struct {
	Kind        Kind
	Value       string
	TypeName    string
	ParentClass string
	Children    []*Node
	Params      []string
	Line        int
}

// New creates a bare Node of the given kind at the given line.
func New(kind Kind, line int) *Node {
	return &Node{Kind: kind, Line: line}
}

// Add appends children to the node in order and returns the node, to
// allow fluent construction in the parser.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}
