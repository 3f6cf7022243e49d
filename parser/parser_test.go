package parser

import (
	"testing"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/stretchr/testify/assert"
)

func TestArithmeticPrint(t *testing.T) {
	p := New(`print(2 + 3 * 4)`)
	root := p.Parse()
	assert.Empty(t, p.Errors())
	assert.Equal(t, ast.Program, root.Kind)
	assert.Len(t, root.Children, 1)
	assert.Equal(t, ast.Print, root.Children[0].Kind)

	sum := root.Children[0].Children[0]
	assert.Equal(t, ast.BinaryOp, sum.Kind)
	assert.Equal(t, "+", sum.Value)
	assert.Equal(t, ast.BinaryOp, sum.Children[1].Kind)
	assert.Equal(t, "*", sum.Children[1].Value)
}

func TestClosureDefinitionNesting(t *testing.T) {
	src := "define make():\n    int x = 10\n    define inner():\n        return x\n    return inner\nprint(make()())\n"
	p := New(src)
	root := p.Parse()
	assert.Empty(t, p.Errors())
	assert.Equal(t, ast.FuncDef, root.Children[0].Kind)
	assert.Equal(t, "make", root.Children[0].Value)

	body := root.Children[0].Children[0]
	assert.Equal(t, ast.Block, body.Kind)
	assert.Equal(t, ast.VarDecl, body.Children[0].Kind)
	assert.Equal(t, ast.FuncDef, body.Children[1].Kind)
	assert.Equal(t, "inner", body.Children[1].Value)
	assert.Equal(t, ast.Return, body.Children[2].Kind)
}

func TestClassAndMethod(t *testing.T) {
	src := "class Counter:\n    int n\n    define init(): this.n = 0\n    define bump(): this.n = this.n + 1\n" +
		"Counter c = new Counter()\n" +
		"c.bump(); c.bump(); print(c.n)\n"
	p := New(src)
	root := p.Parse()
	assert.Empty(t, p.Errors())

	classNode := root.Children[0]
	assert.Equal(t, ast.ClassDef, classNode.Kind)
	assert.Equal(t, "Counter", classNode.Value)
	assert.Equal(t, ast.FieldDecl, classNode.Children[0].Kind)
	assert.Equal(t, ast.FuncDef, classNode.Children[1].Kind)
	assert.Equal(t, "init", classNode.Children[1].Value)
	assert.Equal(t, ast.FuncDef, classNode.Children[2].Kind)
	assert.Equal(t, "bump", classNode.Children[2].Value)

	decl := root.Children[1]
	assert.Equal(t, ast.VarDecl, decl.Kind)
	assert.Equal(t, "Counter", decl.TypeName)
	assert.Equal(t, ast.NewExpr, decl.Children[0].Kind)

	// Two bump() calls and a print, all on one semicolon-separated line.
	assert.Equal(t, ast.FuncCall, root.Children[2].Kind)
	assert.Equal(t, ast.FuncCall, root.Children[3].Kind)
	assert.Equal(t, ast.Print, root.Children[4].Kind)
}

func TestForeachOverList(t *testing.T) {
	p := New(`foreach (int v in [1,2,3]): print(v)`)
	root := p.Parse()
	assert.Empty(t, p.Errors())

	fe := root.Children[0]
	assert.Equal(t, ast.Foreach, fe.Kind)
	assert.Equal(t, "v", fe.Value)
	assert.Equal(t, "int", fe.TypeName)
	assert.Equal(t, ast.ListLiteral, fe.Children[0].Kind)
	assert.Len(t, fe.Children[0].Children, 3)
	assert.Equal(t, ast.Block, fe.Children[1].Kind)
	assert.Equal(t, ast.Print, fe.Children[1].Children[0].Kind)
}

// TestSwitchWithBreak exercises a single-line switch whose
// `break` sits after case 2's one-statement body, with nothing left to
// attach to but the switch itself.
func TestSwitchWithBreak(t *testing.T) {
	src := `switch(2): case 1: print("a") case 2: print("b") break default: print("d")`
	p := New(src)
	root := p.Parse()
	assert.Empty(t, p.Errors())

	sw := root.Children[0]
	assert.Equal(t, ast.Switch, sw.Kind)

	var kinds []ast.Kind
	for _, c := range sw.Children[1:] {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ast.Kind{ast.Case, ast.Case, ast.Break, ast.Default}, kinds)

	case2 := sw.Children[2]
	assert.Equal(t, ast.Case, case2.Kind)
	body := case2.Children[1]
	assert.Len(t, body.Children, 1, "case 2's inline suite should hold only print(\"b\"), leaving break as a switch-level sibling")
}

func TestStringMethodChain(t *testing.T) {
	p := New(`print("  hi ".trim().split(" ").len())`)
	root := p.Parse()
	assert.Empty(t, p.Errors())

	call := root.Children[0].Children[0]
	assert.Equal(t, ast.FuncCall, call.Kind) // .len()
	lenTarget := call.Children[0]
	assert.Equal(t, ast.FieldAccess, lenTarget.Kind)
	assert.Equal(t, "len", lenTarget.Value)
}

func TestIfElifElseChain(t *testing.T) {
	src := "if (1 == 1):\n    print(1)\nelif (2 == 2):\n    print(2)\nelse:\n    print(3)\n"
	p := New(src)
	root := p.Parse()
	assert.Empty(t, p.Errors())

	ifNode := root.Children[0]
	assert.Equal(t, ast.If, ifNode.Kind)
	assert.Len(t, ifNode.Children, 3)
	elifNode := ifNode.Children[2]
	assert.Equal(t, ast.If, elifNode.Kind)
	assert.Len(t, elifNode.Children, 3) // cond, then, else
}

func TestTypedMapDeclaration(t *testing.T) {
	p := New(`map<string,int> ages = {"a": 1}`)
	root := p.Parse()
	assert.Empty(t, p.Errors())
	decl := root.Children[0]
	assert.Equal(t, ast.VarDecl, decl.Kind)
	assert.Equal(t, "map<string,int>", decl.TypeName)
	assert.Equal(t, ast.MapLiteral, decl.Children[0].Kind)
}

func TestFixedSizeListDeclaration(t *testing.T) {
	p := New(`list<int>[3] fixed = [1,2,3]`)
	root := p.Parse()
	assert.Empty(t, p.Errors())
	decl := root.Children[0]
	assert.Equal(t, "list<int>[3]", decl.TypeName)
	assert.Equal(t, ast.ArraySpecifier, decl.Children[0].Kind)
	assert.Equal(t, "3", decl.Children[0].Value)
}

func TestOperatorPrecedenceAndPowerLeftAssoc(t *testing.T) {
	p := New(`print(2 + 3 * 2 ^ 3 ^ 1)`)
	root := p.Parse()
	assert.Empty(t, p.Errors())
	top := root.Children[0].Children[0]
	assert.Equal(t, "+", top.Value)
	mul := top.Children[1]
	assert.Equal(t, "*", mul.Value)
	pow := mul.Children[1]
	assert.Equal(t, "^", pow.Value)
	// Left side of the outer ^ should itself be another ^ node (left assoc).
	assert.Equal(t, ast.BinaryOp, pow.Children[0].Kind)
	assert.Equal(t, "^", pow.Children[0].Value)
}
