/*
File    : pith/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(src)
	program := p.Parse()
	assert.Empty(t, p.Errors())

	it := New()
	var out bytes.Buffer
	it.Stdout = &out
	assert.NoError(t, it.Run(program))
	return out.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	assert.Equal(t, "14\n", run(t, `print(2 + 3 * 4)`))
}

func TestClosureCaptureSurvivesOuterScopeExit(t *testing.T) {
	src := "define make():\n" +
		"    int x = 10\n" +
		"    define inner():\n" +
		"        return x\n" +
		"    return inner\n" +
		"print(make()())\n"
	assert.Equal(t, "10\n", run(t, src))
}

func TestInstanceFieldIsolationBetweenInstances(t *testing.T) {
	src := "class Box:\n" +
		"    int value\n" +
		"    define init(int v):\n" +
		"        this.value = v\n" +
		"Box a = new Box(1)\n" +
		"Box b = new Box(2)\n" +
		"print(a.value)\n" +
		"print(b.value)\n"
	out := run(t, src)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"1", "2"}, lines)
}

func TestSwitchFallsThroughUntilBreak(t *testing.T) {
	src := "int n = 2\n" +
		"switch(n): case 1: print(\"a\") case 2: print(\"b\") break default: print(\"d\")\n"
	assert.Equal(t, "b\n", run(t, src))
}

func TestWhileLoopAccumulates(t *testing.T) {
	src := "int i = 0\n" +
		"int total = 0\n" +
		"while(i < 5):\n" +
		"    total = total + i\n" +
		"    i = i + 1\n" +
		"print(total)\n"
	assert.Equal(t, "10\n", run(t, src))
}

func TestPowerIsLeftAssociative(t *testing.T) {
	// 2^3^2 == (2^3)^2 == 64, not 2^(3^2) == 512.
	assert.Equal(t, "64\n", run(t, `print(2 ^ 3 ^ 2)`))
}

// runErr mirrors run but returns the execution error instead of asserting
// its absence, for scenarios a declared type guard is meant to reject.
func runErr(t *testing.T, src string) error {
	t.Helper()
	p := parser.New(src)
	program := p.Parse()
	assert.Empty(t, p.Errors())

	it := New()
	var out bytes.Buffer
	it.Stdout = &out
	return it.Run(program)
}

func TestTypedMapRejectsMismatchedLiteralValue(t *testing.T) {
	err := runErr(t, `map<string,int> m = {"a": "oops"}`+"\n")
	assert.Error(t, err)
}

func TestFixedListRejectsOversizedLiteral(t *testing.T) {
	err := runErr(t, "list<int>[2] nums = [1, 2, 3]\n")
	assert.Error(t, err)
}
