package parser

import (
	"testing"

	"github.com/hc12r/filipeX/internal/lang/ast"
	"github.com/hc12r/filipeX/internal/lang/lexer"
)

func parse(t *testing.T, input string) ast.Program {
	t.Helper()
	program, err := New(lexer.New(input)).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return program
}

func TestLetStatements(t *testing.T) {
	program := parse(t, "let x: int = 5\nlet name = \"filipe\"")
	if len(program) != 2 {
		t.Fatalf("got %d statements, want 2", len(program))
	}

	first, ok := program[0].(*ast.LetStmt)
	if !ok {
		t.Fatalf("statement 0 is %T", program[0])
	}
	if first.Name != "x" || first.Type == nil || *first.Type != ast.TypeInt {
		t.Fatalf("let statement = %s", first.String())
	}

	second := program[1].(*ast.LetStmt)
	if second.Name != "name" || second.Type != nil {
		t.Fatalf("let statement = %s", second.String())
	}
	if _, ok := second.Value.(*ast.StringLiteral); !ok {
		t.Fatalf("value is %T", second.Value)
	}
}

func TestFuncStatement(t *testing.T) {
	program := parse(t, "func add(x: int, y: int) -> int { return x + y }")
	fn, ok := program[0].(*ast.FuncStmt)
	if !ok {
		t.Fatalf("statement is %T", program[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 || fn.ReturnType != ast.TypeInt {
		t.Fatalf("func = %s", fn.String())
	}
	if fn.Params[0].Name != "x" || fn.Params[0].Type != ast.TypeInt {
		t.Fatalf("param = %+v", fn.Params[0])
	}
	if len(fn.Body) != 1 {
		t.Fatalf("body has %d statements", len(fn.Body))
	}
}

func TestFuncDefaultsToVoid(t *testing.T) {
	program := parse(t, "func greet(who: string) { print(who) }")
	fn := program[0].(*ast.FuncStmt)
	if fn.ReturnType != ast.TypeVoid {
		t.Fatalf("return type = %s, want void", fn.ReturnType)
	}
}

func TestForStatement(t *testing.T) {
	program := parse(t, "for i in range(0, 10, 2) { print(i) }")
	loop, ok := program[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("statement is %T", program[0])
	}
	if loop.Cursor != "i" {
		t.Fatalf("cursor = %q", loop.Cursor)
	}
	callExpr, ok := loop.Iterable.(*ast.CallExpr)
	if !ok || len(callExpr.Args) != 3 {
		t.Fatalf("iterable = %s", loop.Iterable.String())
	}
}

func TestIfElseChain(t *testing.T) {
	program := parse(t, "if x < 0 { print(0) } else if x == 0 { print(1) } else { print(2) }")
	cond, ok := program[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement is %T", program[0])
	}
	if cond.Alternative == nil {
		t.Fatal("missing alternative")
	}
	nested, ok := cond.Alternative[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("alternative head is %T", cond.Alternative[0])
	}
	if nested.Alternative == nil {
		t.Fatal("missing final else")
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-a * b", "((-a) * b)"},
		{"!ok == false", "((!ok) == false)"},
		{"a + b % c", "(a + (b % c))"},
		{"a < b == c < d", "((a < b) == (c < d))"},
		{"x++ + 1", "((x++) + 1)"},
	}

	for _, tt := range tests {
		program := parse(t, tt.input)
		if got := program[0].String(); got != tt.want {
			t.Errorf("%q parsed as %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAssignExpression(t *testing.T) {
	program := parse(t, "x = y + 1")
	stmt := program[0].(*ast.ExprStmt)
	asg, ok := stmt.Value.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expression is %T", stmt.Value)
	}
	if asg.Name != "x" {
		t.Fatalf("target = %q", asg.Name)
	}
}

func TestArrayLiteral(t *testing.T) {
	program := parse(t, `let xs: array = [1, 2, 3]`)
	let := program[0].(*ast.LetStmt)
	arr, ok := let.Value.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("value is %T", let.Value)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("got %d elements", len(arr.Elements))
	}
}

func TestReturnWithoutValue(t *testing.T) {
	program := parse(t, "func stop() { return }")
	fn := program[0].(*ast.FuncStmt)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("body statement is %T", fn.Body[0])
	}
	if ret.Value != nil {
		t.Fatalf("return value = %s", ret.Value.String())
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []string{
		"let = 5",
		"let x: unknowntype = 5",
		"func (x: int) { }",
		"for in range(0, 1) { }",
		"1 + = 2",
		"5 = x",
	}
	for _, input := range tests {
		if _, err := New(lexer.New(input)).Parse(); err == nil {
			t.Errorf("%q: expected syntax error", input)
		}
	}
}
