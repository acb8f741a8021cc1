package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hc12r/filipeX/internal/lang/lexer"
	"github.com/hc12r/filipeX/internal/lang/object"
	"github.com/hc12r/filipeX/internal/lang/parser"
)

type testRun struct {
	result object.Object
	out    string
	err    error
}

func run(t *testing.T, input string) testRun {
	t.Helper()
	program, err := parser.New(lexer.New(input)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out bytes.Buffer
	interp := New(Options{Out: &out, Exit: func(int) {}})
	result, evalErr := interp.Eval(program)
	return testRun{result: result, out: out.String(), err: evalErr}
}

func mustInspect(t *testing.T, input, want string) {
	t.Helper()
	r := run(t, input)
	if r.err != nil {
		t.Fatalf("%q: eval error: %v", input, r.err)
	}
	if got := r.result.Inspect(); got != want {
		t.Fatalf("%q evaluated to %q, want %q", input, got, want)
	}
}

func mustFail(t *testing.T, input string, kind ErrorKind, fragment string) {
	t.Helper()
	r := run(t, input)
	if r.err == nil {
		t.Fatalf("%q: expected %s", input, kind)
	}
	var rtErr *RuntimeError
	if !errors.As(r.err, &rtErr) {
		t.Fatalf("%q: error is %T", input, r.err)
	}
	if rtErr.Kind != kind {
		t.Fatalf("%q: kind = %s, want %s (%v)", input, rtErr.Kind, kind, r.err)
	}
	if !strings.Contains(rtErr.Msg, fragment) {
		t.Fatalf("%q: message %q missing %q", input, rtErr.Msg, fragment)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct{ input, want string }{
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"10 % 3", "1"},
		{"7 / 2", "3"},
		{"-5 + 10", "5"},
		{"2.5 * 4.0", "10"},
		{"1 < 2", "true"},
		{"2 <= 1", "false"},
		{"3 == 3", "true"},
		{"3 != 3", "false"},
		{"5--", "4"},
		{"5++", "6"},
	}
	for _, tt := range tests {
		mustInspect(t, tt.input, tt.want)
	}
}

func TestStrings(t *testing.T) {
	mustInspect(t, `"fili" + "pe"`, "filipe")
	mustInspect(t, `"a" == "a"`, "true")
	mustInspect(t, `"a" != "b"`, "true")
	mustFail(t, `"a" * "b"`, TypeError, "not implemented for type string")
}

func TestMixedTypeInfixIsRejected(t *testing.T) {
	mustFail(t, `1 + "a"`, TypeError, "'+' operation not allowed between types int and string")
	mustFail(t, `1 + 2.0`, TypeError, "between types int and float")
}

func TestLetAndAssign(t *testing.T) {
	mustInspect(t, "let x: int = 5 x + 1", "6")
	mustInspect(t, "let x = 5 x = 7 x", "7")
	mustFail(t, "let x: string = 5", TypeError, "'x' is declared with type 'string' but value is of type 'int'")
	mustFail(t, "let x = 1 let x = 2", NameError, "'x' is already declared")
	mustFail(t, "y = 1", NameError, "'y' is not declared")
	mustFail(t, "let x = 1 x = \"a\"", TypeError, "can't assign value of type 'string' to value of type 'int'")
	mustFail(t, "true = false", NameError, "")
}

func TestConstantsAreNotAssignable(t *testing.T) {
	mustFail(t, "null = 1", TypeError, "can't assign")
	mustInspect(t, "!null", "true")
	mustInspect(t, "typeof(null)", "null")
}

func TestIfElse(t *testing.T) {
	mustInspect(t, "if 1 < 2 { 10 } else { 20 }", "10")
	mustInspect(t, "if 1 > 2 { 10 } else { 20 }", "20")
	mustInspect(t, "if 0 { 10 } else { 20 }", "20")
	mustInspect(t, `let x = 5
if x > 10 { "big" } else if x > 3 { "mid" } else { "small" }`, "mid")
}

func TestForLoop(t *testing.T) {
	mustInspect(t, `let total = 0
for i in range(0, 5) {
	total = total + i
}
total`, "10")

	mustInspect(t, `let total = 0
for i in range(0, 10, 2) {
	total = total + i
}
total`, "20")

	mustInspect(t, `let total = 0
for i in range(0, 3) {
	let double = i * 2
	total = total + double
}
total`, "6")

	mustFail(t, `for i in 5 { print(i) }`, TypeError, "for loop works only with range")
	mustFail(t, `for i in range(0, 5, 0) { print(i) }`, ValueError, "step")
}

func TestLoopScopeDoesNotLeak(t *testing.T) {
	mustFail(t, `for i in range(0, 3) { }
i`, NameError, "'i' is not declared")
}

func TestFunctions(t *testing.T) {
	mustInspect(t, `func add(x: int, y: int) -> int { return x + y }
add(2, 3)`, "5")

	mustInspect(t, `func fib(n: int) -> int {
	if n < 2 { return n }
	return fib(n - 1) + fib(n - 2)
}
fib(10)`, "55")

	mustFail(t, `func add(x: int, y: int) -> int { return x + y }
add(1)`, ArgumentError, "'add' expects 2 args but 1 were provided")

	mustFail(t, `func add(x: int, y: int) -> int { return x + y }
add(1, "a")`, TypeError, "param 'y' of 'add' expects type 'int' but got 'string'")

	mustFail(t, `func bad() -> int { return "a" }
bad()`, TypeError, "'bad' should return 'int' but returned 'string'")

	mustFail(t, `func noisy() { return 1 }
noisy()`, TypeError, "declared to return 'void'")
}

func TestReturnStopsBlock(t *testing.T) {
	mustInspect(t, `func first() -> int {
	for i in range(0, 10) {
		if i == 3 { return i }
	}
	return -1
}
first()`, "3")
}

func TestArrays(t *testing.T) {
	mustInspect(t, `[1, 2, 3]`, "[1, 2, 3]")
	mustInspect(t, `len([1, 2, 3])`, "3")
	mustInspect(t, `typeof([1])`, "array")
	mustFail(t, `[1, "a"]`, TypeError, "array elements must share a type")
}

func TestBuiltins(t *testing.T) {
	mustInspect(t, `len("filipe")`, "6")
	mustInspect(t, `typeof(1)`, "int")
	mustInspect(t, `typeof(1.5)`, "float")
	mustInspect(t, `typeof("a")`, "string")
	mustInspect(t, `typeof(true)`, "boolean")
	mustInspect(t, `typeof(range(0, 3))`, "range")
	mustInspect(t, `typeof(len)`, "function")

	mustFail(t, `len(1)`, TypeError, "iterable")
	mustFail(t, `len("a", "b")`, TypeError, "'len' expects 1 arg but 2 were provided")
	mustFail(t, `range(1)`, TypeError, "'range' takes 2 or 3 args")
	mustFail(t, `range("a", "b")`, TypeError, "must be of type int")
	mustFail(t, `random(-1)`, ValueError, "non-negative")
	mustFail(t, `random(5, 2)`, ValueError, "less than or equal")
	mustFail(t, `random(1, 2, 3)`, ArgumentError, "0, 1, or 2 arguments")
}

func TestRandomBounds(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		r := run(t, "random(5)")
		if r.err != nil {
			t.Fatalf("random error: %v", r.err)
		}
		num, ok := r.result.(*object.Integer)
		if !ok {
			t.Fatalf("result is %T", r.result)
		}
		if num.Value < 0 || num.Value > 5 {
			t.Fatalf("random(5) = %d out of bounds", num.Value)
		}
	}

	r := run(t, "random()")
	num, ok := r.result.(*object.Float)
	if !ok {
		t.Fatalf("result is %T", r.result)
	}
	if num.Value < 0 || num.Value >= 1 {
		t.Fatalf("random() = %f out of bounds", num.Value)
	}
}

func TestPrint(t *testing.T) {
	r := run(t, `print("hello, ", "world")
print(1 + 1)`)
	if r.err != nil {
		t.Fatalf("eval error: %v", r.err)
	}
	if r.out != "hello, world\n2\n" {
		t.Fatalf("output = %q", r.out)
	}
}

func TestExit(t *testing.T) {
	var code = -1
	program, err := parser.New(lexer.New("exit(3)")).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	interp := New(Options{Out: &bytes.Buffer{}, Exit: func(c int) { code = c }})
	if _, err := interp.Eval(program); err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
}

func TestDivisionByZero(t *testing.T) {
	mustFail(t, "1 / 0", ValueError, "division by zero")
	mustFail(t, "1 % 0", ValueError, "division by zero")
}

func TestTruthiness(t *testing.T) {
	mustInspect(t, `if "non-empty" { 1 } else { 2 }`, "1")
	mustInspect(t, "if 0.0 { 1 } else { 2 }", "2")
	mustInspect(t, "!false", "true")
	mustInspect(t, "!5", "false")
}

func TestReplStyleSession(t *testing.T) {
	interp := New(Options{Out: &bytes.Buffer{}, Exit: func(int) {}})

	first, err := parser.New(lexer.New("let x = 2")).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := interp.Eval(first); err != nil {
		t.Fatalf("eval error: %v", err)
	}

	second, err := parser.New(lexer.New("x * 21")).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	result, err := interp.Eval(second)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if result.Inspect() != "42" {
		t.Fatalf("result = %s", result.Inspect())
	}
}
