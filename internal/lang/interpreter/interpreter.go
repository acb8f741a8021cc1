// Package interpreter evaluates FilipeX syntax trees.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/hc12r/filipeX/internal/lang/ast"
	"github.com/hc12r/filipeX/internal/lang/object"
)

// ErrorKind classifies a runtime error.
type ErrorKind string

const (
	TypeError     ErrorKind = "TypeError"
	NameError     ErrorKind = "NameError"
	ValueError    ErrorKind = "ValueError"
	ArgumentError ErrorKind = "ArgumentError"
)

// RuntimeError is a FilipeX evaluation failure. Evaluation stops at the
// first one.
type RuntimeError struct {
	Kind ErrorKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func errorf(kind ErrorKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Options configures an Interpreter.
type Options struct {
	// Out receives print output. Defaults to os.Stdout.
	Out io.Writer
	// Exit handles the exit builtin. Defaults to os.Exit.
	Exit func(int)
}

// Interpreter holds the global environment and evaluates programs
// against it. A REPL reuses one Interpreter across lines.
type Interpreter struct {
	env  *object.Environment
	out  io.Writer
	exit func(int)
}

// New builds an Interpreter with builtins registered in the global scope.
func New(opts Options) *Interpreter {
	i := &Interpreter{
		env:  object.NewEnvironment(object.GlobalScope, nil),
		out:  opts.Out,
		exit: opts.Exit,
	}
	if i.out == nil {
		i.out = os.Stdout
	}
	if i.exit == nil {
		i.exit = os.Exit
	}
	i.registerBuiltins()
	return i
}

// Eval runs a program, returning the value of its last statement.
func (i *Interpreter) Eval(program ast.Program) (object.Object, error) {
	var result object.Object = object.NullValue
	for _, stmt := range program {
		obj, err := i.evalStmt(stmt, i.env)
		if err != nil {
			return nil, err
		}
		if ret, ok := obj.(*object.ReturnValue); ok {
			return ret.Value, nil
		}
		if obj != nil {
			result = obj
		}
	}
	return result, nil
}

func (i *Interpreter) evalStmt(stmt ast.Stmt, env *object.Environment) (object.Object, error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return nil, i.evalLet(s, env)
	case *ast.FuncStmt:
		return nil, i.evalFuncDef(s, env)
	case *ast.ReturnStmt:
		return i.evalReturn(s, env)
	case *ast.IfStmt:
		return i.evalIf(s, env)
	case *ast.ForStmt:
		return i.evalFor(s, env)
	case *ast.ExprStmt:
		return i.evalExpr(s.Value, env)
	default:
		return nil, errorf(TypeError, "unsupported statement %T", stmt)
	}
}

func (i *Interpreter) evalLet(s *ast.LetStmt, env *object.Environment) error {
	value, err := i.evalExpr(s.Value, env)
	if err != nil {
		return err
	}

	typ := object.TypeOf(value)
	if s.Type != nil {
		declared := object.AnnotationType(*s.Type)
		if declared != typ {
			return errorf(TypeError,
				"'%s' is declared with type '%s' but value is of type '%s'", s.Name, declared, typ)
		}
		typ = declared
	}

	if !env.Define(s.Name, value, typ, true) {
		return errorf(NameError, "'%s' is already declared", s.Name)
	}
	return nil
}

func (i *Interpreter) evalFuncDef(s *ast.FuncStmt, env *object.Environment) error {
	fn := &object.Function{
		Name:       s.Name,
		Params:     s.Params,
		ReturnType: s.ReturnType,
		Body:       s.Body,
		Env:        env,
	}
	if !env.Define(s.Name, fn, object.FunctionType, false) {
		return errorf(NameError, "'%s' is already declared", s.Name)
	}
	return nil
}

func (i *Interpreter) evalReturn(s *ast.ReturnStmt, env *object.Environment) (object.Object, error) {
	if s.Value == nil {
		return &object.ReturnValue{Value: object.NullValue}, nil
	}
	value, err := i.evalExpr(s.Value, env)
	if err != nil {
		return nil, err
	}
	return &object.ReturnValue{Value: value}, nil
}

func (i *Interpreter) evalIf(s *ast.IfStmt, env *object.Environment) (object.Object, error) {
	cond, err := i.evalExpr(s.Condition, env)
	if err != nil {
		return nil, err
	}

	if isTruthy(cond) {
		return i.evalBlock(s.Consequence, object.NewEnvironment(object.BranchScope, env))
	}
	if s.Alternative != nil {
		return i.evalBlock(s.Alternative, object.NewEnvironment(object.BranchScope, env))
	}
	return nil, nil
}

func (i *Interpreter) evalFor(s *ast.ForStmt, env *object.Environment) (object.Object, error) {
	iterable, err := i.evalExpr(s.Iterable, env)
	if err != nil {
		return nil, err
	}

	rng, ok := iterable.(*object.Range)
	if !ok {
		return nil, errorf(TypeError, "for loop works only with range")
	}
	if rng.Step == 0 {
		return nil, errorf(ValueError, "range step must not be zero")
	}

	scope := object.NewEnvironment(object.LoopScope, env)
	scope.Define(s.Cursor, &object.Integer{Value: rng.Start}, object.IntType, true)

	for v := rng.Start; keepIterating(v, rng.End, rng.Step); v += rng.Step {
		scope.Assign(s.Cursor, &object.Integer{Value: v})
		// fresh scope per iteration so body-level declarations reset
		result, err := i.evalBlock(s.Body, object.NewEnvironment(object.LoopScope, scope))
		if err != nil {
			return nil, err
		}
		if ret, ok := result.(*object.ReturnValue); ok {
			return ret, nil
		}
	}
	return nil, nil
}

func keepIterating(v, end, step int64) bool {
	if step > 0 {
		return v < end
	}
	return v > end
}

// evalBlock keeps return values wrapped so they propagate to the
// enclosing function boundary.
func (i *Interpreter) evalBlock(block ast.BlockStmt, env *object.Environment) (object.Object, error) {
	var result object.Object
	for _, stmt := range block {
		obj, err := i.evalStmt(stmt, env)
		if err != nil {
			return nil, err
		}
		if ret, ok := obj.(*object.ReturnValue); ok {
			return ret, nil
		}
		result = obj
	}
	return result, nil
}

func (i *Interpreter) evalExpr(expr ast.Expr, env *object.Environment) (object.Object, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return &object.Integer{Value: e.Value}, nil
	case *ast.FloatLiteral:
		return &object.Float{Value: e.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: e.Value}, nil
	case *ast.ArrayLiteral:
		return i.evalArray(e, env)
	case *ast.Identifier:
		b, ok := env.Resolve(e.Name)
		if !ok {
			return nil, errorf(NameError, "'%s' is not declared", e.Name)
		}
		return b.Value, nil
	case *ast.PrefixExpr:
		return i.evalPrefix(e, env)
	case *ast.PostfixExpr:
		return i.evalPostfix(e, env)
	case *ast.InfixExpr:
		return i.evalInfix(e, env)
	case *ast.AssignExpr:
		return i.evalAssign(e, env)
	case *ast.CallExpr:
		return i.evalCall(e, env)
	default:
		return nil, errorf(TypeError, "unsupported expression %T", expr)
	}
}

func (i *Interpreter) evalArray(e *ast.ArrayLiteral, env *object.Environment) (object.Object, error) {
	arr := &object.Array{ElemType: object.NullType}
	for _, el := range e.Elements {
		value, err := i.evalExpr(el, env)
		if err != nil {
			return nil, err
		}
		typ := object.TypeOf(value)
		if len(arr.Elements) == 0 {
			arr.ElemType = typ
		} else if typ != arr.ElemType {
			return nil, errorf(TypeError,
				"array elements must share a type, found '%s' and '%s'", arr.ElemType, typ)
		}
		arr.Elements = append(arr.Elements, value)
	}
	return arr, nil
}

func (i *Interpreter) evalPrefix(e *ast.PrefixExpr, env *object.Environment) (object.Object, error) {
	value, err := i.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "!":
		switch v := value.(type) {
		case *object.Null:
			return object.TrueValue, nil
		case *object.Boolean:
			return object.BooleanFor(!v.Value), nil
		default:
			return object.FalseValue, nil
		}
	case "+":
		switch value.(type) {
		case *object.Integer, *object.Float:
			return value, nil
		}
	case "-":
		switch v := value.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}, nil
		case *object.Float:
			return &object.Float{Value: -v.Value}, nil
		}
	}
	return nil, errorf(TypeError, "'%s' prefix is for type number", e.Op)
}

// evalPostfix yields the incremented value without mutating the operand.
func (i *Interpreter) evalPostfix(e *ast.PostfixExpr, env *object.Environment) (object.Object, error) {
	value, err := i.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}

	old, ok := value.(*object.Integer)
	if !ok {
		return nil, errorf(TypeError, "'%s' operation is only allowed for type 'int'", e.Op)
	}
	if e.Op == "++" {
		return &object.Integer{Value: old.Value + 1}, nil
	}
	return &object.Integer{Value: old.Value - 1}, nil
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr, env *object.Environment) (object.Object, error) {
	if !env.Declared(e.Name) {
		return nil, errorf(NameError, "'%s' is not declared", e.Name)
	}
	value, err := i.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}

	binding, _ := env.Resolve(e.Name)
	newType := object.TypeOf(value)
	if binding.Type != newType {
		return nil, errorf(TypeError,
			"can't assign value of type '%s' to value of type '%s'", newType, binding.Type)
	}

	if !env.Assign(e.Name, value) {
		return nil, errorf(NameError, "'%s' is not assignable", e.Name)
	}
	return object.NullValue, nil
}

func (i *Interpreter) evalInfix(e *ast.InfixExpr, env *object.Environment) (object.Object, error) {
	lhs, err := i.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	rhs, err := i.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	if !object.SameType(lhs, rhs) {
		return nil, errorf(TypeError,
			"'%s' operation not allowed between types %s and %s",
			e.Op, object.TypeOf(lhs), object.TypeOf(rhs))
	}

	switch l := lhs.(type) {
	case *object.Integer:
		return i.evalIntInfix(l.Value, e.Op, rhs.(*object.Integer).Value)
	case *object.Float:
		return i.evalFloatInfix(l.Value, e.Op, rhs.(*object.Float).Value)
	case *object.String:
		return i.evalStringInfix(l.Value, e.Op, rhs.(*object.String).Value)
	case *object.Boolean:
		return i.evalBooleanInfix(l.Value, e.Op, rhs.(*object.Boolean).Value)
	default:
		return nil, errorf(TypeError,
			"'%s' operation not implemented for type %s", e.Op, object.TypeOf(lhs))
	}
}

func (i *Interpreter) evalIntInfix(lhs int64, op string, rhs int64) (object.Object, error) {
	switch op {
	case "+":
		return &object.Integer{Value: lhs + rhs}, nil
	case "-":
		return &object.Integer{Value: lhs - rhs}, nil
	case "*":
		return &object.Integer{Value: lhs * rhs}, nil
	case "/":
		if rhs == 0 {
			return nil, errorf(ValueError, "division by zero")
		}
		return &object.Integer{Value: lhs / rhs}, nil
	case "%":
		if rhs == 0 {
			return nil, errorf(ValueError, "division by zero")
		}
		return &object.Integer{Value: lhs % rhs}, nil
	case "==":
		return object.BooleanFor(lhs == rhs), nil
	case "!=":
		return object.BooleanFor(lhs != rhs), nil
	case "<":
		return object.BooleanFor(lhs < rhs), nil
	case "<=":
		return object.BooleanFor(lhs <= rhs), nil
	case ">":
		return object.BooleanFor(lhs > rhs), nil
	case ">=":
		return object.BooleanFor(lhs >= rhs), nil
	}
	return nil, errorf(TypeError, "'%s' operation not implemented for type int", op)
}

func (i *Interpreter) evalFloatInfix(lhs float64, op string, rhs float64) (object.Object, error) {
	switch op {
	case "+":
		return &object.Float{Value: lhs + rhs}, nil
	case "-":
		return &object.Float{Value: lhs - rhs}, nil
	case "*":
		return &object.Float{Value: lhs * rhs}, nil
	case "/":
		if rhs == 0 {
			return nil, errorf(ValueError, "division by zero")
		}
		return &object.Float{Value: lhs / rhs}, nil
	case "==":
		return object.BooleanFor(lhs == rhs), nil
	case "!=":
		return object.BooleanFor(lhs != rhs), nil
	case "<":
		return object.BooleanFor(lhs < rhs), nil
	case "<=":
		return object.BooleanFor(lhs <= rhs), nil
	case ">":
		return object.BooleanFor(lhs > rhs), nil
	case ">=":
		return object.BooleanFor(lhs >= rhs), nil
	}
	return nil, errorf(TypeError, "'%s' operation not implemented for type float", op)
}

func (i *Interpreter) evalStringInfix(lhs, op, rhs string) (object.Object, error) {
	switch op {
	case "+":
		return &object.String{Value: lhs + rhs}, nil
	case "==":
		return object.BooleanFor(lhs == rhs), nil
	case "!=":
		return object.BooleanFor(lhs != rhs), nil
	}
	return nil, errorf(TypeError, "'%s' operation not implemented for type string", op)
}

func (i *Interpreter) evalBooleanInfix(lhs bool, op string, rhs bool) (object.Object, error) {
	switch op {
	case "==":
		return object.BooleanFor(lhs == rhs), nil
	case "!=":
		return object.BooleanFor(lhs != rhs), nil
	}
	return nil, errorf(TypeError, "'%s' operation not implemented for type boolean", op)
}

func (i *Interpreter) evalCall(e *ast.CallExpr, env *object.Environment) (object.Object, error) {
	callee, err := i.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]object.Object, 0, len(e.Args))
	for _, arg := range e.Args {
		value, err := i.evalExpr(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	switch fn := callee.(type) {
	case *object.Builtin:
		return fn.Fn(args)
	case *object.Function:
		return i.applyFunction(fn, args)
	default:
		return nil, errorf(TypeError, "'%s' is not callable", e.Callee.String())
	}
}

func (i *Interpreter) applyFunction(fn *object.Function, args []object.Object) (object.Object, error) {
	if len(args) != len(fn.Params) {
		return nil, errorf(ArgumentError,
			"'%s' expects %d args but %d were provided", fn.Name, len(fn.Params), len(args))
	}

	scope := object.NewEnvironment(object.FunctionScope, fn.Env)
	for idx, param := range fn.Params {
		want := object.AnnotationType(param.Type)
		got := object.TypeOf(args[idx])
		if want != got {
			return nil, errorf(TypeError,
				"param '%s' of '%s' expects type '%s' but got '%s'", param.Name, fn.Name, want, got)
		}
		scope.Define(param.Name, args[idx], want, true)
	}

	result, err := i.evalBlock(fn.Body, scope)
	if err != nil {
		return nil, err
	}

	var value object.Object = object.NullValue
	if ret, ok := result.(*object.ReturnValue); ok {
		value = ret.Value
	}

	declared := object.AnnotationType(fn.ReturnType)
	got := object.TypeOf(value)
	if declared == object.VoidType {
		if got != object.NullType {
			return nil, errorf(TypeError,
				"'%s' is declared to return 'void' but returned '%s'", fn.Name, got)
		}
		return object.NullValue, nil
	}
	if got != declared {
		return nil, errorf(TypeError,
			"'%s' should return '%s' but returned '%s'", fn.Name, declared, got)
	}
	return value, nil
}

func isTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return v.Value
	case *object.Integer:
		return v.Value != 0
	case *object.Float:
		return v.Value != 0
	default:
		return true
	}
}
