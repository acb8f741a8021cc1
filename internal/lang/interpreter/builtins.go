package interpreter

import (
	"fmt"
	"math/rand"

	"github.com/hc12r/filipeX/internal/lang/object"
)

// registerBuiltins populates the global scope. Builtins and the three
// literal constants are not assignable.
func (i *Interpreter) registerBuiltins() {
	i.defineConst("true", object.TrueValue, object.BooleanType)
	i.defineConst("false", object.FalseValue, object.BooleanType)
	i.defineConst("null", object.NullValue, object.NullType)

	i.defineBuiltin("print", i.builtinPrint)
	i.defineBuiltin("len", builtinLen)
	i.defineBuiltin("typeof", builtinTypeof)
	i.defineBuiltin("range", builtinRange)
	i.defineBuiltin("random", builtinRandom)
	i.defineBuiltin("exit", i.builtinExit)
}

func (i *Interpreter) defineConst(name string, value object.Object, typ object.Type) {
	i.env.Define(name, value, typ, false)
}

func (i *Interpreter) defineBuiltin(name string, fn object.BuiltinFunc) {
	i.env.Define(name, &object.Builtin{Name: name, Fn: fn}, object.FunctionType, false)
}

func (i *Interpreter) builtinPrint(args []object.Object) (object.Object, error) {
	for _, arg := range args {
		fmt.Fprint(i.out, arg.Inspect())
	}
	fmt.Fprintln(i.out)
	return object.NullValue, nil
}

func builtinLen(args []object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, errorf(TypeError, "'len' expects 1 arg but %d were provided", len(args))
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(v.Value))}, nil
	case *object.Array:
		return &object.Integer{Value: int64(len(v.Elements))}, nil
	default:
		return nil, errorf(TypeError, "'len' only accepts iterable types")
	}
}

func builtinTypeof(args []object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, errorf(TypeError, "'typeof' expects 1 arg but %d were provided", len(args))
	}
	return &object.TypeValue{Of: object.TypeOf(args[0])}, nil
}

func builtinRange(args []object.Object) (object.Object, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, errorf(TypeError, "'range' takes 2 or 3 args but %d were provided", len(args))
	}

	values := make([]int64, 0, 3)
	for _, arg := range args {
		num, ok := arg.(*object.Integer)
		if !ok {
			return nil, errorf(TypeError, "args for 'range' must be of type int")
		}
		values = append(values, num.Value)
	}
	if len(values) < 3 {
		values = append(values, 1)
	}
	if values[2] == 0 {
		return nil, errorf(ValueError, "range step must not be zero")
	}

	return &object.Range{Start: values[0], End: values[1], Step: values[2]}, nil
}

func builtinRandom(args []object.Object) (object.Object, error) {
	switch len(args) {
	case 0:
		return &object.Float{Value: rand.Float64()}, nil
	case 1:
		max, ok := args[0].(*object.Integer)
		if !ok {
			return nil, errorf(TypeError, "'random' expects an integer argument")
		}
		if max.Value < 0 {
			return nil, errorf(ValueError, "argument for 'random' must be a non-negative integer")
		}
		return &object.Integer{Value: rand.Int63n(max.Value + 1)}, nil
	case 2:
		min, okMin := args[0].(*object.Integer)
		max, okMax := args[1].(*object.Integer)
		if !okMin || !okMax {
			return nil, errorf(TypeError, "'random' expects two integer arguments")
		}
		if min.Value < 0 || max.Value < 0 {
			return nil, errorf(ValueError, "arguments for 'random' must be non-negative integers")
		}
		if min.Value > max.Value {
			return nil, errorf(ValueError,
				"the first argument for 'random' must be less than or equal to the second argument")
		}
		return &object.Integer{Value: min.Value + rand.Int63n(max.Value-min.Value+1)}, nil
	default:
		return nil, errorf(ArgumentError, "'random' expects 0, 1, or 2 arguments")
	}
}

func (i *Interpreter) builtinExit(args []object.Object) (object.Object, error) {
	if len(args) == 0 {
		i.exit(0)
		return object.NullValue, nil
	}
	if len(args) != 1 {
		return nil, errorf(ArgumentError,
			"'exit' expects 0 or 1 argument but %d were provided", len(args))
	}
	code, ok := args[0].(*object.Integer)
	if !ok {
		return nil, errorf(ArgumentError, "'exit' only accepts an integer argument")
	}
	i.exit(int(code.Value))
	return object.NullValue, nil
}
