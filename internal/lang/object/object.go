// Package object defines FilipeX runtime values and scopes.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hc12r/filipeX/internal/lang/ast"
)

// Type names a runtime value's type.
type Type string

const (
	NullType     Type = "null"
	IntType      Type = "int"
	FloatType    Type = "float"
	StringType   Type = "string"
	BooleanType  Type = "boolean"
	VoidType     Type = "void"
	FunctionType Type = "function"
	RangeType    Type = "range"
	ArrayType    Type = "array"
	TypeType     Type = "type"
)

// AnnotationType maps a declared annotation to the runtime type it admits.
func AnnotationType(a ast.TypeAnnotation) Type {
	switch a {
	case ast.TypeInt:
		return IntType
	case ast.TypeFloat:
		return FloatType
	case ast.TypeString:
		return StringType
	case ast.TypeBoolean:
		return BooleanType
	case ast.TypeArray:
		return ArrayType
	case ast.TypeVoid:
		return VoidType
	}
	return NullType
}

// Object is any runtime value.
type Object interface {
	Type() Type
	Inspect() string
}

// TypeOf unwraps return values before reading a type.
func TypeOf(obj Object) Type {
	if ret, ok := obj.(*ReturnValue); ok {
		return TypeOf(ret.Value)
	}
	return obj.Type()
}

// SameType reports whether two values share a runtime type.
func SameType(a, b Object) bool {
	return TypeOf(a) == TypeOf(b)
}

// Integer is an int value.
type Integer struct {
	Value int64
}

func (o *Integer) Type() Type      { return IntType }
func (o *Integer) Inspect() string { return strconv.FormatInt(o.Value, 10) }

// Float is a float value.
type Float struct {
	Value float64
}

func (o *Float) Type() Type      { return FloatType }
func (o *Float) Inspect() string { return strconv.FormatFloat(o.Value, 'g', -1, 64) }

// String is a string value.
type String struct {
	Value string
}

func (o *String) Type() Type      { return StringType }
func (o *String) Inspect() string { return o.Value }

// Boolean is a boolean value.
type Boolean struct {
	Value bool
}

func (o *Boolean) Type() Type      { return BooleanType }
func (o *Boolean) Inspect() string { return strconv.FormatBool(o.Value) }

// Null is the absent value.
type Null struct{}

func (o *Null) Type() Type      { return NullType }
func (o *Null) Inspect() string { return "null" }

// Shared immutable instances.
var (
	NullValue  = &Null{}
	TrueValue  = &Boolean{Value: true}
	FalseValue = &Boolean{Value: false}
)

// BooleanFor returns the shared instance for v.
func BooleanFor(v bool) *Boolean {
	if v {
		return TrueValue
	}
	return FalseValue
}

// Range is a bounded integer progression, end exclusive.
type Range struct {
	Start int64
	End   int64
	Step  int64
}

func (o *Range) Type() Type { return RangeType }
func (o *Range) Inspect() string {
	return fmt.Sprintf("range(%d, %d, %d)", o.Start, o.End, o.Step)
}

// Array is a homogeneous list of values.
type Array struct {
	Elements []Object
	ElemType Type
}

func (o *Array) Type() Type { return ArrayType }
func (o *Array) Inspect() string {
	items := make([]string, len(o.Elements))
	for i, el := range o.Elements {
		if el.Type() == StringType {
			items[i] = strconv.Quote(el.Inspect())
			continue
		}
		items[i] = el.Inspect()
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// ReturnValue wraps a value travelling up from a return statement.
type ReturnValue struct {
	Value Object
}

func (o *ReturnValue) Type() Type      { return TypeOf(o.Value) }
func (o *ReturnValue) Inspect() string { return o.Value.Inspect() }

// TypeValue is the result of typeof.
type TypeValue struct {
	Of Type
}

func (o *TypeValue) Type() Type      { return TypeType }
func (o *TypeValue) Inspect() string { return string(o.Of) }

// BuiltinFunc is the host implementation behind a builtin binding.
type BuiltinFunc func(args []Object) (Object, error)

// Builtin is a host-provided function value.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (o *Builtin) Type() Type      { return FunctionType }
func (o *Builtin) Inspect() string { return "[builtin function]" }

// Function is a user-defined function value closing over its
// definition environment.
type Function struct {
	Name       string
	Params     []ast.Param
	ReturnType ast.TypeAnnotation
	Body       ast.BlockStmt
	Env        *Environment
}

func (o *Function) Type() Type { return FunctionType }
func (o *Function) Inspect() string {
	params := make([]string, len(o.Params))
	for i, p := range o.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("func %s(%s) -> %s", o.Name, strings.Join(params, ", "), o.ReturnType)
}
