// Package ast defines the syntax tree produced by the FilipeX parser.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is any syntax tree node.
type Node interface {
	String() string
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is a parsed source file.
type Program []Stmt

func (p Program) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// TypeAnnotation names a declared type.
type TypeAnnotation string

const (
	TypeInt     TypeAnnotation = "int"
	TypeFloat   TypeAnnotation = "float"
	TypeString  TypeAnnotation = "string"
	TypeBoolean TypeAnnotation = "boolean"
	TypeVoid    TypeAnnotation = "void"
	TypeArray   TypeAnnotation = "array"
)

// LookupType resolves a type name used in an annotation position.
func LookupType(name string) (TypeAnnotation, bool) {
	switch TypeAnnotation(name) {
	case TypeInt, TypeFloat, TypeString, TypeBoolean, TypeVoid, TypeArray:
		return TypeAnnotation(name), true
	}
	return "", false
}

// BlockStmt is a braced statement list.
type BlockStmt []Stmt

func (b BlockStmt) String() string {
	var out strings.Builder
	out.WriteString("{ ")
	for _, s := range b {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// LetStmt declares a binding, optionally with a type annotation.
type LetStmt struct {
	Name  string
	Type  *TypeAnnotation
	Value Expr
}

func (s *LetStmt) stmtNode() {}
func (s *LetStmt) String() string {
	if s.Type != nil {
		return fmt.Sprintf("let %s: %s = %s", s.Name, *s.Type, s.Value.String())
	}
	return fmt.Sprintf("let %s = %s", s.Name, s.Value.String())
}

// Param is a typed function parameter.
type Param struct {
	Name string
	Type TypeAnnotation
}

func (p Param) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Type)
}

// FuncStmt declares a named function.
type FuncStmt struct {
	Name       string
	Params     []Param
	ReturnType TypeAnnotation
	Body       BlockStmt
}

func (s *FuncStmt) stmtNode() {}
func (s *FuncStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("func %s(%s) -> %s %s", s.Name, strings.Join(params, ", "), s.ReturnType, s.Body.String())
}

// ReturnStmt exits the enclosing function, optionally with a value.
type ReturnStmt struct {
	Value Expr
}

func (s *ReturnStmt) stmtNode() {}
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// IfStmt branches on a condition. Alternative is nil when absent.
type IfStmt struct {
	Condition   Expr
	Consequence BlockStmt
	Alternative BlockStmt
}

func (s *IfStmt) stmtNode() {}
func (s *IfStmt) String() string {
	out := fmt.Sprintf("if %s %s", s.Condition.String(), s.Consequence.String())
	if s.Alternative != nil {
		out += " else " + s.Alternative.String()
	}
	return out
}

// ForStmt iterates a cursor over an iterable.
type ForStmt struct {
	Cursor   string
	Iterable Expr
	Body     BlockStmt
}

func (s *ForStmt) stmtNode() {}
func (s *ForStmt) String() string {
	return fmt.Sprintf("for %s in %s %s", s.Cursor, s.Iterable.String(), s.Body.String())
}

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	Value Expr
}

func (s *ExprStmt) stmtNode() {}
func (s *ExprStmt) String() string {
	return s.Value.String()
}

// Identifier references a binding.
type Identifier struct {
	Name string
}

func (e *Identifier) exprNode() {}
func (e *Identifier) String() string {
	return e.Name
}

// IntLiteral is an integer literal.
type IntLiteral struct {
	Value int64
}

func (e *IntLiteral) exprNode() {}
func (e *IntLiteral) String() string {
	return strconv.FormatInt(e.Value, 10)
}

// FloatLiteral is a floating point literal.
type FloatLiteral struct {
	Value float64
}

func (e *FloatLiteral) exprNode() {}
func (e *FloatLiteral) String() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	Value string
}

func (e *StringLiteral) exprNode() {}
func (e *StringLiteral) String() string {
	return strconv.Quote(e.Value)
}

// ArrayLiteral is a bracketed list of expressions.
type ArrayLiteral struct {
	Elements []Expr
}

func (e *ArrayLiteral) exprNode() {}
func (e *ArrayLiteral) String() string {
	items := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		items[i] = el.String()
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// PrefixExpr applies !, + or - to its operand.
type PrefixExpr struct {
	Op    string
	Right Expr
}

func (e *PrefixExpr) exprNode() {}
func (e *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Op, e.Right.String())
}

// PostfixExpr applies ++ or -- to its operand.
type PostfixExpr struct {
	Left Expr
	Op   string
}

func (e *PostfixExpr) exprNode() {}
func (e *PostfixExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Left.String(), e.Op)
}

// InfixExpr is a binary operation.
type InfixExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (e *InfixExpr) exprNode() {}
func (e *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

// AssignExpr mutates an existing binding.
type AssignExpr struct {
	Name  string
	Value Expr
}

func (e *AssignExpr) exprNode() {}
func (e *AssignExpr) String() string {
	return fmt.Sprintf("%s = %s", e.Name, e.Value.String())
}

// CallExpr invokes a callee with arguments.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee.String(), strings.Join(args, ", "))
}
