// Package parser builds a FilipeX syntax tree with a Pratt parser.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hc12r/filipeX/internal/lang/ast"
	"github.com/hc12r/filipeX/internal/lang/lexer"
	"github.com/hc12r/filipeX/internal/lang/token"
)

type precedence int

const (
	lowest precedence = iota
	assign
	equals
	lessGreater
	sum
	product
	prefix
	postfix
	call
)

var precedences = map[token.Type]precedence{
	token.Assign:   assign,
	token.Eq:       equals,
	token.NotEq:    equals,
	token.LT:       lessGreater,
	token.GT:       lessGreater,
	token.LTEq:     lessGreater,
	token.GTEq:     lessGreater,
	token.Plus:     sum,
	token.Minus:    sum,
	token.Asterisk: product,
	token.Slash:    product,
	token.Percent:  product,
	token.Inc:      postfix,
	token.Dec:      postfix,
	token.LParen:   call,
}

// Parser consumes a token stream and produces an ast.Program.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token
	errors    []string
}

// New builds a Parser over l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse consumes the whole input. Collected syntax errors are returned
// as a single error.
func (p *Parser) Parse() (ast.Program, error) {
	var program ast.Program
	for p.curToken.Type != token.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			program = append(program, stmt)
		}
		p.nextToken()
	}
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("syntax error: %s", strings.Join(p.errors, "; "))
	}
	return program, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Type {
	case token.Let:
		return p.parseLetStatement()
	case token.Func:
		return p.parseFuncStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.If:
		return p.parseIfStatement()
	case token.For:
		return p.parseForStatement()
	case token.Semicolon:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Stmt {
	if !p.expectPeek(token.Ident) {
		return nil
	}
	stmt := &ast.LetStmt{Name: p.curToken.Literal}

	if p.peekToken.Type == token.Colon {
		p.nextToken()
		annot, ok := p.parseTypeAnnotation()
		if !ok {
			return nil
		}
		stmt.Type = &annot
	}

	if !p.expectPeek(token.Assign) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(lowest)
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseFuncStatement() ast.Stmt {
	if !p.expectPeek(token.Ident) {
		return nil
	}
	stmt := &ast.FuncStmt{Name: p.curToken.Literal, ReturnType: ast.TypeVoid}

	if !p.expectPeek(token.LParen) {
		return nil
	}
	params, ok := p.parseParams()
	if !ok {
		return nil
	}
	stmt.Params = params

	if p.peekToken.Type == token.Arrow {
		p.nextToken()
		annot, ok := p.parseTypeAnnotation()
		if !ok {
			return nil
		}
		stmt.ReturnType = annot
	}

	if !p.expectPeek(token.LBrace) {
		return nil
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseParams() ([]ast.Param, bool) {
	var params []ast.Param
	if p.peekToken.Type == token.RParen {
		p.nextToken()
		return params, true
	}

	for {
		if !p.expectPeek(token.Ident) {
			return nil, false
		}
		name := p.curToken.Literal
		if !p.expectPeek(token.Colon) {
			return nil, false
		}
		annot, ok := p.parseTypeAnnotation()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{Name: name, Type: annot})

		if p.peekToken.Type != token.Comma {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RParen) {
		return nil, false
	}
	return params, true
}

// parseTypeAnnotation expects the type name in the peek position.
func (p *Parser) parseTypeAnnotation() (ast.TypeAnnotation, bool) {
	if !p.expectPeek(token.Ident) {
		return "", false
	}
	annot, ok := ast.LookupType(p.curToken.Literal)
	if !ok {
		p.errorf("unknown type '%s'", p.curToken.Literal)
		return "", false
	}
	return annot, true
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	stmt := &ast.ReturnStmt{}
	if p.peekToken.Type == token.Semicolon || p.peekToken.Type == token.RBrace || p.peekToken.Type == token.EOF {
		p.skipOptionalSemicolon()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(lowest)
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseIfStatement() ast.Stmt {
	p.nextToken()
	stmt := &ast.IfStmt{Condition: p.parseExpression(lowest)}

	if !p.expectPeek(token.LBrace) {
		return nil
	}
	stmt.Consequence = p.parseBlock()

	if p.peekToken.Type == token.Else {
		p.nextToken()
		if p.peekToken.Type == token.If {
			p.nextToken()
			nested := p.parseIfStatement()
			if nested == nil {
				return nil
			}
			stmt.Alternative = ast.BlockStmt{nested}
			return stmt
		}
		if !p.expectPeek(token.LBrace) {
			return nil
		}
		stmt.Alternative = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Stmt {
	if !p.expectPeek(token.Ident) {
		return nil
	}
	stmt := &ast.ForStmt{Cursor: p.curToken.Literal}

	if !p.expectPeek(token.In) {
		return nil
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(lowest)

	if !p.expectPeek(token.LBrace) {
		return nil
	}
	stmt.Body = p.parseBlock()
	return stmt
}

// parseBlock is entered with curToken on '{' and leaves it on '}'.
func (p *Parser) parseBlock() ast.BlockStmt {
	var block ast.BlockStmt
	p.nextToken()
	for p.curToken.Type != token.RBrace && p.curToken.Type != token.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			block = append(block, stmt)
		}
		p.nextToken()
	}
	if p.curToken.Type != token.RBrace {
		p.errorf("expected '}', found end of input")
	}
	return block
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	expr := p.parseExpression(lowest)
	if expr == nil {
		return nil
	}
	p.skipOptionalSemicolon()
	return &ast.ExprStmt{Value: expr}
}

func (p *Parser) parseExpression(prec precedence) ast.Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for p.peekToken.Type != token.Semicolon && prec < p.peekPrecedence() {
		switch p.peekToken.Type {
		case token.Inc, token.Dec:
			p.nextToken()
			left = &ast.PostfixExpr{Left: left, Op: p.curToken.Literal}
		case token.LParen:
			p.nextToken()
			left = p.parseCall(left)
		case token.Assign:
			ident, ok := left.(*ast.Identifier)
			if !ok {
				p.errorf("invalid assignment target '%s'", left.String())
				return nil
			}
			p.nextToken()
			p.nextToken()
			// right associative
			left = &ast.AssignExpr{Name: ident.Name, Value: p.parseExpression(lowest)}
		default:
			p.nextToken()
			left = p.parseInfix(left)
		}
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.curToken.Type {
	case token.Ident:
		return &ast.Identifier{Name: p.curToken.Literal}
	case token.Int:
		value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			p.errorf("could not parse '%s' as int", p.curToken.Literal)
			return nil
		}
		return &ast.IntLiteral{Value: value}
	case token.Float:
		value, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			p.errorf("could not parse '%s' as float", p.curToken.Literal)
			return nil
		}
		return &ast.FloatLiteral{Value: value}
	case token.String:
		return &ast.StringLiteral{Value: p.curToken.Literal}
	case token.Bang, token.Minus, token.Plus:
		op := p.curToken.Literal
		p.nextToken()
		right := p.parseExpression(prefix)
		if right == nil {
			return nil
		}
		return &ast.PrefixExpr{Op: op, Right: right}
	case token.LParen:
		p.nextToken()
		expr := p.parseExpression(lowest)
		if !p.expectPeek(token.RParen) {
			return nil
		}
		return expr
	case token.LBracket:
		return p.parseArray()
	default:
		p.errorf("unexpected token '%s'", p.curToken.Literal)
		return nil
	}
}

func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	op := p.curToken.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.InfixExpr{Left: left, Op: op, Right: right}
}

// parseCall is entered with curToken on '('.
func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	expr := &ast.CallExpr{Callee: callee}
	if p.peekToken.Type == token.RParen {
		p.nextToken()
		return expr
	}

	p.nextToken()
	expr.Args = append(expr.Args, p.parseExpression(lowest))
	for p.peekToken.Type == token.Comma {
		p.nextToken()
		p.nextToken()
		expr.Args = append(expr.Args, p.parseExpression(lowest))
	}

	if !p.expectPeek(token.RParen) {
		return nil
	}
	return expr
}

// parseArray is entered with curToken on '['.
func (p *Parser) parseArray() ast.Expr {
	arr := &ast.ArrayLiteral{}
	if p.peekToken.Type == token.RBracket {
		p.nextToken()
		return arr
	}

	p.nextToken()
	arr.Elements = append(arr.Elements, p.parseExpression(lowest))
	for p.peekToken.Type == token.Comma {
		p.nextToken()
		p.nextToken()
		arr.Elements = append(arr.Elements, p.parseExpression(lowest))
	}

	if !p.expectPeek(token.RBracket) {
		return nil
	}
	return arr
}

func (p *Parser) skipOptionalSemicolon() {
	if p.peekToken.Type == token.Semicolon {
		p.nextToken()
	}
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.errorf("expected '%s', found '%s'", t, p.peekToken.Literal)
	return false
}

func (p *Parser) peekPrecedence() precedence {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowest
}

func (p *Parser) curPrecedence() precedence {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowest
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}
