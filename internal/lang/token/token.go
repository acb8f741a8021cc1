// Package token defines the lexical tokens of the FilipeX language.
package token

// Type identifies a token class.
type Type string

// Token is a single lexeme with its literal text.
type Token struct {
	Type    Type
	Literal string
}

const (
	Illegal Type = "ILLEGAL"
	EOF     Type = "EOF"

	Ident  Type = "IDENT"
	Int    Type = "INT"
	Float  Type = "FLOAT"
	String Type = "STRING"

	Assign   Type = "="
	Plus     Type = "+"
	Minus    Type = "-"
	Bang     Type = "!"
	Asterisk Type = "*"
	Slash    Type = "/"
	Percent  Type = "%"
	Inc      Type = "++"
	Dec      Type = "--"

	LT    Type = "<"
	GT    Type = ">"
	LTEq  Type = "<="
	GTEq  Type = ">="
	Eq    Type = "=="
	NotEq Type = "!="

	Comma     Type = ","
	Colon     Type = ":"
	Semicolon Type = ";"
	Arrow     Type = "->"

	LParen   Type = "("
	RParen   Type = ")"
	LBrace   Type = "{"
	RBrace   Type = "}"
	LBracket Type = "["
	RBracket Type = "]"

	Let    Type = "LET"
	Func   Type = "FUNC"
	Return Type = "RETURN"
	If     Type = "IF"
	Else   Type = "ELSE"
	For    Type = "FOR"
	In     Type = "IN"
)

var keywords = map[string]Type{
	"let":    Let,
	"func":   Func,
	"return": Return,
	"if":     If,
	"else":   Else,
	"for":    For,
	"in":     In,
}

// LookupIdent resolves keywords, falling back to Ident.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Ident
}
