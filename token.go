package toylex

import (
	"bytes"
	"fmt"
)

type TokenType string

// Token is a classified lexeme. Literal is a subslice of the input buffer
// handed to the lexer, so the buffer must outlive every Token derived from
// it. Line and Column are zero-based and locate the first byte of the
// lexeme.
type Token struct {
	Type    TokenType
	Literal []byte
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Line:%d, Col:%d, Type:%s, Literal:`%s`", t.Line, t.Column, t.Type, string(t.Literal))
}

const (
	KEYWORD   TokenType = "KEYWORD"
	IDENT     TokenType = "IDENT"
	STRING    TokenType = "STRING"
	NUMBER    TokenType = "NUMBER"
	OPERATOR  TokenType = "OPERATOR"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	SEMICOLON TokenType = ";"
)

// LookupIdentifier reports whether ident is a reserved word. The keyword set
// is fixed for the process lifetime; comparing with bytes.Equal keeps the
// lookup free of allocations.
func LookupIdentifier(ident []byte) TokenType {
	if bytes.Equal(ident, []byte("if")) {
		return KEYWORD
	}
	if bytes.Equal(ident, []byte("else")) {
		return KEYWORD
	}
	if bytes.Equal(ident, []byte("for")) {
		return KEYWORD
	}
	if bytes.Equal(ident, []byte("while")) {
		return KEYWORD
	}
	return IDENT
}
