package toylex

import "sync"

var lexerPool = sync.Pool{New: func() interface{} { return new(Lexer) }}

func getLexer(input []byte) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

func putLexer(l *Lexer) {
	// Drop the input reference so the pool does not pin the caller's buffer.
	l.Reset(nil)
	lexerPool.Put(l)
}
