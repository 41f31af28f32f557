package toylex

import "fmt"

type StatusKind int

const (
	StatusActive StatusKind = iota
	StatusEndOfInput
	StatusFailed
)

func (sk StatusKind) String() string {
	switch sk {
	case StatusActive:
		return "ACTIVE"
	case StatusEndOfInput:
		return "END_OF_INPUT"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Status is the lexer's terminal-state latch. It starts Active and
// transitions exactly once, to EndOfInput or to Failed carrying the
// LexError; it is never left afterwards.
type Status struct {
	Kind StatusKind
	Err  *LexError
}

type ErrorType int

const (
	ErrUnknown ErrorType = iota
	ErrUnrecognizedChar
	ErrInvalidEscape
	ErrUnterminatedString
)

// LexError describes why a scan failed. Line and Column are zero-based and
// locate the offending character, or the opening quote for an unterminated
// string (Char is unset in that case).
type LexError struct {
	Type   ErrorType `json:"type"`
	Char   byte      `json:"char,omitzero"`
	Line   int       `json:"line"`
	Column int       `json:"column"`
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.message())
}

func (e *LexError) message() string {
	switch e.Type {
	case ErrUnrecognizedChar:
		return fmt.Sprintf("unrecognized start character %q", e.Char)
	case ErrInvalidEscape:
		return fmt.Sprintf("invalid escape in string, \"\\%c\"", e.Char)
	case ErrUnterminatedString:
		return "unterminated string literal"
	default:
		return "unknown lexical error"
	}
}

// Lexer scans toy-language source held fully in memory. Tokens borrow from
// the input buffer, so the buffer must outlive them. A Lexer is not safe
// for concurrent use; independent Lexers over the same input are, since the
// input is never written.
type Lexer struct {
	input  []byte
	pos    int    // read cursor into input
	buf    []byte // lookahead/pushback queue, drained before the cursor
	offset int    // byte offset of the next lexeme start
	line   int
	col    int
	status Status
}

func NewLexer(input []byte) *Lexer {
	l := &Lexer{}
	l.Reset(input)
	return l
}

// Reset re-initializes the lexer with new input for pool reuse.
func (l *Lexer) Reset(input []byte) {
	l.input = input
	l.pos = 0
	l.buf = l.buf[:0]
	l.offset = 0
	l.line = 0
	l.col = 0
	l.status = Status{}
}

// Status reports the latched terminal state, or Active while tokens may
// still be produced.
func (l *Lexer) Status() Status {
	return l.status
}

// NextToken returns the next token. ok is false exactly when the scan has
// reached a terminal state; consult Status to distinguish clean end of
// input from a lexical error. Once terminal, every later call returns false
// without further scanning.
func (l *Lexer) NextToken() (tok Token, ok bool) {
	if l.status.Kind != StatusActive {
		return Token{}, false
	}
	for {
		ch, ok := l.nextChar()
		if !ok {
			l.status = Status{Kind: StatusEndOfInput}
			return Token{}, false
		}
		switch ch {
		case '\n', ' ', '\t', '\r':
			l.advance(1)
		case '{':
			return l.emit(LBRACE, 1), true
		case '}':
			return l.emit(RBRACE, 1), true
		case '+', '-', '*', '/', '=':
			return l.emit(OPERATOR, 1), true
		case ';':
			return l.emit(SEMICOLON, 1), true
		case '"':
			return l.scanString()
		default:
			if isIdentifierChar(ch) {
				return l.scanIdentifier(), true
			}
			if isDigit(ch) {
				return l.scanNumber(), true
			}
			l.fail(&LexError{Type: ErrUnrecognizedChar, Char: ch, Line: l.line, Column: l.col})
			return Token{}, false
		}
	}
}

// scanString consumes the rest of a string literal; the opening quote has
// already been consumed. Only `\"` is a legal escape, validated by one
// character of lookahead; the escaped quote does not close the literal.
// The emitted token spans opening quote through closing quote inclusive.
func (l *Lexer) scanString() (Token, bool) {
	escaped := false
	end := 1
	for {
		ch, ok := l.nextChar()
		if !ok {
			l.fail(&LexError{Type: ErrUnterminatedString, Line: l.line, Column: l.col})
			return Token{}, false
		}
		end++
		switch ch {
		case '\\':
			la, ok := l.lookAhead(1)
			if ok && la != '"' {
				line, col := l.posAt(end)
				l.fail(&LexError{Type: ErrInvalidEscape, Char: la, Line: line, Column: col})
				return Token{}, false
			}
			escaped = true
		case '"':
			if !escaped {
				return l.emit(STRING, end), true
			}
			escaped = false
		default:
			escaped = false
		}
	}
}

// scanIdentifier consumes the maximal run of letters/underscores; the first
// character of the run has already been consumed. The terminating character
// is pushed back for the next call. End of input terminates the run too.
func (l *Lexer) scanIdentifier() Token {
	end := 1
	for {
		ch, ok := l.nextChar()
		if !ok {
			break
		}
		if !isIdentifierChar(ch) {
			l.putBack(ch)
			break
		}
		end++
	}
	return l.emit(LookupIdentifier(l.input[l.offset:l.offset+end]), end)
}

// scanNumber consumes the maximal run of ASCII digits; no sign, decimal
// point, or exponent.
func (l *Lexer) scanNumber() Token {
	end := 1
	for {
		ch, ok := l.nextChar()
		if !ok {
			break
		}
		if !isDigit(ch) {
			l.putBack(ch)
			break
		}
		end++
	}
	return l.emit(NUMBER, end)
}

// nextChar produces the next character to process, draining the
// lookahead/pushback queue before the underlying cursor.
func (l *Lexer) nextChar() (byte, bool) {
	if len(l.buf) > 0 {
		ch := l.buf[0]
		l.buf = l.buf[1:]
		return ch, true
	}
	if l.pos < len(l.input) {
		ch := l.input[l.pos]
		l.pos++
		return ch, true
	}
	return 0, false
}

// lookAhead peeks at the ahead-th upcoming character without consuming it.
func (l *Lexer) lookAhead(ahead int) (byte, bool) {
	for len(l.buf) < ahead {
		if l.pos >= len(l.input) {
			return 0, false
		}
		l.buf = append(l.buf, l.input[l.pos])
		l.pos++
	}
	return l.buf[ahead-1], true
}

// putBack returns ch to the front of the stream so the next nextChar call
// re-reads it.
func (l *Lexer) putBack(ch byte) {
	l.buf = append(l.buf, 0)
	copy(l.buf[1:], l.buf)
	l.buf[0] = ch
}

// emit builds the token for the n-byte lexeme starting at the current
// position, then commits the position advance.
func (l *Lexer) emit(t TokenType, n int) Token {
	tok := Token{Type: t, Literal: l.input[l.offset : l.offset+n], Line: l.line, Column: l.col}
	l.advance(n)
	return tok
}

// posAt returns the position n bytes past the current lexeme start.
// Newline-aware, so positions stay exact across multi-line string literals.
func (l *Lexer) posAt(n int) (line, col int) {
	line, col = l.line, l.col
	for _, ch := range l.input[l.offset : l.offset+n] {
		if ch == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// advance commits n consumed bytes. Position bookkeeping moves only here,
// never on lookAhead.
func (l *Lexer) advance(n int) {
	l.line, l.col = l.posAt(n)
	l.offset += n
}

func (l *Lexer) fail(err *LexError) {
	l.status = Status{Kind: StatusFailed, Err: err}
}

func isIdentifierChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
