// Package toylex tokenizes source text of a small imperative toy language.
//
// The Lexer is the pull-based core: each NextToken call classifies one
// lexeme, until the scan latches into a terminal status (clean end of input
// or a LexError). Tokenize drives a pooled Lexer to completion for callers
// that just want the whole token stream.
package toylex

// Tokenize scans data to its terminal status and returns every token
// produced. The returned error is the *LexError when the scan failed, nil
// on clean end of input. Tokens borrow from data, so data must outlive
// them.
func Tokenize(data []byte) ([]Token, error) {
	l := getLexer(data)
	defer putLexer(l)

	var tokens []Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	if st := l.Status(); st.Kind == StatusFailed {
		return tokens, st.Err
	}
	return tokens, nil
}

// TokenizeString is Tokenize over a string without copying it. The tokens
// alias the string's bytes and must not be modified.
func TokenizeString(s string) ([]Token, error) {
	return Tokenize(StringToBytes(s))
}
