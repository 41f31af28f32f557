package main

import (
	"fmt"

	"github.com/ttappr/toylex"
)

const source = `if is_true {
    foo_var = "hello!";
} else {
    bar_var = 0;
    foo_var = "String \"with\" escapes.";
}`

func main() {
	l := toylex.NewLexer([]byte(source))

	for {
		tok, ok := l.NextToken()
		if !ok {
			break
		}
		fmt.Println(tok)
	}

	st := l.Status()
	fmt.Printf("Lexer Status: %s\n", st.Kind)
	if st.Err != nil {
		fmt.Println(st.Err)
	}
}
