package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ttappr/toylex"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const usage = `toylexdump: print the token stream of toy-language source files.

Usage:
  toylexdump [-json] <path ...>
`

// jsonToken is the wire form of a token; Literal is copied out of the input
// buffer so the report stays valid after the buffer is released.
type jsonToken struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

type report struct {
	Path   string           `json:"path"`
	Status string           `json:"status"`
	Tokens []jsonToken      `json:"tokens"`
	Error  *toylex.LexError `json:"error,omitempty"`
}

func main() {
	jsonOutput := flag.Bool("json", false, "Output tokens in JSON format")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	failed := false
	for _, path := range paths {
		if err := dumpFile(path, *jsonOutput); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dumpFile(path string, jsonOutput bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}

	tokens, lexErr := toylex.Tokenize(data)

	if jsonOutput {
		r := report{Path: path, Status: toylex.StatusEndOfInput.String(), Tokens: make([]jsonToken, 0, len(tokens))}
		for _, tok := range tokens {
			r.Tokens = append(r.Tokens, jsonToken{
				Type:    string(tok.Type),
				Literal: string(tok.Literal),
				Line:    tok.Line,
				Column:  tok.Column,
			})
		}
		if lexErr != nil {
			r.Status = toylex.StatusFailed.String()
			var le *toylex.LexError
			if errors.As(lexErr, &le) {
				r.Error = le
			}
		}
		if err := json.MarshalWrite(os.Stdout, r, jsontext.Multiline(true), jsontext.WithIndent("  ")); err != nil {
			return fmt.Errorf("could not marshal json: %w", err)
		}
		fmt.Println()
	} else {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		if lexErr == nil {
			fmt.Printf("Status: %s\n", toylex.StatusEndOfInput)
		} else {
			fmt.Printf("Status: %s\n", toylex.StatusFailed)
		}
	}

	if lexErr != nil {
		return fmt.Errorf("%s: %w", path, lexErr)
	}
	return nil
}
