package qlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/archtab"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'archtab.qlang'.
func tracer() tracing.Trace {
	return tracing.Select("archtab.qlang")
}

// Token types of the query language. Literal one-char tokens carry their
// character value as type.
const (
	EOF int = -(iota + 1)
	Ident
	String
)

// The tokens representing literal one-char lexemes
var literals = []string{"&", "|", "(", ")"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // a map from token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["IDENT"] = Ident
		tokenIds["STRING"] = String
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
	})
}

// Token is one scanned token of a query expression.
type Token struct {
	Type   int
	Lexeme string
	Pos    archtab.Span
}

// Lexer creates a new lexmachine lexer for query expressions. Feature names
// are bare identifiers, or double-quoted strings when they contain spaces.
func Lexer() (*LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`\"[^"]*\"`), makeToken("STRING"))
		lexer.Add([]byte(`([a-z]|[A-Z]|[0-9])([a-z]|[A-Z]|[0-9]|_|-|\.)*`), makeToken("IDENT"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	adapter, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return MakeToken(s, id)
}

// --- lexmachine adapter ----------------------------------------------------

// LMAdapter wraps a lexmachine lexer.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init
// function adding the patterns, a list of literals ('&', '(', …) and a map
// for translating token names to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s}, nil
}

// LMScanner hands out the tokens of one query expression.
type LMScanner struct {
	scanner *lexmachine.Scanner
	err     error
}

// NextToken returns the next token, with type EOF at the end of the input.
// Scanning trouble is remembered and surfaces through Err; the scanner skips
// past unconsumable input to find subsequent tokens.
func (lms *LMScanner) NextToken() Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		tracer().Errorf("scanner error: " + err.Error())
		if lms.err == nil {
			lms.err = fmt.Errorf("%w: %v", ErrBadQuery, err)
		}
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return Token{Type: EOF}
	}
	token := tok.(*lexmachine.Token)
	return Token{
		Type:   token.Type,
		Lexeme: string(token.Lexeme),
		Pos:    archtab.Span{token.StartColumn, token.EndColumn},
	}
}

// Err returns the first scanning error, if any.
func (lms *LMScanner) Err() error {
	return lms.err
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
