/*
Package qlang implements a small expression language over feature sets.

A query expression selects architectures by combining feature columns with
'&' (both) and '|' (either), grouped by parentheses:

	q & (B | D)
	"multilib support" | s

Identifiers and quoted strings name features of the table; evaluation maps
them to architecture sets of a query engine and combines the sets with
bitmap algebra. Unknown feature names fail evaluation, exactly as they fail
direct engine calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package qlang

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/archtab/query"
)

// ErrBadQuery flags a syntactically invalid query expression.
var ErrBadQuery = errors.New("invalid query expression")

// Expr is a parsed query expression. Eval resolves it against a query
// engine to a set of architectures.
type Expr interface {
	Eval(e *query.Engine) (*query.ArchSet, error)
	String() string
}

// --- AST nodes -------------------------------------------------------------

type featRef struct {
	name string
}

func (f featRef) Eval(e *query.Engine) (*query.ArchSet, error) {
	return e.Set(f.name)
}

func (f featRef) String() string {
	if strings.ContainsAny(f.name, " \t&|()") {
		return strconv.Quote(f.name)
	}
	return f.name
}

type conj struct {
	left, right Expr
}

func (c conj) Eval(e *query.Engine) (*query.ArchSet, error) {
	left, err := c.left.Eval(e)
	if err != nil {
		return nil, err
	}
	right, err := c.right.Eval(e)
	if err != nil {
		return nil, err
	}
	left.And(right)
	return left, nil
}

func (c conj) String() string {
	return fmt.Sprintf("(%s & %s)", c.left, c.right)
}

type disj struct {
	left, right Expr
}

func (d disj) Eval(e *query.Engine) (*query.ArchSet, error) {
	left, err := d.left.Eval(e)
	if err != nil {
		return nil, err
	}
	right, err := d.right.Eval(e)
	if err != nil {
		return nil, err
	}
	left.Or(right)
	return left, nil
}

func (d disj) String() string {
	return fmt.Sprintf("(%s | %s)", d.left, d.right)
}

// --- Parser ----------------------------------------------------------------

var lexerOnce sync.Once // monitors one-time DFA compilation
var sharedLexer *LMAdapter
var lexerErr error

func lexer() (*LMAdapter, error) {
	lexerOnce.Do(func() {
		sharedLexer, lexerErr = Lexer()
	})
	return sharedLexer, lexerErr
}

// Parse parses a query expression:
//
//	expr   := term { '|' term }
//	term   := factor { '&' factor }
//	factor := IDENT | STRING | '(' expr ')'
//
func Parse(input string) (Expr, error) {
	adapter, err := lexer()
	if err != nil {
		return nil, err
	}
	tokens, err := adapter.Scanner(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	p := &parser{tokens: tokens}
	p.next()
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != EOF {
		return nil, fmt.Errorf("%w: unexpected %q at %s", ErrBadQuery, p.tok.Lexeme, p.tok.Pos)
	}
	if err := tokens.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed query expression %s", expr)
	return expr, nil
}

// Archs parses a query expression and resolves it against an engine,
// returning the matching architectures in table order.
func Archs(e *query.Engine, input string) ([]string, error) {
	expr, err := Parse(input)
	if err != nil {
		return nil, err
	}
	set, err := expr.Eval(e)
	if err != nil {
		return nil, err
	}
	return e.Names(set), nil
}

type parser struct {
	tokens *LMScanner
	tok    Token
}

func (p *parser) next() {
	p.tok = p.tokens.NextToken()
}

func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == '|' {
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = disj{left, right}
	}
	return left, nil
}

func (p *parser) term() (Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == '&' {
		p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = conj{left, right}
	}
	return left, nil
}

func (p *parser) factor() (Expr, error) {
	switch p.tok.Type {
	case Ident:
		f := featRef{name: p.tok.Lexeme}
		p.next()
		return f, nil
	case String:
		f := featRef{name: strings.Trim(p.tok.Lexeme, `"`)}
		p.next()
		return f, nil
	case '(':
		p.next()
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok.Type != ')' {
			return nil, fmt.Errorf("%w: missing ')'", ErrBadQuery)
		}
		p.next()
		return expr, nil
	case EOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrBadQuery)
	}
	return nil, fmt.Errorf("%w: unexpected %q at %s", ErrBadQuery, p.tok.Lexeme, p.tok.Pos)
}
