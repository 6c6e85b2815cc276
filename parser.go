// Copyright (C) 2025 The brace authors. All rights reserved.

package brace

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a single JSON value from src and returns the resulting value
// tree. The input dialect is JSON extended with "//" line comments and
// "/* ... */" block comments, and with no escape processing inside strings.
//
// Parsing is fail-fast: the first lexical or structural fault aborts the
// parse and is reported as a *ParseError carrying the position of the fault.
// Input remaining after the first complete value is ignored.
func Parse(src string) (Value, error) {
	toks, err := Tokenize(src)
	if err != nil {
		terr := err.(*TokenizeError)
		return Value{}, &ParseError{Pos: terr.Pos, Message: terr.Message}
	}
	p := &parser{toks: toks}
	return p.parseValue()
}

// A parser consumes a token sequence with one-token lookahead. The sequence
// always ends with an EOF token, so peek is valid at every cursor position.
type parser struct {
	toks []Token
	cur  int
}

func (p *parser) peek() Token { return p.toks[p.cur] }

func (p *parser) advance() Token {
	t := p.toks[p.cur]
	p.cur++
	return t
}

func (p *parser) atEnd() bool { return p.cur >= len(p.toks) }

// parseValue consumes a single value of any type.
func (p *parser) parseValue() (Value, error) {
	tok := p.peek()
	switch {
	case tok.Type == String:
		p.advance()
		return Value{kind: KindString, str: tok.Lexeme}, nil

	case tok.Type == Number:
		p.advance()
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return Value{}, p.errorf(tok, "invalid number %q", tok.Lexeme)
		}
		return Value{kind: KindNumber, num: f}, nil

	case tok.is(Punct, "{"):
		return p.parseObject()

	case tok.is(Punct, "["):
		return p.parseArray()

	case tok.Type == Keyword:
		switch strings.ToLower(tok.Lexeme) {
		case "true", "false":
			p.advance()
			return Value{kind: KindBool, b: strings.ToLower(tok.Lexeme) == "true"}, nil
		case "null":
			p.advance()
			return Value{}, nil
		}
	}

	if tok.Type == EOF {
		return Value{}, p.errorf(tok, "unexpected end of input")
	}
	return Value{}, p.errorf(tok, "unexpected token %q", tok.Lexeme)
}

// parseObject consumes an object. Precondition: the current token is "{".
func (p *parser) parseObject() (Value, error) {
	obj := make(map[string]Value)
	p.advance() // consume "{"

	for !p.atEnd() && !p.peek().is(Punct, "}") {
		key := p.advance()
		if key.Type != String {
			return Value{}, p.errorf(key, "expected string key in object")
		}

		if colon := p.advance(); !colon.is(Punct, ":") {
			return Value{}, p.errorf(colon, "expected ':' after object key")
		}

		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		obj[key.Lexeme] = val // a repeated key overwrites the earlier value

		switch next := p.peek(); {
		case next.is(Punct, ","):
			p.advance()
		case next.is(Punct, "}"):
			// closing brace is consumed below
		default:
			return Value{}, p.errorf(next, "expected ',' or '}' in object")
		}
	}

	p.advance() // consume "}"
	return Value{kind: KindObject, obj: obj}, nil
}

// parseArray consumes an array. Precondition: the current token is "[".
func (p *parser) parseArray() (Value, error) {
	var arr []Value
	p.advance() // consume "["

	for !p.atEnd() && !p.peek().is(Punct, "]") {
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, val)

		switch next := p.peek(); {
		case next.is(Punct, ","):
			p.advance()
		case next.is(Punct, "]"):
			// closing bracket is consumed below
		default:
			return Value{}, p.errorf(next, "expected ',' or ']' in array")
		}
	}

	p.advance() // consume "]"
	return Value{kind: KindArray, arr: arr}, nil
}

func (p *parser) errorf(tok Token, msg string, args ...any) error {
	return &ParseError{Pos: tok.Pos, Message: fmt.Sprintf(msg, args...)}
}

// A ParseError reports a structural fault, or a lexical fault forwarded from
// the scanner, and the position at which it was detected.
type ParseError struct {
	Pos     LineCol
	Message string
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}
