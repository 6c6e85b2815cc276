// Copyright (C) 2025 The brace authors. All rights reserved.

package brace

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from a source string. Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	src string

	pos  int // offset of the next unread byte
	line int // current line, 1-based
	col  int // current column, 1-based

	tok Token
	err error
}

// NewScanner constructs a new lexical scanner that consumes src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1, col: 1}
}

// Tokenize scans src to completion and returns its tokens in order, with an
// explicit EOF token appended so a consumer can always peek one token ahead.
// If the input is invalid, Tokenize reports the first fault as a
// *TokenizeError and returns no tokens.
func Tokenize(src string) ([]Token, error) {
	s := NewScanner(src)
	var toks []Token
	for s.Next() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return append(toks, Token{Type: EOF, Pos: LineCol{Line: s.line, Column: s.col}}), nil
}

// Next advances s to the next token of the input. It reports false when the
// input is exhausted, or when scanning fails; in the latter case Err returns
// the corresponding *TokenizeError.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.skipSpace()
	if s.atEnd() {
		return false
	}

	switch c := s.peek(); {
	case isAlpha(c):
		return s.scanKeyword()
	case isDigit(c) || c == '-' && isDigit(s.peekNext()):
		return s.scanNumber()
	case c == '"':
		return s.scanString()
	case isPunct(c):
		return s.scanPunct()
	default:
		return s.failf("unexpected character %q", c)
	}
}

// Token returns the current token. It is valid after Next reports true.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that stopped the scan, or nil if the input was
// consumed completely.
func (s *Scanner) Err() error { return s.err }

// skipSpace discards whitespace, line comments ("// ... LF"), and block
// comments ("/* ... */"). A block comment left open at the end of the input
// consumes the remainder without error.
func (s *Scanner) skipSpace() {
	for !s.atEnd() {
		switch c := s.peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '/' && s.peekNext() == '/':
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		case c == '/' && s.peekNext() == '*':
			s.advance() // consume "/"
			s.advance() // consume "*"
			for !s.atEnd() {
				if s.peek() == '*' && s.peekNext() == '/' {
					s.advance()
					s.advance()
					break
				}
				s.advance()
			}
		default:
			return
		}
	}
}

var (
	kwTrue  = mem.S("true")
	kwFalse = mem.S("false")
	kwNull  = mem.S("null")
)

func (s *Scanner) scanKeyword() bool {
	start := s.pos
	for !s.atEnd() && isAlnum(s.peek()) {
		s.advance()
	}
	lexeme := s.src[start:s.pos]

	if word := mem.S(lexeme); !word.Equal(kwTrue) && !word.Equal(kwFalse) && !word.Equal(kwNull) {
		return s.failf("unrecognized keyword %q", lexeme)
	}
	s.emit(Keyword, lexeme)
	return true
}

func (s *Scanner) scanNumber() bool {
	start := s.pos

	if s.peek() == '-' {
		s.advance()
	}
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}

	// A decimal point must be followed by at least one digit.
	if !s.atEnd() && s.peek() == '.' {
		s.advance()
		if !isDigit(s.peek()) {
			return s.failf("invalid number format")
		}
		for !s.atEnd() && isDigit(s.peek()) {
			s.advance()
		}
	}

	s.emit(Number, s.src[start:s.pos])
	return true
}

func (s *Scanner) scanString() bool {
	s.advance() // consume the opening quote
	start := s.pos

	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			return s.failf("unterminated string literal")
		}
		s.advance()
	}
	if s.atEnd() {
		return s.failf("unterminated string literal")
	}

	lexeme := s.src[start:s.pos]
	s.advance() // consume the closing quote
	s.emit(String, lexeme)
	return true
}

func (s *Scanner) scanPunct() bool {
	c := s.advance()
	if strings.IndexByte(";:,(){}[]", c) < 0 {
		return s.failf("unrecognized punctuation %q", c)
	}
	s.emit(Punct, string(c))
	return true
}

// emit records the completed token. Its column is the current column less the
// lexeme length; for string tokens the quotes are not part of the lexeme, so
// the recorded column lands two bytes past the opening quote.
func (s *Scanner) emit(tt TokenType, lexeme string) {
	s.tok = Token{
		Type:   tt,
		Lexeme: lexeme,
		Pos:    LineCol{Line: s.line, Column: s.col - len(lexeme)},
	}
}

func (s *Scanner) failf(msg string, args ...any) bool {
	s.err = &TokenizeError{
		Pos:     LineCol{Line: s.line, Column: s.col},
		Message: fmt.Sprintf(msg, args...),
	}
	return false
}

func (s *Scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

func (s *Scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }

// isPunct reports whether c is a printable ASCII character that is neither
// alphanumeric nor a space, matching the C ispunct class.
func isPunct(c byte) bool { return c > ' ' && c < 0x7f && !isAlnum(c) }

// A TokenizeError reports a lexical fault and the position at which it was
// detected.
type TokenizeError struct {
	Pos     LineCol
	Message string
}

// Error satisfies the error interface.
func (e *TokenizeError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}
