// Copyright (C) 2025 The brace authors. All rights reserved.

package brace

import "fmt"

// TokenType is the type of a lexical token in the grammar.
type TokenType byte

// Constants defining the valid TokenType values.
const (
	Invalid TokenType = iota // invalid token
	Keyword                  // constant: true, false, null
	Number                   // number literal
	String                   // string literal
	Punct                    // single punctuation character
	EOF                      // end of input
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	Keyword: "keyword",
	Number:  "number",
	String:  "string",
	Punct:   "punctuation",
	EOF:     "end of input",
}

func (t TokenType) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Token is a single lexical unit of the input, recording its type, its
// lexeme, and the position where it starts. For string tokens the lexeme is
// the content between the quotation marks, taken verbatim with no escape
// processing; for all other tokens it is the exact source text.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    LineCol
}

func (t Token) String() string {
	if t.Type == EOF {
		return tokenStr[EOF]
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

// is reports whether t has the given type and lexeme.
func (t Token) is(tt TokenType, lexeme string) bool {
	return t.Type == tt && t.Lexeme == lexeme
}
