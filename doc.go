// Copyright (C) 2025 The brace authors. All rights reserved.

// Package brace implements a scanner and parser for JSON extended with
// comments, intended for configuration files.
//
// The dialect is standard JSON with two extensions and two restrictions:
// "//" line comments and "/* ... */" block comments are skipped wherever
// whitespace may appear; strings undergo no escape processing (the bytes
// between the quotation marks are taken verbatim, and a raw newline inside a
// string is an error); and numbers have no exponent form.
//
// # Parsing
//
// Parse is the entry point. It converts a source string into a Value tree,
// or reports a *ParseError carrying the 1-based line and column of the first
// fault:
//
//	v, err := brace.Parse(`{"addr": {"city": "NYC"}, "tags": [1, 2]} // ok`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	city := v.Key("addr").Key("city").Text()
//
// A Value is a closed union of the six JSON variants. The narrowing
// accessors (Text, Bool, Float64, Object, Array, Key, Index) are
// precondition-checked: calling one on the wrong variant is a programmer
// error and panics. Check Kind or the Is predicates first when the shape of
// the data is not known:
//
//	if v.IsObject() && v.Contains("port") {
//	   port = v.Key("port").Int()
//	}
//
// # Scanning
//
// The Scanner type gives access to the token stream below the parser.
// Construct a scanner from a source string and call Next to iterate:
//
//	s := brace.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// Tokenize runs a scanner to completion and returns the full token sequence
// with an EOF token appended, or a *TokenizeError describing the first fault.
package brace
