// Copyright (C) 2025 The brace authors. All rights reserved.

package brace

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text. Both values are 1-based.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column offset in the line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
