// Copyright (C) 2025 The brace authors. All rights reserved.

package brace_test

import (
	"testing"

	"github.com/bracejson/brace"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestValuePredicates(t *testing.T) {
	tests := []struct {
		input string
		kind  brace.Kind
	}{
		{"null", brace.KindNull},
		{"true", brace.KindBool},
		{"3.25", brace.KindNumber},
		{`"s"`, brace.KindString},
		{"{}", brace.KindObject},
		{"[]", brace.KindArray},
	}

	for _, test := range tests {
		v := mustParse(t, test.input)
		if v.Kind() != test.kind {
			t.Errorf("Parse(%#q): kind %v, want %v", test.input, v.Kind(), test.kind)
		}
		preds := map[brace.Kind]bool{
			brace.KindNull:   v.IsNull(),
			brace.KindBool:   v.IsBool(),
			brace.KindNumber: v.IsNumber(),
			brace.KindString: v.IsString(),
			brace.KindObject: v.IsObject(),
			brace.KindArray:  v.IsArray(),
		}
		for kind, ok := range preds {
			if want := kind == test.kind; ok != want {
				t.Errorf("Parse(%#q): Is%v = %v, want %v", test.input, kind, ok, want)
			}
		}
	}
}

func TestValueAccessors(t *testing.T) {
	v := mustParse(t, `{"n": 25.75, "s": "txt", "b": true, "a": [1, 2]}`)

	if got := v.Key("n").Float64(); got != 25.75 {
		t.Errorf("Float64: got %v, want 25.75", got)
	}
	if got := v.Key("n").Int(); got != 25 {
		t.Errorf("Int: got %v, want 25", got)
	}
	if got := v.Key("n").Int64(); got != 25 {
		t.Errorf("Int64: got %v, want 25", got)
	}
	if got := v.Key("n").Uint(); got != 25 {
		t.Errorf("Uint: got %v, want 25", got)
	}
	if got := v.Key("s").Text(); got != "txt" {
		t.Errorf("Text: got %q, want %q", got, "txt")
	}
	if got := v.Key("b").Bool(); !got {
		t.Error("Bool: got false, want true")
	}
	if got := v.Key("a").Array(); len(got) != 2 {
		t.Errorf("Array: got %d elements, want 2", len(got))
	}
	if got := v.Object(); len(got) != 4 {
		t.Errorf("Object: got %d members, want 4", len(got))
	}
	if got, want := v.Len(), 4; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	if got, want := v.Key("a").Len(), 2; got != want {
		t.Errorf("a.Len: got %d, want %d", got, want)
	}
}

func TestValueEqual(t *testing.T) {
	str := mustParse(t, `"golf"`)
	num := mustParse(t, "-74.006")

	if !str.EqualString("golf") {
		t.Error(`EqualString("golf"): got false, want true`)
	}
	if str.EqualString("gold") {
		t.Error(`EqualString("gold"): got true, want false`)
	}
	if str.EqualNumber(0) {
		t.Error("EqualNumber on a string: got true, want false")
	}
	if !num.EqualNumber(-74.006) {
		t.Error("EqualNumber(-74.006): got false, want true")
	}
	if num.EqualNumber(-74) {
		t.Error("EqualNumber(-74): got true, want false")
	}
	if num.EqualString("-74.006") {
		t.Error("EqualString on a number: got true, want false")
	}
}

func TestValueContains(t *testing.T) {
	v := mustParse(t, `{"city": "NYC"}`)

	if !v.Contains("city") {
		t.Error(`Contains("city"): got false, want true`)
	}
	if v.Contains("state") {
		t.Error(`Contains("state"): got true, want false`)
	}

	// Contains on a non-object is false, not a panic.
	for _, input := range []string{"null", "true", "1", `"s"`, "[]"} {
		if mustParse(t, input).Contains("city") {
			t.Errorf("Contains on %s: got true, want false", input)
		}
	}
}

// The narrowing accessors are precondition-checked: a variant mismatch is a
// programmer error and panics.
func TestValueContract(t *testing.T) {
	null := brace.Value{}
	num := brace.ToValue(3.5)
	obj := brace.ToValue(map[string]any{"a": 1})
	arr := brace.ToValue([]any{1, 2})

	mtest.MustPanic(t, func() { null.Bool() })
	mtest.MustPanic(t, func() { null.Text() })
	mtest.MustPanic(t, func() { num.Text() })
	mtest.MustPanic(t, func() { num.Object() })
	mtest.MustPanic(t, func() { num.Array() })
	mtest.MustPanic(t, func() { num.Len() })
	mtest.MustPanic(t, func() { obj.Float64() })
	mtest.MustPanic(t, func() { obj.Index(0) })
	mtest.MustPanic(t, func() { arr.Key("a") })

	// Missing keys and out-of-range indexes are hard lookup failures.
	mtest.MustPanic(t, func() { obj.Key("b") })
	mtest.MustPanic(t, func() { arr.Index(2) })
	mtest.MustPanic(t, func() { arr.Index(-1) })
}

func TestToValue(t *testing.T) {
	in := map[string]any{
		"name":   "Jonny",
		"age":    25.0,
		"active": true,
		"tags":   []any{"golf", "reading"},
		"addr":   map[string]any{"city": "NYC"},
		"spouse": nil,
	}

	v := brace.ToValue(in)
	if diff := cmp.Diff(in, v.Interface()); diff != "" {
		t.Errorf("Interface round trip: (-want, +got)\n%s", diff)
	}

	// Integer inputs convert to the number variant.
	if got := brace.ToValue(25); !got.EqualNumber(25) {
		t.Errorf("ToValue(25): got %v, want number 25", got.Interface())
	}
	if got := brace.ToValue(int64(-3)); !got.EqualNumber(-3) {
		t.Errorf("ToValue(int64(-3)): got %v, want number -3", got.Interface())
	}

	// A Value passes through unchanged.
	opt := cmp.AllowUnexported(brace.Value{})
	if diff := cmp.Diff(v, brace.ToValue(v), opt); diff != "" {
		t.Errorf("ToValue(Value): (-want, +got)\n%s", diff)
	}

	mtest.MustPanic(t, func() { brace.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { brace.ToValue(func() {}) })
	mtest.MustPanic(t, func() { brace.ToValue(make(chan struct{})) })
}

func TestValueInterface(t *testing.T) {
	var zero brace.Value
	if got := zero.Interface(); got != nil {
		t.Errorf("zero Value: got %v, want nil", got)
	}

	v := mustParse(t, `{"a": [true, null, 1.5], "b": "x"}`)
	want := map[string]any{
		"a": []any{true, nil, 1.5},
		"b": "x",
	}
	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Errorf("Interface: (-want, +got)\n%s", diff)
	}

	// The parse tree and the equivalent constructed tree agree.
	opt := cmp.AllowUnexported(brace.Value{})
	if diff := cmp.Diff(brace.ToValue(want), v, opt); diff != "" {
		t.Errorf("Parse vs ToValue: (-want, +got)\n%s", diff)
	}
}
