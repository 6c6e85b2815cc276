// Copyright (C) 2025 The brace authors. All rights reserved.

package brace

import "fmt"

// Kind identifies which variant of a Value is active.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", v)
	}
	return kindStr[v]
}

// A Value is a single JSON value: null, a Boolean, a number, a string, an
// object, or an array. Exactly one variant is active at a time; the zero
// Value is null.
//
// The narrowing accessors (Bool, Float64, Text, Object, Array, and friends)
// require that the caller has established the active variant, via Kind or the
// Is predicates, before calling: a variant mismatch is a programmer error and
// panics rather than returning an error. Data-level faults are confined to
// Parse.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	obj  map[string]Value
	arr  []Value
}

// Kind reports which variant of v is active.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsBool reports whether v is a Boolean.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsNumber reports whether v is a number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// IsString reports whether v is a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsObject reports whether v is an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsArray reports whether v is an array.
func (v Value) IsArray() bool { return v.kind == KindArray }

func (v Value) mustKind(want Kind) {
	if v.kind != want {
		panic(fmt.Sprintf("json value is %v, not %v", v.kind, want))
	}
}

// Bool returns the Boolean held by v. It panics if v is not a Boolean.
func (v Value) Bool() bool { v.mustKind(KindBool); return v.b }

// Float64 returns the number held by v. It panics if v is not a number.
func (v Value) Float64() float64 { v.mustKind(KindNumber); return v.num }

// Int returns the number held by v truncated to an int.
// It panics if v is not a number.
func (v Value) Int() int { v.mustKind(KindNumber); return int(v.num) }

// Int64 returns the number held by v truncated to an int64.
// It panics if v is not a number.
func (v Value) Int64() int64 { v.mustKind(KindNumber); return int64(v.num) }

// Uint returns the number held by v truncated to a uint.
// It panics if v is not a number.
func (v Value) Uint() uint { v.mustKind(KindNumber); return uint(v.num) }

// Text returns the string held by v. It panics if v is not a string.
func (v Value) Text() string { v.mustKind(KindString); return v.str }

// Object returns the key-value mapping held by v.
// It panics if v is not an object.
func (v Value) Object() map[string]Value { v.mustKind(KindObject); return v.obj }

// Array returns the elements held by v. It panics if v is not an array.
func (v Value) Array() []Value { v.mustKind(KindArray); return v.arr }

// Len returns the number of members of an object or elements of an array.
// It panics if v is neither.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.obj)
	case KindArray:
		return len(v.arr)
	}
	panic(fmt.Sprintf("json value is %v, not object or array", v.kind))
}

// Contains reports whether v is an object having the given key. It reports
// false, rather than panicking, when v is not an object.
func (v Value) Contains(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.obj[key]
	return ok
}

// Key returns the value of the given object member. It panics if v is not an
// object or the key is not present; use Contains to check membership first.
func (v Value) Key(key string) Value {
	v.mustKind(KindObject)
	val, ok := v.obj[key]
	if !ok {
		panic(fmt.Sprintf("no such key %q in object", key))
	}
	return val
}

// Index returns the array element at offset i. It panics if v is not an
// array or i is out of range.
func (v Value) Index(i int) Value { v.mustKind(KindArray); return v.arr[i] }

// EqualString reports whether v is a string equal to s. A variant mismatch
// reports false, not an error.
func (v Value) EqualString(s string) bool { return v.kind == KindString && v.str == s }

// EqualNumber reports whether v is a number equal to f. A variant mismatch
// reports false, not an error.
func (v Value) EqualNumber(f float64) bool { return v.kind == KindNumber && v.num == f }

// Interface converts v to a plain Go value: nil, bool, float64, string,
// map[string]any, or []any, applied recursively.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindObject:
		m := make(map[string]any, len(v.obj))
		for key, elt := range v.obj {
			m[key] = elt.Interface()
		}
		return m
	case KindArray:
		vs := make([]any, len(v.arr))
		for i, elt := range v.arr {
			vs[i] = elt.Interface()
		}
		return vs
	default:
		return nil
	}
}

// ToValue constructs a Value from a plain Go value of one of these types:
//
//	nil            null
//	bool           Boolean
//	int, int64     number
//	float64        number
//	string         string
//	map[string]any object (values converted recursively)
//	[]any          array (elements converted recursively)
//	Value          returned unchanged
//
// ToValue panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case bool:
		return Value{kind: KindBool, b: t}
	case int:
		return Value{kind: KindNumber, num: float64(t)}
	case int64:
		return Value{kind: KindNumber, num: float64(t)}
	case float64:
		return Value{kind: KindNumber, num: t}
	case string:
		return Value{kind: KindString, str: t}
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for key, elt := range t {
			obj[key] = ToValue(elt)
		}
		return Value{kind: KindObject, obj: obj}
	case []any:
		arr := make([]Value, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return Value{kind: KindArray, arr: arr}
	case Value:
		return t
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
