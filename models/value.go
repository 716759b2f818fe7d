package models

import (
	"strconv"

	"github.com/spf13/cast"
)

// ValueKind discriminates the scalar shapes a request descriptor may carry.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindText
)

// Value is a scalar taken from a path parameter, query parameter or body
// field. Keeping the shape explicit avoids type-sniffing at escape time.
type Value struct {
	kind    ValueKind
	boolVal bool
	numVal  float64
	textVal string
}

func NullValue() Value {
	return Value{kind: KindNull}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

func NumberValue(n float64) Value {
	return Value{kind: KindNumber, numVal: n}
}

func TextValue(s string) Value {
	return Value{kind: KindText, textVal: s}
}

// ValueOf coerces a dynamically typed scalar into a Value. Unrecognized
// types fall back to their string form rather than failing.
func ValueOf(v any) Value {
	switch typed := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return typed
	case bool:
		return BoolValue(typed)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return NumberValue(cast.ToFloat64(typed))
	case string:
		return TextValue(typed)
	default:
		return TextValue(cast.ToString(typed))
	}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) Bool() bool {
	return v.boolVal
}

func (v Value) Number() float64 {
	return v.numVal
}

func (v Value) Text() string {
	return v.textVal
}

// String renders the raw scalar without any SQL quoting.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		return strconv.FormatFloat(v.numVal, 'f', -1, 64)
	default:
		return v.textVal
	}
}
