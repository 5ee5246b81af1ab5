/*
Package objects defines Lumen's runtime value representation: a tagged
union over exactly the four value-carrying types the language supports.

File: objects/objects.go
*/
package objects

import (
	"fmt"
	"strconv"
)

// Type is the static type of a Lumen value or declaration. Void is only
// ever used as a function's declared return type; it never tags a Value.
type Type string

const (
	IntType    Type = "int"
	FloatType  Type = "float"
	BoolType   Type = "bool"
	StringType Type = "string"
	VoidType   Type = "void"
)

// Value is the runtime representation of a Lumen expression result: a
// tagged union dispatched by Type(), not a class hierarchy of boxed objects.
type Value interface {
	Type() Type
	String() string
}

// Int wraps a signed 64-bit integer value.
type Int struct{ Val int64 }

func (Int) Type() Type       { return IntType }
func (i Int) String() string { return strconv.FormatInt(i.Val, 10) }
func NewInt(v int64) Value   { return Int{Val: v} }

// Float wraps an IEEE-754 double value.
type Float struct{ Val float64 }

func (Float) Type() Type       { return FloatType }
func (f Float) String() string { return strconv.FormatFloat(f.Val, 'f', -1, 64) }
func NewFloat(v float64) Value { return Float{Val: v} }

// Bool wraps a boolean value.
type Bool struct{ Val bool }

func (Bool) Type() Type       { return BoolType }
func (b Bool) String() string { return strconv.FormatBool(b.Val) }
func NewBool(v bool) Value    { return Bool{Val: v} }

// String wraps a text value.
type String struct{ Val string }

func (String) Type() Type       { return StringType }
func (s String) String() string { return s.Val }
func NewString(v string) Value  { return String{Val: v} }

// Equal reports whether two values of the same runtime type hold equal
// data. Callers are expected to have already checked that a.Type() ==
// b.Type(); Equal panics on a type mismatch to surface programming errors
// early rather than silently returning false.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		return av.Val == b.(Int).Val
	case Float:
		return av.Val == b.(Float).Val
	case Bool:
		return av.Val == b.(Bool).Val
	case String:
		return av.Val == b.(String).Val
	default:
		panic(fmt.Sprintf("objects.Equal: unhandled type %T", a))
	}
}

// Less reports whether a < b for the ordered types (Int, Float, String).
// Bool has no defined ordering; callers must reject it before calling Less.
func Less(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		return av.Val < b.(Int).Val
	case Float:
		return av.Val < b.(Float).Val
	case String:
		return av.Val < b.(String).Val
	default:
		panic(fmt.Sprintf("objects.Less: unorderable type %T", a))
	}
}
