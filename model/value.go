// Package model defines the open polymorphic document tree for the visual
// designer: nodes, the widget kind registry, variables, assets, and the
// structural operations the editing surface drives.
package model

import (
	"fmt"
	"strconv"
)

// VariableType enumerates the value kinds usable as binding targets.
type VariableType string

const (
	StringType  VariableType = "string"
	IntegerType VariableType = "integer"
	FloatType   VariableType = "float"
	BooleanType VariableType = "boolean"
)

// Numeric returns true for types that support increment actions.
func (t VariableType) Numeric() bool {
	return t == IntegerType || t == FloatType
}

// Valid reports whether t is one of the declared variable types.
func (t VariableType) Valid() bool {
	switch t {
	case StringType, IntegerType, FloatType, BooleanType:
		return true
	}
	return false
}

// Value is a typed literal: a property value or a resolved variable default.
type Value struct {
	Type  VariableType
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

func StringValue(s string) Value  { return Value{Type: StringType, Str: s} }
func IntValue(i int64) Value      { return Value{Type: IntegerType, Int: i} }
func FloatValue(f float64) Value  { return Value{Type: FloatType, Float: f} }
func BoolValue(b bool) Value      { return Value{Type: BooleanType, Bool: b} }

// String renders the value the way the inspector displays it.
func (v Value) String() string {
	switch v.Type {
	case IntegerType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case BooleanType:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// ParseValue converts a stored string representation into a typed Value.
// Unparseable numeric and boolean text falls back to the zero value, matching
// how generated initializers treat malformed defaults.
func ParseValue(t VariableType, raw string) Value {
	switch t {
	case IntegerType:
		i, _ := strconv.ParseInt(raw, 10, 64)
		return IntValue(i)
	case FloatType:
		f, _ := strconv.ParseFloat(raw, 64)
		return FloatValue(f)
	case BooleanType:
		b, _ := strconv.ParseBool(raw)
		return BoolValue(b)
	default:
		return StringValue(raw)
	}
}

// GoLiteral renders the value as a Go source literal.
func (v Value) GoLiteral() string {
	switch v.Type {
	case IntegerType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		s := strconv.FormatFloat(v.Float, 'g', -1, 64)
		// Bare integers would change the inferred type of the literal.
		if !containsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case BooleanType:
		return strconv.FormatBool(v.Bool)
	default:
		return strconv.Quote(v.Str)
	}
}

func containsAny(s, chars string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return true
			}
		}
	}
	return false
}

// Coerce converts v to the target type, erroring when the conversion would
// be lossy or nonsensical.
func (v Value) Coerce(t VariableType) (Value, error) {
	if v.Type == t {
		return v, nil
	}
	switch t {
	case StringType:
		return StringValue(v.String()), nil
	case IntegerType:
		if v.Type == FloatType {
			return IntValue(int64(v.Float)), nil
		}
	case FloatType:
		if v.Type == IntegerType {
			return FloatValue(float64(v.Int)), nil
		}
	}
	return Value{}, fmt.Errorf("cannot coerce %s value to %s", v.Type, t)
}
