package model

import (
	"encoding/json"

	"github.com/aether-xyz/go-aether/ir"
)

// Prop is one typed, bindable property a widget kind exposes.
type Prop struct {
	Name  string
	Value Value
}

// BoundVar describes the variable a resolved property is bound to, including
// the state-struct field name the generator assigned to it.
type BoundVar struct {
	Name  string
	Type  VariableType
	Field string
}

// ResolvedProp is a property after binding resolution. Value always carries a
// usable literal; Var is non-nil when the property is variable-bound and the
// lowering should emit a live binding instead of the literal.
type ResolvedProp struct {
	Value Value
	Var   *BoundVar
}

// LowerInput carries everything a widget needs to lower itself: its resolved
// properties, the already-lowered children in document order, the handler
// method name per event that has an action, and resolved asset paths.
type LowerInput struct {
	Props    map[string]ResolvedProp
	Children []ir.Expr
	Handlers map[Event]string
	Assets   map[string]string
}

// Prop returns the resolved property by name, or a zero value if the
// generator did not supply it.
func (in LowerInput) Prop(name string) ResolvedProp {
	return in.Props[name]
}

// Widget is the behavior contract for a node kind. The registry maps kind
// tags to factories producing default-initialized widgets; the tree itself
// never enumerates kinds, so registering a new widget requires no change to
// the serializer or the generator.
type Widget interface {
	// Kind returns the stable tag written to the interchange format.
	Kind() string

	// Clone returns an independent deep copy of the widget's fields.
	Clone() Widget

	// Props lists the widget's bindable properties in declaration order.
	Props() []Prop

	// SetProp updates one property from an inspector edit.
	SetProp(name string, v Value) error

	// Events lists the events this kind supports, in declaration order.
	Events() []Event

	// Container reports whether nodes of this kind own children.
	Container() bool

	// EncodeFields renders the kind-specific fields for serialization.
	EncodeFields() map[string]any

	// DecodeFields populates the widget from interchange fields. Unknown
	// keys are ignored here and preserved opaquely by the serializer.
	DecodeFields(fields map[string]json.RawMessage) error

	// Lower produces the intermediate expression instantiating this widget,
	// splicing already-lowered children in order.
	Lower(in LowerInput) ir.Expr
}
