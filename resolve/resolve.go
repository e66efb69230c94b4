// Package resolve turns bindings and actions into concrete values and typed
// effects. Resolution is consulted twice: during live editing, where failures
// become per-node diagnostics and never block, and during generation, where
// the generator substitutes deterministic fallbacks and reports warnings.
//
// Inline code fragments are data. They are syntax-checked with go/parser and
// lowered into generated output; nothing here ever executes them.
package resolve

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/aether-xyz/go-aether/model"
)

// Error types for the resolve package.
var (
	// ErrDanglingBinding is returned when a binding or action references a
	// variable name absent from the store.
	ErrDanglingBinding = errors.New("dangling binding")

	// ErrTypeMismatch is returned when an action's effect does not fit the
	// variable's type, e.g. incrementing a string.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidFragment is returned when injected code fails to parse as
	// target-language syntax.
	ErrInvalidFragment = errors.New("invalid code fragment")

	// ErrUnknownAction is returned for an action type this build does not
	// recognize.
	ErrUnknownAction = errors.New("unknown action type")
)

// Property resolves one property of a node. Unbound properties return the
// widget's own literal unchanged. Bound properties return the referenced
// variable's typed default, or ErrDanglingBinding naming the variable.
func Property(n *model.Node, prop string, vars model.Variables) (model.Value, error) {
	var literal model.Value
	found := false
	for _, p := range n.Widget.Props() {
		if p.Name == prop {
			literal = p.Value
			found = true
			break
		}
	}
	if !found {
		return model.Value{}, fmt.Errorf("%w: %q on kind %q", model.ErrUnknownProperty, prop, n.Kind())
	}

	varName, bound := n.Bindings[prop]
	if !bound {
		return literal, nil
	}
	v, ok := vars.Get(varName)
	if !ok {
		return literal, fmt.Errorf("%w: property %q references %q", ErrDanglingBinding, prop, varName)
	}
	return v.DefaultValue(), nil
}

// EffectKind discriminates resolved action effects.
type EffectKind string

const (
	EffectIncrement EffectKind = "increment"
	EffectSet       EffectKind = "set"
	EffectCode      EffectKind = "code"
)

// Effect is a resolved, kind-checked action ready for lowering.
type Effect struct {
	Kind     EffectKind
	Variable model.Variable // target variable for increment/set
	Value    model.Value    // literal assignment value for set
	Expr     string         // validated expression for non-literal set
	Code     string         // validated fragment for code effects
}

// Action resolves an action against the variable store into a typed effect.
func Action(a model.Action, vars model.Variables) (Effect, error) {
	switch a.Type {
	case model.ActionIncrement:
		v, ok := vars.Get(a.Variable)
		if !ok {
			return Effect{}, fmt.Errorf("%w: action references %q", ErrDanglingBinding, a.Variable)
		}
		if !v.Type.Numeric() {
			return Effect{}, fmt.Errorf("%w: cannot increment %s variable %q", ErrTypeMismatch, v.Type, v.Name)
		}
		return Effect{Kind: EffectIncrement, Variable: v}, nil

	case model.ActionSet:
		v, ok := vars.Get(a.Variable)
		if !ok {
			return Effect{}, fmt.Errorf("%w: action references %q", ErrDanglingBinding, a.Variable)
		}
		if lit, ok := parseLiteral(v.Type, a.Value); ok {
			return Effect{Kind: EffectSet, Variable: v, Value: lit}, nil
		}
		// Not a literal of the variable's type: treat as an expression and
		// validate the syntax.
		if _, err := parser.ParseExpr(a.Value); err != nil {
			return Effect{}, fmt.Errorf("%w: set %q: %v", ErrInvalidFragment, v.Name, err)
		}
		return Effect{Kind: EffectSet, Variable: v, Expr: a.Value}, nil

	case model.ActionCode:
		if err := ValidateFragment(a.Code); err != nil {
			return Effect{}, err
		}
		return Effect{Kind: EffectCode, Code: a.Code}, nil

	default:
		return Effect{}, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// parseLiteral strictly parses raw as a literal of the given type. String
// variables always accept the raw text verbatim.
func parseLiteral(t model.VariableType, raw string) (model.Value, bool) {
	switch t {
	case model.StringType:
		return model.StringValue(raw), true
	case model.IntegerType:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.Value{}, false
		}
		return model.IntValue(i), true
	case model.FloatType:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Value{}, false
		}
		return model.FloatValue(f), true
	case model.BooleanType:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return model.Value{}, false
		}
		return model.BoolValue(b), true
	}
	return model.Value{}, false
}

// ValidateFragment syntax-checks an inline statement fragment. The fragment
// is parsed inside a function body; it is never evaluated.
func ValidateFragment(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty fragment", ErrInvalidFragment)
	}
	src := "package p\n\nfunc _() {\n" + code + "\n}\n"
	if _, err := parser.ParseFile(token.NewFileSet(), "fragment.go", src, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFragment, err)
	}
	return nil
}

// Diagnostic describes one resolution issue on a node, surfaced to the
// property editor during live editing.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Element string `json:"element,omitempty"` // property or event name
}

// NodeDiagnostics aggregates resolution issues for one node: dangling
// property bindings and unresolvable actions.
func NodeDiagnostics(n *model.Node, vars model.Variables) []Diagnostic {
	var diags []Diagnostic
	for _, p := range n.Widget.Props() {
		if _, bound := n.Bindings[p.Name]; !bound {
			continue
		}
		if _, err := Property(n, p.Name, vars); err != nil {
			diags = append(diags, Diagnostic{Code: code(err), Message: err.Error(), Element: p.Name})
		}
	}
	for _, ev := range n.Widget.Events() {
		action, ok := n.Events[ev]
		if !ok {
			continue
		}
		if _, err := Action(action, vars); err != nil {
			diags = append(diags, Diagnostic{Code: code(err), Message: err.Error(), Element: string(ev)})
		}
	}
	return diags
}

// DocumentDiagnostics aggregates NodeDiagnostics across the whole tree in
// document order, keyed by node ID.
func DocumentDiagnostics(doc *model.Document) map[string][]Diagnostic {
	all := map[string][]Diagnostic{}
	doc.Walk(func(n *model.Node) {
		if diags := NodeDiagnostics(n, doc.Variables); len(diags) > 0 {
			all[n.ID.String()] = diags
		}
	})
	return all
}

func code(err error) string {
	switch {
	case errors.Is(err, ErrDanglingBinding):
		return "dangling_binding"
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, ErrInvalidFragment):
		return "invalid_fragment"
	case errors.Is(err, model.ErrUnknownProperty):
		return "unknown_property"
	default:
		return "resolve_error"
	}
}
