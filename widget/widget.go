// Package widget provides the built-in node kinds: layout containers and the
// basic controls the palette offers. Each kind registers itself with the
// model registry at init; nothing outside this package enumerates kinds.
//
// Lowering runs inside the generated AppState.Build method, whose receiver
// is named `a`; handler references and bound state fields are emitted
// against that receiver.
package widget

import (
	"encoding/json"
	"fmt"

	"github.com/aether-xyz/go-aether/ir"
	"github.com/aether-xyz/go-aether/model"
)

func init() {
	model.Register("vbox", func() model.Widget { return NewVBox() })
	model.Register("hbox", func() model.Widget { return NewHBox() })
	model.Register("grid", func() model.Widget { return NewGrid() })
	model.Register("label", func() model.Widget { return NewLabel() })
	model.Register("button", func() model.Widget { return NewButton() })
	model.Register("entry", func() model.Widget { return NewEntry() })
	model.Register("check", func() model.Widget { return NewCheck() })
	model.Register("slider", func() model.Widget { return NewSlider() })
	model.Register("progress", func() model.Widget { return NewProgress() })
	model.Register("image", func() model.Widget { return NewImage() })
}

// state returns the bound state field as an expression on the Build receiver.
func stateField(v *model.BoundVar) ir.Expr {
	return ir.Sel{X: ir.Ident("a"), Name: v.Field}
}

// boundString adapts a bound variable of any type to a string data binding.
func boundString(v *model.BoundVar) ir.Expr {
	switch v.Type {
	case model.IntegerType:
		return ir.CallName("binding.IntToString", stateField(v))
	case model.FloatType:
		return ir.CallName("binding.FloatToString", stateField(v))
	case model.BooleanType:
		return ir.CallName("binding.BoolToString", stateField(v))
	default:
		return stateField(v)
	}
}

// handlerThunk wraps a state handler method in a callback with the given
// parameter list, discarding callback arguments.
func handlerThunk(params, method string) ir.Expr {
	call := ir.Call{Fn: ir.Sel{X: ir.Ident("a"), Name: method}}
	if params == "" {
		return ir.Sel{X: ir.Ident("a"), Name: method}
	}
	return ir.Closure{Params: params, Body: []ir.Stmt{ir.ExprStmt{X: call}}}
}

func decodeString(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

func decodeFloat(fields map[string]json.RawMessage, key string, dst *float64) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

func decodeInt(fields map[string]json.RawMessage, key string, dst *int) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

func decodeBool(fields map[string]json.RawMessage, key string, dst *bool) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}
