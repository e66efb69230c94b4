package widget

import (
	"encoding/json"
	"fmt"

	"github.com/aether-xyz/go-aether/ir"
	"github.com/aether-xyz/go-aether/model"
)

// Label displays static or variable-bound text.
type Label struct {
	Text string
}

// NewLabel returns a label with placeholder text.
func NewLabel() *Label { return &Label{Text: "Label"} }

func (l *Label) Kind() string        { return "label" }
func (l *Label) Container() bool     { return false }
func (l *Label) Clone() model.Widget { c := *l; return &c }

func (l *Label) Props() []model.Prop {
	return []model.Prop{{Name: "text", Value: model.StringValue(l.Text)}}
}

func (l *Label) SetProp(name string, val model.Value) error {
	if name != "text" {
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	l.Text = val.Str
	return nil
}

func (l *Label) Events() []model.Event { return nil }

func (l *Label) EncodeFields() map[string]any {
	return map[string]any{"text": l.Text}
}

func (l *Label) DecodeFields(fields map[string]json.RawMessage) error {
	return decodeString(fields, "text", &l.Text)
}

func (l *Label) Lower(in model.LowerInput) ir.Expr {
	p := in.Prop("text")
	if p.Var != nil {
		return ir.CallName("widget.NewLabelWithData", boundString(p.Var))
	}
	return ir.CallName("widget.NewLabel", ir.String(p.Value.Str))
}

// Button triggers its clicked action.
type Button struct {
	Text string
}

// NewButton returns a button with placeholder text.
func NewButton() *Button { return &Button{Text: "Click Me"} }

func (b *Button) Kind() string        { return "button" }
func (b *Button) Container() bool     { return false }
func (b *Button) Clone() model.Widget { c := *b; return &c }

func (b *Button) Props() []model.Prop {
	return []model.Prop{{Name: "text", Value: model.StringValue(b.Text)}}
}

func (b *Button) SetProp(name string, val model.Value) error {
	if name != "text" {
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	b.Text = val.Str
	return nil
}

func (b *Button) Events() []model.Event {
	return []model.Event{model.EventClicked}
}

func (b *Button) EncodeFields() map[string]any {
	return map[string]any{"text": b.Text}
}

func (b *Button) DecodeFields(fields map[string]json.RawMessage) error {
	return decodeString(fields, "text", &b.Text)
}

func (b *Button) Lower(in model.LowerInput) ir.Expr {
	text := ir.String(in.Prop("text").Value.Str)
	if method, ok := in.Handlers[model.EventClicked]; ok {
		return ir.CallName("widget.NewButton", text, handlerThunk("", method))
	}
	return ir.CallName("widget.NewButton", text, ir.Nil{})
}

// Entry is a single-line text input.
type Entry struct {
	Value       string
	Placeholder string
}

// NewEntry returns an empty text input.
func NewEntry() *Entry { return &Entry{} }

func (e *Entry) Kind() string        { return "entry" }
func (e *Entry) Container() bool     { return false }
func (e *Entry) Clone() model.Widget { c := *e; return &c }

func (e *Entry) Props() []model.Prop {
	return []model.Prop{
		{Name: "value", Value: model.StringValue(e.Value)},
		{Name: "placeholder", Value: model.StringValue(e.Placeholder)},
	}
}

func (e *Entry) SetProp(name string, val model.Value) error {
	switch name {
	case "value":
		e.Value = val.Str
	case "placeholder":
		e.Placeholder = val.Str
	default:
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	return nil
}

func (e *Entry) Events() []model.Event {
	return []model.Event{model.EventChanged}
}

func (e *Entry) EncodeFields() map[string]any {
	return map[string]any{"value": e.Value, "placeholder": e.Placeholder}
}

func (e *Entry) DecodeFields(fields map[string]json.RawMessage) error {
	if err := decodeString(fields, "value", &e.Value); err != nil {
		return err
	}
	return decodeString(fields, "placeholder", &e.Placeholder)
}

func (e *Entry) Lower(in model.LowerInput) ir.Expr {
	p := in.Prop("value")
	var newExpr ir.Expr
	if p.Var != nil {
		newExpr = ir.CallName("widget.NewEntryWithData", boundString(p.Var))
	} else {
		newExpr = ir.CallName("widget.NewEntry")
	}

	var body []ir.Stmt
	if placeholder := in.Prop("placeholder").Value.Str; placeholder != "" {
		body = append(body, ir.ExprStmt{
			X: ir.Call{Fn: ir.Sel{X: ir.Ident("o"), Name: "SetPlaceHolder"}, Args: []ir.Expr{ir.String(placeholder)}},
		})
	}
	if p.Var == nil && p.Value.Str != "" {
		body = append(body, ir.ExprStmt{
			X: ir.Call{Fn: ir.Sel{X: ir.Ident("o"), Name: "SetText"}, Args: []ir.Expr{ir.String(p.Value.Str)}},
		})
	}
	if method, ok := in.Handlers[model.EventChanged]; ok {
		body = append(body, ir.Assign{
			LHS: ir.Sel{X: ir.Ident("o"), Name: "OnChanged"},
			RHS: handlerThunk("_ string", method),
		})
	}
	if len(body) == 0 {
		return newExpr
	}
	return ir.Setup{Type: "*widget.Entry", New: newExpr, Body: body}
}

// Check is a labelled checkbox.
type Check struct {
	Label   string
	Checked bool
}

// NewCheck returns an unchecked checkbox.
func NewCheck() *Check { return &Check{Label: "Check"} }

func (c *Check) Kind() string        { return "check" }
func (c *Check) Container() bool     { return false }
func (c *Check) Clone() model.Widget { d := *c; return &d }

func (c *Check) Props() []model.Prop {
	return []model.Prop{
		{Name: "label", Value: model.StringValue(c.Label)},
		{Name: "checked", Value: model.BoolValue(c.Checked)},
	}
}

func (c *Check) SetProp(name string, val model.Value) error {
	switch name {
	case "label":
		c.Label = val.Str
	case "checked":
		c.Checked = val.Bool
	default:
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	return nil
}

func (c *Check) Events() []model.Event {
	return []model.Event{model.EventChanged}
}

func (c *Check) EncodeFields() map[string]any {
	return map[string]any{"label": c.Label, "checked": c.Checked}
}

func (c *Check) DecodeFields(fields map[string]json.RawMessage) error {
	if err := decodeString(fields, "label", &c.Label); err != nil {
		return err
	}
	return decodeBool(fields, "checked", &c.Checked)
}

func (c *Check) Lower(in model.LowerInput) ir.Expr {
	label := ir.String(in.Prop("label").Value.Str)
	checked := in.Prop("checked")

	if checked.Var != nil {
		return ir.CallName("widget.NewCheckWithData", label, stateField(checked.Var))
	}

	var onChanged ir.Expr = ir.Nil{}
	if method, ok := in.Handlers[model.EventChanged]; ok {
		onChanged = handlerThunk("_ bool", method)
	}
	newExpr := ir.CallName("widget.NewCheck", label, onChanged)
	if !checked.Value.Bool {
		return newExpr
	}
	return ir.Setup{Type: "*widget.Check", New: newExpr, Body: []ir.Stmt{
		ir.ExprStmt{X: ir.Call{Fn: ir.Sel{X: ir.Ident("o"), Name: "SetChecked"}, Args: []ir.Expr{ir.Bool(true)}}},
	}}
}
