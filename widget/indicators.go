package widget

import (
	"encoding/json"
	"fmt"

	"github.com/aether-xyz/go-aether/ir"
	"github.com/aether-xyz/go-aether/model"
)

// Slider selects a float value within a range.
type Slider struct {
	Min   float64
	Max   float64
	Value float64
}

// NewSlider returns a 0..100 slider.
func NewSlider() *Slider { return &Slider{Min: 0, Max: 100} }

func (s *Slider) Kind() string        { return "slider" }
func (s *Slider) Container() bool     { return false }
func (s *Slider) Clone() model.Widget { c := *s; return &c }

func (s *Slider) Props() []model.Prop {
	return []model.Prop{
		{Name: "min", Value: model.FloatValue(s.Min)},
		{Name: "max", Value: model.FloatValue(s.Max)},
		{Name: "value", Value: model.FloatValue(s.Value)},
	}
}

func (s *Slider) SetProp(name string, val model.Value) error {
	switch name {
	case "min":
		s.Min = val.Float
	case "max":
		s.Max = val.Float
	case "value":
		s.Value = val.Float
	default:
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	return nil
}

func (s *Slider) Events() []model.Event {
	return []model.Event{model.EventChanged}
}

func (s *Slider) EncodeFields() map[string]any {
	return map[string]any{"min": s.Min, "max": s.Max, "value": s.Value}
}

func (s *Slider) DecodeFields(fields map[string]json.RawMessage) error {
	if err := decodeFloat(fields, "min", &s.Min); err != nil {
		return err
	}
	if err := decodeFloat(fields, "max", &s.Max); err != nil {
		return err
	}
	return decodeFloat(fields, "value", &s.Value)
}

func (s *Slider) Lower(in model.LowerInput) ir.Expr {
	min := ir.Float(in.Prop("min").Value.Float)
	max := ir.Float(in.Prop("max").Value.Float)
	value := in.Prop("value")

	if value.Var != nil {
		return ir.CallName("widget.NewSliderWithData", min, max, stateField(value.Var))
	}

	var body []ir.Stmt
	if value.Value.Float != 0 {
		body = append(body, ir.ExprStmt{
			X: ir.Call{Fn: ir.Sel{X: ir.Ident("o"), Name: "SetValue"}, Args: []ir.Expr{ir.Float(value.Value.Float)}},
		})
	}
	if method, ok := in.Handlers[model.EventChanged]; ok {
		body = append(body, ir.Assign{
			LHS: ir.Sel{X: ir.Ident("o"), Name: "OnChanged"},
			RHS: handlerThunk("_ float64", method),
		})
	}
	newExpr := ir.CallName("widget.NewSlider", min, max)
	if len(body) == 0 {
		return newExpr
	}
	return ir.Setup{Type: "*widget.Slider", New: newExpr, Body: body}
}

// Progress displays a 0..1 completion fraction.
type Progress struct {
	Value float64
}

// NewProgress returns an empty progress bar.
func NewProgress() *Progress { return &Progress{} }

func (p *Progress) Kind() string        { return "progress" }
func (p *Progress) Container() bool     { return false }
func (p *Progress) Clone() model.Widget { c := *p; return &c }

func (p *Progress) Props() []model.Prop {
	return []model.Prop{{Name: "value", Value: model.FloatValue(p.Value)}}
}

func (p *Progress) SetProp(name string, val model.Value) error {
	if name != "value" {
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	p.Value = val.Float
	return nil
}

func (p *Progress) Events() []model.Event { return nil }

func (p *Progress) EncodeFields() map[string]any {
	return map[string]any{"value": p.Value}
}

func (p *Progress) DecodeFields(fields map[string]json.RawMessage) error {
	return decodeFloat(fields, "value", &p.Value)
}

func (p *Progress) Lower(in model.LowerInput) ir.Expr {
	value := in.Prop("value")
	if value.Var != nil {
		return ir.CallName("widget.NewProgressBarWithData", stateField(value.Var))
	}
	newExpr := ir.CallName("widget.NewProgressBar")
	if value.Value.Float == 0 {
		return newExpr
	}
	return ir.Setup{Type: "*widget.ProgressBar", New: newExpr, Body: []ir.Stmt{
		ir.ExprStmt{X: ir.Call{Fn: ir.Sel{X: ir.Ident("o"), Name: "SetValue"}, Args: []ir.Expr{ir.Float(value.Value.Float)}}},
	}}
}

// Image displays a named asset from the document's asset registry.
type Image struct {
	Asset string
}

// NewImage returns an image with no asset reference.
func NewImage() *Image { return &Image{} }

func (i *Image) Kind() string        { return "image" }
func (i *Image) Container() bool     { return false }
func (i *Image) Clone() model.Widget { c := *i; return &c }

func (i *Image) Props() []model.Prop {
	return []model.Prop{{Name: "asset", Value: model.StringValue(i.Asset)}}
}

func (i *Image) SetProp(name string, val model.Value) error {
	if name != "asset" {
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	i.Asset = val.Str
	return nil
}

func (i *Image) Events() []model.Event { return nil }

// AssetNames lists the named assets this node depends on so the generator
// can resolve their paths before lowering. An image with no asset selected
// references nothing.
func (i *Image) AssetNames() []string {
	if i.Asset == "" {
		return nil
	}
	return []string{i.Asset}
}

func (i *Image) EncodeFields() map[string]any {
	return map[string]any{"asset": i.Asset}
}

func (i *Image) DecodeFields(fields map[string]json.RawMessage) error {
	return decodeString(fields, "asset", &i.Asset)
}

func (i *Image) Lower(in model.LowerInput) ir.Expr {
	name := in.Prop("asset").Value.Str
	if name == "" {
		return ir.CallName("widget.NewLabel", ir.String("[no asset selected]"))
	}
	path, ok := in.Assets[name]
	if !ok {
		// The generator has already reported MissingAsset; emit a visible
		// placeholder instead of a broken file reference.
		return ir.CallName("widget.NewLabel", ir.String(fmt.Sprintf("[missing asset: %s]", name)))
	}
	return ir.Setup{
		Type: "*canvas.Image",
		New:  ir.CallName("canvas.NewImageFromFile", ir.String(path)),
		Body: []ir.Stmt{
			ir.Assign{LHS: ir.Sel{X: ir.Ident("o"), Name: "FillMode"}, RHS: ir.Ident("canvas.ImageFillContain")},
		},
	}
}
