package widget

import (
	"encoding/json"
	"fmt"

	"github.com/aether-xyz/go-aether/ir"
	"github.com/aether-xyz/go-aether/model"
)

// VBox arranges children vertically.
type VBox struct {
	Spacing float64
}

// NewVBox returns a vertical layout with default spacing.
func NewVBox() *VBox { return &VBox{Spacing: 5} }

func (v *VBox) Kind() string        { return "vbox" }
func (v *VBox) Container() bool     { return true }
func (v *VBox) Clone() model.Widget { c := *v; return &c }

func (v *VBox) Props() []model.Prop {
	return []model.Prop{{Name: "spacing", Value: model.FloatValue(v.Spacing)}}
}

func (v *VBox) SetProp(name string, val model.Value) error {
	if name != "spacing" {
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	v.Spacing = val.Float
	return nil
}

func (v *VBox) Events() []model.Event { return nil }

func (v *VBox) EncodeFields() map[string]any {
	return map[string]any{"spacing": v.Spacing}
}

func (v *VBox) DecodeFields(fields map[string]json.RawMessage) error {
	return decodeFloat(fields, "spacing", &v.Spacing)
}

func (v *VBox) Lower(in model.LowerInput) ir.Expr {
	return ir.CallName("container.NewVBox", in.Children...)
}

// HBox arranges children horizontally.
type HBox struct {
	Spacing float64
}

// NewHBox returns a horizontal layout with default spacing.
func NewHBox() *HBox { return &HBox{Spacing: 5} }

func (h *HBox) Kind() string        { return "hbox" }
func (h *HBox) Container() bool     { return true }
func (h *HBox) Clone() model.Widget { c := *h; return &c }

func (h *HBox) Props() []model.Prop {
	return []model.Prop{{Name: "spacing", Value: model.FloatValue(h.Spacing)}}
}

func (h *HBox) SetProp(name string, val model.Value) error {
	if name != "spacing" {
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	h.Spacing = val.Float
	return nil
}

func (h *HBox) Events() []model.Event { return nil }

func (h *HBox) EncodeFields() map[string]any {
	return map[string]any{"spacing": h.Spacing}
}

func (h *HBox) DecodeFields(fields map[string]json.RawMessage) error {
	return decodeFloat(fields, "spacing", &h.Spacing)
}

func (h *HBox) Lower(in model.LowerInput) ir.Expr {
	return ir.CallName("container.NewHBox", in.Children...)
}

// Grid arranges children in a fixed number of columns.
type Grid struct {
	Columns int
	Spacing float64
}

// NewGrid returns a two-column grid layout.
func NewGrid() *Grid { return &Grid{Columns: 2, Spacing: 5} }

func (g *Grid) Kind() string        { return "grid" }
func (g *Grid) Container() bool     { return true }
func (g *Grid) Clone() model.Widget { c := *g; return &c }

func (g *Grid) Props() []model.Prop {
	return []model.Prop{
		{Name: "columns", Value: model.IntValue(int64(g.Columns))},
		{Name: "spacing", Value: model.FloatValue(g.Spacing)},
	}
}

func (g *Grid) SetProp(name string, val model.Value) error {
	switch name {
	case "columns":
		g.Columns = int(val.Int)
	case "spacing":
		g.Spacing = val.Float
	default:
		return fmt.Errorf("%w: %s", model.ErrUnknownProperty, name)
	}
	return nil
}

func (g *Grid) Events() []model.Event { return nil }

func (g *Grid) EncodeFields() map[string]any {
	return map[string]any{"columns": g.Columns, "spacing": g.Spacing}
}

func (g *Grid) DecodeFields(fields map[string]json.RawMessage) error {
	if err := decodeInt(fields, "columns", &g.Columns); err != nil {
		return err
	}
	return decodeFloat(fields, "spacing", &g.Spacing)
}

func (g *Grid) Lower(in model.LowerInput) ir.Expr {
	cols := int(in.Prop("columns").Value.Int)
	if cols < 1 {
		cols = 1
	}
	args := append([]ir.Expr{ir.Int(int64(cols))}, in.Children...)
	return ir.CallName("container.NewGridWithColumns", args...)
}
