package ir

import "testing"

func TestRenderLiterals(t *testing.T) {
	cases := []struct {
		e    Expr
		want string
	}{
		{Ident("widget.NewLabel"), "widget.NewLabel"},
		{String(`say "hi"`), `"say \"hi\""`},
		{Int(42), "42"},
		{Float(1), "1.0"},
		{Float(0.5), "0.5"},
		{Bool(true), "true"},
		{Nil{}, "nil"},
		{Raw("a.Counter"), "a.Counter"},
	}
	for _, c := range cases {
		if got := RenderExpr(c.e, 0); got != c.want {
			t.Errorf("RenderExpr = %q, want %q", got, c.want)
		}
	}
}

func TestRenderCall(t *testing.T) {
	e := CallName("widget.NewLabel", String("hello"))
	if got := RenderExpr(e, 0); got != `widget.NewLabel("hello")` {
		t.Errorf("call = %q", got)
	}

	nested := CallName("container.NewVBox",
		CallName("widget.NewLabel", String("a")),
		CallName("widget.NewButton", String("go"), Nil{}),
	)
	want := `container.NewVBox(widget.NewLabel("a"), widget.NewButton("go", nil))`
	if got := RenderExpr(nested, 0); got != want {
		t.Errorf("nested call = %q, want %q", got, want)
	}
}

func TestRenderSel(t *testing.T) {
	e := Sel{X: Ident("a"), Name: "Counter"}
	if got := RenderExpr(e, 0); got != "a.Counter" {
		t.Errorf("sel = %q", got)
	}
}

func TestRenderClosure(t *testing.T) {
	e := Closure{
		Params: "_ string",
		Body: []Stmt{
			ExprStmt{X: Call{Fn: Sel{X: Ident("a"), Name: "OnChanged"}}},
		},
	}
	want := "func(_ string) {\n\ta.OnChanged()\n}"
	if got := RenderExpr(e, 0); got != want {
		t.Errorf("closure = %q, want %q", got, want)
	}
}

func TestRenderSetup(t *testing.T) {
	e := Setup{
		Type: "*widget.Slider",
		New:  CallName("widget.NewSlider", Float(0), Float(100)),
		Body: []Stmt{
			ExprStmt{X: Call{Fn: Sel{X: Ident("o"), Name: "SetValue"}, Args: []Expr{Float(50)}}},
		},
	}
	want := "func() *widget.Slider {\n\to := widget.NewSlider(0.0, 100.0)\n\to.SetValue(50.0)\n\treturn o\n}()"
	if got := RenderExpr(e, 0); got != want {
		t.Errorf("setup = %q, want %q", got, want)
	}
}

func TestRenderBlock(t *testing.T) {
	stmts := []Stmt{
		Assign{LHS: Ident("v"), RHS: Int(1), Define: true},
		Assign{LHS: Ident("v"), RHS: Int(2)},
		Return{X: Ident("v")},
	}
	want := "\tv := 1\n\tv = 2\n\treturn v\n"
	if got := RenderBlock(stmts, 1); got != want {
		t.Errorf("block = %q, want %q", got, want)
	}
}

func TestRenderRawStmtMultiline(t *testing.T) {
	s := RawStmt("x := 1\n_ = x\n")
	want := "\tx := 1\n\t_ = x\n"
	if got := RenderBlock([]Stmt{s}, 1); got != want {
		t.Errorf("raw stmt = %q, want %q", got, want)
	}
}

func TestRenderComment(t *testing.T) {
	got := RenderBlock([]Stmt{Comment("placeholder")}, 0)
	if got != "// placeholder\n" {
		t.Errorf("comment = %q", got)
	}
}
