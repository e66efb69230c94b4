// Package fyne generates a compilable Fyne application from a designer
// document. The output is always exactly three files: a go.mod manifest, a
// main.go entry point, and an app.go state module whose struct fields are
// the document's variables and whose methods are the generated event
// handlers.
//
// Generation is a pure function of the document: the same tree and variable
// store produce byte-identical output, so generated projects diff cleanly
// across edits. It is also restartable work: the context is checked between
// nodes and a cancelled run leaves nothing to tear down.
package fyne

import (
	"context"
	"errors"
	"fmt"
	"go/format"
	"go/scanner"
	"go/token"
	"sort"
	"strings"

	"github.com/aether-xyz/go-aether/ir"
	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/resolve"
)

// FyneVersion pins the framework release written into generated manifests.
const FyneVersion = "v2.5.3"

// Generate produces a Fyne project from a document. The only error returned
// is context cancellation; resolution and formatting failures degrade into
// report warnings instead of aborting the export.
func Generate(ctx context.Context, doc *model.Document) (*Project, error) {
	g := &generator{
		doc:    doc,
		fields: fieldNames(doc.Variables),
		assets: map[string]string{},
	}
	for name, a := range doc.Assets {
		g.assets[name] = a.Path
	}

	rootExpr, err := g.lower(ctx, doc.Root)
	if err != nil {
		return nil, err
	}

	module := moduleName(doc.Name)
	project := &Project{Module: module, Title: doc.Name}
	project.Files = []File{
		{Name: "go.mod", Content: []byte(g.manifest(module))},
		{Name: "main.go", Content: g.gofmt("main.go", g.entryPoint())},
		{Name: "app.go", Content: g.gofmt("app.go", g.stateModule(rootExpr))},
	}

	g.report.Status = StatusOK
	if len(g.report.Warnings) > 0 {
		g.report.Status = StatusWarnings
	}
	project.Report = g.report
	return project, nil
}

type handler struct {
	name string
	body []ir.Stmt
}

type generator struct {
	doc      *model.Document
	fields   map[string]string // variable name -> state field name
	assets   map[string]string // asset name -> path
	handlers []handler         // document order
	report   Report
}

// assetReferrer is implemented by widget kinds that reference named assets.
type assetReferrer interface {
	AssetNames() []string
}

func (g *generator) warn(code, message, element string) {
	g.report.Warnings = append(g.report.Warnings, Warning{Code: code, Message: message, Element: element})
}

// lower recursively converts a node into its intermediate expression,
// depth-first pre-order, splicing children in document order.
func (g *generator) lower(ctx context.Context, n *model.Node) (ir.Expr, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := model.LowerInput{
		Props:    g.resolveProps(n),
		Handlers: g.resolveHandlers(n),
		Assets:   g.assets,
	}

	if ar, ok := n.Widget.(assetReferrer); ok {
		for _, name := range ar.AssetNames() {
			if _, present := g.assets[name]; !present {
				g.warn("missing_asset",
					fmt.Sprintf("node %s references asset %q with no registered path", n.ID, name),
					name)
			}
		}
	}

	for _, child := range n.Children {
		expr, err := g.lower(ctx, child)
		if err != nil {
			return nil, err
		}
		in.Children = append(in.Children, expr)
	}

	return n.Widget.Lower(in), nil
}

// resolveProps resolves every declared property of a node. A dangling
// binding falls back to the widget's own literal and is reported; the
// generated output never references an undefined state field.
func (g *generator) resolveProps(n *model.Node) map[string]model.ResolvedProp {
	props := map[string]model.ResolvedProp{}
	for _, p := range n.Widget.Props() {
		rp := model.ResolvedProp{Value: p.Value}
		if varName, bound := n.Bindings[p.Name]; bound {
			if v, ok := g.doc.Variables.Get(varName); ok {
				rp.Value = v.DefaultValue()
				rp.Var = &model.BoundVar{Name: v.Name, Type: v.Type, Field: g.fields[v.Name]}
			} else {
				g.warn("dangling_binding",
					fmt.Sprintf("node %s property %q references undefined variable %q; using literal", n.ID, p.Name, varName),
					n.ID.String())
			}
		}
		props[p.Name] = rp
	}
	return props
}

// resolveHandlers resolves the node's actions into handler methods,
// returning the method name per event. Unresolvable actions produce no
// handler reference; invalid fragments produce a handler holding a
// commented placeholder, never the unparsed text.
func (g *generator) resolveHandlers(n *model.Node) map[model.Event]string {
	handlers := map[model.Event]string{}
	for _, ev := range n.Widget.Events() {
		action, ok := n.Events[ev]
		if !ok {
			continue
		}
		name := handlerName(ev, n)
		effect, err := resolve.Action(action, g.doc.Variables)
		if err != nil {
			g.warn(warnCode(err), fmt.Sprintf("node %s event %q: %v", n.ID, ev, err), n.ID.String())
			if action.Type != model.ActionCode {
				continue
			}
			// Commented placeholder keeps the handler shape without emitting
			// text that failed to parse.
			g.handlers = append(g.handlers, handler{name: name, body: []ir.Stmt{
				ir.Comment("invalid inline fragment omitted during generation"),
			}})
			handlers[ev] = name
			continue
		}
		g.handlers = append(g.handlers, handler{name: name, body: g.effectBody(effect)})
		handlers[ev] = name
	}
	return handlers
}

// effectBody lowers a resolved effect into handler statements against the
// state receiver `a`.
func (g *generator) effectBody(e resolve.Effect) []ir.Stmt {
	field := func() ir.Expr {
		return ir.Sel{X: ir.Ident("a"), Name: g.fields[e.Variable.Name]}
	}
	switch e.Kind {
	case resolve.EffectIncrement:
		one := "1"
		if e.Variable.Type == model.FloatType {
			one = "1.0"
		}
		return []ir.Stmt{
			ir.RawStmt(fmt.Sprintf("v, _ := a.%s.Get()", g.fields[e.Variable.Name])),
			ir.ExprStmt{X: ir.Raw(fmt.Sprintf("_ = a.%s.Set(v + %s)", g.fields[e.Variable.Name], one))},
		}
	case resolve.EffectSet:
		arg := e.Expr
		if arg == "" {
			arg = e.Value.GoLiteral()
		}
		return []ir.Stmt{
			ir.Assign{LHS: ir.Ident("_"), RHS: ir.Call{Fn: ir.Sel{X: field(), Name: "Set"}, Args: []ir.Expr{ir.Raw(arg)}}},
		}
	case resolve.EffectCode:
		return []ir.Stmt{ir.RawStmt(e.Code)}
	}
	return nil
}

func warnCode(err error) string {
	switch {
	case errors.Is(err, resolve.ErrDanglingBinding):
		return "dangling_binding"
	case errors.Is(err, resolve.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, resolve.ErrInvalidFragment):
		return "invalid_fragment"
	default:
		return "resolve_error"
	}
}

// manifest renders the generated project's go.mod.
func (g *generator) manifest(module string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n\n", module)
	b.WriteString("go 1.24\n\n")
	fmt.Fprintf(&b, "require fyne.io/fyne/v2 %s\n", FyneVersion)
	return b.String()
}

// entryPoint renders the generated main.go.
func (g *generator) entryPoint() string {
	var b strings.Builder
	b.WriteString("package main\n\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"fyne.io/fyne/v2\"\n")
	b.WriteString("\t\"fyne.io/fyne/v2/app\"\n")
	b.WriteString(")\n\n")
	b.WriteString("func main() {\n")
	b.WriteString("\ta := app.New()\n")
	fmt.Fprintf(&b, "\tw := a.NewWindow(%q)\n", g.doc.Name)
	b.WriteString("\tstate := NewAppState()\n")
	b.WriteString("\tw.SetContent(state.Build())\n")
	b.WriteString("\tw.Resize(fyne.NewSize(480, 360))\n")
	b.WriteString("\tw.ShowAndRun()\n")
	b.WriteString("}\n")
	return b.String()
}

// stateModule renders the generated app.go: the AppState struct, its
// constructor, the Build method, and one method per event handler.
func (g *generator) stateModule(root ir.Expr) string {
	body := g.stateBody(root)

	var b strings.Builder
	b.WriteString("package main\n\n")
	b.WriteString("import (\n")
	for _, imp := range g.imports(body) {
		fmt.Fprintf(&b, "\t%q\n", imp)
	}
	b.WriteString(")\n\n")
	b.WriteString(body)
	return b.String()
}

func (g *generator) stateBody(root ir.Expr) string {
	names := g.doc.Variables.Names()

	var b strings.Builder
	b.WriteString("// AppState holds the application's persistent state: one field per\n")
	b.WriteString("// designer variable.\n")
	b.WriteString("type AppState struct {\n")
	for _, name := range names {
		v := g.doc.Variables[name]
		fmt.Fprintf(&b, "\t%s %s\n", g.fields[name], bindingType(v.Type))
	}
	b.WriteString("}\n\n")

	b.WriteString("// NewAppState initializes every variable to its designer default.\n")
	b.WriteString("func NewAppState() *AppState {\n")
	b.WriteString("\ta := &AppState{\n")
	for _, name := range names {
		v := g.doc.Variables[name]
		fmt.Fprintf(&b, "\t\t%s: %s(),\n", g.fields[name], bindingCtor(v.Type))
	}
	b.WriteString("\t}\n")
	for _, name := range names {
		v := g.doc.Variables[name]
		fmt.Fprintf(&b, "\t_ = a.%s.Set(%s)\n", g.fields[name], v.DefaultValue().GoLiteral())
	}
	b.WriteString("\treturn a\n")
	b.WriteString("}\n\n")

	b.WriteString("// Build constructs the widget tree in document order.\n")
	b.WriteString("func (a *AppState) Build() fyne.CanvasObject {\n")
	fmt.Fprintf(&b, "\treturn %s\n", ir.RenderExpr(root, 1))
	b.WriteString("}\n")

	for _, h := range g.handlers {
		b.WriteString("\n")
		fmt.Fprintf(&b, "func (a *AppState) %s() {\n", h.name)
		b.WriteString(ir.RenderBlock(h.body, 1))
		b.WriteString("}\n")
	}
	return b.String()
}

// fynePackages maps the selector bases the lowered tree can produce to their
// import paths.
var fynePackages = map[string]string{
	"widget":    "fyne.io/fyne/v2/widget",
	"container": "fyne.io/fyne/v2/container",
	"canvas":    "fyne.io/fyne/v2/canvas",
	"binding":   "fyne.io/fyne/v2/data/binding",
}

// imports derives the state module's import list by lexing the rendered body:
// a package counts as used only when its name appears as a selector base, so
// identifiers quoted inside document strings never pull in an import.
// Fragment-injected imports beyond the Fyne packages are the fragment
// author's responsibility, as in any generator that splices user code.
func (g *generator) imports(body string) []string {
	set := map[string]bool{
		"fyne.io/fyne/v2": true, // Build signature
	}
	if len(g.doc.Variables) > 0 {
		set["fyne.io/fyne/v2/data/binding"] = true
	}

	fset := token.NewFileSet()
	file := fset.AddFile("app.go", fset.Base(), len(body))
	var s scanner.Scanner
	s.Init(file, []byte(body), nil, 0)
	prev := ""
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.PERIOD {
			if path, ok := fynePackages[prev]; ok {
				set[path] = true
			}
		}
		if tok == token.IDENT {
			prev = lit
		} else {
			prev = ""
		}
	}

	var imports []string
	for imp := range set {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}

// gofmt formats a rendered file, falling back to the unformatted text and
// flagging the project rather than discarding output.
func (g *generator) gofmt(name, src string) []byte {
	out, err := format.Source([]byte(src))
	if err != nil {
		g.report.FormattingDegraded = true
		g.warn("formatting_degraded", fmt.Sprintf("%s: %v", name, err), name)
		return []byte(src)
	}
	return out
}

func bindingType(t model.VariableType) string {
	switch t {
	case model.IntegerType:
		return "binding.Int"
	case model.FloatType:
		return "binding.Float"
	case model.BooleanType:
		return "binding.Bool"
	default:
		return "binding.String"
	}
}

func bindingCtor(t model.VariableType) string {
	switch t {
	case model.IntegerType:
		return "binding.NewInt"
	case model.FloatType:
		return "binding.NewFloat"
	case model.BooleanType:
		return "binding.NewBool"
	default:
		return "binding.NewString"
	}
}

// handlerName derives a stable, collision-free method name from the event
// and the node's identifier.
func handlerName(ev model.Event, n *model.Node) string {
	return "On" + exportIdent(string(ev)) + shortID(n)
}

func shortID(n *model.Node) string {
	hex := strings.ReplaceAll(n.ID.String(), "-", "")
	return strings.ToUpper(hex[:8])
}

// fieldNames maps variable names to exported state-field identifiers,
// deterministically disambiguating collisions in sorted order.
func fieldNames(vars model.Variables) map[string]string {
	fields := map[string]string{}
	taken := map[string]bool{}
	for _, name := range vars.Names() {
		field := exportIdent(name)
		for taken[field] {
			field += "X"
		}
		taken[field] = true
		fields[name] = field
	}
	return fields
}

// exportIdent converts a designer name into an exported Go identifier.
func exportIdent(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			upper = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			if upper {
				b.WriteString(strings.ToUpper(string(r)))
				upper = false
			} else {
				b.WriteRune(r)
			}
		case r >= '0' && r <= '9':
			if b.Len() == 0 {
				b.WriteString("V")
			}
			b.WriteRune(r)
			upper = true
		}
	}
	if b.Len() == 0 {
		return "V"
	}
	return b.String()
}

// moduleName converts a project display name into a Go module name.
func moduleName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "generated_app"
	}
	return s
}
