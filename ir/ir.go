// Package ir is the intermediate representation produced by widget lowering:
// a small statement/expression tree rendered to deterministic Go source
// text. The generator builds files from it and runs the result through
// gofmt, so rendering favors predictability over pretty layout.
package ir

import (
	"strconv"
	"strings"
)

// Expr is a lowered expression node.
type Expr interface {
	writeExpr(w *writer)
}

// Stmt is a lowered statement node.
type Stmt interface {
	writeStmt(w *writer)
}

// Ident is a bare identifier or dotted selector written verbatim.
type Ident string

// String is a quoted Go string literal.
type String string

// Int is an integer literal.
type Int int64

// Float is a floating-point literal.
type Float float64

// Bool is a boolean literal.
type Bool bool

// Nil is the nil literal.
type Nil struct{}

// Raw is an expression fragment written verbatim. It must already be valid
// target-language syntax; the resolver is responsible for validating it.
type Raw string

// Call applies a function expression to arguments in order.
type Call struct {
	Fn   Expr
	Args []Expr
}

// Sel selects a field or method on an expression.
type Sel struct {
	X    Expr
	Name string
}

// Closure is a function literal. Params is the rendered parameter list,
// empty for a thunk.
type Closure struct {
	Params string
	Body   []Stmt
}

// Setup instantiates a value, applies statements to it as `o`, and yields
// it: an immediately-invoked literal for constructors that need follow-up
// field assignments.
type Setup struct {
	Type string // result type, e.g. "*widget.Slider"
	New  Expr
	Body []Stmt
}

// CallName is shorthand for calling a dotted name.
func CallName(name string, args ...Expr) Call {
	return Call{Fn: Ident(name), Args: args}
}

// ExprStmt evaluates an expression for effect.
type ExprStmt struct {
	X Expr
}

// Assign writes `LHS = RHS`, or `LHS := RHS` when Define is set.
type Assign struct {
	LHS    Expr
	RHS    Expr
	Define bool
}

// Return writes a return statement.
type Return struct {
	X Expr
}

// RawStmt is one or more statements written verbatim, used for validated
// inline code fragments.
type RawStmt string

// Comment writes a line comment.
type Comment string

func (e Ident) writeExpr(w *writer)  { w.str(string(e)) }
func (e String) writeExpr(w *writer) { w.str(strconv.Quote(string(e))) }
func (e Int) writeExpr(w *writer)    { w.str(strconv.FormatInt(int64(e), 10)) }
func (e Bool) writeExpr(w *writer)   { w.str(strconv.FormatBool(bool(e))) }
func (Nil) writeExpr(w *writer)      { w.str("nil") }
func (e Raw) writeExpr(w *writer)    { w.str(string(e)) }

func (e Float) writeExpr(w *writer) {
	s := strconv.FormatFloat(float64(e), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	w.str(s)
}

func (e Call) writeExpr(w *writer) {
	e.Fn.writeExpr(w)
	w.str("(")
	for i, arg := range e.Args {
		if i > 0 {
			w.str(", ")
		}
		arg.writeExpr(w)
	}
	w.str(")")
}

func (e Sel) writeExpr(w *writer) {
	e.X.writeExpr(w)
	w.str(".")
	w.str(e.Name)
}

func (e Closure) writeExpr(w *writer) {
	w.str("func(")
	w.str(e.Params)
	w.str(") {")
	w.nl()
	w.indent++
	for _, s := range e.Body {
		s.writeStmt(w)
	}
	w.indent--
	w.tabs()
	w.str("}")
}

func (e Setup) writeExpr(w *writer) {
	w.str("func() ")
	w.str(e.Type)
	w.str(" {")
	w.nl()
	w.indent++
	Assign{LHS: Ident("o"), RHS: e.New, Define: true}.writeStmt(w)
	for _, s := range e.Body {
		s.writeStmt(w)
	}
	Return{X: Ident("o")}.writeStmt(w)
	w.indent--
	w.tabs()
	w.str("}()")
}

func (s ExprStmt) writeStmt(w *writer) {
	w.tabs()
	s.X.writeExpr(w)
	w.nl()
}

func (s Assign) writeStmt(w *writer) {
	w.tabs()
	s.LHS.writeExpr(w)
	if s.Define {
		w.str(" := ")
	} else {
		w.str(" = ")
	}
	s.RHS.writeExpr(w)
	w.nl()
}

func (s Return) writeStmt(w *writer) {
	w.tabs()
	w.str("return ")
	s.X.writeExpr(w)
	w.nl()
}

func (s RawStmt) writeStmt(w *writer) {
	for _, line := range strings.Split(strings.TrimRight(string(s), "\n"), "\n") {
		w.tabs()
		w.str(line)
		w.nl()
	}
}

func (s Comment) writeStmt(w *writer) {
	w.tabs()
	w.str("// ")
	w.str(string(s))
	w.nl()
}

type writer struct {
	b      strings.Builder
	indent int
}

func (w *writer) str(s string) { w.b.WriteString(s) }
func (w *writer) nl()          { w.b.WriteByte('\n') }

func (w *writer) tabs() {
	for i := 0; i < w.indent; i++ {
		w.b.WriteByte('\t')
	}
}

// RenderExpr renders a single expression at the given indent level. The
// indent only affects continuation lines of multi-line expressions.
func RenderExpr(e Expr, indent int) string {
	w := &writer{indent: indent}
	e.writeExpr(w)
	return w.b.String()
}

// RenderBlock renders statements at the given indent level.
func RenderBlock(stmts []Stmt, indent int) string {
	w := &writer{indent: indent}
	for _, s := range stmts {
		s.writeStmt(w)
	}
	return w.b.String()
}
