package templates

import (
	"testing"

	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/resolve"
)

func TestListAndGet(t *testing.T) {
	names := List()
	if len(names) != len(Registry) {
		t.Errorf("List returned %d names, registry holds %d", len(names), len(Registry))
	}
	for _, name := range names {
		tmpl, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
			continue
		}
		if tmpl.Name() != name {
			t.Errorf("template %q reports name %q", name, tmpl.Name())
		}
		if tmpl.Description() == "" {
			t.Errorf("template %q has no description", name)
		}
	}

	if _, err := Get("no_such_template"); err == nil {
		t.Error("unknown template should fail")
	}
}

func TestAllTemplatesBuildClean(t *testing.T) {
	for _, name := range List() {
		tmpl, err := Get(name)
		if err != nil {
			t.Fatal(err)
		}
		doc, err := tmpl.Build()
		if err != nil {
			t.Errorf("%s: Build: %v", name, err)
			continue
		}
		if doc.Root == nil || !doc.Root.Container() {
			t.Errorf("%s: root should be a container", name)
		}
		// Starter documents must not ship with dangling bindings.
		if diags := resolve.DocumentDiagnostics(doc); len(diags) != 0 {
			t.Errorf("%s: diagnostics on a fresh template: %v", name, diags)
		}
	}
}

func TestCounterTemplateWiring(t *testing.T) {
	tmpl, err := Get("counter")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := tmpl.Build()
	if err != nil {
		t.Fatal(err)
	}

	v, ok := doc.Variables.Get("counter")
	if !ok || v.Type != model.IntegerType || v.Default != "0" {
		t.Fatalf("counter variable = %+v", v)
	}

	var bound, wired bool
	doc.Walk(func(n *model.Node) {
		if n.Bindings["text"] == "counter" {
			bound = true
		}
		if a, ok := n.Events[model.EventClicked]; ok && a.Type == model.ActionIncrement && a.Variable == "counter" {
			wired = true
		}
	})
	if !bound {
		t.Error("counter template should bind a label to the variable")
	}
	if !wired {
		t.Error("counter template should wire an increment button")
	}
}
