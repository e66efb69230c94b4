package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/templates"
	_ "github.com/aether-xyz/go-aether/widget"
)

func counterDoc(t *testing.T) *model.Document {
	t.Helper()
	tmpl, err := templates.Get("counter")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := tmpl.Build()
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRoundTrip(t *testing.T) {
	doc := counterDoc(t)

	data, err := ToJSON(doc)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	loaded, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	if loaded.Name != doc.Name {
		t.Errorf("name = %q, want %q", loaded.Name, doc.Name)
	}
	if loaded.Len() != doc.Len() {
		t.Errorf("node count = %d, want %d", loaded.Len(), doc.Len())
	}
	if diff := cmp.Diff(doc.Variables, loaded.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}

	// Identity, bindings, and actions are part of the format.
	wantIDs := doc.IDs()
	gotIDs := loaded.IDs()
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("node %d id = %s, want %s", i, gotIDs[i], wantIDs[i])
		}
	}
	count := loaded.Root.Children[1]
	if count.Bindings["text"] != "counter" {
		t.Error("binding should survive the round trip")
	}
	button := loaded.Root.Children[2]
	action := button.Events[model.EventClicked]
	if action.Type != model.ActionIncrement || action.Variable != "counter" {
		t.Errorf("action = %+v", action)
	}
}

func TestOutputIsDeterministic(t *testing.T) {
	doc := counterDoc(t)

	first, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("serialization should be byte-identical across runs")
	}

	// A load/save cycle must also be stable.
	loaded, err := FromJSON(first)
	if err != nil {
		t.Fatal(err)
	}
	third, err := ToJSON(loaded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, third) {
		t.Error("load/save cycle should be byte-identical")
	}
}

func TestFailedMutationLeavesBytesIdentical(t *testing.T) {
	doc := counterDoc(t)
	before, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}

	// Inserting under a leaf fails and must leave no trace.
	label := doc.Root.Children[0]
	w, err := model.New("label")
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.InsertChild(label.ID, 0, model.NewNode(w)); !errors.Is(err, model.ErrNotAContainer) {
		t.Fatalf("got %v, want ErrNotAContainer", err)
	}

	after, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("failed insert should leave serialized bytes identical")
	}
}

func TestVersionGate(t *testing.T) {
	_, err := FromJSON([]byte(`{"schemaVersion": 99, "root": {"kind": "vbox"}}`))
	if !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("got %v, want ErrVersionMismatch", err)
	}

	_, err = FromJSON([]byte(`{"name": "x", "root": {"kind": "vbox"}}`))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("missing version: got %v, want ErrMalformedDocument", err)
	}
}

func TestUnknownKindFails(t *testing.T) {
	data := []byte(`{
		"schemaVersion": 1,
		"name": "x",
		"root": {
			"kind": "vbox",
			"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"children": [
				{"kind": "hologram", "id": "6ba7b811-9dad-11d1-80b4-00c04fd430c8"}
			]
		}
	}`)
	_, err := FromJSON(data)
	if !errors.Is(err, model.ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
	if err != nil && !strings.Contains(err.Error(), "hologram") {
		t.Errorf("error should name the kind: %v", err)
	}
}

func TestChildrenOnLeafFails(t *testing.T) {
	data := []byte(`{
		"schemaVersion": 1,
		"root": {
			"kind": "label",
			"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"children": [
				{"kind": "label", "id": "6ba7b811-9dad-11d1-80b4-00c04fd430c8"}
			]
		}
	}`)
	_, err := FromJSON(data)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("got %v, want ErrMalformedDocument", err)
	}
}

func TestMalformedEnvelope(t *testing.T) {
	for _, data := range []string{
		`{not json`,
		`{"schemaVersion": 1}`,
		`{"schemaVersion": 1, "root": {"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}}`,
		`{"schemaVersion": 1, "root": {"kind": "vbox"}}`,
	} {
		if _, err := FromJSON([]byte(data)); !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("%s: got %v, want ErrMalformedDocument", data, err)
		}
	}
}

func TestUnknownFieldsPreserved(t *testing.T) {
	data := []byte(`{
		"schemaVersion": 1,
		"name": "x",
		"root": {
			"kind": "label",
			"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"fields": {"text": "hi", "futureStyle": {"weight": "bold"}}
		}
	}`)
	doc, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if _, ok := doc.Root.Extra["futureStyle"]; !ok {
		t.Fatal("unrecognized field should be carried in Extra")
	}

	out, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "futureStyle") {
		t.Error("unrecognized field should be re-emitted on save")
	}
	if !strings.Contains(string(out), `"weight"`) {
		t.Error("unrecognized field content should be untouched")
	}
}

func TestMalformedKindFieldFails(t *testing.T) {
	data := []byte(`{
		"schemaVersion": 1,
		"root": {
			"kind": "label",
			"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"fields": {"text": 12}
		}
	}`)
	if _, err := FromJSON(data); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("got %v, want ErrMalformedDocument", err)
	}
}
