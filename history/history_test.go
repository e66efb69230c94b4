package history

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/widget"
)

func labelDoc(t *testing.T) *model.Document {
	t.Helper()
	doc, err := model.NewDocument(model.NewNode(widget.NewVBox()))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func addLabel(t *testing.T, doc *model.Document, text string) *model.Node {
	t.Helper()
	n := model.NewNode(&widget.Label{Text: text})
	if err := doc.InsertChild(doc.Root.ID, len(doc.Root.Children), n); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestUndoRedo(t *testing.T) {
	doc := labelDoc(t)
	e := New(0)

	e.Record(doc)
	addLabel(t, doc, "first")

	e.Record(doc)
	addLabel(t, doc, "second")

	if !e.CanUndo() || e.CanRedo() {
		t.Error("after two edits: undo available, redo not")
	}

	prev, ok := e.Undo(doc)
	if !ok {
		t.Fatal("Undo should succeed")
	}
	if prev.Len() != 2 {
		t.Errorf("after undo: Len = %d, want 2", prev.Len())
	}
	doc = prev

	next, ok := e.Redo(doc)
	if !ok {
		t.Fatal("Redo should succeed")
	}
	if next.Len() != 3 {
		t.Errorf("after redo: Len = %d, want 3", next.Len())
	}
	if !e.CanUndo() || e.CanRedo() {
		t.Error("after redo: back at the latest state")
	}
}

func TestUndoAtBeginning(t *testing.T) {
	doc := labelDoc(t)
	e := New(0)

	if _, ok := e.Undo(doc); ok {
		t.Error("Undo with no past should report false")
	}
	if _, ok := e.Redo(doc); ok {
		t.Error("Redo with no future should report false")
	}
}

func TestRecordTruncatesRedo(t *testing.T) {
	doc := labelDoc(t)
	e := New(0)

	e.Record(doc)
	addLabel(t, doc, "first")

	prev, ok := e.Undo(doc)
	if !ok {
		t.Fatal("Undo should succeed")
	}
	doc = prev
	if !e.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	// A fresh edit after undo discards the redo branch.
	e.Record(doc)
	addLabel(t, doc, "replacement")
	if e.CanRedo() {
		t.Error("recording should truncate the redo stack")
	}
}

func TestCapEvictsOldest(t *testing.T) {
	doc := labelDoc(t)
	e := New(3)

	for i := 0; i < 5; i++ {
		e.Record(doc)
		addLabel(t, doc, fmt.Sprintf("edit %d", i))
	}

	if e.Depth() != 3 {
		t.Errorf("Depth = %d, want 3", e.Depth())
	}

	// Only the newest three snapshots survive: undo bottoms out at the state
	// before edit 2, which already holds two labels.
	for e.CanUndo() {
		prev, _ := e.Undo(doc)
		doc = prev
	}
	if doc.Len() != 3 {
		t.Errorf("oldest reachable state Len = %d, want 3", doc.Len())
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	doc := labelDoc(t)
	e := New(0)

	n := addLabel(t, doc, "original")
	e.Record(doc)

	// Mutating the live document must not disturb the recorded snapshot.
	if err := n.Widget.SetProp("text", model.StringValue("changed")); err != nil {
		t.Fatal(err)
	}

	prev, ok := e.Undo(doc)
	if !ok {
		t.Fatal("Undo should succeed")
	}
	restored, err := prev.Find(n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Widget.Props()[0].Value.Str != "original" {
		t.Error("snapshot should hold the pre-mutation text")
	}
}

func TestUndoPreservesIdentity(t *testing.T) {
	doc := labelDoc(t)
	e := New(0)

	n := addLabel(t, doc, "keep me")
	e.Record(doc)
	if _, err := doc.Remove(n.ID); err != nil {
		t.Fatal(err)
	}

	prev, ok := e.Undo(doc)
	if !ok {
		t.Fatal("Undo should succeed")
	}
	if _, err := prev.Find(n.ID); err != nil {
		t.Error("undo must restore the node under its original id")
	}
}

func TestDuplicateSubtree(t *testing.T) {
	doc := labelDoc(t)

	row := model.NewNode(widget.NewHBox())
	inner := model.NewNode(&widget.Label{Text: "copy me"})
	inner.Bind("text", "greeting")
	row.Children = []*model.Node{inner}
	if err := doc.InsertChild(doc.Root.ID, 0, row); err != nil {
		t.Fatal(err)
	}

	dup, err := DuplicateSubtree(doc, row.ID)
	if err != nil {
		t.Fatalf("DuplicateSubtree: %v", err)
	}
	if dup.ID == row.ID || dup.Children[0].ID == inner.ID {
		t.Error("duplicate must carry fresh ids throughout")
	}
	if dup.Children[0].Bindings["text"] != "greeting" {
		t.Error("duplicate must preserve bindings")
	}

	// Fresh ids make the duplicate immediately insertable.
	if err := doc.InsertChild(doc.Root.ID, 1, dup); err != nil {
		t.Errorf("inserting the duplicate: %v", err)
	}
}

func TestDuplicateMissingNode(t *testing.T) {
	doc := labelDoc(t)
	if _, err := DuplicateSubtree(doc, uuid.New()); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
