package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/templates"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openTestStore(t)

	tmpl, err := templates.Get("counter")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := tmpl.Build()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save("counter", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load("counter")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != doc.Name {
		t.Errorf("name = %q, want %q", loaded.Name, doc.Name)
	}
	if loaded.Len() != doc.Len() {
		t.Errorf("node count = %d, want %d", loaded.Len(), doc.Len())
	}
	if _, ok := loaded.Variables.Get("counter"); !ok {
		t.Error("variables should survive the catalog round trip")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	tmpl, _ := templates.Get("counter")
	doc, err := tmpl.Build()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save("proj", doc); err != nil {
		t.Fatal(err)
	}
	doc.Name = "Renamed"
	if err := s.Save("proj", doc); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load("proj")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "Renamed" {
		t.Errorf("name = %q, want the overwritten value", loaded.Name)
	}

	infos, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Errorf("List after upsert = %d entries, want 1", len(infos))
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load("ghost"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("got %v, want ErrProjectNotFound", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)

	tmpl, _ := templates.Get("empty")
	doc, err := tmpl.Build()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"one", "two"} {
		if err := s.Save(name, doc); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("List = %d entries, want 2", len(infos))
	}
	for _, info := range infos {
		if info.Size <= 0 {
			t.Errorf("%s: size = %d", info.Name, info.Size)
		}
		if info.UpdatedAt.IsZero() {
			t.Errorf("%s: zero timestamp", info.Name)
		}
	}

	if err := s.Delete("one"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	infos, _ = s.List()
	if len(infos) != 1 || infos[0].Name != "two" {
		t.Errorf("List after delete = %v", infos)
	}

	if err := s.Delete("one"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("deleting a missing project: got %v, want ErrProjectNotFound", err)
	}
}
