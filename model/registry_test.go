package model

import (
	"errors"
	"sort"
	"testing"
)

func TestRegistryRoundTrip(t *testing.T) {
	Register("test_stub_kind", func() Widget { return &stubWidget{kind: "test_stub_kind"} })

	w, err := New("test_stub_kind")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.Kind() != "test_stub_kind" {
		t.Errorf("Kind = %q", w.Kind())
	}

	if _, err := New("no_such_kind"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}

	kinds := Kinds()
	if !sort.StringsAreSorted(kinds) {
		t.Error("Kinds should be sorted")
	}
	found := false
	for _, k := range kinds {
		if k == "test_stub_kind" {
			found = true
		}
	}
	if !found {
		t.Error("registered kind should be listed")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup_kind", func() Widget { return &stubWidget{kind: "test_dup_kind"} })
	defer func() {
		if recover() == nil {
			t.Error("double registration should panic")
		}
	}()
	Register("test_dup_kind", func() Widget { return &stubWidget{kind: "test_dup_kind"} })
}
