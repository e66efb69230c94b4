// Package history implements snapshot-based linear undo/redo over designer
// documents, plus the identity-safe subtree duplication used by copy/paste.
//
// The engine assumes the snapshot-then-mutate protocol: callers Record the
// current document immediately before every mutation, on the single thread
// of control that owns the document.
package history

import (
	"github.com/google/uuid"

	"github.com/aether-xyz/go-aether/model"
)

// DefaultLimit caps retained undo entries when no explicit limit is given.
const DefaultLimit = 50

// Engine holds bounded past and future document snapshots.
type Engine struct {
	limit  int
	past   []*model.Document
	future []*model.Document
}

// New creates an engine retaining at most limit past entries. A
// non-positive limit falls back to DefaultLimit.
func New(limit int) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{limit: limit}
}

// Record pushes a deep copy of the document taken before a mutation and
// truncates any redo entries: this is linear undo, not a branching history.
// When the cap is exceeded the oldest past entry is evicted.
func (e *Engine) Record(doc *model.Document) {
	e.past = append(e.past, doc.Clone())
	e.future = e.future[:0]
	if len(e.past) > e.limit {
		e.past = e.past[1:]
	}
}

// Undo returns the snapshot preceding the current document, moving the
// current state onto the redo side. Returns nil, false at the beginning.
func (e *Engine) Undo(current *model.Document) (*model.Document, bool) {
	if len(e.past) == 0 {
		return nil, false
	}
	prev := e.past[len(e.past)-1]
	e.past = e.past[:len(e.past)-1]
	e.future = append(e.future, current.Clone())
	return prev, true
}

// Redo is the mirror of Undo.
func (e *Engine) Redo(current *model.Document) (*model.Document, bool) {
	if len(e.future) == 0 {
		return nil, false
	}
	next := e.future[len(e.future)-1]
	e.future = e.future[:len(e.future)-1]
	e.past = append(e.past, current.Clone())
	return next, true
}

// CanUndo reports whether a past snapshot exists.
func (e *Engine) CanUndo() bool { return len(e.past) > 0 }

// CanRedo reports whether a future snapshot exists.
func (e *Engine) CanRedo() bool { return len(e.future) > 0 }

// Depth returns the number of retained past entries.
func (e *Engine) Depth() int { return len(e.past) }

// DuplicateSubtree deep-copies the subtree rooted at id, assigning a fresh
// identifier to every copied node. The copy is detached: the caller inserts
// it wherever the paste lands. Reusing ids would violate tree-wide
// uniqueness and corrupt indexed lookups, so only fresh-id clones are
// offered here.
func DuplicateSubtree(doc *model.Document, id uuid.UUID) (*model.Node, error) {
	n, err := doc.Find(id)
	if err != nil {
		return nil, err
	}
	return n.CloneFresh(), nil
}
