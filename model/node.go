package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Node is one element of the document tree: a widget instance plus its
// per-property bindings, per-event actions, and (for containers) its owned
// children. Identity is a stable UUID, unique across the whole tree.
type Node struct {
	ID       uuid.UUID
	Widget   Widget
	Bindings map[string]string // property name -> variable name
	Events   map[Event]Action
	Children []*Node

	// Extra holds interchange fields this build does not recognize. They
	// are carried opaquely and re-emitted on save.
	Extra map[string]json.RawMessage
}

// NewNode wraps a widget in a node with a fresh identifier.
func NewNode(w Widget) *Node {
	return &Node{
		ID:       uuid.New(),
		Widget:   w,
		Bindings: map[string]string{},
		Events:   map[Event]Action{},
	}
}

// Kind returns the node's open kind tag.
func (n *Node) Kind() string { return n.Widget.Kind() }

// Container reports whether this node may own children.
func (n *Node) Container() bool { return n.Widget.Container() }

// Bind attaches a variable reference to a property. An empty variable name
// clears the binding, making the property's own literal authoritative again.
func (n *Node) Bind(prop, variable string) {
	if n.Bindings == nil {
		n.Bindings = map[string]string{}
	}
	if variable == "" {
		delete(n.Bindings, prop)
		return
	}
	n.Bindings[prop] = variable
}

// SetAction attaches an action to an event, replacing any previous one.
func (n *Node) SetAction(ev Event, a Action) {
	if n.Events == nil {
		n.Events = map[Event]Action{}
	}
	n.Events[ev] = a
}

// ClearAction removes the action attached to an event.
func (n *Node) ClearAction(ev Event) {
	delete(n.Events, ev)
}

// Walk visits n and all descendants in depth-first pre-order. Child order is
// document order and a user-visible guarantee.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Contains reports whether id names n or any of its descendants.
func (n *Node) Contains(id uuid.UUID) bool {
	found := false
	n.Walk(func(m *Node) {
		if m.ID == id {
			found = true
		}
	})
	return found
}

// Clone deep-copies the subtree, preserving identifiers. Used for history
// snapshots, where identity must survive undo.
func (n *Node) Clone() *Node {
	return n.clone(false)
}

// CloneFresh deep-copies the subtree assigning a fresh identifier to every
// node, not just the root. Structure, bindings, and actions are preserved.
// This is the only correct clone for copy/paste: reusing identifiers would
// break tree-wide ID uniqueness and corrupt indexed lookups.
func (n *Node) CloneFresh() *Node {
	return n.clone(true)
}

func (n *Node) clone(freshIDs bool) *Node {
	out := &Node{
		ID:     n.ID,
		Widget: n.Widget.Clone(),
	}
	if freshIDs {
		out.ID = uuid.New()
	}
	if n.Bindings != nil {
		out.Bindings = make(map[string]string, len(n.Bindings))
		for prop, variable := range n.Bindings {
			out.Bindings[prop] = variable
		}
	}
	if n.Events != nil {
		out.Events = make(map[Event]Action, len(n.Events))
		for ev, action := range n.Events {
			out.Events[ev] = action
		}
	}
	if n.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(n.Extra))
		for key, raw := range n.Extra {
			out.Extra[key] = append(json.RawMessage(nil), raw...)
		}
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.clone(freshIDs)
		}
	}
	return out
}
