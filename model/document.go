package model

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultProjectName is used when a document carries no explicit name.
const DefaultProjectName = "my_app"

// Document is the full persistent state of one designed project: a single
// owned root node, the variable store, the asset registry, and metadata.
//
// All mutation happens on one logical thread of control; the document keeps
// id-indexed lookups that are maintained incrementally, so Find is O(1)
// rather than a tree walk per call.
type Document struct {
	Name      string
	Root      *Node
	Variables Variables
	Assets    Assets

	nodes   map[uuid.UUID]*Node
	parents map[uuid.UUID]*Node
}

// NewDocument builds a document around a root node, validating that node
// identifiers are unique across the tree.
func NewDocument(root *Node) (*Document, error) {
	d := &Document{
		Name:      DefaultProjectName,
		Root:      root,
		Variables: Variables{},
		Assets:    Assets{},
	}
	if err := d.reindex(); err != nil {
		return nil, err
	}
	return d, nil
}

// reindex rebuilds the id and parent indexes from the tree.
func (d *Document) reindex() error {
	d.nodes = map[uuid.UUID]*Node{}
	d.parents = map[uuid.UUID]*Node{}
	return d.indexSubtree(d.Root, nil)
}

func (d *Document) indexSubtree(n *Node, parent *Node) error {
	if _, exists := d.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	d.nodes[n.ID] = n
	if parent != nil {
		d.parents[n.ID] = parent
	}
	for _, child := range n.Children {
		if err := d.indexSubtree(child, n); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) deindexSubtree(n *Node) {
	n.Walk(func(m *Node) {
		delete(d.nodes, m.ID)
		delete(d.parents, m.ID)
	})
}

// Find returns the node with the given id.
func (d *Document) Find(id uuid.UUID) (*Node, error) {
	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n, nil
}

// ParentOf returns the parent of the node with the given id, or nil for the
// root.
func (d *Document) ParentOf(id uuid.UUID) (*Node, error) {
	if _, err := d.Find(id); err != nil {
		return nil, err
	}
	return d.parents[id], nil
}

// InsertChild inserts a detached subtree under parentID at index. The
// document is left unchanged on failure.
func (d *Document) InsertChild(parentID uuid.UUID, index int, node *Node) error {
	parent, err := d.Find(parentID)
	if err != nil {
		return err
	}
	if !parent.Container() {
		return fmt.Errorf("%w: %s", ErrNotAContainer, parent.Kind())
	}
	if index < 0 || index > len(parent.Children) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(parent.Children))
	}
	// Rejecting already-indexed ids also rejects cyclic insertions: a
	// subtree containing the parent is necessarily already in the tree.
	if err := d.checkFreshIDs(node); err != nil {
		return err
	}

	parent.Children = append(parent.Children, nil)
	copy(parent.Children[index+1:], parent.Children[index:])
	parent.Children[index] = node
	// Cannot fail: ids were checked fresh above.
	_ = d.indexSubtree(node, parent)
	return nil
}

func (d *Document) checkFreshIDs(n *Node) error {
	var clash error
	n.Walk(func(m *Node) {
		if clash != nil {
			return
		}
		if _, exists := d.nodes[m.ID]; exists {
			clash = fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
	})
	return clash
}

// Remove detaches the subtree rooted at id and returns ownership of it. The
// root node is not removable.
func (d *Document) Remove(id uuid.UUID) (*Node, error) {
	node, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	parent := d.parents[id]
	if parent == nil {
		return nil, ErrRootImmovable
	}
	idx := childIndex(parent, id)
	parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
	d.deindexSubtree(node)
	return node, nil
}

// Reparent moves a node from its current parent to a new container at the
// given index. Moving a node into its own subtree fails with ErrCycle.
func (d *Document) Reparent(id, newParentID uuid.UUID, index int) error {
	node, err := d.Find(id)
	if err != nil {
		return err
	}
	newParent, err := d.Find(newParentID)
	if err != nil {
		return err
	}
	if d.parents[id] == nil {
		return ErrRootImmovable
	}
	if !newParent.Container() {
		return fmt.Errorf("%w: %s", ErrNotAContainer, newParent.Kind())
	}
	if id == newParentID || node.Contains(newParentID) {
		return ErrCycle
	}

	oldParent := d.parents[id]
	oldIdx := childIndex(oldParent, id)
	oldParent.Children = append(oldParent.Children[:oldIdx], oldParent.Children[oldIdx+1:]...)

	if oldParent == newParent && index > oldIdx {
		index--
	}
	if index < 0 || index > len(newParent.Children) {
		// Restore the original position before reporting.
		oldParent.Children = append(oldParent.Children, nil)
		copy(oldParent.Children[oldIdx+1:], oldParent.Children[oldIdx:])
		oldParent.Children[oldIdx] = node
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(newParent.Children))
	}

	newParent.Children = append(newParent.Children, nil)
	copy(newParent.Children[index+1:], newParent.Children[index:])
	newParent.Children[index] = node
	d.parents[id] = newParent
	return nil
}

// Reorder moves a node to a new index within its current parent.
func (d *Document) Reorder(id uuid.UUID, newIndex int) error {
	if _, err := d.Find(id); err != nil {
		return err
	}
	parent := d.parents[id]
	if parent == nil {
		return ErrRootImmovable
	}
	return d.Reparent(id, parent.ID, newIndex)
}

// Walk visits every node in depth-first pre-order starting from the root.
func (d *Document) Walk(visit func(*Node)) {
	d.Root.Walk(visit)
}

// IDs returns every node id in document order.
func (d *Document) IDs() []uuid.UUID {
	var ids []uuid.UUID
	d.Walk(func(n *Node) { ids = append(ids, n.ID) })
	return ids
}

// Len returns the number of nodes in the tree.
func (d *Document) Len() int { return len(d.nodes) }

func childIndex(parent *Node, id uuid.UUID) int {
	for i, child := range parent.Children {
		if child.ID == id {
			return i
		}
	}
	return -1
}

// RenameVariable renames a variable and cascade-rewrites every binding and
// action that references the old name, so renames never create danglers.
func (d *Document) RenameVariable(oldName, newName string) error {
	v, ok := d.Variables[oldName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVariableNotFound, oldName)
	}
	if newName == "" {
		return fmt.Errorf("variable name must not be empty")
	}
	if _, taken := d.Variables[newName]; taken && newName != oldName {
		return fmt.Errorf("%w: %s", ErrVariableExists, newName)
	}
	delete(d.Variables, oldName)
	v.Name = newName
	d.Variables[newName] = v

	d.Walk(func(n *Node) {
		for prop, variable := range n.Bindings {
			if variable == oldName {
				n.Bindings[prop] = newName
			}
		}
		for ev, action := range n.Events {
			if action.Variable == oldName {
				action.Variable = newName
				n.Events[ev] = action
			}
		}
	})
	return nil
}

// Clone deep-copies the whole document, identifiers included. Snapshots
// taken for undo history must preserve identity.
func (d *Document) Clone() *Document {
	out := &Document{
		Name:      d.Name,
		Root:      d.Root.Clone(),
		Variables: d.Variables.Clone(),
		Assets:    d.Assets.Clone(),
	}
	// Ids were unique in the source, so reindexing a clone cannot fail.
	_ = out.reindex()
	return out
}
