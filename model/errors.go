package model

import "errors"

// Error types for the model package.
var (
	// ErrNotFound is returned when a node ID is not present in the tree.
	ErrNotFound = errors.New("node not found")

	// ErrNotAContainer is returned when a child operation targets a leaf kind.
	ErrNotAContainer = errors.New("node is not a container")

	// ErrIndexOutOfRange is returned when a child index exceeds the child count.
	ErrIndexOutOfRange = errors.New("child index out of range")

	// ErrDuplicateID is returned when an insertion would repeat an existing node ID.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrCycle is returned when a reparent would move a node into its own subtree.
	ErrCycle = errors.New("reparent would create a cycle")

	// ErrRootImmovable is returned when an operation tries to detach the root node.
	ErrRootImmovable = errors.New("root node cannot be moved or removed")

	// ErrUnknownKind is returned when a kind tag has no registered factory.
	ErrUnknownKind = errors.New("unknown widget kind")

	// ErrUnknownProperty is returned when a property name is not declared by a kind.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrVariableNotFound is returned when a variable name is absent from the store.
	ErrVariableNotFound = errors.New("variable not found")

	// ErrVariableExists is returned when a create or rename would shadow a variable.
	ErrVariableExists = errors.New("variable already exists")

	// ErrAssetNotFound is returned when an asset name is absent from the registry.
	ErrAssetNotFound = errors.New("asset not found")
)
