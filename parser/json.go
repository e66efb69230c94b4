// Package parser handles the JSON interchange format for designer documents.
// The format is self-describing and versioned: every node record carries its
// open `kind` tag as data, so new widget kinds never require touching this
// package, and unknown extra fields on known kinds are preserved opaquely.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aether-xyz/go-aether/model"
)

// SchemaVersion is the newest interchange version this build understands.
const SchemaVersion = 1

// Error types for the parser package.
var (
	// ErrVersionMismatch is returned when a document's schema version is
	// newer than this build supports.
	ErrVersionMismatch = errors.New("document schema version not supported")

	// ErrMalformedDocument is returned when the envelope or a node record
	// fails its schema check. Loading never yields a partial document.
	ErrMalformedDocument = errors.New("malformed document")
)

type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Name          string          `json:"name"`
	Variables     model.Variables `json:"variables,omitempty"`
	Assets        model.Assets    `json:"assets,omitempty"`
	Root          json.RawMessage `json:"root"`
}

type nodeRecord struct {
	Kind     string                       `json:"kind"`
	ID       uuid.UUID                    `json:"id"`
	Fields   map[string]json.RawMessage   `json:"fields,omitempty"`
	Bindings map[string]string            `json:"bindings,omitempty"`
	Events   map[model.Event]model.Action `json:"events,omitempty"`
	Children []json.RawMessage            `json:"children,omitempty"`
}

// ToJSON serializes a document. Output is deterministic: object keys are
// emitted in sorted order and child arrays in document order.
func ToJSON(doc *model.Document) ([]byte, error) {
	root, err := encodeNode(doc.Root)
	if err != nil {
		return nil, err
	}
	env := map[string]any{
		"schemaVersion": SchemaVersion,
		"name":          doc.Name,
		"root":          root,
	}
	if len(doc.Variables) > 0 {
		env["variables"] = doc.Variables
	}
	if len(doc.Assets) > 0 {
		env["assets"] = doc.Assets
	}
	return json.MarshalIndent(env, "", "  ")
}

func encodeNode(n *model.Node) (map[string]any, error) {
	fields := map[string]any{}
	for key, value := range n.Widget.EncodeFields() {
		fields[key] = value
	}
	// Unrecognized interchange fields ride along untouched.
	for key, raw := range n.Extra {
		if _, known := fields[key]; !known {
			fields[key] = raw
		}
	}

	rec := map[string]any{
		"kind": n.Kind(),
		"id":   n.ID,
	}
	if len(fields) > 0 {
		rec["fields"] = fields
	}
	if len(n.Bindings) > 0 {
		rec["bindings"] = n.Bindings
	}
	if len(n.Events) > 0 {
		rec["events"] = n.Events
	}
	if n.Container() {
		children := make([]any, len(n.Children))
		for i, child := range n.Children {
			enc, err := encodeNode(child)
			if err != nil {
				return nil, err
			}
			children[i] = enc
		}
		rec["children"] = children
	}
	return rec, nil
}

// FromJSON deserializes a document, failing with a typed error when the
// envelope is malformed, the version is too new, a kind tag has no
// registered factory, or kind-specific fields fail their schema check.
func FromJSON(data []byte) (*model.Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if env.SchemaVersion == 0 {
		return nil, fmt.Errorf("%w: missing schemaVersion", ErrMalformedDocument)
	}
	if env.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("%w: document version %d, supported up to %d",
			ErrVersionMismatch, env.SchemaVersion, SchemaVersion)
	}
	if len(env.Root) == 0 {
		return nil, fmt.Errorf("%w: missing root node", ErrMalformedDocument)
	}

	root, err := decodeNode(env.Root)
	if err != nil {
		return nil, err
	}
	doc, err := model.NewDocument(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if env.Name != "" {
		doc.Name = env.Name
	}
	for name, v := range env.Variables {
		if v.Name == "" {
			v.Name = name
		}
		if err := doc.Variables.Set(v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	for name, a := range env.Assets {
		if a.Name == "" {
			a.Name = name
		}
		doc.Assets[name] = a
	}
	return doc, nil
}

func decodeNode(data json.RawMessage) (*model.Node, error) {
	var rec nodeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: node record: %v", ErrMalformedDocument, err)
	}
	if rec.Kind == "" {
		return nil, fmt.Errorf("%w: node record missing kind", ErrMalformedDocument)
	}
	if rec.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: node record missing id", ErrMalformedDocument)
	}

	w, err := model.New(rec.Kind)
	if err != nil {
		return nil, err
	}
	if err := w.DecodeFields(rec.Fields); err != nil {
		return nil, fmt.Errorf("%w: kind %q node %s: %v", ErrMalformedDocument, rec.Kind, rec.ID, err)
	}

	n := &model.Node{
		ID:       rec.ID,
		Widget:   w,
		Bindings: rec.Bindings,
		Events:   rec.Events,
	}
	if n.Bindings == nil {
		n.Bindings = map[string]string{}
	}
	if n.Events == nil {
		n.Events = map[model.Event]model.Action{}
	}

	// Keep fields this kind does not declare so a newer schema survives a
	// load/save cycle through this build.
	known := w.EncodeFields()
	for key, raw := range rec.Fields {
		if _, ok := known[key]; !ok {
			if n.Extra == nil {
				n.Extra = map[string]json.RawMessage{}
			}
			n.Extra[key] = raw
		}
	}

	if len(rec.Children) > 0 {
		if !w.Container() {
			return nil, fmt.Errorf("%w: kind %q node %s carries children but is not a container",
				ErrMalformedDocument, rec.Kind, rec.ID)
		}
		n.Children = make([]*model.Node, len(rec.Children))
		for i, childRaw := range rec.Children {
			child, err := decodeNode(childRaw)
			if err != nil {
				return nil, err
			}
			n.Children[i] = child
		}
	}
	return n, nil
}
