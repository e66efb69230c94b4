package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// AssetType categorizes external resources referenced by the document.
type AssetType string

const (
	ImageAsset AssetType = "image"
	AudioAsset AssetType = "audio"
	DataAsset  AssetType = "data"
)

// Asset is a name-keyed reference to an external resource. The name is the
// stable identifier used by nodes; the path must resolve at export time.
type Asset struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type AssetType `json:"type"`
	Path string    `json:"path"`
}

// Assets is the document's asset registry.
type Assets map[string]Asset

// Add registers an asset under its name, replacing any previous entry.
func (as Assets) Add(name string, t AssetType, path string) Asset {
	a := Asset{ID: uuid.New(), Name: name, Type: t, Path: path}
	as[name] = a
	return a
}

// Get looks up an asset by name.
func (as Assets) Get(name string) (Asset, bool) {
	a, ok := as[name]
	return a, ok
}

// Remove deletes an asset by name.
func (as Assets) Remove(name string) error {
	if _, ok := as[name]; !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	delete(as, name)
	return nil
}

// Names returns all asset names in sorted order.
func (as Assets) Names() []string {
	names := make([]string, 0, len(as))
	for name := range as {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the registry.
func (as Assets) Clone() Assets {
	out := make(Assets, len(as))
	for name, a := range as {
		out[name] = a
	}
	return out
}
