package core

import (
	"fmt"
	"slices"
)

// Entry is anything a Catalog can hold.
type Entry interface {
	comparable
	EntryName() string
}

// Catalog is an ordered, load-once list of uniquely named entries. Lookups
// scan in insertion order; catalogs hold a few dozen entries at most.
type Catalog[T Entry] struct {
	kind    string
	entries []T
}

type ShaderCatalog = Catalog[*ShaderDefinition]
type ShapeCatalog = Catalog[*ShapeDefinition]

// NewCatalog rejects nil entries, empty names and duplicate names.
func NewCatalog[T Entry](kind string, entries ...T) (*Catalog[T], error) {
	var zero T
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e == zero {
			return nil, fmt.Errorf("%s catalog: entry %d is nil", kind, i)
		}
		name := e.EntryName()
		if name == "" {
			return nil, fmt.Errorf("%s catalog: entry %d has no name", kind, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s catalog: duplicate name %q", kind, name)
		}
		seen[name] = struct{}{}
	}
	return &Catalog[T]{kind: kind, entries: slices.Clone(entries)}, nil
}

func NewShaderCatalog(defs ...*ShaderDefinition) (*ShaderCatalog, error) {
	return NewCatalog("shader", defs...)
}

func NewShapeCatalog(defs ...*ShapeDefinition) (*ShapeCatalog, error) {
	return NewCatalog("shape", defs...)
}

// Find returns the entry with exactly this name or a *CatalogLookupError.
func (c *Catalog[T]) Find(name string) (T, error) {
	for _, e := range c.entries {
		if e.EntryName() == name {
			return e, nil
		}
	}
	var zero T
	return zero, &CatalogLookupError{Catalog: c.kind, Name: name}
}

func (c *Catalog[T]) Kind() string { return c.kind }
func (c *Catalog[T]) Len() int     { return len(c.entries) }

// At returns the i-th entry in insertion order.
func (c *Catalog[T]) At(i int) T { return c.entries[i] }

// Entries returns a copy of the entry list in insertion order.
func (c *Catalog[T]) Entries() []T { return slices.Clone(c.entries) }

// Names lists entry names in insertion order, which menus display as-is.
func (c *Catalog[T]) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.EntryName()
	}
	return names
}
