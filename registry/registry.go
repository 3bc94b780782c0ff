// Package registry holds the table of named bounded natural types.
//
// A registry is built once, either from Definitions in code or from a YAML
// document, and is read-only afterwards:
//
//  types:
//    - name: SizeNat
//      bytes: 8
//      bound: 2^64 - 1
//    - name: Felem
//      bytes: 32
//      bound: 2^255 - 19
package registry

import (
	"errors"
	"io"
	"sort"

	"github.com/calebcase/oops"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/bounded/natural"
)

// Definition is one named type.
type Definition struct {
	Name  string `yaml:"name"`
	Bytes int    `yaml:"bytes"`
	Bound string `yaml:"bound"`
}

type document struct {
	Types []Definition `yaml:"types"`
}

// Registry maps type names to descriptors.
type Registry struct {
	types map[string]*natural.Descriptor
}

// New builds a registry with one descriptor per definition.
func New(defs ...Definition) (_ *Registry, err error) {
	defer natural.ConfigurationError.WrapP(&err)

	r := &Registry{
		types: make(map[string]*natural.Descriptor, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, natural.ConfigurationError.New("type without a name")
		}

		if _, ok := r.types[def.Name]; ok {
			return nil, natural.ConfigurationError.New("duplicate type: %s", def.Name)
		}

		bound, err := natural.ParseBound(def.Bound)
		if err != nil {
			return nil, err
		}

		d, err := natural.NewDescriptor(def.Name, def.Bytes, bound)
		if err != nil {
			return nil, err
		}

		r.types[def.Name] = d
	}

	return r, nil
}

// Load builds a registry from a YAML document.
func Load(rd io.Reader) (_ *Registry, err error) {
	defer natural.ConfigurationError.WrapP(&err)

	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	doc := document{}

	err = dec.Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return New(doc.Types...)
}

// Lookup returns the descriptor for name.
func (r *Registry) Lookup(name string) (d *natural.Descriptor, ok bool) {
	d, ok = r.types[name]

	return d, ok
}

// MustLookup returns the descriptor for name or panics.
func (r *Registry) MustLookup(name string) *natural.Descriptor {
	d, ok := r.types[name]
	if !ok {
		panic(oops.Trace(natural.ConfigurationError.New("unknown type: %s", name)))
	}

	return d
}

// Names returns the defined type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of types.
func (r *Registry) Len() int {
	return len(r.types)
}
