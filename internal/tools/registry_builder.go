package tools

import (
	"errors"
	"fmt"
)

// RegistryBuilder accumulates descriptors during the construction phase.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	descriptors []Descriptor
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// WithTool appends a descriptor and returns the builder, enabling chaining.
func (b *RegistryBuilder) WithTool(d Descriptor) *RegistryBuilder {
	b.descriptors = append(b.descriptors, d)
	return b
}

// Build produces an immutable Registry in insertion order. It fails on empty
// or duplicate tool names and on duplicate parameter names within a tool.
func (b *RegistryBuilder) Build() (*Registry, error) {
	r := &Registry{
		ordered: make([]Descriptor, 0, len(b.descriptors)),
		byName:  make(map[ToolName]int, len(b.descriptors)),
	}
	var errs []error
	for _, d := range b.descriptors {
		if d.Name == "" {
			errs = append(errs, errors.New("tool with empty name"))
			continue
		}
		if _, dup := r.byName[d.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate tool %q", d.Name))
			continue
		}
		if err := checkParams(d); err != nil {
			errs = append(errs, err)
			continue
		}
		d.Params = append([]Param(nil), d.Params...)
		r.byName[d.Name] = len(r.ordered)
		r.ordered = append(r.ordered, d)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// MustBuild is like Build but panics on an invalid catalog.
func (b *RegistryBuilder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic("tools: " + err.Error())
	}
	return r
}

func checkParams(d Descriptor) error {
	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q: parameter with empty name", d.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %q: duplicate parameter %q", d.Name, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
