package tools

// Registry is a read-only, ordered set of tool descriptors. It is safe for
// concurrent use because nothing mutates it after Build.
type Registry struct {
	ordered []Descriptor
	byName  map[ToolName]int
}

// List returns every descriptor in insertion order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Get returns the descriptor with the given name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	i, ok := r.byName[ToolName(name)]
	if !ok {
		return Descriptor{}, false
	}
	return r.ordered[i], true
}

// Names returns the tool names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.ordered))
	for i, d := range r.ordered {
		out[i] = string(d.Name)
	}
	return out
}

// Len returns the number of tools.
func (r *Registry) Len() int { return len(r.ordered) }
