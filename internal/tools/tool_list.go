package tools

// Definitions returns all tool definitions in MCP tools/list format
// (name, description, inputSchema), in catalog order.
func (r *Registry) Definitions() []map[string]any {
	list := make([]map[string]any, 0, len(r.ordered))
	for _, d := range r.ordered {
		list = append(list, map[string]any{
			"name":        string(d.Name),
			"description": d.Description,
			"inputSchema": d.InputSchema(),
		})
	}
	return list
}

// ByGroup returns the descriptors of one group in catalog order.
func (r *Registry) ByGroup(g Group) []Descriptor {
	var out []Descriptor
	for _, d := range r.ordered {
		if d.Group == g {
			out = append(out, d)
		}
	}
	return out
}
