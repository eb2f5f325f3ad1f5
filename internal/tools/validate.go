package tools

// ArgumentBag is the key/value argument set a caller supplies for one call.
type ArgumentBag = map[string]any

// Validate reports every problem with args for the named tool: an unknown
// tool yields a single error, otherwise one error per missing required
// parameter in declaration order. A parameter is missing when absent, nil or
// the empty string. Parameters the tool does not declare are ignored.
func (r *Registry) Validate(name string, args ArgumentBag) []string {
	d, ok := r.Get(name)
	if !ok {
		return []string{"Unknown tool: " + name}
	}

	errs := []string{}
	for _, param := range d.Required() {
		if isMissing(args, param) {
			errs = append(errs, "Missing required parameter: "+param)
		}
	}
	return errs
}

func isMissing(args ArgumentBag, key string) bool {
	v, ok := args[key]
	if !ok || v == nil {
		return true
	}
	s, isString := v.(string)
	return isString && s == ""
}
