package trellis

import "strings"

// Params holds the parameters captured from a request path. Named parameters
// are keyed by their name, single wildcards by '*' and trailing wildcards by
// '**'. When a name is captured more than once during a walk the last value
// wins.
type Params map[string]string

// Get returns the value of a parameter by key. The lookup is case-insensitive
// (e.g., 'ID' and 'id' match the same parameter). Returns an empty string if the
// key doesn't exist.
func (p Params) Get(key string) string {
	if value, ok := p[key]; ok {
		return value
	}
	for k, v := range p {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// Has reports whether the key was captured, using an exact comparison.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Params) clone() Params {
	cloned := make(Params, len(p))
	for k, v := range p {
		cloned[k] = v
	}
	return cloned
}
