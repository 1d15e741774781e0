package trellis

import (
	"encoding/json"
)

// RouteDescriptor describes a registered route: the method and the pattern it
// was bound with. Descriptors are what a Directory announces to other
// services. Access them via RouteTable.RouteDescriptors().
type RouteDescriptor struct {
	Method  string
	Pattern *Pattern
}

// MarshalJSON returns the JSON representation of the route descriptor.
func (r *RouteDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Method  string
		Pattern string
	}{
		Method:  r.Method,
		Pattern: r.Pattern.String(),
	})
}

// UnmarshalJSON parses the JSON representation of the route descriptor.
func (r *RouteDescriptor) UnmarshalJSON(data []byte) error {
	fromJSONStruct := struct {
		Method  string
		Pattern string
	}{}
	if err := json.Unmarshal(data, &fromJSONStruct); err != nil {
		return err
	}

	r.Method = fromJSONStruct.Method
	r.Pattern = NewPattern(fromJSONStruct.Pattern)

	return nil
}

// String returns the method and pattern separated by a space.
func (r *RouteDescriptor) String() string {
	return r.Method + " " + r.Pattern.String()
}
