package trellis_test

import (
	"encoding/json"
	"testing"

	"github.com/RobertWHurst/trellis"
)

func TestRouteDescriptorMarshalJSON(t *testing.T) {
	r := &trellis.RouteDescriptor{
		Method:  "GET",
		Pattern: trellis.NewPattern("/a/:b/c"),
	}

	bytes, err := r.MarshalJSON()
	if err != nil {
		t.Errorf("Failed to marshal route descriptor: %s", err.Error())
	}

	jsonData := map[string]any{}
	err = json.Unmarshal(bytes, &jsonData)
	if err != nil {
		t.Errorf("Failed to unmarshal route descriptor: %s", err.Error())
	}

	if len(jsonData) != 2 {
		t.Errorf("Expected 2 keys, got %d", len(jsonData))
	}
	if jsonData["Method"] != "GET" {
		t.Errorf("Expected Method to be GET, got %s", jsonData["Method"])
	}
	if jsonData["Pattern"] != "/a/:b/c" {
		t.Errorf("Expected Pattern to be /a/:b/c, got %s", jsonData["Pattern"])
	}
}

func TestRouteDescriptorUnmarshalJSON(t *testing.T) {
	jsonData := []byte(`{"Method":"POST","Pattern":"/a/b/c"}`)

	r := &trellis.RouteDescriptor{}
	if err := r.UnmarshalJSON(jsonData); err != nil {
		t.Errorf("Failed to unmarshal route descriptor: %s", err.Error())
	}

	if r.Method != "POST" {
		t.Errorf("Expected Method to be POST, got %s", r.Method)
	}
	if r.Pattern.String() != "/a/b/c" {
		t.Errorf("Expected Pattern to be /a/b/c, got %s", r.Pattern)
	}
	if r.String() != "POST /a/b/c" {
		t.Errorf("Expected POST /a/b/c, got %s", r.String())
	}
}

func TestRouteDescriptorUnmarshalJSONInvalid(t *testing.T) {
	r := &trellis.RouteDescriptor{}
	if err := r.UnmarshalJSON([]byte(`{"Method":`)); err == nil {
		t.Error("Expected an error for truncated JSON")
	}
}
