// Package manifest loads route tables from YAML manifests.
//
// A manifest lists routes by method, patterns and the names of the handlers
// forming their chain. Handler names are resolved through a registry when
// the manifest is applied to a table:
//
//	routes:
//	  - method: get
//	    patterns: ["/users/:id", "/people/:id"]
//	    handlers: [auth, showUser]
//	  - method: post
//	    patterns: ["/users"]
//	    handlers: [auth, createUser]
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RobertWHurst/trellis"
)

// Manifest is a list of routes to register.
type Manifest struct {
	Routes []Route `yaml:"routes"`
}

// Route binds a chain of named handlers to one or more patterns.
type Route struct {
	Method   string   `yaml:"method"`
	Patterns []string `yaml:"patterns"`
	Handlers []string `yaml:"handlers"`
}

// Registry resolves handler names used in a manifest.
type Registry map[string]trellis.Handler

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer file.Close()

	manifest, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}
	return manifest, nil
}

// Parse reads a manifest from r and validates it.
func Parse(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	return &manifest, nil
}

// Validate checks that every route has a method, at least one pattern and at
// least one handler.
func (m *Manifest) Validate() error {
	var errs []error
	for i, route := range m.Routes {
		if strings.TrimSpace(route.Method) == "" {
			errs = append(errs, fmt.Errorf("routes[%d]: method is required", i))
		}
		if len(route.Patterns) == 0 {
			errs = append(errs, fmt.Errorf("routes[%d]: at least one pattern is required", i))
		}
		if len(route.Handlers) == 0 {
			errs = append(errs, fmt.Errorf("routes[%d]: at least one handler is required", i))
		}
	}
	return errors.Join(errs...)
}

// Apply registers every route of the manifest on table. Methods are
// upper-cased, the same as the table's convenience methods do. All handler
// names are resolved before anything is registered, so an unknown name, or
// a name registered with a nil handler, leaves the table untouched.
func (m *Manifest) Apply(table *trellis.RouteTable, registry Registry) error {
	if err := m.Validate(); err != nil {
		return err
	}

	argLists := make([][]any, len(m.Routes))
	for i, route := range m.Routes {
		args := make([]any, 0, len(route.Patterns)+len(route.Handlers))
		for _, pattern := range route.Patterns {
			args = append(args, pattern)
		}
		for _, name := range route.Handlers {
			handler, ok := registry[name]
			if !ok || handler == nil {
				return fmt.Errorf("routes[%d]: unknown handler %q", i, name)
			}
			args = append(args, handler)
		}
		argLists[i] = args
	}

	for i, route := range m.Routes {
		method := strings.ToUpper(strings.TrimSpace(route.Method))
		if err := table.Register(method, argLists[i]...); err != nil {
			return fmt.Errorf("routes[%d]: %w", i, err)
		}
	}

	return nil
}
