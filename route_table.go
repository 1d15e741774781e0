package trellis

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrConfigurationIgnored is returned by Register and the convenience
// registration methods when a call is malformed. Nothing is registered for
// such a call; callers that prefer a permissive API may drop the error.
var ErrConfigurationIgnored = errors.New("route configuration ignored")

// RouteTable maps each HTTP method to a trie of route patterns. The table is
// built during configuration and is read-only afterwards, so any number of
// goroutines may call Match and Dispatch on a fully built table. Registering
// routes while matching is in progress is not supported.
type RouteTable struct {
	arena    arena
	roots    map[string]nodeID
	methods  []string
	bindings []*binding
	logger   *zap.Logger
}

type binding struct {
	descriptor *RouteDescriptor
	sources    []any
	live       bool
}

// NewRouteTable creates an empty route table.
func NewRouteTable() *RouteTable {
	return &RouteTable{
		roots:  map[string]nodeID{},
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger used for registration diagnostics. A nil logger
// disables logging.
func (t *RouteTable) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t.logger = logger
}

// Logger returns the table's logger.
func (t *RouteTable) Logger() *zap.Logger {
	return t.logger
}

// Register binds a handler chain to one or more route patterns for method.
// Leading string arguments are patterns; every argument after them is a
// handler and together they form the chain shared by each pattern. Each
// pattern is registered independently, and registering a pattern that
// already exists for the method replaces its chain.
//
//	table.Register("GET", "/users/:id", "/people/:id", auth, showUser)
//
// Handlers must be Handler, HandlerFunc, func(*Context), http.Handler or
// func(http.ResponseWriter, *http.Request). A call with no pattern, no handler
// or an argument of any other type registers nothing and returns an error
// wrapping ErrConfigurationIgnored.
//
// The method is stored exactly as given; matching is case-sensitive.
func (t *RouteTable) Register(method string, args ...any) error {
	patterns := []string{}
	i := 0
	for ; i < len(args); i++ {
		pattern, ok := args[i].(string)
		if !ok {
			break
		}
		patterns = append(patterns, pattern)
	}
	sources := args[i:]

	if len(patterns) == 0 {
		return t.ignore(method, patterns, "no route patterns provided")
	}
	if len(sources) == 0 {
		return t.ignore(method, patterns, "no handlers provided")
	}

	handlers := make([]Handler, 0, len(sources))
	for _, source := range sources {
		handler, ok := toHandler(source)
		if !ok {
			return t.ignore(method, patterns, fmt.Sprintf("invalid handler type %T", source))
		}
		handlers = append(handlers, handler)
	}

	for _, pattern := range patterns {
		t.add(method, NewPattern(pattern), handlers, sources)
	}

	return nil
}

func (t *RouteTable) ignore(method string, patterns []string, reason string) error {
	t.logger.Warn("route registration ignored",
		zap.String("method", method),
		zap.Strings("patterns", patterns),
		zap.String("reason", reason),
	)
	return fmt.Errorf("%w: %s", ErrConfigurationIgnored, reason)
}

func (t *RouteTable) add(method string, pattern *Pattern, handlers []Handler, sources []any) {
	if pattern.truncated {
		t.logger.Warn("segments after a trailing wildcard are ignored",
			zap.String("method", method),
			zap.String("pattern", pattern.String()),
		)
	}

	current := t.root(method)
	length := pattern.Len()
	open := length != 0 && pattern.segments[length-1].kind == trailingWildcardSegment
	if open {
		length--
	}

	for _, currentSegment := range pattern.segments {
		switch currentSegment.kind {
		case literalSegment:
			current = t.arena.literalChild(current, currentSegment.value)
		case paramSegment, wildcardSegment:
			current = t.arena.paramChild(current, length, open, currentSegment)
			if name := t.arena.get(current).name; name != currentSegment.name {
				t.logger.Warn("parameter position already captured under another name",
					zap.String("method", method),
					zap.String("pattern", pattern.String()),
					zap.String("name", currentSegment.name),
					zap.String("capturedAs", name),
				)
			}
		case trailingWildcardSegment:
			current = t.arena.trailingChild(current)
		}
	}

	terminal := t.arena.get(current)
	if terminal.binding >= 0 {
		t.bindings[terminal.binding].live = false
	}
	terminal.handlers = append([]Handler(nil), handlers...)
	terminal.route = pattern.String()
	terminal.binding = len(t.bindings)

	t.bindings = append(t.bindings, &binding{
		descriptor: &RouteDescriptor{Method: method, Pattern: pattern},
		sources:    sources,
		live:       true,
	})

	t.logger.Debug("route registered",
		zap.String("method", method),
		zap.String("pattern", pattern.String()),
		zap.Int("handlers", len(handlers)),
	)
}

// root returns the root node for method, creating it on first use.
func (t *RouteTable) root(method string) nodeID {
	if root, ok := t.roots[method]; ok {
		return root
	}
	root := t.arena.alloc(rootNodeKind, method, "")
	t.roots[method] = root
	t.methods = append(t.methods, method)
	return root
}

// RouteDescriptors returns a descriptor for every reachable registration in
// the order the routes were registered. A pattern registered again for the
// same method is reported once, at the position of its latest registration.
func (t *RouteTable) RouteDescriptors() []*RouteDescriptor {
	descriptors := []*RouteDescriptor{}
	for _, currentBinding := range t.bindings {
		if currentBinding.live {
			descriptors = append(descriptors, currentBinding.descriptor)
		}
	}
	return descriptors
}

// Lookup finds the route a handler is registered under. This is useful for
// generating paths from handlers (reverse routing). The most recent reachable
// registration containing the handler wins. Example:
//
//	if descriptor, ok := table.Lookup(showUser); ok {
//	    path, _ := descriptor.Pattern.Path(trellis.Params{"id": "42"}, nil)
//	}
func (t *RouteTable) Lookup(handler any) (*RouteDescriptor, bool) {
	for i := len(t.bindings) - 1; i >= 0; i-- {
		currentBinding := t.bindings[i]
		if !currentBinding.live {
			continue
		}
		for _, source := range currentBinding.sources {
			if sameHandler(source, handler) {
				return currentBinding.descriptor, true
			}
		}
	}
	return nil, false
}

func sameHandler(a, b any) bool {
	aValue := reflect.ValueOf(a)
	bValue := reflect.ValueOf(b)
	if !aValue.IsValid() || !bValue.IsValid() || aValue.Type() != bValue.Type() {
		return false
	}
	switch aValue.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return aValue.Pointer() == bValue.Pointer()
	}
	if aValue.Type().Comparable() {
		return a == b
	}
	return false
}

// String renders every method trie, one node per line, for diagnostics.
func (t *RouteTable) String() string {
	lines := []string{}
	for _, method := range t.methods {
		lines = t.dumpNode(lines, "", method, t.roots[method])
	}
	return strings.Join(lines, "\n")
}

func (t *RouteTable) dumpNode(lines []string, indent string, label string, id nodeID) []string {
	current := t.arena.get(id)

	line := indent + label
	if current.isTerminal() {
		line += "\t[" + current.route + "]"
	}
	lines = append(lines, line)

	childIndent := indent + "\t"

	literalKeys := make([]string, 0, len(current.literals))
	for key := range current.literals {
		literalKeys = append(literalKeys, key)
	}
	sort.Strings(literalKeys)
	for _, key := range literalKeys {
		lines = t.dumpNode(lines, childIndent, "/"+key, current.literals[key])
	}

	for _, length := range sortedLengths(current.params) {
		child := current.params[length]
		label := "/{" + t.arena.get(child).name + "} len=" + strconv.Itoa(length)
		lines = t.dumpNode(lines, childIndent, label, child)
	}
	for _, length := range sortedLengths(current.openParams) {
		child := current.openParams[length]
		label := "/{" + t.arena.get(child).name + "} len>=" + strconv.Itoa(length)
		lines = t.dumpNode(lines, childIndent, label, child)
	}

	if current.trailing != noNode {
		lines = t.dumpNode(lines, childIndent, "/**", current.trailing)
	}

	return lines
}

func sortedLengths(children map[int]nodeID) []int {
	lengths := make([]int, 0, len(children))
	for length := range children {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)
	return lengths
}
