package trellis_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/RobertWHurst/trellis"
)

func TestRouteTableConvenienceMethods(t *testing.T) {
	t.Parallel()

	table := trellis.NewRouteTable()
	register := map[string]func(args ...any) error{
		"GET":        table.Get,
		"POST":       table.Post,
		"PUT":        table.Put,
		"HEAD":       table.Head,
		"PATCH":      table.Patch,
		"DELETE":     table.Delete,
		"CONNECT":    table.Connect,
		"OPTIONS":    table.Options,
		"TRACE":      table.Trace,
		"COPY":       table.Copy,
		"LOCK":       table.Lock,
		"MKCOL":      table.Mkcol,
		"MOVE":       table.Move,
		"PROPFIND":   table.Propfind,
		"PROPPATCH":  table.Proppatch,
		"UNLOCK":     table.Unlock,
		"REPORT":     table.Report,
		"MKACTIVITY": table.Mkactivity,
		"CHECKOUT":   table.Checkout,
		"MERGE":      table.Merge,
	}
	require.Len(t, register, len(trellis.Methods()))

	for _, method := range trellis.Methods() {
		fn, ok := register[method]
		require.True(t, ok, "no convenience method for %s", method)
		require.NoError(t, fn("/"+strings.ToLower(method), noopHandler))
	}

	for _, method := range trellis.Methods() {
		match, err := table.Match(method, "/"+strings.ToLower(method))
		require.NoError(t, err)
		assert.True(t, match.Matched(), method)

		match, err = table.Match(strings.ToLower(method), "/"+strings.ToLower(method))
		require.NoError(t, err)
		assert.False(t, match.Matched(), method)
	}
}

func TestRouteTableRegisterKeepsMethodCase(t *testing.T) {
	t.Parallel()

	table := trellis.NewRouteTable()
	require.NoError(t, table.Register("get", "/", noopHandler))

	match, err := table.Match("get", "/")
	require.NoError(t, err)
	assert.True(t, match.Matched())

	match, err = table.Match("GET", "/")
	require.NoError(t, err)
	assert.False(t, match.Matched())
}

func TestRouteTableSharedChain(t *testing.T) {
	t.Parallel()

	calls := 0
	handler := func(ctx *trellis.Context) { calls++ }

	table := trellis.NewRouteTable()
	require.NoError(t, table.Get("/a", "/b", handler))

	for _, path := range []string{"/a", "/b"} {
		outcome, err := table.Dispatch("GET", path, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, trellis.Matched, outcome)
	}
	assert.Equal(t, 2, calls)

	outcome, err := table.Dispatch("GET", "/c", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, trellis.Fallthrough, outcome)
	assert.Equal(t, 2, calls)
}

func TestRouteTableReRegisterOverwrites(t *testing.T) {
	t.Parallel()

	var called string
	table := trellis.NewRouteTable()
	require.NoError(t, table.Get("/:id", func(ctx *trellis.Context) { called = "first" }))
	require.NoError(t, table.Get("/:id", func(ctx *trellis.Context) { called = "second" }))

	_, err := table.Dispatch("GET", "/42", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", called)

	assert.Len(t, table.RouteDescriptors(), 1)
}

func TestRouteTableReRegisterRoot(t *testing.T) {
	t.Parallel()

	var called string
	table := trellis.NewRouteTable()
	require.NoError(t, table.Get("/", func(ctx *trellis.Context) { called = "first" }))
	require.NoError(t, table.Get("", func(ctx *trellis.Context) { called = "second" }))

	_, err := table.Dispatch("GET", "/", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", called)

	match, err := table.Match("GET", "/")
	require.NoError(t, err)
	assert.Equal(t, "", match.Route)
}

func TestRouteTableConfigurationIgnored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []any
	}{
		{name: "no arguments", args: []any{}},
		{name: "no patterns", args: []any{noopHandler}},
		{name: "no handlers", args: []any{"/a"}},
		{name: "final argument not callable", args: []any{"/a", 42}},
		{name: "non callable in chain", args: []any{"/a", 42, noopHandler}},
		{name: "pattern after handler", args: []any{"/a", noopHandler, "/b"}},
		{name: "nil handler", args: []any{"/a", nil}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := trellis.NewRouteTable()
			err := table.Get(tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, trellis.ErrConfigurationIgnored))
			assert.Empty(t, table.RouteDescriptors())

			match, err := table.Match("GET", "/a")
			require.NoError(t, err)
			assert.False(t, match.Matched())
		})
	}
}

func TestRouteTableAcceptsHandlerTypes(t *testing.T) {
	t.Parallel()

	table := trellis.NewRouteTable()
	require.NoError(t, table.Get("/func", func(ctx *trellis.Context) {}))
	require.NoError(t, table.Get("/handler-func", trellis.HandlerFunc(func(ctx *trellis.Context) {})))
	require.NoError(t, table.Get("/http-handler", http.NotFoundHandler()))
	require.NoError(t, table.Get("/http-func", func(res http.ResponseWriter, req *http.Request) {}))

	assert.Len(t, table.RouteDescriptors(), 4)
}

func TestRouteTableRouteDescriptors(t *testing.T) {
	t.Parallel()

	table := trellis.NewRouteTable()
	require.NoError(t, table.Get("/users", "/users/:id", noopHandler))
	require.NoError(t, table.Post("/users", noopHandler))
	require.NoError(t, table.Get("/users", noopHandler))

	descriptors := table.RouteDescriptors()
	routes := make([]string, len(descriptors))
	for i, descriptor := range descriptors {
		routes[i] = descriptor.String()
	}
	assert.Equal(t, []string{"GET /users/:id", "POST /users", "GET /users"}, routes)
}

func TestRouteTableLookup(t *testing.T) {
	t.Parallel()

	showUser := func(ctx *trellis.Context) {}
	listUsers := func(ctx *trellis.Context) {}
	unused := func(ctx *trellis.Context) {}

	table := trellis.NewRouteTable()
	require.NoError(t, table.Get("/users", listUsers))
	require.NoError(t, table.Get("/users/:id", showUser))

	descriptor, ok := table.Lookup(showUser)
	require.True(t, ok)
	assert.Equal(t, "GET", descriptor.Method)

	path, err := descriptor.Pattern.Path(trellis.Params{"id": "42"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/users/42", path)

	_, ok = table.Lookup(unused)
	assert.False(t, ok)

	// A replaced registration is no longer found.
	require.NoError(t, table.Get("/users", unused))
	_, ok = table.Lookup(listUsers)
	assert.False(t, ok)
}

func TestRouteTableString(t *testing.T) {
	t.Parallel()

	table := trellis.NewRouteTable()
	require.NoError(t, table.Get("/", noopHandler))
	require.NoError(t, table.Get("/users/:id", noopHandler))
	require.NoError(t, table.Get("/files/**", noopHandler))

	expected := strings.Join([]string{
		"GET\t[/]",
		"\t/files",
		"\t\t/**\t[/files/**]",
		"\t/users",
		"\t\t/{id} len=2\t[/users/:id]",
	}, "\n")
	assert.Equal(t, expected, table.String())
}

func TestRouteTableLogsDiagnostics(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	table := trellis.NewRouteTable()
	table.SetLogger(zap.New(core))

	require.NoError(t, table.Get("/:id/a", noopHandler))
	require.NoError(t, table.Get("/:name/b", noopHandler))
	require.NoError(t, table.Get("/files/**/meta", noopHandler))
	require.Error(t, table.Get("/broken"))

	assert.Equal(t, 3, logs.FilterMessage("route registered").Len())
	assert.Equal(t, 1, logs.FilterMessage("parameter position already captured under another name").Len())
	assert.Equal(t, 1, logs.FilterMessage("segments after a trailing wildcard are ignored").Len())
	assert.Equal(t, 1, logs.FilterMessage("route registration ignored").Len())

	// The node keeps the name it was created with.
	match, err := table.Match("GET", "/42/b")
	require.NoError(t, err)
	assert.Equal(t, trellis.Params{"id": "42"}, match.Params)
}
