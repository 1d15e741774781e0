package trellis

import (
	"context"
	"net/http"
	"sync"
)

// Context carries a matched request through its handler chain. A Context is
// only valid until Dispatch returns; handlers must not retain it.
type Context struct {
	request        *http.Request
	responseWriter http.ResponseWriter

	method    string
	path      string
	route     string
	params    Params
	remainder []string

	// Error holds the value recovered from a panicking handler. Once set no
	// further handlers in the chain run.
	Error      error
	ErrorStack string

	handlers      []Handler
	handlerIndex  int
	passedThrough bool

	associatedValues map[string]any
}

var contextPool = sync.Pool{
	New: func() any {
		return &Context{
			associatedValues: map[string]any{},
		}
	},
}

// NewContext creates a context for a matched request. The route and params
// of match are stored on the request so that http.Handlers further down the
// chain can read them with RouteFromRequest and ParamsFromRequest. Dispatch
// creates contexts itself; this is exposed for frameworks that drive chains
// on their own and must release the context with CtxFree.
func NewContext(res http.ResponseWriter, req *http.Request, method, path string, match MatchResult) *Context {
	ctx := contextFromPool()

	ctx.method = method
	ctx.path = path
	ctx.route = match.Route
	ctx.params = match.Params
	if ctx.params == nil {
		ctx.params = Params{}
	}
	ctx.remainder = match.Remainder
	ctx.handlers = match.Handlers

	ctx.responseWriter = res
	if req != nil {
		req = req.WithContext(withRoute(req.Context(), ctx.route, ctx.params))
	}
	ctx.request = req

	return ctx
}

func contextFromPool() *Context {
	ctx := contextPool.Get().(*Context)

	ctx.request = nil
	ctx.responseWriter = nil

	ctx.method = ""
	ctx.path = ""
	ctx.route = ""
	ctx.params = nil
	ctx.remainder = nil

	ctx.Error = nil
	ctx.ErrorStack = ""

	ctx.handlers = nil
	ctx.handlerIndex = 0
	ctx.passedThrough = false

	for k := range ctx.associatedValues {
		delete(ctx.associatedValues, k)
	}

	return ctx
}

func (c *Context) free() {
	contextPool.Put(c)
}

// Request returns the request being handled. Its context carries the route
// and params of the match.
func (c *Context) Request() *http.Request {
	return c.request
}

// ResponseWriter returns the writer for the response.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.responseWriter
}

// Method returns the request method used for matching.
func (c *Context) Method() string {
	return c.method
}

// Path returns the request path used for matching, without the query string.
func (c *Context) Path() string {
	return c.path
}

// Route returns the pattern string of the matched route.
func (c *Context) Route() string {
	return c.route
}

// Params returns the parameters captured from the request path.
func (c *Context) Params() Params {
	return c.params
}

// Param returns a single captured parameter. See Params.Get.
func (c *Context) Param(key string) string {
	return c.params.Get(key)
}

// Remainder returns the path segments captured by a trailing wildcard, or nil
// when the route has none.
func (c *Context) Remainder() []string {
	return c.remainder
}

// Set stores a value on the context. Values only live as long as the
// request's handler chain.
func (c *Context) Set(key string, value any) {
	c.associatedValues[key] = value
}

// Get retrieves a value stored with Set.
func (c *Context) Get(key string) (any, bool) {
	value, ok := c.associatedValues[key]
	return value, ok
}

// MustGet is like Get but panics if the key is not set.
func (c *Context) MustGet(key string) any {
	value, ok := c.associatedValues[key]
	if !ok {
		panic("key not found: " + key)
	}
	return value
}

type routeContextKey struct{}

type routeValue struct {
	route  string
	params Params
}

func withRoute(parent context.Context, route string, params Params) context.Context {
	return context.WithValue(parent, routeContextKey{}, &routeValue{
		route:  route,
		params: params,
	})
}

// RouteFromRequest returns the route pattern stored on a dispatched request.
// It returns an empty string for requests that did not match.
func RouteFromRequest(req *http.Request) string {
	if value, ok := req.Context().Value(routeContextKey{}).(*routeValue); ok {
		return value.route
	}
	return ""
}

// ParamsFromRequest returns a copy of the params stored on a dispatched
// request. It returns empty params for requests that did not match.
func ParamsFromRequest(req *http.Request) Params {
	if value, ok := req.Context().Value(routeContextKey{}).(*routeValue); ok {
		return value.params.clone()
	}
	return Params{}
}
