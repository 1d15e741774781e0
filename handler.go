package trellis

import "net/http"

// Handler is a handler object interface. Any object that implements this
// interface can be used as a handler in a handler chain.
type Handler interface {
	Handle(ctx *Context)
}

// HandlerFunc is a function adapter that allows ordinary functions to be used as
// handlers. This is the most common way to define handlers.
type HandlerFunc func(ctx *Context)

// Handle calls fn(ctx).
func (fn HandlerFunc) Handle(ctx *Context) {
	fn(ctx)
}

type httpHandler struct {
	handler http.Handler
}

// Handle serves the request with the wrapped http.Handler. The chain ends
// here; http.Handlers have no way to call Next.
func (h *httpHandler) Handle(ctx *Context) {
	h.handler.ServeHTTP(ctx.ResponseWriter(), ctx.Request())
}

// HTTPHandler adapts an http.Handler for use in a handler chain. The route
// and params of the match can be read from the request with
// RouteFromRequest and ParamsFromRequest.
func HTTPHandler(handler http.Handler) Handler {
	return &httpHandler{handler: handler}
}

// toHandler normalises the handler types accepted at registration. It
// reports false for anything that cannot be invoked.
func toHandler(maybeHandler any) (Handler, bool) {
	switch handler := maybeHandler.(type) {
	case nil:
		return nil, false
	case Handler:
		return handler, true
	case func(*Context):
		return HandlerFunc(handler), true
	case http.Handler:
		return HTTPHandler(handler), true
	case func(http.ResponseWriter, *http.Request):
		return HTTPHandler(http.HandlerFunc(handler)), true
	}
	return nil, false
}
