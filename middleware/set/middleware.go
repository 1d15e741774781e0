package set

import "github.com/RobertWHurst/trellis"

// Middleware creates middleware that sets a value on the request context.
// The value is set once when the middleware is created and reused for every
// request. Values only exist for the duration of the request's handler chain.
//
// Use it with router.Use for every route, or place it ahead of the handlers
// that read the value:
//
//	router.Use(set.Middleware("apiVersion", "v1"))
//
//	router.Get("/info", func(ctx *trellis.Context) {
//	    version := ctx.MustGet("apiVersion").(string)  // "v1"
//	    fmt.Fprint(ctx.ResponseWriter(), version)
//	})
//
// See also: setfn.Middleware for dynamic values, setvalue.Middleware for pointer values.
func Middleware[V any](key string, value V) func(ctx *trellis.Context) {
	return func(ctx *trellis.Context) {
		ctx.Set(key, value)
		ctx.Next()
	}
}
