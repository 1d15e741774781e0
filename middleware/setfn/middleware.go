package setfn

import "github.com/RobertWHurst/trellis"

// Middleware creates middleware that sets a dynamically-generated value on the
// request context. The valueFn function is called for each request to generate
// a fresh value.
//
// Use this when you need a unique value for each request (e.g., timestamps, UUIDs, request IDs).
//
// Example:
//
//	router.Get("/data", setfn.Middleware("requestID", func() string {
//	    return uuid.NewString()
//	}), func(ctx *trellis.Context) {
//	    requestID := ctx.MustGet("requestID").(string)  // Unique per request
//	    log.Printf("[%s] Processing request", requestID)
//	})
//
// See also: set.Middleware for constant values, setvalue.Middleware for pointer values.
func Middleware[V any](key string, valueFn func() V) func(ctx *trellis.Context) {
	return func(ctx *trellis.Context) {
		ctx.Set(key, valueFn())
		ctx.Next()
	}
}
