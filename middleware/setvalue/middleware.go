package setvalue

import "github.com/RobertWHurst/trellis"

// Middleware creates middleware that dereferences value on every request and
// sets the result on the request context, so changes made through the
// pointer between requests are picked up.
func Middleware[V any](key string, value *V) func(ctx *trellis.Context) {
	return func(ctx *trellis.Context) {
		ctx.Set(key, *value)
		ctx.Next()
	}
}
