// Package trellis provides a trie based HTTP request router for Go.
//
// Trellis maps a request method and URL to an ordered chain of handlers. Routes
// are stored per method in a trie of path segments, so matching costs one
// lookup per segment regardless of how many routes are registered.
//
// # Key Features
//
//   - Literal segments, named parameters, single and trailing wildcards
//   - Deterministic precedence: literals, then trailing wildcards, then params
//   - Handler chains driven by ctx.Next, with panic recovery
//   - Works with net/http, and with Navaros as middleware
//   - Route sharing between services over NATS, via Directory
//   - YAML route manifests and Prometheus metrics
//
// # Quick Start
//
// Create a router, register handlers against patterns, and serve it:
//
//	router := trellis.NewRouter()
//
//	router.Get("/users/:id", func(ctx *trellis.Context) {
//	    fmt.Fprintf(ctx.ResponseWriter(), "user %s", ctx.Param("id"))
//	})
//
//	http.ListenAndServe(":8080", router)
//
// # Patterns
//
// Patterns are split on "/" into segments. Each segment is a literal, a named
// parameter, or a wildcard:
//
//	router.Get("/users/list", handler)       // Literal
//	router.Get("/users/:id", handler)        // Named parameter
//	router.Get("/static/*", handler)         // One segment, captured as "*"
//	router.Get("/files/**", handler)         // Remaining segments, captured as "**"
//
// A parameter only matches paths with the same number of segments as its
// pattern, so "/:id" and "/:id/:type" live side by side. Matching never
// backtracks: once a literal segment matches, parameters at the same position
// are not considered.
//
// # Handler Chains
//
// Several patterns may share one chain, and a chain may hold several handlers.
// Only the first runs automatically; each handler calls Next to continue:
//
//	router.Get("/admin", "/admin/**", requireAdmin, showAdmin)
//
// Router-wide middleware added with Use runs ahead of every matched chain:
//
//	router.Use(set.Middleware("apiVersion", "v1"))
//
// When the last handler calls Next, the request falls through to the router's
// fallback, which defaults to http.NotFoundHandler.
//
// # Embedding
//
// RouteTable holds the routes without any HTTP serving. Its Match and Dispatch
// methods let other frameworks route requests with the same rules:
//
//	outcome, err := table.Dispatch(req.Method, req.URL.RequestURI(), res, req)
//
// For more examples and documentation, see https://github.com/RobertWHurst/trellis
package trellis
