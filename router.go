package trellis

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/RobertWHurst/navaros"
	"go.uber.org/zap"
)

// Router is an http.Handler that dispatches requests through a RouteTable.
// It embeds the table, so routes are registered on the router directly, and
// it can also be used as middleware with Navaros.
//
// Requests that no route handles are passed to the fallback handler, which
// defaults to http.NotFoundHandler().
type Router struct {
	*RouteTable
	middleware []Handler
	fallback   http.Handler
	metrics    *Metrics
}

var _ http.Handler = &Router{}

// NewRouter creates and returns a new router with an empty route table.
func NewRouter() *Router {
	return &Router{
		RouteTable: NewRouteTable(),
		fallback:   http.NotFoundHandler(),
	}
}

// Use adds handlers that run ahead of the chain of every matched route, in
// the order they were added. Each must call Next for the route's own chain
// to run. Requests no route matches go straight to the fallback.
//
//	router.Use(set.Middleware("apiVersion", "v1"), authMiddleware)
//
// Handlers are accepted in the same forms as Register. A call with no
// handler or an argument of any other type adds nothing and returns an error
// wrapping ErrConfigurationIgnored.
func (r *Router) Use(handlers ...any) error {
	if len(handlers) == 0 {
		return r.ignoreMiddleware("no handlers provided")
	}

	middleware := make([]Handler, 0, len(handlers))
	for _, source := range handlers {
		handler, ok := toHandler(source)
		if !ok {
			return r.ignoreMiddleware(fmt.Sprintf("invalid handler type %T", source))
		}
		middleware = append(middleware, handler)
	}
	r.middleware = append(r.middleware, middleware...)

	return nil
}

func (r *Router) ignoreMiddleware(reason string) error {
	r.logger.Warn("middleware registration ignored", zap.String("reason", reason))
	return fmt.Errorf("%w: %s", ErrConfigurationIgnored, reason)
}

// SetFallback sets the handler for requests no route handles. The request
// passed to it carries an empty route and empty params.
func (r *Router) SetFallback(fallback http.Handler) {
	if fallback == nil {
		fallback = http.NotFoundHandler()
	}
	r.fallback = fallback
}

// SetMetrics attaches Prometheus metrics to the router. See NewMetrics.
func (r *Router) SetMetrics(metrics *Metrics) {
	r.metrics = metrics
}

// ServeHTTP implements the http.Handler interface, allowing the router to be
// used directly with Go's standard HTTP server.
func (r *Router) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	outcome, started, err := r.serve(res, req)
	if err != nil {
		r.handleError(res, req, started, err)
		return
	}
	if outcome == Fallthrough {
		r.fallback.ServeHTTP(res, withoutRoute(req))
	}
}

// Middleware returns a Navaros middleware function that dispatches requests
// through the router. Requests the router does not handle continue down the
// Navaros chain. Requests it handles inhibit the Navaros response, as the
// handler chain writes to the response writer directly.
func (r *Router) Middleware() navaros.HandlerFunc {
	return func(ctx *navaros.Context) {
		res := ctx.ResponseWriter()
		req := ctx.Request()

		outcome, started, err := r.serve(res, req)
		if err != nil {
			navaros.CtxInhibitResponse(ctx)
			r.handleError(res, req, started, err)
			return
		}
		if outcome == Fallthrough {
			ctx.Next()
			return
		}
		navaros.CtxInhibitResponse(ctx)
	}
}

// serve dispatches req and reports whether the handler chain started the
// response.
func (r *Router) serve(res http.ResponseWriter, req *http.Request) (Outcome, bool, error) {
	start := time.Now()
	writer := &responseWriter{ResponseWriter: res}
	outcome, route, err := r.dispatch(req.Method, req.URL.RequestURI(), writer, req, r.middleware)
	r.metrics.observe(metricsMethod(req.Method), route, outcome, err != nil && route != "", time.Since(start))
	return outcome, writer.started, err
}

func (r *Router) handleError(res http.ResponseWriter, req *http.Request, started bool, err error) {
	if errors.Is(err, ErrDecodeURL) {
		r.logger.Debug("rejected request with malformed url",
			zap.String("method", req.Method),
			zap.String("url", req.URL.RequestURI()),
			zap.Error(err),
		)
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	r.logger.Error("handler chain failed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.RequestURI()),
		zap.Bool("responseStarted", started),
		zap.Error(err),
	)
	// The status line is gone once the chain has written to the response.
	if started {
		return
	}
	http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func withoutRoute(req *http.Request) *http.Request {
	return req.WithContext(withRoute(req.Context(), "", Params{}))
}

func metricsMethod(method string) string {
	if IsKnownMethod(method) {
		return method
	}
	return "OTHER"
}
