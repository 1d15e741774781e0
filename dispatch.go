package trellis

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Outcome tells the host what happened to a dispatched request.
type Outcome int

const (
	// Matched means a handler chain handled the request.
	Matched Outcome = iota
	// Fallthrough means no route matched, or the last handler of the chain
	// called Next. The host should continue with its own fallback.
	Fallthrough
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Fallthrough:
		return "fallthrough"
	}
	return "unknown"
}

// Dispatch matches method and rawURL against the table and, on a match, runs
// the first handler of the chain with a Context carrying the route and
// params. The remaining handlers run only as each handler calls Next.
//
// Dispatch never calls a fallback itself. When nothing matches it returns
// Fallthrough and the host decides what to do with the request. The error is
// either a URL decoding error wrapping ErrDecodeURL, or the error recovered
// from a panicking handler; in the latter case the outcome is Matched.
func (t *RouteTable) Dispatch(method, rawURL string, res http.ResponseWriter, req *http.Request) (Outcome, error) {
	outcome, _, err := t.dispatch(method, rawURL, res, req, nil)
	return outcome, err
}

// dispatch runs prefix ahead of the matched chain. Unmatched requests never
// reach prefix.
func (t *RouteTable) dispatch(method, rawURL string, res http.ResponseWriter, req *http.Request, prefix []Handler) (Outcome, string, error) {
	match, err := t.Match(method, rawURL)
	if err != nil {
		return Fallthrough, "", err
	}
	if !match.Matched() {
		return Fallthrough, "", nil
	}
	if len(prefix) != 0 {
		handlers := make([]Handler, 0, len(prefix)+len(match.Handlers))
		handlers = append(handlers, prefix...)
		match.Handlers = append(handlers, match.Handlers...)
	}

	ctx := NewContext(res, req, method, stripQuery(rawURL), match)
	defer ctx.free()

	ctx.Next()

	if ctx.Error != nil {
		t.logger.Debug("handler chain failed",
			zap.String("method", method),
			zap.String("route", match.Route),
			zap.Error(ctx.Error),
			zap.String("stack", ctx.ErrorStack),
		)
		return Matched, match.Route, ctx.Error
	}
	if ctx.passedThrough {
		return Fallthrough, match.Route, nil
	}
	return Matched, match.Route, nil
}

func stripQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i != -1 {
		return rawURL[:i]
	}
	return rawURL
}
