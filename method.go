package trellis

import "net/http"

// Method names understood by the convenience registration methods. Methods
// are matched as exact, case-sensitive strings; these constants are the
// upper-case forms every convenience method stores.
const (
	MethodGet        = http.MethodGet
	MethodPost       = http.MethodPost
	MethodPut        = http.MethodPut
	MethodHead       = http.MethodHead
	MethodPatch      = http.MethodPatch
	MethodDelete     = http.MethodDelete
	MethodConnect    = http.MethodConnect
	MethodOptions    = http.MethodOptions
	MethodTrace      = http.MethodTrace
	MethodCopy       = "COPY"
	MethodLock       = "LOCK"
	MethodMkcol      = "MKCOL"
	MethodMove       = "MOVE"
	MethodPropfind   = "PROPFIND"
	MethodProppatch  = "PROPPATCH"
	MethodUnlock     = "UNLOCK"
	MethodReport     = "REPORT"
	MethodMkactivity = "MKACTIVITY"
	MethodCheckout   = "CHECKOUT"
	MethodMerge      = "MERGE"
)

var knownMethods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodHead,
	MethodPatch,
	MethodDelete,
	MethodConnect,
	MethodOptions,
	MethodTrace,
	MethodCopy,
	MethodLock,
	MethodMkcol,
	MethodMove,
	MethodPropfind,
	MethodProppatch,
	MethodUnlock,
	MethodReport,
	MethodMkactivity,
	MethodCheckout,
	MethodMerge,
}

// Methods returns the method names that have a convenience registration
// method on RouteTable, in a stable order.
func Methods() []string {
	methods := make([]string, len(knownMethods))
	copy(methods, knownMethods)
	return methods
}

// IsKnownMethod reports whether method is one of Methods. The comparison is
// case-sensitive.
func IsKnownMethod(method string) bool {
	for _, knownMethod := range knownMethods {
		if knownMethod == method {
			return true
		}
	}
	return false
}
