package trellis

// The methods below fix the method argument of Register. Patterns lead the
// argument list and the handler chain follows:
//
//	table.Get("/", "/index", showIndex)

// Get registers handlers for GET requests. See Register.
func (t *RouteTable) Get(args ...any) error {
	return t.Register(MethodGet, args...)
}

// Post registers handlers for POST requests. See Register.
func (t *RouteTable) Post(args ...any) error {
	return t.Register(MethodPost, args...)
}

// Put registers handlers for PUT requests. See Register.
func (t *RouteTable) Put(args ...any) error {
	return t.Register(MethodPut, args...)
}

// Head registers handlers for HEAD requests. See Register.
func (t *RouteTable) Head(args ...any) error {
	return t.Register(MethodHead, args...)
}

// Patch registers handlers for PATCH requests. See Register.
func (t *RouteTable) Patch(args ...any) error {
	return t.Register(MethodPatch, args...)
}

// Delete registers handlers for DELETE requests. See Register.
func (t *RouteTable) Delete(args ...any) error {
	return t.Register(MethodDelete, args...)
}

// Connect registers handlers for CONNECT requests. See Register.
func (t *RouteTable) Connect(args ...any) error {
	return t.Register(MethodConnect, args...)
}

// Options registers handlers for OPTIONS requests. See Register.
func (t *RouteTable) Options(args ...any) error {
	return t.Register(MethodOptions, args...)
}

// Trace registers handlers for TRACE requests. See Register.
func (t *RouteTable) Trace(args ...any) error {
	return t.Register(MethodTrace, args...)
}

// Copy registers handlers for COPY requests. See Register.
func (t *RouteTable) Copy(args ...any) error {
	return t.Register(MethodCopy, args...)
}

// Lock registers handlers for LOCK requests. See Register.
func (t *RouteTable) Lock(args ...any) error {
	return t.Register(MethodLock, args...)
}

// Mkcol registers handlers for MKCOL requests. See Register.
func (t *RouteTable) Mkcol(args ...any) error {
	return t.Register(MethodMkcol, args...)
}

// Move registers handlers for MOVE requests. See Register.
func (t *RouteTable) Move(args ...any) error {
	return t.Register(MethodMove, args...)
}

// Propfind registers handlers for PROPFIND requests. See Register.
func (t *RouteTable) Propfind(args ...any) error {
	return t.Register(MethodPropfind, args...)
}

// Proppatch registers handlers for PROPPATCH requests. See Register.
func (t *RouteTable) Proppatch(args ...any) error {
	return t.Register(MethodProppatch, args...)
}

// Unlock registers handlers for UNLOCK requests. See Register.
func (t *RouteTable) Unlock(args ...any) error {
	return t.Register(MethodUnlock, args...)
}

// Report registers handlers for REPORT requests. See Register.
func (t *RouteTable) Report(args ...any) error {
	return t.Register(MethodReport, args...)
}

// Mkactivity registers handlers for MKACTIVITY requests. See Register.
func (t *RouteTable) Mkactivity(args ...any) error {
	return t.Register(MethodMkactivity, args...)
}

// Checkout registers handlers for CHECKOUT requests. See Register.
func (t *RouteTable) Checkout(args ...any) error {
	return t.Register(MethodCheckout, args...)
}

// Merge registers handlers for MERGE requests. See Register.
func (t *RouteTable) Merge(args ...any) error {
	return t.Register(MethodMerge, args...)
}
