package trellis

// CtxFree releases a Context created with NewContext back to the pool.
// This function is for frameworks that drive handler chains themselves and
// shouldn't be used in most cases.
func CtxFree(ctx *Context) {
	ctx.free()
}

// CtxPassedThrough reports whether the last handler of the chain called Next.
// Frameworks driving a chain with NewContext use it to decide whether to
// continue with their own fallback, as Dispatch does with Fallthrough.
func CtxPassedThrough(ctx *Context) bool {
	return ctx.passedThrough
}

func CtxAssociatedValues(ctx *Context) map[string]any {
	return ctx.associatedValues
}
