package trellis

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Next continues execution with the next handler in the matched chain.
// Dispatch only invokes the first handler; every handler that wants the rest
// of the chain to run must call Next, and may do post-processing after Next
// returns.
//
// Calling Next from the last handler in the chain passes the request on to
// the host: Dispatch then reports Fallthrough. If an error is set on the
// context (via the Error field or a panic) Next does nothing.
func (c *Context) Next() {
	if c.Error != nil {
		return
	}

	if c.handlerIndex >= len(c.handlers) {
		c.passedThrough = true
		return
	}

	currentHandler := c.handlers[c.handlerIndex]
	c.handlerIndex += 1

	execWithCtxRecovery(c, func() {
		currentHandler.Handle(c)
	})
}

func execWithCtxRecovery(ctx *Context, fn func()) {
	defer func() {
		if maybeErr := recover(); maybeErr != nil {
			if err, ok := maybeErr.(error); ok {
				ctx.Error = err
			} else {
				ctx.Error = fmt.Errorf("%s", maybeErr)
			}

			stack := string(debug.Stack())
			stackLines := strings.Split(stack, "\n")
			if len(stackLines) > 6 {
				stackLines = stackLines[6:]
			}
			ctx.ErrorStack = strings.Join(stackLines, "\n")
		}
	}()
	fn()
}
