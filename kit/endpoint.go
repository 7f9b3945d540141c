// Package kit holds the small transport-agnostic plumbing shared by the
// deckrep surfaces: the Endpoint signature, middleware chaining, request
// context carriers, and the MCP tool adapter.
package kit

import "context"

// Endpoint is one logical operation: typed request in, typed response out.
// Transports (CLI, MCP) adapt to this signature.
type Endpoint func(ctx context.Context, req any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behavior.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares so the first argument is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
