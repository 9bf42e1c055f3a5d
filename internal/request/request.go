// Package request implements the validation pipeline that runs between
// authentication and storage. Each endpoint composes an ordered list of
// guards over an explicit request context; the first failing guard
// short-circuits the chain with a typed error.
package request

import "context"

// Context carries everything a guard may inspect: the authenticated
// caller, the HTTP verb, the route id parameter, and the decoded JSON
// body. It is built once per request after authentication; guards never
// reach into framework state.
type Context struct {
	UserID  string
	Method  string
	ParamID string
	Body    map[string]any
}

// Guard is one validation step. A nil return continues the chain.
type Guard func(ctx context.Context, rc *Context) error

// Run executes guards in order, stopping at the first failure.
func Run(ctx context.Context, rc *Context, guards ...Guard) error {
	for _, guard := range guards {
		if err := guard(ctx, rc); err != nil {
			return err
		}
	}
	return nil
}
