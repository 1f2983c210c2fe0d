/*
Package auth provides a context based implementation of the
x.Authenticator interface.

The host process is responsible for establishing who the caller is
(eg. by verifying transaction signatures, or by owning the process
boundary in an embedded setup) and then declares the caller's
conditions on the request context. Handlers only ever check against
the Authenticator.
*/
package auth

import (
	"context"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/x"
)

type contextKey int

const contextKeySigners contextKey = iota

// Authenticate returns an x.Authenticator that reads the caller's
// conditions from the context.
func Authenticate() x.Authenticator {
	return ctxAuth{}
}

// SetConditions returns a context with the given conditions declared
// as the authenticated caller. Any previously set conditions are
// replaced, never extended.
func SetConditions(ctx keep.Context, permissions ...keep.Condition) keep.Context {
	return context.WithValue(ctx, contextKeySigners, permissions)
}

type ctxAuth struct{}

var _ x.Authenticator = ctxAuth{}

func (ctxAuth) GetConditions(ctx keep.Context) []keep.Condition {
	val, _ := ctx.Value(contextKeySigners).([]keep.Condition)
	return val
}

func (a ctxAuth) HasAddress(ctx keep.Context, addr keep.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
