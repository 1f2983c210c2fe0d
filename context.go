package keep

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just the request-scoped context, with some helpers
// to store and retrieve well known values. Extensions may add their
// own keys to enrich the context with specific data.
type Context = context.Context

type contextKey int

const (
	contextKeyLogger contextKey = iota
)

// DefaultLogger is used for all contexts that have not
// set anything themselves
var DefaultLogger = log.NewNopLogger()

// WithLogger sets the logger for this context
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overridden below... no problem
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
