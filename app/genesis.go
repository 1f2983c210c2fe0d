package app

import (
	"github.com/cleareto/keep"
)

// ChainInitializers lets you initialize many extensions with one
// function
func ChainInitializers(inits ...keep.Initializer) keep.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []keep.Initializer
}

var _ keep.Initializer = chainInitializer{}

// FromGenesis will pass opts to all initializers in the chain,
// aborting at the first error
func (c chainInitializer) FromGenesis(opts keep.Options, db keep.KVStore) error {
	for _, init := range c.inits {
		if init == nil {
			continue
		}
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
