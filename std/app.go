/*
Package std wires the individual pieces into the standard escrow
application: router, middleware stack, ledger, genesis initialization
and a committing store. Embedders that want a different mix can wire
the pieces themselves, this package is the reference assembly.
*/
package std

import (
	"sync"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/app"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/x"
	"github.com/cleareto/keep/x/auth"
	"github.com/cleareto/keep/x/cash"
	"github.com/cleareto/keep/x/escrow"
	"github.com/cleareto/keep/x/utils"
)

// Application is a fully wired escrow registry on top of a committing
// store. All operations are serialized, each one commits or leaves no
// trace.
//
// The mutex covers the whole cache-wrap, deliver, write, commit
// cycle. Serializing only the handler would let two callers wrap the
// same base state, read stale sequence values through their caches
// and issue the same id.
type Application struct {
	mutex   sync.Mutex
	handler keep.Handler
	db      keep.CommitKVStore
	logger  log.Logger
}

// NewApp builds the standard application around the given store.
// The arbiter identity is fixed here for the application's lifetime.
func NewApp(db keep.CommitKVStore, arbiter keep.Address, logger log.Logger) (*Application, error) {
	if err := arbiter.Validate(); err != nil {
		return nil, errors.Wrap(err, "arbiter")
	}
	if logger == nil {
		logger = keep.DefaultLogger
	}
	return &Application{
		handler: Router(arbiter),
		db:      db,
		logger:  logger,
	}, nil
}

// Router builds the handler stack: panic recovery and logging on the
// outside, a savepoint around every operation, action tags on
// success, and the escrow routes inside, all behind a serializing
// dispatcher.
//
// Extra authenticators are chained after the context authenticator,
// an identity counts as authenticated when any of them vouches for
// it.
func Router(arbiter keep.Address, extra ...x.Authenticator) keep.Handler {
	var authn x.Authenticator = auth.Authenticate()
	if len(extra) > 0 {
		authn = x.ChainAuth(append([]x.Authenticator{authn}, extra...)...)
	}
	ctrl := cash.NewController(cash.NewBucket())

	r := app.NewRouter()
	escrow.RegisterRoutes(r, authn, ctrl, arbiter)

	decorated := app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
		utils.NewActionTagger(),
	).WithHandler(r)
	return app.NewDispatcher(decorated)
}

// Initializer returns the genesis initializer covering all wired
// extensions.
func Initializer() keep.Initializer {
	ctrl := cash.NewController(cash.NewBucket())
	return app.ChainInitializers(
		cash.Initializer{},
		escrow.Initializer{Minter: ctrl},
	)
}

// InitChain loads the latest persisted version and applies the
// genesis options on top of a fresh store.
func (a *Application) InitChain(opts keep.Options) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if err := a.db.LoadLatestVersion(); err != nil {
		return errors.Wrap(err, "load store")
	}
	if err := Initializer().FromGenesis(opts, a.db); err != nil {
		return errors.Wrap(err, "genesis")
	}
	_, err := a.db.Commit()
	return err
}

// Check validates the transaction against the current state without
// committing anything.
func (a *Application) Check(ctx keep.Context, tx keep.Tx) (*keep.CheckResult, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.handler.Check(a.withLogger(ctx), a.db.CacheWrap(), tx)
}

// Deliver executes the transaction and commits the result. A failed
// operation commits nothing and returns no result.
func (a *Application) Deliver(ctx keep.Context, tx keep.Tx) (*keep.DeliverResult, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	cache := a.db.CacheWrap()
	res, err := a.handler.Deliver(a.withLogger(ctx), cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write cache")
	}
	if _, err := a.db.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	return res, nil
}

func (a *Application) withLogger(ctx keep.Context) keep.Context {
	return keep.WithLogger(ctx, a.logger)
}
