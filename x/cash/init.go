package cash

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/coin"
	"github.com/cleareto/keep/errors"
)

// GenesisAccount is one account with funds in the genesis file
type GenesisAccount struct {
	Address keep.Address `json:"address"`
	Set
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ keep.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts keep.Options, db keep.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions("cash", &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis account")
		}
		wallet := Set{Coins: coin.Coins(acct.Coins).Clone()}
		if err := bucket.Put(db, acct.Address, &wallet); err != nil {
			return err
		}
	}
	return nil
}
