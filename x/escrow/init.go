package escrow

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/coin"
	"github.com/cleareto/keep/x/cash"
)

// GenesisEscrow is one agreement seeded from the genesis file.
// A missing status defaults to AwaitingDeposit.
type GenesisEscrow struct {
	Sender   keep.Address `json:"sender"`
	Receiver keep.Address `json:"receiver"`
	Amount   *coin.Coin   `json:"amount"`
	Status   Status       `json:"status"`
}

// Initializer loads pre-existing agreements from the genesis file.
// Agreements seeded as Deposited get their amount minted straight
// into custody, so held value always matches recorded state.
type Initializer struct {
	Minter cash.Controller
}

var _ keep.Initializer = Initializer{}

// FromGenesis parses initial agreements from genesis and saves them
// to the database, consuming ids from the same sequence the create
// handler uses.
func (i Initializer) FromGenesis(opts keep.Options, db keep.KVStore) error {
	var escrows []GenesisEscrow
	if err := opts.ReadOptions("escrow", &escrows); err != nil {
		return err
	}
	bucket := NewBucket()
	ids := bucket.Sequence(SequenceName)
	for _, e := range escrows {
		status := e.Status
		if status == StatusInvalid {
			status = StatusAwaitingDeposit
		}
		id, err := ids.NextVal(db)
		if err != nil {
			return err
		}
		agreement := &Agreement{
			Sender:   e.Sender,
			Receiver: e.Receiver,
			Amount:   e.Amount,
			Status:   status,
		}
		if err := bucket.Put(db, id, agreement); err != nil {
			return err
		}
		if status == StatusDeposited {
			custody := Condition(id).Address()
			if err := i.Minter.IssueCoins(db, custody, *e.Amount); err != nil {
				return err
			}
		}
	}
	return nil
}
