package cash

import (
	"github.com/cleareto/keep/coin"
	"github.com/cleareto/keep/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are in alphabetical order
// and each one is valid
func (s *Set) Validate() error {
	return coin.Coins(s.Coins).Validate()
}

// Balance returns the coins stored in the set
func (s *Set) Balance() coin.Coins {
	return coin.Coins(s.Coins)
}

// Add modifies the set to increase the holdings by c,
// which may be negative to decrease them
func (s *Set) Add(c coin.Coin) error {
	cs, err := s.Balance().Add(c)
	if err != nil {
		return err
	}
	s.Coins = cs
	return nil
}

// NewBucket returns the bucket all wallets are stored in,
// keyed by the account address
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}
