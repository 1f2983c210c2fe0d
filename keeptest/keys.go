package keeptest

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/crypto"
)

// NewKey returns a random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a freshly generated key.
func NewCondition() keep.Condition {
	return NewKey().PublicKey().Condition()
}
