package keeptest

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/x"
)

// Auth is a canned x.Authenticator that reports a fixed set of
// conditions, regardless of the context content.
type Auth struct {
	// Signer is the single condition to report. Ignored if nil.
	Signer keep.Condition
	// Signers are additional conditions to report.
	Signers []keep.Condition
}

var _ x.Authenticator = Auth{}

// GetConditions returns the configured conditions
func (a Auth) GetConditions(keep.Context) []keep.Condition {
	var conds []keep.Condition
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return append(conds, a.Signers...)
}

// HasAddress returns true if any configured condition matches
func (a Auth) HasAddress(ctx keep.Context, addr keep.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
