package keep

import (
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error result of a pre-flight check,
// to make sure people use error for error cases.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64
}

// NewCheck sets the gas allocated and the log message, but no more info.
// These are the most common info needed to be set by the Handler.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

// DeliverResult captures any non-error result of an executed transaction,
// to make sure people use error for error cases.
//
// A DeliverResult is only ever returned alongside a committed state
// transition. Tags attached here are the audit trail of the operation:
// they exist exactly once per successful transition and never for an
// aborted one.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags will be used by the host to index and search the operation history
	Tags []common.KVPair
	// GasUsed is the amount of work performed by this transaction
	GasUsed int64
}

// Pair is a helper to build a tag from string key and value.
func Pair(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
