package utils

import (
	"github.com/cleareto/keep"
)

// ActionKey is the tag key under which the message path is indexed
const ActionKey = "action"

// ActionTagger appends an action tag to every successful Deliver,
// carrying the path of the executed message. Failed operations return
// no result and therefore no tag.
type ActionTagger struct{}

var _ keep.Decorator = ActionTagger{}

// NewActionTagger creates an ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check passes the request through untouched
func (ActionTagger) Check(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Checker) (*keep.CheckResult, error) {
	return next.Check(ctx, store, tx)
}

// Deliver tags a successful result with the message path
func (ActionTagger) Deliver(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Deliverer) (*keep.DeliverResult, error) {
	res, err := next.Deliver(ctx, store, tx)
	if err != nil {
		return res, err
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return res, err
	}
	res.Tags = append(res.Tags, keep.Pair(ActionKey, msg.Path()))
	return res, nil
}
