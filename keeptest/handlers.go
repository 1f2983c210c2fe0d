package keeptest

import (
	"sync"

	"github.com/cleareto/keep"
)

// Handler is a canned keep.Handler that counts the calls it receives
// and returns a configured result or error. Safe for concurrent use.
type Handler struct {
	mu sync.Mutex

	checkCalls   int
	deliverCalls int

	// CheckResult is returned by Check when CheckErr is nil.
	CheckResult keep.CheckResult
	// CheckErr, if set, is returned by every Check call.
	CheckErr error

	// DeliverResult is returned by Deliver when DeliverErr is nil.
	DeliverResult keep.DeliverResult
	// DeliverErr, if set, is returned by every Deliver call.
	DeliverErr error
}

var _ keep.Handler = (*Handler)(nil)

// Check counts the call and returns the configured outcome
func (h *Handler) Check(keep.Context, keep.KVStore, keep.Tx) (*keep.CheckResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkCalls++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

// Deliver counts the call and returns the configured outcome
func (h *Handler) Deliver(keep.Context, keep.KVStore, keep.Tx) (*keep.DeliverResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deliverCalls++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// CheckCallCount returns the number of times Check was called
func (h *Handler) CheckCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCalls
}

// DeliverCallCount returns the number of times Deliver was called
func (h *Handler) DeliverCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deliverCalls
}

// CallCount returns the total number of calls
func (h *Handler) CallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCalls + h.deliverCalls
}
