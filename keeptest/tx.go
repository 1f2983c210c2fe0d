package keeptest

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
)

// Tx implements keep.Tx by wrapping a single message. Serialization
// methods are stubbed, handlers under test never call them.
type Tx struct {
	Msg keep.Msg
}

var _ keep.Tx = (*Tx)(nil)

// GetMsg returns the wrapped message
func (tx *Tx) GetMsg() (keep.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrState, "no message")
	}
	return tx.Msg, nil
}

// Marshal serializes the wrapped message only
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrState, "no message")
	}
	return tx.Msg.Marshal()
}

// Unmarshal is not supported by this test double
func (tx *Tx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrHuman, "cannot unmarshal into a test double")
}
