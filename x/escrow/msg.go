package escrow

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
)

const (
	pathCreateEscrowMsg  = "escrow/create"
	pathDepositMsg       = "escrow/deposit"
	pathReleaseEscrowMsg = "escrow/release"
	pathCancelEscrowMsg  = "escrow/cancel"
	pathArbitrateMsg     = "escrow/arbitrate"
)

var (
	_ keep.Msg = (*CreateEscrowMsg)(nil)
	_ keep.Msg = (*DepositMsg)(nil)
	_ keep.Msg = (*ReleaseEscrowMsg)(nil)
	_ keep.Msg = (*CancelEscrowMsg)(nil)
	_ keep.Msg = (*ArbitrateMsg)(nil)
)

// Path implements keep.Msg
func (m *CreateEscrowMsg) Path() string {
	return pathCreateEscrowMsg
}

// Validate makes sure that this is sensible
func (m *CreateEscrowMsg) Validate() error {
	if len(m.Receiver) == 0 {
		return errors.Wrap(ErrInvalidReceiver, "missing receiver")
	}
	if err := m.Receiver.Validate(); err != nil {
		return errors.Wrap(ErrInvalidReceiver, err.Error())
	}
	if m.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "missing amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(errors.ErrAmount, err.Error())
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", m.Amount)
	}
	return nil
}

// Path implements keep.Msg
func (m *DepositMsg) Path() string {
	return pathDepositMsg
}

// Validate makes sure that this is sensible
func (m *DepositMsg) Validate() error {
	if err := validateEscrowID(m.EscrowID); err != nil {
		return err
	}
	if m.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "missing amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(errors.ErrAmount, err.Error())
	}
	return nil
}

// Path implements keep.Msg
func (m *ReleaseEscrowMsg) Path() string {
	return pathReleaseEscrowMsg
}

// Validate makes sure that this is sensible
func (m *ReleaseEscrowMsg) Validate() error {
	return validateEscrowID(m.EscrowID)
}

// Path implements keep.Msg
func (m *CancelEscrowMsg) Path() string {
	return pathCancelEscrowMsg
}

// Validate makes sure that this is sensible
func (m *CancelEscrowMsg) Validate() error {
	return validateEscrowID(m.EscrowID)
}

// Path implements keep.Msg
func (m *ArbitrateMsg) Path() string {
	return pathArbitrateMsg
}

// Validate makes sure that this is sensible
func (m *ArbitrateMsg) Validate() error {
	if err := validateEscrowID(m.EscrowID); err != nil {
		return err
	}
	if len(m.To) == 0 {
		return errors.Wrap(ErrInvalidReceiver, "missing recipient")
	}
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(ErrInvalidReceiver, err.Error())
	}
	return nil
}

// validateEscrowID ensures that the escrow id has the shape the
// sequence produces
func validateEscrowID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "escrow id must be 8 bytes, got %d", len(id))
	}
	return nil
}
