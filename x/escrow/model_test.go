package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleareto/keep/coin"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/keeptest"
	"github.com/cleareto/keep/orm"
	"github.com/cleareto/keep/store"
)

func TestAgreementValidate(t *testing.T) {
	sender := keeptest.NewCondition().Address()
	receiver := keeptest.NewCondition().Address()

	cases := map[string]struct {
		agreement Agreement
		wantErr   *errors.Error
	}{
		"valid": {
			agreement: Agreement{
				Sender:   sender,
				Receiver: receiver,
				Amount:   coin.NewCoinp(100, 0, "IOV"),
				Status:   StatusAwaitingDeposit,
			},
		},
		"missing sender": {
			agreement: Agreement{
				Receiver: receiver,
				Amount:   coin.NewCoinp(100, 0, "IOV"),
				Status:   StatusAwaitingDeposit,
			},
			wantErr: errors.ErrInput,
		},
		"non-positive amount": {
			agreement: Agreement{
				Sender:   sender,
				Receiver: receiver,
				Amount:   coin.NewCoinp(0, 0, "IOV"),
				Status:   StatusAwaitingDeposit,
			},
			wantErr: errors.ErrAmount,
		},
		"missing status": {
			agreement: Agreement{
				Sender:   sender,
				Receiver: receiver,
				Amount:   coin.NewCoinp(100, 0, "IOV"),
			},
			wantErr: errors.ErrState,
		},
		"status out of range": {
			agreement: Agreement{
				Sender:   sender,
				Receiver: receiver,
				Amount:   coin.NewCoinp(100, 0, "IOV"),
				Status:   Status(9),
			},
			wantErr: errors.ErrState,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.agreement.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestAgreementRoundTrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	id := orm.EncodeSequence(0)

	agreement := &Agreement{
		Sender:   keeptest.NewCondition().Address(),
		Receiver: keeptest.NewCondition().Address(),
		Amount:   coin.NewCoinp(100, 0, "IOV"),
		Status:   StatusAwaitingDeposit,
	}
	require.NoError(t, bucket.Put(db, id, agreement))

	loaded, err := LoadAgreement(db, bucket, id)
	require.NoError(t, err)
	assert.Equal(t, agreement.Sender, loaded.Sender)
	assert.Equal(t, agreement.Receiver, loaded.Receiver)
	assert.True(t, loaded.Amount.Equals(*agreement.Amount))
	assert.Equal(t, StatusAwaitingDeposit, loaded.Status)

	_, err = LoadAgreement(db, bucket, orm.EncodeSequence(42))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestCustodyCondition(t *testing.T) {
	a := Condition(orm.EncodeSequence(0))
	b := Condition(orm.EncodeSequence(1))

	require.NoError(t, a.Validate())
	require.NoError(t, a.Address().Validate())
	assert.False(t, a.Address().Equals(b.Address()))
}
