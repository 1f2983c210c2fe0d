package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinValidate(t *testing.T) {
	cases := []struct {
		coin    Coin
		isValid bool
	}{
		{NewCoin(100, 0, "FOO"), true},
		{NewCoin(0, 250, "IOV"), true},
		{NewCoin(-10, -50, "BAR"), true},
		{NewCoin(1, 0, "eth"), false},       // lower-case ticker
		{NewCoin(1, 0, "XX"), false},        // too short
		{NewCoin(MaxInt + 1, 0, "FOO"), false},
		{NewCoin(1, FracUnit, "FOO"), false}, // fraction out of range
		{NewCoin(1, -5, "FOO"), false},       // mismatched sign
	}
	for i, tc := range cases {
		err := tc.coin.Validate()
		if tc.isValid {
			assert.NoError(t, err, "%d: %s", i, tc.coin)
		} else {
			assert.Error(t, err, "%d: %s", i, tc.coin)
		}
	}
}

func TestCoinAdd(t *testing.T) {
	sum, err := NewCoin(2, 500000000, "FOO").Add(NewCoin(1, 700000000, "FOO"))
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewCoin(4, 200000000, "FOO")))

	// cannot add different currencies
	_, err = NewCoin(1, 0, "FOO").Add(NewCoin(1, 0, "BAR"))
	assert.Error(t, err)

	// adding to zero adopts the other currency
	sum, err = Coin{}.Add(NewCoin(5, 0, "FOO"))
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewCoin(5, 0, "FOO")))
}

func TestCoinSubtract(t *testing.T) {
	got, err := NewCoin(5, 0, "FOO").Subtract(NewCoin(2, 0, "FOO"))
	require.NoError(t, err)
	assert.True(t, got.Equals(NewCoin(3, 0, "FOO")))

	// subtraction may go negative
	got, err = NewCoin(1, 0, "FOO").Subtract(NewCoin(2, 0, "FOO"))
	require.NoError(t, err)
	assert.True(t, got.Equals(NewCoin(-1, 0, "FOO")))
	assert.False(t, got.IsNonNegative())
}

func TestCoinPredicates(t *testing.T) {
	assert.True(t, NewCoin(1, 0, "FOO").IsPositive())
	assert.True(t, NewCoin(0, 1, "FOO").IsPositive())
	assert.False(t, NewCoin(0, 0, "FOO").IsPositive())
	assert.True(t, NewCoin(0, 0, "FOO").IsZero())
	assert.False(t, NewCoin(-1, 0, "FOO").IsPositive())

	assert.True(t, NewCoin(2, 0, "FOO").IsGTE(NewCoin(1, 900000000, "FOO")))
	assert.False(t, NewCoin(2, 0, "FOO").IsGTE(NewCoin(2, 1, "FOO")))
	assert.False(t, NewCoin(2, 0, "FOO").IsGTE(NewCoin(1, 0, "BAR")))
}

func TestCoinRoundTrip(t *testing.T) {
	orig := NewCoin(123, 456, "IOV")
	raw, err := orig.Marshal()
	require.NoError(t, err)

	var got Coin
	require.NoError(t, got.Unmarshal(raw))
	assert.True(t, orig.Equals(got))
}

func TestCombineCoins(t *testing.T) {
	// combined and sorted by ticker
	cs, err := CombineCoins(
		NewCoin(7, 0, "FOO"),
		NewCoin(3, 0, "BAR"),
		NewCoin(2, 0, "FOO"),
	)
	require.NoError(t, err)
	require.Equal(t, 2, cs.Count())
	assert.True(t, cs.Contains(NewCoin(3, 0, "BAR")))
	assert.True(t, cs.Contains(NewCoin(9, 0, "FOO")))
	assert.False(t, cs.Contains(NewCoin(10, 0, "FOO")))
	assert.NoError(t, cs.Validate())
}

func TestCoinsAddRemove(t *testing.T) {
	var cs Coins
	cs, err := cs.Add(NewCoin(5, 0, "FOO"))
	require.NoError(t, err)
	assert.True(t, cs.IsPositive())

	// removing everything drops the currency from the set
	cs, err = cs.Subtract(NewCoin(5, 0, "FOO"))
	require.NoError(t, err)
	assert.True(t, cs.IsEmpty())
}
