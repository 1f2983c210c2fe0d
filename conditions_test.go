package keep

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	cond := NewCondition("sigs", "ed25519", data)
	require.NoError(t, cond.Validate())

	ext, typ, got, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, data, got)

	// data may contain any bytes, including separators and newlines
	tricky := NewCondition("esc", "seq", []byte("a/b\nc"))
	require.NoError(t, tricky.Validate())
	_, _, got, err = tricky.Parse()
	require.NoError(t, err)
	assert.Equal(t, []byte("a/b\nc"), got)

	var bad Condition = []byte("no-separators-here")
	assert.Error(t, bad.Validate())
	_, _, _, err = bad.Parse()
	assert.Error(t, err)
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("sigs", "ed25519", []byte("foo"))
	b := NewCondition("sigs", "ed25519", []byte("bar"))

	assert.Equal(t, AddressLength, len(a.Address()))
	require.NoError(t, a.Address().Validate())

	// derivation is deterministic and collision free in practice
	assert.True(t, a.Address().Equals(a.Address()))
	assert.False(t, a.Address().Equals(b.Address()))
}

func TestAddressValidate(t *testing.T) {
	var zero Address
	assert.Error(t, zero.Validate())
	assert.Error(t, Address([]byte{1, 2, 3}).Validate())
	assert.NoError(t, NewAddress([]byte("data")).Validate())
}

func TestAddressJSON(t *testing.T) {
	addr := NewAddress([]byte("some condition"))

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var fromDefault Address
	require.NoError(t, json.Unmarshal(raw, &fromDefault))
	assert.True(t, addr.Equals(fromDefault))

	var fromHex Address
	require.NoError(t, json.Unmarshal([]byte(`"hex:`+addr.String()+`"`), &fromHex))
	assert.True(t, addr.Equals(fromHex))

	enc, err := addr.Bech32String("tiov")
	require.NoError(t, err)
	var fromBech32 Address
	require.NoError(t, json.Unmarshal([]byte(`"bech32:`+enc+`"`), &fromBech32))
	assert.True(t, addr.Equals(fromBech32))

	var empty Address
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)

	var bad Address
	assert.Error(t, json.Unmarshal([]byte(`"hex:not-hex"`), &bad))
}

func TestConditionJSON(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{0xc0, 0xff, 0xee})

	raw, err := json.Marshal(cond)
	require.NoError(t, err)

	var loaded Condition
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.True(t, cond.Equals(loaded))
}
