package keep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/keeptest"
)

func TestLoadMsg(t *testing.T) {
	msg := &keeptest.Msg{RoutePath: "test/do", Serialized: []byte("payload")}
	tx := &keeptest.Tx{Msg: msg}

	var dest keeptest.Msg
	require.NoError(t, keep.LoadMsg(tx, &dest))
	assert.Equal(t, "test/do", dest.Path())
	assert.Equal(t, []byte("payload"), dest.Serialized)
}

func TestLoadMsgErrors(t *testing.T) {
	valid := &keeptest.Msg{RoutePath: "test/do"}

	t.Run("validation failure propagates", func(t *testing.T) {
		reject := errors.Wrap(errors.ErrInput, "bad content")
		tx := &keeptest.Tx{Msg: &keeptest.Msg{RoutePath: "test/do", Err: reject}}
		var dest keeptest.Msg
		err := keep.LoadMsg(tx, &dest)
		assert.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)
	})

	t.Run("missing message", func(t *testing.T) {
		var dest keeptest.Msg
		err := keep.LoadMsg(&keeptest.Tx{}, &dest)
		assert.Error(t, err)
	})

	t.Run("destination type must match", func(t *testing.T) {
		err := keep.LoadMsg(&keeptest.Tx{Msg: valid}, &otherMsg{})
		assert.True(t, errors.ErrType.Is(err), "unexpected error: %+v", err)
	})
}

type otherMsg struct {
	keeptest.Msg
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/do", keep.GetPath(&keeptest.Tx{Msg: &keeptest.Msg{RoutePath: "test/do"}}))
	assert.Equal(t, "(missing)", keep.GetPath(&keeptest.Tx{}))
}
