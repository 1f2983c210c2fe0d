package auth

import (
	"context"
	"testing"

	"github.com/cleareto/keep/keeptest"
	"github.com/cleareto/keep/keeptest/assert"
)

func TestAuthenticate(t *testing.T) {
	alice := keeptest.NewCondition()
	bob := keeptest.NewCondition()
	carl := keeptest.NewCondition()

	authn := Authenticate()

	// an unprepared context carries no identity
	empty := context.Background()
	assert.Equal(t, 0, len(authn.GetConditions(empty)))
	assert.Equal(t, false, authn.HasAddress(empty, alice.Address()))

	ctx := SetConditions(context.Background(), alice, bob)
	assert.Equal(t, 2, len(authn.GetConditions(ctx)))
	assert.Equal(t, true, authn.HasAddress(ctx, alice.Address()))
	assert.Equal(t, true, authn.HasAddress(ctx, bob.Address()))
	assert.Equal(t, false, authn.HasAddress(ctx, carl.Address()))

	// setting again replaces, never extends
	ctx = SetConditions(ctx, carl)
	assert.Equal(t, 1, len(authn.GetConditions(ctx)))
	assert.Equal(t, false, authn.HasAddress(ctx, alice.Address()))
	assert.Equal(t, true, authn.HasAddress(ctx, carl.Address()))
}
