package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind  *Error
		err   error
		wantIs bool
	}{
		"instance of the same root": {
			kind:  ErrNotFound,
			err:   ErrNotFound,
			wantIs: true,
		},
		"wrapped instance": {
			kind:  ErrNotFound,
			err:   Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"deeply wrapped instance": {
			kind:  ErrState,
			err:   Wrap(Wrap(ErrState, "inner"), "outer"),
			wantIs: true,
		},
		"different root": {
			kind:  ErrNotFound,
			err:   Wrap(ErrUnauthorized, "nope"),
			wantIs: false,
		},
		"stdlib error": {
			kind:  ErrNotFound,
			err:   fmt.Errorf("not found"),
			wantIs: false,
		},
		"nil kind matches nil error": {
			kind:  nil,
			err:   nil,
			wantIs: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantIs {
				t.Fatalf("want %v, got %v", tc.wantIs, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrEmpty, "name")
	const want = "name: value is empty"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRegisterPanicsOnCollision(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "this code is taken")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("blew up")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}
