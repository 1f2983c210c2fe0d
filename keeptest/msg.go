package keeptest

import (
	"github.com/cleareto/keep"
)

// Msg is a canned keep.Msg with a configurable path and validation
// outcome.
type Msg struct {
	// RoutePath is returned by Path.
	RoutePath string
	// Err, if set, is returned by Validate.
	Err error
	// Serialized is returned by Marshal.
	Serialized []byte
}

var _ keep.Msg = (*Msg)(nil)

// Path returns the configured route path
func (m *Msg) Path() string { return m.RoutePath }

// Validate returns the configured error
func (m *Msg) Validate() error { return m.Err }

// Marshal returns the configured raw payload
func (m *Msg) Marshal() ([]byte, error) { return m.Serialized, nil }

// Unmarshal remembers the raw payload
func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return nil
}
