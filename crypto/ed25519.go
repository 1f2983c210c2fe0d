package crypto

import (
	"github.com/cleareto/keep"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the Conditions we produce
const ExtensionName = "sigs"

// Signer is anything that can sign a message and reveal
// the matching public key
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() *PublicKey
}

// PublicKey wraps an ed25519 public key
type PublicKey struct {
	data ed25519.PublicKey
}

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message, sig []byte) bool {
	return ed25519.Verify(p.data, message, sig)
}

// Condition encodes the public key into a permission condition
func (p *PublicKey) Condition() keep.Condition {
	return keep.NewCondition(ExtensionName, "ed25519", p.data)
}

// Address is a shortcut for Condition().Address()
func (p *PublicKey) Address() keep.Address {
	return p.Condition().Address()
}

// PrivateKey wraps an ed25519 private key
type PrivateKey struct {
	data ed25519.PrivateKey
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(p.data, message), nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{
		data: p.data.Public().(ed25519.PublicKey),
	}
}

// GenPrivKeyEd25519 returns a random new private key,
// using crypto/rand as the source of entropy
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{data: priv}
}
