// Package wallet adapts signing identities to the engine's frozen-message
// assembly. A local keypair signs frozen bytes directly; an externally
// custodied wallet is handed the frozen, partially-signed transaction and
// its returned signature is extracted and re-bound to its key.
package wallet

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/chaindepth/chaindepth-client/libs/go/helpers"
)

// ExternalSigner is an externally custodied signer reachable only through a
// device-level signing prompt (wallet adapter). It must add its signature
// without altering the transaction structure; the engine does not trust its
// re-serialization.
type ExternalSigner interface {
	PublicKey() solana.PublicKey
	SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error)
}

// TransactionSigner contributes exactly one signature to a frozen
// transaction. RequiresPrompt orders signature collection: silent local
// signers go first so the external wallet prompt sees every partial
// signature already in place.
type TransactionSigner interface {
	PublicKey() solana.PublicKey
	SignFrozen(ctx context.Context, frozen *helpers.FrozenTransaction) error
	RequiresPrompt() bool
}

// Keypair is an in-memory signing identity (session signers, tests, bots).
type Keypair struct {
	key solana.PrivateKey
}

// NewKeypair generates a fresh in-memory keypair.
func NewKeypair() (*Keypair, error) {
	account := solana.NewWallet()
	return &Keypair{key: account.PrivateKey}, nil
}

// KeypairFromPrivateKey wraps an existing private key.
func KeypairFromPrivateKey(key solana.PrivateKey) *Keypair {
	return &Keypair{key: key}
}

// PublicKey returns the keypair's public key.
func (k *Keypair) PublicKey() solana.PublicKey {
	return k.key.PublicKey()
}

// PrivateKey exposes the underlying key for callers that own the keypair.
func (k *Keypair) PrivateKey() solana.PrivateKey {
	return k.key
}

// SignFrozen applies a partial signature over the frozen message bytes.
func (k *Keypair) SignFrozen(_ context.Context, frozen *helpers.FrozenTransaction) error {
	if err := frozen.SignWith(k.key); err != nil {
		return errors.Wrap(err, "keypair signing failed")
	}
	return nil
}

// RequiresPrompt is false; an in-memory key signs silently.
func (k *Keypair) RequiresPrompt() bool {
	return false
}

// AdapterSigner bridges an ExternalSigner into the frozen-message flow.
type AdapterSigner struct {
	external ExternalSigner
}

// NewAdapterSigner wraps an external wallet signer.
func NewAdapterSigner(external ExternalSigner) *AdapterSigner {
	return &AdapterSigner{external: external}
}

// PublicKey returns the wallet's public key.
func (a *AdapterSigner) PublicKey() solana.PublicKey {
	return a.external.PublicKey()
}

// SignFrozen hands the frozen, partially-signed transaction to the wallet,
// then extracts the wallet's signature and binds it to the wallet's key in
// the frozen structure. The wallet's own serialization is discarded.
func (a *AdapterSigner) SignFrozen(ctx context.Context, frozen *helpers.FrozenTransaction) error {
	returned, err := a.external.SignTransaction(ctx, frozen.PartiallySigned())
	if err != nil {
		return errors.Wrap(err, "wallet signing prompt failed")
	}

	signature, err := frozen.ExtractSignature(returned, a.external.PublicKey())
	if err != nil {
		return errors.Wrap(err, "wallet returned no usable signature")
	}

	return frozen.AddSignature(a.external.PublicKey(), signature)
}

// RequiresPrompt is true; every signature costs a user-facing prompt.
func (a *AdapterSigner) RequiresPrompt() bool {
	return true
}
