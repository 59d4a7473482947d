package helpers

import (
	"crypto/ed25519"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// FrozenTransaction is a transaction whose canonical message bytes were
// compiled exactly once and never recompiled. Signatures are collected out of
// order, keyed by public key, and emitted in canonical account order at
// assembly time. This sidesteps signing APIs that re-serialize the message
// per signer: recompiling can reorder or resize the signer list between the
// local partial-signature step and an external wallet's step, which
// invalidates earlier signatures or lands a signature in the wrong slot.
type FrozenTransaction struct {
	tx         *solana.Transaction
	message    []byte
	signerKeys []solana.PublicKey
	signatures map[solana.PublicKey]solana.Signature
}

// FreezeTransaction compiles the canonical message for the given instructions
// with the full signer set and freezes its bytes.
func FreezeTransaction(instructions []solana.Instruction, blockhash solana.Hash, feePayer solana.PublicKey) (*FrozenTransaction, error) {
	if len(instructions) == 0 {
		return nil, fmt.Errorf("cannot freeze a transaction with no instructions")
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(feePayer))
	if err != nil {
		return nil, fmt.Errorf("failed to compile transaction message: %w", err)
	}

	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction message: %w", err)
	}

	numSigners := int(tx.Message.Header.NumRequiredSignatures)
	if numSigners == 0 || numSigners > len(tx.Message.AccountKeys) {
		return nil, fmt.Errorf("malformed message header: %d required signatures over %d accounts",
			numSigners, len(tx.Message.AccountKeys))
	}

	signerKeys := make([]solana.PublicKey, numSigners)
	copy(signerKeys, tx.Message.AccountKeys[:numSigners])

	return &FrozenTransaction{
		tx:         tx,
		message:    message,
		signerKeys: signerKeys,
		signatures: make(map[solana.PublicKey]solana.Signature, numSigners),
	}, nil
}

// Message returns the frozen canonical message bytes.
func (f *FrozenTransaction) Message() []byte {
	return f.message
}

// SignerKeys returns the required signers in canonical account order.
func (f *FrozenTransaction) SignerKeys() []solana.PublicKey {
	return f.signerKeys
}

// SignWith applies a local partial signature over the frozen bytes.
func (f *FrozenTransaction) SignWith(key solana.PrivateKey) error {
	signature, err := key.Sign(f.message)
	if err != nil {
		return fmt.Errorf("failed to sign frozen message with %s: %w", key.PublicKey(), err)
	}
	return f.AddSignature(key.PublicKey(), signature)
}

// AddSignature binds a signature contribution to its public key. The
// signature is verified against the frozen bytes so a wrong or stale
// contribution is rejected at the step that produced it instead of
// surfacing later as an opaque sanitation error.
func (f *FrozenTransaction) AddSignature(signer solana.PublicKey, signature solana.Signature) error {
	if f.indexOf(signer) < 0 {
		return fmt.Errorf("signer %s is not required by this transaction", signer)
	}
	if !ed25519.Verify(ed25519.PublicKey(signer.Bytes()), f.message, signature[:]) {
		return fmt.Errorf("signature from %s does not verify against the frozen message", signer)
	}
	f.signatures[signer] = signature
	return nil
}

// ExtractSignature pulls the signature a wallet contributed for the given
// key out of the transaction the wallet returned, without trusting the
// wallet's re-serialization. It prefers the canonical slot for the key and
// falls back to scanning every returned signature against the frozen bytes.
func (f *FrozenTransaction) ExtractSignature(returned *solana.Transaction, signer solana.PublicKey) (solana.Signature, error) {
	if returned != nil {
		idx := f.indexOf(signer)
		if idx >= 0 && idx < len(returned.Signatures) {
			candidate := returned.Signatures[idx]
			if ed25519.Verify(ed25519.PublicKey(signer.Bytes()), f.message, candidate[:]) {
				return candidate, nil
			}
		}
		// The wallet may have written its signature into list-insertion
		// order rather than the canonical slot.
		for _, candidate := range returned.Signatures {
			if ed25519.Verify(ed25519.PublicKey(signer.Bytes()), f.message, candidate[:]) {
				return candidate, nil
			}
		}
	}
	return solana.Signature{}, fmt.Errorf("no signature from %s verifies against the frozen message", signer)
}

// MissingSigners returns the required signers with no signature yet, in
// canonical order.
func (f *FrozenTransaction) MissingSigners() []solana.PublicKey {
	missing := make([]solana.PublicKey, 0)
	for _, key := range f.signerKeys {
		if _, ok := f.signatures[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Complete reports whether every required signer has contributed.
func (f *FrozenTransaction) Complete() bool {
	return len(f.MissingSigners()) == 0
}

// PartiallySigned returns a transaction view suitable for handing to an
// external wallet signer: the frozen message plus the signatures collected
// so far, placed in canonical slots with zero placeholders for the rest.
func (f *FrozenTransaction) PartiallySigned() *solana.Transaction {
	signatures := make([]solana.Signature, len(f.signerKeys))
	for i, key := range f.signerKeys {
		if sig, ok := f.signatures[key]; ok {
			signatures[i] = sig
		}
	}
	return &solana.Transaction{
		Signatures: signatures,
		Message:    f.tx.Message,
	}
}

// Assemble emits the wire encoding by manual concatenation:
// [signature count][signatures in canonical account order][frozen message].
// It never re-serializes the message.
func (f *FrozenTransaction) Assemble() ([]byte, error) {
	if missing := f.MissingSigners(); len(missing) > 0 {
		return nil, fmt.Errorf("cannot assemble: missing signatures from %v", missing)
	}

	out := make([]byte, 0, 1+len(f.signerKeys)*64+len(f.message))
	bin.EncodeCompactU16Length(&out, len(f.signerKeys))
	for _, key := range f.signerKeys {
		sig := f.signatures[key]
		out = append(out, sig[:]...)
	}
	out = append(out, f.message...)
	return out, nil
}

func (f *FrozenTransaction) indexOf(signer solana.PublicKey) int {
	for i, key := range f.signerKeys {
		if key.Equals(signer) {
			return i
		}
	}
	return -1
}
