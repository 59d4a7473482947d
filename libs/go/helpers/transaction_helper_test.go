package helpers_test

import (
	"crypto/ed25519"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaindepth/chaindepth-client/libs/go/helpers"
)

func newSigners(t *testing.T, n int) []solana.PrivateKey {
	t.Helper()
	keys := make([]solana.PrivateKey, n)
	for i := range keys {
		keys[i] = solana.NewWallet().PrivateKey
	}
	return keys
}

// multiSignerInstructions builds one transfer per key so every key is a
// required signer of the compiled message.
func multiSignerInstructions(keys []solana.PrivateKey, recipient solana.PublicKey) []solana.Instruction {
	instructions := make([]solana.Instruction, 0, len(keys))
	for _, key := range keys {
		instructions = append(instructions,
			system.NewTransferInstruction(1_000, key.PublicKey(), recipient).Build())
	}
	return instructions
}

func TestFreezeTransaction_RequiresInstructions(t *testing.T) {
	_, err := helpers.FreezeTransaction(nil, solana.Hash{1}, solana.NewWallet().PublicKey())
	require.Error(t, err)
}

func TestFrozenTransaction_MessageStableAcrossSigning(t *testing.T) {
	keys := newSigners(t, 2)
	recipient := solana.NewWallet().PublicKey()

	frozen, err := helpers.FreezeTransaction(
		multiSignerInstructions(keys, recipient), solana.Hash{7}, keys[0].PublicKey())
	require.NoError(t, err)

	before := append([]byte(nil), frozen.Message()...)
	for _, key := range keys {
		require.NoError(t, frozen.SignWith(key))
	}
	assert.Equal(t, before, frozen.Message(), "signing must never recompile the message")
}

func TestFrozenTransaction_AssembleRoundTrip_AnyContributionOrder(t *testing.T) {
	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	for _, perm := range permutations {
		keys := newSigners(t, 3)
		recipient := solana.NewWallet().PublicKey()

		frozen, err := helpers.FreezeTransaction(
			multiSignerInstructions(keys, recipient), solana.Hash{9}, keys[0].PublicKey())
		require.NoError(t, err)
		require.Len(t, frozen.SignerKeys(), 3)

		for _, idx := range perm {
			require.NoError(t, frozen.SignWith(keys[idx]))
		}
		require.True(t, frozen.Complete())

		raw, err := frozen.Assemble()
		require.NoError(t, err)

		parsed, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
		require.NoError(t, err)
		require.Len(t, parsed.Signatures, 3)

		// Each parsed signature must sit in its key's canonical slot,
		// regardless of the order signatures were contributed in.
		message := frozen.Message()
		for i, signer := range frozen.SignerKeys() {
			assert.Equal(t, signer, parsed.Message.AccountKeys[i])
			assert.True(t,
				ed25519.Verify(ed25519.PublicKey(signer.Bytes()), message, parsed.Signatures[i][:]),
				"permutation %v: signature %d not bound to %s", perm, i, signer)
		}
	}
}

func TestFrozenTransaction_RejectsUnknownSigner(t *testing.T) {
	keys := newSigners(t, 2)
	stranger := solana.NewWallet().PrivateKey
	recipient := solana.NewWallet().PublicKey()

	frozen, err := helpers.FreezeTransaction(
		multiSignerInstructions(keys, recipient), solana.Hash{3}, keys[0].PublicKey())
	require.NoError(t, err)

	err = frozen.SignWith(stranger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not required")
}

func TestFrozenTransaction_RejectsWrongSignature(t *testing.T) {
	keys := newSigners(t, 2)
	recipient := solana.NewWallet().PublicKey()

	frozen, err := helpers.FreezeTransaction(
		multiSignerInstructions(keys, recipient), solana.Hash{3}, keys[0].PublicKey())
	require.NoError(t, err)

	// A signature over different bytes must be rejected at contribution
	// time, naming the signer, instead of surfacing later as a sanitation
	// rejection.
	bogus, err := keys[0].Sign([]byte("different bytes"))
	require.NoError(t, err)
	err = frozen.AddSignature(keys[0].PublicKey(), bogus)
	require.Error(t, err)
	assert.Contains(t, err.Error(), keys[0].PublicKey().String())
}

func TestFrozenTransaction_AssembleRequiresAllSigners(t *testing.T) {
	keys := newSigners(t, 2)
	recipient := solana.NewWallet().PublicKey()

	frozen, err := helpers.FreezeTransaction(
		multiSignerInstructions(keys, recipient), solana.Hash{3}, keys[0].PublicKey())
	require.NoError(t, err)
	require.NoError(t, frozen.SignWith(keys[0]))

	_, err = frozen.Assemble()
	require.Error(t, err)
	assert.Contains(t, err.Error(), keys[1].PublicKey().String())
	assert.Equal(t, []solana.PublicKey{keys[1].PublicKey()}, frozen.MissingSigners())
}

func TestFrozenTransaction_PartiallySignedPlacesCollectedSignatures(t *testing.T) {
	keys := newSigners(t, 2)
	recipient := solana.NewWallet().PublicKey()

	frozen, err := helpers.FreezeTransaction(
		multiSignerInstructions(keys, recipient), solana.Hash{3}, keys[0].PublicKey())
	require.NoError(t, err)
	require.NoError(t, frozen.SignWith(keys[1]))

	view := frozen.PartiallySigned()
	require.Len(t, view.Signatures, 2)
	assert.True(t, view.Signatures[0].IsZero(), "unsigned slot keeps the zero placeholder")
	assert.False(t, view.Signatures[1].IsZero())
}

func TestFrozenTransaction_ExtractSignature(t *testing.T) {
	keys := newSigners(t, 2)
	recipient := solana.NewWallet().PublicKey()

	frozen, err := helpers.FreezeTransaction(
		multiSignerInstructions(keys, recipient), solana.Hash{3}, keys[0].PublicKey())
	require.NoError(t, err)

	walletSig, err := keys[0].Sign(frozen.Message())
	require.NoError(t, err)

	t.Run("canonical slot", func(t *testing.T) {
		returned := frozen.PartiallySigned()
		returned.Signatures[0] = walletSig

		got, err := frozen.ExtractSignature(returned, keys[0].PublicKey())
		require.NoError(t, err)
		assert.Equal(t, walletSig, got)
	})

	t.Run("wrong slot still recovered by scan", func(t *testing.T) {
		returned := frozen.PartiallySigned()
		returned.Signatures[1] = walletSig

		got, err := frozen.ExtractSignature(returned, keys[0].PublicKey())
		require.NoError(t, err)
		assert.Equal(t, walletSig, got)
	})

	t.Run("no verifying signature", func(t *testing.T) {
		returned := frozen.PartiallySigned()
		_, err := frozen.ExtractSignature(returned, keys[0].PublicKey())
		require.Error(t, err)
	})

	t.Run("nil transaction", func(t *testing.T) {
		_, err := frozen.ExtractSignature(nil, keys[0].PublicKey())
		require.Error(t, err)
	})
}
