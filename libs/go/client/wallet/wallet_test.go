package wallet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chaindepth/chaindepth-client/libs/go/client/wallet"
	"github.com/chaindepth/chaindepth-client/libs/go/helpers"
	"github.com/chaindepth/chaindepth-client/libs/go/logger"
	"github.com/chaindepth/chaindepth-client/libs/go/mocks"
)

func init() {
	logger.InitLogger("test")
}

// freezeWith compiles a two-signer transfer pair so both keys are required
// signers of the frozen message.
func freezeWith(t *testing.T, a, b solana.PublicKey) *helpers.FrozenTransaction {
	t.Helper()
	recipient := solana.NewWallet().PublicKey()
	frozen, err := helpers.FreezeTransaction([]solana.Instruction{
		system.NewTransferInstruction(1_000, a, recipient).Build(),
		system.NewTransferInstruction(1_000, b, recipient).Build(),
	}, solana.Hash{5}, a)
	require.NoError(t, err)
	return frozen
}

func TestKeypair_SignFrozen(t *testing.T) {
	keypair, err := wallet.NewKeypair()
	require.NoError(t, err)
	other, err := wallet.NewKeypair()
	require.NoError(t, err)

	frozen := freezeWith(t, keypair.PublicKey(), other.PublicKey())
	require.NoError(t, keypair.SignFrozen(context.Background(), frozen))

	assert.Equal(t, []solana.PublicKey{other.PublicKey()}, frozen.MissingSigners())
	assert.False(t, keypair.RequiresPrompt())
}

func TestAdapterSigner_SignFrozen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletKey := solana.NewWallet().PrivateKey
	sessionKey, err := wallet.NewKeypair()
	require.NoError(t, err)

	external := mocks.NewMockExternalSigner(ctrl)
	external.EXPECT().PublicKey().Return(walletKey.PublicKey()).AnyTimes()
	// The wallet signs the frozen message and writes its signature into the
	// returned transaction; its serialization is otherwise untrusted.
	external.EXPECT().SignTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *solana.Transaction) (*solana.Transaction, error) {
			message, err := tx.Message.MarshalBinary()
			require.NoError(t, err)
			signature, err := walletKey.Sign(message)
			require.NoError(t, err)
			tx.Signatures[0] = signature
			return tx, nil
		})

	frozen := freezeWith(t, walletKey.PublicKey(), sessionKey.PublicKey())
	require.NoError(t, sessionKey.SignFrozen(context.Background(), frozen))

	adapter := wallet.NewAdapterSigner(external)
	assert.True(t, adapter.RequiresPrompt())
	require.NoError(t, adapter.SignFrozen(context.Background(), frozen))

	assert.True(t, frozen.Complete())
	_, err = frozen.Assemble()
	require.NoError(t, err)
}

func TestAdapterSigner_PromptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletKey := solana.NewWallet().PrivateKey
	sessionKey, err := wallet.NewKeypair()
	require.NoError(t, err)

	external := mocks.NewMockExternalSigner(ctrl)
	external.EXPECT().PublicKey().Return(walletKey.PublicKey()).AnyTimes()
	external.EXPECT().SignTransaction(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("user rejected the request"))

	frozen := freezeWith(t, walletKey.PublicKey(), sessionKey.PublicKey())

	adapter := wallet.NewAdapterSigner(external)
	err = adapter.SignFrozen(context.Background(), frozen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet signing prompt failed")
}

func TestAdapterSigner_UnusableSignatureRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletKey := solana.NewWallet().PrivateKey
	sessionKey, err := wallet.NewKeypair()
	require.NoError(t, err)

	external := mocks.NewMockExternalSigner(ctrl)
	external.EXPECT().PublicKey().Return(walletKey.PublicKey()).AnyTimes()
	// The wallet returns without contributing any verifying signature.
	external.EXPECT().SignTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *solana.Transaction) (*solana.Transaction, error) {
			return tx, nil
		})

	frozen := freezeWith(t, walletKey.PublicKey(), sessionKey.PublicKey())

	adapter := wallet.NewAdapterSigner(external)
	err = adapter.SignFrozen(context.Background(), frozen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable signature")
}

func TestKeypairFromPrivateKey(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	keypair := wallet.KeypairFromPrivateKey(key)
	assert.Equal(t, key.PublicKey(), keypair.PublicKey())
	assert.Equal(t, key, keypair.PrivateKey())
}
