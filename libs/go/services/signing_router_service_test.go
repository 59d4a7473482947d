package services_test

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chaindepth/chaindepth-client/libs/go/client/wallet"
	"github.com/chaindepth/chaindepth-client/libs/go/mocks"
	"github.com/chaindepth/chaindepth-client/libs/go/program/chaindepth"
	"github.com/chaindepth/chaindepth-client/libs/go/services"
)

type routerFixture struct {
	sessions  *mocks.MockSessionResolver
	submitter *mocks.MockTransactionSubmitter
	router    *services.SigningRouterService
	player    *wallet.Keypair
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessions := mocks.NewMockSessionResolver(ctrl)
	submitter := mocks.NewMockTransactionSubmitter(ctrl)
	player, err := wallet.NewKeypair()
	require.NoError(t, err)

	return &routerFixture{
		sessions:  sessions,
		submitter: submitter,
		router:    services.NewSigningRouterService(sessions, submitter),
		player:    player,
	}
}

func (f *routerFixture) delegatedContext(t *testing.T) (services.SigningContext, *wallet.Keypair) {
	t.Helper()
	signer, err := wallet.NewKeypair()
	require.NoError(t, err)
	record, err := chaindepth.FindSessionAuthority(f.player.PublicKey(), signer.PublicKey())
	require.NoError(t, err)
	return services.SigningContext{
		Signer:          signer,
		AuthorityRecord: &record,
		Player:          f.player.PublicKey(),
		UsesDelegated:   true,
	}, signer
}

func (f *routerFixture) walletContext() services.SigningContext {
	return services.SigningContext{
		Signer: f.player,
		Player: f.player.PublicKey(),
	}
}

func buildAction(sc services.SigningContext) ([]solana.Instruction, error) {
	transfer := system.NewTransferInstruction(1, sc.Signer.PublicKey(), sc.Player).Build()
	return []solana.Instruction{transfer}, nil
}

func TestSigningRouter_Execute_DelegatedSuccess(t *testing.T) {
	f := newRouterFixture(t)
	sc, signer := f.delegatedContext(t)

	f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapMovePlayer).Return(sc)
	f.submitter.EXPECT().
		Send(gomock.Any(), gomock.Any(), signer.PublicKey(), gomock.Any()).
		Return(&services.SendResult{Ok: true, Signature: solana.Signature{1}})

	result := f.router.Execute(context.Background(), chaindepth.CapMovePlayer, 0, buildAction)
	require.True(t, result.Ok)
}

func TestSigningRouter_Execute_RecoverableErrorRenewsOnce(t *testing.T) {
	f := newRouterFixture(t)
	staleCtx, staleSigner := f.delegatedContext(t)
	freshCtx, freshSigner := f.delegatedContext(t)

	rejected := &services.SendResult{
		FailureReason: "custom program error: 0x178e",
		Classification: services.Classification{
			Class:        services.FailureProgramError,
			ProgramError: chaindepth.ErrSessionExpired,
		},
	}

	gomock.InOrder(
		f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapMovePlayer).Return(staleCtx),
		f.submitter.EXPECT().
			Send(gomock.Any(), gomock.Any(), staleSigner.PublicKey(), gomock.Any()).
			Return(rejected),
		f.sessions.EXPECT().Invalidate(),
		f.sessions.EXPECT().EnsureGameplaySession(gomock.Any()).Return(true, nil),
		f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapMovePlayer).Return(freshCtx),
		f.submitter.EXPECT().
			Send(gomock.Any(), gomock.Any(), freshSigner.PublicKey(), gomock.Any()).
			Return(&services.SendResult{Ok: true, Signature: solana.Signature{2}}),
	)

	result := f.router.Execute(context.Background(), chaindepth.CapMovePlayer, 0, buildAction)
	require.True(t, result.Ok)
	// The stale key is never reused: the retried send is fee-paid and
	// signed by the fresh session key (asserted by the Send matcher above).
}

func TestSigningRouter_Execute_NonRecoverableErrorNoRenewal(t *testing.T) {
	f := newRouterFixture(t)
	sc, signer := f.delegatedContext(t)

	rejected := &services.SendResult{
		FailureReason: "custom program error: 0x1770",
		Classification: services.Classification{
			Class:        services.FailureProgramError,
			ProgramError: chaindepth.ErrNotAdjacent,
		},
	}

	f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapMovePlayer).Return(sc)
	f.submitter.EXPECT().
		Send(gomock.Any(), gomock.Any(), signer.PublicKey(), gomock.Any()).
		Return(rejected)

	result := f.router.Execute(context.Background(), chaindepth.CapMovePlayer, 0, buildAction)
	require.False(t, result.Ok)
	assert.Equal(t, chaindepth.ErrNotAdjacent, result.Classification.ProgramError)
}

func TestSigningRouter_Execute_WalletFailureNoRenewal(t *testing.T) {
	f := newRouterFixture(t)
	sc := f.walletContext()

	// A recoverable code without delegated authority never triggers renewal.
	rejected := &services.SendResult{
		FailureReason: "custom program error: 0x178f",
		Classification: services.Classification{
			Class:        services.FailureProgramError,
			ProgramError: chaindepth.ErrSessionInactive,
		},
	}

	f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapMovePlayer).Return(sc)
	f.submitter.EXPECT().
		Send(gomock.Any(), gomock.Any(), f.player.PublicKey(), gomock.Any()).
		Return(rejected)

	result := f.router.Execute(context.Background(), chaindepth.CapMovePlayer, 0, buildAction)
	require.False(t, result.Ok)
}

func TestSigningRouter_Execute_RenewalFailureReturnsOriginalRejection(t *testing.T) {
	f := newRouterFixture(t)
	sc, signer := f.delegatedContext(t)

	rejected := &services.SendResult{
		FailureReason: "custom program error: 0x178e",
		Classification: services.Classification{
			Class:        services.FailureProgramError,
			ProgramError: chaindepth.ErrSessionExpired,
		},
	}

	f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapMovePlayer).Return(sc)
	f.submitter.EXPECT().
		Send(gomock.Any(), gomock.Any(), signer.PublicKey(), gomock.Any()).
		Return(rejected)
	f.sessions.EXPECT().Invalidate()
	f.sessions.EXPECT().EnsureGameplaySession(gomock.Any()).Return(false, assertError{})

	result := f.router.Execute(context.Background(), chaindepth.CapMovePlayer, 0, buildAction)
	require.False(t, result.Ok)
	assert.Equal(t, rejected.FailureReason, result.FailureReason)
}

func TestSigningRouter_Execute_SpendCapFallsBackToWallet(t *testing.T) {
	f := newRouterFixture(t)
	sc, _ := f.delegatedContext(t)

	f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapJoinJob).Return(sc)
	f.sessions.EXPECT().AuthorizeSpend(uint64(500)).Return(assertError{})
	f.sessions.EXPECT().PrimaryContext().Return(f.walletContext())
	f.submitter.EXPECT().
		Send(gomock.Any(), gomock.Any(), f.player.PublicKey(), gomock.Any()).
		Return(&services.SendResult{Ok: true, Signature: solana.Signature{3}})

	result := f.router.Execute(context.Background(), chaindepth.CapJoinJob, 500, buildAction)
	require.True(t, result.Ok)
}

func TestSigningRouter_Execute_FailedSpendActionReleasesCap(t *testing.T) {
	f := newRouterFixture(t)
	sc, signer := f.delegatedContext(t)

	rejected := &services.SendResult{
		FailureReason: "custom program error: 0x1770",
		Classification: services.Classification{
			Class:        services.FailureProgramError,
			ProgramError: chaindepth.ErrNotAdjacent,
		},
	}

	// The charge never landed on chain, so the headroom comes back.
	gomock.InOrder(
		f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapJoinJob).Return(sc),
		f.sessions.EXPECT().AuthorizeSpend(uint64(750)).Return(nil),
		f.submitter.EXPECT().
			Send(gomock.Any(), gomock.Any(), signer.PublicKey(), gomock.Any()).
			Return(rejected),
		f.sessions.EXPECT().ReleaseSpend(uint64(750)),
	)

	result := f.router.Execute(context.Background(), chaindepth.CapJoinJob, 750, buildAction)
	require.False(t, result.Ok)
}

func TestSigningRouter_Execute_SuccessfulSpendActionKeepsCharge(t *testing.T) {
	f := newRouterFixture(t)
	sc, signer := f.delegatedContext(t)

	f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapJoinJob).Return(sc)
	f.sessions.EXPECT().AuthorizeSpend(uint64(200)).Return(nil)
	f.submitter.EXPECT().
		Send(gomock.Any(), gomock.Any(), signer.PublicKey(), gomock.Any()).
		Return(&services.SendResult{Ok: true, Signature: solana.Signature{4}})

	result := f.router.Execute(context.Background(), chaindepth.CapJoinJob, 200, buildAction)
	require.True(t, result.Ok)
	// No ReleaseSpend expectation: an accepted action keeps its charge.
}

func TestSigningRouter_Execute_BuilderErrorFailsWithoutSend(t *testing.T) {
	f := newRouterFixture(t)
	sc := f.walletContext()

	f.sessions.EXPECT().ResolveSigningContext(chaindepth.CapMovePlayer).Return(sc)

	result := f.router.Execute(context.Background(), chaindepth.CapMovePlayer, 0,
		func(services.SigningContext) ([]solana.Instruction, error) {
			return nil, assertError{}
		})
	require.False(t, result.Ok)
	assert.Contains(t, result.FailureReason, "failed to build instructions")
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
