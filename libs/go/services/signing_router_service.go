package services

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/chaindepth/chaindepth-client/libs/go/client/wallet"
	"github.com/chaindepth/chaindepth-client/libs/go/logger"
	"github.com/chaindepth/chaindepth-client/libs/go/program/chaindepth"
)

// ActionBuilder rebuilds an action's instructions for a signing context.
// Called again after a session renewal because derived addresses change
// with the session key.
type ActionBuilder func(sc SigningContext) ([]solana.Instruction, error)

// SigningRouterService picks the signing identity per gameplay action and
// performs at most one session-renewal-and-retry cycle on a recoverable
// authorization rejection. Higher-level retry policy belongs to the caller.
type SigningRouterService struct {
	sessions  SessionResolver
	submitter TransactionSubmitter
	logger    *zap.Logger
}

// NewSigningRouterService creates a new signing router.
func NewSigningRouterService(sessions SessionResolver, submitter TransactionSubmitter) *SigningRouterService {
	return &SigningRouterService{
		sessions:  sessions,
		submitter: submitter,
		logger:    logger.Log,
	}
}

// Execute builds, signs, and submits one gameplay action. capability names
// the session capability bit the action needs; spendAmount is the token
// amount the action authorizes (zero for free actions).
func (r *SigningRouterService) Execute(ctx context.Context, capability uint32, spendAmount uint64, build ActionBuilder) *SendResult {
	sc := r.sessions.ResolveSigningContext(capability)

	charged := false
	if spendAmount > 0 && sc.UsesDelegated {
		if err := r.sessions.AuthorizeSpend(spendAmount); err != nil {
			// Cap exhausted: sign with the wallet rather than burning a
			// doomed submission on the session key.
			r.logger.Info("spend cap reached, routing to wallet",
				zap.Uint64("amount", spendAmount),
				zap.Error(err))
			sc = r.sessions.PrimaryContext()
		} else {
			charged = true
		}
	}

	result := r.submit(ctx, sc, build)
	if result.Ok {
		return result
	}
	if charged {
		// The action never landed, so the program-side cap was never
		// consumed; hand the client-side headroom back.
		r.sessions.ReleaseSpend(spendAmount)
	}

	if !sc.UsesDelegated || !chaindepth.IsRecoverableSessionError(result.Classification.ProgramError) {
		return result
	}

	// One recovery cycle: drop the rejected session, establish a fresh one,
	// rebuild the instructions, resubmit once.
	r.logger.Info("recoverable session rejection, renewing session",
		zap.Int("program_error", result.Classification.ProgramError),
		zap.String("error_name", chaindepth.ErrorName(result.Classification.ProgramError)))
	r.sessions.Invalidate()

	ready, err := r.sessions.EnsureGameplaySession(ctx)
	if err != nil || !ready {
		r.logger.Warn("session renewal failed, returning original rejection",
			zap.Error(err))
		return result
	}

	sc = r.sessions.ResolveSigningContext(capability)
	charged = false
	if spendAmount > 0 && sc.UsesDelegated {
		if err := r.sessions.AuthorizeSpend(spendAmount); err != nil {
			sc = r.sessions.PrimaryContext()
		} else {
			charged = true
		}
	}
	retry := r.submit(ctx, sc, build)
	if !retry.Ok && charged {
		r.sessions.ReleaseSpend(spendAmount)
	}
	return retry
}

func (r *SigningRouterService) submit(ctx context.Context, sc SigningContext, build ActionBuilder) *SendResult {
	instructions, err := build(sc)
	if err != nil {
		return &SendResult{
			FailureReason:  fmt.Sprintf("failed to build instructions: %v", err),
			Classification: Classification{ProgramError: -1},
		}
	}
	// The signing identity pays the fee: the funded session key when
	// delegated, the wallet otherwise.
	return r.submitter.Send(ctx, instructions, sc.Signer.PublicKey(), []wallet.TransactionSigner{sc.Signer})
}
