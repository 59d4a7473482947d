package services

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	solclient "github.com/chaindepth/chaindepth-client/libs/go/client/solana"
	"github.com/chaindepth/chaindepth-client/libs/go/client/wallet"
	"github.com/chaindepth/chaindepth-client/libs/go/config"
)

// Engine is the gameplay-facing surface: session lifecycle, delegated
// action execution, and direct sends, wired over one endpoint pool.
type Engine struct {
	pool       *solclient.Pool
	submission *SubmissionService
	sessions   *SessionService
	router     *SigningRouterService
}

// NewEngine wires the engine for one connected wallet. skrMint is the
// gameplay token mint used for spend-cap accounting and the player's token
// account precondition.
func NewEngine(options config.Options, primary wallet.TransactionSigner, skrMint solana.PublicKey) (*Engine, error) {
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine options: %w", err)
	}

	pool, err := solclient.NewPool(options.Endpoints, options.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to build endpoint pool: %w", err)
	}

	submission := NewSubmissionService(pool, options)
	sessions := NewSessionService(pool, submission, primary, skrMint, options)
	router := NewSigningRouterService(sessions, submission)

	return &Engine{
		pool:       pool,
		submission: submission,
		sessions:   sessions,
		router:     router,
	}, nil
}

// EnsureGameplaySession makes sure an active funded session exists,
// establishing or repairing one as needed.
func (e *Engine) EnsureGameplaySession(ctx context.Context) (bool, error) {
	return e.sessions.EnsureGameplaySession(ctx)
}

// BeginGameplaySession starts a fresh session with explicit parameters.
func (e *Engine) BeginGameplaySession(ctx context.Context, capabilityMask uint32, spendCap uint64, durationMinutes uint64) (bool, error) {
	if err := e.sessions.BeginSession(ctx, capabilityMask, spendCap, durationMinutes); err != nil {
		return false, err
	}
	return true, nil
}

// EndGameplaySession revokes and forgets the active session.
func (e *Engine) EndGameplaySession(ctx context.Context) (bool, error) {
	if err := e.sessions.EndSession(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Execute routes one gameplay action through the signing router.
func (e *Engine) Execute(ctx context.Context, capability uint32, spendAmount uint64, build ActionBuilder) *SendResult {
	return e.router.Execute(ctx, capability, spendAmount, build)
}

// Send submits pre-built instructions with explicit signers, bypassing the
// router.
func (e *Engine) Send(ctx context.Context, instructions []solana.Instruction, feePayer solana.PublicKey, signers []wallet.TransactionSigner) *SendResult {
	return e.submission.Send(ctx, instructions, feePayer, signers)
}

// HasActiveAuthority reports whether a non-expired session grant exists.
func (e *Engine) HasActiveAuthority() bool {
	return e.sessions.HasActiveAuthority()
}

// CanSignLocally reports whether the next action avoids a wallet prompt.
func (e *Engine) CanSignLocally() bool {
	return e.sessions.CanSignLocally()
}

// Sessions exposes the session manager for callers that need funding repair
// or spend accounting directly.
func (e *Engine) Sessions() *SessionService {
	return e.sessions
}
