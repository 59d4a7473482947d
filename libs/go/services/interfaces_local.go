package services

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/chaindepth/chaindepth-client/libs/go/client/wallet"
)

// Local interfaces to avoid circular dependency with interfaces package

// TransactionSubmitter gets one assembled transaction accepted by the
// network. Implemented by SubmissionService.
type TransactionSubmitter interface {
	Send(ctx context.Context, instructions []solana.Instruction, feePayer solana.PublicKey, signers []wallet.TransactionSigner) *SendResult
}

// ChainReader covers the blockchain reads the session lifecycle needs.
// Implemented by the endpoint pool.
type ChainReader interface {
	GetSlot(ctx context.Context) (uint64, error)
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)
}

// SessionResolver is the session surface the signing router depends on.
// Implemented by SessionService.
type SessionResolver interface {
	EnsureGameplaySession(ctx context.Context) (bool, error)
	ResolveSigningContext(capability uint32) SigningContext
	PrimaryContext() SigningContext
	AuthorizeSpend(amount uint64) error
	ReleaseSpend(amount uint64)
	Invalidate()
}
