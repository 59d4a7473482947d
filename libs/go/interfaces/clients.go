package interfaces

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// ChainRPC is the narrow surface this engine consumes from one network RPC
// endpoint. Every method returns a free-text reason inside its error; the
// failure classifier works from that text.
type ChainRPC interface {
	// GetLatestBlockhash returns a fresh block-validity reference and the
	// slot it was observed at.
	GetLatestBlockhash(ctx context.Context) (solana.Hash, uint64, error)

	// GetSlot returns the current network slot.
	GetSlot(ctx context.Context) (uint64, error)

	// GetBalance returns the lamport balance of an account.
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)

	// AccountExists reports whether an account is initialized on-chain.
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)

	// SendRawTransaction submits fully-assembled transaction bytes with
	// preflight simulation enabled.
	SendRawTransaction(ctx context.Context, txBytes []byte) (solana.Signature, error)

	// URL identifies the endpoint for diagnostics.
	URL() string
}

// RawBroadcaster submits the same transaction payload over a bare HTTP
// JSON-RPC transport, bypassing the normal client stack. Used as a one-shot
// probe when a send failure looks like a response-parsing problem rather
// than a genuine rejection.
type RawBroadcaster interface {
	Broadcast(ctx context.Context, txBytes []byte) (solana.Signature, error)
}
