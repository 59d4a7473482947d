// Package solana wraps the network RPC surface the engine consumes: a typed
// JSON-RPC client per endpoint, a raw HTTP transport for the fallback probe,
// and the prioritized endpoint pool used for every read and write.
package solana

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
)

// Client implements interfaces.ChainRPC over one RPC endpoint.
type Client struct {
	url     string
	rpc     *rpc.Client
	timeout time.Duration
}

// NewClient creates a typed RPC client for a single endpoint. Every call is
// bounded by the given timeout; exceeding it classifies as a transient
// timeout failure, never a fatal one.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:     url,
		rpc:     rpc.New(url),
		timeout: timeout,
	}
}

// URL identifies the endpoint for diagnostics.
func (c *Client) URL() string {
	return c.url
}

// GetLatestBlockhash returns a fresh block-validity reference and the slot
// it was observed at.
func (c *Client) GetLatestBlockhash(ctx context.Context) (solana.Hash, uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Hash{}, 0, errors.Wrap(err, "failed to fetch latest blockhash")
	}
	return out.Value.Blockhash, out.Context.Slot, nil
}

// GetSlot returns the current network slot.
func (c *Client) GetSlot(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	slot, err := c.rpc.GetSlot(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch current slot")
	}
	return slot, nil
}

// GetBalance returns the lamport balance of an account.
func (c *Client) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.rpc.GetBalance(ctx, account, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to fetch balance of %s", account)
	}
	return out.Value, nil
}

// AccountExists reports whether an account is initialized on-chain.
func (c *Client) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.rpc.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to fetch account %s", account)
	}
	return out != nil && out.Value != nil, nil
}

// SendRawTransaction submits fully-assembled transaction bytes with
// preflight simulation enabled.
func (c *Client) SendRawTransaction(ctx context.Context, txBytes []byte) (solana.Signature, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sig, err := c.rpc.SendRawTransactionWithOpts(ctx, txBytes, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to send transaction")
	}
	return sig, nil
}
