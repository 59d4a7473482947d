package solana

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/chaindepth/chaindepth-client/libs/go/constants"
	"github.com/chaindepth/chaindepth-client/libs/go/interfaces"
	"github.com/chaindepth/chaindepth-client/libs/go/logger"
)

// EndpointRole orders endpoints within the pool.
type EndpointRole int

const (
	RolePrimary EndpointRole = iota
	RoleFallback
	RoleWalletSupplied
)

func (r EndpointRole) String() string {
	switch r {
	case RolePrimary:
		return constants.PrimaryEndpointRole
	case RoleFallback:
		return constants.FallbackEndpointRole
	case RoleWalletSupplied:
		return constants.WalletSuppliedEndpointRole
	default:
		return "unknown"
	}
}

// EndpointDescriptor names one RPC endpoint and its pool role.
type EndpointDescriptor struct {
	URL  string
	Role EndpointRole
}

// Endpoint pairs the typed client and the raw probe transport for one URL.
type Endpoint struct {
	Descriptor EndpointDescriptor
	RPC        interfaces.ChainRPC
	Raw        interfaces.RawBroadcaster
}

// Pool is the ordered endpoint list used for every blockchain read and
// write. Endpoints are tried strictly in priority order; no load balancing
// or racing. This favors deterministic diagnosis over latency.
type Pool struct {
	endpoints []*Endpoint
	logger    *zap.Logger
}

// NewPool builds real clients for the given descriptors, de-duplicated by
// URL and ordered by role.
func NewPool(descriptors []EndpointDescriptor, timeout time.Duration) (*Pool, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("endpoint pool requires at least one endpoint")
	}

	ordered := make([]EndpointDescriptor, len(descriptors))
	copy(ordered, descriptors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Role < ordered[j].Role
	})

	seen := make(map[string]bool, len(ordered))
	endpoints := make([]*Endpoint, 0, len(ordered))
	for _, desc := range ordered {
		if desc.URL == "" || seen[desc.URL] {
			continue
		}
		seen[desc.URL] = true
		endpoints = append(endpoints, &Endpoint{
			Descriptor: desc,
			RPC:        NewClient(desc.URL, timeout),
			Raw:        NewRawClient(desc.URL, timeout),
		})
	}
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("endpoint pool is empty after de-duplication")
	}

	return &Pool{endpoints: endpoints, logger: logger.Log}, nil
}

// NewPoolFromEndpoints assembles a pool from pre-built endpoints. Order is
// preserved as given; intended for wiring tests and custom transports.
func NewPoolFromEndpoints(endpoints ...*Endpoint) *Pool {
	return &Pool{endpoints: endpoints, logger: logger.Log}
}

// Endpoints returns the pool in priority order.
func (p *Pool) Endpoints() []*Endpoint {
	return p.endpoints
}

// GetSlot reads the current slot from the first endpoint that answers.
func (p *Pool) GetSlot(ctx context.Context) (uint64, error) {
	var lastErr error
	for _, endpoint := range p.endpoints {
		slot, err := endpoint.RPC.GetSlot(ctx)
		if err == nil {
			return slot, nil
		}
		lastErr = err
		p.logger.Warn("slot read failed, trying next endpoint",
			zap.String("endpoint", endpoint.RPC.URL()),
			zap.Error(err))
	}
	return 0, fmt.Errorf("all endpoints failed reading slot: %w", lastErr)
}

// GetBalance reads an account balance from the first endpoint that answers.
func (p *Pool) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	var lastErr error
	for _, endpoint := range p.endpoints {
		balance, err := endpoint.RPC.GetBalance(ctx, account)
		if err == nil {
			return balance, nil
		}
		lastErr = err
		p.logger.Warn("balance read failed, trying next endpoint",
			zap.String("endpoint", endpoint.RPC.URL()),
			zap.String("account", account.String()),
			zap.Error(err))
	}
	return 0, fmt.Errorf("all endpoints failed reading balance: %w", lastErr)
}

// AccountExists checks account initialization via the first endpoint that
// answers.
func (p *Pool) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	var lastErr error
	for _, endpoint := range p.endpoints {
		exists, err := endpoint.RPC.AccountExists(ctx, account)
		if err == nil {
			return exists, nil
		}
		lastErr = err
		p.logger.Warn("account read failed, trying next endpoint",
			zap.String("endpoint", endpoint.RPC.URL()),
			zap.String("account", account.String()),
			zap.Error(err))
	}
	return false, fmt.Errorf("all endpoints failed reading account: %w", lastErr)
}
