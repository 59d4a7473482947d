package solana_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sdk "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	solclient "github.com/chaindepth/chaindepth-client/libs/go/client/solana"
	"github.com/chaindepth/chaindepth-client/libs/go/logger"
	"github.com/chaindepth/chaindepth-client/libs/go/mocks"
)

func init() {
	logger.InitLogger("test")
}

func TestNewPool_OrdersByRoleAndDeduplicates(t *testing.T) {
	pool, err := solclient.NewPool([]solclient.EndpointDescriptor{
		{URL: "http://wallet", Role: solclient.RoleWalletSupplied},
		{URL: "http://fallback", Role: solclient.RoleFallback},
		{URL: "http://primary", Role: solclient.RolePrimary},
		{URL: "http://primary", Role: solclient.RoleFallback}, // duplicate URL
		{URL: "", Role: solclient.RoleFallback},               // dropped
	}, 5*time.Second)
	require.NoError(t, err)

	endpoints := pool.Endpoints()
	require.Len(t, endpoints, 3)
	assert.Equal(t, "http://primary", endpoints[0].Descriptor.URL)
	assert.Equal(t, "http://fallback", endpoints[1].Descriptor.URL)
	assert.Equal(t, "http://wallet", endpoints[2].Descriptor.URL)
}

func TestNewPool_RejectsEmptyInput(t *testing.T) {
	_, err := solclient.NewPool(nil, time.Second)
	require.Error(t, err)

	_, err = solclient.NewPool([]solclient.EndpointDescriptor{{URL: ""}}, time.Second)
	require.Error(t, err)
}

func TestPool_ReadsFailOverToNextEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rpcA := mocks.NewMockChainRPC(ctrl)
	rpcA.EXPECT().URL().Return("http://one").AnyTimes()
	rpcB := mocks.NewMockChainRPC(ctrl)
	rpcB.EXPECT().URL().Return("http://two").AnyTimes()

	pool := solclient.NewPoolFromEndpoints(
		&solclient.Endpoint{Descriptor: solclient.EndpointDescriptor{URL: "http://one"}, RPC: rpcA},
		&solclient.Endpoint{Descriptor: solclient.EndpointDescriptor{URL: "http://two"}, RPC: rpcB},
	)
	ctx := context.Background()

	rpcA.EXPECT().GetSlot(ctx).Return(uint64(0), errors.New("connection refused"))
	rpcB.EXPECT().GetSlot(ctx).Return(uint64(42), nil)
	slot, err := pool.GetSlot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), slot)

	account := sdk.NewWallet().PublicKey()
	rpcA.EXPECT().GetBalance(ctx, account).Return(uint64(0), errors.New("timeout"))
	rpcB.EXPECT().GetBalance(ctx, account).Return(uint64(7), nil)
	balance, err := pool.GetBalance(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), balance)

	rpcA.EXPECT().AccountExists(ctx, account).Return(false, errors.New("timeout"))
	rpcB.EXPECT().AccountExists(ctx, account).Return(true, nil)
	exists, err := pool.AccountExists(ctx, account)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPool_ReadSurfacesLastErrorWhenAllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rpc := mocks.NewMockChainRPC(ctrl)
	rpc.EXPECT().URL().Return("http://one").AnyTimes()
	rpc.EXPECT().GetSlot(gomock.Any()).Return(uint64(0), errors.New("connection refused"))

	pool := solclient.NewPoolFromEndpoints(
		&solclient.Endpoint{Descriptor: solclient.EndpointDescriptor{URL: "http://one"}, RPC: rpc},
	)

	_, err := pool.GetSlot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestEndpointRoleString(t *testing.T) {
	assert.Equal(t, "primary", solclient.RolePrimary.String())
	assert.Equal(t, "fallback", solclient.RoleFallback.String())
	assert.Equal(t, "wallet", solclient.RoleWalletSupplied.String())
}
