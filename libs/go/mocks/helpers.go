package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockChainRPCForTest creates a new mock ChainRPC for testing
func NewMockChainRPCForTest(t *testing.T) *MockChainRPC {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainRPC(ctrl)
}

// NewMockRawBroadcasterForTest creates a new mock RawBroadcaster for testing
func NewMockRawBroadcasterForTest(t *testing.T) *MockRawBroadcaster {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRawBroadcaster(ctrl)
}

// NewMockTransactionSubmitterForTest creates a new mock TransactionSubmitter for testing
func NewMockTransactionSubmitterForTest(t *testing.T) *MockTransactionSubmitter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTransactionSubmitter(ctrl)
}

// NewMockChainReaderForTest creates a new mock ChainReader for testing
func NewMockChainReaderForTest(t *testing.T) *MockChainReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainReader(ctrl)
}

// NewMockSessionResolverForTest creates a new mock SessionResolver for testing
func NewMockSessionResolverForTest(t *testing.T) *MockSessionResolver {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSessionResolver(ctrl)
}

// NewMockExternalSignerForTest creates a new mock ExternalSigner for testing
func NewMockExternalSignerForTest(t *testing.T) *MockExternalSigner {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockExternalSigner(ctrl)
}
