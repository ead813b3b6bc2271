package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

// Backend is the part of ethclient.Client arbiter talks to
type Backend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

var _ Backend = (*ethclient.Client)(nil)

// Dial connects to the configured RPC endpoint. HTTP endpoints connect lazily.
func Dial(cfg *config.RuntimeConfig) (*ethclient.Client, func(), error) {
	client, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	return client, client.Close, nil
}

// ChainGuard verifies once that the RPC serves the configured chain
type ChainGuard struct {
	backend  Backend
	expected uint64

	mu      sync.Mutex
	chainID *big.Int
}

// NewChainGuard creates a guard. A zero expected chain ID accepts any network.
func NewChainGuard(backend Backend, cfg *config.RuntimeConfig) *ChainGuard {
	return &ChainGuard{backend: backend, expected: cfg.Network.ChainID}
}

// ChainID returns the verified network chain ID. Transient RPC errors are
// retried on the next call; a mismatch is reported every time.
func (g *ChainGuard) ChainID(ctx context.Context) (*big.Int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.chainID != nil {
		return g.chainID, nil
	}

	networkChainID, err := g.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if g.expected != 0 && networkChainID.Uint64() != g.expected {
		return nil, fmt.Errorf("%w: expected chain %d, RPC serves %d", domain.ErrNetworkMismatch, g.expected, networkChainID.Uint64())
	}
	g.chainID = networkChainID
	return g.chainID, nil
}
