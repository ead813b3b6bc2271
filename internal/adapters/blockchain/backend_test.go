package blockchain

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

var errExecutionReverted = errors.New("execution reverted")

// fakeBackend answers eth_call with ABI-packed return data registered per
// (address, method) and records broadcast transactions
type fakeBackend struct {
	mu sync.Mutex

	chainID  *big.Int
	handlers map[string]func(args []byte) ([]byte, error)
	calls    int

	nonce       uint64
	nonceReads  int
	baseFee     *big.Int
	sendErr     error
	sent        []*types.Transaction
	receipts    map[common.Hash]*types.Receipt
	receiptMiss int
}

func newFakeBackend(chainID int64) *fakeBackend {
	return &fakeBackend{
		chainID:  big.NewInt(chainID),
		handlers: make(map[string]func([]byte) ([]byte, error)),
		baseFee:  big.NewInt(1_000_000_000),
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

func handlerKey(to common.Address, selector []byte) string {
	return to.Hex() + ":" + hex.EncodeToString(selector)
}

// respond registers fixed return values for a method on to
func (f *fakeBackend) respond(t *testing.T, to common.Address, parsed *abi.ABI, method string, values ...interface{}) {
	t.Helper()
	m, ok := parsed.Methods[method]
	require.True(t, ok, "unknown method %s", method)
	out, err := m.Outputs.Pack(values...)
	require.NoError(t, err)
	f.handle(to, m.ID, func([]byte) ([]byte, error) { return out, nil })
}

func (f *fakeBackend) handle(to common.Address, selector []byte, fn func(args []byte) ([]byte, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[handlerKey(to, selector)] = fn
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	var fn func([]byte) ([]byte, error)
	if call.To != nil && len(call.Data) >= 4 {
		fn = f.handlers[handlerKey(*call.To, call.Data[:4])]
	}
	f.mu.Unlock()
	if fn == nil {
		return nil, errExecutionReverted
	}
	return fn(call.Data[4:])
}

func (f *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return f.chainID, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nonceReads++
	return f.nonce, nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_500_000_000), nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(100), BaseFee: f.baseFee}, nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 100_000, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	f.nonce = tx.Nonce() + 1
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.receiptMiss > 0 {
		f.receiptMiss--
		return nil, ethereum.NotFound
	}
	r, ok := f.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (f *fakeBackend) mine(hash common.Hash, status uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts[hash] = &types.Receipt{TxHash: hash, Status: status, BlockNumber: big.NewInt(101)}
}
