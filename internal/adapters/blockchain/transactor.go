package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

const defaultReceiptPollInterval = 2 * time.Second

// Transactor signs EIP-1559 transactions with the local signer, broadcasts
// them and polls for receipts
type Transactor struct {
	backend      Backend
	guard        *ChainGuard
	signer       *Signer
	metrics      *Metrics
	pollInterval time.Duration
	log          *slog.Logger

	mu         sync.Mutex
	nonce      uint64
	nonceKnown bool

	labelsMu sync.Mutex
	labels   map[common.Hash]string
}

var _ usecase.Transactor = (*Transactor)(nil)

// NewTransactor creates a transactor. A nil signer makes every Send fail with ErrNoSigner.
func NewTransactor(backend Backend, guard *ChainGuard, signer *Signer, metrics *Metrics, cfg *config.RuntimeConfig, log *slog.Logger) *Transactor {
	interval := cfg.ReceiptPollInterval
	if interval <= 0 {
		interval = defaultReceiptPollInterval
	}
	return &Transactor{
		backend:      backend,
		guard:        guard,
		signer:       signer,
		metrics:      metrics,
		pollInterval: interval,
		log:          log,
		labels:       make(map[common.Hash]string),
	}
}

// From returns the signer address
func (t *Transactor) From() (common.Address, bool) {
	if t.signer == nil {
		return common.Address{}, false
	}
	return t.signer.Address(), true
}

// Send signs and broadcasts req. Nonces are allocated locally so that
// back-to-back sends (approve then stake) do not collide.
func (t *Transactor) Send(ctx context.Context, req usecase.TxRequest) (common.Hash, error) {
	if t.signer == nil {
		return common.Hash{}, domain.ErrNoSigner
	}
	hash, err := t.send(ctx, req)
	if err != nil {
		t.metrics.transaction(req.Label, OutcomeFailed)
		return common.Hash{}, err
	}
	t.metrics.transaction(req.Label, OutcomeSubmitted)

	t.labelsMu.Lock()
	t.labels[hash] = req.Label
	t.labelsMu.Unlock()
	return hash, nil
}

func (t *Transactor) send(ctx context.Context, req usecase.TxRequest) (common.Hash, error) {
	chainID, err := t.guard.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	from := t.signer.Address()
	if !t.nonceKnown {
		nonce, err := t.backend.PendingNonceAt(ctx, from)
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
		}
		t.nonce = nonce
		t.nonceKnown = true
	}

	tip, err := t.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to suggest gas tip: %w", err)
	}
	head, err := t.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get latest header: %w", err)
	}
	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}
	to := req.To
	gas, err := t.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &to,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Value:     value,
		Data:      req.Data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("gas estimation failed: %w", err)
	}
	gas += gas / 5

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     t.nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      req.Data,
	})
	signed, err := t.signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := t.backend.SendTransaction(ctx, signed); err != nil {
		// The node may know a nonce we don't; re-read it next time.
		t.nonceKnown = false
		return common.Hash{}, fmt.Errorf("failed to broadcast transaction: %w", err)
	}
	t.nonce++

	t.log.Debug("transaction broadcast",
		"call", req.Label,
		"hash", signed.Hash().Hex(),
		"nonce", signed.Nonce(),
		"gas", gas)
	return signed.Hash(), nil
}

// WaitReceipt polls until the transaction is mined or ctx ends
func (t *Transactor) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := t.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return t.settled(hash, receipt)
		case errors.Is(err, ethereum.NotFound):
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			t.log.Debug("receipt poll failed", "hash", hash.Hex(), "error", err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (t *Transactor) settled(hash common.Hash, receipt *types.Receipt) (*types.Receipt, error) {
	call := t.labelFor(hash)
	if receipt.Status == types.ReceiptStatusFailed {
		t.metrics.transaction(call, OutcomeReverted)
		return receipt, fmt.Errorf("%w in block %v", domain.ErrTransactionReverted, receipt.BlockNumber)
	}
	t.metrics.transaction(call, OutcomeConfirmed)
	return receipt, nil
}

func (t *Transactor) labelFor(hash common.Hash) string {
	t.labelsMu.Lock()
	defer t.labelsMu.Unlock()
	label, ok := t.labels[hash]
	if !ok {
		return "unknown"
	}
	delete(t.labels, hash)
	return label
}
