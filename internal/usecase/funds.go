package usecase

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/pkg/poll"
)

// FundsCheck is the outcome of comparing a required amount to balance and allowance
type FundsCheck struct {
	Token     common.Address
	Required  *big.Int
	Balance   *big.Int
	Allowance *big.Int
}

// Sufficient reports whether the balance covers the required amount
func (f FundsCheck) Sufficient() bool {
	return f.Balance.Cmp(f.Required) >= 0
}

// NeedsApproval reports whether the allowance falls short of the required amount
func (f FundsCheck) NeedsApproval() bool {
	return f.Allowance.Cmp(f.Required) < 0
}

type allowanceKey struct {
	token, owner, spender common.Address
}

type balanceKey struct {
	token, owner common.Address
}

// FundsMonitor polls allowance and balance per token, owner and spender
type FundsMonitor struct {
	tokens   TokenReader
	interval time.Duration

	mu         sync.Mutex
	allowances map[allowanceKey]*poll.Query[*big.Int]
	balances   map[balanceKey]*poll.Query[*big.Int]
}

// NewFundsMonitor creates a new FundsMonitor
func NewFundsMonitor(cfg *config.RuntimeConfig, tokens TokenReader) *FundsMonitor {
	return &FundsMonitor{
		tokens:     tokens,
		interval:   cfg.PollInterval,
		allowances: make(map[allowanceKey]*poll.Query[*big.Int]),
		balances:   make(map[balanceKey]*poll.Query[*big.Int]),
	}
}

// Allowance returns the polled allowance of owner towards spender
func (m *FundsMonitor) Allowance(token, owner, spender common.Address) *poll.Query[*big.Int] {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := allowanceKey{token, owner, spender}
	q, ok := m.allowances[key]
	if !ok {
		q = poll.New(func(ctx context.Context) (*big.Int, error) {
			return m.tokens.Allowance(ctx, token, owner, spender)
		}, m.interval)
		m.allowances[key] = q
	}
	return q
}

// Balance returns the polled token balance of owner
func (m *FundsMonitor) Balance(token, owner common.Address) *poll.Query[*big.Int] {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := balanceKey{token, owner}
	q, ok := m.balances[key]
	if !ok {
		q = poll.New(func(ctx context.Context) (*big.Int, error) {
			return m.tokens.BalanceOf(ctx, token, owner)
		}, m.interval)
		m.balances[key] = q
	}
	return q
}

// Check refetches balance and allowance and compares them to required
func (m *FundsMonitor) Check(ctx context.Context, token, owner, spender common.Address, required *big.Int) (*FundsCheck, error) {
	balance, err := m.Balance(token, owner).Refetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	allowance, err := m.Allowance(token, owner, spender).Refetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read allowance: %w", err)
	}
	return &FundsCheck{
		Token:     token,
		Required:  required,
		Balance:   balance,
		Allowance: allowance,
	}, nil
}
