package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/domain/config"
)

// CaseReader reads the arbitration contract
type CaseReader interface {
	IsRunning(ctx context.Context) (bool, error)
	CurrentCaseNum(ctx context.Context) (uint64, error)
	// Case returns the stored struct. Unassigned numbers yield an empty case, not an error.
	Case(ctx context.Context, number uint64) (*domain.Case, error)
	CaseResult(ctx context.Context, number uint64) (*domain.CaseResult, error)
	VoterChoice(ctx context.Context, number uint64, voter common.Address) (common.Address, error)
	HasClaimed(ctx context.Context, number uint64, voter common.Address) (bool, error)
	VoteTokenAmount(ctx context.Context) (*big.Int, error)
	VoteToken(ctx context.Context) (common.Address, error)
	CompensationToken(ctx context.Context) (common.Address, error)
	FeeRate(ctx context.Context) (uint64, error)
	VoterRegistry(ctx context.Context) (common.Address, error)
}

// TokenReader reads ERC-20 state
type TokenReader interface {
	BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	Symbol(ctx context.Context, token common.Address) (string, error)
	Decimals(ctx context.Context, token common.Address) (uint8, error)
}

// VoterRegistry answers whether an account may vote
type VoterRegistry interface {
	IsVoter(ctx context.Context, registry, account common.Address) (bool, error)
}

// TxRequest is an unsigned contract call
type TxRequest struct {
	// Label names the call in logs and metrics, e.g. "stakeCompensation"
	Label string
	To    common.Address
	Data  []byte
	Value *big.Int
}

// Transactor signs, broadcasts and tracks transactions
type Transactor interface {
	// From returns the signing account; false when no signer is configured
	From() (common.Address, bool)
	Send(ctx context.Context, req TxRequest) (common.Hash, error)
	// WaitReceipt blocks until the transaction is mined. A failed status
	// returns the receipt together with domain.ErrTransactionReverted.
	WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// PreferenceStore persists the display preference
type PreferenceStore interface {
	Load(ctx context.Context) (*config.Preferences, error)
	Save(ctx context.Context, prefs *config.Preferences) error
}

// SystemTheme reports the terminal's colour scheme when it can tell
type SystemTheme interface {
	PrefersDark() (dark bool, known bool)
}

// CaseSelector handles interactive case and side selection
type CaseSelector interface {
	SelectCase(ctx context.Context, prompt string, rows []CaseRow) (uint64, error)
	SelectSide(ctx context.Context, prompt string, c *domain.Case) (domain.Side, error)
	Confirm(ctx context.Context, prompt string, defaultValue bool) (bool, error)
	PromptString(ctx context.Context, prompt string, validate func(string) error) (string, error)
}

// Clock returns the current time
type Clock func() time.Time

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
