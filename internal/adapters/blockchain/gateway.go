package blockchain

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/domain/bindings"
	"github.com/trebuchet-org/arbiter/internal/usecase"
	"golang.org/x/time/rate"
)

// defaultCallTimeout bounds a single eth_call
const defaultCallTimeout = 15 * time.Second

// Gateway performs typed contract reads through one rate limiter
type Gateway struct {
	backend     Backend
	guard       *ChainGuard
	contract    common.Address
	limiter     *rate.Limiter
	callTimeout time.Duration
	metrics     *Metrics

	arb    *bindings.Arbitration
	erc20  *bindings.ERC20
	voters *bindings.VoterRegistry
}

var (
	_ usecase.CaseReader    = (*Gateway)(nil)
	_ usecase.TokenReader   = (*Gateway)(nil)
	_ usecase.VoterRegistry = (*Gateway)(nil)
)

// NewGateway creates a new read gateway
func NewGateway(backend Backend, guard *ChainGuard, cfg *config.RuntimeConfig, metrics *Metrics) *Gateway {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	return &Gateway{
		backend:     backend,
		guard:       guard,
		contract:    cfg.Contracts.Arbitration,
		limiter:     rate.NewLimiter(limit, burst),
		callTimeout: defaultCallTimeout,
		metrics:     metrics,
		arb:         bindings.NewArbitration(),
		erc20:       bindings.NewERC20(),
		voters:      bindings.NewVoterRegistry(),
	}
}

func (g *Gateway) call(ctx context.Context, method string, to common.Address, data []byte) ([]byte, error) {
	if _, err := g.guard.ChainID(ctx); err != nil {
		return nil, err
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	out, err := g.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	g.metrics.read(method, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

func caseNumber(n uint64) *big.Int {
	return new(big.Int).SetUint64(n)
}

// IsRunning reads isRunning()
func (g *Gateway) IsRunning(ctx context.Context) (bool, error) {
	out, err := g.call(ctx, "isRunning", g.contract, g.arb.PackIsRunning())
	if err != nil {
		return false, err
	}
	return g.arb.UnpackIsRunning(out)
}

// CurrentCaseNum reads the case counter
func (g *Gateway) CurrentCaseNum(ctx context.Context) (uint64, error) {
	out, err := g.call(ctx, "currentCaseNum", g.contract, g.arb.PackCurrentCaseNum())
	if err != nil {
		return 0, err
	}
	n, err := g.arb.UnpackCurrentCaseNum(out)
	if err != nil {
		return 0, err
	}
	return toUint64("currentCaseNum", n)
}

// Case reads cases(n)
func (g *Gateway) Case(ctx context.Context, number uint64) (*domain.Case, error) {
	out, err := g.call(ctx, "cases", g.contract, g.arb.PackCases(caseNumber(number)))
	if err != nil {
		return nil, err
	}
	c, err := g.arb.UnpackCases(out)
	if err != nil {
		return nil, fmt.Errorf("cases: %w", err)
	}
	return &domain.Case{
		Number:         number,
		Name:           c.CaseName,
		Description:    c.CaseDescription,
		ParticipantA:   c.ParticipantA,
		ParticipantB:   c.ParticipantB,
		CompensationA:  c.CompensationA,
		CompensationB:  c.CompensationB,
		DepositedA:     c.ExistingCompensationA,
		DepositedB:     c.ExistingCompensationB,
		PaidA:          c.IsPaidA,
		PaidB:          c.IsPaidB,
		Executed:       c.IsExecuted,
		Winner:         c.Winner,
		Status:         domain.CaseStatus(c.Status),
		VotingStart:    saturate(c.VotingStartTime),
		VotingDuration: saturate(c.VotingDuration),
		Allocation:     domain.AllocationMode(saturate(c.AllocationMode)),
	}, nil
}

// CaseResult reads getCaseResult(n)
func (g *Gateway) CaseResult(ctx context.Context, number uint64) (*domain.CaseResult, error) {
	out, err := g.call(ctx, "getCaseResult", g.contract, g.arb.PackGetCaseResult(caseNumber(number)))
	if err != nil {
		return nil, err
	}
	r, err := g.arb.UnpackGetCaseResult(out)
	if err != nil {
		return nil, fmt.Errorf("getCaseResult: %w", err)
	}
	return &domain.CaseResult{
		Number:        saturate(r.CaseNum),
		Status:        domain.CaseStatus(r.CaseStatus),
		CurrentWinner: r.CurrentWinner,
		CompensationA: r.CompensationA,
		CompensationB: r.CompensationB,
		DepositedA:    r.ExistingCompensationA,
		DepositedB:    r.ExistingCompensationB,
		VoteCountA:    r.VoteCountA,
		VoteCountB:    r.VoteCountB,
		VoteEnded:     r.VoteEnded,
		Allocation:    domain.AllocationMode(saturate(r.AllocationMode)),
	}, nil
}

// VoterChoice reads getCaseVoterChoice(n, voter)
func (g *Gateway) VoterChoice(ctx context.Context, number uint64, voter common.Address) (common.Address, error) {
	out, err := g.call(ctx, "getCaseVoterChoice", g.contract, g.arb.PackGetCaseVoterChoice(caseNumber(number), voter))
	if err != nil {
		return common.Address{}, err
	}
	return g.arb.UnpackGetCaseVoterChoice(out)
}

// HasClaimed reads getCaseVoterHasClaimed(n, voter)
func (g *Gateway) HasClaimed(ctx context.Context, number uint64, voter common.Address) (bool, error) {
	out, err := g.call(ctx, "getCaseVoterHasClaimed", g.contract, g.arb.PackGetCaseVoterHasClaimed(caseNumber(number), voter))
	if err != nil {
		return false, err
	}
	return g.arb.UnpackGetCaseVoterHasClaimed(out)
}

// VoteTokenAmount reads the stake required per vote
func (g *Gateway) VoteTokenAmount(ctx context.Context) (*big.Int, error) {
	out, err := g.call(ctx, "voteTokenAmount", g.contract, g.arb.PackVoteTokenAmount())
	if err != nil {
		return nil, err
	}
	return g.arb.UnpackVoteTokenAmount(out)
}

// VoteToken reads voteToken(). Older deployments revert here.
func (g *Gateway) VoteToken(ctx context.Context) (common.Address, error) {
	out, err := g.call(ctx, "voteToken", g.contract, g.arb.PackVoteToken())
	if err != nil {
		return common.Address{}, err
	}
	return g.arb.UnpackVoteToken(out)
}

// CompensationToken reads compensationToken()
func (g *Gateway) CompensationToken(ctx context.Context) (common.Address, error) {
	out, err := g.call(ctx, "compensationToken", g.contract, g.arb.PackCompensationToken())
	if err != nil {
		return common.Address{}, err
	}
	return g.arb.UnpackCompensationToken(out)
}

// FeeRate reads feeRateForStakeCompensation() in basis points
func (g *Gateway) FeeRate(ctx context.Context) (uint64, error) {
	out, err := g.call(ctx, "feeRateForStakeCompensation", g.contract, g.arb.PackFeeRateForStakeCompensation())
	if err != nil {
		return 0, err
	}
	rate, err := g.arb.UnpackFeeRateForStakeCompensation(out)
	if err != nil {
		return 0, err
	}
	return toUint64("feeRateForStakeCompensation", rate)
}

// VoterRegistry reads voter()
func (g *Gateway) VoterRegistry(ctx context.Context) (common.Address, error) {
	out, err := g.call(ctx, "voter", g.contract, g.arb.PackVoter())
	if err != nil {
		return common.Address{}, err
	}
	return g.arb.UnpackVoter(out)
}

// BalanceOf reads an ERC-20 balance
func (g *Gateway) BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	out, err := g.call(ctx, "balanceOf", token, g.erc20.PackBalanceOf(owner))
	if err != nil {
		return nil, err
	}
	return g.erc20.UnpackBalanceOf(out)
}

// Allowance reads an ERC-20 allowance
func (g *Gateway) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	out, err := g.call(ctx, "allowance", token, g.erc20.PackAllowance(owner, spender))
	if err != nil {
		return nil, err
	}
	return g.erc20.UnpackAllowance(out)
}

// Symbol reads an ERC-20 symbol
func (g *Gateway) Symbol(ctx context.Context, token common.Address) (string, error) {
	out, err := g.call(ctx, "symbol", token, g.erc20.PackSymbol())
	if err != nil {
		return "", err
	}
	return g.erc20.UnpackSymbol(out)
}

// Decimals reads an ERC-20 decimals value
func (g *Gateway) Decimals(ctx context.Context, token common.Address) (uint8, error) {
	out, err := g.call(ctx, "decimals", token, g.erc20.PackDecimals())
	if err != nil {
		return 0, err
	}
	return g.erc20.UnpackDecimals(out)
}

// IsVoter asks the voter registry about account
func (g *Gateway) IsVoter(ctx context.Context, registry, account common.Address) (bool, error) {
	out, err := g.call(ctx, "isVoter", registry, g.voters.PackIsVoter(account))
	if err != nil {
		return false, err
	}
	return g.voters.UnpackIsVoter(out)
}

func toUint64(method string, v *big.Int) (uint64, error) {
	if v == nil || v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("%s: value %v does not fit uint64", method, v)
	}
	return v.Uint64(), nil
}

// saturate clamps timestamps and enums that should never exceed uint64
func saturate(v *big.Int) uint64 {
	if v == nil || v.Sign() <= 0 {
		return 0
	}
	if !v.IsUint64() {
		return math.MaxUint64
	}
	return v.Uint64()
}
