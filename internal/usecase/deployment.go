package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

// Deployment is the resolved set of addresses and parameters of the
// arbitration deployment
type Deployment struct {
	Contract          common.Address
	CompensationToken common.Address
	// VoteToken equals CompensationToken when the deployment has no dedicated vote token
	VoteToken       common.Address
	VoterRegistry   common.Address
	VoteTokenAmount *big.Int
	FeeBps          uint64
	TokenSymbol     string
}

// DedicatedVoteToken reports whether votes are staked in a separate token
func (d *Deployment) DedicatedVoteToken() bool {
	return d.VoteToken != d.CompensationToken
}

// FeePolicy returns the policy used to size stake approvals
func (d *Deployment) FeePolicy(variant domain.Variant) domain.FeePolicy {
	return domain.FeePolicy{RateBps: d.FeeBps, Buffer: variant.FeeBuffer}
}

// DeploymentResolver fills in everything the configuration leaves out by
// reading the arbitration contract. The first successful result is cached.
type DeploymentResolver struct {
	cfg    *config.RuntimeConfig
	reader CaseReader
	tokens TokenReader
	log    *slog.Logger

	mu       sync.Mutex
	resolved *Deployment
}

// NewDeploymentResolver creates a new DeploymentResolver
func NewDeploymentResolver(cfg *config.RuntimeConfig, reader CaseReader, tokens TokenReader, log *slog.Logger) *DeploymentResolver {
	return &DeploymentResolver{
		cfg:    cfg,
		reader: reader,
		tokens: tokens,
		log:    log,
	}
}

// Resolve returns the deployment, reading the contract on first use
func (r *DeploymentResolver) Resolve(ctx context.Context) (*Deployment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved != nil {
		return r.resolved, nil
	}

	contracts := r.cfg.Contracts
	d := &Deployment{
		Contract:          contracts.Arbitration,
		CompensationToken: contracts.CompensationToken,
		VoteToken:         contracts.VoteToken,
		VoterRegistry:     contracts.VoterRegistry,
		FeeBps:            r.cfg.Variant.FeeBps,
	}

	var err error
	if d.CompensationToken == (common.Address{}) {
		if d.CompensationToken, err = r.reader.CompensationToken(ctx); err != nil {
			return nil, fmt.Errorf("failed to read compensation token: %w", err)
		}
	}

	if d.VoteToken, err = r.resolveVoteToken(ctx, d.CompensationToken); err != nil {
		return nil, err
	}

	if d.VoterRegistry == (common.Address{}) {
		if d.VoterRegistry, err = r.reader.VoterRegistry(ctx); err != nil {
			return nil, fmt.Errorf("failed to read voter registry: %w", err)
		}
	}

	if d.VoteTokenAmount, err = r.reader.VoteTokenAmount(ctx); err != nil {
		return nil, fmt.Errorf("failed to read vote token amount: %w", err)
	}

	if d.FeeBps == 0 {
		d.FeeBps, err = r.reader.FeeRate(ctx)
		if err != nil {
			r.log.Warn("fee rate unavailable, using default", "default_bps", domain.DefaultFeeBps, "error", err)
			d.FeeBps = domain.DefaultFeeBps
		}
	}

	if d.TokenSymbol, err = r.tokens.Symbol(ctx, d.CompensationToken); err != nil {
		r.log.Debug("token symbol unavailable", "token", d.CompensationToken.Hex(), "error", err)
		d.TokenSymbol = ""
	}

	r.log.Debug("deployment resolved",
		"contract", d.Contract.Hex(),
		"compensation_token", d.CompensationToken.Hex(),
		"vote_token", d.VoteToken.Hex(),
		"fee_bps", d.FeeBps)
	r.resolved = d
	return d, nil
}

func (r *DeploymentResolver) resolveVoteToken(ctx context.Context, compensation common.Address) (common.Address, error) {
	configured := r.cfg.Contracts.VoteToken

	switch r.cfg.Variant.DedicatedVoteToken {
	case domain.VoteTokenNo:
		return compensation, nil
	case domain.VoteTokenYes:
		if configured != (common.Address{}) {
			return configured, nil
		}
		token, err := r.reader.VoteToken(ctx)
		if err != nil {
			return common.Address{}, fmt.Errorf("failed to read vote token: %w", err)
		}
		if token == (common.Address{}) {
			return common.Address{}, fmt.Errorf("contract reports no vote token")
		}
		return token, nil
	default:
		if configured != (common.Address{}) {
			return configured, nil
		}
		token, err := r.reader.VoteToken(ctx)
		if err != nil || token == (common.Address{}) {
			r.log.Debug("no dedicated vote token, voting with the compensation token", "error", err)
			return compensation, nil
		}
		return token, nil
	}
}
