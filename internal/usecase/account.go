package usecase

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/config"
)

// AccountResolver decides which address the views are rendered for:
// the signer when one is configured, else the read-only address setting
type AccountResolver struct {
	cfg *config.RuntimeConfig
	tx  Transactor
}

// NewAccountResolver creates a new AccountResolver
func NewAccountResolver(cfg *config.RuntimeConfig, tx Transactor) *AccountResolver {
	return &AccountResolver{cfg: cfg, tx: tx}
}

// Viewer returns the connected account, zero when none is configured
func (r *AccountResolver) Viewer() common.Address {
	if from, ok := r.tx.From(); ok {
		return from
	}
	return r.cfg.Account
}

// CanSign reports whether writes are possible
func (r *AccountResolver) CanSign() bool {
	_, ok := r.tx.From()
	return ok
}
