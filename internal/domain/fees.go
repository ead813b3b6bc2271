package domain

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// FeeDenominator is the basis-point denominator used by the contract
const FeeDenominator = 10_000

// DefaultFeeBps is the stake fee observed on the reference deployment
const DefaultFeeBps = 100

// FeePolicy computes how much of a token a spend needs available
type FeePolicy struct {
	RateBps uint64
	// Buffer is added on top of the fee to absorb rounding on-chain
	Buffer *big.Int
}

// RequiredAmount returns amount + amount*RateBps/10000 + Buffer.
// The fee is only checked against balance and allowance; the submitted
// amount is never increased.
func (p FeePolicy) RequiredAmount(amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	base, overflow := uint256.FromBig(amount)
	if overflow {
		return nil, fmt.Errorf("amount %s exceeds uint256", amount)
	}

	fee, overflow := new(uint256.Int).MulDivOverflow(base, uint256.NewInt(p.RateBps), uint256.NewInt(FeeDenominator))
	if overflow {
		return nil, fmt.Errorf("fee on %s overflows uint256", amount)
	}
	total, overflow := new(uint256.Int).AddOverflow(base, fee)
	if overflow {
		return nil, fmt.Errorf("required amount for %s overflows uint256", amount)
	}

	if p.Buffer != nil && p.Buffer.Sign() > 0 {
		buffer, overflow := uint256.FromBig(p.Buffer)
		if overflow {
			return nil, fmt.Errorf("fee buffer %s exceeds uint256", p.Buffer)
		}
		if total, overflow = new(uint256.Int).AddOverflow(total, buffer); overflow {
			return nil, fmt.Errorf("required amount for %s overflows uint256", amount)
		}
	}
	return total.ToBig(), nil
}
