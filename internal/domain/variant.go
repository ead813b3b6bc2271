package domain

import (
	"fmt"
	"math/big"
)

// StatusSet names the label used for status 4
type StatusSet string

const (
	StatusSetCancelled StatusSet = "cancelled"
	StatusSetAbandoned StatusSet = "abandoned"
)

// DedicatedVoteToken controls where vote stakes are drawn from
type DedicatedVoteToken string

const (
	// VoteTokenAuto probes the deployment for voteToken()
	VoteTokenAuto DedicatedVoteToken = "auto"
	VoteTokenYes  DedicatedVoteToken = "true"
	VoteTokenNo   DedicatedVoteToken = "false"
)

// Variant captures the differences between deployed contract generations
type Variant struct {
	// IndexBase is 0 when case numbers start at zero, 1 otherwise
	IndexBase uint64
	StatusSet StatusSet
	// FeeBps overrides feeRateForStakeCompensation when non-zero
	FeeBps             uint64
	FeeBuffer          *big.Int
	DedicatedVoteToken DedicatedVoteToken
}

// DefaultVariant matches the current Sepolia deployment
func DefaultVariant() Variant {
	return Variant{
		IndexBase:          0,
		StatusSet:          StatusSetCancelled,
		FeeBuffer:          OneToken(),
		DedicatedVoteToken: VoteTokenAuto,
	}
}

// Validate rejects values no deployment uses
func (v Variant) Validate() error {
	if v.IndexBase > 1 {
		return fmt.Errorf("variant.index_base must be 0 or 1, got %d", v.IndexBase)
	}
	switch v.StatusSet {
	case StatusSetCancelled, StatusSetAbandoned:
	default:
		return fmt.Errorf("variant.status_set must be %q or %q, got %q", StatusSetCancelled, StatusSetAbandoned, v.StatusSet)
	}
	switch v.DedicatedVoteToken {
	case VoteTokenAuto, VoteTokenYes, VoteTokenNo:
	default:
		return fmt.Errorf("variant.dedicated_vote_token must be auto, true or false, got %q", v.DedicatedVoteToken)
	}
	if v.FeeBuffer != nil && v.FeeBuffer.Sign() < 0 {
		return fmt.Errorf("variant.fee_buffer must not be negative")
	}
	return nil
}

// CandidateNumbers lists every case number that may exist given the
// contract's currentCaseNum counter.
func (v Variant) CandidateNumbers(count uint64) []uint64 {
	numbers := make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		numbers = append(numbers, v.IndexBase+i)
	}
	return numbers
}
