package domain

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CaseStatus is the lifecycle state the arbitration contract reports for a case
type CaseStatus uint8

const (
	CaseStatusInactivated CaseStatus = iota
	CaseStatusActivated
	CaseStatusVoting
	CaseStatusExecuted
	// CaseStatusCancelled is reported as "abandoned" by legacy deployments
	CaseStatusCancelled
)

// Known reports whether the status is one the contract is known to emit
func (s CaseStatus) Known() bool {
	return s <= CaseStatusCancelled
}

// Label returns the display label of the status under the given status set
func (s CaseStatus) Label(set StatusSet) string {
	switch s {
	case CaseStatusInactivated:
		return "inactivated"
	case CaseStatusActivated:
		return "activated"
	case CaseStatusVoting:
		return "voting"
	case CaseStatusExecuted:
		return "executed"
	case CaseStatusCancelled:
		if set == StatusSetAbandoned {
			return "abandoned"
		}
		return "cancelled"
	default:
		return "unknown"
	}
}

// AcceptsDeposits is true while participants may still stake collateral
func (s CaseStatus) AcceptsDeposits() bool {
	return s == CaseStatusInactivated || s == CaseStatusActivated
}

// Side identifies one of the two participants of a case
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideB {
		return "B"
	}
	return "A"
}

// ParseSide accepts "a" or "b" in any case
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return SideA, nil
	case "b":
		return SideB, nil
	default:
		return SideA, ValidationError{Field: "side", Reason: "must be a or b"}
	}
}

// AllocationMode selects how the losing collateral is distributed
type AllocationMode uint8

const (
	AllocationWinnerTakesAll AllocationMode = 0
	AllocationProportional   AllocationMode = 1
)

func (m AllocationMode) String() string {
	switch m {
	case AllocationWinnerTakesAll:
		return "winner takes all"
	case AllocationProportional:
		return "proportional"
	default:
		return "unknown"
	}
}

// Case mirrors the contract's case struct
type Case struct {
	Number         uint64
	Name           string
	Description    string
	ParticipantA   common.Address
	ParticipantB   common.Address
	CompensationA  *big.Int
	CompensationB  *big.Int
	DepositedA     *big.Int
	DepositedB     *big.Int
	PaidA          bool
	PaidB          bool
	Executed       bool
	Winner         common.Address
	Status         CaseStatus
	VotingStart    uint64
	VotingDuration uint64
	Allocation     AllocationMode
}

// IsEmpty reports whether the slot holds no case. The contract returns a
// zeroed struct for case numbers it never assigned.
func (c *Case) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.ParticipantA == (common.Address{}) ||
		c.ParticipantB == (common.Address{}) ||
		c.Name == ""
}

// VotingDeadline is votingStartTime + votingDuration. Zero before voting starts.
func (c *Case) VotingDeadline() time.Time {
	if c.VotingStart == 0 {
		return time.Time{}
	}
	return time.Unix(int64(c.VotingStart+c.VotingDuration), 0)
}

// DeadlinePassed is the client-clock estimate of whether voting has ended
func (c *Case) DeadlinePassed(now time.Time) bool {
	deadline := c.VotingDeadline()
	if deadline.IsZero() {
		return false
	}
	return !now.Before(deadline)
}

// Participant returns the address on the given side
func (c *Case) Participant(side Side) common.Address {
	if side == SideB {
		return c.ParticipantB
	}
	return c.ParticipantA
}

// Compensation returns the collateral required from the given side
func (c *Case) Compensation(side Side) *big.Int {
	if side == SideB {
		return orZero(c.CompensationB)
	}
	return orZero(c.CompensationA)
}

// Deposited returns the collateral already staked by the given side
func (c *Case) Deposited(side Side) *big.Int {
	if side == SideB {
		return orZero(c.DepositedB)
	}
	return orZero(c.DepositedA)
}

// Paid reports whether the given side has staked its full compensation
func (c *Case) Paid(side Side) bool {
	if side == SideB {
		return c.PaidB
	}
	return c.PaidA
}

// Outstanding is the collateral the given side still owes, never negative
func (c *Case) Outstanding(side Side) *big.Int {
	rest := new(big.Int).Sub(c.Compensation(side), c.Deposited(side))
	if rest.Sign() < 0 {
		return new(big.Int)
	}
	return rest
}

// SideOf returns the side addr participates on, if any
func (c *Case) SideOf(addr common.Address) (Side, bool) {
	switch addr {
	case (common.Address{}):
		return SideA, false
	case c.ParticipantA:
		return SideA, true
	case c.ParticipantB:
		return SideB, true
	default:
		return SideA, false
	}
}

// IsParticipant reports whether addr is participant A or B
func (c *Case) IsParticipant(addr common.Address) bool {
	_, ok := c.SideOf(addr)
	return ok
}

// CaseResult is the contract's tally view of a case
type CaseResult struct {
	Number        uint64
	Status        CaseStatus
	CurrentWinner common.Address
	CompensationA *big.Int
	CompensationB *big.Int
	DepositedA    *big.Int
	DepositedB    *big.Int
	VoteCountA    *big.Int
	VoteCountB    *big.Int
	VoteEnded     bool
	Allocation    AllocationMode
}

// HasWinner is false while the result is unresolved or tied
func (r *CaseResult) HasWinner() bool {
	return r != nil && r.CurrentWinner != (common.Address{})
}

// CaseInit carries the arguments of addCase
type CaseInit struct {
	Name           string
	Description    string
	ParticipantA   common.Address
	ParticipantB   common.Address
	CompensationA  *big.Int
	CompensationB  *big.Int
	VotingDuration uint64
	Allocation     AllocationMode
}

// ContractStatus summarises the contract-level views
type ContractStatus struct {
	Address           common.Address `json:"address"`
	Running           bool           `json:"running"`
	CaseCount         uint64         `json:"caseCount"`
	CompensationToken common.Address `json:"compensationToken"`
	VoteToken         common.Address `json:"voteToken"`
	VoteTokenAmount   *big.Int       `json:"voteTokenAmount"`
	FeeBps            uint64         `json:"feeBps"`
	TokenSymbol       string         `json:"tokenSymbol"`
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
