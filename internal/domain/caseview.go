package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Action is a user-triggerable operation on a case
type Action string

const (
	ActionStakeA      Action = "stake-a"
	ActionStakeB      Action = "stake-b"
	ActionStartVoting Action = "start-voting"
	ActionExecute     Action = "execute"
	ActionVoteA       Action = "vote-a"
	ActionVoteB       Action = "vote-b"
	ActionClaim       Action = "claim"
	ActionCancel      Action = "cancel"
)

// Pending maps an action onto the local flag that tracks it
func (a Action) Pending() PendingAction {
	switch a {
	case ActionStakeA:
		return PendingStakeA
	case ActionStakeB:
		return PendingStakeB
	case ActionStartVoting:
		return PendingStartVoting
	case ActionExecute:
		return PendingExecute
	case ActionVoteA:
		return PendingVoteA
	case ActionVoteB:
		return PendingVoteB
	case ActionClaim:
		return PendingClaim
	default:
		return PendingCancel
	}
}

// CaseView joins the on-chain reads for one case with the viewer's perspective
type CaseView struct {
	Case   *Case
	Result *CaseResult
	Viewer common.Address
	// VoterChoice is the participant the viewer voted for, zero if none
	VoterChoice common.Address
	HasClaimed  bool
	// IsVoter is true when the voter registry recognises the viewer
	IsVoter bool
	Now     time.Time
}

// VotingEnded trusts the contract's voteEnded and falls back to the local clock
func (v *CaseView) VotingEnded() bool {
	if v.Case == nil {
		return false
	}
	if status := v.Status(); status != CaseStatusVoting && status != CaseStatusExecuted {
		return false
	}
	if v.Result != nil && v.Result.VoteEnded {
		return true
	}
	return v.Case.DeadlinePassed(v.Now)
}

// Remaining is the time left until the voting deadline, never negative
func (v *CaseView) Remaining() time.Duration {
	deadline := v.Case.VotingDeadline()
	if deadline.IsZero() {
		return 0
	}
	if d := deadline.Sub(v.Now); d > 0 {
		return d
	}
	return 0
}

// ViewerSide reports which side the viewer participates on
func (v *CaseView) ViewerSide() (Side, bool) {
	return v.Case.SideOf(v.Viewer)
}

// Status is the effective status, preferring the fresher result view
func (v *CaseView) Status() CaseStatus {
	if v.Result != nil && v.Result.Number == v.Case.Number {
		return v.Result.Status
	}
	return v.Case.Status
}

// Actions lists the operations currently available to the viewer
func (v *CaseView) Actions() []Action {
	if v.Case == nil || v.Case.IsEmpty() {
		return nil
	}
	var actions []Action
	status := v.Status()
	side, participant := v.ViewerSide()

	if participant && status.AcceptsDeposits() && !v.Case.Paid(side) {
		if side == SideA {
			actions = append(actions, ActionStakeA)
		} else {
			actions = append(actions, ActionStakeB)
		}
	}
	if participant && status == CaseStatusActivated {
		actions = append(actions, ActionStartVoting)
	}

	ended := v.VotingEnded()
	if status == CaseStatusVoting {
		if ended {
			actions = append(actions, ActionExecute)
		} else if v.IsVoter {
			actions = append(actions, ActionVoteA, ActionVoteB)
		}
	}
	if v.canClaim(ended) {
		actions = append(actions, ActionClaim)
	}
	if participant && status.AcceptsDeposits() {
		actions = append(actions, ActionCancel)
	}
	return actions
}

// Can reports whether a is currently available
func (v *CaseView) Can(a Action) bool {
	for _, x := range v.Actions() {
		if x == a {
			return true
		}
	}
	return false
}

func (v *CaseView) canClaim(ended bool) bool {
	if !ended || v.HasClaimed || v.Result == nil {
		return false
	}
	if v.VoterChoice == (common.Address{}) {
		return false
	}
	return v.Result.CurrentWinner == v.VoterChoice
}
