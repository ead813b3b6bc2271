package domain

import "strings"

// PendingAction names a local in-flight flag on a case card
type PendingAction uint16

const (
	PendingStakeA PendingAction = 1 << iota
	PendingStakeB
	PendingApprove
	PendingStartVoting
	PendingExecute
	PendingVoteA
	PendingVoteB
	PendingClaim
	PendingCancel
)

var pendingNames = []struct {
	action PendingAction
	name   string
}{
	{PendingStakeA, "stake-a"},
	{PendingStakeB, "stake-b"},
	{PendingApprove, "approve"},
	{PendingStartVoting, "start-voting"},
	{PendingExecute, "execute"},
	{PendingVoteA, "vote-a"},
	{PendingVoteB, "vote-b"},
	{PendingClaim, "claim"},
	{PendingCancel, "cancel"},
}

func (a PendingAction) String() string {
	for _, n := range pendingNames {
		if n.action == a {
			return n.name
		}
	}
	return "unknown"
}

// StakeAction returns the stake flag for a side
func StakeAction(side Side) PendingAction {
	if side == SideB {
		return PendingStakeB
	}
	return PendingStakeA
}

// VoteAction returns the vote flag for a side
func VoteAction(side Side) PendingAction {
	if side == SideB {
		return PendingVoteB
	}
	return PendingVoteA
}

// PendingFlags is the set of pending actions on one card. The zero value is empty.
type PendingFlags uint16

func (f PendingFlags) Has(a PendingAction) bool {
	return uint16(f)&uint16(a) != 0
}

// Any reports whether any of the given actions is set
func (f PendingFlags) Any(mask PendingFlags) bool {
	return uint16(f)&uint16(mask) != 0
}

func (f PendingFlags) With(a ...PendingAction) PendingFlags {
	for _, x := range a {
		f |= PendingFlags(x)
	}
	return f
}

func (f PendingFlags) Without(a ...PendingAction) PendingFlags {
	for _, x := range a {
		f &^= PendingFlags(x)
	}
	return f
}

func (f PendingFlags) Empty() bool {
	return f == 0
}

func (f PendingFlags) String() string {
	var names []string
	for _, n := range pendingNames {
		if f.Has(n.action) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Conflicts returns the flags that block triggering a.
// Stakes and votes wait for an approval in flight; votes exclude each other.
func Conflicts(a PendingAction) PendingFlags {
	switch a {
	case PendingStakeA, PendingStakeB:
		return PendingFlags(0).With(a, PendingApprove)
	case PendingVoteA, PendingVoteB:
		return PendingFlags(0).With(PendingVoteA, PendingVoteB, PendingApprove)
	default:
		return PendingFlags(0).With(a)
	}
}
