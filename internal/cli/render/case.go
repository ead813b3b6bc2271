package render

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// CaseRenderer renders detailed information about a single case
type CaseRenderer struct {
	out     io.Writer
	palette *Palette
	set     domain.StatusSet
}

// NewCaseRenderer creates a new case renderer
func NewCaseRenderer(out io.Writer, palette *Palette, set domain.StatusSet) *CaseRenderer {
	return &CaseRenderer{
		out:     out,
		palette: palette,
		set:     set,
	}
}

// RenderCase renders the case detail view. symbol is the compensation token symbol.
func (r *CaseRenderer) RenderCase(result *usecase.ShowCaseResult, symbol string) error {
	v := result.View
	c := v.Case
	p := r.palette

	p.Title.Fprintf(r.out, "Case %d: %s\n", c.Number, c.Name)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	if c.Description != "" {
		fmt.Fprintf(r.out, "%s\n", c.Description)
	}

	fmt.Fprintln(r.out, "\nStatus:")
	fmt.Fprintf(r.out, "  State: %s\n", StatusBadge(p, v.Status(), r.set))
	fmt.Fprintf(r.out, "  Allocation: %s\n", c.Allocation)
	if result.ResultErr != nil {
		fmt.Fprintf(r.out, "  %s\n", p.Warning.Sprintf("Result view unavailable: %v", result.ResultErr))
	}
	if result.VoterErr != nil {
		fmt.Fprintf(r.out, "  %s\n", p.Warning.Sprintf("Vote status unavailable: %v", result.VoterErr))
	}

	fmt.Fprintln(r.out, "\nParticipants:")
	for _, side := range []domain.Side{domain.SideA, domain.SideB} {
		paid := p.Muted.Sprint("not paid")
		if c.Paid(side) {
			paid = p.Success.Sprint("paid")
		}
		fmt.Fprintf(r.out, "  %s: %s\n", side, p.Address.Sprint(c.Participant(side).Hex()))
		fmt.Fprintf(r.out, "     Deposited: %s of %s (%s)\n",
			p.Amount.Sprint(FormatAmount(c.Deposited(side), symbol)),
			FormatAmount(c.Compensation(side), symbol),
			paid)
	}

	fmt.Fprintln(r.out, "\nVoting:")
	if c.VotingStart == 0 {
		fmt.Fprintf(r.out, "  Duration: %s (not started)\n", time.Duration(c.VotingDuration)*time.Second)
	} else {
		fmt.Fprintf(r.out, "  Started: %s\n", time.Unix(int64(c.VotingStart), 0).UTC().Format(time.RFC3339))
		fmt.Fprintf(r.out, "  Deadline: %s\n", c.VotingDeadline().UTC().Format(time.RFC3339))
		fmt.Fprintf(r.out, "  Remaining: %s\n", p.Accent.Sprint(FormatCountdown(v.Remaining())))
	}
	if res := v.Result; res != nil {
		fmt.Fprintf(r.out, "  Votes: A %s / B %s\n", formatCount(res.VoteCountA), formatCount(res.VoteCountB))
		if res.HasWinner() {
			fmt.Fprintf(r.out, "  Winner: %s\n", p.Success.Sprint(res.CurrentWinner.Hex()))
		} else if v.VotingEnded() {
			fmt.Fprintf(r.out, "  Winner: %s\n", p.Muted.Sprint("none (tie)"))
		}
	}

	if v.Viewer != (common.Address{}) {
		r.renderViewer(result)
	}
	return nil
}

func (r *CaseRenderer) renderViewer(result *usecase.ShowCaseResult) {
	v := result.View
	p := r.palette

	fmt.Fprintf(r.out, "\nYou (%s):\n", ShortAddress(v.Viewer))
	if side, ok := v.ViewerSide(); ok {
		fmt.Fprintf(r.out, "  Participant %s\n", side)
	}
	if v.VoterChoice != (common.Address{}) {
		fmt.Fprintf(r.out, "  Voted for: %s\n", ShortAddress(v.VoterChoice))
	}
	if v.HasClaimed {
		fmt.Fprintln(r.out, "  Vote pool claimed")
	}
	if !result.Pending.Empty() {
		fmt.Fprintf(r.out, "  Pending: %s\n", p.Warning.Sprint(result.Pending.String()))
	}

	actions := v.Actions()
	if len(actions) == 0 {
		fmt.Fprintf(r.out, "  Actions: %s\n", p.Muted.Sprint("none"))
		return
	}
	labels := make([]string, len(actions))
	for i, a := range actions {
		label := ActionLabel(a)
		if result.Pending.Has(a.Pending()) {
			label = p.Warning.Sprint(label + " (pending)")
		} else {
			label = p.Accent.Sprint(label)
		}
		labels[i] = label
	}
	fmt.Fprintf(r.out, "  Actions: %s\n", strings.Join(labels, ", "))
}

func formatCount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
