package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// CaseJSON is the machine-readable form of a case
type CaseJSON struct {
	Number         uint64 `json:"number"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status"`
	ParticipantA   string `json:"participantA"`
	ParticipantB   string `json:"participantB"`
	CompensationA  string `json:"compensationA"`
	CompensationB  string `json:"compensationB"`
	DepositedA     string `json:"depositedA"`
	DepositedB     string `json:"depositedB"`
	PaidA          bool   `json:"paidA"`
	PaidB          bool   `json:"paidB"`
	Winner         string `json:"winner,omitempty"`
	VotingStart    uint64 `json:"votingStart,omitempty"`
	VotingDuration uint64 `json:"votingDuration"`
	Countdown      string `json:"countdown"`
	Allocation     string `json:"allocation"`
}

// CaseRowJSON is one list entry; Error is set for unreadable cases
type CaseRowJSON struct {
	*CaseJSON
	Number uint64 `json:"number"`
	Error  string `json:"error,omitempty"`
}

// CaseDetailJSON adds the viewer-derived state to a case
type CaseDetailJSON struct {
	CaseJSON
	VoteCountA  string   `json:"voteCountA,omitempty"`
	VoteCountB  string   `json:"voteCountB,omitempty"`
	VoteEnded   bool     `json:"voteEnded"`
	Viewer      string   `json:"viewer,omitempty"`
	VoterChoice string   `json:"voterChoice,omitempty"`
	HasClaimed  bool     `json:"hasClaimed"`
	Actions     []string `json:"actions"`
	Pending     []string `json:"pending,omitempty"`
	ResultError string   `json:"resultError,omitempty"`
	VoterError  string   `json:"voterError,omitempty"`
}

// NewCaseJSON converts a case for output
func NewCaseJSON(c *domain.Case, set domain.StatusSet, now time.Time) *CaseJSON {
	out := &CaseJSON{
		Number:         c.Number,
		Name:           c.Name,
		Description:    c.Description,
		Status:         c.Status.Label(set),
		ParticipantA:   c.ParticipantA.Hex(),
		ParticipantB:   c.ParticipantB.Hex(),
		CompensationA:  domain.FormatUnits(c.CompensationA, domain.TokenDecimals),
		CompensationB:  domain.FormatUnits(c.CompensationB, domain.TokenDecimals),
		DepositedA:     domain.FormatUnits(c.DepositedA, domain.TokenDecimals),
		DepositedB:     domain.FormatUnits(c.DepositedB, domain.TokenDecimals),
		PaidA:          c.PaidA,
		PaidB:          c.PaidB,
		VotingStart:    c.VotingStart,
		VotingDuration: c.VotingDuration,
		Countdown:      Countdown(c, now),
		Allocation:     c.Allocation.String(),
	}
	if c.Winner != (common.Address{}) {
		out.Winner = c.Winner.Hex()
	}
	return out
}

// NewCaseListJSON converts list rows for output
func NewCaseListJSON(result *usecase.ListCasesResult, set domain.StatusSet, now time.Time) []CaseRowJSON {
	rows := make([]CaseRowJSON, 0, len(result.Rows))
	for _, row := range result.Rows {
		entry := CaseRowJSON{Number: row.Number}
		if row.Available() {
			entry.CaseJSON = NewCaseJSON(row.Case, set, now)
		} else if row.Err != nil {
			entry.Error = row.Err.Error()
		}
		rows = append(rows, entry)
	}
	return rows
}

// NewCaseDetailJSON converts a detail view for output
func NewCaseDetailJSON(result *usecase.ShowCaseResult, set domain.StatusSet) *CaseDetailJSON {
	v := result.View
	out := &CaseDetailJSON{
		CaseJSON:   *NewCaseJSON(v.Case, set, v.Now),
		VoteEnded:  v.VotingEnded(),
		HasClaimed: v.HasClaimed,
		Actions:    []string{},
	}
	out.Status = v.Status().Label(set)
	if res := v.Result; res != nil {
		out.VoteCountA = formatCount(res.VoteCountA)
		out.VoteCountB = formatCount(res.VoteCountB)
		if res.HasWinner() {
			out.Winner = res.CurrentWinner.Hex()
		}
	}
	if v.Viewer != (common.Address{}) {
		out.Viewer = v.Viewer.Hex()
	}
	if v.VoterChoice != (common.Address{}) {
		out.VoterChoice = v.VoterChoice.Hex()
	}
	for _, a := range v.Actions() {
		out.Actions = append(out.Actions, string(a))
	}
	if !result.Pending.Empty() {
		out.Pending = strings.Split(result.Pending.String(), ",")
	}
	if result.ResultErr != nil {
		out.ResultError = result.ResultErr.Error()
	}
	if result.VoterErr != nil {
		out.VoterError = result.VoterErr.Error()
	}
	return out
}

// WriteJSON writes v as indented JSON
func WriteJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
