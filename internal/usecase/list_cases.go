package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ListMode selects which cases a list shows
type ListMode string

const (
	// ListPersonal shows cases where the account is a participant, newest first
	ListPersonal ListMode = "personal"
	// ListVoting shows cases open to or decided by voters
	ListVoting ListMode = "voting"
	// ListAll shows every existing case
	ListAll ListMode = "all"
)

// ParseListMode validates a mode name
func ParseListMode(s string) (ListMode, error) {
	switch m := ListMode(s); m {
	case ListPersonal, ListVoting, ListAll:
		return m, nil
	case "":
		return ListPersonal, nil
	default:
		return "", domain.ValidationError{Field: "mode", Reason: fmt.Sprintf("%q is not one of personal, voting, all", s)}
	}
}

// maxConcurrentReads bounds the case fetches of one list
const maxConcurrentReads = 8

// CaseRow is one entry of a case list. A row with Err set could not be read
// and is shown as unavailable rather than dropped.
type CaseRow struct {
	Number uint64
	Case   *domain.Case
	Err    error
}

// Available reports whether the row holds data
func (r CaseRow) Available() bool {
	return r.Err == nil && r.Case != nil
}

// ListCasesParams contains parameters for listing cases
type ListCasesParams struct {
	Mode ListMode
	// Account overrides the connected account
	Account common.Address
}

// ListCasesResult contains the filtered rows
type ListCasesResult struct {
	Mode    ListMode
	Account common.Address
	Count   uint64
	Rows    []CaseRow
	// Unreadable counts reads that failed in the filtered modes. Those rows
	// cannot be matched against the filter, so they are left out.
	Unreadable int
}

// ListCases is the use case for the personal, voting and all views
type ListCases struct {
	cfg      *config.RuntimeConfig
	reader   CaseReader
	voters   VoterRegistry
	resolver *DeploymentResolver
	account  *AccountResolver
	sink     ProgressSink
}

// NewListCases creates a new ListCases use case
func NewListCases(
	cfg *config.RuntimeConfig,
	reader CaseReader,
	voters VoterRegistry,
	resolver *DeploymentResolver,
	account *AccountResolver,
	sink ProgressSink,
) *ListCases {
	return &ListCases{
		cfg:      cfg,
		reader:   reader,
		voters:   voters,
		resolver: resolver,
		account:  account,
		sink:     sink,
	}
}

// Run executes the list use case
func (uc *ListCases) Run(ctx context.Context, params ListCasesParams) (*ListCasesResult, error) {
	mode := params.Mode
	if mode == "" {
		mode = ListPersonal
	}
	account := params.Account
	if account == (common.Address{}) {
		account = uc.account.Viewer()
	}

	result := &ListCasesResult{Mode: mode, Account: account}

	switch mode {
	case ListPersonal:
		if account == (common.Address{}) {
			return nil, domain.ErrNotConnected
		}
	case ListVoting:
		if account == (common.Address{}) {
			return nil, domain.ErrNotConnected
		}
		d, err := uc.resolver.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		ok, err := uc.voters.IsVoter(ctx, d.VoterRegistry, account)
		if err != nil {
			return nil, fmt.Errorf("failed to check voter registry: %w", err)
		}
		if !ok {
			return nil, domain.ErrNotVoter
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading cases",
		Spinner: true,
	})

	count, err := uc.reader.CurrentCaseNum(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read case count: %w", err)
	}
	result.Count = count

	rows, err := uc.fetch(ctx, uc.cfg.Variant.CandidateNumbers(count))
	if err != nil {
		return nil, err
	}

	result.Rows = lo.Filter(rows, func(row CaseRow, _ int) bool {
		if !row.Available() {
			if mode == ListAll {
				return true
			}
			result.Unreadable++
			return false
		}
		if row.Case.IsEmpty() {
			return false
		}
		switch mode {
		case ListPersonal:
			return row.Case.IsParticipant(account)
		case ListVoting:
			return row.Case.Status == domain.CaseStatusVoting || row.Case.Status == domain.CaseStatusExecuted
		default:
			return true
		}
	})
	if mode == ListPersonal {
		slices.Reverse(result.Rows)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loaded",
		Message: fmt.Sprintf("Loaded %d cases", len(result.Rows)),
	})
	return result, nil
}

// fetch reads every candidate concurrently. Individual read errors become
// unavailable rows; only cancellation fails the whole list.
func (uc *ListCases) fetch(ctx context.Context, numbers []uint64) ([]CaseRow, error) {
	rows := make([]CaseRow, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, n := range numbers {
		g.Go(func() error {
			kase, err := uc.reader.Case(gctx, n)
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			rows[i] = CaseRow{Number: n, Case: kase, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
