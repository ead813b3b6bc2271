package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ShowCaseParams contains parameters for showing a case
type ShowCaseParams struct {
	Number uint64
	// Viewer overrides the connected account
	Viewer common.Address
}

// ShowCaseResult is the derived view plus reads that failed softly
type ShowCaseResult struct {
	View *domain.CaseView
	// ResultErr is set when getCaseResult failed; the view then relies on the case struct
	ResultErr error
	// VoterErr is set when the viewer's vote, claim or registration could not be read
	VoterErr error
	// Pending holds the card's local flags when a card exists for this case
	Pending domain.PendingFlags
}

// ShowCase is the use case for the case detail view
type ShowCase struct {
	reader   CaseReader
	voters   VoterRegistry
	resolver *DeploymentResolver
	account  *AccountResolver
	actions  *CaseActions
	clock    Clock
	sink     ProgressSink
}

// NewShowCase creates a new ShowCase use case
func NewShowCase(
	reader CaseReader,
	voters VoterRegistry,
	resolver *DeploymentResolver,
	account *AccountResolver,
	actions *CaseActions,
	clock Clock,
	sink ProgressSink,
) *ShowCase {
	if clock == nil {
		clock = time.Now
	}
	return &ShowCase{
		reader:   reader,
		voters:   voters,
		resolver: resolver,
		account:  account,
		actions:  actions,
		clock:    clock,
		sink:     sink,
	}
}

// Run executes the show case use case
func (uc *ShowCase) Run(ctx context.Context, params ShowCaseParams) (*ShowCaseResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: fmt.Sprintf("Loading case %d", params.Number),
		Spinner: true,
	})

	kase, err := uc.reader.Case(ctx, params.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to read case %d: %w", params.Number, err)
	}
	if kase.IsEmpty() {
		return nil, fmt.Errorf("%w: %d", domain.ErrCaseNotFound, params.Number)
	}

	viewer := params.Viewer
	if viewer == (common.Address{}) {
		viewer = uc.account.Viewer()
	}

	view := &domain.CaseView{
		Case:   kase,
		Viewer: viewer,
		Now:    uc.clock(),
	}
	result := &ShowCaseResult{View: view}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := uc.reader.CaseResult(gctx, params.Number)
		if err != nil {
			result.ResultErr = err
			return nil
		}
		view.Result = res
		return nil
	})
	// Vote reads only matter once voting has started; their failures are soft
	voting := kase.Status == domain.CaseStatusVoting || kase.Status == domain.CaseStatusExecuted
	var choiceErr, claimedErr, voterErr error
	if viewer != (common.Address{}) && voting {
		g.Go(func() error {
			choice, err := uc.reader.VoterChoice(gctx, params.Number, viewer)
			if err != nil {
				choiceErr = fmt.Errorf("failed to read vote choice: %w", err)
				return nil
			}
			view.VoterChoice = choice
			return nil
		})
		g.Go(func() error {
			claimed, err := uc.reader.HasClaimed(gctx, params.Number, viewer)
			if err != nil {
				claimedErr = fmt.Errorf("failed to read claim status: %w", err)
				return nil
			}
			view.HasClaimed = claimed
			return nil
		})
	}
	if viewer != (common.Address{}) && kase.Status == domain.CaseStatusVoting {
		g.Go(func() error {
			ok, err := uc.isVoter(gctx, viewer)
			if err != nil {
				voterErr = fmt.Errorf("failed to read voter registration: %w", err)
				return nil
			}
			view.IsVoter = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.VoterErr = errors.Join(choiceErr, claimedErr, voterErr)

	if uc.actions != nil {
		result.Pending = uc.actions.PendingFor(params.Number)
	}
	return result, nil
}

func (uc *ShowCase) isVoter(ctx context.Context, account common.Address) (bool, error) {
	d, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return false, err
	}
	return uc.voters.IsVoter(ctx, d.VoterRegistry, account)
}
