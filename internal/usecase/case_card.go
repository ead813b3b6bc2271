package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/domain/bindings"
)

// FlowState is the orchestrator state of the most recent flow on a card
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowCheckingFunds
	FlowApproving
	FlowAwaitingApproval
	FlowPerformingPrimary
	FlowAborted
)

func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowCheckingFunds:
		return "checking funds"
	case FlowApproving:
		return "approving"
	case FlowAwaitingApproval:
		return "awaiting approval confirmation"
	case FlowPerformingPrimary:
		return "performing action"
	case FlowAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// CaseSubmitters holds one submitter per mutating call of a case card.
// Stakes get one submitter per side since both sides may be in flight.
type CaseSubmitters struct {
	StakeA      *Submitter
	StakeB      *Submitter
	Approve     *Submitter
	StartVoting *Submitter
	Vote        *Submitter
	Execute     *Submitter
	Claim       *Submitter
	Cancel      *Submitter
}

// NewCaseSubmitters creates the submitters for one case card
func NewCaseSubmitters(tx Transactor, txTimeout time.Duration, log *slog.Logger) *CaseSubmitters {
	return &CaseSubmitters{
		StakeA:      NewSubmitter("stakeCompensation", tx, txTimeout, log),
		StakeB:      NewSubmitter("stakeCompensation", tx, txTimeout, log),
		Approve:     NewSubmitter("approve", tx, txTimeout, log),
		StartVoting: NewSubmitter("startCaseVoting", tx, txTimeout, log),
		Vote:        NewSubmitter("vote", tx, txTimeout, log),
		Execute:     NewSubmitter("executeCase", tx, txTimeout, log),
		Claim:       NewSubmitter("claimVotePool", tx, txTimeout, log),
		Cancel:      NewSubmitter("cancelCase", tx, txTimeout, log),
	}
}

func (s *CaseSubmitters) primaries() []*Submitter {
	return []*Submitter{s.StakeA, s.StakeB, s.StartVoting, s.Vote, s.Execute, s.Claim, s.Cancel}
}

// Close waits for every in-flight submission
func (s *CaseSubmitters) Close() {
	for _, sub := range append(s.primaries(), s.Approve) {
		sub.Close()
	}
}

// CaseCard orchestrates the multi-step write flows of one case and owns
// its local pending flags. Flags are never persisted.
type CaseCard struct {
	number   uint64
	cfg      *config.RuntimeConfig
	resolver *DeploymentResolver
	funds    *FundsMonitor
	cache    *CaseCache
	voters   VoterRegistry
	tx       Transactor
	subs     *CaseSubmitters
	sink     ProgressSink
	log      *slog.Logger
	arb      *bindings.Arbitration
	erc20    *bindings.ERC20

	mu       sync.Mutex
	flags    domain.PendingFlags
	state    FlowState
	flowID   string
	inflight map[*Submitter]domain.PendingAction
	wg       sync.WaitGroup
}

func newCaseCard(number uint64, a *CaseActions) *CaseCard {
	c := &CaseCard{
		number:   number,
		cfg:      a.cfg,
		resolver: a.resolver,
		funds:    a.funds,
		cache:    a.cache,
		voters:   a.voters,
		tx:       a.tx,
		subs:     NewCaseSubmitters(a.tx, a.cfg.TxTimeout, a.log),
		sink:     a.sink,
		log:      a.log.With("case", number),
		arb:      bindings.NewArbitration(),
		erc20:    bindings.NewERC20(),
		inflight: make(map[*Submitter]domain.PendingAction),
	}
	for _, sub := range c.subs.primaries() {
		sub.OnChange(func(prev, next SubmitStatus) {
			if prev.IsLoading() && !next.IsLoading() {
				c.settle(sub, next)
			}
		})
	}
	return c
}

// Number is the case this card operates on
func (c *CaseCard) Number() uint64 { return c.number }

// Pending returns the local pending flags
func (c *CaseCard) Pending() domain.PendingFlags {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flags
}

// State returns the orchestrator state of the latest flow
func (c *CaseCard) State() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submitters exposes the card's submitters for status rendering
func (c *CaseCard) Submitters() *CaseSubmitters { return c.subs }

// Stake deposits amount of the compensation token for side. The balance
// must cover amount plus fee and buffer; the submitted amount excludes them.
func (c *CaseCard) Stake(ctx context.Context, side domain.Side, amount *big.Int) (*Submission, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	d, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	required, err := d.FeePolicy(c.cfg.Variant).RequiredAmount(amount)
	if err != nil {
		return nil, err
	}

	primary := c.subs.StakeA
	if side == domain.SideB {
		primary = c.subs.StakeB
	}
	return c.spend(ctx, spendFlow{
		action:   domain.StakeAction(side),
		token:    d.CompensationToken,
		symbol:   d.TokenSymbol,
		spender:  d.Contract,
		required: required,
		primary:  primary,
		req: TxRequest{
			Label: "stakeCompensation",
			To:    d.Contract,
			Data:  c.arb.PackStakeCompensation(c.bigNumber(), side == domain.SideA, amount),
		},
	})
}

// Vote stakes voteTokenAmount of the vote token for the participant on side.
// Votes carry no fee. Accounts the voter registry does not recognise are
// rejected before any transaction.
func (c *CaseCard) Vote(ctx context.Context, side domain.Side) (*Submission, error) {
	d, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	kase, err := c.loadCase(ctx)
	if err != nil {
		return nil, err
	}
	owner, ok := c.tx.From()
	if !ok {
		return nil, domain.ErrNoSigner
	}
	voter, err := c.voters.IsVoter(ctx, d.VoterRegistry, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to check voter registration: %w", err)
	}
	if !voter {
		return nil, domain.ErrNotVoter
	}

	symbol := d.TokenSymbol
	if d.DedicatedVoteToken() {
		symbol = "vote tokens"
	}
	return c.spend(ctx, spendFlow{
		action:   domain.VoteAction(side),
		token:    d.VoteToken,
		symbol:   symbol,
		spender:  d.Contract,
		required: new(big.Int).Set(d.VoteTokenAmount),
		primary:  c.subs.Vote,
		req: TxRequest{
			Label: "vote",
			To:    d.Contract,
			Data:  c.arb.PackVote(c.bigNumber(), kase.Participant(side)),
		},
	})
}

// StartVoting moves an activated case into voting
func (c *CaseCard) StartVoting(ctx context.Context) (*Submission, error) {
	return c.simple(ctx, domain.PendingStartVoting, c.subs.StartVoting, "startCaseVoting", c.arb.PackStartCaseVoting(c.bigNumber()))
}

// Execute settles a case whose voting has ended
func (c *CaseCard) Execute(ctx context.Context) (*Submission, error) {
	return c.simple(ctx, domain.PendingExecute, c.subs.Execute, "executeCase", c.arb.PackExecuteCase(c.bigNumber()))
}

// Claim collects the viewer's share of the vote pool
func (c *CaseCard) Claim(ctx context.Context) (*Submission, error) {
	return c.simple(ctx, domain.PendingClaim, c.subs.Claim, "claimVotePool", c.arb.PackClaimVotePool(c.bigNumber()))
}

// Cancel withdraws a case before voting
func (c *CaseCard) Cancel(ctx context.Context) (*Submission, error) {
	return c.simple(ctx, domain.PendingCancel, c.subs.Cancel, "cancelCase", c.arb.PackCancelCase(c.bigNumber()))
}

type spendFlow struct {
	action   domain.PendingAction
	token    common.Address
	symbol   string
	spender  common.Address
	required *big.Int
	primary  *Submitter
	req      TxRequest
}

func (c *CaseCard) spend(ctx context.Context, f spendFlow) (*Submission, error) {
	owner, ok := c.tx.From()
	if !ok {
		return nil, domain.ErrNoSigner
	}
	flowID, err := c.begin(f.action)
	if err != nil {
		return nil, err
	}
	log := c.log.With("flow", flowID, "action", f.action.String())

	c.setState(FlowCheckingFunds)
	c.progress(ctx, "checking-funds", "Checking balance and allowance", flowID)
	check, err := c.funds.Check(ctx, f.token, owner, f.spender, f.required)
	if err != nil {
		c.abort(f.action)
		return nil, err
	}
	if !check.Sufficient() {
		c.abort(f.action)
		log.Info("insufficient balance", "required", check.Required, "available", check.Balance)
		return nil, domain.InsufficientFundsError{
			Token:     f.symbol,
			Required:  check.Required,
			Available: check.Balance,
		}
	}

	if check.NeedsApproval() {
		c.mu.Lock()
		c.flags = c.flags.With(domain.PendingApprove)
		c.state = FlowApproving
		c.mu.Unlock()

		c.progress(ctx, "approving", fmt.Sprintf("Approving %s %s", domain.FormatUnits(f.required, domain.TokenDecimals), f.symbol), flowID)
		approval := c.subs.Approve.Submit(ctx, TxRequest{
			Label: "approve",
			To:    f.token,
			Data:  c.erc20.PackApprove(f.spender, f.required),
		})

		c.setState(FlowAwaitingApproval)
		c.progress(ctx, "awaiting-approval", "Waiting for approval confirmation", flowID)
		if err := c.awaitApproval(ctx, approval, f, owner); err != nil {
			c.mu.Lock()
			c.flags = c.flags.Without(f.action, domain.PendingApprove)
			c.state = FlowIdle
			c.mu.Unlock()
			log.Warn("approval not confirmed", "error", err)
			return nil, fmt.Errorf("%w; retry %s manually", err, f.action)
		}
	}

	c.mu.Lock()
	c.flags = c.flags.Without(domain.PendingApprove).With(f.action)
	c.state = FlowPerformingPrimary
	c.inflight[f.primary] = f.action
	c.mu.Unlock()

	c.progress(ctx, "submitting", fmt.Sprintf("Submitting %s", f.req.Label), flowID)
	sub := f.primary.Submit(ctx, f.req)
	c.setState(FlowIdle)
	return sub, nil
}

func (c *CaseCard) awaitApproval(ctx context.Context, approval *Submission, f spendFlow, owner common.Address) error {
	if c.cfg.ApprovalWait == config.ApprovalWaitDelay {
		timer := time.NewTimer(c.cfg.ApprovalDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", domain.ErrApprovalNotConfirmed, ctx.Err())
		}
	}

	wctx := ctx
	if c.cfg.ApprovalTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, c.cfg.ApprovalTimeout)
		defer cancel()
	}
	if _, err := approval.Wait(wctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrApprovalNotConfirmed, err)
	}

	allowance, err := c.funds.Allowance(f.token, owner, f.spender).Refetch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrApprovalNotConfirmed, err)
	}
	if allowance.Cmp(f.required) < 0 {
		return fmt.Errorf("%w: allowance %s is below the required %s", domain.ErrApprovalNotConfirmed,
			domain.FormatUnits(allowance, domain.TokenDecimals), domain.FormatUnits(f.required, domain.TokenDecimals))
	}
	return nil
}

func (c *CaseCard) simple(ctx context.Context, action domain.PendingAction, sub *Submitter, label string, data []byte) (*Submission, error) {
	if _, ok := c.tx.From(); !ok {
		return nil, domain.ErrNoSigner
	}
	d, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	flowID, err := c.begin(action)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state = FlowPerformingPrimary
	c.inflight[sub] = action
	c.mu.Unlock()

	c.progress(ctx, "submitting", fmt.Sprintf("Submitting %s", label), flowID)
	submission := sub.Submit(ctx, TxRequest{Label: label, To: d.Contract, Data: data})
	c.setState(FlowIdle)
	return submission, nil
}

// begin rejects conflicting triggers and sets the action's flag
func (c *CaseCard) begin(action domain.PendingAction) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.flags.Any(domain.Conflicts(action)) {
		return "", fmt.Errorf("%w: %s", domain.ErrActionPending, c.flags)
	}
	c.flags = c.flags.With(action)
	c.flowID = uuid.NewString()
	c.state = FlowIdle
	return c.flowID, nil
}

func (c *CaseCard) abort(action domain.PendingAction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flags = c.flags.Without(action)
	c.state = FlowAborted
}

func (c *CaseCard) setState(s FlowState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// settle clears the flag of a submission that stopped loading, whatever its outcome
func (c *CaseCard) settle(sub *Submitter, st SubmitStatus) {
	c.mu.Lock()
	action, ok := c.inflight[sub]
	if ok {
		delete(c.inflight, sub)
		c.flags = c.flags.Without(action)
	}
	c.mu.Unlock()
	if !ok {
		return
	}

	if st.Phase == SubmitConfirmed {
		c.sink.Info(fmt.Sprintf("Case %d: %s confirmed in %s", c.number, action, st.Hash.Hex()))
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := c.cache.Refresh(ctx, c.number); err != nil {
				c.log.Debug("refresh after confirmation failed", "error", err)
			}
		}()
		return
	}
	c.sink.Error(fmt.Sprintf("Case %d: %s failed: %v", c.number, action, st.Err))
}

func (c *CaseCard) loadCase(ctx context.Context) (*domain.Case, error) {
	kase, ok := c.cache.Case(c.number).Data()
	if !ok {
		var err error
		if kase, err = c.cache.Case(c.number).Refetch(ctx); err != nil {
			return nil, err
		}
	}
	if kase.IsEmpty() {
		return nil, fmt.Errorf("%w: %d", domain.ErrCaseNotFound, c.number)
	}
	return kase, nil
}

func (c *CaseCard) progress(ctx context.Context, stage, message, flowID string) {
	c.sink.OnProgress(ctx, ProgressEvent{
		Stage:    stage,
		Message:  message,
		Spinner:  true,
		Metadata: map[string]any{"case": c.number, "flow": flowID},
	})
}

func (c *CaseCard) bigNumber() *big.Int {
	return new(big.Int).SetUint64(c.number)
}

// Close waits for in-flight submissions and follow-up refreshes
func (c *CaseCard) Close() {
	c.subs.Close()
	c.wg.Wait()
}

// CaseActions hands out one card per case
type CaseActions struct {
	cfg      *config.RuntimeConfig
	resolver *DeploymentResolver
	funds    *FundsMonitor
	cache    *CaseCache
	voters   VoterRegistry
	tx       Transactor
	sink     ProgressSink
	log      *slog.Logger

	mu    sync.Mutex
	cards map[uint64]*CaseCard
}

// NewCaseActions creates a new CaseActions
func NewCaseActions(
	cfg *config.RuntimeConfig,
	resolver *DeploymentResolver,
	funds *FundsMonitor,
	cache *CaseCache,
	voters VoterRegistry,
	tx Transactor,
	sink ProgressSink,
	log *slog.Logger,
) *CaseActions {
	if sink == nil {
		sink = NopProgress{}
	}
	return &CaseActions{
		cfg:      cfg,
		resolver: resolver,
		funds:    funds,
		cache:    cache,
		voters:   voters,
		tx:       tx,
		sink:     sink,
		log:      log,
		cards:    make(map[uint64]*CaseCard),
	}
}

// Card returns the card for a case, creating it on first use
func (a *CaseActions) Card(number uint64) *CaseCard {
	a.mu.Lock()
	defer a.mu.Unlock()
	card, ok := a.cards[number]
	if !ok {
		card = newCaseCard(number, a)
		a.cards[number] = card
	}
	return card
}

// PendingFor returns the local flags of a case without creating its card
func (a *CaseActions) PendingFor(number uint64) domain.PendingFlags {
	a.mu.Lock()
	card, ok := a.cards[number]
	a.mu.Unlock()
	if !ok {
		return 0
	}
	return card.Pending()
}

// SetProgressSink replaces the sink used by cards created afterwards
func (a *CaseActions) SetProgressSink(sink ProgressSink) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sink = sink
}

// Close waits for every card's in-flight work
func (a *CaseActions) Close() {
	a.mu.Lock()
	cards := make([]*CaseCard, 0, len(a.cards))
	for _, card := range a.cards {
		cards = append(cards, card)
	}
	a.mu.Unlock()

	for _, card := range cards {
		card.Close()
	}
}
