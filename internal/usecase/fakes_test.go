package usecase_test

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/domain/bindings"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

var (
	contractAddr = common.HexToAddress("0xe2637738db03dbdaed8853502bdd0d1fe95bcd11")
	tokenAddr    = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	voteTokenAdr = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	registryAddr = common.HexToAddress("0x22dad1ada86e7e37aae2792055ab1c9c32fe2c16")
	alice        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob          = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	carol        = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
)

func tokens(s string) *big.Int {
	v, err := domain.ParseUnits(s, domain.TokenDecimals)
	if err != nil {
		panic(err)
	}
	return v
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		Contracts: config.Contracts{Arbitration: contractAddr},
		Variant: domain.Variant{
			StatusSet:          domain.StatusSetCancelled,
			FeeBuffer:          new(big.Int),
			DedicatedVoteToken: domain.VoteTokenNo,
		},
		PollInterval:    time.Hour,
		ApprovalWait:    config.ApprovalWaitReceipt,
		ApprovalDelay:   10 * time.Millisecond,
		ApprovalTimeout: 5 * time.Second,
		TxTimeout:       5 * time.Second,
	}
}

func newCase(number uint64, a, b common.Address, status domain.CaseStatus) *domain.Case {
	return &domain.Case{
		Number:         number,
		Name:           fmt.Sprintf("case %d", number),
		ParticipantA:   a,
		ParticipantB:   b,
		CompensationA:  tokens("1"),
		CompensationB:  tokens("1"),
		DepositedA:     new(big.Int),
		DepositedB:     new(big.Int),
		Status:         status,
		VotingDuration: 86400,
	}
}

type holding struct {
	token, owner common.Address
}

type allowing struct {
	token, owner, spender common.Address
}

// fakeChain is an in-memory arbitration deployment
type fakeChain struct {
	mu sync.Mutex

	running         bool
	cases           map[uint64]*domain.Case
	caseErrs        map[uint64]error
	results         map[uint64]*domain.CaseResult
	count           uint64
	voteTokenAmount *big.Int
	voteToken       common.Address
	voteTokenErr    error
	compToken       common.Address
	feeBps          uint64
	feeErr          error
	registry        common.Address
	voters          map[common.Address]bool
	choices         map[common.Address]common.Address
	claimed         map[common.Address]bool
	choiceErr       error
	voterErr        error
	balances        map[holding]*big.Int
	allowances      map[allowing]*big.Int
	symbol          string
	caseReads       int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		running:         true,
		cases:           make(map[uint64]*domain.Case),
		caseErrs:        make(map[uint64]error),
		results:         make(map[uint64]*domain.CaseResult),
		voteTokenAmount: tokens("1"),
		voteTokenErr:    fmt.Errorf("execution reverted"),
		compToken:       tokenAddr,
		feeBps:          100,
		registry:        registryAddr,
		voters:          make(map[common.Address]bool),
		choices:         make(map[common.Address]common.Address),
		claimed:         make(map[common.Address]bool),
		balances:        make(map[holding]*big.Int),
		allowances:      make(map[allowing]*big.Int),
		symbol:          "FERC20",
	}
}

func (c *fakeChain) addCase(kase *domain.Case) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cases[kase.Number] = kase
	if kase.Number+1 > c.count {
		c.count = kase.Number + 1
	}
}

func (c *fakeChain) fund(token, owner common.Address, balance, allowance *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[holding{token, owner}] = balance
	c.allowances[allowing{token, owner, contractAddr}] = allowance
}

func (c *fakeChain) IsRunning(context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running, nil
}

func (c *fakeChain) CurrentCaseNum(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count, nil
}

func (c *fakeChain) Case(_ context.Context, number uint64) (*domain.Case, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.caseReads++
	if err := c.caseErrs[number]; err != nil {
		return nil, err
	}
	if kase, ok := c.cases[number]; ok {
		cp := *kase
		return &cp, nil
	}
	return &domain.Case{Number: number}, nil
}

func (c *fakeChain) CaseResult(_ context.Context, number uint64) (*domain.CaseResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.results[number]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("execution reverted")
}

func (c *fakeChain) VoterChoice(_ context.Context, _ uint64, voter common.Address) (common.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.choiceErr != nil {
		return common.Address{}, c.choiceErr
	}
	return c.choices[voter], nil
}

func (c *fakeChain) HasClaimed(_ context.Context, _ uint64, voter common.Address) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.claimed[voter], nil
}

func (c *fakeChain) VoteTokenAmount(context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return new(big.Int).Set(c.voteTokenAmount), nil
}

func (c *fakeChain) VoteToken(context.Context) (common.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voteToken, c.voteTokenErr
}

func (c *fakeChain) CompensationToken(context.Context) (common.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compToken, nil
}

func (c *fakeChain) FeeRate(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feeBps, c.feeErr
}

func (c *fakeChain) VoterRegistry(context.Context) (common.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry, nil
}

func (c *fakeChain) BalanceOf(_ context.Context, token, owner common.Address) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.balances[holding{token, owner}]; ok {
		return new(big.Int).Set(v), nil
	}
	return new(big.Int), nil
}

func (c *fakeChain) Allowance(_ context.Context, token, owner, spender common.Address) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.allowances[allowing{token, owner, spender}]; ok {
		return new(big.Int).Set(v), nil
	}
	return new(big.Int), nil
}

func (c *fakeChain) Symbol(context.Context, common.Address) (string, error) {
	return c.symbol, nil
}

func (c *fakeChain) Decimals(context.Context, common.Address) (uint8, error) {
	return domain.TokenDecimals, nil
}

func (c *fakeChain) IsVoter(_ context.Context, registry, account common.Address) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if registry != c.registry {
		return false, fmt.Errorf("unknown registry %s", registry.Hex())
	}
	if c.voterErr != nil {
		return false, c.voterErr
	}
	return c.voters[account], nil
}

var (
	_ usecase.CaseReader    = (*fakeChain)(nil)
	_ usecase.TokenReader   = (*fakeChain)(nil)
	_ usecase.VoterRegistry = (*fakeChain)(nil)
)

// fakeTx mines every transaction against fakeChain. Approvals update the
// chain's allowance once their receipt is requested.
type fakeTx struct {
	chain  *fakeChain
	from   common.Address
	signer bool

	mu       sync.Mutex
	sent     []usecase.TxRequest
	hashes   map[common.Hash]usecase.TxRequest
	sendErr  map[string]error
	reverts  map[string]bool
	holds    map[string]chan struct{}
	sentCh   chan string
	mineHook func(req usecase.TxRequest) []*types.Log
}

func newFakeTx(chain *fakeChain, from common.Address) *fakeTx {
	return &fakeTx{
		chain:   chain,
		from:    from,
		signer:  true,
		hashes:  make(map[common.Hash]usecase.TxRequest),
		sendErr: make(map[string]error),
		reverts: make(map[string]bool),
		holds:   make(map[string]chan struct{}),
		sentCh:  make(chan string, 32),
	}
}

// hold makes receipts for label block until the returned func is called
func (f *fakeTx) hold(label string) func() {
	ch := make(chan struct{})
	f.mu.Lock()
	f.holds[label] = ch
	f.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

func (f *fakeTx) labels() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, req := range f.sent {
		out = append(out, req.Label)
	}
	return out
}

func (f *fakeTx) request(i int) usecase.TxRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[i]
}

func (f *fakeTx) From() (common.Address, bool) {
	return f.from, f.signer
}

func (f *fakeTx) Send(_ context.Context, req usecase.TxRequest) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.sendErr[req.Label]; err != nil {
		return common.Hash{}, err
	}
	f.sent = append(f.sent, req)
	hash := common.BigToHash(big.NewInt(int64(len(f.sent))))
	f.hashes[hash] = req
	f.sentCh <- req.Label
	return hash, nil
}

func (f *fakeTx) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	req, ok := f.hashes[hash]
	hold := f.holds[req.Label]
	revert := f.reverts[req.Label]
	hook := f.mineHook
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown transaction %s", hash.Hex())
	}

	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	receipt := &types.Receipt{TxHash: hash, BlockNumber: big.NewInt(1), Status: types.ReceiptStatusSuccessful}
	if revert {
		receipt.Status = types.ReceiptStatusFailed
		return receipt, domain.ErrTransactionReverted
	}
	if req.Label == "approve" {
		f.applyApprove(req)
	}
	if hook != nil {
		receipt.Logs = hook(req)
	}
	return receipt, nil
}

func (f *fakeTx) applyApprove(req usecase.TxRequest) {
	args, err := bindings.NewERC20().ABI().Methods["approve"].Inputs.Unpack(req.Data[4:])
	if err != nil {
		panic(err)
	}
	spender := args[0].(common.Address)
	amount := args[1].(*big.Int)
	f.chain.mu.Lock()
	f.chain.allowances[allowing{req.To, f.from, spender}] = amount
	f.chain.mu.Unlock()
}

var _ usecase.Transactor = (*fakeTx)(nil)

// recordingSink keeps every progress event and message
type recordingSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (s *recordingSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, message)
}

func (s *recordingSink) Error(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, message)
}

func (s *recordingSink) stages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Stage)
	}
	return out
}

func (s *recordingSink) messages() (infos, errs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.infos...), append([]string(nil), s.errors...)
}
