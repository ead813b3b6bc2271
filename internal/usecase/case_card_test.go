package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/domain/bindings"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

type cardFixture struct {
	t       *testing.T
	cfg     *config.RuntimeConfig
	chain   *fakeChain
	tx      *fakeTx
	sink    *recordingSink
	actions *usecase.CaseActions
	cache   *usecase.CaseCache
}

func newCardFixture(t *testing.T, cfg *config.RuntimeConfig) *cardFixture {
	t.Helper()
	chain := newFakeChain()
	chain.addCase(newCase(0, alice, bob, domain.CaseStatusActivated))

	tx := newFakeTx(chain, alice)
	resolver := usecase.NewDeploymentResolver(cfg, chain, chain, quietLogger())
	funds := usecase.NewFundsMonitor(cfg, chain)
	cache := usecase.NewCaseCache(cfg, chain, nil)
	sink := &recordingSink{}
	actions := usecase.NewCaseActions(cfg, resolver, funds, cache, chain, tx, sink, quietLogger())
	t.Cleanup(actions.Close)

	return &cardFixture{t: t, cfg: cfg, chain: chain, tx: tx, sink: sink, actions: actions, cache: cache}
}

// hold blocks receipts for label until the test releases them or ends
func (f *cardFixture) hold(label string) func() {
	release := f.tx.hold(label)
	f.t.Cleanup(release)
	return release
}

func unpackArgs(t *testing.T, method string, data []byte) []interface{} {
	t.Helper()
	parsed := bindings.NewArbitration().ABI()
	if method == "approve" {
		parsed = bindings.NewERC20().ABI()
	}
	args, err := parsed.Methods[method].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	return args
}

func TestCaseCardStake(t *testing.T) {
	ctx := context.Background()

	t.Run("sufficient allowance skips approval", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.fund(tokenAddr, alice, tokens("10"), tokens("10"))
		release := f.hold("stakeCompensation")

		card := f.actions.Card(0)
		sub, err := card.Stake(ctx, domain.SideA, tokens("1"))
		require.NoError(t, err)

		assert.Equal(t, []string{"stakeCompensation"}, f.tx.labels())
		assert.True(t, card.Pending().Has(domain.PendingStakeA))
		assert.True(t, f.actions.PendingFor(0).Has(domain.PendingStakeA))

		args := unpackArgs(t, "stakeCompensation", f.tx.request(0).Data)
		assert.Equal(t, int64(0), args[0].(*big.Int).Int64())
		assert.Equal(t, true, args[1])
		assert.Equal(t, 0, args[2].(*big.Int).Cmp(tokens("1")), "the fee is never added to the submitted amount")
		assert.Equal(t, contractAddr, f.tx.request(0).To)

		release()
		_, err = sub.Wait(ctx)
		require.NoError(t, err)
		assert.True(t, card.Pending().Empty())
		assert.Equal(t, usecase.FlowIdle, card.State())

		infos, _ := f.sink.messages()
		require.Len(t, infos, 1)
		assert.Contains(t, infos[0], "stake-a confirmed")
		assert.Eventually(t, func() bool {
			f.chain.mu.Lock()
			defer f.chain.mu.Unlock()
			return f.chain.caseReads > 0
		}, time.Second, 5*time.Millisecond, "confirmation refreshes the case")
	})

	t.Run("approval precedes the stake", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.fund(tokenAddr, alice, tokens("10"), new(big.Int))

		card := f.actions.Card(0)
		sub, err := card.Stake(ctx, domain.SideB, tokens("1"))
		require.NoError(t, err)
		_, err = sub.Wait(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"approve", "stakeCompensation"}, f.tx.labels())

		approve := unpackArgs(t, "approve", f.tx.request(0).Data)
		assert.Equal(t, contractAddr, approve[0])
		assert.Equal(t, 0, approve[1].(*big.Int).Cmp(tokens("1.01")), "approval covers amount plus the fee")
		assert.Equal(t, tokenAddr, f.tx.request(0).To)

		stake := unpackArgs(t, "stakeCompensation", f.tx.request(1).Data)
		assert.Equal(t, false, stake[1])
		assert.Equal(t, 0, stake[2].(*big.Int).Cmp(tokens("1")))

		assert.Subset(t, f.sink.stages(), []string{"checking-funds", "approving", "awaiting-approval", "submitting"})
		assert.True(t, card.Pending().Empty())
	})

	t.Run("insufficient balance aborts before any transaction", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.fund(tokenAddr, alice, tokens("1"), tokens("10"))

		card := f.actions.Card(0)
		_, err := card.Stake(ctx, domain.SideA, tokens("1"))

		var insufficient domain.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 0, insufficient.Required.Cmp(tokens("1.01")))
		assert.Equal(t, 0, insufficient.Available.Cmp(tokens("1")))
		assert.Equal(t, "insufficient balance: need 1.01 FERC20, have 1", err.Error())

		assert.Empty(t, f.tx.labels())
		assert.True(t, card.Pending().Empty())
		assert.Equal(t, usecase.FlowAborted, card.State())
	})

	t.Run("fee buffer is part of the requirement", func(t *testing.T) {
		cfg := testConfig()
		cfg.Variant.FeeBuffer = tokens("1")
		f := newCardFixture(t, cfg)
		f.chain.fund(tokenAddr, alice, tokens("2"), tokens("10"))

		_, err := f.actions.Card(0).Stake(ctx, domain.SideA, tokens("1"))
		var insufficient domain.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 0, insufficient.Required.Cmp(tokens("2.01")))
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		_, err := f.actions.Card(0).Stake(ctx, domain.SideA, new(big.Int))
		var validation domain.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "amount", validation.Field)
	})

	t.Run("same side cannot be staked twice while pending", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.fund(tokenAddr, alice, tokens("10"), tokens("10"))
		f.hold("stakeCompensation")

		card := f.actions.Card(0)
		_, err := card.Stake(ctx, domain.SideA, tokens("1"))
		require.NoError(t, err)

		_, err = card.Stake(ctx, domain.SideA, tokens("1"))
		require.ErrorIs(t, err, domain.ErrActionPending)

		_, err = card.Stake(ctx, domain.SideB, tokens("1"))
		require.NoError(t, err, "the other side is independent")
		assert.True(t, card.Pending().Has(domain.PendingStakeA))
		assert.True(t, card.Pending().Has(domain.PendingStakeB))
		assert.Equal(t, []string{"stakeCompensation", "stakeCompensation"}, f.tx.labels())
	})

	t.Run("reverted approval clears flags and skips the stake", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.fund(tokenAddr, alice, tokens("10"), new(big.Int))
		f.tx.reverts["approve"] = true

		card := f.actions.Card(0)
		_, err := card.Stake(ctx, domain.SideA, tokens("1"))
		require.ErrorIs(t, err, domain.ErrApprovalNotConfirmed)
		assert.Contains(t, err.Error(), "retry stake-a manually")

		assert.Equal(t, []string{"approve"}, f.tx.labels())
		assert.True(t, card.Pending().Empty())
	})

	t.Run("approval that never confirms times out", func(t *testing.T) {
		cfg := testConfig()
		cfg.ApprovalTimeout = 20 * time.Millisecond
		f := newCardFixture(t, cfg)
		f.chain.fund(tokenAddr, alice, tokens("10"), new(big.Int))
		f.hold("approve")

		card := f.actions.Card(0)
		_, err := card.Stake(ctx, domain.SideA, tokens("1"))
		require.ErrorIs(t, err, domain.ErrApprovalNotConfirmed)
		assert.Equal(t, []string{"approve"}, f.tx.labels())
		assert.False(t, card.Pending().Has(domain.PendingStakeA))
		assert.False(t, card.Pending().Has(domain.PendingApprove))
	})

	t.Run("delay mode proceeds without the approval receipt", func(t *testing.T) {
		cfg := testConfig()
		cfg.ApprovalWait = config.ApprovalWaitDelay
		cfg.ApprovalDelay = 10 * time.Millisecond
		f := newCardFixture(t, cfg)
		f.chain.fund(tokenAddr, alice, tokens("10"), new(big.Int))
		f.hold("approve")

		start := time.Now()
		_, err := f.actions.Card(0).Stake(ctx, domain.SideA, tokens("1"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
		assert.Equal(t, []string{"approve", "stakeCompensation"}, f.tx.labels())
	})

	t.Run("no signer", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.tx.signer = false

		_, err := f.actions.Card(0).Stake(ctx, domain.SideA, tokens("1"))
		require.ErrorIs(t, err, domain.ErrNoSigner)
		_, err = f.actions.Card(0).Execute(ctx)
		require.ErrorIs(t, err, domain.ErrNoSigner)
	})
}

func TestCaseCardVote(t *testing.T) {
	ctx := context.Background()

	t.Run("votes for the participant on the chosen side without a fee", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.addCase(newCase(1, alice, bob, domain.CaseStatusVoting))
		f.tx.from = carol
		f.chain.voters[carol] = true
		f.chain.fund(tokenAddr, carol, tokens("1"), tokens("1"))
		f.hold("vote")

		card := f.actions.Card(1)
		_, err := card.Vote(ctx, domain.SideB)
		require.NoError(t, err)
		assert.Equal(t, []string{"vote"}, f.tx.labels())

		args := unpackArgs(t, "vote", f.tx.request(0).Data)
		assert.Equal(t, int64(1), args[0].(*big.Int).Int64())
		assert.Equal(t, bob, args[1])

		assert.True(t, card.Pending().Has(domain.PendingVoteB))
		_, err = card.Vote(ctx, domain.SideA)
		require.ErrorIs(t, err, domain.ErrActionPending, "votes exclude each other")
	})

	t.Run("dedicated vote token is checked instead of the compensation token", func(t *testing.T) {
		cfg := testConfig()
		cfg.Variant.DedicatedVoteToken = domain.VoteTokenYes
		cfg.Contracts.VoteToken = voteTokenAdr
		f := newCardFixture(t, cfg)
		f.chain.addCase(newCase(1, alice, bob, domain.CaseStatusVoting))
		f.chain.voters[alice] = true
		f.chain.fund(tokenAddr, alice, tokens("100"), tokens("100"))

		_, err := f.actions.Card(1).Vote(ctx, domain.SideA)
		var insufficient domain.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, "vote tokens", insufficient.Token)

		f.chain.fund(voteTokenAdr, alice, tokens("1"), new(big.Int))
		sub, err := f.actions.Card(1).Vote(ctx, domain.SideA)
		require.NoError(t, err)
		_, err = sub.Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"approve", "vote"}, f.tx.labels())
		assert.Equal(t, voteTokenAdr, f.tx.request(0).To)
	})

	t.Run("unregistered voters send nothing", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.addCase(newCase(1, alice, bob, domain.CaseStatusVoting))
		f.tx.from = carol
		f.chain.fund(tokenAddr, carol, tokens("5"), new(big.Int))

		card := f.actions.Card(1)
		_, err := card.Vote(ctx, domain.SideA)
		require.ErrorIs(t, err, domain.ErrNotVoter)
		assert.Empty(t, f.tx.labels())
		assert.True(t, card.Pending().Empty())
	})

	t.Run("registry read failure sends nothing", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.chain.addCase(newCase(1, alice, bob, domain.CaseStatusVoting))
		f.chain.voters[alice] = true
		f.chain.voterErr = errors.New("connection reset")
		f.chain.fund(tokenAddr, alice, tokens("5"), tokens("5"))

		_, err := f.actions.Card(1).Vote(ctx, domain.SideA)
		require.ErrorContains(t, err, "connection reset")
		assert.Empty(t, f.tx.labels())
	})

	t.Run("missing case", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		_, err := f.actions.Card(9).Vote(ctx, domain.SideA)
		require.ErrorIs(t, err, domain.ErrCaseNotFound)
		assert.Empty(t, f.tx.labels())
	})
}

func TestCaseCardSimpleActions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		label  string
		flag   domain.PendingAction
		invoke func(*usecase.CaseCard) (*usecase.Submission, error)
	}{
		{"start voting", "startCaseVoting", domain.PendingStartVoting, func(c *usecase.CaseCard) (*usecase.Submission, error) { return c.StartVoting(ctx) }},
		{"execute", "executeCase", domain.PendingExecute, func(c *usecase.CaseCard) (*usecase.Submission, error) { return c.Execute(ctx) }},
		{"claim", "claimVotePool", domain.PendingClaim, func(c *usecase.CaseCard) (*usecase.Submission, error) { return c.Claim(ctx) }},
		{"cancel", "cancelCase", domain.PendingCancel, func(c *usecase.CaseCard) (*usecase.Submission, error) { return c.Cancel(ctx) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCardFixture(t, testConfig())
			release := f.hold(tt.label)
			card := f.actions.Card(0)

			sub, err := tt.invoke(card)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.label}, f.tx.labels())
			assert.True(t, card.Pending().Has(tt.flag))

			_, err = tt.invoke(card)
			require.ErrorIs(t, err, domain.ErrActionPending)

			release()
			_, err = sub.Wait(ctx)
			require.NoError(t, err)
			assert.True(t, card.Pending().Empty())
		})
	}

	t.Run("failure is reported and clears the flag", func(t *testing.T) {
		f := newCardFixture(t, testConfig())
		f.tx.reverts["executeCase"] = true
		card := f.actions.Card(0)

		sub, err := card.Execute(ctx)
		require.NoError(t, err)
		_, err = sub.Wait(ctx)
		require.ErrorIs(t, err, domain.ErrTransactionReverted)

		assert.True(t, card.Pending().Empty())
		_, errs := f.sink.messages()
		require.Len(t, errs, 1)
		assert.True(t, strings.HasPrefix(errs[0], "Case 0: execute failed"))
	})
}

func TestCaseActionsPendingFor(t *testing.T) {
	f := newCardFixture(t, testConfig())
	assert.True(t, f.actions.PendingFor(0).Empty(), "no card yet")
	assert.Same(t, f.actions.Card(0), f.actions.Card(0))
	assert.True(t, f.actions.PendingFor(0).Empty())
}
