package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

func newListCases(cfg *config.RuntimeConfig, chain *fakeChain, tx *fakeTx) *usecase.ListCases {
	resolver := usecase.NewDeploymentResolver(cfg, chain, chain, quietLogger())
	account := usecase.NewAccountResolver(cfg, tx)
	return usecase.NewListCases(cfg, chain, chain, resolver, account, &recordingSink{})
}

func rowNumbers(rows []usecase.CaseRow) []uint64 {
	return lo.Map(rows, func(r usecase.CaseRow, _ int) uint64 { return r.Number })
}

func seededChain() *fakeChain {
	chain := newFakeChain()
	chain.addCase(newCase(0, alice, bob, domain.CaseStatusExecuted))
	chain.addCase(newCase(1, bob, carol, domain.CaseStatusVoting))
	chain.addCase(newCase(2, carol, alice, domain.CaseStatusActivated))
	chain.addCase(newCase(3, alice, carol, domain.CaseStatusCancelled))
	return chain
}

func TestListCases(t *testing.T) {
	ctx := context.Background()

	t.Run("personal lists participations newest first", func(t *testing.T) {
		chain := seededChain()
		result, err := newListCases(testConfig(), chain, newFakeTx(chain, alice)).Run(ctx, usecase.ListCasesParams{})
		require.NoError(t, err)
		assert.Equal(t, usecase.ListPersonal, result.Mode)
		assert.Equal(t, alice, result.Account)
		assert.Equal(t, uint64(4), result.Count)
		assert.Equal(t, []uint64{3, 2, 0}, rowNumbers(result.Rows))
	})

	t.Run("personal with nothing to show", func(t *testing.T) {
		chain := seededChain()
		stranger := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
		result, err := newListCases(testConfig(), chain, newFakeTx(chain, stranger)).Run(ctx, usecase.ListCasesParams{})
		require.NoError(t, err)
		assert.Empty(t, result.Rows)
	})

	t.Run("read-only address is used without a signer", func(t *testing.T) {
		chain := seededChain()
		tx := newFakeTx(chain, common.Address{})
		tx.signer = false
		cfg := testConfig()
		cfg.Account = bob

		result, err := newListCases(cfg, chain, tx).Run(ctx, usecase.ListCasesParams{Mode: usecase.ListPersonal})
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 0}, rowNumbers(result.Rows))
	})

	t.Run("personal and voting need an account", func(t *testing.T) {
		chain := seededChain()
		tx := newFakeTx(chain, common.Address{})
		tx.signer = false
		uc := newListCases(testConfig(), chain, tx)

		_, err := uc.Run(ctx, usecase.ListCasesParams{Mode: usecase.ListPersonal})
		require.ErrorIs(t, err, domain.ErrNotConnected)
		_, err = uc.Run(ctx, usecase.ListCasesParams{Mode: usecase.ListVoting})
		require.ErrorIs(t, err, domain.ErrNotConnected)

		result, err := uc.Run(ctx, usecase.ListCasesParams{Mode: usecase.ListAll})
		require.NoError(t, err, "all works without an account")
		assert.Len(t, result.Rows, 4)
	})

	t.Run("voting requires a registered voter", func(t *testing.T) {
		chain := seededChain()
		uc := newListCases(testConfig(), chain, newFakeTx(chain, carol))

		_, err := uc.Run(ctx, usecase.ListCasesParams{Mode: usecase.ListVoting})
		require.ErrorIs(t, err, domain.ErrNotVoter)

		chain.voters[carol] = true
		result, err := uc.Run(ctx, usecase.ListCasesParams{Mode: usecase.ListVoting})
		require.NoError(t, err)
		assert.Equal(t, []uint64{0, 1}, rowNumbers(result.Rows))
	})

	t.Run("unreadable cases stay visible and empty slots are dropped", func(t *testing.T) {
		chain := seededChain()
		chain.count = 6
		chain.caseErrs[1] = errors.New("rate limited")

		result, err := newListCases(testConfig(), chain, newFakeTx(chain, alice)).Run(ctx, usecase.ListCasesParams{Mode: usecase.ListAll})
		require.NoError(t, err)
		assert.Equal(t, []uint64{0, 1, 2, 3}, rowNumbers(result.Rows))
		assert.False(t, result.Rows[1].Available())
		assert.EqualError(t, result.Rows[1].Err, "rate limited")
		assert.True(t, result.Rows[0].Available())
		assert.Zero(t, result.Unreadable)
	})

	t.Run("filtered modes leave out unreadable cases", func(t *testing.T) {
		chain := seededChain()
		chain.caseErrs[1] = errors.New("rate limited")
		chain.voters[carol] = true
		stranger := common.HexToAddress("0x000000000000000000000000000000000000dEaD")

		result, err := newListCases(testConfig(), chain, newFakeTx(chain, stranger)).Run(ctx, usecase.ListCasesParams{})
		require.NoError(t, err)
		assert.Empty(t, result.Rows)
		assert.Equal(t, 1, result.Unreadable)

		result, err = newListCases(testConfig(), chain, newFakeTx(chain, carol)).Run(ctx, usecase.ListCasesParams{Mode: usecase.ListVoting})
		require.NoError(t, err)
		assert.Equal(t, []uint64{0}, rowNumbers(result.Rows))
		assert.Equal(t, 1, result.Unreadable)
	})

	t.Run("one-based numbering", func(t *testing.T) {
		chain := newFakeChain()
		chain.addCase(newCase(1, alice, bob, domain.CaseStatusActivated))
		chain.addCase(newCase(2, alice, bob, domain.CaseStatusActivated))
		chain.addCase(newCase(3, alice, bob, domain.CaseStatusActivated))
		chain.count = 3
		cfg := testConfig()
		cfg.Variant.IndexBase = 1

		result, err := newListCases(cfg, chain, newFakeTx(chain, alice)).Run(ctx, usecase.ListCasesParams{Mode: usecase.ListAll})
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 2, 3}, rowNumbers(result.Rows))
	})

	t.Run("cancellation fails the list", func(t *testing.T) {
		chain := seededChain()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newListCases(testConfig(), chain, newFakeTx(chain, alice)).Run(cctx, usecase.ListCasesParams{Mode: usecase.ListAll})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseListMode(t *testing.T) {
	mode, err := usecase.ParseListMode("")
	require.NoError(t, err)
	assert.Equal(t, usecase.ListPersonal, mode)

	mode, err = usecase.ParseListMode("voting")
	require.NoError(t, err)
	assert.Equal(t, usecase.ListVoting, mode)

	_, err = usecase.ParseListMode("mine")
	var validation domain.ValidationError
	require.ErrorAs(t, err, &validation)
}
