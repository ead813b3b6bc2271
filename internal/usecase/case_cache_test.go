package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

func TestCaseCache(t *testing.T) {
	ctx := context.Background()

	t.Run("queries are shared per case", func(t *testing.T) {
		chain := newFakeChain()
		chain.addCase(newCase(0, alice, bob, domain.CaseStatusActivated))
		cache := usecase.NewCaseCache(testConfig(), chain, nil)

		assert.Same(t, cache.Case(0), cache.Case(0))
		assert.NotSame(t, cache.Case(0), cache.Case(1))

		_, ok := cache.Case(0).Data()
		assert.False(t, ok, "nothing is fetched until started or refreshed")
	})

	t.Run("refresh reads the case and its result", func(t *testing.T) {
		chain := newFakeChain()
		chain.addCase(newCase(0, alice, bob, domain.CaseStatusVoting))
		chain.results[0] = &domain.CaseResult{Number: 0, Status: domain.CaseStatusVoting}
		cache := usecase.NewCaseCache(testConfig(), chain, nil)

		require.NoError(t, cache.Refresh(ctx, 0))
		kase, ok := cache.Case(0).Data()
		require.True(t, ok)
		assert.Equal(t, "case 0", kase.Name)
		_, ok = cache.Result(0).Data()
		assert.True(t, ok)
	})

	t.Run("start polls existing and later queries", func(t *testing.T) {
		chain := newFakeChain()
		chain.addCase(newCase(0, alice, bob, domain.CaseStatusActivated))
		chain.addCase(newCase(1, alice, bob, domain.CaseStatusActivated))
		cfg := testConfig()
		cfg.PollInterval = 5 * time.Millisecond
		cache := usecase.NewCaseCache(cfg, chain, nil)

		early := cache.Case(0)
		stop := cache.Start(ctx)
		defer stop()
		late := cache.Case(1)

		assert.Eventually(t, func() bool {
			_, a := early.Data()
			_, b := late.Data()
			n, c := cache.Count().Data()
			return a && b && c && n == 2
		}, time.Second, 5*time.Millisecond)
	})
}
