package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/arbiter/internal/app"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

func TestSkipsApp(t *testing.T) {
	root := NewRootCmd()
	completion := &cobra.Command{Use: "completion"}
	bash := &cobra.Command{Use: "bash"}
	completion.AddCommand(bash)
	root.AddCommand(completion)

	tests := []struct {
		name     string
		cmd      *cobra.Command
		expected bool
	}{
		{"version", NewVersionCmd(), true},
		{"help", &cobra.Command{Use: "help"}, true},
		{"completion subcommand", bash, true},
		{"cases", NewCasesCmd(), false},
		{"watch", NewWatchCmd(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, skipsApp(tt.cmd))
		})
	}
}

func TestCommandTree(t *testing.T) {
	root := NewRootCmd()
	groups := map[string]string{}
	for _, cmd := range root.Commands() {
		groups[cmd.Name()] = cmd.GroupID
	}

	for _, name := range []string{"status", "cases", "show", "watch"} {
		assert.Equal(t, "cases", groups[name], name)
	}
	for _, name := range []string{"create", "stake", "vote", "start-voting", "execute", "claim", "cancel"} {
		assert.Equal(t, "actions", groups[name], name)
	}
	assert.Equal(t, "management", groups["theme"])
	assert.Contains(t, groups, "version")

	for _, flag := range []string{"debug", "non-interactive", "json", "rpc-url", "chain-id", "contract", "address"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCmd(t *testing.T) {
	config.SetBuildFlags("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { config.SetBuildFlags("dev", "unknown", "unknown") })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "arbiter version v1.2.3 (commit abc123, built 2026-01-01)\n", out.String())
}

func TestParseCaseNumber(t *testing.T) {
	tests := []struct {
		arg      string
		expected uint64
		wantErr  bool
	}{
		{"0", 0, false},
		{"12", 12, false},
		{"#7", 7, false},
		{" 3 ", 3, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			n, err := parseCaseNumber(tt.arg)
			if tt.wantErr {
				var validation domain.ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, "case", validation.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestParseAllocation(t *testing.T) {
	mode, err := parseAllocation("winner-takes-all")
	require.NoError(t, err)
	assert.Equal(t, domain.AllocationWinnerTakesAll, mode)

	mode, err = parseAllocation("Proportional")
	require.NoError(t, err)
	assert.Equal(t, domain.AllocationProportional, mode)

	mode, err = parseAllocation("1")
	require.NoError(t, err)
	assert.Equal(t, domain.AllocationProportional, mode)

	_, err = parseAllocation("lottery")
	assert.Error(t, err)
}

func TestMergeCaseParams(t *testing.T) {
	file := usecase.CreateCaseParams{
		Name:           "From file",
		ParticipantA:   "0xaaaa",
		CompensationA:  "1",
		VotingDuration: 3600,
		AllocationMode: 1,
	}
	flags := usecase.CreateCaseParams{Name: "From flag", CompensationB: "2"}

	merged := mergeCaseParams(file, flags)
	assert.Equal(t, "From flag", merged.Name)
	assert.Equal(t, "0xaaaa", merged.ParticipantA)
	assert.Equal(t, "1", merged.CompensationA)
	assert.Equal(t, "2", merged.CompensationB)
	assert.Equal(t, uint64(3600), merged.VotingDuration)
	assert.Equal(t, 1, merged.AllocationMode)
}

func TestBoardModel(t *testing.T) {
	a := &app.App{Config: &config.RuntimeConfig{PollInterval: 30 * time.Second}}
	notices := make(chan noticeMsg, 1)
	m := newBoardModel(context.Background(), a, usecase.ListAll, notices)

	t.Run("cases arrive and clamp the cursor", func(t *testing.T) {
		m := m
		m.cursor = 5
		next, _ := m.Update(casesMsg{result: &usecase.ListCasesResult{
			Mode: usecase.ListAll,
			Rows: []usecase.CaseRow{{Number: 0, Case: &domain.Case{Name: "a"}}, {Number: 1, Case: &domain.Case{Name: "b"}}},
		}})
		board := next.(boardModel)
		assert.Equal(t, 1, board.cursor)
		assert.False(t, board.loading)

		row, ok := board.selected()
		require.True(t, ok)
		assert.Equal(t, uint64(1), row.Number)
	})

	t.Run("first tick waits for the initial fetch", func(t *testing.T) {
		assert.True(t, m.loading)
		next, _ := m.Update(tickMsg(m.now.Add(time.Hour)))
		assert.True(t, next.(boardModel).loading)
	})

	t.Run("ticks refetch only after the poll interval", func(t *testing.T) {
		m := m
		m.loading = false
		m.fetchedAt = time.Unix(1_700_000_000, 0)

		next, _ := m.Update(tickMsg(m.fetchedAt.Add(time.Second)))
		assert.False(t, next.(boardModel).loading)

		next, _ = m.Update(tickMsg(m.fetchedAt.Add(31 * time.Second)))
		assert.True(t, next.(boardModel).loading)
	})

	t.Run("notices are capped", func(t *testing.T) {
		var model tea.Model = m
		for i := 0; i < maxNotices+3; i++ {
			model, _ = model.Update(noticeMsg{text: "failed", error: true})
		}
		assert.Len(t, model.(boardModel).log, maxNotices)
	})

	t.Run("only sink notices re-arm the listener", func(t *testing.T) {
		next, cmd := m.Update(noticeMsg{text: "Case 0: claim failed: boom", error: true})
		assert.Nil(t, cmd)
		assert.Len(t, next.(boardModel).log, 1)

		next, cmd = m.Update(sinkNoticeMsg{text: "Case 0: claim confirmed", error: true})
		assert.NotNil(t, cmd)
		assert.Equal(t, noticeMsg{text: "Case 0: claim confirmed", error: true}, next.(boardModel).log[0])
	})

	t.Run("q quits", func(t *testing.T) {
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		assert.True(t, next.(boardModel).quitting)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}
