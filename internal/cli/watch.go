package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/app"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

const maxNotices = 5

type tickMsg time.Time

type casesMsg struct {
	result *usecase.ListCasesResult
	err    error
}

type noticeMsg struct {
	text  string
	error bool
}

// sinkNoticeMsg is a notice read from the sink channel; handling it re-arms
// the listener
type sinkNoticeMsg noticeMsg

// noticeSink turns card notices into board messages
type noticeSink struct {
	ch chan noticeMsg
}

func (s noticeSink) OnProgress(context.Context, usecase.ProgressEvent) {}

func (s noticeSink) Info(message string) { s.send(noticeMsg{text: message}) }

func (s noticeSink) Error(message string) { s.send(noticeMsg{text: message, error: true}) }

func (s noticeSink) send(n noticeMsg) {
	select {
	case s.ch <- n:
	default:
	}
}

// boardModel is the bubbletea model of the watch board
type boardModel struct {
	ctx     context.Context
	app     *app.App
	mode    usecase.ListMode
	notices chan noticeMsg

	result    *usecase.ListCasesResult
	err       error
	loading   bool
	fetchedAt time.Time
	now       time.Time
	cursor    int
	log       []noticeMsg
	quitting  bool
}

func newBoardModel(ctx context.Context, a *app.App, mode usecase.ListMode, notices chan noticeMsg) boardModel {
	return boardModel{
		ctx:     ctx,
		app:     a,
		mode:    mode,
		notices: notices,
		loading: true,
		now:     time.Now(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) fetch() tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.ListCases.Run(m.ctx, usecase.ListCasesParams{Mode: m.mode})
		return casesMsg{result: result, err: err}
	}
}

func waitNotice(ctx context.Context, ch <-chan noticeMsg) tea.Cmd {
	return func() tea.Msg {
		select {
		case n := <-ch:
			return sinkNoticeMsg(n)
		case <-ctx.Done():
			return nil
		}
	}
}

// Init starts the clock, the first fetch and the notice listener. The model
// starts out loading so the first tick does not fetch again.
func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(), tick(), waitNotice(m.ctx, m.notices))
}

// Update handles messages and updates the model
func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		cmds := []tea.Cmd{tick()}
		if !m.loading && m.now.Sub(m.fetchedAt) >= m.app.Config.PollInterval {
			m.loading = true
			cmds = append(cmds, m.fetch())
		}
		return m, tea.Batch(cmds...)

	case casesMsg:
		m.loading = false
		m.fetchedAt = time.Now()
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
			if m.cursor >= len(m.result.Rows) {
				m.cursor = max(len(m.result.Rows)-1, 0)
			}
		}
		return m, nil

	case sinkNoticeMsg:
		next, cmd := m.notice(noticeMsg(msg))
		return next, tea.Batch(waitNotice(m.ctx, m.notices), cmd)

	case noticeMsg:
		return m.notice(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.result != nil && m.cursor < len(m.result.Rows)-1 {
				m.cursor++
			}
		case "r":
			if !m.loading {
				m.loading = true
				return m, m.fetch()
			}
		case "t":
			if _, err := m.app.Theme.Toggle(m.ctx); err != nil {
				m.log = append(m.log, noticeMsg{text: fmt.Sprintf("Theme not saved: %v", err), error: true})
			}
		case "s":
			return m, m.submit(domain.ActionStartVoting)
		case "x":
			return m, m.submit(domain.ActionExecute)
		case "c":
			return m, m.submit(domain.ActionClaim)
		}
	}
	return m, nil
}

// notice logs n; a confirmed transaction changes the chain, so it re-reads it
func (m boardModel) notice(n noticeMsg) (boardModel, tea.Cmd) {
	m.log = append(m.log, n)
	if len(m.log) > maxNotices {
		m.log = m.log[len(m.log)-maxNotices:]
	}
	if !n.error && !m.loading {
		m.loading = true
		return m, m.fetch()
	}
	return m, nil
}

// submit starts an action on the selected case; the outcome arrives as a notice
func (m boardModel) submit(action domain.Action) tea.Cmd {
	row, ok := m.selected()
	if !ok {
		return nil
	}
	card := m.app.Actions.Card(row.Number)
	return func() tea.Msg {
		var err error
		switch action {
		case domain.ActionStartVoting:
			_, err = card.StartVoting(m.ctx)
		case domain.ActionExecute:
			_, err = card.Execute(m.ctx)
		case domain.ActionClaim:
			_, err = card.Claim(m.ctx)
		}
		if err != nil {
			return noticeMsg{text: fmt.Sprintf("Case %d: %s failed: %v", row.Number, render.ActionLabel(action), err), error: true}
		}
		return noticeMsg{text: fmt.Sprintf("Case %d: %s submitted", row.Number, render.ActionLabel(action))}
	}
}

func (m boardModel) selected() (usecase.CaseRow, bool) {
	if m.result == nil || m.cursor >= len(m.result.Rows) {
		return usecase.CaseRow{}, false
	}
	row := m.result.Rows[m.cursor]
	return row, row.Available()
}

// View renders the board
func (m boardModel) View() string {
	if m.quitting {
		return ""
	}
	p := palette(m.app)

	var b strings.Builder
	b.WriteString(p.Title.Sprintf("Arbiter cases (%s)", m.mode))
	if m.result != nil && m.result.Account != (common.Address{}) {
		b.WriteString(p.Muted.Sprintf("  %s", render.ShortAddress(m.result.Account)))
	}
	if m.loading {
		b.WriteString(p.Muted.Sprint("  refreshing..."))
	} else if !m.fetchedAt.IsZero() {
		b.WriteString(p.Muted.Sprintf("  updated %s", m.fetchedAt.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(p.Danger.Sprintf("Failed to load cases: %v\n", m.err))
	case m.result == nil:
		b.WriteString(p.Muted.Sprint("Loading cases...\n"))
	case len(m.result.Rows) == 0:
		b.WriteString(render.EmptyState(m.result) + "\n")
	default:
		r := newCasesRenderer(nil, m.app)
		b.WriteString(r.Table(m.result.Rows, m.now, m.app.Actions.PendingFor))
		b.WriteString("\n")
		if row, ok := m.selected(); ok {
			b.WriteString(p.Accent.Sprintf("\n▸ #%d %s", row.Number, row.Case.Name))
			b.WriteString("\n")
		}
	}

	if len(m.log) > 0 {
		b.WriteString("\n")
		for _, n := range m.log {
			if n.error {
				b.WriteString(p.Warning.Sprintln(n.text))
			} else {
				b.WriteString(p.Success.Sprintln(n.text))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(p.Muted.Sprint("↑/↓: select  s: start voting  x: execute  c: claim  r: refresh  t: theme  q: quit\n"))
	return b.String()
}

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live board of cases with voting countdowns",
		Long: `Open a live board of cases. Countdowns update every second and the
chain is re-read on the poll interval and after each confirmed transaction.

Logs are written to <data_dir>/logs/arbiter.log while the board is open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			listMode, err := usecase.ParseListMode(mode)
			if err != nil {
				return err
			}

			notices := make(chan noticeMsg, 16)
			app.Actions.SetProgressSink(noticeSink{ch: notices})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			p := tea.NewProgram(newBoardModel(ctx, app, listMode, notices), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("watch board failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(usecase.ListPersonal), "Which cases to show (personal, voting, all)")

	return cmd
}
