package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// PendingLookup returns the local flags of a case
type PendingLookup func(number uint64) domain.PendingFlags

// CasesRenderer renders case lists as tables
type CasesRenderer struct {
	out     io.Writer
	palette *Palette
	set     domain.StatusSet
}

// NewCasesRenderer creates a new cases renderer
func NewCasesRenderer(out io.Writer, palette *Palette, set domain.StatusSet) *CasesRenderer {
	return &CasesRenderer{
		out:     out,
		palette: palette,
		set:     set,
	}
}

// RenderCaseList renders a list result with its empty-state message
func (r *CasesRenderer) RenderCaseList(result *usecase.ListCasesResult, now time.Time) error {
	if len(result.Rows) == 0 {
		fmt.Fprintln(r.out, EmptyState(result))
	} else {
		fmt.Fprintln(r.out, r.Table(result.Rows, now, nil))
		fmt.Fprintf(r.out, "\n%s\n", r.palette.Muted.Sprintf("%d of %d cases (%s)", len(result.Rows), result.Count, result.Mode))
	}
	if result.Unreadable > 0 {
		fmt.Fprintln(r.out, r.palette.Warning.Sprintf("%d cases could not be read", result.Unreadable))
	}
	return nil
}

// EmptyState is the message shown when a list has no rows
func EmptyState(result *usecase.ListCasesResult) string {
	switch result.Mode {
	case usecase.ListPersonal:
		return fmt.Sprintf("No cases found for %s", result.Account.Hex())
	case usecase.ListVoting:
		return "No cases are open for voting"
	default:
		return "No cases have been created yet"
	}
}

// Table renders rows as a table. pending may be nil.
func (r *CasesRenderer) Table(rows []usecase.CaseRow, now time.Time, pending PendingLookup) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box.PaddingRight = "  "
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: 32},
		{Number: 7, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"#", "NAME", "STATUS", "PARTY A", "PARTY B", "PAID", "VOTING", "PENDING"})
	for _, row := range rows {
		t.AppendRow(r.row(row, now, pending))
	}
	return t.Render()
}

func (r *CasesRenderer) row(row usecase.CaseRow, now time.Time, pending PendingLookup) table.Row {
	number := fmt.Sprintf("%d", row.Number)
	if !row.Available() {
		return table.Row{number, r.palette.Danger.Sprint("unavailable"), "", "", "", "", "", ""}
	}

	c := row.Case
	flags := ""
	if pending != nil {
		if f := pending(row.Number); !f.Empty() {
			flags = r.palette.Warning.Sprint(f.String())
		}
	}
	return table.Row{
		number,
		text.Trim(c.Name, 32),
		StatusBadge(r.palette, c.Status, r.set),
		r.palette.Address.Sprint(ShortAddress(c.ParticipantA)),
		r.palette.Address.Sprint(ShortAddress(c.ParticipantB)),
		r.paid(c),
		Countdown(c, now),
		flags,
	}
}

func (r *CasesRenderer) paid(c *domain.Case) string {
	mark := func(ok bool) string {
		if ok {
			return r.palette.Success.Sprint("✓")
		}
		return r.palette.Muted.Sprint("·")
	}
	return mark(c.PaidA) + " " + mark(c.PaidB)
}
