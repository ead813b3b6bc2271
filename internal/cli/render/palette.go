package render

import (
	"github.com/fatih/color"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/domain/config"
)

// Palette is the set of styles a theme renders with
type Palette struct {
	Title   *color.Color
	Label   *color.Color
	Address *color.Color
	Amount  *color.Color
	Muted   *color.Color
	Accent  *color.Color
	Success *color.Color
	Warning *color.Color
	Danger  *color.Color

	statuses map[domain.CaseStatus]*color.Color
}

// PaletteFor returns the palette of a theme. The light palette avoids
// white and bright yellow, which vanish on light backgrounds.
func PaletteFor(theme config.Theme) *Palette {
	if theme == config.ThemeDark {
		return &Palette{
			Title:   color.New(color.FgHiCyan, color.Bold),
			Label:   color.New(color.FgHiWhite),
			Address: color.New(color.FgWhite),
			Amount:  color.New(color.FgHiYellow),
			Muted:   color.New(color.Faint),
			Accent:  color.New(color.FgHiMagenta),
			Success: color.New(color.FgHiGreen),
			Warning: color.New(color.FgYellow),
			Danger:  color.New(color.FgHiRed),
			statuses: map[domain.CaseStatus]*color.Color{
				domain.CaseStatusInactivated: color.New(color.FgWhite, color.Faint),
				domain.CaseStatusActivated:   color.New(color.FgHiCyan),
				domain.CaseStatusVoting:      color.New(color.FgHiYellow, color.Bold),
				domain.CaseStatusExecuted:    color.New(color.FgHiGreen),
				domain.CaseStatusCancelled:   color.New(color.FgHiRed),
			},
		}
	}
	return &Palette{
		Title:   color.New(color.FgBlue, color.Bold),
		Label:   color.New(color.FgBlack),
		Address: color.New(color.FgBlack),
		Amount:  color.New(color.FgMagenta),
		Muted:   color.New(color.Faint),
		Accent:  color.New(color.FgMagenta, color.Bold),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgRed),
		Danger:  color.New(color.FgRed, color.Bold),
		statuses: map[domain.CaseStatus]*color.Color{
			domain.CaseStatusInactivated: color.New(color.FgBlack, color.Faint),
			domain.CaseStatusActivated:   color.New(color.FgBlue),
			domain.CaseStatusVoting:      color.New(color.FgMagenta, color.Bold),
			domain.CaseStatusExecuted:    color.New(color.FgGreen),
			domain.CaseStatusCancelled:   color.New(color.FgRed),
		},
	}
}

// Status returns the badge colour of a status
func (p *Palette) Status(s domain.CaseStatus) *color.Color {
	if c, ok := p.statuses[s]; ok {
		return c
	}
	return p.Muted
}
