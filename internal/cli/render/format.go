package render

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ended is shown once a voting period has run out
const Ended = "ended"

var titleCaser = cases.Title(language.English)

// FormatCountdown renders the time left as HH:MM:SS. Hours are not capped
// at 24 so a week-long vote reads 168:00:00.
func FormatCountdown(remaining time.Duration) string {
	if remaining <= 0 {
		return Ended
	}
	total := int64(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// Countdown renders the countdown of a case at now. Cases that never
// started voting have no countdown.
func Countdown(c *domain.Case, now time.Time) string {
	deadline := c.VotingDeadline()
	if deadline.IsZero() {
		return "-"
	}
	return FormatCountdown(deadline.Sub(now))
}

// ShortAddress renders 0x1234...abcd
func ShortAddress(addr common.Address) string {
	if addr == (common.Address{}) {
		return "-"
	}
	hex := addr.Hex()
	return hex[:6] + "..." + strings.ToLower(hex[len(hex)-4:])
}

// FormatAmount renders base units as a token amount with its symbol
func FormatAmount(v *big.Int, symbol string) string {
	amount := domain.FormatUnits(v, domain.TokenDecimals)
	if symbol == "" {
		return amount
	}
	return amount + " " + symbol
}

// StatusLabel is the title-cased label of a status
func StatusLabel(s domain.CaseStatus, set domain.StatusSet) string {
	return titleCaser.String(s.Label(set))
}

// StatusBadge is the coloured status label
func StatusBadge(p *Palette, s domain.CaseStatus, set domain.StatusSet) string {
	return p.Status(s).Sprint(StatusLabel(s, set))
}

// ActionLabel turns "start-voting" into "Start Voting"
func ActionLabel(a domain.Action) string {
	return titleCaser.String(strings.ReplaceAll(string(a), "-", " "))
}
