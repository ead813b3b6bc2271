package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

// StatusRenderer renders the contract status summary
type StatusRenderer struct {
	out     io.Writer
	palette *Palette
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer, palette *Palette) *StatusRenderer {
	return &StatusRenderer{out: out, palette: palette}
}

// RenderStatus renders contract-level state and where it came from
func (r *StatusRenderer) RenderStatus(status *domain.ContractStatus, cfg *config.RuntimeConfig) error {
	p := r.palette

	p.Title.Fprintln(r.out, "Arbitration contract")
	fmt.Fprintf(r.out, "  Address: %s\n", p.Address.Sprint(status.Address.Hex()))
	fmt.Fprintf(r.out, "  Network: chain %d via %s\n", cfg.Network.ChainID, cfg.Network.RPCURL)

	running := p.Danger.Sprint("paused")
	if status.Running {
		running = p.Success.Sprint("running")
	}
	fmt.Fprintf(r.out, "  State: %s\n", running)
	fmt.Fprintf(r.out, "  Cases: %d\n", status.CaseCount)

	fmt.Fprintln(r.out, "\nTokens:")
	fmt.Fprintf(r.out, "  Compensation: %s (%s)\n", status.CompensationToken.Hex(), status.TokenSymbol)
	if status.VoteToken != status.CompensationToken {
		fmt.Fprintf(r.out, "  Vote: %s\n", status.VoteToken.Hex())
	}
	fmt.Fprintf(r.out, "  Vote stake: %s\n", p.Amount.Sprint(FormatAmount(status.VoteTokenAmount, "")))
	fmt.Fprintf(r.out, "  Stake fee: %s\n", FormatBps(status.FeeBps))

	if cfg.ConfigSource != "" {
		fmt.Fprintf(r.out, "\n%s\n", p.Muted.Sprintf("Configuration from %s", cfg.ConfigSource))
	}
	return nil
}

// FormatBps renders basis points as a percentage
func FormatBps(bps uint64) string {
	if bps%100 == 0 {
		return fmt.Sprintf("%d%%", bps/100)
	}
	return fmt.Sprintf("%d.%02d%%", bps/100, bps%100)
}
