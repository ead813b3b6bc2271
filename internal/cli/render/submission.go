package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// SubmissionRenderer reports the outcome of a transaction
type SubmissionRenderer struct {
	out     io.Writer
	palette *Palette
}

// NewSubmissionRenderer creates a new submission renderer
func NewSubmissionRenderer(out io.Writer, palette *Palette) *SubmissionRenderer {
	return &SubmissionRenderer{out: out, palette: palette}
}

// RenderConfirmed prints a confirmed transaction
func (r *SubmissionRenderer) RenderConfirmed(what string, status usecase.SubmitStatus) {
	fmt.Fprintln(r.out, r.palette.Success.Sprintf("✅ %s confirmed", what))
	fmt.Fprintf(r.out, "  Transaction: %s\n", status.Hash.Hex())
	if status.Receipt != nil {
		fmt.Fprintf(r.out, "  Block: %s\n", status.Receipt.BlockNumber)
		fmt.Fprintf(r.out, "  Gas used: %d\n", status.Receipt.GasUsed)
	}
}

// RenderSubmitted prints a transaction that was broadcast but not awaited
func (r *SubmissionRenderer) RenderSubmitted(what string, status usecase.SubmitStatus) {
	fmt.Fprintln(r.out, r.palette.Warning.Sprintf("⏳ %s submitted", what))
	if status.Hash != (common.Hash{}) {
		fmt.Fprintf(r.out, "  Transaction: %s\n", status.Hash.Hex())
	}
}

// RenderCreated prints the outcome of addCase
func (r *SubmissionRenderer) RenderCreated(result *usecase.CreateCaseResult) {
	if result.Found {
		fmt.Fprintln(r.out, r.palette.Success.Sprintf("✅ Case %d created: %s", result.Number, result.Init.Name))
	} else {
		fmt.Fprintln(r.out, r.palette.Success.Sprintf("✅ Case created: %s", result.Init.Name))
		fmt.Fprintln(r.out, r.palette.Muted.Sprint("  The CaseAdded event was not found; run 'arbiter cases --mode all' to find its number"))
	}
	fmt.Fprintf(r.out, "  Transaction: %s\n", result.Hash.Hex())
	r.renderBlock(result.Receipt)
}

func (r *SubmissionRenderer) renderBlock(receipt *types.Receipt) {
	if receipt == nil {
		return
	}
	fmt.Fprintf(r.out, "  Block: %s\n", receipt.BlockNumber)
}
