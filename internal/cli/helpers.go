package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/app"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// progressDone stops the spinner before output is written
var progressDone = usecase.ProgressEvent{Stage: "done"}

// parseCaseNumber parses a case argument, accepting an optional leading '#'
func parseCaseNumber(arg string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(arg), "#"), 10, 64)
	if err != nil {
		return 0, domain.ValidationError{Field: "case", Reason: fmt.Sprintf("%q is not a case number", arg)}
	}
	return n, nil
}

// resolveCaseNumber takes the case from args, or lets the user pick one
// from the given list mode when the argument is omitted
func resolveCaseNumber(cmd *cobra.Command, a *app.App, args []string, mode usecase.ListMode, prompt string) (uint64, error) {
	if len(args) > 0 {
		return parseCaseNumber(args[0])
	}
	if a.Config.NonInteractive {
		return 0, fmt.Errorf("a case number is required in non-interactive mode")
	}

	result, err := a.ListCases.Run(cmd.Context(), usecase.ListCasesParams{Mode: mode})
	if err != nil {
		return 0, err
	}
	a.Sink.OnProgress(cmd.Context(), progressDone)
	if len(result.Rows) == 0 {
		return 0, fmt.Errorf("%s", render.EmptyState(result))
	}
	return a.Selector.SelectCase(cmd.Context(), prompt, result.Rows)
}

// palette returns the palette of the active theme
func palette(a *app.App) *render.Palette {
	return render.PaletteFor(a.Theme.Theme())
}

func newCasesRenderer(out io.Writer, a *app.App) *render.CasesRenderer {
	return render.NewCasesRenderer(out, palette(a), a.Config.Variant.StatusSet)
}

func newCaseRenderer(out io.Writer, a *app.App) *render.CaseRenderer {
	return render.NewCaseRenderer(out, palette(a), a.Config.Variant.StatusSet)
}

func newSubmissionRenderer(out io.Writer, a *app.App) *render.SubmissionRenderer {
	return render.NewSubmissionRenderer(out, palette(a))
}
