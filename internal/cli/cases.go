package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// NewCasesCmd creates the cases command
func NewCasesCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "cases",
		Aliases: []string{"ls", "list"},
		Short:   "List cases",
		Long: `List cases of the arbitration contract.

Modes:
  personal  cases where your account is participant A or B, newest first
  voting    cases in voting or executed, for registered voters only
  all       every case

Cases that could not be read are listed as unavailable.`,
		Example: `  # Your cases
  arbiter cases

  # Cases you can vote on
  arbiter cases --mode voting

  # Everything, as JSON
  arbiter cases --mode all --json`,
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

			result, err := app.ListCases.Run(cmd.Context(), usecase.ListCasesParams{Mode: listMode})
			if err != nil {
				return err
			}
			app.Sink.OnProgress(cmd.Context(), progressDone)

			now := time.Now()
			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), render.NewCaseListJSON(result, app.Config.Variant.StatusSet, now))
			}
			return newCasesRenderer(cmd.OutOrStdout(), app).RenderCaseList(result, now)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(usecase.ListPersonal), "List mode (personal, voting, all)")

	return cmd
}
