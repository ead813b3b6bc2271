package cli

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var viewer string

	cmd := &cobra.Command{
		Use:   "show [case]",
		Short: "Show a case with its derived state and available actions",
		Long: `Show detailed information about a case: participants, deposits, voting
window and tally, and the actions available to your account.

Without a case number an interactive picker lists every case.`,
		Example: `  arbiter show 3
  arbiter show 3 --as 0x70997970C51812dc3A010C7d01b50e0d17dc79C8
  arbiter show 3 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowCaseParams{}
			if viewer != "" {
				if err := usecase.ValidateParticipant("viewer", viewer); err != nil {
					return err
				}
				params.Viewer = common.HexToAddress(viewer)
			}

			params.Number, err = resolveCaseNumber(cmd, app, args, usecase.ListAll, "Select a case")
			if err != nil {
				return err
			}

			result, err := app.ShowCase.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			app.Sink.OnProgress(cmd.Context(), progressDone)

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), render.NewCaseDetailJSON(result, app.Config.Variant.StatusSet))
			}

			symbol := ""
			if d, err := app.Resolver.Resolve(cmd.Context()); err == nil {
				symbol = d.TokenSymbol
			}
			return newCaseRenderer(cmd.OutOrStdout(), app).RenderCase(result, symbol)
		},
	}

	cmd.Flags().StringVar(&viewer, "as", "", "Render the case for this address instead of your account")

	return cmd
}
