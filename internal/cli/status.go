package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the arbitration contract state",
		Long: `Show whether the contract is running, how many cases it holds, which
tokens it uses and the stake fee.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			status, err := app.ContractStatus.Run(cmd.Context())
			if err != nil {
				return err
			}
			app.Sink.OnProgress(cmd.Context(), progressDone)

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), status)
			}
			return render.NewStatusRenderer(cmd.OutOrStdout(), palette(app)).RenderStatus(status, app.Config)
		},
	}
}
