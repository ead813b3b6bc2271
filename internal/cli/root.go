package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/adapters/progress"
	"github.com/trebuchet-org/arbiter/internal/app"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cleanup func()
	var spinner *progress.SpinnerProgressReporter

	rootCmd := &cobra.Command{
		Use:   "arbiter",
		Short: "Browse and act on cases of an on-chain arbitration contract",
		Long: `Arbiter reads cases from an arbitration contract, lets participants stake
their compensation, lets registered voters vote, and lets anyone start voting
or execute a case once voting has ended. All rules are enforced on-chain.

Settings are read from flags, ARBITER_* environment variables, .env and
arbiter.toml, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd) {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper
			v, err := config.SetupViper(projectRoot, cmd)
			if err != nil {
				return err
			}
			// The watch board owns the terminal, so logs go to a file
			if cmd.Name() == "watch" {
				v.Set("log_to_file", true)
			}

			var sink usecase.ProgressSink
			if v.GetBool("json") || cmd.Name() == "watch" {
				sink = progress.NewNopSink()
			} else {
				spinner = progress.NewSpinnerProgressReporter()
				sink = spinner
			}

			// Initialize app with DI
			appInstance, closeApp, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			cleanup = func() {
				appInstance.Actions.Close()
				closeApp()
			}

			if err := appInstance.Theme.Init(cmd.Context()); err != nil {
				appInstance.Log.Warn("theme preference unavailable", "error", err)
				if !appInstance.Config.JSON {
					fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning("Saved theme could not be read; using the terminal default"))
				}
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				closeApp := cleanup
				cleanup = func() {
					cancel()
					closeApp()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if spinner != nil {
				spinner.Stop()
			}
			if appInstance, err := getApp(cmd); err == nil && appInstance.Config.Debug {
				logMetrics(appInstance)
			}
			if cleanup != nil {
				cleanup()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint of the network")
	rootCmd.PersistentFlags().Uint64("chain-id", 0, "Expected chain ID of the RPC endpoint")
	rootCmd.PersistentFlags().String("contract", "", "Arbitration contract address")
	rootCmd.PersistentFlags().String("address", "", "Read-only account to render views for when no signer is configured")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cases",
		Title: "Case Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "actions",
		Title: "Transaction Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{
		NewStatusCmd(),
		NewCasesCmd(),
		NewShowCmd(),
		NewWatchCmd(),
	} {
		cmd.GroupID = "cases"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewCreateCmd(),
		NewStakeCmd(),
		NewVoteCmd(),
		NewStartVotingCmd(),
		NewExecuteCmd(),
		NewClaimCmd(),
		NewCancelCmd(),
	} {
		cmd.GroupID = "actions"
		rootCmd.AddCommand(cmd)
	}

	themeCmd := NewThemeCmd()
	themeCmd.GroupID = "management"
	rootCmd.AddCommand(themeCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipsApp reports commands that run without configuration or RPC
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "__complete":
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// logMetrics writes the transaction and read counters at debug level
func logMetrics(a *app.App) {
	families, err := a.Metrics.Gather()
	if err != nil {
		a.Log.Debug("failed to gather metrics", "error", err)
		return
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			attrs := []any{"value", m.GetCounter().GetValue()}
			for _, label := range m.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}
			a.Log.Debug(family.GetName(), attrs...)
		}
	}
}
