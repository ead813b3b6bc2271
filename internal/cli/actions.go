package cli

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/app"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// progressOnly forwards progress events and drops the card's notices;
// commands report the outcome themselves
type progressOnly struct {
	usecase.ProgressSink
}

func (progressOnly) Info(string)  {}
func (progressOnly) Error(string) {}

// submitFunc starts one transaction flow on a card
type submitFunc func(ctx context.Context, card *usecase.CaseCard) (*usecase.Submission, error)

// runSubmission drives a card action to its receipt and reports it
func runSubmission(cmd *cobra.Command, a *app.App, number uint64, what string, submit submitFunc) error {
	ctx := cmd.Context()
	a.Actions.SetProgressSink(progressOnly{a.Sink})

	sub, err := submit(ctx, a.Actions.Card(number))
	if err != nil {
		a.Sink.OnProgress(ctx, progressDone)
		return err
	}
	a.Sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "confirming", Message: fmt.Sprintf("Waiting for %s", what), Spinner: true})
	_, err = sub.Wait(ctx)
	a.Sink.OnProgress(ctx, progressDone)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	status := sub.Status()

	if a.Config.JSON {
		out := map[string]any{
			"case":        number,
			"action":      what,
			"transaction": status.Hash.Hex(),
		}
		if status.Receipt != nil {
			out["block"] = status.Receipt.BlockNumber
			out["gasUsed"] = status.Receipt.GasUsed
		}
		return render.WriteJSON(cmd.OutOrStdout(), out)
	}
	newSubmissionRenderer(cmd.OutOrStdout(), a).RenderConfirmed(what, status)
	return nil
}

// checkAvailable rejects an action the case does not currently offer the account
func checkAvailable(cmd *cobra.Command, a *app.App, number uint64, action domain.Action) error {
	result, err := a.ShowCase.Run(cmd.Context(), usecase.ShowCaseParams{Number: number})
	if err != nil {
		return err
	}
	if !result.View.Can(action) {
		if result.VoterErr != nil {
			return result.VoterErr
		}
		return fmt.Errorf("%w: %s on case %d (status %s)", domain.ErrActionUnavailable,
			render.ActionLabel(action), number, result.View.Status().Label(a.Config.Variant.StatusSet))
	}
	return nil
}

// loadCase reads a case fresh from the chain
func loadCase(ctx context.Context, a *app.App, number uint64) (*domain.Case, error) {
	kase, err := a.Cache.Case(number).Refetch(ctx)
	if err != nil {
		return nil, err
	}
	if kase.IsEmpty() {
		return nil, fmt.Errorf("%w: %d", domain.ErrCaseNotFound, number)
	}
	return kase, nil
}

// resolveSide takes the side from the flag, from the account's role in the
// case, or from an interactive prompt
func resolveSide(ctx context.Context, a *app.App, flag string, kase *domain.Case, infer bool) (domain.Side, error) {
	if flag != "" {
		return domain.ParseSide(flag)
	}
	if infer {
		if side, ok := kase.SideOf(a.Account.Viewer()); ok {
			return side, nil
		}
	}
	if a.Config.NonInteractive {
		return 0, domain.ValidationError{Field: "side", Reason: "--side is required in non-interactive mode"}
	}
	return a.Selector.SelectSide(ctx, "Select a side", kase)
}

// NewStakeCmd creates the stake command
func NewStakeCmd() *cobra.Command {
	var (
		side   string
		amount string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "stake [case]",
		Short: "Deposit compensation for a side of a case",
		Long: `Deposit compensation tokens for side A or B of a case.

The amount defaults to what the side still owes. Your balance must also
cover the protocol fee; the fee and buffer are never part of the deposit.
An allowance is approved first when the current one is too small.`,
		Example: `  arbiter stake 3 --side a
  arbiter stake 3 --side b --amount 0.5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			number, err := resolveCaseNumber(cmd, app, args, usecase.ListPersonal, "Select a case to stake on")
			if err != nil {
				return err
			}
			kase, err := loadCase(ctx, app, number)
			if err != nil {
				return err
			}
			s, err := resolveSide(ctx, app, side, kase, true)
			if err != nil {
				return err
			}

			var value *big.Int
			if amount != "" {
				if value, err = domain.ParseUnits(amount, domain.TokenDecimals); err != nil {
					return domain.ValidationError{Field: "amount", Reason: err.Error()}
				}
			} else {
				value = kase.Outstanding(s)
				if value.Sign() <= 0 {
					return fmt.Errorf("side %s of case %d is already paid", s, number)
				}
			}

			d, err := app.Resolver.Resolve(ctx)
			if err != nil {
				return err
			}
			required, err := d.FeePolicy(app.Config.Variant).RequiredAmount(value)
			if err != nil {
				return err
			}
			app.Sink.OnProgress(ctx, progressDone)

			if !yes && !app.Config.NonInteractive {
				prompt := fmt.Sprintf("Stake %s for side %s of case %d (balance needed: %s)",
					render.FormatAmount(value, d.TokenSymbol), s, number, render.FormatAmount(required, d.TokenSymbol))
				ok, err := app.Selector.Confirm(ctx, prompt, true)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("cancelled")
				}
			}

			what := fmt.Sprintf("Stake %s on case %d", s, number)
			return runSubmission(cmd, app, number, what, func(ctx context.Context, card *usecase.CaseCard) (*usecase.Submission, error) {
				return card.Stake(ctx, s, value)
			})
		},
	}

	cmd.Flags().StringVarP(&side, "side", "s", "", "Side to stake for (a, b)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to deposit (defaults to the outstanding compensation)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "vote [case]",
		Short: "Vote for a participant of a case in voting",
		Long: `Vote for participant A or B. A vote stakes the contract's vote token
amount; no fee applies. Only registered voters may vote.`,
		Example: `  arbiter vote 3 --side b
  arbiter vote`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			number, err := resolveCaseNumber(cmd, app, args, usecase.ListVoting, "Select a case to vote on")
			if err != nil {
				return err
			}
			kase, err := loadCase(ctx, app, number)
			if err != nil {
				return err
			}
			app.Sink.OnProgress(ctx, progressDone)
			s, err := resolveSide(ctx, app, side, kase, false)
			if err != nil {
				return err
			}
			vote := domain.ActionVoteA
			if s == domain.SideB {
				vote = domain.ActionVoteB
			}
			if err := checkAvailable(cmd, app, number, vote); err != nil {
				return err
			}

			what := fmt.Sprintf("Vote %s on case %d", s, number)
			return runSubmission(cmd, app, number, what, func(ctx context.Context, card *usecase.CaseCard) (*usecase.Submission, error) {
				return card.Vote(ctx, s)
			})
		},
	}

	cmd.Flags().StringVarP(&side, "side", "s", "", "Participant to vote for (a, b)")

	return cmd
}

// simpleAction describes a no-argument case transaction
type simpleAction struct {
	use, short, long string
	mode             usecase.ListMode
	action           domain.Action
	submit           submitFunc
}

func newSimpleActionCmd(sa simpleAction) *cobra.Command {
	var yes bool
	label := render.ActionLabel(sa.action)

	cmd := &cobra.Command{
		Use:   sa.use + " [case]",
		Short: sa.short,
		Long:  sa.long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			number, err := resolveCaseNumber(cmd, app, args, sa.mode, fmt.Sprintf("Select a case to %s", strings.ToLower(label)))
			if err != nil {
				return err
			}

			if err := checkAvailable(cmd, app, number, sa.action); err != nil {
				return err
			}
			app.Sink.OnProgress(ctx, progressDone)

			if sa.action == domain.ActionCancel && !yes && !app.Config.NonInteractive {
				ok, err := app.Selector.Confirm(ctx, fmt.Sprintf("Cancel case %d", number), false)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("cancelled")
				}
			}

			return runSubmission(cmd, app, number, fmt.Sprintf("%s on case %d", label, number), sa.submit)
		},
	}
	if sa.action == domain.ActionCancel {
		cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	}
	return cmd
}

// NewStartVotingCmd creates the start-voting command
func NewStartVotingCmd() *cobra.Command {
	return newSimpleActionCmd(simpleAction{
		use:    "start-voting",
		short:  "Open voting on an activated case",
		long:   "Move an activated case into voting. The voting window starts at the block timestamp.",
		mode:   usecase.ListPersonal,
		action: domain.ActionStartVoting,
		submit: func(ctx context.Context, card *usecase.CaseCard) (*usecase.Submission, error) {
			return card.StartVoting(ctx)
		},
	})
}

// NewExecuteCmd creates the execute command
func NewExecuteCmd() *cobra.Command {
	return newSimpleActionCmd(simpleAction{
		use:    "execute",
		short:  "Settle a case whose voting window has ended",
		long:   "Execute a case after its voting deadline. Anyone may execute.",
		mode:   usecase.ListAll,
		action: domain.ActionExecute,
		submit: func(ctx context.Context, card *usecase.CaseCard) (*usecase.Submission, error) {
			return card.Execute(ctx)
		},
	})
}

// NewClaimCmd creates the claim command
func NewClaimCmd() *cobra.Command {
	return newSimpleActionCmd(simpleAction{
		use:    "claim",
		short:  "Claim your share of the vote pool",
		long:   "Claim the vote pool share of an executed case you voted on with the winning side.",
		mode:   usecase.ListVoting,
		action: domain.ActionClaim,
		submit: func(ctx context.Context, card *usecase.CaseCard) (*usecase.Submission, error) {
			return card.Claim(ctx)
		},
	})
}

// NewCancelCmd creates the cancel command
func NewCancelCmd() *cobra.Command {
	return newSimpleActionCmd(simpleAction{
		use:    "cancel",
		short:  "Cancel a case before voting starts",
		long:   "Cancel a case that has not entered voting. Deposits are returned by the contract.",
		mode:   usecase.ListPersonal,
		action: domain.ActionCancel,
		submit: func(ctx context.Context, card *usecase.CaseCard) (*usecase.Submission, error) {
			return card.Cancel(ctx)
		},
	})
}
