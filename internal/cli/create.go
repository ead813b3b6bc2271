package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/app"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// NewCreateCmd creates the create command
func NewCreateCmd() *cobra.Command {
	var (
		file       string
		params     usecase.CreateCaseParams
		duration   time.Duration
		allocation string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new case",
		Long: `Create a case between two participants.

Input comes from flags, from a YAML file (--file), or from an interactive
form for anything left out. Compensation amounts are token amounts with up
to 18 decimals; extra precision is truncated. Invalid input never reaches
the chain.`,
		Example: `  arbiter create --name "Fence dispute" \
    --participant-a 0x7099...79C8 --participant-b 0x3C44...93BC \
    --compensation-a 1 --compensation-b 1.5 --duration 48h

  arbiter create --file case.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if file != "" {
				fromFile, err := usecase.LoadCaseFile(file)
				if err != nil {
					return err
				}
				params = mergeCaseParams(fromFile, params)
			}
			if cmd.Flags().Changed("duration") {
				params.VotingDuration = uint64(duration / time.Second)
			}
			if cmd.Flags().Changed("allocation") {
				mode, err := parseAllocation(allocation)
				if err != nil {
					return err
				}
				params.AllocationMode = int(mode)
			}

			if !app.Config.NonInteractive {
				if err := promptCaseParams(cmd, app, &params); err != nil {
					return err
				}
			}

			init, err := params.Validate()
			if err != nil {
				return err
			}

			if !yes && !app.Config.NonInteractive {
				ok, err := app.Selector.Confirm(cmd.Context(), fmt.Sprintf("Create case %q between %s and %s",
					init.Name, render.ShortAddress(init.ParticipantA), render.ShortAddress(init.ParticipantB)), true)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("cancelled")
				}
			}

			result, err := app.CreateCase.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			app.Sink.OnProgress(cmd.Context(), progressDone)

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), map[string]any{
					"number":      result.Number,
					"found":       result.Found,
					"transaction": result.Hash.Hex(),
				})
			}
			newSubmissionRenderer(cmd.OutOrStdout(), app).RenderCreated(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the case from a YAML file")
	cmd.Flags().StringVar(&params.Name, "name", "", "Case name")
	cmd.Flags().StringVar(&params.Description, "description", "", "Case description")
	cmd.Flags().StringVar(&params.ParticipantA, "participant-a", "", "Address of participant A")
	cmd.Flags().StringVar(&params.ParticipantB, "participant-b", "", "Address of participant B")
	cmd.Flags().StringVar(&params.CompensationA, "compensation-a", "", "Compensation participant A must stake")
	cmd.Flags().StringVar(&params.CompensationB, "compensation-b", "", "Compensation participant B must stake")
	cmd.Flags().DurationVar(&duration, "duration", usecase.DefaultVotingDuration*time.Second, "Voting duration")
	cmd.Flags().StringVar(&allocation, "allocation", "winner-takes-all", "Allocation mode (winner-takes-all, proportional)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// mergeCaseParams fills empty fields of flags from the file values
func mergeCaseParams(file, flags usecase.CreateCaseParams) usecase.CreateCaseParams {
	pick := func(flag, fromFile string) string {
		if flag != "" {
			return flag
		}
		return fromFile
	}
	merged := file
	merged.Name = pick(flags.Name, file.Name)
	merged.Description = pick(flags.Description, file.Description)
	merged.ParticipantA = pick(flags.ParticipantA, file.ParticipantA)
	merged.ParticipantB = pick(flags.ParticipantB, file.ParticipantB)
	merged.CompensationA = pick(flags.CompensationA, file.CompensationA)
	merged.CompensationB = pick(flags.CompensationB, file.CompensationB)
	return merged
}

func parseAllocation(s string) (domain.AllocationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "winner-takes-all", "winner", "0":
		return domain.AllocationWinnerTakesAll, nil
	case "proportional", "1":
		return domain.AllocationProportional, nil
	default:
		return 0, domain.ValidationError{Field: "allocation mode", Reason: fmt.Sprintf("%q is not winner-takes-all or proportional", s)}
	}
}

// promptCaseParams asks for every required field still missing
func promptCaseParams(cmd *cobra.Command, a *app.App, p *usecase.CreateCaseParams) error {
	ctx := cmd.Context()
	nonEmpty := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return domain.ValidationError{Field: field, Reason: "must not be empty"}
			}
			return nil
		}
	}
	amount := func(field string) func(string) error {
		return func(s string) error {
			if _, err := domain.ParseUnits(s, domain.TokenDecimals); err != nil {
				return domain.ValidationError{Field: field, Reason: err.Error()}
			}
			return nil
		}
	}
	address := func(field string) func(string) error {
		return func(s string) error { return usecase.ValidateParticipant(field, s) }
	}

	fields := []struct {
		value    *string
		label    string
		validate func(string) error
	}{
		{&p.Name, "Case name", nonEmpty("name")},
		{&p.ParticipantA, "Participant A address", address("participant A")},
		{&p.ParticipantB, "Participant B address", address("participant B")},
		{&p.CompensationA, "Compensation for A", amount("compensation A")},
		{&p.CompensationB, "Compensation for B", amount("compensation B")},
	}
	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		value, err := a.Selector.PromptString(ctx, f.label, f.validate)
		if err != nil {
			return err
		}
		*f.value = value
	}
	return nil
}
