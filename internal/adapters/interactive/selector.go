package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// ErrNonInteractive is returned when a prompt is needed but prompting is disabled
var ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▸ {{ . | cyan }}",
	Inactive: "  {{ . | faint }}",
	Selected: "✓ {{ . | green }}",
	Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to search, Enter to select"),
}

// SelectCase picks a case from a list of rows. Unreadable rows are listed
// but cannot be chosen.
func (s *SelectorAdapter) SelectCase(ctx context.Context, prompt string, rows []usecase.CaseRow) (uint64, error) {
	if s.config.NonInteractive {
		return 0, ErrNonInteractive
	}

	candidates := make([]usecase.CaseRow, 0, len(rows))
	for _, row := range rows {
		if row.Available() {
			candidates = append(candidates, row)
		}
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no cases to select from")
	}
	if len(candidates) == 1 {
		return candidates[0].Number, nil
	}

	options := formatCaseOptions(candidates, s.config.Variant.StatusSet)
	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         selectTemplates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}
	return candidates[index].Number, nil
}

// SelectSide picks participant A or B of a case
func (s *SelectorAdapter) SelectSide(ctx context.Context, prompt string, c *domain.Case) (domain.Side, error) {
	if s.config.NonInteractive {
		return 0, ErrNonInteractive
	}

	options := []string{
		fmt.Sprintf("A  %s", c.ParticipantA.Hex()),
		fmt.Sprintf("B  %s", c.ParticipantB.Hex()),
	}
	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: selectTemplates,
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}
	if index == 1 {
		return domain.SideB, nil
	}
	return domain.SideA, nil
}

// Confirm asks a yes/no question. Non-interactive runs take the default.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string, defaultValue bool) (bool, error) {
	if s.config.NonInteractive {
		return defaultValue, nil
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if defaultValue {
		p.Default = "y"
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PromptString reads a line of text, re-asking until validate accepts it
func (s *SelectorAdapter) PromptString(ctx context.Context, prompt string, validate func(string) error) (string, error) {
	if s.config.NonInteractive {
		return "", ErrNonInteractive
	}

	p := promptui.Prompt{
		Label:    prompt,
		Validate: promptui.ValidateFunc(validate),
	}
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// formatCaseOptions creates display strings for case selection
func formatCaseOptions(rows []usecase.CaseRow, set domain.StatusSet) []string {
	options := make([]string, len(rows))
	for i, row := range rows {
		number := color.New(color.FgWhite, color.Bold).Sprintf("#%d", row.Number)
		status := color.New(color.FgBlue).Sprintf("[%s]", row.Case.Status.Label(set))
		options[i] = fmt.Sprintf("%s %s %s", number, row.Case.Name, status)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.CaseSelector = (*SelectorAdapter)(nil)
