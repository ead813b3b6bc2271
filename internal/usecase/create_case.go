package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/internal/domain/bindings"
	"gopkg.in/yaml.v3"
)

// DefaultVotingDuration is one day in seconds
const DefaultVotingDuration = 86400

var participantPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// CreateCaseParams is the raw user input for a new case. Amounts are
// decimal token strings.
type CreateCaseParams struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	ParticipantA   string `yaml:"participant_a"`
	ParticipantB   string `yaml:"participant_b"`
	CompensationA  string `yaml:"compensation_a"`
	CompensationB  string `yaml:"compensation_b"`
	VotingDuration uint64 `yaml:"voting_duration"`
	AllocationMode int    `yaml:"allocation_mode"`
}

// LoadCaseFile reads CreateCaseParams from a YAML file
func LoadCaseFile(path string) (CreateCaseParams, error) {
	var params CreateCaseParams
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input file
	if err != nil {
		return params, fmt.Errorf("failed to read case file: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("failed to parse case file: %w", err)
	}
	return params, nil
}

// ValidateParticipant checks the address format accepted by addCase
func ValidateParticipant(field, value string) error {
	if !participantPattern.MatchString(value) {
		return domain.ValidationError{Field: field, Reason: "must be a 0x-prefixed 40 hex digit address"}
	}
	return nil
}

// Validate converts the input into addCase arguments. Nothing invalid
// reaches the chain.
func (p CreateCaseParams) Validate() (domain.CaseInit, error) {
	var init domain.CaseInit

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return init, domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	a := strings.TrimSpace(p.ParticipantA)
	b := strings.TrimSpace(p.ParticipantB)
	if err := ValidateParticipant("participant A", a); err != nil {
		return init, err
	}
	if err := ValidateParticipant("participant B", b); err != nil {
		return init, err
	}
	if strings.EqualFold(a, b) {
		return init, domain.ValidationError{Field: "participants", Reason: "A and B must differ"}
	}

	compA, err := domain.ParseUnits(p.CompensationA, domain.TokenDecimals)
	if err != nil {
		return init, domain.ValidationError{Field: "compensation A", Reason: err.Error()}
	}
	compB, err := domain.ParseUnits(p.CompensationB, domain.TokenDecimals)
	if err != nil {
		return init, domain.ValidationError{Field: "compensation B", Reason: err.Error()}
	}

	duration := p.VotingDuration
	if duration == 0 {
		duration = DefaultVotingDuration
	}

	if p.AllocationMode != int(domain.AllocationWinnerTakesAll) && p.AllocationMode != int(domain.AllocationProportional) {
		return init, domain.ValidationError{Field: "allocation mode", Reason: "must be 0 (winner takes all) or 1 (proportional)"}
	}
	mode := domain.AllocationMode(p.AllocationMode)

	return domain.CaseInit{
		Name:           name,
		Description:    p.Description,
		ParticipantA:   common.HexToAddress(a),
		ParticipantB:   common.HexToAddress(b),
		CompensationA:  compA,
		CompensationB:  compB,
		VotingDuration: duration,
		Allocation:     mode,
	}, nil
}

// CreateCaseResult describes the mined addCase transaction
type CreateCaseResult struct {
	Init    domain.CaseInit
	Hash    common.Hash
	Receipt *types.Receipt
	// Number is the assigned case number; Found is false when the receipt had no CaseAdded log
	Number uint64
	Found  bool
}

// CreateCase is the use case for adding a case
type CreateCase struct {
	cfg      *config.RuntimeConfig
	resolver *DeploymentResolver
	tx       Transactor
	sink     ProgressSink
	log      *slog.Logger
	arb      *bindings.Arbitration
}

// NewCreateCase creates a new CreateCase use case
func NewCreateCase(cfg *config.RuntimeConfig, resolver *DeploymentResolver, tx Transactor, sink ProgressSink, log *slog.Logger) *CreateCase {
	return &CreateCase{
		cfg:      cfg,
		resolver: resolver,
		tx:       tx,
		sink:     sink,
		log:      log,
		arb:      bindings.NewArbitration(),
	}
}

// Run validates params, submits addCase and waits for the receipt
func (uc *CreateCase) Run(ctx context.Context, params CreateCaseParams) (*CreateCaseResult, error) {
	init, err := params.Validate()
	if err != nil {
		return nil, err
	}
	if _, ok := uc.tx.From(); !ok {
		return nil, domain.ErrNoSigner
	}
	d, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Submitting case %q", init.Name),
		Spinner: true,
	})

	data := uc.arb.PackAddCase(bindings.ICaseManagerCaseInit{
		CaseName:        init.Name,
		CaseDescription: init.Description,
		ParticipantA:    init.ParticipantA,
		ParticipantB:    init.ParticipantB,
		CompensationA:   init.CompensationA,
		CompensationB:   init.CompensationB,
		VotingDuration:  new(big.Int).SetUint64(init.VotingDuration),
		AllocationMode:  big.NewInt(int64(init.Allocation)),
	})

	submitter := NewSubmitter("addCase", uc.tx, uc.cfg.TxTimeout, uc.log)
	submission := submitter.Submit(ctx, TxRequest{Label: "addCase", To: d.Contract, Data: data})

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "confirming",
		Message: "Waiting for confirmation",
		Spinner: true,
	})
	receipt, err := submission.Wait(ctx)
	if err != nil {
		return nil, err
	}

	result := &CreateCaseResult{
		Init:    init,
		Hash:    submission.Status().Hash,
		Receipt: receipt,
	}
	if event, ok := uc.arb.FindCaseAdded(d.Contract, receipt.Logs); ok {
		result.Number = event.CaseNum.Uint64()
		result.Found = true
	}
	for _, caseErr := range uc.arb.FindCaseErrors(d.Contract, receipt.Logs) {
		uc.sink.Error(caseErr.String())
	}
	return result, nil
}
