package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/arbiter/internal/domain"
)

// ContractStatus is the use case behind `arbiter status`
type ContractStatus struct {
	reader   CaseReader
	resolver *DeploymentResolver
	sink     ProgressSink
}

// NewContractStatus creates a new ContractStatus use case
func NewContractStatus(reader CaseReader, resolver *DeploymentResolver, sink ProgressSink) *ContractStatus {
	return &ContractStatus{reader: reader, resolver: resolver, sink: sink}
}

// Run reads the contract-level views
func (uc *ContractStatus) Run(ctx context.Context) (*domain.ContractStatus, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Reading contract status",
		Spinner: true,
	})

	d, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	running, err := uc.reader.IsRunning(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read running flag: %w", err)
	}
	count, err := uc.reader.CurrentCaseNum(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read case count: %w", err)
	}

	return &domain.ContractStatus{
		Address:           d.Contract,
		Running:           running,
		CaseCount:         count,
		CompensationToken: d.CompensationToken,
		VoteToken:         d.VoteToken,
		VoteTokenAmount:   d.VoteTokenAmount,
		FeeBps:            d.FeeBps,
		TokenSymbol:       d.TokenSymbol,
	}, nil
}
