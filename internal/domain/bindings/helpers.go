package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ABI exposes the parsed arbitration ABI, e.g. to pack return data in fakes
func (arbitration *Arbitration) ABI() *abi.ABI {
	return &arbitration.abi
}

// ABI exposes the parsed ERC-20 ABI
func (eRC20 *ERC20) ABI() *abi.ABI {
	return &eRC20.abi
}

// ABI exposes the parsed voter registry ABI
func (voterRegistry *VoterRegistry) ABI() *abi.ABI {
	return &voterRegistry.abi
}

// GetEventID returns the event signature hash for a given event name
// This is a helper method that works alongside the generated ABI bindings
func (arbitration *Arbitration) GetEventID(eventName string) (common.Hash, error) {
	event, exists := arbitration.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// FindCaseAdded scans receipt logs emitted by contract for the CaseAdded event
func (arbitration *Arbitration) FindCaseAdded(contract common.Address, logs []*types.Log) (*ArbitrationCaseAdded, bool) {
	id := arbitration.abi.Events[ArbitrationCaseAddedEventName].ID
	for _, log := range logs {
		if log == nil || log.Address != contract || len(log.Topics) == 0 || log.Topics[0] != id {
			continue
		}
		event, err := arbitration.UnpackCaseAddedEvent(log)
		if err != nil {
			continue
		}
		return event, true
	}
	return nil, false
}

// FindCaseErrors collects CaseError reasons emitted by contract
func (arbitration *Arbitration) FindCaseErrors(contract common.Address, logs []*types.Log) []*ArbitrationCaseError {
	id := arbitration.abi.Events[ArbitrationCaseErrorEventName].ID
	var out []*ArbitrationCaseError
	for _, log := range logs {
		if log == nil || log.Address != contract || len(log.Topics) == 0 || log.Topics[0] != id {
			continue
		}
		if event, err := arbitration.UnpackCaseErrorEvent(log); err == nil {
			out = append(out, event)
		}
	}
	return out
}

func (e *ArbitrationCaseAdded) String() string {
	return fmt.Sprintf(
		"%s: case=%s name=%q",
		e.ContractEventName(),
		e.CaseNum,
		e.CaseName,
	)
}

func (e *ArbitrationCaseError) String() string {
	return fmt.Sprintf(
		"%s: case=%s reason=%q",
		e.ContractEventName(),
		e.CaseNum,
		e.Reason,
	)
}
