package domain

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for domain operations
var (
	// ErrCaseNotFound is returned when a case number holds no case
	ErrCaseNotFound = errors.New("case not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkMismatch is returned when the RPC serves another chain than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrNotConnected is returned when an operation needs an account but none is configured
	ErrNotConnected = errors.New("no account connected: set private_key, keystore or address")

	// ErrNoSigner is returned when a write is attempted without a signing key
	ErrNoSigner = errors.New("no signer configured: set private_key or keystore")

	// ErrNotVoter is returned when the voter registry rejects the connected account
	ErrNotVoter = errors.New("account is not a registered voter")

	// ErrActionPending is returned when a conflicting action is already in flight on a case
	ErrActionPending = errors.New("another action is pending on this case")

	// ErrApprovalNotConfirmed is returned when a token approval did not land before the spend
	ErrApprovalNotConfirmed = errors.New("token approval was not confirmed")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrActionUnavailable is returned when the case state does not allow an action
	ErrActionUnavailable = errors.New("action not available for this case")
)

// ValidationError reports input rejected before any chain interaction
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientFundsError is returned when the balance cannot cover a spend
type InsufficientFundsError struct {
	Token     string
	Required  *big.Int
	Available *big.Int
}

func (e InsufficientFundsError) Error() string {
	token := e.Token
	if token == "" {
		token = "tokens"
	}
	return fmt.Sprintf("insufficient balance: need %s %s, have %s",
		FormatUnits(e.Required, TokenDecimals), token, FormatUnits(e.Available, TokenDecimals))
}

// SubmissionError wraps a failure to sign, broadcast or mine a transaction
type SubmissionError struct {
	Call string
	Err  error
}

func (e SubmissionError) Error() string {
	return fmt.Sprintf("%s failed: %v; please retry", e.Call, e.Err)
}

func (e SubmissionError) Unwrap() error {
	return e.Err
}
