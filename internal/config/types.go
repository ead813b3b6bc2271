package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

// ApprovalWait selects how a spend waits for its token approval
type ApprovalWait string

const (
	// ApprovalWaitReceipt waits for the approval receipt and re-reads the allowance
	ApprovalWaitReceipt ApprovalWait = "receipt"
	// ApprovalWaitDelay sleeps for ApprovalDelay and proceeds regardless
	ApprovalWaitDelay ApprovalWait = "delay"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	DataDir      string
	ConfigSource string // "arbiter.toml" or "" when only env/flags were used

	Network   Network
	Contracts Contracts
	Variant   domain.Variant

	// Account settings. Signing keys never leave this struct.
	Account          common.Address
	PrivateKey       string
	KeystorePath     string
	KeystorePassword string

	// Polling and transaction settings
	PollInterval        time.Duration
	ApprovalWait        ApprovalWait
	ApprovalDelay       time.Duration
	ApprovalTimeout     time.Duration
	TxTimeout           time.Duration
	ReceiptPollInterval time.Duration
	RateLimit           float64
	RateBurst           int

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration
	LogToFile      bool
}

// Network represents network configuration
type Network struct {
	ChainID uint64 `json:"chainId"`
	RPCURL  string `json:"rpcUrl"`
}

// Contracts holds the deployment addresses. Zero token or registry
// addresses are resolved from the arbitration contract on demand.
type Contracts struct {
	Arbitration       common.Address
	CompensationToken common.Address
	VoteToken         common.Address
	VoterRegistry     common.Address
}

// HasSigner reports whether a signing key was configured
func (c *RuntimeConfig) HasSigner() bool {
	return c.PrivateKey != "" || c.KeystorePath != ""
}
