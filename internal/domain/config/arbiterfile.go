package config

// ArbiterFileConfig represents the arbiter.toml project file.
// Every field is optional; flags and ARBITER_* variables take precedence.
type ArbiterFileConfig struct {
	RPCURL            string `toml:"rpc_url,omitempty"`
	ChainID           uint64 `toml:"chain_id,omitempty"`
	Contract          string `toml:"contract,omitempty"`
	CompensationToken string `toml:"compensation_token,omitempty"`
	VoteToken         string `toml:"vote_token,omitempty"`
	VoterRegistry     string `toml:"voter_registry,omitempty"`

	// Address is the read-only viewer when no signer is configured
	Address    string `toml:"address,omitempty"`
	PrivateKey string `toml:"private_key,omitempty"`
	Keystore   string `toml:"keystore,omitempty"`

	PollInterval    string  `toml:"poll_interval,omitempty"`
	ApprovalWait    string  `toml:"approval_wait,omitempty"`
	ApprovalDelay   string  `toml:"approval_delay,omitempty"`
	ApprovalTimeout string  `toml:"approval_timeout,omitempty"`
	TxTimeout       string  `toml:"tx_timeout,omitempty"`
	RateLimit       float64 `toml:"rate_limit,omitempty"`
	DataDir         string  `toml:"data_dir,omitempty"`

	Variant VariantConfig `toml:"variant"`
}

// VariantConfig represents the [variant] table
type VariantConfig struct {
	IndexBase          *uint64 `toml:"index_base,omitempty"`
	StatusSet          string  `toml:"status_set,omitempty"`
	FeeBps             *uint64 `toml:"fee_bps,omitempty"`
	FeeBuffer          string  `toml:"fee_buffer,omitempty"`
	DedicatedVoteToken string  `toml:"dedicated_vote_token,omitempty"`
}
