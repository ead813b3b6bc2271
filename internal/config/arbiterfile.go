package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/arbiter/internal/domain/config"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// loadDotEnv loads .env then .env.local from the project root.
// Existing process variables win over both files.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadArbiterFile parses arbiter.toml from the project root and expands
// ${VAR} references. A missing file returns nil without error.
func loadArbiterFile(projectRoot string) (*config.ArbiterFileConfig, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	var raw config.ArbiterFileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	if raw.PrivateKey != "" {
		if _, ok := DetectEnvVar(raw.PrivateKey); !ok {
			slog.Warn("private_key is stored in plain text, reference an env var like ${ARBITER_KEY} instead",
				"file", path)
		}
	}

	expanded := raw
	expanded.RPCURL = os.ExpandEnv(raw.RPCURL)
	expanded.Contract = os.ExpandEnv(raw.Contract)
	expanded.CompensationToken = os.ExpandEnv(raw.CompensationToken)
	expanded.VoteToken = os.ExpandEnv(raw.VoteToken)
	expanded.VoterRegistry = os.ExpandEnv(raw.VoterRegistry)
	expanded.Address = os.ExpandEnv(raw.Address)
	expanded.PrivateKey = os.ExpandEnv(raw.PrivateKey)
	expanded.Keystore = os.ExpandEnv(raw.Keystore)
	expanded.DataDir = os.ExpandEnv(raw.DataDir)

	return &expanded, nil
}

// applyArbiterFile layers file values over the built-in defaults.
// Environment variables and flags still take precedence.
func applyArbiterFile(v *viper.Viper, file *config.ArbiterFileConfig) {
	setString := func(key, value string) {
		if strings.TrimSpace(value) != "" {
			v.SetDefault(key, value)
		}
	}

	setString("rpc_url", file.RPCURL)
	if file.ChainID != 0 {
		v.SetDefault("chain_id", file.ChainID)
	}
	setString("contract", file.Contract)
	setString("compensation_token", file.CompensationToken)
	setString("vote_token", file.VoteToken)
	setString("voter_registry", file.VoterRegistry)
	setString("address", file.Address)
	setString("private_key", file.PrivateKey)
	setString("keystore", file.Keystore)
	setString("poll_interval", file.PollInterval)
	setString("approval_wait", file.ApprovalWait)
	setString("approval_delay", file.ApprovalDelay)
	setString("approval_timeout", file.ApprovalTimeout)
	setString("tx_timeout", file.TxTimeout)
	if file.RateLimit > 0 {
		v.SetDefault("rate_limit", file.RateLimit)
	}
	setString("data_dir", file.DataDir)

	variant := file.Variant
	if variant.IndexBase != nil {
		v.SetDefault("variant.index_base", *variant.IndexBase)
	}
	setString("variant.status_set", variant.StatusSet)
	if variant.FeeBps != nil {
		v.SetDefault("variant.fee_bps", *variant.FeeBps)
	}
	setString("variant.fee_buffer", variant.FeeBuffer)
	setString("variant.dedicated_vote_token", variant.DedicatedVoteToken)
}
