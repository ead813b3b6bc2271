package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

// ProjectFileName is the per-project configuration file
const ProjectFileName = "arbiter.toml"

// Sepolia deployment used when nothing else is configured
const (
	DefaultRPCURL        = "https://rpc.sepolia.org"
	DefaultChainID       = 11155111
	DefaultContract      = "0xe2637738db03dbdaed8853502bdd0d1fe95bcd11"
	DefaultVoterRegistry = "0x22dad1ada86e7e37aae2792055ab1c9c32fe2c16"
)

// errNoProjectFile is returned by FindProjectRoot when no arbiter.toml exists
var errNoProjectFile = errors.New("arbiter.toml not found")

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &RuntimeConfig{
		ProjectRoot: projectRoot,
		DataDir:     v.GetString("data_dir"),
		Network: Network{
			RPCURL:  v.GetString("rpc_url"),
			ChainID: v.GetUint64("chain_id"),
		},
		PrivateKey:          strings.TrimSpace(v.GetString("private_key")),
		KeystorePath:        v.GetString("keystore"),
		KeystorePassword:    v.GetString("keystore_password"),
		PollInterval:        v.GetDuration("poll_interval"),
		ApprovalWait:        ApprovalWait(strings.ToLower(v.GetString("approval_wait"))),
		ApprovalDelay:       v.GetDuration("approval_delay"),
		ApprovalTimeout:     v.GetDuration("approval_timeout"),
		TxTimeout:           v.GetDuration("tx_timeout"),
		ReceiptPollInterval: v.GetDuration("receipt_poll_interval"),
		RateLimit:           v.GetFloat64("rate_limit"),
		RateBurst:           v.GetInt("rate_burst"),
		Debug:               v.GetBool("debug"),
		NonInteractive:      v.GetBool("non_interactive"),
		JSON:                v.GetBool("json"),
		Timeout:             v.GetDuration("timeout"),
		LogToFile:           v.GetBool("log_to_file"),
	}
	if _, err := os.Stat(filepath.Join(projectRoot, ProjectFileName)); err == nil {
		cfg.ConfigSource = ProjectFileName
	}

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(projectRoot, ".arbiter")
	} else if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(projectRoot, cfg.DataDir)
	}
	if cfg.Network.RPCURL == "" {
		return nil, fmt.Errorf("rpc_url is not configured")
	}

	var err error
	if cfg.Contracts.Arbitration, err = parseAddress(v, "contract", true); err != nil {
		return nil, err
	}
	if cfg.Contracts.CompensationToken, err = parseAddress(v, "compensation_token", false); err != nil {
		return nil, err
	}
	if cfg.Contracts.VoteToken, err = parseAddress(v, "vote_token", false); err != nil {
		return nil, err
	}
	if cfg.Contracts.VoterRegistry, err = parseAddress(v, "voter_registry", false); err != nil {
		return nil, err
	}
	if cfg.Account, err = parseAddress(v, "address", false); err != nil {
		return nil, err
	}

	switch cfg.ApprovalWait {
	case ApprovalWaitReceipt, ApprovalWaitDelay:
	default:
		return nil, fmt.Errorf("approval_wait must be %q or %q, got %q", ApprovalWaitReceipt, ApprovalWaitDelay, cfg.ApprovalWait)
	}

	variant, err := variantFromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.Variant = variant

	return cfg, nil
}

func variantFromViper(v *viper.Viper) (domain.Variant, error) {
	variant := domain.Variant{
		IndexBase:          v.GetUint64("variant.index_base"),
		StatusSet:          domain.StatusSet(strings.ToLower(v.GetString("variant.status_set"))),
		FeeBps:             v.GetUint64("variant.fee_bps"),
		DedicatedVoteToken: domain.DedicatedVoteToken(strings.ToLower(v.GetString("variant.dedicated_vote_token"))),
	}
	buffer, err := domain.ParseUnits(v.GetString("variant.fee_buffer"), domain.TokenDecimals)
	if err != nil {
		return variant, fmt.Errorf("variant.fee_buffer: %w", err)
	}
	variant.FeeBuffer = buffer
	if err := variant.Validate(); err != nil {
		return variant, err
	}
	return variant, nil
}

func parseAddress(v *viper.Viper, key string, required bool) (common.Address, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		if required {
			return common.Address{}, fmt.Errorf("%s is not configured", key)
		}
		return common.Address{}, nil
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%s: %w: %s", key, domain.ErrInvalidAddress, raw)
	}
	return common.HexToAddress(raw), nil
}

// FindProjectRoot walks up from current directory to find arbiter.toml.
// Without a project file the working directory is the root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := findProjectFile(cwd)
	if errors.Is(err, errNoProjectFile) {
		return cwd, nil
	}
	return root, err
}

func findProjectFile(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoProjectFile
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance.
// Precedence: flags, ARBITER_* environment, arbiter.toml, built-in defaults.
func SetupViper(projectRoot string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ARBITER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("rpc_url", DefaultRPCURL)
	v.SetDefault("chain_id", DefaultChainID)
	v.SetDefault("contract", DefaultContract)
	v.SetDefault("voter_registry", DefaultVoterRegistry)
	v.SetDefault("poll_interval", "30s")
	v.SetDefault("approval_wait", string(ApprovalWaitReceipt))
	v.SetDefault("approval_delay", "3s")
	v.SetDefault("approval_timeout", "2m")
	v.SetDefault("tx_timeout", "5m")
	v.SetDefault("receipt_poll_interval", "2s")
	v.SetDefault("rate_limit", 10.0)
	v.SetDefault("rate_burst", 20)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("variant.index_base", 0)
	v.SetDefault("variant.status_set", string(domain.StatusSetCancelled))
	v.SetDefault("variant.fee_bps", 0)
	v.SetDefault("variant.fee_buffer", "1")
	v.SetDefault("variant.dedicated_vote_token", string(domain.VoteTokenAuto))

	loadDotEnv(projectRoot)

	file, err := loadArbiterFile(projectRoot)
	if err != nil {
		return nil, err
	}
	if file != nil {
		applyArbiterFile(v, file)
	}

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v, nil
}
