package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

func writeProjectFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, ProjectFileName), []byte(content), 0644)
	require.NoError(t, err)
}

func TestProviderDefaults(t *testing.T) {
	dir := t.TempDir()

	v, err := SetupViper(dir, nil)
	require.NoError(t, err)

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, "", cfg.ConfigSource)
	assert.Equal(t, filepath.Join(dir, ".arbiter"), cfg.DataDir)
	assert.Equal(t, DefaultRPCURL, cfg.Network.RPCURL)
	assert.Equal(t, uint64(DefaultChainID), cfg.Network.ChainID)
	assert.Equal(t, common.HexToAddress(DefaultContract), cfg.Contracts.Arbitration)
	assert.Equal(t, common.HexToAddress(DefaultVoterRegistry), cfg.Contracts.VoterRegistry)
	assert.Equal(t, common.Address{}, cfg.Contracts.CompensationToken)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, ApprovalWaitReceipt, cfg.ApprovalWait)
	assert.Equal(t, 3*time.Second, cfg.ApprovalDelay)
	assert.Equal(t, 2*time.Minute, cfg.ApprovalTimeout)
	assert.Equal(t, 5*time.Minute, cfg.TxTimeout)
	assert.False(t, cfg.HasSigner())

	assert.Equal(t, uint64(0), cfg.Variant.IndexBase)
	assert.Equal(t, domain.StatusSetCancelled, cfg.Variant.StatusSet)
	assert.Equal(t, domain.VoteTokenAuto, cfg.Variant.DedicatedVoteToken)
	assert.Equal(t, 0, cfg.Variant.FeeBuffer.Cmp(domain.OneToken()))
}

func TestProviderProjectFile(t *testing.T) {
	t.Run("reads values and expands env references", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("ARBITER_TEST_RPC", "https://rpc.example.org")
		writeProjectFile(t, dir, `
rpc_url = "${ARBITER_TEST_RPC}"
chain_id = 31337
contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
compensation_token = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
poll_interval = "5s"
approval_wait = "delay"
data_dir = "state"

[variant]
index_base = 1
status_set = "abandoned"
fee_bps = 250
fee_buffer = "0"
dedicated_vote_token = "false"
`)

		v, err := SetupViper(dir, nil)
		require.NoError(t, err)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, ProjectFileName, cfg.ConfigSource)
		assert.Equal(t, "https://rpc.example.org", cfg.Network.RPCURL)
		assert.Equal(t, uint64(31337), cfg.Network.ChainID)
		assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), cfg.Contracts.Arbitration)
		assert.Equal(t, common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"), cfg.Contracts.CompensationToken)
		assert.Equal(t, 5*time.Second, cfg.PollInterval)
		assert.Equal(t, ApprovalWaitDelay, cfg.ApprovalWait)
		assert.Equal(t, filepath.Join(dir, "state"), cfg.DataDir)

		assert.Equal(t, uint64(1), cfg.Variant.IndexBase)
		assert.Equal(t, domain.StatusSetAbandoned, cfg.Variant.StatusSet)
		assert.Equal(t, uint64(250), cfg.Variant.FeeBps)
		assert.Equal(t, 0, cfg.Variant.FeeBuffer.Sign())
		assert.Equal(t, domain.VoteTokenNo, cfg.Variant.DedicatedVoteToken)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectFile(t, dir, `rpc_url = "https://from-file.example.org"`)
		t.Setenv("ARBITER_RPC_URL", "https://from-env.example.org")
		t.Setenv("ARBITER_VARIANT_INDEX_BASE", "1")

		v, err := SetupViper(dir, nil)
		require.NoError(t, err)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "https://from-env.example.org", cfg.Network.RPCURL)
		assert.Equal(t, uint64(1), cfg.Variant.IndexBase)
	})

	t.Run("flags override environment", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("ARBITER_RPC_URL", "https://from-env.example.org")

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("rpc-url", "", "")
		require.NoError(t, cmd.Flags().Set("rpc-url", "https://from-flag.example.org"))

		v, err := SetupViper(dir, cmd)
		require.NoError(t, err)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "https://from-flag.example.org", cfg.Network.RPCURL)
	})

	t.Run("dotenv supplies referenced secrets", func(t *testing.T) {
		dir := t.TempDir()
		t.Cleanup(func() { _ = os.Unsetenv("ARBITER_DOTENV_KEY") })
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("ARBITER_DOTENV_KEY=0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d\n"), 0644))
		writeProjectFile(t, dir, `private_key = "${ARBITER_DOTENV_KEY}"`)

		v, err := SetupViper(dir, nil)
		require.NoError(t, err)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.True(t, cfg.HasSigner())
		assert.Equal(t, "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d", cfg.PrivateKey)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectFile(t, dir, `rpc_url = `)

		_, err := SetupViper(dir, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse arbiter.toml")
	})
}

func TestProviderValidation(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{
			name:    "bad contract address",
			file:    `contract = "0x1234"`,
			wantErr: "contract: invalid address",
		},
		{
			name:    "bad approval wait",
			file:    `approval_wait = "forever"`,
			wantErr: "approval_wait must be",
		},
		{
			name: "bad index base",
			file: `[variant]
index_base = 2`,
			wantErr: "variant.index_base must be 0 or 1",
		},
		{
			name: "bad fee buffer",
			file: `[variant]
fee_buffer = "-1"`,
			wantErr: "variant.fee_buffer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProjectFile(t, dir, tt.file)

			v, err := SetupViper(dir, nil)
			require.NoError(t, err)

			_, err = Provider(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindProjectFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `rpc_url = "http://localhost:8545"`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := findProjectFile(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)

	_, err = findProjectFile(t.TempDir())
	assert.ErrorIs(t, err, errNoProjectFile)
}

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		raw     string
		wantVar string
		wantOK  bool
	}{
		{raw: "${ARBITER_KEY}", wantVar: "ARBITER_KEY", wantOK: true},
		{raw: "${lower_case1}", wantVar: "lower_case1", wantOK: true},
		{raw: "0xdeadbeef", wantOK: false},
		{raw: "prefix-${KEY}", wantOK: false},
		{raw: "${1BAD}", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, ok := DetectEnvVar(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVar, name)
		})
	}
}
