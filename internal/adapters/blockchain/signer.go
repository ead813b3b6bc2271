package blockchain

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/arbiter/internal/config"
)

// Signer holds the local signing key that stands in for a wallet
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner wraps a private key
func NewSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}
}

// LoadSigner builds the signer from private_key or keystore settings.
// It returns nil without error when neither is configured.
func LoadSigner(cfg *config.RuntimeConfig) (*Signer, error) {
	switch {
	case cfg.PrivateKey != "":
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private_key: %w", err)
		}
		return NewSigner(key), nil

	case cfg.KeystorePath != "":
		data, err := os.ReadFile(cfg.KeystorePath) //nolint:gosec // configured keystore path
		if err != nil {
			return nil, fmt.Errorf("failed to read keystore: %w", err)
		}
		if cfg.KeystorePassword == "" {
			return nil, fmt.Errorf("keystore_password is required to unlock %s", cfg.KeystorePath)
		}
		key, err := keystore.DecryptKey(data, cfg.KeystorePassword)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt keystore: %w", err)
		}
		return NewSigner(key.PrivateKey), nil

	default:
		return nil, nil
	}
}

// Address is the signing account
func (s *Signer) Address() common.Address {
	return s.address
}

// SignTx signs tx for chainID
func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}
