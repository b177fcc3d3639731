package backend

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	hdwallet "github.com/ethereum-optimism/go-ethereum-hdwallet"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const DefaultHDPath = "m/44'/60'/0'/0/0"

var ErrNoSigner = errors.New("no signing key configured")

// SignerConfig holds the faucet operator credential. It is never written anywhere.
type SignerConfig struct {
	// PrivateKey is hex encoded, optionally 0x prefixed.
	PrivateKey string
	// Mnemonic and HDPath derive the key instead, if PrivateKey is empty.
	Mnemonic string
	HDPath   string
}

func (c SignerConfig) Check() error {
	if c.PrivateKey != "" && c.Mnemonic != "" {
		return errors.New("only one of private key and mnemonic may be set")
	}
	return nil
}

// Signer signs dispense transactions with the faucet operator key.
type Signer struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

// NewSigner loads the configured key. It returns ErrNoSigner if no credential is set.
func NewSigner(cfg SignerConfig) (*Signer, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	var key *ecdsa.PrivateKey
	switch {
	case cfg.PrivateKey != "":
		k, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		key = k
	case cfg.Mnemonic != "":
		w, err := hdwallet.NewFromMnemonic(cfg.Mnemonic)
		if err != nil {
			return nil, fmt.Errorf("invalid mnemonic: %w", err)
		}
		path := cfg.HDPath
		if path == "" {
			path = DefaultHDPath
		}
		k, err := w.PrivateKey(accounts.Account{URL: accounts.URL{Path: path}})
		if err != nil {
			return nil, fmt.Errorf("failed to derive key of path %s: %w", path, err)
		}
		key = k
	default:
		return nil, ErrNoSigner
	}
	return &Signer{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

func (s *Signer) Address() common.Address {
	return s.addr
}

// TransactOpts returns fresh transact options bound to ctx, for one transaction on the given chain.
func (s *Signer) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
