package backend

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/bindings"
	"github.com/lendbit/token-faucet/faucet/backend/config"
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// FaucetCaller is the read-only side of the faucet contract.
type FaucetCaller interface {
	CanRequestToken(opts *bind.CallOpts, user common.Address, tokenSymbol string) (bool, error)
	TimeUntilNextRequest(opts *bind.CallOpts, user common.Address, tokenSymbol string) (*big.Int, error)
}

// FaucetTransactor is the state-changing side of the faucet contract.
type FaucetTransactor interface {
	RequestTokens(opts *bind.TransactOpts, recipient common.Address, tokenSymbol string) (*types.Transaction, error)
}

var (
	_ FaucetCaller     = (*bindings.TokenFaucetCaller)(nil)
	_ FaucetTransactor = (*bindings.TokenFaucetTransactor)(nil)
)

// ChainFaucet holds the contract handles and credential needed to serve one chain.
type ChainFaucet struct {
	ChainID    *big.Int
	Caller     FaucetCaller
	Transactor FaucetTransactor
	// Receipts is used to await dispense transactions.
	Receipts bind.DeployBackend
	Signer   *Signer
}

// Chains resolves the faucet of a chain.
// Implementations return an error wrapping ErrConfiguration
// if the chain lacks an RPC endpoint, faucet address or signer.
type Chains interface {
	Faucet(chain ftypes.ChainKey) (*ChainFaucet, error)
}

// ChainSet is the Chains implementation backed by one RPC client per configured network.
// It is built once at startup and read-only afterwards.
type ChainSet struct {
	faucets  map[ftypes.ChainKey]*ChainFaucet
	missing  map[ftypes.ChainKey]string
	closeFns []func()
}

var _ Chains = (*ChainSet)(nil)

// DialChains dials every network of the catalog that has an RPC URL and a faucet address.
// Networks lacking either, or all networks if signer is nil, resolve to a configuration error.
func DialChains(ctx context.Context, logger log.Logger, cfg *config.Config, signer *Signer) (*ChainSet, error) {
	cs := &ChainSet{
		faucets: make(map[ftypes.ChainKey]*ChainFaucet),
		missing: make(map[ftypes.ChainKey]string),
	}
	for _, key := range cfg.NetworkKeys() {
		n, ok := cfg.Network(key)
		if !ok {
			continue
		}
		if reason := missingSetting(n, signer); reason != "" {
			logger.Warn("Network not fully configured, requests will fail", "chain", key, "missing", reason)
			cs.missing[key] = reason
			continue
		}
		client, err := ethclient.DialContext(ctx, n.RPCURL)
		if err != nil {
			cs.Close()
			return nil, fmt.Errorf("failed to dial RPC of %q: %w", key, err)
		}
		faucet, err := bindings.NewTokenFaucet(*n.FaucetAddress, client)
		if err != nil {
			client.Close()
			cs.Close()
			return nil, fmt.Errorf("failed to bind faucet contract of %q: %w", key, err)
		}
		cs.closeFns = append(cs.closeFns, client.Close)
		cs.faucets[key] = &ChainFaucet{
			ChainID:    new(big.Int).SetUint64(n.ChainID),
			Caller:     &faucet.TokenFaucetCaller,
			Transactor: &faucet.TokenFaucetTransactor,
			Receipts:   client,
			Signer:     signer,
		}
		logger.Info("Serving network", "chain", key, "chain_id", n.ChainID, "faucet", *n.FaucetAddress)
	}
	return cs, nil
}

func missingSetting(n *config.Network, signer *Signer) string {
	switch {
	case n.RPCURL == "":
		return "RPC URL"
	case n.FaucetAddress == nil:
		return "faucet address"
	case signer == nil:
		return "faucet private key"
	}
	return ""
}

func (cs *ChainSet) Faucet(chain ftypes.ChainKey) (*ChainFaucet, error) {
	if f, ok := cs.faucets[chain]; ok {
		return f, nil
	}
	if reason, ok := cs.missing[chain]; ok {
		return nil, fmt.Errorf("%w: %s not configured for %s", ftypes.ErrConfiguration, reason, chain)
	}
	return nil, fmt.Errorf("%w: unknown chain %s", ftypes.ErrConfiguration, chain)
}

// Close closes all RPC clients.
func (cs *ChainSet) Close() {
	for _, fn := range cs.closeFns {
		fn()
	}
	cs.closeFns = nil
}
