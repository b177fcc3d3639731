package backend

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/lmittmann/w3"
	"github.com/lmittmann/w3/module/eth"
	"github.com/lmittmann/w3/w3types"
	"golang.org/x/sync/errgroup"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/lendbit/token-faucet/faucet/backend/config"
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

var (
	funcDecimals  = w3.MustNewFunc("decimals()", "uint8")
	funcBalanceOf = w3.MustNewFunc("balanceOf(address)", "uint256")
)

const maxParallelChecks = 8

// TokenBalance is what the faucet contract holds of a token on a chain.
// Balance is nil when the chain has no faucet address configured.
type TokenBalance struct {
	Chain    ftypes.ChainKey
	Token    ftypes.TokenSymbol
	Decimals uint8
	Balance  *big.Int
}

// DialFn opens an RPC client for a network.
type DialFn func(ctx context.Context, url string) (*rpc.Client, error)

// CheckCatalog verifies every network that has an RPC URL against the chain it points at:
// the reported chain ID must match the catalog, and every token deployed there must
// report the catalog's decimals. Networks are checked concurrently, and the
// balances of healthy networks are returned alongside the failures of the others.
// It returns the faucet balance of every checked token.
func CheckCatalog(ctx context.Context, logger log.Logger, cfg *config.Config, dial DialFn) ([]TokenBalance, error) {
	if dial == nil {
		dial = rpc.DialContext
	}
	var (
		mu       sync.Mutex
		balances []TokenBalance
		failures error
	)
	// A failing network does not cancel the others: every network is checked
	// and all failures are reported together.
	var g errgroup.Group
	g.SetLimit(maxParallelChecks)
	for _, key := range cfg.NetworkKeys() {
		n, ok := cfg.Network(key)
		if !ok || n.RPCURL == "" {
			logger.Warn("Skipping network without RPC URL", "chain", key)
			continue
		}
		g.Go(func() error {
			out, err := checkNetwork(ctx, cfg, key, n, dial)
			mu.Lock()
			defer mu.Unlock()
			balances = append(balances, out...)
			if err != nil {
				failures = errors.Join(failures, fmt.Errorf("network %q: %w", key, err))
			}
			return nil
		})
	}
	_ = g.Wait()
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].Chain != balances[j].Chain {
			return balances[i].Chain < balances[j].Chain
		}
		return balances[i].Token < balances[j].Token
	})
	return balances, failures
}

func checkNetwork(ctx context.Context, cfg *config.Config, key ftypes.ChainKey, n *config.Network, dial DialFn) ([]TokenBalance, error) {
	rpcClient, err := dial(ctx, n.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %w", err)
	}
	client := w3.NewClient(rpcClient)
	defer client.Close()

	var chainID uint64
	if err := client.CallCtx(ctx, eth.ChainID().Returns(&chainID)); err != nil {
		return nil, fmt.Errorf("failed to fetch chain ID: %w", err)
	}
	if chainID != n.ChainID {
		return nil, fmt.Errorf("unexpected chain ID %d, expected %d", chainID, n.ChainID)
	}

	symbols := cfg.TokensFor(key)
	out := make([]TokenBalance, len(symbols))
	var calls []w3types.RPCCaller
	for i, sym := range symbols {
		tok, _ := cfg.Token(sym)
		addr := tok.Addresses[key]
		out[i] = TokenBalance{Chain: key, Token: sym}
		calls = append(calls, eth.CallFunc(addr, funcDecimals).Returns(&out[i].Decimals))
		if n.FaucetAddress != nil {
			calls = append(calls, eth.CallFunc(addr, funcBalanceOf, *n.FaucetAddress).Returns(&out[i].Balance))
		}
	}
	if len(calls) == 0 {
		return nil, nil
	}
	if err := client.CallCtx(ctx, calls...); err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}

	var result error
	for _, b := range out {
		tok, _ := cfg.Token(b.Token)
		if b.Decimals != tok.Decimals {
			result = errors.Join(result, fmt.Errorf("token %s reports %d decimals, expected %d", b.Token, b.Decimals, tok.Decimals))
		}
	}
	return out, result
}
