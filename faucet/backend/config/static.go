package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// Network describes one chain the faucet serves.
type Network struct {
	Name    string `yaml:"name" toml:"name"`
	ChainID uint64 `yaml:"chain_id" toml:"chain_id"`

	// RPCURL and FaucetAddress may be left out of the catalog file
	// and provided through the environment instead.
	RPCURL        string          `yaml:"rpc_url,omitempty" toml:"rpc_url,omitempty"`
	FaucetAddress *common.Address `yaml:"faucet_address,omitempty" toml:"faucet_address,omitempty"`

	BlockExplorer     string `yaml:"block_explorer,omitempty" toml:"block_explorer,omitempty"`
	BlockExplorerName string `yaml:"block_explorer_name,omitempty" toml:"block_explorer_name,omitempty"`
}

// Token describes one dispensable ERC-20 token.
type Token struct {
	Name     string `yaml:"name" toml:"name"`
	Decimals uint8  `yaml:"decimals" toml:"decimals"`
	// Amount is the human-readable amount the faucet contract dispenses per request.
	Amount string `yaml:"amount" toml:"amount"`

	// Addresses lists the token contract per chain. A token is only offered on chains listed here.
	Addresses map[ftypes.ChainKey]common.Address `yaml:"addresses" toml:"addresses"`

	Icon    string `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Color   string `yaml:"color,omitempty" toml:"color,omitempty"`
	LogoURI string `yaml:"logo_uri,omitempty" toml:"logo_uri,omitempty"`
}

// Config is the catalog of networks and tokens. It is read-only once loaded.
type Config struct {
	// DefaultChain is served by the single-chain endpoint.
	// If unspecified and only one network is configured, that network is the default.
	DefaultChain ftypes.ChainKey `yaml:"default_chain,omitempty" toml:"default_chain,omitempty"`

	Networks map[ftypes.ChainKey]*Network    `yaml:"networks,omitempty" toml:"networks,omitempty"`
	Tokens   map[ftypes.TokenSymbol]*Token `yaml:"tokens,omitempty" toml:"tokens,omitempty"`
}

var _ Loader = (*Config)(nil)

// Load is implemented on the Config itself,
// so that an already-instantiated catalog can be used for in-process service setup.
func (c *Config) Load(ctx context.Context) (*Config, error) {
	return c, nil
}

// Check verifies the catalog is internally consistent.
// Missing RPC URLs and faucet addresses are allowed here; they are reported per request.
func (c *Config) Check() error {
	var result error
	for key, n := range c.Networks {
		if n == nil {
			result = errors.Join(result, fmt.Errorf("network %q: empty entry", key))
			continue
		}
		if n.Name == "" {
			result = errors.Join(result, fmt.Errorf("network %q: missing name", key))
		}
		if n.ChainID == 0 {
			result = errors.Join(result, fmt.Errorf("network %q: missing chain_id", key))
		}
	}
	for sym, tok := range c.Tokens {
		if tok == nil {
			result = errors.Join(result, fmt.Errorf("token %q: empty entry", sym))
			continue
		}
		for chain := range tok.Addresses {
			if !c.HasNetwork(chain) {
				result = errors.Join(result, fmt.Errorf("token %q: unknown network %q", sym, chain))
			}
		}
	}
	if c.DefaultChain != "" && !c.HasNetwork(c.DefaultChain) {
		result = errors.Join(result, fmt.Errorf("default_chain %q is not a configured network", c.DefaultChain))
	}
	return result
}

func (c *Config) Network(key ftypes.ChainKey) (*Network, bool) {
	n, ok := c.Networks[key]
	return n, ok && n != nil
}

func (c *Config) HasNetwork(key ftypes.ChainKey) bool {
	_, ok := c.Network(key)
	return ok
}

func (c *Config) Token(sym ftypes.TokenSymbol) (*Token, bool) {
	t, ok := c.Tokens[sym]
	return t, ok && t != nil
}

// SupportsToken reports whether the token is in the catalog and deployed on the chain.
func (c *Config) SupportsToken(chain ftypes.ChainKey, sym ftypes.TokenSymbol) bool {
	tok, ok := c.Token(sym)
	if !ok {
		return false
	}
	_, ok = tok.Addresses[chain]
	return ok
}

// NetworkKeys returns all network keys, sorted.
func (c *Config) NetworkKeys() []ftypes.ChainKey {
	return slices.Sorted(maps.Keys(c.Networks))
}

// TokensFor returns the symbols of the tokens offered on the chain, sorted.
func (c *Config) TokensFor(chain ftypes.ChainKey) []ftypes.TokenSymbol {
	var out []ftypes.TokenSymbol
	for sym := range c.Tokens {
		if c.SupportsToken(chain, sym) {
			out = append(out, sym)
		}
	}
	slices.Sort(out)
	return out
}

// Default returns the chain served by the single-chain endpoint, if any.
func (c *Config) Default() (ftypes.ChainKey, bool) {
	if c.DefaultChain != "" {
		return c.DefaultChain, c.HasNetwork(c.DefaultChain)
	}
	if len(c.Networks) == 1 {
		for key := range c.Networks {
			return key, c.HasNetwork(key)
		}
	}
	return "", false
}

// Clone returns a copy that shares no mutable network entries with c.
// Tokens are shared, since nothing modifies them after loading.
func (c *Config) Clone() *Config {
	out := &Config{
		DefaultChain: c.DefaultChain,
		Networks:     make(map[ftypes.ChainKey]*Network, len(c.Networks)),
		Tokens:       maps.Clone(c.Tokens),
	}
	for key, n := range c.Networks {
		if n == nil {
			out.Networks[key] = nil
			continue
		}
		cpy := *n
		if n.FaucetAddress != nil {
			addr := *n.FaucetAddress
			cpy.FaucetAddress = &addr
		}
		out.Networks[key] = &cpy
	}
	return out
}
