package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// EnvLoader wraps another Loader and overrides per-network endpoints from the environment:
//
//	<PREFIX>_NETWORK_<KEY>_RPC_URL
//	<PREFIX>_NETWORK_<KEY>_FAUCET_ADDRESS
//
// where KEY is the network key upper-cased, with '-' replaced by '_'.
type EnvLoader struct {
	Inner  Loader
	Prefix string
	// Lookup defaults to os.LookupEnv
	Lookup func(key string) (string, bool)
}

var _ Loader = (*EnvLoader)(nil)

// NetworkEnvPrefix is the prefix shared by all network override variables.
func NetworkEnvPrefix(prefix string) string {
	return prefix + "_NETWORK_"
}

func networkEnvVar(prefix string, key ftypes.ChainKey, suffix string) string {
	name := strings.ToUpper(strings.ReplaceAll(key.String(), "-", "_"))
	return NetworkEnvPrefix(prefix) + name + "_" + suffix
}

func (l *EnvLoader) Load(ctx context.Context) (*Config, error) {
	cfg, err := l.Inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	out := cfg.Clone()
	for key, n := range out.Networks {
		if n == nil {
			continue
		}
		if v, ok := lookup(networkEnvVar(l.Prefix, key, "RPC_URL")); ok && v != "" {
			n.RPCURL = v
		}
		name := networkEnvVar(l.Prefix, key, "FAUCET_ADDRESS")
		if v, ok := lookup(name); ok && v != "" {
			var addr common.Address
			if err := addr.UnmarshalText([]byte(v)); err != nil {
				return nil, fmt.Errorf("invalid %s: %w", name, err)
			}
			n.FaucetAddress = &addr
		}
	}
	return out, nil
}
