package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

func TestYamlLoader_Load(t *testing.T) {
	x := &YamlLoader{Path: filepath.Join(".", "testdata", "config.yaml")}
	result, err := x.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, result.Check())

	require.Equal(t, []ftypes.ChainKey{"base-sepolia", "sepolia"}, result.NetworkKeys())
	n, ok := result.Network("base-sepolia")
	require.True(t, ok)
	require.Equal(t, "Base Sepolia", n.Name)
	require.Equal(t, uint64(84532), n.ChainID)
	require.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), *n.FaucetAddress)

	sepolia, ok := result.Network("sepolia")
	require.True(t, ok)
	require.Empty(t, sepolia.RPCURL)
	require.Nil(t, sepolia.FaucetAddress)

	usdt, ok := result.Token("USDT")
	require.True(t, ok)
	require.Equal(t, uint8(6), usdt.Decimals)
	require.Equal(t, "100", usdt.Amount)
	require.Equal(t, "💵", usdt.Icon)

	require.Equal(t, []ftypes.TokenSymbol{"DAI", "LINK", "USDT", "WETH"}, result.TokensFor("base-sepolia"))
	require.Equal(t, []ftypes.TokenSymbol{"LINK"}, result.TokensFor("sepolia"))
	require.Empty(t, result.TokensFor("mainnet"))

	def, ok := result.Default()
	require.True(t, ok)
	require.Equal(t, ftypes.ChainKey("base-sepolia"), def)
}

func TestYamlLoader_NotFound(t *testing.T) {
	x := &YamlLoader{Path: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := x.Load(context.Background())
	require.ErrorContains(t, err, "failed to read config")
}

func TestYamlLoader_Invalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "invalid.yaml")
	// a valid yaml map, but not a catalog field
	require.NoError(t, os.WriteFile(p, []byte("foobar: invalid"), 0644))

	x := &YamlLoader{Path: p}
	_, err := x.Load(context.Background())
	require.ErrorContains(t, err, "field foobar not found")
}

func TestYamlLoader_InvalidKey(t *testing.T) {
	p := filepath.Join(t.TempDir(), "badkey.yaml")
	require.NoError(t, os.WriteFile(p, []byte("networks:\n  \"bad key\":\n    name: x\n"), 0644))
	_, err := (&YamlLoader{Path: p}).Load(context.Background())
	require.ErrorContains(t, err, "failed to decode config")
}

func TestTomlLoader_Load(t *testing.T) {
	x := &TomlLoader{Path: filepath.Join(".", "testdata", "config.toml")}
	result, err := x.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, result.Check())
	require.Equal(t, []ftypes.ChainKey{"base-sepolia"}, result.NetworkKeys())
	require.Equal(t, []ftypes.TokenSymbol{"USDT", "WETH"}, result.TokensFor("base-sepolia"))
	weth, ok := result.Token("WETH")
	require.True(t, ok)
	require.Equal(t, common.HexToAddress("0xAB6015514c40F5B0bb583f28c0819cA79e3B9415"), weth.Addresses["base-sepolia"])
}

func TestTomlLoader_Unknown(t *testing.T) {
	p := filepath.Join(t.TempDir(), "unknown.toml")
	require.NoError(t, os.WriteFile(p, []byte("foobar = 1\n"), 0644))
	_, err := (&TomlLoader{Path: p}).Load(context.Background())
	require.ErrorContains(t, err, "unknown fields")
}

func TestLoaderForPath(t *testing.T) {
	require.IsType(t, &TomlLoader{}, LoaderForPath("catalog.TOML"))
	require.IsType(t, &YamlLoader{}, LoaderForPath("catalog.yml"))
	require.IsType(t, &YamlLoader{}, LoaderForPath("catalog"))
}

func TestCheck(t *testing.T) {
	cfg := &Config{
		DefaultChain: "mainnet",
		Networks: map[ftypes.ChainKey]*Network{
			"a": {Name: "", ChainID: 0},
		},
		Tokens: map[ftypes.TokenSymbol]*Token{
			"X": {Addresses: map[ftypes.ChainKey]common.Address{"b": {}}},
		},
	}
	err := cfg.Check()
	require.ErrorContains(t, err, `network "a": missing name`)
	require.ErrorContains(t, err, `network "a": missing chain_id`)
	require.ErrorContains(t, err, `token "X": unknown network "b"`)
	require.ErrorContains(t, err, `default_chain "mainnet"`)

	require.NoError(t, (&Config{}).Check())
}

func TestDefault(t *testing.T) {
	_, ok := (&Config{}).Default()
	require.False(t, ok)

	single := &Config{Networks: map[ftypes.ChainKey]*Network{"only": {Name: "Only", ChainID: 1}}}
	key, ok := single.Default()
	require.True(t, ok)
	require.Equal(t, ftypes.ChainKey("only"), key)

	multi := &Config{Networks: map[ftypes.ChainKey]*Network{
		"a": {Name: "A", ChainID: 1},
		"b": {Name: "B", ChainID: 2},
	}}
	_, ok = multi.Default()
	require.False(t, ok)
}

func TestSupportsToken(t *testing.T) {
	cfg := &Config{
		Networks: map[ftypes.ChainKey]*Network{"a": {Name: "A", ChainID: 1}, "b": {Name: "B", ChainID: 2}},
		Tokens: map[ftypes.TokenSymbol]*Token{
			"X": {Addresses: map[ftypes.ChainKey]common.Address{"a": common.HexToAddress("0x01")}},
		},
	}
	require.True(t, cfg.SupportsToken("a", "X"))
	require.False(t, cfg.SupportsToken("b", "X"))
	require.False(t, cfg.SupportsToken("a", "Y"))
	require.True(t, cfg.HasNetwork("b"))
	require.False(t, cfg.HasNetwork("c"))
}

func TestEnvLoader(t *testing.T) {
	inner := &Config{
		Networks: map[ftypes.ChainKey]*Network{
			"base-sepolia": {Name: "Base Sepolia", ChainID: 84532},
			"sepolia":      {Name: "Sepolia", ChainID: 11155111, RPCURL: "http://file"},
		},
	}
	env := map[string]string{
		"FAUCET_NETWORK_BASE_SEPOLIA_RPC_URL":        "http://localhost:8545",
		"FAUCET_NETWORK_BASE_SEPOLIA_FAUCET_ADDRESS": "0x2222222222222222222222222222222222222222",
	}
	l := &EnvLoader{
		Inner:  inner,
		Prefix: "FAUCET",
		Lookup: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
	out, err := l.Load(context.Background())
	require.NoError(t, err)

	base, _ := out.Network("base-sepolia")
	require.Equal(t, "http://localhost:8545", base.RPCURL)
	require.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), *base.FaucetAddress)
	sep, _ := out.Network("sepolia")
	require.Equal(t, "http://file", sep.RPCURL)

	// the wrapped catalog is left untouched
	require.Empty(t, inner.Networks["base-sepolia"].RPCURL)
	require.Nil(t, inner.Networks["base-sepolia"].FaucetAddress)

	env["FAUCET_NETWORK_SEPOLIA_FAUCET_ADDRESS"] = "0x1234"
	_, err = l.Load(context.Background())
	require.ErrorContains(t, err, "invalid FAUCET_NETWORK_SEPOLIA_FAUCET_ADDRESS")
}
