package config

import (
	"errors"
	"fmt"

	"github.com/lendbit/token-faucet/faucet/backend"
	fconf "github.com/lendbit/token-faucet/faucet/backend/config"
	oplog "github.com/lendbit/token-faucet/service/log"
	opmetrics "github.com/lendbit/token-faucet/service/metrics"
)

const (
	DefaultConfigYaml = "config.yaml"
)

var ErrInvalidRPCPort = errors.New("invalid RPC port")

type RPCConfig struct {
	ListenAddr  string
	ListenPort  int
	CORSOrigins []string
	// EnableJSONRPC serves the faucet namespace on /rpc next to the REST endpoints.
	EnableJSONRPC bool
}

func (c RPCConfig) Check() error {
	if c.ListenPort < 0 || c.ListenPort > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidRPCPort, c.ListenPort)
	}
	return nil
}

type Config struct {
	Version string

	LogConfig     oplog.CLIConfig
	MetricsConfig opmetrics.CLIConfig
	RPC           RPCConfig

	Signer  backend.SignerConfig
	Catalog fconf.Loader

	// CheckCatalog verifies the catalog against the configured chains at startup.
	CheckCatalog bool
}

func (c *Config) Check() error {
	var result error
	result = errors.Join(result, c.MetricsConfig.Check())
	result = errors.Join(result, c.RPC.Check())
	result = errors.Join(result, c.Signer.Check())
	if c.Catalog == nil {
		result = errors.Join(result, errors.New("missing catalog"))
	}
	return result
}

func DefaultCLIConfig() *Config {
	return &Config{
		Version:       "dev",
		LogConfig:     oplog.DefaultCLIConfig(),
		MetricsConfig: opmetrics.DefaultCLIConfig(),
		RPC: RPCConfig{
			ListenAddr:  "0.0.0.0",
			ListenPort:  8080,
			CORSOrigins: []string{"*"},
		},
		Signer:  backend.SignerConfig{HDPath: backend.DefaultHDPath},
		Catalog: &fconf.YamlLoader{Path: DefaultConfigYaml},
	}
}
