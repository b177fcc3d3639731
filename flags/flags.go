package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lendbit/token-faucet/config"
	"github.com/lendbit/token-faucet/faucet/backend"
	fconf "github.com/lendbit/token-faucet/faucet/backend/config"
	opservice "github.com/lendbit/token-faucet/service"
	oplog "github.com/lendbit/token-faucet/service/log"
	opmetrics "github.com/lendbit/token-faucet/service/metrics"
)

const EnvVarPrefix = "FAUCET"

func prefixEnvVars(name string) []string {
	return opservice.PrefixEnvVar(EnvVarPrefix, name)
}

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "Catalog file path, YAML or TOML (by .toml extension)",
		EnvVars: prefixEnvVars("CONFIG"),
		Value:   config.DefaultConfigYaml,
	}
	PrivateKeyFlag = &cli.StringFlag{
		Name:     "private-key",
		Usage:    "Hex private key of the faucet operator account",
		EnvVars:  prefixEnvVars("PRIVATE_KEY"),
		Category: "Signer",
	}
	MnemonicFlag = &cli.StringFlag{
		Name:     "mnemonic",
		Usage:    "BIP-39 mnemonic of the faucet operator account, used instead of --private-key",
		EnvVars:  prefixEnvVars("MNEMONIC"),
		Category: "Signer",
	}
	HDPathFlag = &cli.StringFlag{
		Name:     "hd-path",
		Usage:    "HD derivation path used with --mnemonic",
		EnvVars:  prefixEnvVars("HD_PATH"),
		Value:    backend.DefaultHDPath,
		Category: "Signer",
	}
	RPCListenAddrFlag = &cli.StringFlag{
		Name:     "rpc.addr",
		Usage:    "HTTP listening address",
		EnvVars:  prefixEnvVars("RPC_ADDR"),
		Value:    "0.0.0.0",
		Category: "RPC",
	}
	RPCListenPortFlag = &cli.IntFlag{
		Name:     "rpc.port",
		Usage:    "HTTP listening port",
		EnvVars:  prefixEnvVars("RPC_PORT"),
		Value:    8080,
		Category: "RPC",
	}
	RPCCORSOriginsFlag = &cli.StringSliceFlag{
		Name:     "rpc.cors-origins",
		Usage:    "Origins allowed to call the faucet from a browser",
		EnvVars:  prefixEnvVars("RPC_CORS_ORIGINS"),
		Value:    cli.NewStringSlice("*"),
		Category: "RPC",
	}
	RPCEnableJSONRPCFlag = &cli.BoolFlag{
		Name:     "rpc.enable-jsonrpc",
		Usage:    "Serve the faucet JSON-RPC namespace on /rpc",
		EnvVars:  prefixEnvVars("RPC_ENABLE_JSONRPC"),
		Category: "RPC",
	}
	CheckCatalogFlag = &cli.BoolFlag{
		Name:    "check-catalog",
		Usage:   "Verify chain IDs and token decimals against the configured RPC endpoints at startup",
		EnvVars: prefixEnvVars("CHECK_CATALOG"),
	}
)

var requiredFlags = []cli.Flag{}

var optionalFlags = []cli.Flag{
	ConfigFlag,
	PrivateKeyFlag,
	MnemonicFlag,
	HDPathFlag,
	RPCListenAddrFlag,
	RPCListenPortFlag,
	RPCCORSOriginsFlag,
	RPCEnableJSONRPCFlag,
	CheckCatalogFlag,
}

func init() {
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)
	optionalFlags = append(optionalFlags, opmetrics.CLIFlags(EnvVarPrefix)...)

	Flags = append(Flags, requiredFlags...)
	Flags = append(Flags, optionalFlags...)
}

// Flags contains the list of configuration options available to the binary.
var Flags []cli.Flag

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}

// CatalogLoader loads the catalog file, with per-network overrides from the environment.
func CatalogLoader(ctx *cli.Context) fconf.Loader {
	return &fconf.EnvLoader{
		Inner:  fconf.LoaderForPath(ctx.String(ConfigFlag.Name)),
		Prefix: EnvVarPrefix,
	}
}

func ConfigFromCLI(ctx *cli.Context, version string) *config.Config {
	return &config.Config{
		Version:       version,
		LogConfig:     oplog.ReadCLIConfig(ctx),
		MetricsConfig: opmetrics.ReadCLIConfig(ctx),
		RPC: config.RPCConfig{
			ListenAddr:    ctx.String(RPCListenAddrFlag.Name),
			ListenPort:    ctx.Int(RPCListenPortFlag.Name),
			CORSOrigins:   ctx.StringSlice(RPCCORSOriginsFlag.Name),
			EnableJSONRPC: ctx.Bool(RPCEnableJSONRPCFlag.Name),
		},
		Signer: backend.SignerConfig{
			PrivateKey: ctx.String(PrivateKeyFlag.Name),
			Mnemonic:   ctx.String(MnemonicFlag.Name),
			HDPath:     ctx.String(HDPathFlag.Name),
		},
		Catalog:      CatalogLoader(ctx),
		CheckCatalog: ctx.Bool(CheckCatalogFlag.Name),
	}
}
