package faucet

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/config"
	fconf "github.com/lendbit/token-faucet/faucet/backend/config"
	"github.com/lendbit/token-faucet/flags"
	opservice "github.com/lendbit/token-faucet/service"
	"github.com/lendbit/token-faucet/service/cliapp"
	oplog "github.com/lendbit/token-faucet/service/log"
)

type MainFn func(ctx context.Context, cfg *config.Config, logger log.Logger) (cliapp.Lifecycle, error)

// Main is the entrypoint into the service.
// This method returns a cliapp.LifecycleAction, to create a CLI-lifecycle-managed service with.
func Main(version string, fn MainFn) cliapp.LifecycleAction {
	return func(cliCtx *cli.Context, closeApp context.CancelCauseFunc) (cliapp.Lifecycle, error) {
		if err := flags.CheckRequired(cliCtx); err != nil {
			return nil, err
		}
		cfg := flags.ConfigFromCLI(cliCtx, version)
		if err := cfg.Check(); err != nil {
			return nil, fmt.Errorf("invalid CLI flags: %w", err)
		}

		l := oplog.NewLogger(oplog.AppOut(cliCtx), cfg.LogConfig)
		oplog.SetGlobalLogHandler(l.Handler())
		// per-network overrides are read by the catalog loader, not by flags
		opservice.ValidateEnvVars(flags.EnvVarPrefix, flags.Flags, l, fconf.NetworkEnvPrefix(flags.EnvVarPrefix))

		l.Info("Initializing token faucet", "version", version)
		return fn(cliCtx.Context, cfg, l)
	}
}
