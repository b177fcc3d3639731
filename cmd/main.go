package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/config"
	"github.com/lendbit/token-faucet/faucet"
	"github.com/lendbit/token-faucet/flags"
	opservice "github.com/lendbit/token-faucet/service"
	"github.com/lendbit/token-faucet/service/cliapp"
)

var (
	Version   = "v0.0.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	err := run(context.Background(), os.Stdout, os.Stderr, os.Args, fromConfig)
	if err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func run(ctx context.Context, w io.Writer, ew io.Writer, args []string, fn faucet.MainFn) error {
	app := cli.NewApp()
	app.Writer = w
	app.ErrWriter = ew
	app.Flags = flags.Flags
	app.Version = opservice.FormatVersion(Version, GitCommit, GitDate, "")
	app.Name = "token-faucet"
	app.Usage = "token-faucet dispenses testnet ERC-20 tokens through a cooldown-enforcing faucet contract."
	app.Description = "Faucet service for testnets.\n" +
		" Request tokens with POST /api/request-tokens, or POST /api/faucet on the default chain."
	app.Action = cliapp.LifecycleCmd(faucet.Main(app.Version, fn))
	app.Commands = []*cli.Command{
		requestCommand(),
		checkCatalogCommand(),
	}
	return app.RunContext(ctx, args)
}

func fromConfig(ctx context.Context, cfg *config.Config, logger log.Logger) (cliapp.Lifecycle, error) {
	return faucet.FromConfig(ctx, cfg, logger)
}
