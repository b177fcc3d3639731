package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	oplog "github.com/lendbit/token-faucet/service/log"
	"github.com/lendbit/token-faucet/ui"
)

var (
	faucetURLFlag = &cli.StringFlag{
		Name:  "faucet-url",
		Usage: "Base URL of the faucet HTTP API",
		Value: "http://127.0.0.1:8080",
	}
	chainFlag = &cli.StringFlag{
		Name:  "chain",
		Usage: "Network key to request on. Defaults to the faucet's default chain",
	}
	tokenFlag = &cli.StringFlag{
		Name:     "token",
		Usage:    "Token symbol to request",
		Required: true,
	}
	addressFlag = &cli.StringFlag{
		Name:     "address",
		Usage:    "Recipient address",
		Required: true,
	}
	watchAssetFlag = &cli.BoolFlag{
		Name:  "watch-asset",
		Usage: "After a successful request, print the wallet_watchAsset request that adds the token to a wallet",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}
)

var errRequestFailed = errors.New("token request failed")

func requestCommand() *cli.Command {
	return &cli.Command{
		Name:  "request",
		Usage: "Request testnet tokens from a running faucet",
		Flags: []cli.Flag{faucetURLFlag, chainFlag, tokenFlag, addressFlag, watchAssetFlag, noColorFlag},
		Action: func(ctx *cli.Context) error {
			out := oplog.AppOut(ctx)
			client := ui.NewClient(ctx.String(faucetURLFlag.Name))
			networks, err := client.Networks(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to fetch networks: %w", err)
			}

			var wallet ui.WalletWatcher
			if ctx.Bool(watchAssetFlag.Name) {
				wallet = ui.NewPayloadWatcher(out)
			}
			form := ui.NewForm(nil, networks, client, wallet)
			if chain := ctx.String(chainFlag.Name); chain != "" {
				if err := form.SelectChain(ftypes.ChainKey(chain)); err != nil {
					return err
				}
			}
			form.SetAddress(ctx.String(addressFlag.Name))

			useColor := !ctx.Bool(noColorFlag.Name) && out == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())
			r := ui.NewRenderer(out, useColor)
			if hint := form.AddressHint(); hint != "" {
				r.Render(form)
				return errors.New(hint)
			}

			sym := ftypes.TokenSymbol(ctx.String(tokenFlag.Name))
			st := form.Request(ctx.Context, sym)
			r.Render(form)
			switch st.Kind {
			case ui.StatusSuccess:
				if wallet == nil {
					return nil
				}
				form.AddToWallet(ctx.Context, sym)
				form.Wait()
				if st := form.Status(); st.Kind == ui.StatusError {
					r.RenderStatus(st)
					return errRequestFailed
				}
				return nil
			case ui.StatusIdle:
				return fmt.Errorf("token %s is not offered on %s", ctx.String(tokenFlag.Name), form.Chain().Key)
			default:
				return errRequestFailed
			}
		},
	}
}
