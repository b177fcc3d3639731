package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lmittmann/w3"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/lendbit/token-faucet/faucet/backend"
	"github.com/lendbit/token-faucet/flags"
	oplog "github.com/lendbit/token-faucet/service/log"
)

func checkCatalogCommand() *cli.Command {
	cmdFlags := []cli.Flag{flags.ConfigFlag}
	cmdFlags = append(cmdFlags, oplog.CLIFlags(flags.EnvVarPrefix)...)
	return &cli.Command{
		Name:  "check-catalog",
		Usage: "Verify the catalog against its chains and print the faucet token balances",
		Flags: cmdFlags,
		Action: func(ctx *cli.Context) error {
			out := oplog.AppOut(ctx)
			errOut := ctx.App.ErrWriter
			if errOut == nil {
				errOut = os.Stderr
			}
			logger := oplog.NewLogger(errOut, oplog.ReadCLIConfig(ctx))
			catalog, err := flags.CatalogLoader(ctx).Load(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			if err := catalog.Check(); err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}
			balances, checkErr := backend.CheckCatalog(ctx.Context, logger, catalog, nil)

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Chain", "Token", "Decimals", "Faucet balance"})
			table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
			table.SetCenterSeparator("|")
			for _, b := range balances {
				balance := "-"
				if b.Balance != nil {
					balance = w3.FromWei(b.Balance, b.Decimals)
				}
				table.Append([]string{b.Chain.String(), b.Token.String(), strconv.Itoa(int(b.Decimals)), balance})
			}
			table.Render()
			return checkErr
		},
	}
}
