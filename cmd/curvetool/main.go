// Copyright 2026 The apump-ai Authors
// This file is part of the apump-ai library.
//
// The apump-ai library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The apump-ai library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the apump-ai library. If not, see <http://www.gnu.org/licenses/>.

// curvetool prices token issuance against a configured bonding curve.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/Silverwingsw/apump-ai/params"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	slopeFlag = &cli.Uint64Flag{
		Name:  "slope",
		Usage: "Bootstrap slope in SlopeScale units (overrides the config file)",
	}
	reserveRatioFlag = &cli.Uint64Flag{
		Name:  "reserve-ratio",
		Usage: "Curve weight in parts-per-million (overrides the config file)",
	}
	feeBpsFlag = &cli.Uint64Flag{
		Name:  "fee-bps",
		Usage: "Display-only fee in basis points subtracted from quoted results",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}

	supplyFlag = &cli.StringFlag{
		Name:     "supply",
		Usage:    "Circulating token supply in base units (decimal or 0x hex)",
		Required: true,
	}
	balanceFlag = &cli.StringFlag{
		Name:     "balance",
		Usage:    "Reserve balance in base units (decimal or 0x hex)",
		Required: true,
	}
	amountFlag = &cli.StringFlag{
		Name:     "amount",
		Usage:    "Quantity to convert, in base units (decimal or 0x hex)",
		Required: true,
	}
	stepsFlag = &cli.IntFlag{
		Name:  "steps",
		Usage: "Number of curve steps to tabulate",
		Value: 10,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.VersionWithMeta
	app.Usage = "a pricing tool for bonding-curve token issuance"
	app.Copyright = "Copyright 2025-2026 The apump-ai Authors"
	app.Flags = []cli.Flag{
		configFileFlag,
		slopeFlag,
		reserveRatioFlag,
		feeBpsFlag,
		verbosityFlag,
	}
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		quoteCommand,
		spotCommand,
		tableCommand,
		configCommand,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs the root log handler before any command runs.
func setupLogging(ctx *cli.Context) error {
	usecolor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	handler := log.StreamHandler(os.Stderr, log.TerminalFormat(usecolor))
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(ctx.Int(verbosityFlag.Name)), handler))
	return nil
}
