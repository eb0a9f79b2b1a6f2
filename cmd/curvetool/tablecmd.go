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

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var tableCommand = &cli.Command{
	Name:   "table",
	Usage:  "Tabulate repeated buys walking up the curve",
	Flags:  []cli.Flag{supplyFlag, balanceFlag, amountFlag, stepsFlag},
	Action: runTable,
}

func runTable(ctx *cli.Context) error {
	quoter, err := makeQuoter(ctx)
	if err != nil {
		return err
	}
	supply, err := parseAmount(ctx.String(supplyFlag.Name))
	if err != nil {
		return err
	}
	balance, err := parseAmount(ctx.String(balanceFlag.Name))
	if err != nil {
		return err
	}
	payment, err := parseAmount(ctx.String(amountFlag.Name))
	if err != nil {
		return err
	}
	steps := ctx.Int(stepsFlag.Name)
	if steps < 1 {
		return fmt.Errorf("invalid step count %d", steps)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Step", "Supply", "Balance", "Spot", "Payment", "Tokens"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColWidth(100)

	for i := 1; i <= steps; i++ {
		quote, err := quoter.Buy(supply, balance, payment)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		// The spot price has no value before the first mint.
		spot := "-"
		if sq, err := quoter.Spot(supply, balance); err == nil {
			spot = sq.Result.Dec()
		}
		table.Append([]string{
			strconv.Itoa(i),
			supply.Dec(),
			balance.Dec(),
			spot,
			payment.Dec(),
			quote.Result.Dec(),
		})
		supply = new(uint256.Int).Add(supply, quote.Result)
		balance = new(uint256.Int).Add(balance, payment)
	}
	table.Render()
	return nil
}
