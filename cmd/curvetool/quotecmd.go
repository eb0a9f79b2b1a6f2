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
	"strings"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/Silverwingsw/apump-ai/curve"
	"github.com/Silverwingsw/apump-ai/fixed"
)

var quoteCommand = &cli.Command{
	Name:  "quote",
	Usage: "Price a conversion against the curve",
	Subcommands: []*cli.Command{
		{
			Name:   "buy",
			Usage:  "Tokens minted for a reserve payment",
			Flags:  []cli.Flag{supplyFlag, balanceFlag, amountFlag},
			Action: quoteBuy,
		},
		{
			Name:   "sell",
			Usage:  "Reserve released for burning tokens",
			Flags:  []cli.Flag{supplyFlag, balanceFlag, amountFlag},
			Action: quoteSell,
		},
		{
			Name:   "price",
			Usage:  "Reserve payment required to mint a token amount",
			Flags:  []cli.Flag{supplyFlag, balanceFlag, amountFlag},
			Action: quotePrice,
		},
		{
			Name:   "burn",
			Usage:  "Tokens to burn for a desired reserve refund",
			Flags:  []cli.Flag{supplyFlag, balanceFlag, amountFlag},
			Action: quoteBurn,
		},
	},
}

var spotCommand = &cli.Command{
	Name:   "spot",
	Usage:  "Marginal price at the current curve state",
	Flags:  []cli.Flag{supplyFlag, balanceFlag},
	Action: runSpot,
}

func quoteBuy(ctx *cli.Context) error   { return runQuote(ctx, "buy") }
func quoteSell(ctx *cli.Context) error  { return runQuote(ctx, "sell") }
func quotePrice(ctx *cli.Context) error { return runQuote(ctx, "price") }
func quoteBurn(ctx *cli.Context) error  { return runQuote(ctx, "burn") }

func runQuote(ctx *cli.Context, side string) error {
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
	amount, err := parseAmount(ctx.String(amountFlag.Name))
	if err != nil {
		return err
	}
	var quote *curve.Quote
	switch side {
	case "buy":
		quote, err = quoter.Buy(supply, balance, amount)
	case "sell":
		quote, err = quoter.Sell(supply, balance, amount)
	case "price":
		quote, err = quoter.Price(supply, balance, amount)
	case "burn":
		quote, err = quoter.Burn(supply, balance, amount)
	default:
		panic("unknown quote side " + side)
	}
	if err != nil {
		return err
	}
	printResult(ctx, quote.Result)
	return nil
}

func runSpot(ctx *cli.Context) error {
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
	quote, err := quoter.Spot(supply, balance)
	if err != nil {
		return err
	}
	fmt.Println(quote.Result.Dec())
	return nil
}

func makeQuoter(ctx *cli.Context) (*curve.Quoter, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, err
	}
	return curve.NewQuoter(cfg)
}

// parseAmount accepts a decimal or 0x-prefixed hex quantity and bounds it
// to the curve's 128-bit domain.
func parseAmount(s string) (*uint256.Int, error) {
	var (
		v   *uint256.Int
		err error
	)
	if strings.HasPrefix(s, "0x") {
		v, err = uint256.FromHex(s)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if v.Gt(fixed.MaxUint128) {
		return nil, fmt.Errorf("quantity %q exceeds the 128-bit domain", s)
	}
	return v, nil
}

// applyFee returns v less bps basis points. The fee exists only on the
// display side, the curve itself never charges one.
func applyFee(v *uint256.Int, bps uint64) *uint256.Int {
	fee := new(uint256.Int).Mul(v, uint256.NewInt(bps))
	fee.Div(fee, uint256.NewInt(10_000))
	if fee.Gt(v) {
		return new(uint256.Int)
	}
	return new(uint256.Int).Sub(v, fee)
}

func printResult(ctx *cli.Context, v *uint256.Int) {
	fmt.Println(v.Dec())
	if bps := ctx.Uint64(feeBpsFlag.Name); bps > 0 {
		fmt.Printf("net after %d bps fee: %s\n", bps, applyFee(v, bps).Dec())
	}
}
