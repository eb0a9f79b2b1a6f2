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

package curve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Silverwingsw/apump-ai/params"
)

func TestNewQuoter(t *testing.T) {
	_, err := NewQuoter(nil)
	require.Error(t, err)

	_, err = NewQuoter(testConfig(0, 500_000))
	require.Error(t, err)

	cfg := testConfig(1_000_000, 500_000)
	q, err := NewQuoter(cfg)
	require.NoError(t, err)
	require.Same(t, cfg, q.Config())
}

func TestQuoterSell(t *testing.T) {
	q, err := NewQuoter(testConfig(1_000_000, 500_000))
	require.NoError(t, err)

	supply := u(100_000_000_000_000)
	balance := u(1_000_000_000)
	sell := u(50_000_000_000_000)

	quote, err := q.Sell(supply, balance, sell)
	require.NoError(t, err)
	require.Equal(t, "sell", quote.Side)
	require.True(t, quote.Result.Eq(u(750_000_000)), "result = %v", quote.Result)
	require.True(t, quote.Amount.Eq(sell))

	// Quotes snapshot their inputs.
	supply.SetUint64(0)
	require.True(t, quote.Supply.Eq(u(100_000_000_000_000)))
}

func TestQuoterBuyBootstrap(t *testing.T) {
	q, err := NewQuoter(testConfig(1_000_000, 500_000))
	require.NoError(t, err)

	quote, err := q.Buy(u(0), u(0), u(2_000_000_000_000_000_000))
	require.NoError(t, err)
	require.True(t, quote.Result.Eq(u(2_000_000_000_000_000_000)), "result = %v", quote.Result)
}

func TestQuoterPriceMatchesSell(t *testing.T) {
	q, err := NewQuoter(testConfig(1_000_000, 500_000))
	require.NoError(t, err)

	supply, balance, amount := u(1_000_000_000_000), u(1_000_000_000), u(250_000_000_000)
	price, err := q.Price(supply, balance, amount)
	require.NoError(t, err)

	post := u(1_250_000_000_000)
	refund, err := q.Sell(post, balance, amount)
	require.NoError(t, err)
	require.True(t, price.Result.Eq(refund.Result))
}

func TestQuoterBurn(t *testing.T) {
	q, err := NewQuoter(testConfig(1_000_000, params.MaxWeight))
	require.NoError(t, err)

	quote, err := q.Burn(u(1_000_000), u(2_000_000), u(1_000_000))
	require.NoError(t, err)
	require.True(t, quote.Result.Eq(u(500_000)), "result = %v", quote.Result)
}

func TestQuoterSpot(t *testing.T) {
	q, err := NewQuoter(testConfig(1_000_000, 500_000))
	require.NoError(t, err)

	quote, err := q.Spot(u(1_000_000), u(1_000_000))
	require.NoError(t, err)
	require.True(t, quote.Result.Eq(u(2_000_000_000)), "result = %v", quote.Result)
	require.Nil(t, quote.Amount)
	require.Equal(t, "spot", quote.Side)
}

func TestQuoterErrors(t *testing.T) {
	q, err := NewQuoter(testConfig(1_000_000, 500_000))
	require.NoError(t, err)

	quote, err := q.Buy(u(5), u(0), u(1))
	require.ErrorIs(t, err, ErrZeroBalance)
	require.Nil(t, quote)

	quote, err = q.Sell(u(10), u(10), u(11))
	require.ErrorIs(t, err, ErrSellExceedsSupply)
	require.Nil(t, quote)
}
