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
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/Silverwingsw/apump-ai/params"
)

// Quote captures one priced conversion for layers that display or audit
// quotes. Amount carries the caller-side quantity (payment for buys, tokens
// for sells) and Result the converted quantity.
type Quote struct {
	Side    string
	Supply  *uint256.Int
	Balance *uint256.Int
	Amount  *uint256.Int
	Result  *uint256.Int
}

// Quoter prices conversions against one immutable CurveConfig and logs
// every evaluation. The formula functions themselves never log; embedders
// that want silent math call them directly.
type Quoter struct {
	cfg *params.CurveConfig
	log log.Logger
}

// NewQuoter validates the config once and binds a quoter to it.
func NewQuoter(cfg *params.CurveConfig) (*Quoter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Quoter{cfg: cfg, log: log.New("module", "curve")}, nil
}

// Config returns the bound configuration.
func (q *Quoter) Config() *params.CurveConfig { return q.cfg }

// Buy quotes the tokens received for a payment at the given state.
func (q *Quoter) Buy(supply, balance, payment *uint256.Int) (*Quote, error) {
	tokens, err := MintingAmountFromPrice(q.cfg, balance, supply, payment)
	if err != nil {
		q.log.Debug("Buy quote failed", "supply", supply, "balance", balance, "payment", payment, "err", err)
		return nil, err
	}
	q.log.Trace("Buy quote", "supply", supply, "balance", balance, "payment", payment, "tokens", tokens)
	return q.quote("buy", supply, balance, payment, tokens), nil
}

// Sell quotes the payment refunded for burning tokens at the given state.
func (q *Quoter) Sell(supply, balance, tokens *uint256.Int) (*Quote, error) {
	payment, err := RefundForBurning(q.cfg, balance, supply, tokens)
	if err != nil {
		q.log.Debug("Sell quote failed", "supply", supply, "balance", balance, "tokens", tokens, "err", err)
		return nil, err
	}
	q.log.Trace("Sell quote", "supply", supply, "balance", balance, "tokens", tokens, "payment", payment)
	return q.quote("sell", supply, balance, tokens, payment), nil
}

// Price quotes the reserve payment a mint of tokens would demand.
func (q *Quoter) Price(supply, balance, tokens *uint256.Int) (*Quote, error) {
	price, err := PriceForMinting(q.cfg, balance, supply, tokens)
	if err != nil {
		q.log.Debug("Mint price failed", "supply", supply, "balance", balance, "tokens", tokens, "err", err)
		return nil, err
	}
	q.log.Trace("Mint price", "supply", supply, "balance", balance, "tokens", tokens, "price", price)
	return q.quote("price", supply, balance, tokens, price), nil
}

// Burn quotes the tokens that must be burned to withdraw a refund.
func (q *Quoter) Burn(supply, balance, refund *uint256.Int) (*Quote, error) {
	tokens, err := BurningAmountFromRefund(q.cfg, balance, supply, refund)
	if err != nil {
		q.log.Debug("Burn quote failed", "supply", supply, "balance", balance, "refund", refund, "err", err)
		return nil, err
	}
	q.log.Trace("Burn quote", "supply", supply, "balance", balance, "refund", refund, "tokens", tokens)
	return q.quote("burn", supply, balance, refund, tokens), nil
}

// Spot quotes the marginal price at the given state.
func (q *Quoter) Spot(supply, balance *uint256.Int) (*Quote, error) {
	price, err := SpotPrice(supply, balance, q.cfg.ReserveRatio)
	if err != nil {
		q.log.Debug("Spot price failed", "supply", supply, "balance", balance, "err", err)
		return nil, err
	}
	q.log.Trace("Spot price", "supply", supply, "balance", balance, "price", price)
	return q.quote("spot", supply, balance, nil, price), nil
}

func (q *Quoter) quote(side string, supply, balance, amount, result *uint256.Int) *Quote {
	quo := &Quote{
		Side:    side,
		Supply:  supply.Clone(),
		Balance: balance.Clone(),
		Result:  result,
	}
	if amount != nil {
		quo.Amount = amount.Clone()
	}
	return quo
}
